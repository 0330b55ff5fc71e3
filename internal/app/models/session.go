package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a persisted visitor session bound to an access code.
type Session struct {
	ID           uuid.UUID
	Token        string
	AccessCodeID uuid.UUID
	ExpiresAt    time.Time
	LastActiveAt time.Time
	CreatedAt    time.Time
}

// SessionWithCode is a session joined with the access code it was issued for.
type SessionWithCode struct {
	Session
	CourseID      string
	CourseName    string
	ContentSource ContentSourceFields
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// SessionData is the view of a valid session.
type SessionData struct {
	AccessCodeID uuid.UUID `json:"accessCodeId"`
	CourseID     string    `json:"courseId"`
	CourseName   string    `json:"courseName"`
	Token        string    `json:"-"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ContentSourceConfig holds the Baserow credentials of one course.
type ContentSourceConfig struct {
	APIToken          string
	LessonsTableID    string
	FlashcardsTableID string
	TestsTableID      string
	QuestionsTableID  string
}

// CourseContentSource is a resolved config together with its course.
type CourseContentSource struct {
	Config   ContentSourceConfig
	CourseID string
}
