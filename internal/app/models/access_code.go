package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessCode is a redeemable code that unlocks one course.
type AccessCode struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	CourseID   string     `json:"courseId"`
	CourseName string     `json:"courseName"`
	IsActive   bool       `json:"isActive"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	UsageLimit *int       `json:"usageLimit"`
	UsageCount int        `json:"usageCount"`

	ContentSource ContentSourceFields `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContentSourceFields are the nullable Baserow columns of an access code.
type ContentSourceFields struct {
	APIToken          *string
	LessonsTableID    *string
	FlashcardsTableID *string
	TestsTableID      *string
	QuestionsTableID  *string
}

// Config returns the complete content source, or false when any field is
// missing or blank.
func (f ContentSourceFields) Config() (ContentSourceConfig, bool) {
	fields := []*string{f.APIToken, f.LessonsTableID, f.FlashcardsTableID, f.TestsTableID, f.QuestionsTableID}
	for _, v := range fields {
		if v == nil || *v == "" {
			return ContentSourceConfig{}, false
		}
	}
	return ContentSourceConfig{
		APIToken:          *f.APIToken,
		LessonsTableID:    *f.LessonsTableID,
		FlashcardsTableID: *f.FlashcardsTableID,
		TestsTableID:      *f.TestsTableID,
		QuestionsTableID:  *f.QuestionsTableID,
	}, true
}

// IsExpired reports whether the code has an expiry in the past.
func (a *AccessCode) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && a.ExpiresAt.Before(now)
}

// UsageExhausted reports whether a usage limit is set and reached.
func (a *AccessCode) UsageExhausted() bool {
	return a.UsageLimit != nil && a.UsageCount >= *a.UsageLimit
}

// RedeemedCode is what a successful validation hands to session creation.
type RedeemedCode struct {
	ID         uuid.UUID `json:"id"`
	CourseID   string    `json:"courseId"`
	CourseName string    `json:"courseName"`
}
