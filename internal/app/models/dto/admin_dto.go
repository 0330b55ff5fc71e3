package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursepass/internal/app/models"
)

// ContentSourceRequest carries the Baserow credentials of a course
type ContentSourceRequest struct {
	APIToken          *string `json:"apiToken" binding:"omitempty,min=1"`
	LessonsTableID    *string `json:"lessonsTableId" binding:"omitempty,numeric"`
	FlashcardsTableID *string `json:"flashcardsTableId" binding:"omitempty,numeric"`
	TestsTableID      *string `json:"testsTableId" binding:"omitempty,numeric"`
	QuestionsTableID  *string `json:"questionsTableId" binding:"omitempty,numeric"`
}

// CreateAccessCodeRequest is the body of POST /api/admin/access-codes
type CreateAccessCodeRequest struct {
	Code          string                `json:"code" binding:"required,accesscode" example:"SPRING2026"`
	CourseID      string                `json:"courseId" binding:"required,max=255" example:"course-1"`
	CourseName    string                `json:"courseName" binding:"required,max=255" example:"GED Test Prep"`
	ExpiresAt     *time.Time            `json:"expiresAt"`
	UsageLimit    *int                  `json:"usageLimit" binding:"omitempty,min=1" example:"100"`
	ContentSource *ContentSourceRequest `json:"contentSource"`
}

// UpdateAccessCodeRequest is the body of PATCH /api/admin/access-codes/:id
type UpdateAccessCodeRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// AccessCodeResponse is the admin view of an access code. The Baserow token
// is never echoed back.
type AccessCodeResponse struct {
	ID                      uuid.UUID  `json:"id"`
	Code                    string     `json:"code" example:"TEST123"`
	CourseID                string     `json:"courseId" example:"course-1"`
	CourseName              string     `json:"courseName" example:"GED Test Prep"`
	IsActive                bool       `json:"isActive" example:"true"`
	ExpiresAt               *time.Time `json:"expiresAt"`
	UsageLimit              *int       `json:"usageLimit"`
	UsageCount              int        `json:"usageCount" example:"3"`
	ContentSourceConfigured bool       `json:"contentSourceConfigured" example:"true"`
	CreatedAt               time.Time  `json:"createdAt"`
}

// Fields converts the request into the nullable access code columns
func (r *ContentSourceRequest) Fields() models.ContentSourceFields {
	if r == nil {
		return models.ContentSourceFields{}
	}
	return models.ContentSourceFields{
		APIToken:          r.APIToken,
		LessonsTableID:    r.LessonsTableID,
		FlashcardsTableID: r.FlashcardsTableID,
		TestsTableID:      r.TestsTableID,
		QuestionsTableID:  r.QuestionsTableID,
	}
}

// ToModel builds a new active access code from the request
func (r *CreateAccessCodeRequest) ToModel() *models.AccessCode {
	return &models.AccessCode{
		Code:          r.Code,
		CourseID:      r.CourseID,
		CourseName:    r.CourseName,
		IsActive:      true,
		ExpiresAt:     r.ExpiresAt,
		UsageLimit:    r.UsageLimit,
		ContentSource: r.ContentSource.Fields(),
	}
}

// NewAccessCodeResponse maps an access code to its admin view
func NewAccessCodeResponse(code *models.AccessCode) AccessCodeResponse {
	_, configured := code.ContentSource.Config()
	return AccessCodeResponse{
		ID:                      code.ID,
		Code:                    code.Code,
		CourseID:                code.CourseID,
		CourseName:              code.CourseName,
		IsActive:                code.IsActive,
		ExpiresAt:               code.ExpiresAt,
		UsageLimit:              code.UsageLimit,
		UsageCount:              code.UsageCount,
		ContentSourceConfigured: configured,
		CreatedAt:               code.CreatedAt,
	}
}
