package dto

import "time"

// ValidateCodeRequest is the body of POST /api/auth/validate
type ValidateCodeRequest struct {
	Code string `json:"code" binding:"required" example:"TEST123"`
}

// CourseAccessResponse is returned after a successful redemption
type CourseAccessResponse struct {
	CourseID   string `json:"courseId" example:"course-1"`
	CourseName string `json:"courseName" example:"GED Test Prep"`
}

// SessionInfo describes the active session
type SessionInfo struct {
	CourseID   string    `json:"courseId" example:"course-1"`
	CourseName string    `json:"courseName" example:"GED Test Prep"`
	ExpiresAt  time.Time `json:"expiresAt" example:"2026-01-08T12:00:00Z"`
}

// SessionResponse is the body of GET /api/auth/session. It is returned with
// status 200 whether or not a session exists.
type SessionResponse struct {
	Success       bool         `json:"success" example:"true"`
	Authenticated bool         `json:"authenticated" example:"true"`
	Data          *SessionInfo `json:"data,omitempty"`
}
