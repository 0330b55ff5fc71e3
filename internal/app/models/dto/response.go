package dto

import "github.com/yigit/coursepass/internal/app/models/dto/enums"

// APIResponse is the JSON envelope shared by every endpoint
type APIResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    interface{}     `json:"data,omitempty"`
	Meta    interface{}     `json:"meta,omitempty"`
	Error   string          `json:"error,omitempty" example:"Invalid access code"`
	Code    enums.ErrorCode `json:"code,omitempty" example:"AUTH_001"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewErrorResponse builds a failure envelope
func NewErrorResponse(code enums.ErrorCode, message string) APIResponse {
	return APIResponse{Success: false, Error: message, Code: code}
}
