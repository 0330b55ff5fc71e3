package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursepass/internal/app/models/dto"
	"github.com/yigit/coursepass/internal/app/models/dto/enums"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
	"github.com/yigit/coursepass/internal/pkg/logger"
)

// apiError is the HTTP rendering of an application error
type apiError struct {
	status  int
	code    enums.ErrorCode
	message string
}

// errorMappings is checked in order, the first matching sentinel wins.
var errorMappings = []struct {
	target error
	apiError
}{
	{apperrors.ErrAccessCodeNotFound, apiError{http.StatusUnauthorized, enums.ErrorCodeInvalidAccessCode, "Invalid access code"}},
	{apperrors.ErrAccessCodeInactive, apiError{http.StatusUnauthorized, enums.ErrorCodeAccessCodeInactive, "This access code is no longer active"}},
	{apperrors.ErrAccessCodeExpired, apiError{http.StatusUnauthorized, enums.ErrorCodeAccessCodeExpired, "This access code has expired"}},
	{apperrors.ErrAccessCodeUsageExceeded, apiError{http.StatusUnauthorized, enums.ErrorCodeAccessCodeUsageExceeded, "This access code has reached its usage limit"}},
	{apperrors.ErrUnauthenticated, apiError{http.StatusUnauthorized, enums.ErrorCodeUnauthenticated, "Not authenticated"}},
	{apperrors.ErrSessionNotFound, apiError{http.StatusUnauthorized, enums.ErrorCodeUnauthenticated, "Not authenticated"}},
	{apperrors.ErrAdminAuthFailed, apiError{http.StatusUnauthorized, enums.ErrorCodeUnauthorized, "Invalid admin credentials"}},
	{apperrors.ErrTestNotFound, apiError{http.StatusNotFound, enums.ErrorCodeTestNotFound, "Test not found"}},
	{apperrors.ErrResourceNotFound, apiError{http.StatusNotFound, enums.ErrorCodeResourceNotFound, "Resource not found"}},
	{apperrors.ErrAccessCodeAlreadyExists, apiError{http.StatusConflict, enums.ErrorCodeResourceAlreadyExists, "Access code already exists"}},
	{apperrors.ErrValidationFailed, apiError{http.StatusBadRequest, enums.ErrorCodeValidationFailed, "Validation failed"}},
	{apperrors.ErrContentSourceNotConfigured, apiError{http.StatusInternalServerError, enums.ErrorCodeContentNotConfigured, "Content source not configured for this course"}},
	{apperrors.ErrGenerationFailed, apiError{http.StatusInternalServerError, enums.ErrorCodeGenerationFailed, "Failed to generate test"}},
	{apperrors.ErrUpstreamFailure, apiError{http.StatusInternalServerError, enums.ErrorCodeExternalServiceError, "Failed to fetch content"}},
}

func resolve(err error) apiError {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			resolved := m.apiError
			var custom *apperrors.CustomError
			if errors.As(err, &custom) && custom.StatusMsg != "" {
				resolved.message = custom.StatusMsg
			} else if errors.Is(m.target, apperrors.ErrValidationFailed) {
				resolved.message = err.Error()
			}
			return resolved
		}
	}
	return apiError{http.StatusInternalServerError, enums.ErrorCodeInternalServer, "Internal server error"}
}

// HandleAPIError writes the error envelope for err and aborts the chain.
// Server-side failures are logged here and nowhere else.
func HandleAPIError(c *gin.Context, err error) {
	resolved := resolve(err)

	if resolved.status >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(resolved.status, dto.NewErrorResponse(resolved.code, resolved.message))
}

// RespondError aborts with an error envelope built from explicit values
func RespondError(c *gin.Context, status int, code enums.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message))
}
