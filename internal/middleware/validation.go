package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursepass/internal/app/models/dto"
	"github.com/yigit/coursepass/internal/app/models/dto/enums"
	"github.com/yigit/coursepass/internal/pkg/logger"
	"github.com/yigit/coursepass/internal/pkg/validation"
)

// ValidatedBodyKey holds the bound request body set by ValidateRequest
const ValidatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh *T, runs its binding
// rules and stores it under ValidatedBodyKey. Invalid bodies get 400.
func ValidateRequest[T any]() gin.HandlerFunc {
	if err := validation.RegisterWithGin(); err != nil {
		logger.Error().Err(err).Msg("Failed to register custom validation rules")
	}
	return func(c *gin.Context) {
		body := new(T)
		if err := c.ShouldBindJSON(body); err != nil {
			RespondError(c, http.StatusBadRequest, enums.ErrorCodeValidationFailed, dto.HandleValidationError(err))
			return
		}

		c.Set(ValidatedBodyKey, body)
		c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateRequest[T]
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	v, exists := c.Get(ValidatedBodyKey)
	if !exists {
		return nil, false
	}
	body, ok := v.(*T)
	return body, ok
}
