// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models/dto"
	"github.com/yigit/coursepass/internal/app/models/dto/enums"
	"github.com/yigit/coursepass/internal/app/services"
	"github.com/yigit/coursepass/internal/middleware"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthController handles access code redemption and the session cookie
type AuthController struct {
	accessService services.AccessService
	cookie        CookieConfig
	logger        zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(accessService services.AccessService, cookie CookieConfig, logger zerolog.Logger) *AuthController {
	return &AuthController{
		accessService: accessService,
		cookie:        cookie,
		logger:        logger,
	}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, expiresAt time.Time) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     c.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     c.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Validate redeems an access code and starts a session
// @Summary Redeem an access code
// @Description Validates the access code and sets the learning_session cookie. Codes are matched case-insensitively.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ValidateCodeRequest true "Access code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseAccessResponse} "Access granted"
// @Failure 400 {object} dto.APIResponse "Access code is required"
// @Failure 401 {object} dto.APIResponse "Invalid, inactive, expired or exhausted code"
// @Failure 429 {object} dto.APIResponse "Too many attempts"
// @Failure 500 {object} dto.APIResponse "An error occurred while validating the access code"
// @Router /auth/validate [post]
func (c *AuthController) Validate(ctx *gin.Context) {
	var req dto.ValidateCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Invalid validate request payload")
		middleware.RespondError(ctx, http.StatusBadRequest, enums.ErrorCodeValidationFailed, "Access code is required")
		return
	}

	code := services.NormalizeCode(req.Code)
	if code == "" {
		middleware.RespondError(ctx, http.StatusBadRequest, enums.ErrorCodeValidationFailed, "Access code is required")
		return
	}

	redeemed, err := c.accessService.ValidateAccessCode(ctx.Request.Context(), code)
	if err != nil {
		c.handleRedeemError(ctx, err)
		return
	}

	token, expiresAt, err := c.accessService.CreateSession(ctx.Request.Context(), redeemed.ID)
	if err != nil {
		c.handleRedeemError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, expiresAt)
	c.logger.Info().Str("courseID", redeemed.CourseID).Msg("Access code redeemed")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CourseAccessResponse{
		CourseID:   redeemed.CourseID,
		CourseName: redeemed.CourseName,
	}))
}

// handleRedeemError renders refusals as 401 and anything else as a generic 500
func (c *AuthController) handleRedeemError(ctx *gin.Context, err error) {
	if isRefusal(err) {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Error().Err(err).Msg("Access code validation failed")
	middleware.RespondError(ctx, http.StatusInternalServerError, enums.ErrorCodeInternalServer, "An error occurred while validating the access code")
}

func isRefusal(err error) bool {
	return apperrors.Is(err, apperrors.ErrAccessCodeNotFound,
		apperrors.ErrAccessCodeInactive,
		apperrors.ErrAccessCodeExpired,
		apperrors.ErrAccessCodeUsageExceeded)
}

// Session reports whether the caller holds a valid session
// @Summary Get the current session
// @Description authenticated is false when the cookie is missing, unknown or expired. Storage failures answer 500.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session state"
// @Failure 500 {object} dto.APIResponse "Storage failure"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	token, _ := ctx.Cookie(c.cookie.Name)

	session, err := c.accessService.GetSession(ctx.Request.Context(), token)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load session")
		middleware.RespondError(ctx, http.StatusInternalServerError, enums.ErrorCodeInternalServer, "An error occurred while checking session")
		return
	}
	if session == nil {
		ctx.JSON(http.StatusOK, dto.SessionResponse{Success: false, Authenticated: false})
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		Success:       true,
		Authenticated: true,
		Data: &dto.SessionInfo{
			CourseID:   session.CourseID,
			CourseName: session.CourseName,
			ExpiresAt:  session.ExpiresAt,
		},
	})
}

// Logout ends the session
// @Summary Log out
// @Description Deletes the session and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse "Logged out"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token, _ := ctx.Cookie(c.cookie.Name)

	if err := c.accessService.ClearSession(ctx.Request.Context(), token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true})
}
