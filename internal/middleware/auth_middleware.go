package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/services"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
	"github.com/yigit/coursepass/internal/pkg/auth"
)

const (
	// ContentSourceKey holds the *models.CourseContentSource of the session
	ContentSourceKey = "content_source"
	// SessionTokenKey holds the raw session token
	SessionTokenKey = "session_token"
	// AdminUserKey holds the authenticated admin username
	AdminUserKey = "admin_user"
)

// AuthMiddleware guards content routes with the session cookie and admin
// routes with HTTP Basic credentials.
type AuthMiddleware struct {
	accessService     services.AccessService
	cookieName        string
	adminUsername     string
	adminPasswordHash string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(accessService services.AccessService, cookieName, adminUsername, adminPasswordHash string) *AuthMiddleware {
	return &AuthMiddleware{
		accessService:     accessService,
		cookieName:        cookieName,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// SessionAuth resolves the session cookie to the course content source.
// Requests without a valid session get 401. A course without Baserow
// credentials gets 500.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		src, err := m.accessService.GetContentSourceConfig(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(SessionTokenKey, token)
		c.Set(ContentSourceKey, src)
		c.Next()
	}
}

// AdminBasicAuth checks HTTP Basic credentials against the configured admin
// username and bcrypt hash. With no hash configured every request is refused.
func (m *AuthMiddleware) AdminBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		validUser := subtle.ConstantTimeCompare([]byte(username), []byte(m.adminUsername)) == 1
		if !ok || !validUser || !auth.CheckPassword(m.adminPasswordHash, password) {
			c.Header("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
			HandleAPIError(c, apperrors.ErrAdminAuthFailed)
			return
		}

		c.Set(AdminUserKey, username)
		c.Next()
	}
}

// ContentSource returns the content source stored by SessionAuth
func ContentSource(c *gin.Context) (*models.CourseContentSource, bool) {
	v, exists := c.Get(ContentSourceKey)
	if !exists {
		return nil, false
	}
	src, ok := v.(*models.CourseContentSource)
	return src, ok && src != nil
}
