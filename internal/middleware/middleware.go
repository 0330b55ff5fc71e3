// Package middleware holds the gin middleware shared by all routes: request
// ids, logging, metrics, rate limiting, session and admin authentication, and
// the central error renderer.
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models/dto/enums"
)

// LoggerMiddleware logs one line per request once the handler chain is done
func LoggerMiddleware(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = lgr.Error()
		case status >= http.StatusBadRequest:
			event = lgr.Warn()
		default:
			event = lgr.Info()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("Request handled")
	}
}

// RecoveryMiddleware turns a panic into a 500 envelope
func RecoveryMiddleware(lgr zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		lgr.Error().
			Interface("panic", recovered).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		RespondError(c, http.StatusInternalServerError, enums.ErrorCodeInternalServer, "Internal server error")
	})
}
