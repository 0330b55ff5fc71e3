package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursepass/internal/telemetry"
)

func zerologNop() zerolog.Logger { return zerolog.Nop() }

// ---------------------------------------------------------------------------
// RequestIDMiddleware
// ---------------------------------------------------------------------------

func newRequestIDRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.Header("X-Context-Request-ID", c.GetString(RequestIDKey))
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestIDMiddleware_GeneratesUUID(t *testing.T) {
	w := httptest.NewRecorder()
	newRequestIDRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Header().Get("X-Context-Request-ID"))
}

func TestRequestIDMiddleware_PropagatesIncomingID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-001")

	w := httptest.NewRecorder()
	newRequestIDRouter().ServeHTTP(w, req)

	assert.Equal(t, "upstream-id-001", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "upstream-id-001", w.Header().Get("X-Context-Request-ID"))
}

// ---------------------------------------------------------------------------
// MetricsMiddleware
// ---------------------------------------------------------------------------

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := telemetry.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/items/1", "/items/2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_NoRoute(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())

	counter := telemetry.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "<no-route>", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

// ---------------------------------------------------------------------------
// LoggerMiddleware
// ---------------------------------------------------------------------------

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware(zerolog.New(&buf)))
	r.GET("/teapot", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req.Header.Set(RequestIDHeader, "rid-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/teapot", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.Equal(t, "rid-42", entry["request_id"])
	assert.Contains(t, entry, "latency")
}

// ---------------------------------------------------------------------------
// ValidateRequest
// ---------------------------------------------------------------------------

type sampleBody struct {
	Name string `json:"name" binding:"required,max=5"`
}

func TestValidateRequest(t *testing.T) {
	r := gin.New()
	r.POST("/", ValidateRequest[sampleBody](), func(c *gin.Context) {
		body, ok := ValidatedBody[sampleBody](c)
		require.True(t, ok)
		c.String(http.StatusOK, body.Name)
	})

	tests := []struct {
		body       string
		wantStatus int
		wantBody   string
	}{
		{`{"name":"abc"}`, http.StatusOK, "abc"},
		{`{}`, http.StatusBadRequest, "name is required"},
		{`{"name":"toolong"}`, http.StatusBadRequest, "name must be at most 5"},
		{`not json`, http.StatusBadRequest, "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}
			assert.Equal(t, tt.wantBody, decodeEnvelope(t, w).Error)
		})
	}
}

func TestValidateRequest_AccessCodeRule(t *testing.T) {
	type codeBody struct {
		Code string `json:"code" binding:"required,accesscode"`
	}

	r := gin.New()
	r.POST("/", ValidateRequest[codeBody](), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for body, want := range map[string]int{
		`{"code":"SPRING26"}`:  http.StatusNoContent,
		`{"code":"no spaces"}`: http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, body)
	}
}
