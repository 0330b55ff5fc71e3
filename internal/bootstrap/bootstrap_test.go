package bootstrap

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/repositories/repotest"
	"github.com/yigit/coursepass/internal/config"
	"github.com/yigit/coursepass/internal/pkg/auth"
	"github.com/yigit/coursepass/internal/pkg/baserow/baserowtest"
)

func strPtr(s string) *string { return &s }

type envelope struct {
	Success       bool            `json:"success"`
	Authenticated bool            `json:"authenticated"`
	Data          json.RawMessage `json:"data"`
	Error         string          `json:"error"`
	Code          string          `json:"code"`
}

type app struct {
	router *gin.Engine
	store  *repotest.Store
	deps   *Dependencies
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := baserowtest.NewServer(t, "course-token")
	srv.SetRows("11", []baserowtest.Row{{"title": "Lesson two", "orderr": "2"}, {"title": "Lesson one", "orderr": "1"}})
	srv.SetRows("12", nil)
	srv.SetRows("13", []baserowtest.Row{{"id": 1, "title": "Practice", "orderr": "1", "questionsPerCategory": 5}})

	var questions []baserowtest.Row
	for _, c := range []string{"Math", "Reading", "Science", "Social Studies", "Writing"} {
		for i := 0; i < 8; i++ {
			questions = append(questions, baserowtest.Row{
				"category":      c,
				"question":      fmt.Sprintf("%s %d", c, i),
				"optionA":       "A",
				"optionB":       "B",
				"correctAnswer": "A",
			})
		}
	}
	srv.SetRows("14", questions)

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Baserow.APIURL = srv.URL
	cfg.Admin.Username = "admin"
	cfg.Admin.PasswordHash, err = auth.HashPassword("s3cret")
	require.NoError(t, err)

	store := repotest.NewStore()
	store.AddCode(models.AccessCode{
		Code:       "TEST123",
		CourseID:   "course-1",
		CourseName: "GED Test Prep",
		IsActive:   true,
		ContentSource: models.ContentSourceFields{
			APIToken:          strPtr("course-token"),
			LessonsTableID:    strPtr("11"),
			FlashcardsTableID: strPtr("12"),
			TestsTableID:      strPtr("13"),
			QuestionsTableID:  strPtr("14"),
		},
	})

	deps, err := BuildDependencies(cfg, store.Repositories(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(deps.Close)

	return &app{router: SetupRouter(cfg, deps, zerolog.Nop()), store: store, deps: deps}
}

func (a *app) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "learning_session" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// --- Learner flow ---

func TestLearnerFlow(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", strings.NewReader(`{"code":" test123 "}`))
	req.Header.Set("Content-Type", "application/json")
	w, env := a.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"courseId":"course-1","courseName":"GED Test Prep"}`, string(env.Data))

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 1, a.store.SessionCount())

	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookie)
	w, env = a.do(t, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Authenticated)

	req = httptest.NewRequest(http.MethodGet, "/api/content/lessons", nil)
	req.AddCookie(cookie)
	w, env = a.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal(env.Data, &lessons))
	require.Len(t, lessons, 2)
	assert.Equal(t, "Lesson one", lessons[0].Title)

	req = httptest.NewRequest(http.MethodGet, "/api/content/tests/1/generate", nil)
	req.AddCookie(cookie)
	w, env = a.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var generated models.GeneratedTest
	require.NoError(t, json.Unmarshal(env.Data, &generated))
	assert.Len(t, generated.Questions, 25)
	assert.Len(t, generated.Categories, 5)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	w, env = a.do(t, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Zero(t, a.store.SessionCount())

	req = httptest.NewRequest(http.MethodGet, "/api/content/lessons", nil)
	req.AddCookie(cookie)
	w, env = a.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", env.Error)
}

func TestValidate_UnknownCode(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", strings.NewReader(`{"code":"NOPE"}`))
	req.Header.Set("Content-Type", "application/json")
	w, env := a.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid access code", env.Error)
	assert.Empty(t, w.Result().Cookies())
}

func TestValidate_RateLimited(t *testing.T) {
	a := newApp(t)

	var last int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", strings.NewReader(`{"code":"NOPE"}`))
		req.Header.Set("Content-Type", "application/json")
		w, _ := a.do(t, req)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestContentWithoutSession(t *testing.T) {
	a := newApp(t)

	w, env := a.do(t, httptest.NewRequest(http.MethodGet, "/api/content/tests", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", env.Error)
}

// --- Operational routes ---

func TestHealthAndMetrics(t *testing.T) {
	a := newApp(t)

	w, env := a.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestAdminAccessCodes(t *testing.T) {
	a := newApp(t)

	w, _ := a.do(t, httptest.NewRequest(http.MethodGet, "/api/admin/access-codes", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/access-codes",
		strings.NewReader(`{"code":"spring26","courseId":"course-3","courseName":"Spring"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "s3cret")
	w, env := a.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"code":"SPRING26"`)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/access-codes", nil)
	req.SetBasicAuth("admin", "s3cret")
	w, env = a.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)
	var codes []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &codes))
	assert.Len(t, codes, 2)
}

func TestBuildDependencies_RequiresRepositories(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	_, err = BuildDependencies(cfg, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestSeedContentSource(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Seed.BaserowAPIToken = "tok"

	src := SeedContentSource(cfg)
	assert.Equal(t, "tok", src.APIToken)
	assert.Equal(t, "804407", src.QuestionsTableID)
}
