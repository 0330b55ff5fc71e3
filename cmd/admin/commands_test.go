package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/repositories"
	"github.com/yigit/coursepass/internal/app/repositories/repotest"
	"github.com/yigit/coursepass/internal/config"
	"github.com/yigit/coursepass/internal/pkg/auth"
	"github.com/yigit/coursepass/internal/pkg/baserow/baserowtest"
)

func setup(t *testing.T) (*commandLine, *repotest.Store, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	store := repotest.NewStore()
	out := &bytes.Buffer{}
	return &commandLine{
		cfg: cfg,
		lgr: zerolog.Nop(),
		out: out,
		openRepos: func(*config.Config, zerolog.Logger) (*repositories.Repositories, func(), error) {
			return store.Repositories(), func() {}, nil
		},
	}, store, out
}

func run(c *commandLine, args ...string) error {
	return c.run(context.Background(), append([]string{"coursepass-admin"}, args...))
}

func TestCreateCode(t *testing.T) {
	c, store, out := setup(t)

	err := run(c, "create-code", "--code", "spring26", "--course-id", "course-9", "--course-name", "Spring",
		"--usage-limit", "3", "--expires-at", "2030-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "created SPRING26")

	codes, err := store.AccessCodes().List(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, 3, *codes[0].UsageLimit)
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), codes[0].ExpiresAt.UTC())
}

func TestCreateCode_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing course", args: []string{"create-code", "--code", "ABC123"}},
		{name: "bad expiry", args: []string{"create-code", "--code", "ABC123", "--course-id", "c", "--course-name", "n", "--expires-at", "tomorrow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store, _ := setup(t)
			assert.Error(t, run(c, tt.args...))
			codes, err := store.AccessCodes().List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, codes)
		})
	}
}

func TestListAndToggleCodes(t *testing.T) {
	c, store, out := setup(t)
	code := store.AddCode(models.AccessCode{Code: "TEST123", CourseID: "course-1", CourseName: "GED", IsActive: true})

	require.NoError(t, run(c, "list-codes"))
	assert.Contains(t, out.String(), "TEST123")
	assert.Contains(t, out.String(), code.ID.String())

	out.Reset()
	require.NoError(t, run(c, "deactivate-code", code.ID.String()))
	assert.Equal(t, "TEST123 active=false\n", out.String())
	assert.False(t, store.Code(code.ID).IsActive)

	require.NoError(t, run(c, "activate-code", code.ID.String()))
	assert.True(t, store.Code(code.ID).IsActive)

	assert.Error(t, run(c, "deactivate-code", "not-a-uuid"))
}

func TestPurgeSessions(t *testing.T) {
	c, store, out := setup(t)
	code := store.AddCode(models.AccessCode{Code: "TEST123", CourseID: "course-1", IsActive: true})
	store.AddSession(models.Session{Token: "old", AccessCodeID: code.ID, ExpiresAt: time.Now().Add(-time.Hour)})
	store.AddSession(models.Session{Token: "live", AccessCodeID: code.ID, ExpiresAt: time.Now().Add(time.Hour)})

	require.NoError(t, run(c, "purge-sessions"))
	assert.Equal(t, "purged 1 expired sessions\n", out.String())
	assert.Equal(t, 1, store.SessionCount())
}

func TestSeedCommands(t *testing.T) {
	c, store, out := setup(t)
	srv := baserowtest.NewServer(t, "seed-token")
	c.cfg.Baserow.APIURL = srv.URL

	assert.EqualError(t, run(c, "seed-content"), "SEED_BASEROW_API_TOKEN is required to seed content")

	c.cfg.Seed.BaserowAPIToken = "seed-token"
	require.NoError(t, run(c, "seed"))
	codes, err := store.AccessCodes().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, codes, 2)

	out.Reset()
	require.NoError(t, run(c, "seed-content"))
	assert.True(t, strings.HasPrefix(out.String(), "lessons=5 flashcards=24 tests=3 questions=20"), out.String())
	assert.Len(t, srv.Rows(c.cfg.Seed.QuestionsTableID), 20)
}

func TestHashPassword(t *testing.T) {
	c, _, out := setup(t)
	orig := readPasswordFunc
	t.Cleanup(func() { readPasswordFunc = orig })

	readPasswordFunc = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	require.NoError(t, run(c, "hash-password"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	hash := lines[len(lines)-1]
	assert.True(t, auth.CheckPassword(hash, "s3cret"))

	readPasswordFunc = func(int) ([]byte, error) { return nil, nil }
	assert.Error(t, run(c, "hash-password"))

	readPasswordFunc = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	assert.Error(t, run(c, "hash-password"))
}
