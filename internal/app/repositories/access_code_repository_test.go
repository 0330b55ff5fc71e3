package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func accessCodeRow(id uuid.UUID, code string, limit *int, count int) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(accessCodeColumns).AddRow(
		id.String(), code, "course-1", "GED Test Prep", true, (*time.Time)(nil),
		limit, count,
		strPtr("tok"), strPtr("804403"), strPtr("804405"), strPtr("804406"), strPtr("804407"),
		now, now,
	)
}

func TestAccessCodeRepository_GetByCode(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)
	id := uuid.New()
	limit := 3

	mock.ExpectQuery(`SELECT .+ FROM access_codes WHERE code = \$1 LIMIT 1`).
		WithArgs("TEST123").
		WillReturnRows(accessCodeRow(id, "TEST123", &limit, 1))

	got, err := repo.GetByCode(context.Background(), "TEST123")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "course-1", got.CourseID)
	assert.Equal(t, 3, *got.UsageLimit)
	assert.Equal(t, 1, got.UsageCount)
	assert.Nil(t, got.ExpiresAt)

	cfg, ok := got.ContentSource.Config()
	assert.True(t, ok)
	assert.Equal(t, "804407", cfg.QuestionsTableID)
}

func TestAccessCodeRepository_GetByCode_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)

	mock.ExpectQuery(`FROM access_codes WHERE code = \$1`).
		WithArgs("NOPE").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrAccessCodeNotFound)
}

func TestAccessCodeRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)
	id := uuid.New()

	mock.ExpectQuery(`FROM access_codes WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestAccessCodeRepository_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)

	mock.ExpectQuery(`INSERT INTO access_codes`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "access_codes_code_key"})

	err := repo.Create(context.Background(), &models.AccessCode{Code: "TEST123", CourseID: "c", CourseName: "n", IsActive: true})
	assert.ErrorIs(t, err, apperrors.ErrAccessCodeAlreadyExists)
}

func TestAccessCodeRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO access_codes .+ RETURNING id, usage_count, created_at, updated_at`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "usage_count", "created_at", "updated_at"}).
			AddRow(id.String(), 0, now, now))

	a := &models.AccessCode{Code: "SPRING", CourseID: "course-9", CourseName: "Algebra", IsActive: true}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, id, a.ID)
	assert.Equal(t, now, a.CreatedAt)
}

func TestAccessCodeRepository_Upsert(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO access_codes .+ ON CONFLICT \(code\) DO UPDATE SET`).
		WillReturnRows(accessCodeRow(id, "DEMO2024", nil, 0))

	saved, err := repo.Upsert(context.Background(), &models.AccessCode{Code: "DEMO2024", CourseID: "course-2", CourseName: "GED Test Prep Demo", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, id, saved.ID)
	assert.Nil(t, saved.UsageLimit)
}

func TestAccessCodeRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)

	rows := accessCodeRow(uuid.New(), "TEST123", nil, 0)
	now := time.Now()
	rows.AddRow(
		uuid.New().String(), "DEMO2024", "course-2", "GED Test Prep Demo", false, &now,
		(*int)(nil), 4,
		(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
		now, now,
	)
	mock.ExpectQuery(`FROM access_codes ORDER BY created_at DESC, code ASC`).WillReturnRows(rows)

	codes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "DEMO2024", codes[1].Code)
	assert.False(t, codes[1].IsActive)

	_, ok := codes[1].ContentSource.Config()
	assert.False(t, ok)
}

func TestAccessCodeRepository_SetActive(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)
	id := uuid.New()

	mock.ExpectQuery(`UPDATE access_codes SET is_active = \$1, updated_at = NOW\(\) WHERE id = \$2 RETURNING`).
		WithArgs(false, id).
		WillReturnRows(accessCodeRow(id, "TEST123", nil, 0))

	_, err := repo.SetActive(context.Background(), id, false)
	require.NoError(t, err)

	mock.ExpectQuery(`UPDATE access_codes SET is_active`).
		WithArgs(true, id).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.SetActive(context.Background(), id, true)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestAccessCodeRepository_QueryFailure(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)

	mock.ExpectQuery(`FROM access_codes`).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByCode(context.Background(), "TEST123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrAccessCodeNotFound)
}
