package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/db"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
	"github.com/yigit/coursepass/internal/pkg/dberrors"
	"github.com/yigit/coursepass/internal/pkg/logger"
)

const accessCodesTable = "access_codes"

var accessCodeColumns = []string{
	"id", "code", "course_id", "course_name", "is_active", "expires_at",
	"usage_limit", "usage_count",
	"baserow_api_token", "baserow_lessons_table_id", "baserow_flashcards_table_id",
	"baserow_tests_table_id", "baserow_questions_table_id",
	"created_at", "updated_at",
}

// IAccessCodeRepository is the persistence surface used by the services
type IAccessCodeRepository interface {
	GetByCode(ctx context.Context, code string) (*models.AccessCode, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccessCode, error)
	Create(ctx context.Context, code *models.AccessCode) error
	Upsert(ctx context.Context, code *models.AccessCode) (*models.AccessCode, error)
	List(ctx context.Context) ([]*models.AccessCode, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.AccessCode, error)
}

// AccessCodeRepository handles access code database operations
type AccessCodeRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewAccessCodeRepository creates a new AccessCodeRepository
func NewAccessCodeRepository(conn db.DBTX) *AccessCodeRepository {
	return &AccessCodeRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAccessCode(row pgx.Row) (*models.AccessCode, error) {
	a := &models.AccessCode{}
	err := row.Scan(
		&a.ID, &a.Code, &a.CourseID, &a.CourseName, &a.IsActive, &a.ExpiresAt,
		&a.UsageLimit, &a.UsageCount,
		&a.ContentSource.APIToken, &a.ContentSource.LessonsTableID, &a.ContentSource.FlashcardsTableID,
		&a.ContentSource.TestsTableID, &a.ContentSource.QuestionsTableID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByCode looks up a code exactly as given. Callers normalize first.
func (r *AccessCodeRepository) GetByCode(ctx context.Context, code string) (*models.AccessCode, error) {
	sql, args, err := r.sb.Select(accessCodeColumns...).
		From(accessCodesTable).
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get access code query: %w", err)
	}

	accessCode, err := scanAccessCode(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccessCodeNotFound
		}
		logger.Error().Err(err).Msg("Error scanning access code row")
		return nil, fmt.Errorf("error getting access code: %w", err)
	}
	return accessCode, nil
}

// GetByID retrieves an access code by its id
func (r *AccessCodeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AccessCode, error) {
	sql, args, err := r.sb.Select(accessCodeColumns...).
		From(accessCodesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get access code by id query: %w", err)
	}

	accessCode, err := scanAccessCode(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("access code not found")
		}
		logger.Error().Err(err).Str("accessCodeID", id.String()).Msg("Error scanning access code row")
		return nil, fmt.Errorf("error getting access code by id: %w", err)
	}
	return accessCode, nil
}

// Create inserts a new access code and fills in the generated fields
func (r *AccessCodeRepository) Create(ctx context.Context, a *models.AccessCode) error {
	sql, args, err := r.sb.Insert(accessCodesTable).
		Columns(
			"code", "course_id", "course_name", "is_active", "expires_at", "usage_limit",
			"baserow_api_token", "baserow_lessons_table_id", "baserow_flashcards_table_id",
			"baserow_tests_table_id", "baserow_questions_table_id",
		).
		Values(
			a.Code, a.CourseID, a.CourseName, a.IsActive, a.ExpiresAt, a.UsageLimit,
			a.ContentSource.APIToken, a.ContentSource.LessonsTableID, a.ContentSource.FlashcardsTableID,
			a.ContentSource.TestsTableID, a.ContentSource.QuestionsTableID,
		).
		Suffix("RETURNING id, usage_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create access code query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.UsageCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "") {
			return apperrors.ErrAccessCodeAlreadyExists
		}
		logger.Error().Err(err).Str("code", a.Code).Msg("Error creating access code")
		return fmt.Errorf("error creating access code: %w", err)
	}
	return nil
}

// Upsert creates the code or, when it exists, refreshes its course name and
// content source while leaving course id, flags and counters untouched.
func (r *AccessCodeRepository) Upsert(ctx context.Context, a *models.AccessCode) (*models.AccessCode, error) {
	sql, args, err := r.sb.Insert(accessCodesTable).
		Columns(
			"code", "course_id", "course_name", "is_active",
			"baserow_api_token", "baserow_lessons_table_id", "baserow_flashcards_table_id",
			"baserow_tests_table_id", "baserow_questions_table_id",
		).
		Values(
			a.Code, a.CourseID, a.CourseName, a.IsActive,
			a.ContentSource.APIToken, a.ContentSource.LessonsTableID, a.ContentSource.FlashcardsTableID,
			a.ContentSource.TestsTableID, a.ContentSource.QuestionsTableID,
		).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			course_name = EXCLUDED.course_name,
			baserow_api_token = EXCLUDED.baserow_api_token,
			baserow_lessons_table_id = EXCLUDED.baserow_lessons_table_id,
			baserow_flashcards_table_id = EXCLUDED.baserow_flashcards_table_id,
			baserow_tests_table_id = EXCLUDED.baserow_tests_table_id,
			baserow_questions_table_id = EXCLUDED.baserow_questions_table_id,
			updated_at = NOW()
		RETURNING ` + joinColumns(accessCodeColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert access code query: %w", err)
	}

	saved, err := scanAccessCode(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("code", a.Code).Msg("Error upserting access code")
		return nil, fmt.Errorf("error upserting access code: %w", err)
	}
	return saved, nil
}

// List returns all access codes, newest first
func (r *AccessCodeRepository) List(ctx context.Context) ([]*models.AccessCode, error) {
	sql, args, err := r.sb.Select(accessCodeColumns...).
		From(accessCodesTable).
		OrderBy("created_at DESC", "code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list access codes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list access codes query")
		return nil, fmt.Errorf("error querying access codes: %w", err)
	}
	defer rows.Close()

	codes := []*models.AccessCode{}
	for rows.Next() {
		a, err := scanAccessCode(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning access code row: %w", err)
		}
		codes = append(codes, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating access code rows: %w", err)
	}
	return codes, nil
}

// SetActive activates or deactivates a code
func (r *AccessCodeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.AccessCode, error) {
	sql, args, err := r.sb.Update(accessCodesTable).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(accessCodeColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build set active query: %w", err)
	}

	a, err := scanAccessCode(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("access code not found")
		}
		return nil, fmt.Errorf("error updating access code: %w", err)
	}
	return a, nil
}
