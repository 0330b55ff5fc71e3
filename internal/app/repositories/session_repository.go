package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/db"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
	"github.com/yigit/coursepass/internal/pkg/logger"
)

const sessionsTable = "sessions"

// ISessionRepository is the persistence surface used by the services
type ISessionRepository interface {
	CreateWithUsage(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.SessionWithCode, error)
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// SessionRepository handles session database operations
type SessionRepository struct {
	db db.TxBeginner
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(conn db.TxBeginner) *SessionRepository {
	return &SessionRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateWithUsage counts one redemption against the session's access code
// and inserts the session in the same transaction. The increment only
// happens while the code is under its usage limit; otherwise nothing is
// written and ErrAccessCodeUsageExceeded is returned, or ErrAccessCodeNotFound
// when the code row does not exist.
func (r *SessionRepository) CreateWithUsage(ctx context.Context, s *models.Session) error {
	incSQL, incArgs, err := r.sb.Update(accessCodesTable).
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.AccessCodeID}).
		Where("(usage_limit IS NULL OR usage_count < usage_limit)").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build usage increment query: %w", err)
	}

	existsSQL, existsArgs, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From(accessCodesTable).
		Where(squirrel.Eq{"id": s.AccessCodeID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build access code exists query: %w", err)
	}

	insSQL, insArgs, err := r.sb.Insert(sessionsTable).
		Columns("token", "access_code_id", "expires_at", "last_active_at").
		Values(s.Token, s.AccessCodeID, s.ExpiresAt, s.LastActiveAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create session query: %w", err)
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, incSQL, incArgs...)
		if err != nil {
			return fmt.Errorf("error incrementing access code usage: %w", err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, existsSQL, existsArgs...).Scan(&exists); err != nil {
				return fmt.Errorf("error checking access code: %w", err)
			}
			if !exists {
				return apperrors.ErrAccessCodeNotFound
			}
			return apperrors.ErrAccessCodeUsageExceeded
		}

		if err := tx.QueryRow(ctx, insSQL, insArgs...).Scan(&s.ID, &s.CreatedAt); err != nil {
			logger.Error().Err(err).Str("accessCodeID", s.AccessCodeID.String()).Msg("Error inserting session")
			return fmt.Errorf("error creating session: %w", err)
		}
		return nil
	})
}

// GetByToken returns the session with its access code, or
// ErrSessionNotFound. Expiry is not checked here.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.SessionWithCode, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.token", "s.access_code_id", "s.expires_at", "s.last_active_at", "s.created_at",
		"a.course_id", "a.course_name",
		"a.baserow_api_token", "a.baserow_lessons_table_id", "a.baserow_flashcards_table_id",
		"a.baserow_tests_table_id", "a.baserow_questions_table_id",
	).
		From(sessionsTable + " s").
		Join(accessCodesTable + " a ON a.id = s.access_code_id").
		Where(squirrel.Eq{"s.token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	s := &models.SessionWithCode{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.Token, &s.AccessCodeID, &s.ExpiresAt, &s.LastActiveAt, &s.CreatedAt,
		&s.CourseID, &s.CourseName,
		&s.ContentSource.APIToken, &s.ContentSource.LessonsTableID, &s.ContentSource.FlashcardsTableID,
		&s.ContentSource.TestsTableID, &s.ContentSource.QuestionsTableID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Msg("Error scanning session row")
		return nil, fmt.Errorf("error getting session: %w", err)
	}
	return s, nil
}

// TouchLastActive records activity on a session
func (r *SessionRepository) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := r.sb.Update(sessionsTable).
		Set("last_active_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build touch session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating session activity: %w", err)
	}
	return nil
}

// DeleteByID removes one session
func (r *SessionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete(sessionsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteByToken removes every session carrying the token
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	sql, args, err := r.sb.Delete(sessionsTable).Where(squirrel.Eq{"token": token}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete session by token query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting session by token: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes sessions that expired before the given time
func (r *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	sql, args, err := r.sb.Delete(sessionsTable).Where(squirrel.Lt{"expires_at": before}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge sessions query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error purging expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
