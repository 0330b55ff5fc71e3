package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/repositories"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
	"github.com/yigit/coursepass/internal/pkg/auth"
	"github.com/yigit/coursepass/internal/telemetry"
)

// AccessService defines access code redemption and session operations
type AccessService interface {
	ValidateAccessCode(ctx context.Context, code string) (*models.RedeemedCode, error)
	CreateSession(ctx context.Context, accessCodeID uuid.UUID) (string, time.Time, error)
	GetSession(ctx context.Context, token string) (*models.SessionData, error)
	ClearSession(ctx context.Context, token string) error
	GetContentSourceConfig(ctx context.Context, token string) (*models.CourseContentSource, error)
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// accessServiceImpl implements the AccessService interface
type accessServiceImpl struct {
	accessCodeRepo repositories.IAccessCodeRepository
	sessionRepo    repositories.ISessionRepository
	sessionTTL     time.Duration
	newToken       func() (string, error)
	now            func() time.Time
	logger         zerolog.Logger
}

// NewAccessService creates a new access service instance
func NewAccessService(
	accessCodeRepo repositories.IAccessCodeRepository,
	sessionRepo repositories.ISessionRepository,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) AccessService {
	return &accessServiceImpl{
		accessCodeRepo: accessCodeRepo,
		sessionRepo:    sessionRepo,
		sessionTTL:     sessionTTL,
		newToken:       auth.GenerateSessionToken,
		now:            time.Now,
		logger:         logger.With().Str("component", "access_service").Logger(),
	}
}

// NormalizeCode trims and uppercases a code the way it is stored.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateAccessCode checks a normalized code without side effects. Checks
// run in order: existence, active flag, expiry, usage limit.
func (s *accessServiceImpl) ValidateAccessCode(ctx context.Context, code string) (*models.RedeemedCode, error) {
	accessCode, err := s.accessCodeRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccessCodeNotFound) {
			telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionInvalid).Inc()
			return nil, apperrors.ErrAccessCodeNotFound
		}
		telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionError).Inc()
		return nil, fmt.Errorf("failed to look up access code: %w", err)
	}

	if !accessCode.IsActive {
		telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionInactive).Inc()
		return nil, apperrors.ErrAccessCodeInactive
	}

	if accessCode.IsExpired(s.now()) {
		telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionExpired).Inc()
		return nil, apperrors.ErrAccessCodeExpired
	}

	if accessCode.UsageExhausted() {
		telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionUsageExceeded).Inc()
		return nil, apperrors.ErrAccessCodeUsageExceeded
	}

	return &models.RedeemedCode{
		ID:         accessCode.ID,
		CourseID:   accessCode.CourseID,
		CourseName: accessCode.CourseName,
	}, nil
}

// CreateSession issues a new session for a validated code and counts the
// redemption. A concurrent redemption that reaches the usage limit first
// makes this fail with ErrAccessCodeUsageExceeded.
func (s *accessServiceImpl) CreateSession(ctx context.Context, accessCodeID uuid.UUID) (string, time.Time, error) {
	token, err := s.newToken()
	if err != nil {
		return "", time.Time{}, err
	}

	now := s.now()
	session := &models.Session{
		Token:        token,
		AccessCodeID: accessCodeID,
		ExpiresAt:    now.Add(s.sessionTTL),
		LastActiveAt: now,
	}

	if err := s.sessionRepo.CreateWithUsage(ctx, session); err != nil {
		if errors.Is(err, apperrors.ErrAccessCodeUsageExceeded) {
			telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionUsageExceeded).Inc()
			return "", time.Time{}, apperrors.ErrAccessCodeUsageExceeded
		}
		if errors.Is(err, apperrors.ErrAccessCodeNotFound) {
			telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionInvalid).Inc()
			return "", time.Time{}, apperrors.ErrAccessCodeNotFound
		}
		telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionError).Inc()
		return "", time.Time{}, fmt.Errorf("failed to create session: %w", err)
	}

	telemetry.AccessCodeRedemptionsTotal.WithLabelValues(telemetry.RedemptionSuccess).Inc()
	s.logger.Info().
		Str("accessCodeID", accessCodeID.String()).
		Time("expiresAt", session.ExpiresAt).
		Msg("Session created")

	return token, session.ExpiresAt, nil
}

// lookup returns the live session for token. A missing token or row gives
// (nil, nil). An expired row is deleted and also gives (nil, nil).
func (s *accessServiceImpl) lookup(ctx context.Context, token string) (*models.SessionWithCode, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err := s.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
			s.logger.Warn().Err(err).Str("sessionID", session.ID.String()).Msg("Failed to delete expired session")
		}
		return nil, nil
	}

	return session, nil
}

// GetSession returns the session data for a valid token and refreshes its
// last activity. It returns (nil, nil) when there is no valid session.
func (s *accessServiceImpl) GetSession(ctx context.Context, token string) (*models.SessionData, error) {
	session, err := s.lookup(ctx, token)
	if err != nil || session == nil {
		return nil, err
	}

	if err := s.sessionRepo.TouchLastActive(ctx, session.ID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}

	return &models.SessionData{
		AccessCodeID: session.AccessCodeID,
		CourseID:     session.CourseID,
		CourseName:   session.CourseName,
		Token:        session.Token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// ClearSession deletes every session with the token. An empty token is a no-op.
func (s *accessServiceImpl) ClearSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// GetContentSourceConfig resolves the Baserow credentials of the session's
// course. It fails with ErrUnauthenticated when there is no valid session and
// with ErrContentSourceNotConfigured when any credential is missing.
func (s *accessServiceImpl) GetContentSourceConfig(ctx context.Context, token string) (*models.CourseContentSource, error) {
	session, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	cfg, ok := session.ContentSource.Config()
	if !ok {
		return nil, apperrors.ErrContentSourceNotConfigured
	}

	return &models.CourseContentSource{Config: cfg, CourseID: session.CourseID}, nil
}

// PurgeExpiredSessions deletes all sessions past their expiry.
func (s *accessServiceImpl) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	telemetry.SessionsPurgedTotal.Add(float64(n))
	s.logger.Info().Int64("deleted", n).Msg("Expired sessions purged")
	return n, nil
}
