package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/models"
	"github.com/yigit/coursepass/internal/app/repositories"
	"github.com/yigit/coursepass/internal/pkg/apperrors"
)

// AdminService defines access code management operations
type AdminService interface {
	CreateAccessCode(ctx context.Context, code *models.AccessCode) (*models.AccessCode, error)
	UpsertAccessCode(ctx context.Context, code *models.AccessCode) (*models.AccessCode, error)
	ListAccessCodes(ctx context.Context) ([]*models.AccessCode, error)
	SetAccessCodeActive(ctx context.Context, id uuid.UUID, active bool) (*models.AccessCode, error)
	GetAccessCode(ctx context.Context, id uuid.UUID) (*models.AccessCode, error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	accessCodeRepo repositories.IAccessCodeRepository
	logger         zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(accessCodeRepo repositories.IAccessCodeRepository, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		accessCodeRepo: accessCodeRepo,
		logger:         logger.With().Str("component", "admin_service").Logger(),
	}
}

// validateAccessCode normalizes the code and checks required fields
func (s *adminServiceImpl) validateAccessCode(code *models.AccessCode) error {
	if code == nil {
		return fmt.Errorf("%w: access code is nil", apperrors.ErrValidationFailed)
	}

	code.Code = NormalizeCode(code.Code)
	if code.Code == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.ContainsAny(code.Code, " \t\r\n") {
		return fmt.Errorf("%w: code cannot contain whitespace", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(code.CourseID) == "" {
		return fmt.Errorf("%w: courseId cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(code.CourseName) == "" {
		return fmt.Errorf("%w: courseName cannot be empty", apperrors.ErrValidationFailed)
	}
	if code.UsageLimit != nil && *code.UsageLimit < 1 {
		return fmt.Errorf("%w: usageLimit must be at least 1", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateAccessCode stores a new code. Duplicates fail with ErrAccessCodeAlreadyExists.
func (s *adminServiceImpl) CreateAccessCode(ctx context.Context, code *models.AccessCode) (*models.AccessCode, error) {
	if err := s.validateAccessCode(code); err != nil {
		return nil, err
	}

	if err := s.accessCodeRepo.Create(ctx, code); err != nil {
		return nil, err
	}

	s.logger.Info().Str("code", code.Code).Str("courseID", code.CourseID).Msg("Access code created")
	return code, nil
}

// UpsertAccessCode creates or refreshes a code by its value
func (s *adminServiceImpl) UpsertAccessCode(ctx context.Context, code *models.AccessCode) (*models.AccessCode, error) {
	if err := s.validateAccessCode(code); err != nil {
		return nil, err
	}
	return s.accessCodeRepo.Upsert(ctx, code)
}

// ListAccessCodes returns every code
func (s *adminServiceImpl) ListAccessCodes(ctx context.Context) ([]*models.AccessCode, error) {
	return s.accessCodeRepo.List(ctx)
}

// GetAccessCode returns one code by id
func (s *adminServiceImpl) GetAccessCode(ctx context.Context, id uuid.UUID) (*models.AccessCode, error) {
	return s.accessCodeRepo.GetByID(ctx, id)
}

// SetAccessCodeActive flips the active flag. Existing sessions are kept.
func (s *adminServiceImpl) SetAccessCodeActive(ctx context.Context, id uuid.UUID, active bool) (*models.AccessCode, error) {
	code, err := s.accessCodeRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("code", code.Code).Bool("active", active).Msg("Access code updated")
	return code, nil
}
