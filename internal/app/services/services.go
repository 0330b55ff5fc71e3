package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/coursepass/internal/app/repositories"
	"github.com/yigit/coursepass/internal/pkg/baserow"
)

// Services holds all the service instances
type Services struct {
	AccessService  AccessService
	ContentService ContentService
	AdminService   AdminService
}

// Options carries the settings services need beyond their repositories
type Options struct {
	SessionTTL time.Duration
	Baserow    *baserow.Factory
	Logger     zerolog.Logger
}

// NewServices wires every service from the repositories
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	return &Services{
		AccessService:  NewAccessService(repos.AccessCodeRepository, repos.SessionRepository, opts.SessionTTL, opts.Logger),
		ContentService: NewContentService(opts.Baserow, opts.Logger),
		AdminService:   NewAdminService(repos.AccessCodeRepository, opts.Logger),
	}
}
