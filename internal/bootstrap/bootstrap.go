package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursepass/internal/app/controllers"
	appMigrations "github.com/yigit/coursepass/internal/app/migrations"
	"github.com/yigit/coursepass/internal/app/models"
	appRepos "github.com/yigit/coursepass/internal/app/repositories"
	appRoutes "github.com/yigit/coursepass/internal/app/routes"
	appServices "github.com/yigit/coursepass/internal/app/services"
	"github.com/yigit/coursepass/internal/config"
	"github.com/yigit/coursepass/internal/db"
	appMiddleware "github.com/yigit/coursepass/internal/middleware"
	"github.com/yigit/coursepass/internal/pkg/baserow"
	"github.com/yigit/coursepass/internal/pkg/logger"
	"github.com/yigit/coursepass/internal/seed"
	"github.com/yigit/coursepass/internal/telemetry"
)

// DefaultConfigPath is used when no path is given on the command line
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Baserow        *baserow.Factory
	AuthMiddleware *appMiddleware.AuthMiddleware
	RedeemLimiter  *appMiddleware.RateLimiter
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// Close releases background resources owned by the dependencies.
func (d *Dependencies) Close() {
	if d.RedeemLimiter != nil {
		d.RedeemLimiter.Stop()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	applied, err := appMigrations.NewMigrator(dbPool, lgr).MigrateFS(ctx, os.DirFS(migrationsDir))
	if err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// SeedContentSource returns the Baserow credentials attached to seeded codes.
func SeedContentSource(cfg *config.Config) models.ContentSourceConfig {
	return models.ContentSourceConfig{
		APIToken:          cfg.Seed.BaserowAPIToken,
		LessonsTableID:    cfg.Seed.LessonsTableID,
		FlashcardsTableID: cfg.Seed.FlashcardsTableID,
		TestsTableID:      cfg.Seed.TestsTableID,
		QuestionsTableID:  cfg.Seed.QuestionsTableID,
	}
}

// SeedDefaults creates the default access codes when seeding is enabled.
// Failures are logged and do not stop startup.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	if !cfg.Seed.Enabled {
		return
	}
	if err := seed.CreateDefaultData(ctx, deps.Services.AdminService, SeedContentSource(cfg), deps.Logger); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// NewBaserowFactory builds the content store client factory from config.
func NewBaserowFactory(cfg *config.Config) *baserow.Factory {
	return baserow.NewFactory(
		cfg.Baserow.APIURL,
		&http.Client{Timeout: cfg.BaserowTimeout()},
		baserow.WithObserver(telemetry.ObserveContentStoreRequest),
	)
}

// BuildDependencies initializes services, middleware and controllers on top
// of the given repositories.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}

	deps := &Dependencies{Repos: repos, Logger: lgr}
	deps.Baserow = NewBaserowFactory(cfg)

	deps.Services = appServices.NewServices(repos, appServices.Options{
		SessionTTL: cfg.SessionTTL(),
		Baserow:    deps.Baserow,
		Logger:     lgr,
	})

	if cfg.Admin.PasswordHash == "" {
		lgr.Warn().Msg("No admin password hash configured, admin routes will refuse every request")
	}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(
		deps.Services.AccessService,
		cfg.Session.CookieName,
		cfg.Admin.Username,
		cfg.Admin.PasswordHash,
	)

	if cfg.RateLimit.Enabled {
		limits := appMiddleware.RedeemRateLimitConfig()
		limits.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
		limits.BurstSize = cfg.RateLimit.BurstSize
		deps.RedeemLimiter = appMiddleware.NewRateLimiter(limits)
	}

	deps.Controllers = appRoutes.Controllers{
		Auth: appControllers.NewAuthController(
			deps.Services.AccessService,
			appControllers.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.IsProduction()},
			lgr,
		),
		Content: appControllers.NewContentController(deps.Services.ContentService, lgr),
		Admin:   appControllers.NewAdminController(deps.Services.AdminService, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RecoveryMiddleware(lgr),
		appMiddleware.RequestIDMiddleware(),
	)
	if cfg.Metrics.Enabled {
		router.Use(appMiddleware.MetricsMiddleware())
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	router.Use(appMiddleware.LoggerMiddleware(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.RedeemLimiter)

	return router
}
