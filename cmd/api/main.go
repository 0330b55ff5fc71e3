package main

import (
	"os"

	"github.com/yigit/coursepass/internal/bootstrap"
	"github.com/yigit/coursepass/internal/config"
	"github.com/yigit/coursepass/internal/pkg/logger"
	"github.com/yigit/coursepass/internal/server"
)

// @title CoursePass API
// @version 1.0
// @description Access-code gated course content: lessons, flashcards and generated practice tests.

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.basic BasicAuth

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name learning_session
// @description Session token issued by POST /auth/validate

func main() {
	srv, err := server.NewServer(config.GetEnv("CONFIG_PATH", bootstrap.DefaultConfigPath))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
