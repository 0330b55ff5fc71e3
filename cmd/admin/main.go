package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/yigit/coursepass/internal/app/repositories"
	"github.com/yigit/coursepass/internal/bootstrap"
	"github.com/yigit/coursepass/internal/config"
	"github.com/yigit/coursepass/internal/pkg/logger"
)

func openPostgres(cfg *config.Config, lgr zerolog.Logger) (*repositories.Repositories, func(), error) {
	pool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewRepositories(pool), pool.Close, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &commandLine{
		out:       os.Stdout,
		lgr:       logger.Get(),
		openRepos: openPostgres,
	}
	if err := cli.run(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		stop()
		os.Exit(1)
	}
}
