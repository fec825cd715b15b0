package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"plumbing_estimator/internal/adapter/http/routes"
	"plumbing_estimator/pkg/config"
	"plumbing_estimator/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	zlog "github.com/rs/zerolog/log"
)

// @title           Material List Builder API
// @version         1.0
// @description     Material list editing, supplier autofill and PDF/template export for plumbing estimates.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("[main] invalid configuration")
	}

	format := "json"
	if cfg.App.IsDev() {
		format = "console"
	}
	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error(ctx, "[main] server stopped", err)
		stop()
		os.Exit(1)
	}
}
