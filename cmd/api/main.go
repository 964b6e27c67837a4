package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"gestion_tramites/internal/adapter/http/routes"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/infrastructure/logger"
)

// @title           Gestión de Trámites API
// @version         1.0
// @description     Case, procedure and document lifecycle engine with soft-delete cascade and recycle bin.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	cfg := config.Load()
	logger.Configure(logger.Config{Level: cfg.LogLevel, Service: "gestion-tramites-api"})
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := routes.Run(ctx, cfg)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("failed to start the application")
		os.Exit(1)
	}
}
