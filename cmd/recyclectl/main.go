package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"gestion_tramites/internal/adapter/cli"
	"gestion_tramites/internal/app"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/infrastructure/logger"
)

func main() {
	cfg := config.Load()
	logger.Configure(logger.Config{Level: cfg.LogLevel, Output: os.Stderr, Service: "recyclectl"})

	build := func(ctx context.Context) (app.UseCases, error) {
		return app.New(ctx, cfg)
	}
	if err := cli.New(build).Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
