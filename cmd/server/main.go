package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/foundry/internal/api"
	"github.com/mcoot/foundry/internal/config"
	"github.com/mcoot/foundry/internal/factory"
	"github.com/mcoot/foundry/internal/web"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envPath := flag.String("env", ".env", "Path to a .env file")
	flag.Parse()

	if err := config.LoadDotEnv(*envPath); err != nil {
		slog.Error("failed to load .env", slog.String("error", err.Error()))
		os.Exit(1)
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := config.NewLogger(settings.Log, os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := factory.New(ctx, factory.ConfigFromSettings(settings, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Identity: app.Identity,
		World:    app.World,
	})
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:   logger,
		Identity: app.Identity,
		World:    app.World,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := api.NewServer(mux, settings.Server, logger)
	logger.Info("server starting",
		slog.String("addr", server.Addr()),
		slog.String("storage", settings.Storage.Type),
	)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
