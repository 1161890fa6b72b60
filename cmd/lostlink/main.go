package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/lostlink/internal/buildinfo"
	"github.com/dmitrijs2005/lostlink/internal/client/cli"
	"github.com/dmitrijs2005/lostlink/internal/client/config"
	"github.com/dmitrijs2005/lostlink/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
