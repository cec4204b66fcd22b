package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PizzaHomicide/hibiki/internal/app"
	"github.com/PizzaHomicide/hibiki/internal/config"
	"github.com/PizzaHomicide/hibiki/internal/console"
	"github.com/PizzaHomicide/hibiki/internal/log"
	"github.com/PizzaHomicide/hibiki/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	printer := console.Default()

	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not stop the music
		printer.Warnf("Failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	logger, err := log.New(log.Config{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
	})
	if err != nil {
		printer.Warnf("Failed to initialise logger, continuing without a log file: %v", err)
	} else {
		defer logger.Close()
		log.SetDefaultLogger(logger)
	}

	log.Info("Starting up hibiki", "version", version.Version, "commit", version.Commit, "build_time", version.BuildTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := app.New(cfg, printer).Main(ctx, os.Args)

	log.Info("hibiki shutting down", "exit_code", code)
	return code
}
