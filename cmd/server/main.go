package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/vancomm/minesweeper-engine/internal/app"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func newLogger(out io.Writer) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(out, nil)
	if config.Development() {
		handler = tint.NewHandler(out, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

func main() {
	// .env is optional, the environment wins
	_ = godotenv.Load()

	var out io.Writer = os.Stderr
	logFile, err := config.NewLogFile()
	if err != nil {
		newLogger(out).Error("failed to read log file config", slog.Any("error", err))
		os.Exit(1)
	}
	if logFile != nil {
		w := logFile.Writer()
		defer w.Close()
		out = io.MultiWriter(os.Stderr, w)
	}

	logger := newLogger(out)
	mines.Log = logger.With(slog.String("component", "mines"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.New(logger).Start(ctx); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}

	logger.Info("server stopped")
}
