// Command remind emails candidates whose interviews start inside the
// configured reminder window and have not been reminded yet. It is intended
// to be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/battleworld/backend/internal/adapter/email"
	"github.com/battleworld/backend/internal/adapter/postgres"
	"github.com/battleworld/backend/internal/adapter/postgres/emaillog"
	"github.com/battleworld/backend/internal/adapter/postgres/interview"
	"github.com/battleworld/backend/internal/adapter/postgres/user"
	"github.com/battleworld/backend/internal/app"
	"github.com/battleworld/backend/internal/config"
	"github.com/battleworld/backend/internal/service/reminder"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	emailClient := email.NewClient(cfg.Email.APIURL, cfg.Email.APIKey, cfg.Email.FromAddress, cfg.Email.Timeout, logger)

	svc := reminder.NewService(
		logger,
		interview.New(pool),
		user.New(pool),
		emaillog.New(pool),
		emailClient,
		postgres.NewTxManager(pool),
		cfg.Recruitment,
	)

	result, err := svc.Dispatch(ctx)
	if err != nil {
		logger.Error("reminder dispatch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("reminder dispatch completed",
		slog.Int("due", result.Due),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)
}
