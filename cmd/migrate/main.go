// Command migrate applies pending goose SQL migrations from the migrations
// directory to the configured database.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/battleworld/backend/internal/app"
	"github.com/battleworld/backend/internal/config"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "migrations", "migrations directory")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		logger.Error("create migration provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied", slog.Int("count", len(results)))
}
