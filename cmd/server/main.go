// Command server runs the recruitment platform HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) or environment variables; a
// local .env file is loaded when present.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/battleworld/backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
