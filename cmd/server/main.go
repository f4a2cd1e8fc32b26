package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lfgames/gameslib/internal/server"
	"github.com/lfgames/gameslib/internal/server/config"
)

func main() {
	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
