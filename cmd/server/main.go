package main

import (
	"context"
	"flag"
	"log"

	"github.com/golang/glog"

	"learnhub/internal/auth"
	"learnhub/internal/config"
	"learnhub/internal/firebase"
	"learnhub/internal/repository"
	"learnhub/internal/router"
	"learnhub/internal/seed"
	"learnhub/internal/server"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg := config.Load()
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Firebase: %v", err)
	}
	defer app.Close()

	repo := repository.New(app, cfg)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenExpiration)

	// Converge reference data before taking traffic. Failures are logged,
	// not fatal; the next start or a manual re-seed picks them up.
	seeder := seed.New(repo, cfg)
	stats := seeder.Run(ctx)
	log.Printf("Database seeding: %s\n", stats.Summary())

	ro := router.New(repo, tokens, seeder, cfg)
	if err := server.Start(ro, cfg); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
