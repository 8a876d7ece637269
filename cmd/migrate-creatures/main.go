package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Zanderaf/dnd5e/internal/config"
	creaturesRepo "github.com/Zanderaf/dnd5e/internal/repositories/creatures"
	"github.com/Zanderaf/dnd5e/internal/services/migration"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "parse and report without writing anything back")
	concurrency := flag.Int("concurrency", 4, "number of creatures migrated in parallel")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	repo := creaturesRepo.NewRedis(client)

	svc, err := migration.NewService(&migration.Config{
		Repository:  repo,
		Concurrency: *concurrency,
		DryRun:      *dryRun,
	})
	if err != nil {
		log.Fatalf("Failed to create migration service: %v", err)
	}

	if *dryRun {
		log.Println("Running in dry-run mode; no records will be written")
	}

	result, err := svc.Run(ctx)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Printf("Scanned %d creatures: %d migrated, %d preserved as special text, %d already current, %d failed",
		result.Scanned, result.Migrated, result.Fallbacks, result.Skipped, result.Failed)
}
