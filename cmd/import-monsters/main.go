package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Zanderaf/dnd5e/internal/clients/dnd5e"
	"github.com/Zanderaf/dnd5e/internal/config"
	creaturesRepo "github.com/Zanderaf/dnd5e/internal/repositories/creatures"
)

func main() {
	minCR := flag.Float64("min-cr", 0, "minimum challenge rating to import")
	maxCR := flag.Float64("max-cr", 1, "maximum challenge rating to import")
	ownerID := flag.String("owner", "srd", "owner ID assigned to imported creatures")
	realmID := flag.String("realm", "srd", "realm ID assigned to imported creatures")
	flag.Parse()

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

	apiClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: http.DefaultClient,
	})
	if err != nil {
		log.Fatalf("Failed to create 5e API client: %v", err)
	}

	repo := creaturesRepo.NewRedis(client)

	monsters, err := apiClient.ListMonstersByCR(float32(*minCR), float32(*maxCR))
	if err != nil {
		log.Fatalf("Failed to list monsters: %v", err)
	}

	imported := 0
	for _, monster := range monsters {
		monster.OwnerID = *ownerID
		monster.RealmID = *realmID

		if err := repo.Create(ctx, monster); err != nil {
			log.Printf("Skipping %s: %v", monster.Name, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d of %d monsters (CR %v-%v)", imported, len(monsters), *minCR, *maxCR)
}
