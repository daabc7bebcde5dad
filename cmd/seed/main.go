// Command seed loads a hotel fixture file into the configured postgres store.
// Intended for local development and demos; the server can also self-seed via
// SEED_PATH.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"hotel-search-service/internal/adapters/repositories"
	"hotel-search-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := flag.String("seed", "data/seeds/hotels.json", "path to the hotel fixture JSON")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required (the in-memory store cannot be seeded from outside the process)")
	}

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := repositories.InitSchema(sqlDB); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresHotelRepository(sqlDB)
	if err := repositories.SeedFromJSON(context.Background(), repo, *seedPath); err != nil {
		log.Fatal(err)
	}

	count, err := repo.Count(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("seed complete: %d hotels in store", count)
}
