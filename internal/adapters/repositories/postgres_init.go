package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"hotel-search-service/internal/domain"
	"hotel-search-service/internal/ports"
)

// Initialize the postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createHotelsQuery := `
	CREATE TABLE IF NOT EXISTS hotels (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		price      DOUBLE PRECISION NOT NULL,
		latitude   DOUBLE PRECISION NOT NULL,
		longitude  DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ
	);
	`

	if _, err := tx.Exec(createHotelsQuery); err != nil {
		return fmt.Errorf("init schema: create hotels table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type HotelSeed struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Populate the store with hotel data from a JSON file. Seeding is additive
// and intended for local runs and demos; records that fail validation abort
// the load so a bad fixture is noticed immediately.
func SeedFromJSON(ctx context.Context, repo ports.HotelRepository, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed hotels: read %q: %w", jsonPath, err)
	}

	var data []HotelSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed hotels: parse json: %w", err)
	}

	for i, item := range data {
		hotel, err := domain.NewHotel(item.Name, item.Price, item.Latitude, item.Longitude)
		if err != nil {
			return fmt.Errorf("seed hotels: item at index %d: %w", i, err)
		}
		if _, err := repo.Add(ctx, hotel); err != nil {
			return fmt.Errorf("seed hotels: add %q: %w", hotel.Name, err)
		}
	}

	return nil
}
