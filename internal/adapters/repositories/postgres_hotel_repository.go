package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotel-search-service/internal/domain"
)

// Postgres-backed implementation of the HotelRepository port. It exists to
// prove the persistence seam: swapping it for the in-memory store never
// touches the search core.
type PostgresHotelRepository struct{ DB *sql.DB }

func NewPostgresHotelRepository(db *sql.DB) *PostgresHotelRepository {
	return &PostgresHotelRepository{DB: db}
}

func (r *PostgresHotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	query := `
	SELECT id, name, price, latitude, longitude, created_at, updated_at
	FROM hotels
	WHERE id = $1;
	`
	hotel, err := scanHotel(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hotel by id: %w", err)
	}
	return hotel, nil
}

func (r *PostgresHotelRepository) ListAll(ctx context.Context) ([]*domain.Hotel, error) {
	query := `
	SELECT id, name, price, latitude, longitude, created_at, updated_at
	FROM hotels
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list hotels: query hotels table: %w", err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0, 64)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("list hotels: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hotels: row iteration: %w", err)
	}

	return hotels, nil
}

func (r *PostgresHotelRepository) Add(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	query := `
	INSERT INTO hotels (id, name, price, latitude, longitude, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING;
	`
	res, err := r.DB.ExecContext(ctx, query,
		hotel.ID, hotel.Name, hotel.Price,
		hotel.Location.Latitude(), hotel.Location.Longitude(),
		hotel.CreatedAt, hotel.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("add hotel: insert: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("add hotel: rows affected: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("add hotel: id %q: %w", hotel.ID, domain.ErrConflict)
	}
	return hotel, nil
}

func (r *PostgresHotelRepository) Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	query := `
	UPDATE hotels
	SET name = $2, price = $3, latitude = $4, longitude = $5, updated_at = $6
	WHERE id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query,
		hotel.ID, hotel.Name, hotel.Price,
		hotel.Location.Latitude(), hotel.Location.Longitude(), hotel.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update hotel: exec: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update hotel: rows affected: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("update hotel: id %q: %w", hotel.ID, domain.ErrNotFound)
	}
	return hotel, nil
}

func (r *PostgresHotelRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("delete hotel: exec: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete hotel: rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresHotelRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("hotel exists: %w", err)
	}
	return exists, nil
}

func (r *PostgresHotelRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotels;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count hotels: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanHotel rehydrates one row through the domain factory so stored records
// are revalidated on the way back in.
func scanHotel(row rowScanner) (*domain.Hotel, error) {
	var (
		id, name  string
		price     float64
		lat, lon  float64
		createdAt time.Time
		updatedAt sql.NullTime
	)
	if err := row.Scan(&id, &name, &price, &lat, &lon, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var updated *time.Time
	if updatedAt.Valid {
		updated = &updatedAt.Time
	}

	hotel, err := domain.RehydrateHotel(id, name, price, lat, lon, createdAt, updated)
	if err != nil {
		return nil, fmt.Errorf("rehydrate row id=%q: %w", id, err)
	}
	return hotel, nil
}
