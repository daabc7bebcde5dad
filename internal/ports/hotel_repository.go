package ports

import (
	"context"

	"hotel-search-service/internal/domain"
)

// Port: a boundary for storing and retrieving Hotel aggregates.
// The in-memory adapter is the default; a durable backend can replace it
// without the search core noticing.
type HotelRepository interface {
	// GetByID returns the hotel or (nil, nil) when the id is absent.
	// A missing id is a normal value here, not an error.
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)

	// ListAll returns a point-in-time snapshot of the live records.
	// Order carries no meaning. Concurrent mutations never produce a
	// partially updated view of the returned slice.
	ListAll(ctx context.Context) ([]*domain.Hotel, error)

	// Add stores a new hotel. Fails with domain.ErrConflict when the
	// identity already exists.
	Add(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)

	// Update replaces the stored hotel with the same identity. Fails with
	// domain.ErrNotFound when the identity does not exist.
	Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)

	// Delete removes the hotel and reports whether anything was removed.
	// Deleting an absent id returns false, not an error.
	Delete(ctx context.Context, id string) (bool, error)

	// Exists reports whether the identity is present.
	Exists(ctx context.Context, id string) (bool, error)

	// Count returns the number of live records.
	Count(ctx context.Context) (int, error)
}
