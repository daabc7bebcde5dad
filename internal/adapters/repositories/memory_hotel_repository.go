package repositories

import (
	"context"
	"fmt"
	"sync"

	"hotel-search-service/internal/domain"
)

// In-memory implementation of the HotelRepository port. The map holds clones
// and every read hands out clones, so no caller ever shares a record with the
// store or with another caller. Lifetime is process-wide; a restart loses the
// data, which is the accepted trade-off of this backend.
type MemoryHotelRepository struct {
	mu     sync.RWMutex
	hotels map[string]*domain.Hotel
}

func NewMemoryHotelRepository() *MemoryHotelRepository {
	return &MemoryHotelRepository{hotels: make(map[string]*domain.Hotel)}
}

func (r *MemoryHotelRepository) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hotels[id]
	if !ok {
		return nil, nil
	}
	return h.Clone(), nil
}

// ListAll returns a point-in-time snapshot. Mutations after the snapshot is
// taken cannot affect the returned slice.
func (r *MemoryHotelRepository) ListAll(_ context.Context) ([]*domain.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		out = append(out, h.Clone())
	}
	return out, nil
}

func (r *MemoryHotelRepository) Add(_ context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hotels[hotel.ID]; exists {
		return nil, fmt.Errorf("memory repository: add id %q: %w", hotel.ID, domain.ErrConflict)
	}
	r.hotels[hotel.ID] = hotel.Clone()
	return hotel, nil
}

func (r *MemoryHotelRepository) Update(_ context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hotels[hotel.ID]; !exists {
		return nil, fmt.Errorf("memory repository: update id %q: %w", hotel.ID, domain.ErrNotFound)
	}
	r.hotels[hotel.ID] = hotel.Clone()
	return hotel, nil
}

// Delete is idempotent: removing an absent id reports false, not an error.
func (r *MemoryHotelRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hotels[id]; !exists {
		return false, nil
	}
	delete(r.hotels, id)
	return true, nil
}

func (r *MemoryHotelRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.hotels[id]
	return ok, nil
}

func (r *MemoryHotelRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.hotels), nil
}
