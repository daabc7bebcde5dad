package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hotel-search-service/internal/domain"
	"hotel-search-service/internal/ports"
)

// SearchCache caches ranked search pages keyed by normalized query
// parameters. Implementations treat a miss as (nil, nil).
type SearchCache interface {
	Get(ctx context.Context, key string) (*SearchPage, error)
	Set(ctx context.Context, key string, page *SearchPage) error
	InvalidateAll(ctx context.Context) error
}

// Event subjects emitted after successful mutations.
const (
	SubjectHotelCreated = "hotel.created"
	SubjectHotelUpdated = "hotel.updated"
	SubjectHotelDeleted = "hotel.deleted"
)

// HotelEvent is the payload published on mutation subjects.
type HotelEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// HotelService orchestrates the search engine and the record store, plus the
// optional collaborators around them (result cache, event publisher). Cache
// and publisher may be nil; the service then runs store-only.
type HotelService struct {
	repo      ports.HotelRepository
	cache     SearchCache
	publisher ports.EventPublisher
	log       *zap.Logger
}

func NewHotelService(repo ports.HotelRepository, cache SearchCache,
	publisher ports.EventPublisher, log *zap.Logger) *HotelService {
	if log == nil {
		log = zap.NewNop()
	}
	return &HotelService{repo: repo, cache: cache, publisher: publisher, log: log}
}

// SearchHotelsRequest is the query contract: coordinate, optional radius and
// the requested page window.
type SearchHotelsRequest struct {
	Latitude  float64
	Longitude float64
	RadiusKm  *float64
	Page      int
	PageSize  int
}

// SearchHotels runs the two-phase ranked search over a store snapshot and
// slices the requested page. Identical queries are served from the cache
// until a mutation invalidates it.
func (s *HotelService) SearchHotels(ctx context.Context, req SearchHotelsRequest) (*SearchPage, error) {
	// Reject bad input before consulting cache or store.
	if _, err := domain.NewCoordinate(req.Latitude, req.Longitude); err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	key := searchCacheKey(req)
	if s.cache != nil {
		page, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("search cache read failed", zap.Error(err))
		} else if page != nil {
			return page, nil
		}
	}

	hotels, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search hotels: list records: %w", err)
	}

	ranked, err := Search(hotels, SearchRequest{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
	})
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	page, err := Paginate(ranked, req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, page); err != nil {
			s.log.Warn("search cache write failed", zap.Error(err))
		}
	}

	return page, nil
}

// CreateHotel validates the fields through the domain factory and stores the
// new record.
func (s *HotelService) CreateHotel(ctx context.Context, name string, price, lat, lon float64) (*domain.Hotel, error) {
	hotel, err := domain.NewHotel(name, price, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	stored, err := s.repo.Add(ctx, hotel)
	if err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.afterMutation(ctx, SubjectHotelCreated, stored.ID, stored.Name)
	return stored, nil
}

// GetHotel returns the record or (nil, nil) when the id is absent.
func (s *HotelService) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	hotel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}
	return hotel, nil
}

// ListHotels returns a snapshot of all live records.
func (s *HotelService) ListHotels(ctx context.Context) ([]*domain.Hotel, error) {
	hotels, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

// UpdateHotel revalidates and replaces all mutable fields of an existing
// record. Fails with domain.ErrNotFound when the id is absent.
func (s *HotelService) UpdateHotel(ctx context.Context, id, name string, price, lat, lon float64) (*domain.Hotel, error) {
	hotel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("update hotel: id %q: %w", id, domain.ErrNotFound)
	}

	if err := hotel.Update(name, price, lat, lon); err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	stored, err := s.repo.Update(ctx, hotel)
	if err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	s.afterMutation(ctx, SubjectHotelUpdated, stored.ID, stored.Name)
	return stored, nil
}

// DeleteHotel removes the record and reports whether anything was deleted.
func (s *HotelService) DeleteHotel(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete hotel: %w", err)
	}

	if deleted {
		s.afterMutation(ctx, SubjectHotelDeleted, id, "")
	}
	return deleted, nil
}

// afterMutation invalidates cached search pages and publishes the event.
// Both are best effort: a cache or broker hiccup must not fail the mutation
// that already committed.
func (s *HotelService) afterMutation(ctx context.Context, subject, id, name string) {
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.Warn("search cache invalidation failed", zap.Error(err))
		}
	}
	if s.publisher != nil {
		evt := HotelEvent{ID: id, Name: name, OccurredAt: time.Now().UTC()}
		if err := s.publisher.Publish(ctx, subject, evt); err != nil {
			s.log.Warn("event publish failed", zap.String("subject", subject), zap.Error(err))
		}
	}
}

// searchCacheKey normalizes query parameters into one cache key. Coordinates
// are printed at the equality tolerance so equal queries share an entry.
func searchCacheKey(req SearchHotelsRequest) string {
	radius := "default"
	if req.RadiusKm != nil {
		radius = fmt.Sprintf("%g", *req.RadiusKm)
	}
	return fmt.Sprintf("%.7f:%.7f:%s:%d:%d",
		req.Latitude, req.Longitude, radius, req.Page, req.PageSize)
}
