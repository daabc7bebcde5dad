package services

import (
	"fmt"
	"math"

	"hotel-search-service/internal/domain"
)

const (
	MinPageSize = 1
	MaxPageSize = 100
)

// SearchItem is one entry of a search page. DistanceKm is rounded to two
// decimals for presentation; ranking always used the exact value.
type SearchItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	DistanceKm float64 `json:"distance_km"`
}

// SearchPage is the paginated slice of a fully-ranked result sequence.
type SearchPage struct {
	Items      []SearchItem `json:"items"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalCount int          `json:"total_count"`
	TotalPages int          `json:"total_pages"`
}

// Paginate slices the ranked sequence: skip (page-1)*pageSize, take pageSize.
// page must be >= 1 and pageSize within [1, 100]. A page past the end yields
// empty items with correct totals; an empty input is a well-formed empty page.
func Paginate(ranked []RankedHotel, page, pageSize int) (*SearchPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("paginate: %w: page must be >= 1", domain.ErrOutOfRange)
	}
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return nil, fmt.Errorf("paginate: %w: page_size must be in [%d, %d]",
			domain.ErrOutOfRange, MinPageSize, MaxPageSize)
	}

	total := len(ranked)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]SearchItem, 0, end-start)
	for _, r := range ranked[start:end] {
		items = append(items, SearchItem{
			ID:         r.Hotel.ID,
			Name:       r.Hotel.Name,
			Price:      r.Hotel.Price,
			DistanceKm: roundKm(r.DistanceKm),
		})
	}

	return &SearchPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// roundKm rounds a distance to two decimals for presentation.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
