package dto

import (
	"time"

	"hotel-search-service/internal/domain"
)

type HotelRequest struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HotelResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListHotelsResponse struct {
	Hotels []HotelResponse `json:"hotels"`
}

func FromHotel(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Price:     h.Price,
		Latitude:  h.Location.Latitude(),
		Longitude: h.Location.Longitude(),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
