package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"hotel-search-service/internal/geo"
)

// Hotel is the point-of-interest aggregate. Field invariants (name, price)
// are enforced here; location invariants are delegated to Coordinate.
// ID and CreatedAt never change after construction; UpdatedAt is nil until
// the first mutation.
type Hotel struct {
	ID        string
	Name      string
	Price     float64
	Location  Coordinate
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewHotel validates and trims the inputs, assigns a fresh id and stamps
// CreatedAt with the current time.
func NewHotel(name string, price float64, lat, lon float64) (*Hotel, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	location, err := NewCoordinate(lat, lon)
	if err != nil {
		return nil, err
	}

	return &Hotel{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Location:  location,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// RehydrateHotel rebuilds a hotel whose identity and timestamps are already
// known, e.g. when loading rows from an external store. Field validation is
// the same as NewHotel.
func RehydrateHotel(id, name string, price float64, lat, lon float64,
	createdAt time.Time, updatedAt *time.Time) (*Hotel, error) {

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: hotel id must be non-empty", ErrInvalidArgument)
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	location, err := NewCoordinate(lat, lon)
	if err != nil {
		return nil, err
	}

	return &Hotel{
		ID:        id,
		Name:      name,
		Price:     price,
		Location:  location,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Update revalidates all mutable fields, replaces them in place and stamps
// UpdatedAt. ID and CreatedAt are left untouched.
func (h *Hotel) Update(name string, price float64, lat, lon float64) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}
	location, err := NewCoordinate(lat, lon)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	h.Name = name
	h.Price = price
	h.Location = location
	h.UpdatedAt = &now
	return nil
}

// DistanceTo returns the great-circle distance from the hotel to c, in km.
func (h *Hotel) DistanceTo(c Coordinate) float64 {
	return h.Location.DistanceTo(c)
}

// Clone returns an independent copy. The store hands out clones so callers
// can never observe or produce a torn record.
func (h *Hotel) Clone() *Hotel {
	dup := *h
	if h.UpdatedAt != nil {
		t := *h.UpdatedAt
		dup.UpdatedAt = &t
	}
	return &dup
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name must be non-empty", ErrInvalidArgument)
	}
	if utf8.RuneCountInString(name) > geo.MaxNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", ErrInvalidArgument, geo.MaxNameLength)
	}
	return name, nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) {
		return fmt.Errorf("%w: price must be finite", ErrInvalidArgument)
	}
	if price < geo.MinPrice || price > geo.MaxPrice {
		return fmt.Errorf("%w: price %v not in [%v, %v]",
			ErrOutOfRange, price, geo.MinPrice, geo.MaxPrice)
	}
	return nil
}
