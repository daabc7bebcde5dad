package domain

import (
	"fmt"
	"math"

	"hotel-search-service/internal/geo"
)

// Immutable, validated geographic coordinate (latitude, longitude in degrees).
// The zero value is the origin (0, 0); invalid values cannot be constructed
// through NewCoordinate.
type Coordinate struct {
	lat float64
	lon float64
}

// NewCoordinate validates lat/lon and returns the coordinate.
// Non-finite components fail with ErrInvalidArgument, finite values outside
// the geographic bounds fail with ErrOutOfRange.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Coordinate{}, fmt.Errorf("%w: latitude must be finite", ErrInvalidArgument)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Coordinate{}, fmt.Errorf("%w: longitude must be finite", ErrInvalidArgument)
	}
	if lat < geo.MinLatitude || lat > geo.MaxLatitude {
		return Coordinate{}, fmt.Errorf("%w: latitude %v not in [%v, %v]",
			ErrOutOfRange, lat, geo.MinLatitude, geo.MaxLatitude)
	}
	if lon < geo.MinLongitude || lon > geo.MaxLongitude {
		return Coordinate{}, fmt.Errorf("%w: longitude %v not in [%v, %v]",
			ErrOutOfRange, lon, geo.MinLongitude, geo.MaxLongitude)
	}
	return Coordinate{lat: lat, lon: lon}, nil
}

func (c Coordinate) Latitude() float64  { return c.lat }
func (c Coordinate) Longitude() float64 { return c.lon }

// DistanceTo returns the great-circle (Haversine) distance to other, in km.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	if c == other {
		return 0
	}

	lat1 := toRadians(c.lat)
	lat2 := toRadians(other.lat)
	dLat := toRadians(other.lat - c.lat)
	dLon := toRadians(other.lon - c.lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Floating-point overshoot can push a just past 1, which would make
	// Sqrt(1-a) produce NaN. Clamp before taking roots.
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	c2 := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return geo.EarthRadiusKm * c2
}

// Equals reports whether both components differ by at most the shared
// coordinate tolerance.
func (c Coordinate) Equals(other Coordinate) bool {
	return math.Abs(c.lat-other.lat) <= geo.CoordinateTolerance &&
		math.Abs(c.lon-other.lon) <= geo.CoordinateTolerance
}

// Hash combines both components quantized to the equality tolerance, so two
// coordinates that compare equal always hash equally. Quantization goes
// through int64 to fold negative zero into zero.
func (c Coordinate) Hash() uint64 {
	qLat := int64(math.Round(c.lat / geo.CoordinateTolerance))
	qLon := int64(math.Round(c.lon / geo.CoordinateTolerance))

	h := uint64(qLat)
	h = h*31 + uint64(qLon)
	return h
}

// String formats the coordinate as "(lat, lon)" with enough decimals to
// reflect the equality tolerance.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.7f, %.7f)", c.lat, c.lon)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
