// Package geo is the single source of truth for the numeric constants shared
// by coordinate validation, distance math and search scoring. Components must
// read these values from here rather than redeclare the literals.
package geo

import "math"

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// Mean Earth radius in kilometers, used by the Haversine formula.
	EarthRadiusKm = 6371.0

	// One degree of latitude spans roughly 111 km everywhere on the sphere.
	// Used by the bounding-box pre-filter, not by exact distance math.
	KmPerDegreeLat = 111.0

	// Weights for the combined price/distance ranking score. They sum to 1.
	PriceWeight    = 0.5
	DistanceWeight = 0.5

	// PolarCosineThreshold marks the latitude band around the poles where
	// cos(lat) is too small to derive a meaningful longitude delta. Inside
	// that band the bounding box accepts all longitudes.
	PolarCosineThreshold = 1e-4
	PolarLongitudeRange  = 180.0

	// Two coordinates whose components differ by at most this many degrees
	// are considered equal. Hashing quantizes to the same tolerance.
	CoordinateTolerance = 1e-7

	MinPrice      = 0.01
	MaxPrice      = 100_000_000.0
	MaxNameLength = 200
)

// DefaultSearchRadiusKm is half the Earth's circumference: no point on the
// sphere is farther away, so a search with this radius excludes nothing.
const DefaultSearchRadiusKm = math.Pi * EarthRadiusKm
