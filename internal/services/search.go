package services

import (
	"fmt"
	"math"
	"sort"

	"hotel-search-service/internal/domain"
	"hotel-search-service/internal/geo"
)

// SearchRequest describes one proximity query. RadiusKm is optional; nil
// means the default "unlimited" radius (half the Earth's circumference).
type SearchRequest struct {
	Latitude  float64
	Longitude float64
	RadiusKm  *float64
}

// RankedHotel pairs a hotel with its exact distance from the query point and
// the combined price/distance score used for ordering. Lower score ranks
// first (cheaper and closer wins).
type RankedHotel struct {
	Hotel      *domain.Hotel
	DistanceKm float64
	Score      float64
}

// boundingBox is a per-query lat/lon rectangle guaranteed to contain the
// whole radius disk. It may admit extra candidates near its corners but
// never excludes a record that is truly within range.
type boundingBox struct {
	minLat, maxLat float64
	minLon, maxLon float64
}

// Search ranks hotels around the query point, best first.
//
// The scan is two-phase: a cheap bounding-box pre-filter discards far-away
// records with plain comparisons, then the survivors get an exact Haversine
// distance and anything beyond the radius is dropped. Survivors are scored
// by min-max-normalized price and distance with equal weights.
func Search(hotels []*domain.Hotel, req SearchRequest) ([]RankedHotel, error) {
	// Validate the query coordinate up front, before touching any data.
	query, err := domain.NewCoordinate(req.Latitude, req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	radiusKm := geo.DefaultSearchRadiusKm
	if req.RadiusKm != nil {
		if *req.RadiusKm <= 0 || math.IsNaN(*req.RadiusKm) {
			return nil, fmt.Errorf("search: %w: radius_km must be positive", domain.ErrOutOfRange)
		}
		radiusKm = *req.RadiusKm
	}

	box := computeBoundingBox(query, radiusKm)

	candidates := make([]RankedHotel, 0, len(hotels))
	for _, h := range hotels {
		if !box.contains(h.Location) {
			continue
		}
		d := h.DistanceTo(query)
		if d > radiusKm {
			continue
		}
		candidates = append(candidates, RankedHotel{Hotel: h, DistanceKm: d})
	}

	// With 0 or 1 survivors there is nothing to normalize against.
	if len(candidates) <= 1 {
		return candidates, nil
	}

	rankCandidates(candidates)
	return candidates, nil
}

// computeBoundingBox derives the lat/lon rectangle covering the radius disk
// around the query point. Two polar cases open the longitude range entirely:
// a latitude band that reaches a pole (the disk wraps over it, so in-range
// records can sit at any longitude) and a query close enough to a pole that
// cos(lat) vanishes and the longitude delta would blow up.
func computeBoundingBox(query domain.Coordinate, radiusKm float64) boundingBox {
	deltaLat := radiusKm / geo.KmPerDegreeLat

	box := boundingBox{
		minLat: query.Latitude() - deltaLat,
		maxLat: query.Latitude() + deltaLat,
	}

	if box.maxLat >= geo.MaxLatitude || box.minLat <= geo.MinLatitude {
		// The latitude difference between two points never exceeds their
		// angular separation, so clamping the band at the pole still keeps
		// every in-range record inside it.
		box.minLat = math.Max(box.minLat, geo.MinLatitude)
		box.maxLat = math.Min(box.maxLat, geo.MaxLatitude)
		box.minLon, box.maxLon = geo.MinLongitude, geo.MaxLongitude
		return box
	}

	cosLat := math.Cos(toRadians(query.Latitude()))
	deltaLon := geo.PolarLongitudeRange
	if cosLat > geo.PolarCosineThreshold {
		deltaLon = radiusKm / (geo.KmPerDegreeLat * cosLat)
	}

	if deltaLon >= geo.PolarLongitudeRange {
		// The disk circles the globe at this latitude; every longitude is in.
		box.minLon, box.maxLon = geo.MinLongitude, geo.MaxLongitude
		return box
	}

	box.minLon = wrapLongitude(query.Longitude() - deltaLon)
	box.maxLon = wrapLongitude(query.Longitude() + deltaLon)
	return box
}

// contains tests box membership. A box whose minLon exceeds maxLon straddles
// the antimeridian, where the longitude test becomes an OR over the two arcs.
func (b boundingBox) contains(c domain.Coordinate) bool {
	lat, lon := c.Latitude(), c.Longitude()

	if lat < b.minLat || lat > b.maxLat {
		return false
	}
	if b.minLon > b.maxLon {
		return lon >= b.minLon || lon <= b.maxLon
	}
	return lon >= b.minLon && lon <= b.maxLon
}

// wrapLongitude folds a box edge back into [-180, 180]. Inputs stay within
// one wrap because query longitude and delta are each bounded by 180.
func wrapLongitude(lon float64) float64 {
	if lon < geo.MinLongitude {
		return lon + 360
	}
	if lon > geo.MaxLongitude {
		return lon - 360
	}
	return lon
}

// rankCandidates scores candidates in place and sorts them ascending.
// score = normalizedPrice * PriceWeight + normalizedDistance * DistanceWeight,
// where each metric is min-max rescaled over the candidate set. A zero range
// (all prices or all distances identical) normalizes to 0.
func rankCandidates(candidates []RankedHotel) {
	minPrice, maxPrice := candidates[0].Hotel.Price, candidates[0].Hotel.Price
	minDist, maxDist := candidates[0].DistanceKm, candidates[0].DistanceKm
	for _, c := range candidates[1:] {
		minPrice = math.Min(minPrice, c.Hotel.Price)
		maxPrice = math.Max(maxPrice, c.Hotel.Price)
		minDist = math.Min(minDist, c.DistanceKm)
		maxDist = math.Max(maxDist, c.DistanceKm)
	}

	priceRange := maxPrice - minPrice
	distRange := maxDist - minDist

	for i := range candidates {
		var normPrice, normDist float64
		if priceRange > 0 {
			normPrice = (candidates[i].Hotel.Price - minPrice) / priceRange
		}
		if distRange > 0 {
			normDist = (candidates[i].DistanceKm - minDist) / distRange
		}
		candidates[i].Score = normPrice*geo.PriceWeight + normDist*geo.DistanceWeight
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score < candidates[j].Score
		}
		// Tie-breaker ensures deterministic ordering when scores are equal.
		return candidates[i].Hotel.ID < candidates[j].Hotel.ID
	})
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
