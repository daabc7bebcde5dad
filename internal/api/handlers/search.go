package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"hotel-search-service/internal/platform/metrics"
	"hotel-search-service/internal/services"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// SearchHandler exposes the ranked proximity search endpoint.
type SearchHandler struct {
	Service *services.HotelService
	Log     *zap.Logger
}

// Search handles GET /hotels/search?lat=&lon=&radius_km=&page=&page_size=.
// lat and lon are required; radius_km defaults to unlimited, page to 1 and
// page_size to 20. Range validation happens in the core.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "lon must be a number")
		return
	}

	var radiusKm *float64
	if raw := q.Get("radius_km"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, h.Log, http.StatusBadRequest, "radius_km must be a number")
			return
		}
		radiusKm = &v
	}

	page := defaultPage
	if raw := q.Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			writeError(w, r, h.Log, http.StatusBadRequest, "page must be an integer")
			return
		}
	}

	pageSize := defaultPageSize
	if raw := q.Get("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			writeError(w, r, h.Log, http.StatusBadRequest, "page_size must be an integer")
			return
		}
	}

	result, err := h.Service.SearchHotels(r.Context(), services.SearchHotelsRequest{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radiusKm,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		writeDomainError(w, r, h.Log, err)
		return
	}

	metrics.SearchResults.Observe(float64(result.TotalCount))
	writeJSON(w, r, h.Log, http.StatusOK, result)
}
