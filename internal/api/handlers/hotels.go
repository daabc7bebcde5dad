package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-search-service/internal/api/dto"
	"hotel-search-service/internal/platform/metrics"
	"hotel-search-service/internal/services"
)

// HotelHandler exposes the CRUD endpoints over the hotel service.
type HotelHandler struct {
	Service *services.HotelService
	Log     *zap.Logger
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Service.ListHotels(r.Context())
	if err != nil {
		writeDomainError(w, r, h.Log, err)
		return
	}

	res := dto.ListHotelsResponse{
		Hotels: make([]dto.HotelResponse, 0, len(hotels)),
	}
	for _, hotel := range hotels {
		res.Hotels = append(res.Hotels, dto.FromHotel(hotel))
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}

func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	hotel, err := h.Service.GetHotel(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.Log, err)
		return
	}
	if hotel == nil {
		writeError(w, r, h.Log, http.StatusNotFound, "hotel not found")
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.FromHotel(hotel))
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeHotelRequest(w, r, h.Log)
	if !ok {
		return
	}

	hotel, err := h.Service.CreateHotel(r.Context(), req.Name, req.Price, req.Latitude, req.Longitude)
	if err != nil {
		writeDomainError(w, r, h.Log, err)
		return
	}

	metrics.MutationsTotal.WithLabelValues("create").Inc()
	writeJSON(w, r, h.Log, http.StatusCreated, dto.FromHotel(hotel))
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, ok := decodeHotelRequest(w, r, h.Log)
	if !ok {
		return
	}

	hotel, err := h.Service.UpdateHotel(r.Context(), id, req.Name, req.Price, req.Latitude, req.Longitude)
	if err != nil {
		writeDomainError(w, r, h.Log, err)
		return
	}

	metrics.MutationsTotal.WithLabelValues("update").Inc()
	writeJSON(w, r, h.Log, http.StatusOK, dto.FromHotel(hotel))
}

func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.Service.DeleteHotel(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.Log, err)
		return
	}
	if !deleted {
		writeError(w, r, h.Log, http.StatusNotFound, "hotel not found")
		return
	}

	metrics.MutationsTotal.WithLabelValues("delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// decodeHotelRequest reads the JSON body strictly: unknown fields and
// trailing content are rejected.
func decodeHotelRequest(w http.ResponseWriter, r *http.Request, log *zap.Logger) (dto.HotelRequest, bool) {
	var req dto.HotelRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, log, http.StatusBadRequest, "invalid json body")
		return req, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, log, http.StatusBadRequest, "body must contain only one JSON object")
		return req, false
	}

	return req, true
}
