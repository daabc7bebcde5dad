package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-search-service/internal/api/handlers"
	"hotel-search-service/internal/platform/metrics"
	"hotel-search-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.HotelService, log *zap.Logger, jwtSecret string) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(log))

	searchHandler := &handlers.SearchHandler{Service: svc, Log: log}
	hotelHandler := &handlers.HotelHandler{Service: svc, Log: log}

	r.Get("/health", handlers.Health(log))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/hotels", func(r chi.Router) {
		r.Get("/search", searchHandler.Search)
		r.Get("/", hotelHandler.List)
		r.Get("/{id}", hotelHandler.Get)

		// Mutations require a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(requireJWT(jwtSecret, log))
			r.Post("/", hotelHandler.Create)
			r.Put("/{id}", hotelHandler.Update)
			r.Delete("/{id}", hotelHandler.Delete)
		})
	})

	return r
}
