package api

import (
	"net/http"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
)

// RouterConfig carries the dependencies and settings of the HTTP API.
type RouterConfig struct {
	Repo     ports.TripRepository
	Geocoder ports.Geocoder
	Spots    ports.SpotSource
	Shops    ports.ShopSource
	BaseURL  string
	RadiusM  int
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{Repo: cfg.Repo, Geocoder: cfg.Geocoder}
	dayHandler := &handlers.DayHandler{Repo: cfg.Repo, Source: cfg.Spots, RadiusM: cfg.RadiusM}
	shareHandler := &handlers.ShareHandler{Repo: cfg.Repo, BaseURL: cfg.BaseURL}
	shopHandler := &handlers.ShopHandler{Source: cfg.Shops}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("POST /trips", tripHandler.Create)
	mux.HandleFunc("GET /trips", tripHandler.List)
	mux.HandleFunc("GET /trips/{id}", tripHandler.Get)
	mux.HandleFunc("DELETE /trips/{id}", tripHandler.Delete)

	mux.HandleFunc("POST /trips/{id}/days", dayHandler.Generate)
	mux.HandleFunc("POST /trips/{id}/days/{dayID}/optimize", dayHandler.Optimize)
	mux.HandleFunc("POST /trips/{id}/days/{dayID}/reorder", dayHandler.Reorder)
	mux.HandleFunc("POST /trips/{id}/days/{dayID}/spots", dayHandler.AddSpot)
	mux.HandleFunc("PATCH /trips/{id}/days/{dayID}/spots/{spotID}", dayHandler.SetDuration)
	mux.HandleFunc("DELETE /trips/{id}/days/{dayID}/spots/{spotID}", dayHandler.RemoveSpot)

	mux.HandleFunc("GET /trips/{id}/share", shareHandler.Share)
	mux.HandleFunc("POST /trips/import", shareHandler.Import)

	mux.HandleFunc("GET /shops", shopHandler.Find)

	return requestIDMiddleware(loggingMiddleware(mux))
}
