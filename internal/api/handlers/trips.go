package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type TripHandler struct {
	Repo     ports.TripRepository
	Geocoder ports.Geocoder
}

var validModes = map[domain.TravelMode]bool{
	domain.ModeWalk:    true,
	domain.ModeTransit: true,
	domain.ModeCar:     true,
}

// Create resolves the destination city and stores an empty trip.
// Days are generated separately so a failed spot search never blocks
// trip creation.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}

	mode := domain.TravelMode(req.Mode)
	if req.Mode == "" {
		mode = domain.ModeWalk
	}
	if !validModes[mode] {
		writeError(w, r, http.StatusBadRequest, "mode must be walk, transit or car")
		return
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = time.Now().Format("2006-01-02")
	}
	endDate := req.EndDate
	if endDate == "" {
		endDate = startDate
	}

	place := city
	if country := strings.TrimSpace(req.Country); country != "" {
		place = fmt.Sprintf("%s, %s", city, country)
	}

	coords, err := h.Geocoder.Geocode(r.Context(), place)
	if err != nil {
		log.Printf("geocode failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "geocoding failed")
		return
	}
	if coords == nil {
		writeError(w, r, http.StatusNotFound, "place not found")
		return
	}

	trip := domain.Trip{
		ID:        uuid.NewString(),
		City:      city,
		Country:   strings.TrimSpace(req.Country),
		Coords:    *coords,
		StartDate: startDate,
		EndDate:   endDate,
		Mode:      mode,
		Days:      []domain.DayPlan{},
		CreatedAt: time.Now().Unix(),
	}

	if err := h.Repo.SaveTrip(r.Context(), trip); err != nil {
		log.Printf("save trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, trip)
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TripListResponse{
		Count: len(trips),
		Trips: make([]dto.TripSummary, 0, len(trips)),
	}
	for _, trip := range trips {
		res.Trips = append(res.Trips, dto.Summarize(trip))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, ok := loadTrip(w, r, h.Repo)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, trip)
}

func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := loadTrip(w, r, h.Repo); !ok {
		return
	}

	if err := h.Repo.DeleteTrip(r.Context(), r.PathValue("id")); err != nil {
		log.Printf("delete trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// loadTrip fetches the trip named by the {id} path segment, answering
// the request itself when the trip is missing or the lookup fails.
func loadTrip(w http.ResponseWriter, r *http.Request, repo ports.TripRepository) (*domain.Trip, bool) {
	tripID := r.PathValue("id")

	trip, err := repo.GetTrip(r.Context(), tripID)
	if err != nil {
		log.Printf("get trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	if trip == nil {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return nil, false
	}

	return trip, true
}
