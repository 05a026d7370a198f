package handlers

import (
	"errors"
	"log"
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

type DayHandler struct {
	Repo    ports.TripRepository
	Source  ports.SpotSource
	RadiusM int
}

// Generate searches for spots around the trip center, builds a fresh
// day plan from the best ones and appends it to the trip.
func (h *DayHandler) Generate(w http.ResponseWriter, r *http.Request) {
	trip, ok := loadTrip(w, r, h.Repo)
	if !ok {
		return
	}

	day, err := services.GenerateDay(r.Context(), *trip, h.Source, h.RadiusM)
	if errors.Is(err, services.ErrNoSpotsFound) {
		writeError(w, r, http.StatusNotFound, "no spots found around this destination")
		return
	}
	if err != nil {
		log.Printf("generate day failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "spot search failed")
		return
	}

	trip.Days = append(trip.Days, day)
	if err := h.Repo.SaveTrip(r.Context(), *trip); err != nil {
		log.Printf("save trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, day)
}

// Optimize reorders the day's stops along the nearest-neighbor route.
func (h *DayHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	trip, day, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	updated := services.OptimizeDay(*day, trip.Mode)
	h.saveDay(w, r, trip, updated)
}

// Reorder moves one spot to a new position in the visiting order.
func (h *DayHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	trip, day, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	var req dto.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SpotID == "" {
		writeError(w, r, http.StatusBadRequest, "spot_id is required")
		return
	}

	updated, err := services.MoveSpot(*day, req.SpotID, req.ToIndex, trip.Mode)
	if errors.Is(err, services.ErrSpotNotFound) {
		writeError(w, r, http.StatusNotFound, "spot not found")
		return
	}
	if err != nil {
		log.Printf("reorder failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.saveDay(w, r, trip, updated)
}

// AddSpot appends a manually chosen stop to the day.
func (h *DayHandler) AddSpot(w http.ResponseWriter, r *http.Request) {
	trip, day, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	var req dto.AddSpotRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	duration := 0
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			writeError(w, r, http.StatusBadRequest, "duration_min must be positive")
			return
		}
		duration = *req.DurationMin
	}

	at := domain.Coordinates{Lat: req.Lat, Lon: req.Lon}
	updated := services.AddCustomSpot(*day, req.Name, at, duration, trip.Mode)
	h.saveDay(w, r, trip, updated)
}

// SetDuration changes the planned visit time of one spot.
func (h *DayHandler) SetDuration(w http.ResponseWriter, r *http.Request) {
	trip, day, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	var req dto.DurationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.DurationMin <= 0 {
		writeError(w, r, http.StatusBadRequest, "duration_min must be positive")
		return
	}

	updated, err := services.SetSpotDuration(*day, r.PathValue("spotID"), req.DurationMin, trip.Mode)
	if errors.Is(err, services.ErrSpotNotFound) {
		writeError(w, r, http.StatusNotFound, "spot not found")
		return
	}
	if err != nil {
		log.Printf("set duration failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.saveDay(w, r, trip, updated)
}

// RemoveSpot deletes one stop from the day.
func (h *DayHandler) RemoveSpot(w http.ResponseWriter, r *http.Request) {
	trip, day, ok := h.loadDay(w, r)
	if !ok {
		return
	}

	updated, err := services.RemoveSpot(*day, r.PathValue("spotID"), trip.Mode)
	if errors.Is(err, services.ErrSpotNotFound) {
		writeError(w, r, http.StatusNotFound, "spot not found")
		return
	}
	if err != nil {
		log.Printf("remove spot failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.saveDay(w, r, trip, updated)
}

func (h *DayHandler) loadDay(w http.ResponseWriter, r *http.Request) (*domain.Trip, *domain.DayPlan, bool) {
	trip, ok := loadTrip(w, r, h.Repo)
	if !ok {
		return nil, nil, false
	}

	day := trip.Day(r.PathValue("dayID"))
	if day == nil {
		writeError(w, r, http.StatusNotFound, "day not found")
		return nil, nil, false
	}

	return trip, day, true
}

func (h *DayHandler) saveDay(w http.ResponseWriter, r *http.Request, trip *domain.Trip, day domain.DayPlan) {
	trip.ReplaceDay(day)

	if err := h.Repo.SaveTrip(r.Context(), *trip); err != nil {
		log.Printf("save trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, day)
}
