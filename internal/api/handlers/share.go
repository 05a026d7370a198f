package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/share"
)

type ShareHandler struct {
	Repo    ports.TripRepository
	BaseURL string
}

// Share encodes a stored trip into a URL-safe token.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	trip, ok := loadTrip(w, r, h.Repo)
	if !ok {
		return
	}

	encoded, err := share.EncodeTrip(*trip)
	if errors.Is(err, share.ErrTripTooLarge) {
		writeError(w, r, http.StatusUnprocessableEntity, "trip too large to share as a link")
		return
	}
	if err != nil {
		log.Printf("encode trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ShareResponse{
		Payload: encoded,
		URL:     share.ShareURL(h.BaseURL, encoded),
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Import stores a trip decoded from a share token. The imported copy
// gets a fresh id so it never clobbers the sender's trip.
func (h *ShareHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Payload == "" {
		writeError(w, r, http.StatusBadRequest, "payload is required")
		return
	}

	trip, err := share.DecodeTrip(req.Payload)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid share payload")
		return
	}

	trip.ID = uuid.NewString()
	trip.CreatedAt = time.Now().Unix()

	if err := h.Repo.SaveTrip(r.Context(), trip); err != nil {
		log.Printf("save trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, trip)
}
