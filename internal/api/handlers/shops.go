package handlers

import (
	"log"
	"net/http"
	"strconv"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

type ShopHandler struct {
	Source ports.ShopSource
}

// Find lists scored shops around a point. Results are independent of
// any trip and never scheduled.
func (h *ShopHandler) Find(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lon must be a number")
		return
	}

	radiusM := 0
	if raw := q.Get("radius"); raw != "" {
		radiusM, err = strconv.Atoi(raw)
		if err != nil || radiusM <= 0 {
			writeError(w, r, http.StatusBadRequest, "radius must be a positive integer")
			return
		}
	}

	center := domain.Coordinates{Lat: lat, Lon: lon}
	shops, err := services.FindShops(r.Context(), center, radiusM, h.Source)
	if err != nil {
		log.Printf("find shops failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "shop search failed")
		return
	}

	res := dto.ShopListResponse{Count: len(shops), Shops: shops}
	writeJSON(w, r, http.StatusOK, res)
}
