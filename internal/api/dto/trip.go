// Package dto defines the request and response shapes of the HTTP API,
// keeping wire concerns out of the domain types.
package dto

import "trip-planner-service/internal/domain"

type CreateTripRequest struct {
	City      string `json:"city"`
	Country   string `json:"country"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Mode      string `json:"mode"`
}

type AddSpotRequest struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DurationMin *int    `json:"duration_min,omitempty"`
}

type ReorderRequest struct {
	SpotID  string `json:"spot_id"`
	ToIndex int    `json:"to_index"`
}

type DurationRequest struct {
	DurationMin int `json:"duration_min"`
}

type ImportRequest struct {
	Payload string `json:"payload"`
}

type ShareResponse struct {
	Payload string `json:"payload"`
	URL     string `json:"url"`
}

type TripSummary struct {
	ID        string `json:"id"`
	City      string `json:"city"`
	Country   string `json:"country,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Mode      string `json:"mode"`
	Days      int    `json:"days"`
	CreatedAt int64  `json:"created_at"`
}

func Summarize(trip domain.Trip) TripSummary {
	return TripSummary{
		ID:        trip.ID,
		City:      trip.City,
		Country:   trip.Country,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
		Mode:      string(trip.Mode),
		Days:      len(trip.Days),
		CreatedAt: trip.CreatedAt,
	}
}

type TripListResponse struct {
	Count int           `json:"count"`
	Trips []TripSummary `json:"trips"`
}

type ShopListResponse struct {
	Count int           `json:"count"`
	Shops []domain.Shop `json:"shops"`
}
