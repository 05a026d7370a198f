package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a boundary for storing and retrieving Trip aggregates.
// Implementations must round-trip trips losslessly, including nested
// day plans, travel legs and tag mappings. Get returns nil when the
// trip does not exist.
type TripRepository interface {
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)
	SaveTrip(ctx context.Context, trip domain.Trip) error
	DeleteTrip(ctx context.Context, id string) error
}
