package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Geocoder resolves a free-text place name to coordinates.
// A nil coordinate with a nil error means the place was not found.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (*domain.Coordinates, error)
}

// GeocodeCache is a persistent place -> coordinate lookup used to avoid
// repeated external geocoding calls. Get returns nil on a miss.
type GeocodeCache interface {
	Get(ctx context.Context, place string) (*domain.Coordinates, error)
	Put(ctx context.Context, place string, coords domain.Coordinates) error
}
