package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// RawSpot is an unscored record as returned by a geographic source:
// an open-ended tag mapping plus a coordinate. Records without a name
// tag are discarded by sources before scoring.
type RawSpot struct {
	Tags   map[string]string  `json:"tags"`
	Coords domain.Coordinates `json:"coords"`
}

// SpotSource retrieves candidate sightseeing spots around a center.
type SpotSource interface {
	FetchSpots(ctx context.Context, center domain.Coordinates, radiusM int) ([]RawSpot, error)
}

// ShopSource retrieves candidate retail records around a center.
type ShopSource interface {
	FetchShops(ctx context.Context, center domain.Coordinates, radiusM int) ([]RawSpot, error)
}
