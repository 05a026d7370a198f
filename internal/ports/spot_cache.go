package ports

import "context"

// SpotCache stores raw spot search results under an opaque key.
// Implementations may expire entries; Get reports a miss via the bool.
type SpotCache interface {
	Get(ctx context.Context, key string) ([]RawSpot, bool, error)
	Put(ctx context.Context, key string, spots []RawSpot) error
}
