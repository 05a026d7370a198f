package share

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func shareTrip(nSpots int) domain.Trip {
	score := 72
	day := domain.DayPlan{ID: uuid.NewString(), Date: "2026-05-01"}
	for i := 0; i < nSpots; i++ {
		day.Spots = append(day.Spots, domain.Spot{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("Stop %d %s", i, uuid.NewString()),
			Type:        "viewpoint",
			Coords:      domain.Coordinates{Lat: 48.85 + float64(i)*0.001, Lon: 2.35},
			DurationMin: 45,
			StartTime:   "09:00",
			Score:       &score,
		})
	}
	return domain.Trip{
		ID:        uuid.NewString(),
		City:      "Paris",
		Country:   "France",
		Coords:    domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
		StartDate: "2026-05-01",
		EndDate:   "2026-05-02",
		Mode:      domain.ModeWalk,
		Days:      []domain.DayPlan{day},
		CreatedAt: 1767225600,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := shareTrip(8)

	encoded, err := EncodeTrip(want)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)
	require.NotContains(t, encoded, "=", "token must be unpadded")
	require.NotContains(t, encoded, "+")
	require.NotContains(t, encoded, "/")

	got, err := DecodeTrip(encoded)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEncodeRejectsOversizedTrip(t *testing.T) {
	// UUID-heavy spots barely compress, so enough of them must push
	// the token past the limit.
	big := shareTrip(400)

	_, err := EncodeTrip(big)
	require.ErrorIs(t, err, ErrTripTooLarge)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeTrip("not base64 at all!!!")
	require.Error(t, err)

	_, err = DecodeTrip(strings.Repeat("A", 40))
	require.Error(t, err)
}

func TestShareURL(t *testing.T) {
	url := ShareURL("https://example.com", "abc123")
	require.Equal(t, "https://example.com/trips/import?payload=abc123", url)
}
