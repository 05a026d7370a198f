package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/scoring"
)

// DefaultSearchRadiusM bounds the spot search around the trip center.
const DefaultSearchRadiusM = 5000

// ErrNoSpotsFound reports that the search radius held no usable spots.
var ErrNoSpotsFound = errors.New("no spots found in search radius")

// GenerateDay builds a first schedule for a trip: fetch raw spots around
// the trip center, score them, keep the best unique candidates, and
// synthesize a day plan anchored at the trip coordinates.
func GenerateDay(ctx context.Context, trip domain.Trip, source ports.SpotSource, radiusM int) (domain.DayPlan, error) {
	if radiusM <= 0 {
		radiusM = DefaultSearchRadiusM
	}

	raw, err := source.FetchSpots(ctx, trip.Coords, radiusM)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("generate day: fetch spots: %w", err)
	}

	candidates := make([]domain.Spot, 0, len(raw))
	for _, r := range raw {
		name := r.Tags["name"]
		if name == "" {
			continue
		}
		score, reasons := scoring.ScoreSpot(r.Tags)
		if score < scoring.MinScore {
			continue
		}
		s := score
		candidates = append(candidates, domain.Spot{
			ID:           uuid.NewString(),
			Name:         name,
			Type:         spotType(r.Tags),
			Tags:         r.Tags,
			Coords:       r.Coords,
			DurationMin:  scoring.DefaultDuration(r.Tags),
			Score:        &s,
			ScoreReasons: reasons,
		})
	}

	best := scoring.SelectTop(candidates, scoring.MaxDaySpots)
	if len(best) == 0 {
		return domain.DayPlan{}, ErrNoSpotsFound
	}

	start := trip.Coords
	return BuildSchedule(best, trip.Mode, &start), nil
}

// spotType derives a display category from the most specific tag present.
func spotType(tags map[string]string) string {
	for _, key := range []string{"tourism", "leisure", "natural", "amenity", "historic"} {
		if v := tags[key]; v != "" {
			return v
		}
	}
	return "place"
}
