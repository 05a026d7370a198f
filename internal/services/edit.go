package services

import (
	"errors"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
)

// Every edit is a pure transformation of the day's spot list followed
// by a full rebuild; times are never patched in place.

const customSpotDurationMin = 60

// ErrSpotNotFound reports an edit referencing a spot the day does not hold.
var ErrSpotNotFound = errors.New("spot not found in day")

// OptimizeDay reorders the day's spots with the nearest-neighbor
// heuristic and rebuilds the schedule.
func OptimizeDay(day domain.DayPlan, mode domain.TravelMode) domain.DayPlan {
	day.Spots = OptimizeRoute(day.Spots)
	return RebuildSchedule(day, mode)
}

// MoveSpot moves a spot to a new position in the visiting order.
// Positions outside the list are clamped to its ends.
func MoveSpot(day domain.DayPlan, spotID string, toIndex int, mode domain.TravelMode) (domain.DayPlan, error) {
	from := day.SpotIndex(spotID)
	if from < 0 {
		return domain.DayPlan{}, ErrSpotNotFound
	}

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex >= len(day.Spots) {
		toIndex = len(day.Spots) - 1
	}

	spots := append([]domain.Spot(nil), day.Spots...)
	moved := spots[from]
	spots = append(spots[:from], spots[from+1:]...)
	spots = append(spots[:toIndex], append([]domain.Spot{moved}, spots[toIndex:]...)...)

	day.Spots = spots
	return RebuildSchedule(day, mode), nil
}

// SetSpotDuration changes a spot's planned visit duration.
func SetSpotDuration(day domain.DayPlan, spotID string, minutes int, mode domain.TravelMode) (domain.DayPlan, error) {
	idx := day.SpotIndex(spotID)
	if idx < 0 {
		return domain.DayPlan{}, ErrSpotNotFound
	}

	spots := append([]domain.Spot(nil), day.Spots...)
	spots[idx].DurationMin = minutes

	day.Spots = spots
	return RebuildSchedule(day, mode), nil
}

// RemoveSpot deletes a spot from the day.
func RemoveSpot(day domain.DayPlan, spotID string, mode domain.TravelMode) (domain.DayPlan, error) {
	idx := day.SpotIndex(spotID)
	if idx < 0 {
		return domain.DayPlan{}, ErrSpotNotFound
	}

	spots := append([]domain.Spot(nil), day.Spots...)
	spots = append(spots[:idx], spots[idx+1:]...)

	day.Spots = spots
	return RebuildSchedule(day, mode), nil
}

// AddCustomSpot appends a manually entered stop at the given coordinates.
// Manual spots carry no score or tags; a non-positive duration falls
// back to a one-hour visit.
func AddCustomSpot(day domain.DayPlan, name string, at domain.Coordinates, durationMin int, mode domain.TravelMode) domain.DayPlan {
	if durationMin <= 0 {
		durationMin = customSpotDurationMin
	}

	spot := domain.Spot{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        "custom",
		Tags:        map[string]string{},
		Coords:      at,
		DurationMin: durationMin,
	}

	day.Spots = append(append([]domain.Spot(nil), day.Spots...), spot)
	return RebuildSchedule(day, mode)
}
