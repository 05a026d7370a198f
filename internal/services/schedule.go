package services

import (
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

const (
	dayStartTime = "09:00"
	breakMinutes = 60 // lunch
	breakAtIndex = 3  // the break lands before the 4th stop
)

// BuildSchedule turns an ordered spot list into a fully time-stamped
// day plan: per-stop arrival time, travel leg from the previous point,
// and a single lunch break.
//
// The input order IS the visiting order; this function never reorders.
// The first stop travels from startPoint when one is given, otherwise
// no travel is charged before it. The function is total: an empty list
// yields an empty, valid plan and unknown modes use walking speed.
func BuildSchedule(spots []domain.Spot, mode domain.TravelMode, startPoint *domain.Coordinates) domain.DayPlan {
	clock := dayStartTime
	breakInserted := false

	scheduled := make([]domain.Spot, 0, len(spots))
	for i, spot := range spots {
		prev := spot.Coords
		if i == 0 {
			if startPoint != nil {
				prev = *startPoint
			}
		} else {
			prev = spots[i-1].Coords
		}

		distKm := geo.DistanceKm(prev, spot.Coords)
		minutes := 0
		if i > 0 || startPoint != nil {
			minutes = geo.TravelMinutes(distKm, mode)
		}
		clock = geo.AddMinutes(clock, minutes)

		if !breakInserted && i == breakAtIndex {
			clock = geo.AddMinutes(clock, breakMinutes)
			breakInserted = true
		}

		spot.StartTime = clock
		spot.TravelFromPrev = &domain.TravelLeg{DistKm: distKm, Minutes: minutes}
		scheduled = append(scheduled, spot)

		clock = geo.AddMinutes(clock, spot.DurationMin)
	}

	return domain.DayPlan{
		ID:         uuid.NewString(),
		Date:       time.Now().Format("2006-01-02"),
		Spots:      scheduled,
		StartPoint: startPoint,
	}
}

// RebuildSchedule re-derives every start time and travel leg for the
// day's current spot order. Identity is preserved: the returned plan
// keeps the day's id and date, so repeated rebuilds without edits are
// idempotent in every field.
func RebuildSchedule(day domain.DayPlan, mode domain.TravelMode) domain.DayPlan {
	rebuilt := BuildSchedule(day.Spots, mode, day.StartPoint)
	rebuilt.ID = day.ID
	rebuilt.Date = day.Date
	return rebuilt
}
