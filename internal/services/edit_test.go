package services

import (
	"errors"
	"testing"

	"trip-planner-service/internal/domain"
)

func editableDay(t *testing.T) domain.DayPlan {
	t.Helper()
	spots := []domain.Spot{
		spotAt("a", 48.85, 2.35),
		spotAt("b", 48.86, 2.34),
		spotAt("c", 48.84, 2.37),
	}
	day := BuildSchedule(spots, domain.ModeWalk, nil)
	day.Date = "2026-08-30"
	return day
}

func TestMoveSpot(t *testing.T) {
	day := editableDay(t)

	moved, err := MoveSpot(day, "c", 0, domain.ModeWalk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if moved.Spots[0].ID != "c" || moved.Spots[1].ID != "a" || moved.Spots[2].ID != "b" {
		t.Fatalf("order = %q %q %q, want c a b", moved.Spots[0].ID, moved.Spots[1].ID, moved.Spots[2].ID)
	}
	if moved.ID != day.ID || moved.Date != day.Date {
		t.Error("move must preserve day identity")
	}
	if moved.Spots[0].StartTime != "09:00" {
		t.Errorf("schedule not rebuilt: first start %q", moved.Spots[0].StartTime)
	}

	// Out-of-range targets clamp instead of failing.
	end, err := MoveSpot(day, "a", 99, domain.ModeWalk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end.Spots[len(end.Spots)-1].ID != "a" {
		t.Errorf("clamped move put %q last", end.Spots[len(end.Spots)-1].ID)
	}
}

func TestSetSpotDuration(t *testing.T) {
	day := editableDay(t)

	edited, err := SetSpotDuration(day, "a", 120, domain.ModeWalk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edited.Spots[0].DurationMin != 120 {
		t.Fatalf("duration = %d, want 120", edited.Spots[0].DurationMin)
	}

	// Downstream start times shift by the extra hour.
	wantShift := 60
	origSecond := day.Spots[1].StartTime
	gotSecond := edited.Spots[1].StartTime
	if gotSecond == origSecond {
		t.Errorf("second start unchanged at %q after duration edit (want +%dmin)", gotSecond, wantShift)
	}

	// The source day is untouched.
	if day.Spots[0].DurationMin != 60 {
		t.Error("edit mutated the input day")
	}
}

func TestRemoveSpot(t *testing.T) {
	day := editableDay(t)

	edited, err := RemoveSpot(day, "b", domain.ModeWalk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edited.Spots) != 2 {
		t.Fatalf("got %d spots, want 2", len(edited.Spots))
	}
	if edited.SpotIndex("b") != -1 {
		t.Error("spot b still present")
	}

	if _, err := RemoveSpot(day, "zz", domain.ModeWalk); !errors.Is(err, ErrSpotNotFound) {
		t.Errorf("error = %v, want ErrSpotNotFound", err)
	}
}

func TestAddCustomSpot(t *testing.T) {
	day := editableDay(t)
	at := domain.Coordinates{Lat: 48.8566, Lon: 2.3522}

	edited := AddCustomSpot(day, "Chez Janine", at, 0, domain.ModeWalk)

	last := edited.Spots[len(edited.Spots)-1]
	if last.Name != "Chez Janine" || last.Type != "custom" {
		t.Fatalf("unexpected appended spot: %+v", last)
	}
	if last.Score != nil || len(last.ScoreReasons) != 0 {
		t.Error("manual spots must not carry a score")
	}
	if last.DurationMin != customSpotDurationMin {
		t.Errorf("duration = %d, want default %d", last.DurationMin, customSpotDurationMin)
	}
	if last.StartTime == "" {
		t.Error("appended spot was not scheduled")
	}

	edited = AddCustomSpot(day, "Long stop", at, 150, domain.ModeWalk)
	if got := edited.Spots[len(edited.Spots)-1].DurationMin; got != 150 {
		t.Errorf("duration = %d, want 150", got)
	}
}

func TestOptimizeDayRebuilds(t *testing.T) {
	spots := []domain.Spot{
		spotAt("start", 48.85, 2.35),
		spotAt("far", 48.95, 2.35),
		spotAt("near", 48.86, 2.35),
	}
	day := BuildSchedule(spots, domain.ModeWalk, nil)

	optimized := OptimizeDay(day, domain.ModeWalk)

	if optimized.Spots[1].ID != "near" {
		t.Errorf("second stop = %q, want near", optimized.Spots[1].ID)
	}
	if optimized.ID != day.ID {
		t.Error("optimize must preserve day identity")
	}
}
