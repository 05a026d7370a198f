package repositories

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"trip-planner-service/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func sampleTrip(id string) domain.Trip {
	score := 65
	return domain.Trip{
		ID:        id,
		City:      "Kyoto",
		Country:   "Japan",
		Coords:    domain.Coordinates{Lat: 35.0116, Lon: 135.7681},
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
		Mode:      domain.ModeWalk,
		CreatedAt: 1767225600,
		Days: []domain.DayPlan{
			{
				ID:   "day-1",
				Date: "2026-04-01",
				Spots: []domain.Spot{
					{
						ID:          "spot-1",
						Name:        "Fushimi Inari",
						Type:        "attraction",
						Coords:      domain.Coordinates{Lat: 34.9671, Lon: 135.7727},
						DurationMin: 90,
						StartTime:   "09:00",
						Score:       &score,
					},
				},
			},
		},
	}
}

func TestSqliteTripRepositoryRoundTrip(t *testing.T) {
	repo := NewSqliteTripRepository(newTestDB(t))
	ctx := context.Background()

	want := sampleTrip("trip-1")
	if err := repo.SaveTrip(ctx, want); err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}

	got, err := repo.GetTrip(ctx, "trip-1")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if got == nil {
		t.Fatal("GetTrip returned nil for a saved trip")
	}

	if got.City != want.City || got.Mode != want.Mode || got.CreatedAt != want.CreatedAt {
		t.Errorf("trip fields mismatch: got %+v", got)
	}
	if len(got.Days) != 1 || len(got.Days[0].Spots) != 1 {
		t.Fatalf("days not preserved: %+v", got.Days)
	}
	spot := got.Days[0].Spots[0]
	if spot.Name != "Fushimi Inari" || spot.Score == nil || *spot.Score != 65 {
		t.Errorf("spot not preserved: %+v", spot)
	}
}

func TestSqliteTripRepositoryGetMissing(t *testing.T) {
	repo := NewSqliteTripRepository(newTestDB(t))

	got, err := repo.GetTrip(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing trip, got %+v", got)
	}
}

func TestSqliteTripRepositorySaveOverwrites(t *testing.T) {
	repo := NewSqliteTripRepository(newTestDB(t))
	ctx := context.Background()

	trip := sampleTrip("trip-1")
	if err := repo.SaveTrip(ctx, trip); err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}

	trip.Mode = domain.ModeTransit
	trip.Days[0].Spots[0].StartTime = "10:00"
	if err := repo.SaveTrip(ctx, trip); err != nil {
		t.Fatalf("SaveTrip (update): %v", err)
	}

	got, err := repo.GetTrip(ctx, "trip-1")
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if got.Mode != domain.ModeTransit {
		t.Errorf("Mode = %q, want %q", got.Mode, domain.ModeTransit)
	}
	if got.Days[0].Spots[0].StartTime != "10:00" {
		t.Errorf("StartTime = %q, want 10:00", got.Days[0].Spots[0].StartTime)
	}
}

func TestSqliteTripRepositoryListAndDelete(t *testing.T) {
	repo := NewSqliteTripRepository(newTestDB(t))
	ctx := context.Background()

	a := sampleTrip("trip-a")
	a.CreatedAt = 100
	b := sampleTrip("trip-b")
	b.CreatedAt = 200

	for _, trip := range []domain.Trip{a, b} {
		if err := repo.SaveTrip(ctx, trip); err != nil {
			t.Fatalf("SaveTrip %s: %v", trip.ID, err)
		}
	}

	trips, err := repo.ListTrips(ctx)
	if err != nil {
		t.Fatalf("ListTrips: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("len(trips) = %d, want 2", len(trips))
	}
	if trips[0].ID != "trip-b" {
		t.Errorf("newest trip first, got %q", trips[0].ID)
	}

	if err := repo.DeleteTrip(ctx, "trip-a"); err != nil {
		t.Fatalf("DeleteTrip: %v", err)
	}
	trips, err = repo.ListTrips(ctx)
	if err != nil {
		t.Fatalf("ListTrips after delete: %v", err)
	}
	if len(trips) != 1 || trips[0].ID != "trip-b" {
		t.Errorf("delete left %+v", trips)
	}
}
