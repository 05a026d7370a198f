package services

import (
	"testing"

	"trip-planner-service/internal/domain"
)

func spotAt(id string, lat, lon float64) domain.Spot {
	return domain.Spot{ID: id, Name: id, Coords: domain.Coordinates{Lat: lat, Lon: lon}, DurationMin: 60}
}

func TestOptimizeRouteSmallInputsUnchanged(t *testing.T) {
	for _, spots := range [][]domain.Spot{
		nil,
		{spotAt("a", 0, 0)},
		{spotAt("b", 0, 1), spotAt("a", 0, 0)},
	} {
		out := OptimizeRoute(spots)
		if len(out) != len(spots) {
			t.Fatalf("length changed: got %d, want %d", len(out), len(spots))
		}
		for i := range spots {
			if out[i].ID != spots[i].ID {
				t.Errorf("order changed at %d: got %q, want %q", i, out[i].ID, spots[i].ID)
			}
		}
	}
}

func TestOptimizeRouteGreedyOrder(t *testing.T) {
	// Spots on a meridian, deliberately shuffled: greedy walk from the
	// pinned first element should visit them in coordinate order.
	in := []domain.Spot{
		spotAt("start", 0, 0),
		spotAt("far", 0, 3),
		spotAt("near", 0, 1),
		spotAt("mid", 0, 2),
	}

	out := OptimizeRoute(in)

	want := []string{"start", "near", "mid", "far"}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, out[i].ID, id)
		}
	}

	// Input must not be reordered in place.
	if in[1].ID != "far" {
		t.Error("input slice was modified")
	}
}

func TestOptimizeRouteFirstPinned(t *testing.T) {
	in := []domain.Spot{
		spotAt("anchor", 0, 5),
		spotAt("a", 0, 0),
		spotAt("b", 0, 1),
	}
	out := OptimizeRoute(in)
	if out[0].ID != "anchor" {
		t.Fatalf("first element moved: got %q", out[0].ID)
	}
}

func TestOptimizeRouteIsPermutation(t *testing.T) {
	in := []domain.Spot{
		spotAt("a", 10, 10),
		spotAt("b", 12, -3),
		spotAt("c", -5, 40),
		spotAt("d", 0, 0),
		spotAt("e", 33, 33),
	}
	out := OptimizeRoute(in)

	if len(out) != len(in) {
		t.Fatalf("got %d spots, want %d", len(out), len(in))
	}
	seen := map[string]int{}
	for _, s := range out {
		seen[s.ID]++
	}
	for _, s := range in {
		if seen[s.ID] != 1 {
			t.Errorf("spot %q appears %d times", s.ID, seen[s.ID])
		}
	}
}

func TestOptimizeRouteTieBreaksToLowestIndex(t *testing.T) {
	// Two candidates at the exact same distance from the anchor; the
	// earlier one in the input wins.
	in := []domain.Spot{
		spotAt("anchor", 0, 0),
		spotAt("east", 0, 1),
		spotAt("west", 0, -1),
	}
	out := OptimizeRoute(in)
	if out[1].ID != "east" {
		t.Errorf("tie resolved to %q, want east (lowest index)", out[1].ID)
	}
}
