package services

import (
	"math"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
)

// OptimizeRoute reorders spots using a greedy nearest-neighbor heuristic.
//
// The first spot is pinned as the fixed starting point; each following
// position takes the closest not-yet-placed spot by great-circle
// distance, with ties going to the lowest remaining index. The heuristic
// does not attempt global route optimization (e.g., TSP solvers) and can
// be arbitrarily suboptimal; the design prioritizes determinism and
// interactive responsiveness on small sets.
//
// Inputs of length 0, 1 or 2 are returned unchanged. The input slice is
// never modified.
func OptimizeRoute(spots []domain.Spot) []domain.Spot {
	if len(spots) <= 2 {
		return spots
	}

	remaining := append([]domain.Spot(nil), spots[1:]...)
	result := make([]domain.Spot, 0, len(spots))
	result = append(result, spots[0])

	for len(remaining) > 0 {
		last := result[len(result)-1]

		bestIdx := 0
		bestDist := math.Inf(1)
		for i := range remaining {
			// Strict less-than keeps the lowest index on equal distances.
			if d := geo.DistanceKm(last.Coords, remaining[i].Coords); d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		result = append(result, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return result
}
