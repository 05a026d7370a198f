package scoring

import (
	"sort"

	"trip-planner-service/internal/domain"
)

// SelectTop picks the highest-scoring spots up to limit, de-duplicating
// by exact name first (earliest occurrence wins). The sort is stable so
// equal scores keep their input order. The input slice is not modified.
func SelectTop(spots []domain.Spot, limit int) []domain.Spot {
	seen := make(map[string]struct{}, len(spots))
	uniq := make([]domain.Spot, 0, len(spots))
	for _, s := range spots {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		uniq = append(uniq, s)
	}

	sort.SliceStable(uniq, func(i, j int) bool {
		return scoreOf(uniq[i]) > scoreOf(uniq[j])
	})

	if limit >= 0 && len(uniq) > limit {
		uniq = uniq[:limit]
	}
	return uniq
}

func scoreOf(s domain.Spot) int {
	if s.Score == nil {
		return 0
	}
	return *s.Score
}
