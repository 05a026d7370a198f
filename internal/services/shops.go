package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/scoring"
)

// DefaultShopRadiusM bounds the shop search around the requested center.
const DefaultShopRadiusM = 3000

// FindShops fetches retail records around a center, scores them with the
// shop rule table (which includes a distance-from-center penalty), and
// returns them sorted by score descending. Shops are never scheduled.
func FindShops(ctx context.Context, center domain.Coordinates, radiusM int, source ports.ShopSource) ([]domain.Shop, error) {
	if radiusM <= 0 {
		radiusM = DefaultShopRadiusM
	}

	raw, err := source.FetchShops(ctx, center, radiusM)
	if err != nil {
		return nil, fmt.Errorf("find shops: fetch shops: %w", err)
	}

	shops := make([]domain.Shop, 0, len(raw))
	for _, r := range raw {
		name := r.Tags["name"]
		if name == "" {
			continue
		}
		distKm := geo.DistanceKm(center, r.Coords)
		score, reasons := scoring.ScoreShop(r.Tags, distKm)

		shopType := r.Tags["shop"]
		if shopType == "" {
			shopType = "store"
		}

		shops = append(shops, domain.Shop{
			ID:           uuid.NewString(),
			Name:         name,
			Type:         shopType,
			Tags:         r.Tags,
			Coords:       r.Coords,
			DistKm:       distKm,
			Score:        score,
			ScoreReasons: reasons,
		})
	}

	sort.SliceStable(shops, func(i, j int) bool { return shops[i].Score > shops[j].Score })
	return shops, nil
}
