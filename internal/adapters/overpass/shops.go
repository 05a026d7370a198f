package overpass

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// Shop categories worth scoring; anything else would land at the
// baseline and below the interesting range anyway.
const shopCategories = "anime|collector|comic|hobby|toy|games|video_games|gift|variety_store"

// FetchShops queries retail OSM features around a center for the
// standalone shop search flow.
func (c *Client) FetchShops(ctx context.Context, center domain.Coordinates, radiusM int) ([]ports.RawSpot, error) {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusM, center.Lat, center.Lon)
	query := fmt.Sprintf(`
[out:json][timeout:30];
(
  node["shop"~"%[2]s"]%[1]s;
  way["shop"~"%[2]s"]%[1]s;
);
out center 100;
`, around, shopCategories)

	return c.query(ctx, "overpass.FetchShops", query)
}
