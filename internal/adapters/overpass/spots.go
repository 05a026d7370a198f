package overpass

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// FetchSpots queries sightseeing-relevant OSM features around a center.
// The tag filters mirror the classes the scoring rule table knows about.
func (c *Client) FetchSpots(ctx context.Context, center domain.Coordinates, radiusM int) ([]ports.RawSpot, error) {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusM, center.Lat, center.Lon)
	query := fmt.Sprintf(`
[out:json][timeout:30];
(
  node["tourism"~"viewpoint|museum|artwork"]%[1]s;
  node["leisure"~"park|garden|nature_reserve"]%[1]s;
  node["natural"~"peak|hill|beach|waterfall|spring"]%[1]s;
  node["amenity"~"marketplace"]%[1]s;
  node["historic"]%[1]s;
  way["leisure"~"park|garden|nature_reserve"]%[1]s;
  way["tourism"~"viewpoint|museum"]%[1]s;
  relation["leisure"~"park|nature_reserve"]%[1]s;
);
out center 80;
`, around)

	return c.query(ctx, "overpass.FetchSpots", query)
}
