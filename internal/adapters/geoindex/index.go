// Package geoindex implements the SpotSource ports against a local
// seed file, indexed in an in-memory R-tree. It serves offline runs
// and the CLI, where calling Overpass is unwanted.
package geoindex

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/dhconnelly/rtreego"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/geo"
	"trip-planner-service/internal/ports"
)

const (
	dimensions  = 2
	minChildren = 25
	maxChildren = 50
	tolerance   = 0.0001
)

// SeedSpot is one record of the seed file.
type SeedSpot struct {
	Name string            `json:"name"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type spatialSeed struct {
	seed SeedSpot
	rect *rtreego.Rect
}

func (s *spatialSeed) Bounds() *rtreego.Rect {
	return s.rect
}

// Index answers radius queries over a fixed set of seeded spots.
type Index struct {
	mu   sync.RWMutex
	tree *rtreego.Rtree
}

// New builds an index from seed records. Records without a name are
// skipped, matching how remote results are filtered.
func New(seeds []SeedSpot) *Index {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)

	for _, seed := range seeds {
		if seed.Name == "" {
			continue
		}
		point := rtreego.Point{seed.Lat, seed.Lon}
		tree.Insert(&spatialSeed{seed: seed, rect: point.ToRect(tolerance)})
	}

	return &Index{tree: tree}
}

// Load reads a JSON seed file and builds an index from it.
func Load(path string) (*Index, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed file %q: %w", path, err)
	}

	var seeds []SeedSpot
	if err := json.Unmarshal(payload, &seeds); err != nil {
		return nil, fmt.Errorf("load seed file %q: unmarshal: %w", path, err)
	}

	return New(seeds), nil
}

// search prefilters with a bounding box, then keeps only seeds whose
// great-circle distance is within the radius.
func (ix *Index) search(center domain.Coordinates, radiusM int) []ports.RawSpot {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	radiusKm := float64(radiusM) / 1000

	latDelta := radiusKm / 111
	lonScale := math.Cos(center.Lat * math.Pi / 180)
	if lonScale < 0.01 {
		lonScale = 0.01
	}
	lonDelta := radiusKm / (111 * lonScale)

	bounds, err := rtreego.NewRect(
		rtreego.Point{center.Lat - latDelta, center.Lon - lonDelta},
		[]float64{2 * latDelta, 2 * lonDelta},
	)
	if err != nil {
		return nil
	}

	var spots []ports.RawSpot
	for _, result := range ix.tree.SearchIntersect(bounds) {
		item, ok := result.(*spatialSeed)
		if !ok {
			continue
		}

		coords := domain.Coordinates{Lat: item.seed.Lat, Lon: item.seed.Lon}
		if geo.DistanceKm(center, coords) > radiusKm {
			continue
		}

		tags := map[string]string{"name": item.seed.Name}
		for k, v := range item.seed.Tags {
			tags[k] = v
		}
		spots = append(spots, ports.RawSpot{Tags: tags, Coords: coords})
	}

	return spots
}

// FetchSpots returns seeded sightseeing spots within the radius.
func (ix *Index) FetchSpots(_ context.Context, center domain.Coordinates, radiusM int) ([]ports.RawSpot, error) {
	return ix.search(center, radiusM), nil
}

// FetchShops returns seeded records carrying a shop tag.
func (ix *Index) FetchShops(_ context.Context, center domain.Coordinates, radiusM int) ([]ports.RawSpot, error) {
	var shops []ports.RawSpot
	for _, spot := range ix.search(center, radiusM) {
		if spot.Tags["shop"] != "" {
			shops = append(shops, spot)
		}
	}
	return shops, nil
}
