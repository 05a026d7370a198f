// Package nominatim implements the Geocoder port against the public
// OpenStreetMap Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Geocoder resolves free-text place names. When a cache is supplied,
// lookups hit it first and successful resolutions are written back;
// cache failures degrade to a direct lookup rather than erroring.
type Geocoder struct {
	session *http.Client
	baseURL string
	cache   ports.GeocodeCache
}

func NewGeocoder(cache ports.GeocodeCache) *Geocoder {
	return &Geocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		cache:   cache,
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the best-match coordinates for a place name, or nil
// when the place is unknown.
func (g *Geocoder) Geocode(ctx context.Context, place string) (_ *domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	// Collapse whitespace for consistent cache keys.
	norm := strings.Join(strings.Fields(place), " ")
	if norm == "" {
		return nil, nil
	}

	if g.cache != nil {
		hit, err := g.cache.Get(ctx, norm)
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if hit != nil {
			return hit, nil
		}
	}

	endpoint := fmt.Sprintf(
		"%s/search?q=%s&format=json&limit=1",
		g.baseURL, url.QueryEscape(norm),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: create request: %w", norm, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode %q: unexpected status %d", norm, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode %q: decode response: %w", norm, err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	// Nominatim serializes coordinates as strings.
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: invalid latitude %q", norm, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: invalid longitude %q", norm, results[0].Lon)
	}

	coords := domain.Coordinates{Lat: lat, Lon: lon}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, coords); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return &coords, nil
}
