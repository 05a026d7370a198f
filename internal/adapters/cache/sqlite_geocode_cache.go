package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/domain"
)

// SQLite backed cache mapping place names to geographic coordinates.
// Keys are expected to be consistent (e.g., already normalized) by the
// caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached coordinates for a place, nil on a miss.
func (s *SqliteGeocodeCache) Get(ctx context.Context, place string) (*domain.Coordinates, error) {
	if s.DB == nil {
		return nil, errors.New("geocode cache: db is nil")
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return nil, errors.New("get geocode cache: place must not be empty")
	}

	q := `
	SELECT lat, lon
	FROM geocode_cache
	WHERE place = ?;
	`

	var c domain.Coordinates
	err := s.DB.QueryRowContext(ctx, q, place).Scan(&c.Lat, &c.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return &c, nil
}

// Store a place -> coordinate mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, place string, coords domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return errors.New("insert geocode cache: place must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
		place,
		lat,
		lon
	)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, place, coords.Lat, coords.Lon); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", place, err)
	}

	return nil
}
