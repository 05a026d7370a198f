package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// SqliteTripRepository persists trips in SQLite. Day plans are stored
// as a JSON column; trips are small and always read whole, so
// normalizing days into rows would only add joins.
type SqliteTripRepository struct {
	db *sql.DB
}

func NewSqliteTripRepository(db *sql.DB) *SqliteTripRepository {
	return &SqliteTripRepository{db: db}
}

func (r *SqliteTripRepository) ListTrips(ctx context.Context) (_ []domain.Trip, err error) {
	defer obs.Time(ctx, "sqlite.ListTrips")(&err)

	if r.db == nil {
		return nil, errors.New("list trips: DB is nil")
	}

	query := `
	SELECT trip_id, city, country, lat, lon, start_date, end_date, mode, days, created_at
	FROM trips
	ORDER BY created_at DESC;
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trips: query: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("list trips: %w", err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: iterate rows: %w", err)
	}

	return trips, nil
}

// GetTrip returns nil when no trip has the given id.
func (r *SqliteTripRepository) GetTrip(ctx context.Context, tripID string) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "sqlite.GetTrip")(&err)

	if r.db == nil {
		return nil, errors.New("get trip: DB is nil")
	}

	query := `
	SELECT trip_id, city, country, lat, lon, start_date, end_date, mode, days, created_at
	FROM trips
	WHERE trip_id = ?;
	`

	trip, err := scanTrip(r.db.QueryRowContext(ctx, query, tripID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %q: %w", tripID, err)
	}

	return &trip, nil
}

func (r *SqliteTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) (err error) {
	defer obs.Time(ctx, "sqlite.SaveTrip")(&err)

	if r.db == nil {
		return errors.New("save trip: DB is nil")
	}

	days, err := json.Marshal(trip.Days)
	if err != nil {
		return fmt.Errorf("save trip %q: marshal days: %w", trip.ID, err)
	}

	query := `
	INSERT OR REPLACE INTO trips
		(trip_id, city, country, lat, lon, start_date, end_date, mode, days, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	_, err = r.db.ExecContext(ctx, query,
		trip.ID, trip.City, trip.Country,
		trip.Coords.Lat, trip.Coords.Lon,
		trip.StartDate, trip.EndDate, string(trip.Mode),
		string(days), trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save trip %q: %w", trip.ID, err)
	}

	return nil
}

func (r *SqliteTripRepository) DeleteTrip(ctx context.Context, tripID string) (err error) {
	defer obs.Time(ctx, "sqlite.DeleteTrip")(&err)

	if r.db == nil {
		return errors.New("delete trip: DB is nil")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE trip_id = ?;`, tripID); err != nil {
		return fmt.Errorf("delete trip %q: %w", tripID, err)
	}

	return nil
}

// rowScanner lets scanTrip work for both QueryRow and Query results.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (domain.Trip, error) {
	var (
		trip domain.Trip
		mode string
		days string
	)

	err := row.Scan(
		&trip.ID, &trip.City, &trip.Country,
		&trip.Coords.Lat, &trip.Coords.Lon,
		&trip.StartDate, &trip.EndDate, &mode,
		&days, &trip.CreatedAt,
	)
	if err != nil {
		return domain.Trip{}, err
	}

	trip.Mode = domain.TravelMode(mode)
	if err := json.Unmarshal([]byte(days), &trip.Days); err != nil {
		return domain.Trip{}, fmt.Errorf("scan trip %q: unmarshal days: %w", trip.ID, err)
	}

	return trip, nil
}
