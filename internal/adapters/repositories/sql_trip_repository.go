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

// SQLTripRepository persists trips in Postgres. It mirrors the SQLite
// repository with $n placeholders and an explicit upsert clause.
type SQLTripRepository struct {
	db *sql.DB
}

func NewSQLTripRepository(db *sql.DB) *SQLTripRepository {
	return &SQLTripRepository{db: db}
}

func (r *SQLTripRepository) ListTrips(ctx context.Context) (_ []domain.Trip, err error) {
	defer obs.Time(ctx, "postgres.ListTrips")(&err)

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

func (r *SQLTripRepository) GetTrip(ctx context.Context, tripID string) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "postgres.GetTrip")(&err)

	if r.db == nil {
		return nil, errors.New("get trip: DB is nil")
	}

	query := `
	SELECT trip_id, city, country, lat, lon, start_date, end_date, mode, days, created_at
	FROM trips
	WHERE trip_id = $1;
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

func (r *SQLTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) (err error) {
	defer obs.Time(ctx, "postgres.SaveTrip")(&err)

	if r.db == nil {
		return errors.New("save trip: DB is nil")
	}

	days, err := json.Marshal(trip.Days)
	if err != nil {
		return fmt.Errorf("save trip %q: marshal days: %w", trip.ID, err)
	}

	query := `
	INSERT INTO trips
		(trip_id, city, country, lat, lon, start_date, end_date, mode, days, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (trip_id) DO UPDATE SET
		city = EXCLUDED.city,
		country = EXCLUDED.country,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		start_date = EXCLUDED.start_date,
		end_date = EXCLUDED.end_date,
		mode = EXCLUDED.mode,
		days = EXCLUDED.days,
		created_at = EXCLUDED.created_at;
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

func (r *SQLTripRepository) DeleteTrip(ctx context.Context, tripID string) (err error) {
	defer obs.Time(ctx, "postgres.DeleteTrip")(&err)

	if r.db == nil {
		return errors.New("delete trip: DB is nil")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID); err != nil {
		return fmt.Errorf("delete trip %q: %w", tripID, err)
	}

	return nil
}
