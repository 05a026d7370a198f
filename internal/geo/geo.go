// Package geo provides the distance and time arithmetic shared by the
// route optimizer and the schedule builder. All functions are pure.
package geo

import (
	"fmt"
	"math"

	"trip-planner-service/internal/domain"
)

const earthRadiusKm = 6371.0

// Assumed city travel speeds in km/h per mode.
var speedsKmh = map[domain.TravelMode]float64{
	domain.ModeWalk:    4.5,
	domain.ModeTransit: 20, // with stops and connection walking
	domain.ModeCar:     35, // city traffic
}

// DistanceKm returns the great-circle distance between two coordinates
// using the haversine formula. Spherical, not ellipsoidal; the error is
// acceptable at city scale.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	c := sinDLat*sinDLat +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*sinDLon*sinDLon
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(c), math.Sqrt(1-c))
}

// TravelMinutes estimates the travel time for a distance at the speed
// of the given mode, rounded to the nearest minute. Unrecognized modes
// fall back to walking speed.
func TravelMinutes(distKm float64, mode domain.TravelMode) int {
	speed, ok := speedsKmh[mode]
	if !ok {
		speed = speedsKmh[domain.ModeWalk]
	}
	return int(math.Round(distKm / speed * 60))
}

// FormatDuration renders minutes as "45min", "1h 30min" or "2h".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dmin", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// AddMinutes adds a minute offset to a 24-hour "HH:MM" clock string,
// wrapping at midnight in both directions.
func AddMinutes(clock string, minutes int) string {
	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	total := (h*60 + m + minutes) % 1440
	if total < 0 {
		total += 1440
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
