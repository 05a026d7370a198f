package domain

// TravelLeg describes the approach to a spot from the previous point
// in the visiting order.
type TravelLeg struct {
	DistKm  float64 `json:"dist_km"`
	Minutes int     `json:"minutes"`
}

// Spot is a named point of interest eligible for scheduling.
//
// StartTime and TravelFromPrev are derived data: they are populated
// exclusively by the schedule builder and are only valid for the spot
// order they were computed from. Score and ScoreReasons are set by the
// scoring step and absent on manually added spots.
type Spot struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Tags           map[string]string `json:"tags,omitempty"`
	Coords         Coordinates       `json:"coords"`
	DurationMin    int               `json:"duration_min"`
	StartTime      string            `json:"start_time,omitempty"`
	TravelFromPrev *TravelLeg        `json:"travel_from_prev,omitempty"`
	Score          *int              `json:"score,omitempty"`
	ScoreReasons   []string          `json:"score_reasons,omitempty"`
}

// Shop is the secondary POI variant used by the shop search flow.
// Shops carry their distance from the search center and are never
// scheduled; they share the coordinate/identity shape of Spot but have
// their own scoring rules.
type Shop struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Tags         map[string]string `json:"tags,omitempty"`
	Coords       Coordinates       `json:"coords"`
	DistKm       float64           `json:"dist_km"`
	Score        int               `json:"score"`
	ScoreReasons []string          `json:"score_reasons,omitempty"`
}
