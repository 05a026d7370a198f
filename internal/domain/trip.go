package domain

// DayPlan is an ordered, time-stamped visiting sequence for one
// calendar day. Spot order is authoritative: start times and travel
// legs are a pure function of that order, the travel mode, and the
// optional start point, and must be re-derived after any reordering.
type DayPlan struct {
	ID         string       `json:"id"`
	Date       string       `json:"date"` // "2026-06-15"
	Spots      []Spot       `json:"spots"`
	StartPoint *Coordinates `json:"start_point,omitempty"`
}

// SpotIndex returns the position of a spot in the visiting order, or
// -1 when the spot is not part of the day.
func (d *DayPlan) SpotIndex(spotID string) int {
	for i, s := range d.Spots {
		if s.ID == spotID {
			return i
		}
	}
	return -1
}

// Trip groups the day plans for one destination and supplies the
// travel mode and default start coordinates used when building them.
type Trip struct {
	ID        string      `json:"id"`
	City      string      `json:"city"`
	Country   string      `json:"country,omitempty"`
	Coords    Coordinates `json:"coords"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Mode      TravelMode  `json:"mode"`
	Days      []DayPlan   `json:"days"`
	CreatedAt int64       `json:"created_at"`
}

// Day returns the day plan with the given id, or nil.
func (t *Trip) Day(dayID string) *DayPlan {
	for i := range t.Days {
		if t.Days[i].ID == dayID {
			return &t.Days[i]
		}
	}
	return nil
}

// ReplaceDay swaps the stored day plan with the same id, appending the
// day when the trip does not hold it yet.
func (t *Trip) ReplaceDay(day DayPlan) {
	for i := range t.Days {
		if t.Days[i].ID == day.ID {
			t.Days[i] = day
			return
		}
	}
	t.Days = append(t.Days, day)
}
