package domain

// TravelMode determines the assumed travel speed between stops.
// Unrecognized modes are treated as walking by the geo utilities.
type TravelMode string

const (
	ModeWalk    TravelMode = "walk"
	ModeTransit TravelMode = "transit"
	ModeCar     TravelMode = "car"
)
