// Package scoring rates raw points of interest for "interestingness".
//
// Scores come from fixed, additive rule tables keyed on OpenStreetMap
// tag values. Every applicable rule applies; rules are independent and
// evaluated in a fixed order, and each contributes a short rationale
// string in that order. There is no learned component.
package scoring

import "fmt"

const (
	// MinScore is the filter threshold: records scoring below it are
	// excluded before scheduling.
	MinScore = 20
	// MaxDaySpots caps how many spots a generated day may hold.
	MaxDaySpots = 8

	spotBaseline = 50
)

// ScoreSpot rates a sightseeing candidate from its raw tags, preferring
// local and nature spots over generic tourist draws. The returned score
// is clamped to [0,100].
func ScoreSpot(tags map[string]string) (int, []string) {
	score := spotBaseline
	reasons := []string{}

	tourism := tags["tourism"]
	leisure := tags["leisure"]
	amenity := tags["amenity"]
	natural := tags["natural"]
	historic := tags["historic"]

	if tourism == "attraction" || tourism == "theme_park" {
		score -= 20
		reasons = append(reasons, "very touristy")
	}
	if tourism == "viewpoint" {
		score += 15
		reasons = append(reasons, "viewpoint")
	}
	if tourism == "museum" {
		score += 5
		reasons = append(reasons, "museum")
	}
	if leisure == "park" || leisure == "garden" {
		score += 12
		reasons = append(reasons, "park")
	}
	if leisure == "nature_reserve" {
		score += 18
		reasons = append(reasons, "nature reserve")
	}
	if natural == "peak" || natural == "hill" {
		score += 16
		reasons = append(reasons, "high point")
	}
	if natural == "beach" {
		score += 14
		reasons = append(reasons, "beach")
	}
	if natural == "waterfall" {
		score += 18
		reasons = append(reasons, "waterfall")
	}
	if amenity == "marketplace" || tags["shop"] == "market" {
		score += 10
		reasons = append(reasons, "local market")
	}
	if historic != "" {
		score += 8
		reasons = append(reasons, fmt.Sprintf("historic (%s)", historic))
	}
	if amenity == "cafe" {
		score += 5
		reasons = append(reasons, "local cafe")
	}
	if tags["name:wikidata"] != "" {
		score += 5
		reasons = append(reasons, "notable place")
	}
	// Unnamed records are unusable downstream; push them under MinScore.
	if tags["name"] == "" {
		score -= 30
	}

	return clamp(score), reasons
}

// DefaultDuration suggests a visit duration in minutes for a spot class.
func DefaultDuration(tags map[string]string) int {
	leisure := tags["leisure"]
	tourism := tags["tourism"]
	amenity := tags["amenity"]
	natural := tags["natural"]

	switch {
	case leisure == "park" || leisure == "garden":
		return 60
	case leisure == "nature_reserve":
		return 90
	case tourism == "museum":
		return 90
	case tourism == "viewpoint":
		return 30
	case natural != "":
		return 45
	case amenity == "marketplace":
		return 45
	case amenity == "cafe":
		return 30
	}
	return 45
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
