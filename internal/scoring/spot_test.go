package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSpotUnnamed(t *testing.T) {
	score, reasons := ScoreSpot(map[string]string{})
	assert.Equal(t, 20, score, "empty record is baseline minus the unnamed penalty")
	assert.Empty(t, reasons)
}

func TestScoreSpotViewpoint(t *testing.T) {
	score, reasons := ScoreSpot(map[string]string{
		"name":    "Mont Royal",
		"tourism": "viewpoint",
	})
	assert.Equal(t, 65, score)
	assert.Equal(t, []string{"viewpoint"}, reasons)
}

func TestScoreSpotRulesAreCumulative(t *testing.T) {
	score, reasons := ScoreSpot(map[string]string{
		"name":    "Parc des Buttes",
		"leisure": "nature_reserve",
		"historic": "monument",
		"name:wikidata": "Q1234",
	})
	// 50 + 18 + 8 + 5
	assert.Equal(t, 81, score)
	assert.Equal(t, []string{"nature reserve", "historic (monument)", "notable place"}, reasons)
}

func TestScoreSpotClampsBothEnds(t *testing.T) {
	low, _ := ScoreSpot(map[string]string{"tourism": "attraction"}) // unnamed too
	assert.Equal(t, 0, low)

	high, reasons := ScoreSpot(map[string]string{
		"name":          "Everything Falls",
		"tourism":       "viewpoint",
		"leisure":       "nature_reserve",
		"natural":       "waterfall",
		"amenity":       "marketplace",
		"historic":      "castle",
		"name:wikidata": "Q42",
	})
	assert.Equal(t, 100, high)
	assert.Len(t, reasons, 6)
}

func TestScoreSpotTouristPenalty(t *testing.T) {
	score, reasons := ScoreSpot(map[string]string{
		"name":    "Mega Park",
		"tourism": "theme_park",
	})
	assert.Equal(t, 30, score)
	assert.Equal(t, []string{"very touristy"}, reasons)
}

func TestScoreSpotDeterministic(t *testing.T) {
	tags := map[string]string{
		"name":    "Old Market",
		"amenity": "marketplace",
		"historic": "yes",
	}
	s1, r1 := ScoreSpot(tags)
	s2, r2 := ScoreSpot(tags)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func TestDefaultDuration(t *testing.T) {
	tests := []struct {
		tags map[string]string
		want int
	}{
		{map[string]string{"leisure": "park"}, 60},
		{map[string]string{"leisure": "nature_reserve"}, 90},
		{map[string]string{"tourism": "museum"}, 90},
		{map[string]string{"tourism": "viewpoint"}, 30},
		{map[string]string{"natural": "beach"}, 45},
		{map[string]string{"amenity": "cafe"}, 30},
		{map[string]string{}, 45},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultDuration(tt.tags), "tags=%v", tt.tags)
	}
}
