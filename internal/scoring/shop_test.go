package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreShopFullHouse(t *testing.T) {
	score, reasons := ScoreShop(map[string]string{
		"name":    "Manga Paradise",
		"shop":    "anime",
		"website": "https://example.com",
	}, 0.5)
	// 30 + 35 + 15 + 5
	assert.Equal(t, 85, score)
	assert.Equal(t, []string{"shop=anime", `name contains "manga"`, "website listed"}, reasons)
}

func TestScoreShopCategoryBonusIsExclusive(t *testing.T) {
	score, _ := ScoreShop(map[string]string{"name": "X", "shop": "variety_store"}, 0)
	assert.Equal(t, 38, score)

	score, reasons := ScoreShop(map[string]string{"name": "X", "shop": "video_games"}, 0)
	assert.Equal(t, 48, score)
	assert.Contains(t, reasons, "shop=video_games")
}

func TestScoreShopKeywordBonusAppliesOnce(t *testing.T) {
	// Name matches several keywords; only the first in scan order counts.
	score, reasons := ScoreShop(map[string]string{
		"name": "Anime Manga Comic Base",
		"shop": "books",
	}, 0)
	assert.Equal(t, 45, score)
	assert.Equal(t, []string{`name contains "manga"`}, reasons)
}

func TestScoreShopContactMetadata(t *testing.T) {
	score, reasons := ScoreShop(map[string]string{
		"name":          "Plain Store",
		"phone":         "+33 1 00 00 00 00",
		"opening_hours": "Mo-Sa 10:00-19:00",
	}, 0)
	assert.Equal(t, 36, score)
	assert.Equal(t, []string{"phone listed", "opening hours listed"}, reasons)
}

func TestScoreShopDistancePenalty(t *testing.T) {
	near, nearReasons := ScoreShop(map[string]string{"name": "Plain"}, 1.0)
	assert.Equal(t, 30, near)
	assert.Empty(t, nearReasons)

	mid, midReasons := ScoreShop(map[string]string{"name": "Plain"}, 3.0)
	assert.Equal(t, 27, mid)
	assert.Empty(t, midReasons, "mid-range penalty is silent")

	far, farReasons := ScoreShop(map[string]string{"name": "Plain"}, 6.0)
	assert.Equal(t, 20, far)
	assert.Equal(t, []string{"far from center"}, farReasons)
}
