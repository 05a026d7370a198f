package scoring

import (
	"fmt"
	"strings"
)

const shopBaseline = 30

// Name fragments that mark a shop as relevant to the anime/collectible
// scene. Scan order matters: the first match wins the (single) bonus.
var shopNameKeywords = []string{
	"manga", "anime", "figurine", "figure", "otaku", "hobby", "tcg",
	"trading card", "collectible", "gunpla", "model kit", "cosplay",
	"japanime", "japan", "akiba", "animate", "nakano", "comic", "bd",
	"geek", "gamer", "gaming",
}

// ScoreShop rates a retail record for the standalone shop search flow.
// The rule table is disjoint from ScoreSpot: a category bonus (one per
// record), an at-most-once name keyword bonus, contact-metadata bonuses,
// and a penalty for shops far from the search center. Clamped to [0,100].
func ScoreShop(tags map[string]string, distKm float64) (int, []string) {
	score := shopBaseline
	reasons := []string{}

	shop := tags["shop"]
	name := strings.ToLower(tags["name"])

	switch shop {
	case "anime":
		score += 35
		reasons = append(reasons, "shop=anime")
	case "collector":
		score += 30
		reasons = append(reasons, "shop=collector")
	case "comic":
		score += 28
		reasons = append(reasons, "shop=comic")
	case "hobby":
		score += 25
		reasons = append(reasons, "shop=hobby")
	case "toy":
		score += 20
		reasons = append(reasons, "shop=toy")
	case "games", "video_games":
		score += 18
		reasons = append(reasons, "shop="+shop)
	case "gift":
		score += 10
		reasons = append(reasons, "shop=gift")
	case "variety_store":
		score += 8
		reasons = append(reasons, "shop=variety_store")
	}

	for _, kw := range shopNameKeywords {
		if strings.Contains(name, kw) {
			score += 15
			reasons = append(reasons, fmt.Sprintf("name contains %q", kw))
			break
		}
	}

	// Contact info suggests an active business.
	if tags["website"] != "" {
		score += 5
		reasons = append(reasons, "website listed")
	}
	if tags["phone"] != "" {
		score += 3
		reasons = append(reasons, "phone listed")
	}
	if tags["opening_hours"] != "" {
		score += 3
		reasons = append(reasons, "opening hours listed")
	}

	if distKm > 5 {
		score -= 10
		reasons = append(reasons, "far from center")
	} else if distKm > 2 {
		score -= 3
	}

	return clamp(score), reasons
}
