package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trip-planner-service/internal/domain"
)

func scored(id, name string, score int) domain.Spot {
	s := score
	return domain.Spot{ID: id, Name: name, Score: &s}
}

func TestSelectTopDedupesByNameFirstOccurrence(t *testing.T) {
	in := []domain.Spot{
		scored("a", "Fountain", 40),
		scored("b", "Fountain", 90), // duplicate name, higher score, still dropped
		scored("c", "Garden", 60),
	}
	out := SelectTop(in, 8)
	assert.Len(t, out, 2)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
}

func TestSelectTopCapsAndSortsDescending(t *testing.T) {
	in := make([]domain.Spot, 0, 12)
	for i := 0; i < 12; i++ {
		in = append(in, scored(string(rune('a'+i)), string(rune('A'+i)), i*5))
	}
	out := SelectTop(in, 8)
	assert.Len(t, out, 8)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, *out[i-1].Score, *out[i].Score)
	}
}

func TestSelectTopStableOnTies(t *testing.T) {
	in := []domain.Spot{
		scored("a", "A", 50),
		scored("b", "B", 50),
		scored("c", "C", 50),
	}
	out := SelectTop(in, 8)
	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestSelectTopUnscoredRankLast(t *testing.T) {
	in := []domain.Spot{
		{ID: "manual", Name: "Manual stop"},
		scored("s", "Scored", 30),
	}
	out := SelectTop(in, 8)
	assert.Equal(t, "s", out[0].ID)
}
