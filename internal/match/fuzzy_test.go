package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yummport-voice/internal/catalog"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "f1", Name: "Paneer Butter Masala", Cuisine: "North Indian"},
		{ID: "f2", Name: "Chicken Biryani", Cuisine: "Hyderabadi"},
		{ID: "f3", Name: "Gulab Jamun", Cuisine: "Indian"},
		{ID: "f4", Name: "Masala Dosa", Cuisine: "South Indian"},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Chicken Biryani", "chicken biryani"},
		{"strips punctuation", "what's trending today?!", "whats trending today"},
		{"strips currency glyph", "under ₹300", "under 300"},
		{"folds diacritics", "jalebí", "jalebi"},
		{"trims", "  dosa  ", "dosa"},
		{"only junk", "₹₹!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestDistance(t *testing.T) {
	// classic reference value
	assert.Equal(t, 3, Distance("kitten", "sitting"))
	assert.Equal(t, 0, Distance("dosa", "dosa"))
	assert.Equal(t, 4, Distance("", "dosa"))
}

func TestScoreAll_SubstringScoresZero(t *testing.T) {
	scored := ScoreAll("biryani", testItems())
	require.Len(t, scored, 4)

	byID := map[string]int{}
	for _, s := range scored {
		byID[s.Item.ID] = s.Score
	}
	// substring hit plus synonym bonus goes negative; only relative order matters
	assert.LessOrEqual(t, byID["f2"], 0)
	assert.Greater(t, byID["f1"], 0)
	assert.Greater(t, byID["f3"], 0)
}

func TestScoreAll_EmptyQuery(t *testing.T) {
	assert.Nil(t, ScoreAll("", testItems()))
	assert.Nil(t, ScoreAll("₹!!", testItems()))
}

func TestSynonymBonus(t *testing.T) {
	// "rice" is an alternate for the biryani category
	assert.Equal(t, 1, SynonymBonus("some rice please", "chicken biryani hyderabadi"))
	// one bonus per canonical term, not per alternate
	assert.Equal(t, 1, SynonymBonus("rice pulao", "chicken biryani hyderabadi"))
	// dessert alternates boost dessert-named items
	assert.Equal(t, 1, SynonymBonus("something sweet", "gulab jamun dessert special"))
	assert.Equal(t, 0, SynonymBonus("something sweet", "chicken biryani hyderabadi"))
}

func TestFuzzyFind_Ordering(t *testing.T) {
	found := FuzzyFind("biryani", testItems())
	require.NotEmpty(t, found)
	assert.Equal(t, "f2", found[0].ID)
}

func TestFuzzyFind_StableTies(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Name: "Dosa", Cuisine: ""},
		{ID: "b", Name: "Dosa", Cuisine: ""},
	}
	found := FuzzyFind("dosa", items)
	require.Len(t, found, 2)
	assert.Equal(t, "a", found[0].ID)
	assert.Equal(t, "b", found[1].ID)
}

func TestFuzzyFind_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, FuzzyFind("paneer", testItems()), FuzzyFind("paneer", testItems()))
	}
}

func TestSuggestCorrection(t *testing.T) {
	items := []catalog.Item{
		{ID: "f1", Name: "Biryani", Cuisine: "Hyderabadi"},
		{ID: "f2", Name: "Paneer Butter Masala", Cuisine: "North Indian"},
	}

	t.Run("one transposition away", func(t *testing.T) {
		got := SuggestCorrection("byriani", items)
		require.NotEmpty(t, got)
		assert.Equal(t, "f1", got[0].ID)
	})

	t.Run("nothing close enough", func(t *testing.T) {
		got := SuggestCorrection("xqzw", items)
		assert.Empty(t, got)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, SuggestCorrection("", items))
	})
}
