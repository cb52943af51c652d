package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"plain number", "order 3 plates of biryani", 3, true},
		{"unit pcs", "2 pcs samosa", 2, true},
		{"unit x", "4x dosa", 4, true},
		{"bare number", "give me 7", 7, true},
		{"no number", "order biryani", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractQuantity(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPriceBound(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		amount int
		wantOK bool
	}{
		{"under with glyph", "biryani under ₹300", 300, true},
		{"under without glyph", "under 150", 150, true},
		{"below", "below 200", 200, true},
		{"less than", "less than ₹500", 500, true},
		{"no bound", "spicy biryani", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPriceBound(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, got)
				assert.Equal(t, BoundAtMost, got.Direction)
				assert.Equal(t, tt.amount, got.Amount)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestExtractAllergen(t *testing.T) {
	a, ok := ExtractAllergen("i am allergic to Nuts")
	assert.True(t, ok)
	assert.Equal(t, "nuts", a)

	_, ok = ExtractAllergen("no allergies here")
	assert.False(t, ok)
}

func TestGuessCommandCategory(t *testing.T) {
	assert.Equal(t, "order", GuessCommandCategory("order biryani"))
	assert.Equal(t, "order", GuessCommandCategory("add one more"))
	assert.Equal(t, "search", GuessCommandCategory("find spicy food"))
	assert.Equal(t, "search", GuessCommandCategory("show my favourites"))
	assert.Equal(t, "checkout", GuessCommandCategory("pay via upi"))
	assert.Equal(t, "general", GuessCommandCategory("hello there"))
}
