package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `{
  "items": [
    {
      "id": "f1",
      "name": "Chicken Biryani",
      "price": 260,
      "rating": 4.9,
      "tags": ["spicy", "rice", "popular"],
      "cuisine": "Hyderabadi",
      "heatLevel": "hot",
      "veg": false,
      "location": {"lat": 17.385, "lng": 78.4867},
      "deliveryMins": 35,
      "popularity": 98
    },
    {
      "id": "f2",
      "name": "Gulab Jamun",
      "price": 120,
      "rating": 4.6,
      "tags": ["sweet", "dessert"],
      "cuisine": "Indian"
    }
  ]
}`

func TestParse_Valid(t *testing.T) {
	items, err := Parse([]byte(validCatalog))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "f1", items[0].ID)
	assert.Equal(t, 260, items[0].Price)
	assert.Equal(t, HeatHot, items[0].HeatLevel)
	require.NotNil(t, items[0].Location)
	assert.InDelta(t, 17.385, items[0].Location.Lat, 1e-9)

	assert.Nil(t, items[1].Location)
	assert.True(t, items[1].HasTag("sweet"))
	assert.False(t, items[1].HasTag("spicy"))
}

func TestParse_InvalidSchema(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing items", `{}`},
		{"negative price", `{"items":[{"id":"x","name":"X","price":-1,"rating":4,"tags":[],"cuisine":"a"}]}`},
		{"rating out of range", `{"items":[{"id":"x","name":"X","price":10,"rating":9,"tags":[],"cuisine":"a"}]}`},
		{"bad heat level", `{"items":[{"id":"x","name":"X","price":10,"rating":4,"tags":[],"cuisine":"a","heatLevel":"volcanic"}]}`},
		{"missing name", `{"items":[{"id":"x","price":10,"rating":4,"tags":[],"cuisine":"a"}]}`},
		{"not json", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCatalogInvalid)
		})
	}
}

func TestParse_DuplicateID(t *testing.T) {
	data := `{"items":[
		{"id":"x","name":"A","price":10,"rating":4,"tags":[],"cuisine":"a"},
		{"id":"x","name":"B","price":20,"rating":4,"tags":[],"cuisine":"b"}
	]}`
	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateItemID)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	items, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}
