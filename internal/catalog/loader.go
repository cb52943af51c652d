package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrCatalogNotFound = errors.New("CATALOG_NOT_FOUND")
	ErrCatalogInvalid  = errors.New("CATALOG_INVALID")
	ErrDuplicateItemID = errors.New("DUPLICATE_ITEM_ID")
)

// itemsSchema validates the static catalog file before it is trusted as
// reference data. Shape mirrors the Item struct; id/name/price/rating/tags/
// cuisine are mandatory, everything else optional.
const itemsSchema = `{
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "price", "rating", "tags", "cuisine"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "price": {"type": "integer", "minimum": 0},
          "rating": {"type": "number", "minimum": 0, "maximum": 5},
          "tags": {"type": "array", "items": {"type": "string"}},
          "cuisine": {"type": "string"},
          "heatLevel": {"type": "string", "enum": ["mild", "medium", "hot", "extra"]},
          "veg": {"type": "boolean"},
          "location": {
            "type": "object",
            "required": ["lat", "lng"],
            "properties": {
              "lat": {"type": "number", "minimum": -90, "maximum": 90},
              "lng": {"type": "number", "minimum": -180, "maximum": 180}
            }
          },
          "deliveryMins": {"type": "integer", "minimum": 0},
          "popularity": {"type": "integer", "minimum": 0, "maximum": 100},
          "seasonal": {"type": "array", "items": {"type": "string"}},
          "region": {"type": "string"},
          "nutrition": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

type catalogFile struct {
	Items []Item `json:"items"`
}

// Load reads and validates the static catalog definition at path.
// The returned slice is the engine's immutable catalog snapshot.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON against the schema and decodes it.
func Parse(data []byte) ([]Item, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(itemsSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrCatalogInvalid, strings.Join(msgs, "; "))
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}

	seen := make(map[string]struct{}, len(file.Items))
	for _, it := range file.Items {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItemID, it.ID)
		}
		seen[it.ID] = struct{}{}
	}

	return file.Items, nil
}
