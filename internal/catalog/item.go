package catalog

// HeatLevel grades how spicy a dish is.
type HeatLevel string

const (
	HeatMild   HeatLevel = "mild"
	HeatMedium HeatLevel = "medium"
	HeatHot    HeatLevel = "hot"
	HeatExtra  HeatLevel = "extra"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Item is one orderable dish. Prices are whole rupees. Items are loaded once
// at startup and treated as read-only reference data afterwards.
type Item struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Price        int         `json:"price"`
	Rating       float64     `json:"rating"`
	Tags         []string    `json:"tags"`
	Cuisine      string      `json:"cuisine"`
	HeatLevel    HeatLevel   `json:"heatLevel,omitempty"`
	Veg          bool        `json:"veg,omitempty"`
	Location     *Coordinate `json:"location,omitempty"`
	DeliveryMins int         `json:"deliveryMins,omitempty"`
	Popularity   int         `json:"popularity,omitempty"`
	Seasonal     []string    `json:"seasonal,omitempty"`
	Region       string      `json:"region,omitempty"`
	Nutrition    []string    `json:"nutrition,omitempty"`
}

// HasTag reports whether the item carries the given tag.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
