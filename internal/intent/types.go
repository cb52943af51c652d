package intent

// Tag is the closed-set classification of what a user utterance requests.
type Tag string

const (
	TagSearch     Tag = "search"
	TagOrder      Tag = "order"
	TagCategory   Tag = "category"
	TagTheme      Tag = "theme"
	TagScroll     Tag = "scroll"
	TagIncrease   Tag = "increase"
	TagRemoveLast Tag = "remove_last"
	TagShowCart   Tag = "show_cart"
	TagClearCart  Tag = "clear_cart"
	TagCheckout   Tag = "checkout"
	TagRemove     Tag = "remove"
	TagAllergy    Tag = "allergy"
	TagShipping   Tag = "shipping"
	TagRepeat     Tag = "repeat"
	TagTrack      Tag = "track"
	TagFavorites  Tag = "favorites"
)

// BoundDirection says which side of a price bound is constrained.
type BoundDirection string

const (
	BoundAtMost  BoundDirection = "at_most"
	BoundAtLeast BoundDirection = "at_least"
)

// PriceBound is an extracted price constraint. The bound is inclusive on the
// stated amount for both directions.
type PriceBound struct {
	Direction BoundDirection
	Amount    int
}

// Slots carries the optional values extracted alongside an intent. Zero
// values mean absent; Quantity 0 means "not stated" and consumers treat it
// as 1.
type Slots struct {
	Quantity   int
	PriceRange *PriceBound
	Preference string
	Category   string
	Allergen   string
	Theme      string
}

// Parsed is the structured output of intent parsing. Tag is always set;
// unrecognized input defaults to TagSearch.
type Parsed struct {
	Tag Tag
	Slots
}

// EffectiveQuantity applies the absent-means-one default.
func (p Parsed) EffectiveQuantity() int {
	if p.Quantity <= 0 {
		return 1
	}
	return p.Quantity
}
