// Package rank applies slot constraints and ordering adjustments to a
// matched result set. Filters are permissive: an absent slot applies no
// constraint, and unmatched input degrades to a passthrough.
package rank

import (
	"sort"
	"strings"

	"yummport-voice/internal/catalog"
	"yummport-voice/internal/detect"
	"yummport-voice/internal/intent"
)

// Options tunes one Apply call. Origin enables geo-ranking; Limit 0 means no
// cap; the cap is a presentation concern owned by the caller.
type Options struct {
	Origin *catalog.Coordinate
	Tone   detect.Tone
	Limit  int
}

// Apply runs the ranking pipeline: slot filters in fixed order (category,
// preference, allergen, price bound), then geo-ranking when an origin is
// supplied, then the tone/preference re-rank, then the optional cap.
func Apply(items []catalog.Item, slots intent.Slots, opts Options) []catalog.Item {
	out := Filter(items, slots)

	if opts.Origin != nil {
		ranked := SortByDistance(out, *opts.Origin)
		out = out[:0:0]
		for _, r := range ranked {
			out = append(out, r.Item)
		}
	}

	out = ToneRerank(out, opts.Tone, slots.Preference)

	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

// Filter applies the slot constraints, each only if present.
func Filter(items []catalog.Item, slots intent.Slots) []catalog.Item {
	out := items
	if slots.Category != "" {
		out = keep(out, func(it catalog.Item) bool {
			return it.HasTag(slots.Category) ||
				strings.Contains(strings.ToLower(it.Cuisine), slots.Category)
		})
	}
	if slots.Preference != "" {
		out = keep(out, func(it catalog.Item) bool {
			return matchesPreference(it, slots.Preference)
		})
	}
	if slots.Allergen != "" {
		allergen := strings.ToLower(slots.Allergen)
		out = keep(out, func(it catalog.Item) bool {
			return !it.HasTag(allergen) &&
				!strings.Contains(strings.ToLower(it.Name), allergen)
		})
	}
	if slots.PriceRange != nil {
		pr := slots.PriceRange
		out = keep(out, func(it catalog.Item) bool {
			if pr.Direction == intent.BoundAtMost {
				return it.Price <= pr.Amount
			}
			return it.Price >= pr.Amount
		})
	}
	return out
}

// matchesPreference mirrors the storefront's preference heuristics: spicy
// additionally matches biryani dishes by name.
func matchesPreference(it catalog.Item, pref string) bool {
	switch pref {
	case "spicy":
		return it.HasTag("spicy") || strings.Contains(strings.ToLower(it.Name), "biryani")
	case "sweet":
		return it.HasTag("sweet")
	case "light":
		return it.HasTag("light")
	default:
		return it.HasTag(pref)
	}
}

// ToneRerank nudges items up when their tags correlate with the detected
// tone or the extracted preference. Deltas are -1 per matching heuristic;
// the sort is stable so unaffected items keep their prior order.
func ToneRerank(items []catalog.Item, tone detect.Tone, preference string) []catalog.Item {
	type scored struct {
		item  catalog.Item
		delta int
	}
	s := make([]scored, len(items))
	for i, it := range items {
		d := 0
		if tone == detect.ToneHungry && it.HasTag("rice") {
			d--
		}
		if tone == detect.ToneUrgent && it.HasTag("popular") {
			d--
		}
		if preference == "spicy" && it.HasTag("spicy") {
			d--
		}
		if preference == "sweet" && it.HasTag("sweet") {
			d--
		}
		s[i] = scored{item: it, delta: d}
	}
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].delta < s[j].delta
	})
	out := make([]catalog.Item, len(items))
	for i, sc := range s {
		out[i] = sc.item
	}
	return out
}

func keep(items []catalog.Item, pred func(catalog.Item) bool) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
