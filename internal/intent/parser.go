// Package intent maps a lowercased utterance to one structured intent plus
// extracted slots. Parsing is an ordered cascade: rules are evaluated top to
// bottom and the first terminal rule wins. The ordering is load-bearing:
// specific commands (theme switches, cart controls) must be checked before
// the generic order/search fallback, so rules live in fixed tables rather
// than branching code.
package intent

import (
	"regexp"
	"strings"
)

// terminalRule short-circuits the cascade when its pattern matches.
type terminalRule struct {
	re    *regexp.Regexp
	build func() Parsed
}

// assignRule sets the working intent tag (and slots) without stopping the
// cascade; a later assign rule may override it.
type assignRule struct {
	match func(t string) bool
	apply func(t string, p *Parsed)
}

// commandRules run first. First match returns immediately.
var commandRules = []terminalRule{
	{regexp.MustCompile(`\b(enable dark mode|dark mode|enable dark)\b`), func() Parsed {
		return Parsed{Tag: TagTheme, Slots: Slots{Theme: "dark"}}
	}},
	{regexp.MustCompile(`\b(gold theme|premium gold)\b`), func() Parsed {
		return Parsed{Tag: TagTheme, Slots: Slots{Theme: "gold"}}
	}},
	{regexp.MustCompile(`\b(neon mode|neon)\b`), func() Parsed {
		return Parsed{Tag: TagTheme, Slots: Slots{Theme: "neon"}}
	}},
	{regexp.MustCompile(`\b(scroll down|show more|next)\b`), func() Parsed {
		return Parsed{Tag: TagScroll}
	}},
	{regexp.MustCompile(`\b(show|open) (beverages|drinks)\b`), func() Parsed {
		return Parsed{Tag: TagCategory, Slots: Slots{Category: "beverages"}}
	}},
	{regexp.MustCompile(`\b(show|open) biryani\b|\bbiryani section\b`), func() Parsed {
		return Parsed{Tag: TagCategory, Slots: Slots{Category: "biryani"}}
	}},
	{regexp.MustCompile(`\b(show|open) desserts?\b|\bdesserts? section\b`), func() Parsed {
		return Parsed{Tag: TagCategory, Slots: Slots{Category: "desserts"}}
	}},
	{regexp.MustCompile(`\b(increase|add one|add another)\b`), func() Parsed {
		return Parsed{Tag: TagIncrease}
	}},
	{regexp.MustCompile(`\b(remove last added|remove last|undo)\b`), func() Parsed {
		return Parsed{Tag: TagRemoveLast}
	}},
	{regexp.MustCompile(`\b(show my cart|open cart|view cart)\b`), func() Parsed {
		return Parsed{Tag: TagShowCart}
	}},
	{regexp.MustCompile(`\b(clear my cart|empty cart)\b`), func() Parsed {
		return Parsed{Tag: TagClearCart}
	}},
	{regexp.MustCompile(`\b(checkout now|checkout|place order now)\b`), func() Parsed {
		return Parsed{Tag: TagCheckout}
	}},
}

var (
	orderRe         = regexp.MustCompile(`\b(order|add|place order)\b`)
	removeVerbRe    = regexp.MustCompile(`\b(remove|delete)\b`)
	removeSubjectRe = regexp.MustCompile(`cart|item|pizza|biryani|paneer`)
	shippingRe      = regexp.MustCompile(`\b(ship to|shipping|pack|packaging|international)\b`)
	healthyRe       = regexp.MustCompile(`\b(healthy|low calorie|high protein|protein)\b`)
	breakfastRe     = regexp.MustCompile(`\bbreakfast\b`)
	cheatRe         = regexp.MustCompile(`\b(cheat meal|treat)\b`)
	budgetRe        = regexp.MustCompile(`\b(budget|cheap|affordable)\b`)
	spicyRe         = regexp.MustCompile(`\b(spicy|hot|masaledar)\b`)
	sweetRe         = regexp.MustCompile(`\b(sweet|dessert)\b`)
)

// accumulatingRules run after the command rules. They refine the working
// result in order; evaluation continues through the whole table.
var accumulatingRules = []assignRule{
	{orderRe.MatchString, func(t string, p *Parsed) {
		p.Tag = TagOrder
		if q, ok := ExtractQuantity(t); ok {
			p.Quantity = q
		}
	}},
	{func(t string) bool {
		return removeVerbRe.MatchString(t) && removeSubjectRe.MatchString(t)
	}, func(t string, p *Parsed) {
		p.Tag = TagRemove
	}},
	{func(t string) bool {
		_, ok := ExtractAllergen(t)
		return ok
	}, func(t string, p *Parsed) {
		a, _ := ExtractAllergen(t)
		p.Tag = TagAllergy
		p.Allergen = a
	}},
	{shippingRe.MatchString, func(t string, p *Parsed) {
		p.Tag = TagShipping
	}},
}

// lateCommandRules run after the accumulating rules and still short-circuit,
// discarding anything accumulated so far.
var lateCommandRules = []terminalRule{
	{regexp.MustCompile(`\brepeat my last order|repeat\b`), func() Parsed {
		return Parsed{Tag: TagRepeat}
	}},
	{regexp.MustCompile(`\btrack my order|track\b`), func() Parsed {
		return Parsed{Tag: TagTrack}
	}},
	{regexp.MustCompile(`\bfavorites|favourite|favs\b`), func() Parsed {
		return Parsed{Tag: TagFavorites}
	}},
}

// slotRules only attach slots; they never change the intent tag. A search
// intent can carry both a preference and a price range.
var slotRules = []assignRule{
	{func(t string) bool {
		_, ok := ExtractPriceBound(t)
		return ok
	}, func(t string, p *Parsed) {
		p.PriceRange, _ = ExtractPriceBound(t)
	}},
	{healthyRe.MatchString, func(t string, p *Parsed) { p.Category = "healthy" }},
	{breakfastRe.MatchString, func(t string, p *Parsed) { p.Category = "breakfast" }},
	{cheatRe.MatchString, func(t string, p *Parsed) { p.Category = "cheat" }},
	{budgetRe.MatchString, func(t string, p *Parsed) { p.Category = "budget" }},
	{spicyRe.MatchString, func(t string, p *Parsed) { p.Preference = "spicy" }},
	{sweetRe.MatchString, func(t string, p *Parsed) { p.Preference = "sweet" }},
}

// Parse maps text to a structured intent. It never fails: unrecognized input
// yields TagSearch with no slots. Matching is case-insensitive.
func Parse(text string) Parsed {
	t := strings.ToLower(text)

	for _, r := range commandRules {
		if r.re.MatchString(t) {
			return r.build()
		}
	}

	out := Parsed{Tag: TagSearch}

	for _, r := range accumulatingRules {
		if r.match(t) {
			r.apply(t, &out)
		}
	}

	for _, r := range lateCommandRules {
		if r.re.MatchString(t) {
			return r.build()
		}
	}

	for _, r := range slotRules {
		if r.match(t) {
			r.apply(t, &out)
		}
	}

	return out
}
