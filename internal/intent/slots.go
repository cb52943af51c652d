package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Slot extraction helpers. Each is a small pure function whose only failure
// mode is "no match", reported through the bool return.

var (
	quantityRe   = regexp.MustCompile(`(\d+)\s*(pieces|plates|plate|pcs|orders|x)?`)
	priceBoundRe = regexp.MustCompile(`(under|below|less than)\s*₹?(\d+)`)
	allergenRe   = regexp.MustCompile(`allergic to ([a-zA-Z]+)`)
)

// ExtractQuantity finds the first integer token, optionally followed by a
// unit word. Absence implies quantity 1 at the consumer.
func ExtractQuantity(text string) (int, bool) {
	m := quantityRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractPriceBound captures a directional keyword and the following amount,
// optionally preceded by a currency glyph. All three keywords express an
// inclusive upper bound.
func ExtractPriceBound(text string) (*PriceBound, bool) {
	m := priceBoundRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	amount, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, false
	}
	return &PriceBound{Direction: BoundAtMost, Amount: amount}, true
}

// ExtractAllergen captures the word following "allergic to".
func ExtractAllergen(text string) (string, bool) {
	m := allergenRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// GuessCommandCategory buckets an utterance into a coarse command category
// for display badges: order, search, checkout or general.
func GuessCommandCategory(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "order") || strings.Contains(t, "add"):
		return "order"
	case strings.Contains(t, "find") || strings.Contains(t, "show") || strings.Contains(t, "search"):
		return "search"
	case strings.Contains(t, "checkout") || strings.Contains(t, "upi"):
		return "checkout"
	default:
		return "general"
	}
}
