// Package match scores and ranks catalog items against free-text queries
// using normalized-string edit distance with a synonym boost. Lower score is
// better; an exact substring hit scores zero.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"yummport-voice/internal/catalog"
)

// synonyms maps a canonical category term to alternate query terms. A query
// containing any alternate lowers the score of items whose comparison string
// contains the canonical term.
var synonyms = map[string][]string{
	"biryani": {"biryani", "pulao", "rice", "dum biryani"},
	"dessert": {"gulab", "jalebi", "gulaab", "dessert", "sweet", "baklava"},
	"paneer":  {"paneer", "cheese"},
}

// synonymBonus is subtracted once per matching canonical term. Scores may go
// negative; only relative order matters.
const synonymBonus = 1

// Scored is a catalog item annotated with its match score.
type Scored struct {
	Item  catalog.Item
	Score int
}

// Distance is the classic Levenshtein edit distance (unit-cost insert,
// delete, substitute) over the full string pair.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// CompareKey builds the normalized comparison string for an item.
func CompareKey(it catalog.Item) string {
	return Normalize(it.Name + " " + it.Cuisine)
}

// baseScore is 0 for a substring hit, otherwise the edit distance between
// the normalized query and the comparison string.
func baseScore(normQuery, key string) int {
	if strings.Contains(key, normQuery) {
		return 0
	}
	return Distance(normQuery, key)
}

// SynonymBonus returns the total bonus for an item comparison string given a
// normalized query. Exposed separately so the boost is testable apart from
// the base score.
func SynonymBonus(normQuery, key string) int {
	bonus := 0
	for canonical, alternates := range synonyms {
		for _, alt := range alternates {
			if strings.Contains(normQuery, alt) {
				if strings.Contains(key, canonical) {
					bonus += synonymBonus
				}
				break
			}
		}
	}
	return bonus
}

// ScoreAll computes final scores (base minus synonym bonus) for every item,
// preserving catalog order. An empty normalized query yields no results:
// degenerate edit distances would make any ranking accidental, so the
// matcher declines to rank rather than return noise.
func ScoreAll(query string, items []catalog.Item) []Scored {
	normQuery := Normalize(query)
	if normQuery == "" {
		return nil
	}
	scored := make([]Scored, 0, len(items))
	for _, it := range items {
		key := CompareKey(it)
		scored = append(scored, Scored{
			Item:  it,
			Score: baseScore(normQuery, key) - SynonymBonus(normQuery, key),
		})
	}
	return scored
}

// FuzzyFind ranks items best-first. Ties keep catalog order.
func FuzzyFind(query string, items []catalog.Item) []catalog.Item {
	scored := ScoreAll(query, items)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
	out := make([]catalog.Item, len(scored))
	for i, s := range scored {
		out[i] = s.Item
	}
	return out
}

// correctionCandidates caps how many fuzzy results are considered for a
// did-you-mean prompt.
const correctionCandidates = 3

// SuggestCorrection returns up to three items close enough to the query to
// offer as "did you mean" prompts. Closeness is edit distance from the
// normalized query to the normalized item name, below max(3, 0.4·len):
// short queries get an absolute floor of three edits, long queries scale.
func SuggestCorrection(text string, items []catalog.Item) []catalog.Item {
	candidates := FuzzyFind(text, items)
	if len(candidates) > correctionCandidates {
		candidates = candidates[:correctionCandidates]
	}
	normQuery := Normalize(text)
	if normQuery == "" {
		return nil
	}
	threshold := float64(len(normQuery)) * 0.4
	if threshold < 3 {
		threshold = 3
	}
	var out []catalog.Item
	for _, c := range candidates {
		if float64(Distance(normQuery, Normalize(c.Name))) < threshold {
			out = append(out, c)
		}
	}
	return out
}
