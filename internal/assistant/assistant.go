// Package assistant orchestrates the voice pipeline: detect tone/language,
// parse the intent, match and rank catalog items, then tell the host what
// the user wants. Side effects (cart mutation, navigation, theming) are the
// host's job, performed through the Actions callbacks; the engine never
// touches them directly.
package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"yummport-voice/internal/catalog"
	"yummport-voice/internal/common/logger"
	"yummport-voice/internal/common/metrics"
	"yummport-voice/internal/detect"
	"yummport-voice/internal/intent"
	"yummport-voice/internal/match"
	"yummport-voice/internal/rank"
	"yummport-voice/internal/session"
)

// Config tunes presentation-level behavior. Result caps belong to the host,
// not to the matching contracts.
type Config struct {
	WakePhrase     string
	ResultLimit    int
	FallbackLimit  int
	NearbyRadiusKm float64
}

// Actions are the host-supplied callbacks the assistant invokes on behalf of
// a parsed intent. Any of them may be nil; the assistant then only reports
// the request in the Response.
type Actions struct {
	AddToCart  func(item catalog.Item, quantity int)
	RemoveItem func(item catalog.Item)
	RemoveLast func()
	ClearCart  func()
	ShowCart   func()
	Checkout   func()
	SetTheme   func(theme string)
	Scroll     func()
	Navigate   func(label string)
}

// Response is what one utterance produced: the classified intent and tone,
// the ranked results, and any prompt the host should render. An empty result
// list together with Corrections distinguishes "nothing found" from "did you
// mean".
type Response struct {
	Intent          intent.Tag
	Tone            detect.Tone
	Language        detect.Language
	Emotion         detect.Emotion
	CommandCategory string
	Prompt          string
	Results         []catalog.Item
	Corrections     []catalog.Item
	AwaitingInput   bool
}

type Assistant struct {
	config  *Config
	items   []catalog.Item
	actions Actions
	logger  logger.Logger
}

var (
	nearbyRe  = regexp.MustCompile(`\b(nearby|near me|closest|close by)\b`)
	countryRe = regexp.MustCompile(`to ([A-Za-z ]+)`)
	removeCut = regexp.MustCompile(`remove|delete|from cart`)
)

// New builds an Assistant over an immutable catalog snapshot.
func New(config *Config, items []catalog.Item, actions Actions, log logger.Logger) *Assistant {
	return &Assistant{
		config:  config,
		items:   items,
		actions: actions,
		logger:  log.With(map[string]interface{}{"component": "assistant"}),
	}
}

// Process handles one utterance. When a follow-up is pending (quantity,
// dish, item to remove) the text is treated as its answer; otherwise it runs
// the full pipeline. origin is optional and only engages geo-ranking for
// nearby-flavored queries.
func (a *Assistant) Process(state *session.State, text string, origin *catalog.Coordinate) *Response {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &Response{Intent: intent.TagSearch, Tone: detect.ToneNeutral, Language: detect.LangEnglish, Emotion: detect.EmotionNeutral}
	}

	if state.Pending != nil {
		switch state.Pending.Kind {
		case session.PendingQuantity, session.PendingDish, session.PendingRemoveItem, session.PendingPackaging:
			return a.resume(state, trimmed)
		}
		// Wake and correction contexts do not capture the next utterance.
		state.ClearPending()
	}

	lower := strings.ToLower(trimmed)
	d := detect.Detect(trimmed)

	state.AddUserTurn(trimmed)
	state.Searches.Add(trimmed)
	state.Commands.Add(trimmed)

	resp := &Response{
		Tone:            d.Tone,
		Language:        d.Language,
		Emotion:         detect.EmotionForTone(d.Tone),
		CommandCategory: intent.GuessCommandCategory(trimmed),
	}

	if a.config.WakePhrase != "" && strings.Contains(lower, a.config.WakePhrase) {
		resp.Intent = intent.TagSearch
		resp.Prompt = "Yes? How can I help?"
		state.SetPending(&session.Pending{Kind: session.PendingWake})
		state.AddAssistantTurn(resp.Prompt)
		return resp
	}

	parsed := intent.Parse(lower)
	resp.Intent = parsed.Tag
	metrics.UtterancesProcessed.WithLabelValues(string(parsed.Tag)).Inc()

	a.logger.Info("utterance parsed", map[string]interface{}{
		"session":  state.ID,
		"intent":   string(parsed.Tag),
		"tone":     string(d.Tone),
		"language": string(d.Language),
	})

	a.dispatch(state, resp, parsed, trimmed, lower, origin)

	// Did-you-mean runs after intent handling and may override the prompt.
	if corrections := match.SuggestCorrection(trimmed, a.items); len(corrections) > 0 {
		resp.Corrections = corrections
		resp.Prompt = fmt.Sprintf("Did you mean: %s?", corrections[0].Name)
		state.SetPending(&session.Pending{Kind: session.PendingCorrection, Suggestions: corrections})
		metrics.CorrectionsSuggested.Inc()
	}

	if resp.Prompt != "" {
		state.AddAssistantTurn(resp.Prompt)
	}
	return resp
}

func (a *Assistant) dispatch(state *session.State, resp *Response, parsed intent.Parsed, raw, lower string, origin *catalog.Coordinate) {
	switch parsed.Tag {
	case intent.TagTheme:
		state.Theme = parsed.Theme
		if a.actions.SetTheme != nil {
			a.actions.SetTheme(parsed.Theme)
		}
		resp.Prompt = fmt.Sprintf("Switched theme to %s", parsed.Theme)

	case intent.TagScroll:
		if a.actions.Scroll != nil {
			a.actions.Scroll()
		}

	case intent.TagCategory:
		resp.Prompt = fmt.Sprintf("Showing category: %s", parsed.Category)
		resp.Results = rank.Filter(a.items, intent.Slots{Category: parsed.Category})

	case intent.TagShowCart:
		if a.actions.ShowCart != nil {
			a.actions.ShowCart()
		}
		resp.Prompt = "Opening cart"

	case intent.TagClearCart:
		if a.actions.ClearCart != nil {
			a.actions.ClearCart()
		}
		resp.Prompt = "Cart cleared"

	case intent.TagRemoveLast:
		if a.actions.RemoveLast != nil {
			a.actions.RemoveLast()
		}
		resp.Prompt = "Removed last item from cart"

	case intent.TagIncrease:
		resp.Prompt = "Increased item quantity"

	case intent.TagCheckout:
		if a.actions.Checkout != nil {
			a.actions.Checkout()
		}
		resp.Prompt = "Checkout started"

	case intent.TagOrder:
		a.handleOrder(state, resp, parsed, raw)

	case intent.TagRemove:
		a.handleRemove(state, resp, raw)

	case intent.TagShipping:
		country := ""
		if m := countryRe.FindStringSubmatch(raw); m != nil {
			country = strings.TrimSpace(m[1])
		}
		resp.Prompt = "For international shipping, I recommend airtight + insulated packaging. Proceed?"
		state.SetPending(&session.Pending{Kind: session.PendingPackaging, Country: country})
		resp.AwaitingInput = true

	case intent.TagRepeat:
		resp.Prompt = "Repeating your last order"

	case intent.TagTrack:
		resp.Prompt = "Tracking your order..."

	case intent.TagFavorites:
		if a.actions.Navigate != nil {
			a.actions.Navigate("favorites")
		}
		resp.Prompt = "Opening favourites"

	default: // search, allergy
		a.handleSearch(resp, parsed, raw, lower, origin)
	}
}

// handleSearch is the main pipeline: slot filters, fuzzy match, optional
// geo-ranking for nearby-flavored queries, tone re-rank, cap.
func (a *Assistant) handleSearch(resp *Response, parsed intent.Parsed, raw, lower string, origin *catalog.Coordinate) {
	filtered := rank.Filter(a.items, parsed.Slots)

	start := time.Now()
	found := match.FuzzyFind(raw, filtered)
	metrics.FuzzyQueryDuration.Observe(time.Since(start).Seconds())

	if len(found) == 0 {
		metrics.EmptyResults.Inc()
		resp.Prompt = "I could not find exact matches. Did you mean one of these?"
		limit := a.config.FallbackLimit
		if limit > len(filtered) {
			limit = len(filtered)
		}
		resp.Results = filtered[:limit]
		return
	}

	if origin != nil && nearbyRe.MatchString(lower) {
		reordered := found[:0:0]
		for _, r := range rank.SortByDistance(found, *origin) {
			reordered = append(reordered, r.Item)
		}
		found = reordered
	}

	found = rank.ToneRerank(found, resp.Tone, parsed.Preference)
	if a.config.ResultLimit > 0 && len(found) > a.config.ResultLimit {
		found = found[:a.config.ResultLimit]
	}
	resp.Results = found
	resp.Prompt = "Found matches"
}

func (a *Assistant) handleOrder(state *session.State, resp *Response, parsed intent.Parsed, raw string) {
	if parsed.Quantity == 0 {
		resp.Prompt = "How many plates/quantity would you like?"
		state.SetPending(&session.Pending{Kind: session.PendingQuantity, Raw: raw})
		resp.AwaitingInput = true
		metrics.FollowUpsPending.Inc()
		return
	}

	dish := a.bestMatch(raw)
	if dish == nil {
		resp.Prompt = "Which dish did you mean?"
		state.SetPending(&session.Pending{Kind: session.PendingDish})
		resp.AwaitingInput = true
		metrics.FollowUpsPending.Inc()
		return
	}

	qty := parsed.EffectiveQuantity()
	if a.actions.AddToCart != nil {
		a.actions.AddToCart(*dish, qty)
	}
	resp.Results = []catalog.Item{*dish}
	resp.Prompt = fmt.Sprintf("Added %d × %s to cart", qty, dish.Name)
}

func (a *Assistant) handleRemove(state *session.State, resp *Response, raw string) {
	name := strings.TrimSpace(removeCut.ReplaceAllString(strings.ToLower(raw), ""))
	dish := a.bestMatch(name)
	if dish == nil {
		resp.Prompt = "Which item shall I remove?"
		state.SetPending(&session.Pending{Kind: session.PendingRemoveItem})
		resp.AwaitingInput = true
		metrics.FollowUpsPending.Inc()
		return
	}
	if a.actions.RemoveItem != nil {
		a.actions.RemoveItem(*dish)
	}
	resp.Prompt = fmt.Sprintf("Removed %s from cart", dish.Name)
}

// resume answers a pending follow-up question.
func (a *Assistant) resume(state *session.State, text string) *Response {
	p := state.Pending
	resp := &Response{
		Intent:   intent.TagOrder,
		Tone:     detect.ToneNeutral,
		Language: detect.LangEnglish,
		Emotion:  detect.EmotionNeutral,
	}
	state.AddUserTurn(text)

	switch p.Kind {
	case session.PendingQuantity:
		qty := 1
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && n > 0 {
			qty = n
		} else if n, ok := intent.ExtractQuantity(text); ok {
			qty = n
		}
		dish := a.bestMatch(p.Raw)
		if dish == nil {
			resp.Prompt = "Could not identify the dish to order. Please specify"
			state.SetPending(&session.Pending{Kind: session.PendingDish})
			resp.AwaitingInput = true
			return resp
		}
		if a.actions.AddToCart != nil {
			a.actions.AddToCart(*dish, qty)
		}
		resp.Results = []catalog.Item{*dish}
		resp.Prompt = fmt.Sprintf("Added %d × %s to cart", qty, dish.Name)
		a.settle(state)

	case session.PendingDish:
		dish := a.bestMatch(text)
		if dish == nil {
			resp.Prompt = "Could not identify the dish"
			resp.AwaitingInput = true
			return resp
		}
		if a.actions.AddToCart != nil {
			a.actions.AddToCart(*dish, 1)
		}
		resp.Results = []catalog.Item{*dish}
		resp.Prompt = fmt.Sprintf("Added 1 × %s to cart", dish.Name)
		a.settle(state)

	case session.PendingRemoveItem:
		resp.Intent = intent.TagRemove
		dish := a.bestMatch(text)
		if dish == nil {
			resp.Prompt = "Which item shall I remove?"
			resp.AwaitingInput = true
			return resp
		}
		if a.actions.RemoveItem != nil {
			a.actions.RemoveItem(*dish)
		}
		resp.Prompt = fmt.Sprintf("Removed %s from cart", dish.Name)
		a.settle(state)

	case session.PendingPackaging:
		resp.Intent = intent.TagShipping
		if strings.Contains(strings.ToLower(text), "yes") {
			resp.Prompt = "Insulated packaging added to the order"
		} else {
			resp.Prompt = "Okay, standard packaging it is"
		}
		state.ClearPending()
	}

	if resp.Prompt != "" {
		state.AddAssistantTurn(resp.Prompt)
	}
	return resp
}

func (a *Assistant) settle(state *session.State) {
	state.ClearPending()
	metrics.FollowUpsPending.Dec()
}

// bestMatch returns the top fuzzy hit for text, nil when the matcher has
// nothing to rank.
func (a *Assistant) bestMatch(text string) *catalog.Item {
	found := match.FuzzyFind(text, a.items)
	if len(found) == 0 {
		return nil
	}
	return &found[0]
}

// Nearby lists catalog items within the configured radius of origin,
// nearest-first. This backs the "search nearby restaurants" quick action.
func (a *Assistant) Nearby(origin catalog.Coordinate) []rank.Ranked {
	return rank.Nearby(a.items, origin, a.config.NearbyRadiusKm)
}
