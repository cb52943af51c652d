// Package session holds the caller-owned conversation state the engine
// reads and writes through explicit parameters. Nothing here is shared
// between sessions; one State belongs to one caller.
package session

import (
	"github.com/google/uuid"

	"yummport-voice/internal/catalog"
)

// History is a bounded, de-duplicating, most-recent-first list. Adding an
// entry drops any existing equal entry before prepending, then truncates to
// the capacity.
type History struct {
	limit   int
	entries []string
}

func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	kept := make([]string, 0, len(h.entries)+1)
	kept = append(kept, entry)
	for _, e := range h.entries {
		if e != entry {
			kept = append(kept, e)
		}
	}
	if len(kept) > h.limit {
		kept = kept[:h.limit]
	}
	h.entries = kept
}

// Entries returns the list newest-first. The returned slice is a copy.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }

// PendingKind names what follow-up answer the assistant is waiting for.
type PendingKind string

const (
	PendingQuantity   PendingKind = "order_quantity"
	PendingDish       PendingKind = "order_dish"
	PendingRemoveItem PendingKind = "remove_item"
	PendingCorrection PendingKind = "correction"
	PendingPackaging  PendingKind = "packaging"
	PendingWake       PendingKind = "wake"
)

// Pending is the follow-up context carried between turns.
type Pending struct {
	Kind        PendingKind
	Raw         string
	Suggestions []catalog.Item
	Country     string
}

// Turn is one line of the conversation transcript.
type Turn struct {
	From string // "user" or "assistant"
	Text string
}

// State is the per-conversation context: identifiers, bounded histories,
// transcript and any pending follow-up.
type State struct {
	ID       string
	Searches *History
	Commands *History

	Transcript []Turn
	Pending    *Pending
	Theme      string
}

// New creates a State with the given history capacities.
func New(searchCap, commandCap int) *State {
	return &State{
		ID:       uuid.NewString(),
		Searches: NewHistory(searchCap),
		Commands: NewHistory(commandCap),
		Theme:    "light",
	}
}

func (s *State) AddUserTurn(text string) {
	s.Transcript = append(s.Transcript, Turn{From: "user", Text: text})
}

func (s *State) AddAssistantTurn(text string) {
	s.Transcript = append(s.Transcript, Turn{From: "assistant", Text: text})
}

func (s *State) SetPending(p *Pending) { s.Pending = p }

func (s *State) ClearPending() { s.Pending = nil }
