package cards

import (
	"fmt"
	"strings"

	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/scenario"
)

// Card is a single-use modifier a detective may apply to one question.
type Card int

const (
	Pressure Card = iota
	Trap
	Evidence
)

// All lists every card in the order they are presented.
var All = []Card{Pressure, Trap, Evidence}

func (c Card) String() string {
	switch c {
	case Pressure:
		return "pressure"
	case Trap:
		return "trap"
	case Evidence:
		return "evidence"
	default:
		return fmt.Sprintf("card(%d)", int(c))
	}
}

// Name returns the localized card name shown to the player.
func (c Card) Name(lang locale.Language) string {
	if lang == locale.French {
		switch c {
		case Pressure:
			return "pression"
		case Trap:
			return "piege"
		case Evidence:
			return "preuve"
		}
	}
	return c.String()
}

// tokens are accepted in every language.
var tokens = map[string]Card{
	"pressure": Pressure,
	"pression": Pressure,
	"trap":     Trap,
	"piege":    Trap,
	"piège":    Trap,
	"evidence": Evidence,
	"preuve":   Evidence,
}

// Parse detects a "<card>:" prefix. It returns the card and the question text
// after the colon, with its original casing.
func Parse(input string) (Card, string, bool) {
	head, rest, found := strings.Cut(input, ":")
	if !found {
		return 0, input, false
	}
	card, ok := tokens[strings.ToLower(strings.TrimSpace(head))]
	if !ok {
		return 0, input, false
	}
	return card, strings.TrimSpace(rest), true
}

// Apply turns the base question into the question actually put to the suspects.
// Trap and Evidence replace the base question entirely.
func Apply(lang locale.Language, card Card, base string, c scenario.Case) string {
	ev := c.Evidence
	if lang == locale.French {
		switch card {
		case Pressure:
			return base + " (Réponds précisément, sans détour.)"
		case Trap:
			return fmt.Sprintf("Où étais-tu exactement à %s ?", ev.TimeOfCrime)
		case Evidence:
			return fmt.Sprintf("On a retrouvé %s. Explique pourquoi cet indice pourrait te concerner.", ev.PhysicalClue)
		}
		return base
	}
	switch card {
	case Pressure:
		return base + " (Answer precisely, no dodging.)"
	case Trap:
		return fmt.Sprintf("Where exactly were you at %s?", ev.TimeOfCrime)
	case Evidence:
		return fmt.Sprintf("We found %s. Explain why this clue might relate to you.", ev.PhysicalClue)
	}
	return base
}

// Hand tracks which cards are still available. Each card starts at 1 and can
// only ever drop to 0.
type Hand struct {
	available map[Card]int
}

// NewHand returns a hand holding one of each card.
func NewHand() *Hand {
	h := &Hand{available: make(map[Card]int, len(All))}
	for _, c := range All {
		h.available[c] = 1
	}
	return h
}

// Available reports the remaining count of the card (0 or 1).
func (h *Hand) Available(c Card) int {
	return h.available[c]
}

// Use consumes the card and reports whether it was still available.
func (h *Hand) Use(c Card) bool {
	if h.available[c] == 0 {
		return false
	}
	h.available[c] = 0
	return true
}

// Snapshot copies the counts, keyed by card name.
func (h *Hand) Snapshot() map[string]int {
	out := make(map[string]int, len(h.available))
	for c, n := range h.available {
		out[c.String()] = n
	}
	return out
}
