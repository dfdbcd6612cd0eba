package events

import (
	"example.com/interrogation/internal/cards"
	"example.com/interrogation/internal/scenario"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// CaseGeneratedEvent is published once difficulty is chosen and the case exists.
type CaseGeneratedEvent struct {
	Briefing string
	Case     scenario.Case
}

// CardPlayedEvent is published when a card is consumed by a successful turn.
type CardPlayedEvent struct {
	Card     cards.Card
	Question string
}

// QuestionAnsweredEvent carries one detective turn.
type QuestionAnsweredEvent struct {
	Number   int
	Question string
	Answers  map[scenario.Party]string
}

// AnalysisEvent carries the suspicion scores of a detective turn.
type AnalysisEvent struct {
	Scores         map[scenario.Party]int
	Reasons        map[scenario.Party][]string
	Contradictions []string
	Suggestion     scenario.Party
}

// VerdictEvent is published at the end of a game, after the record was handed
// to the store. Location is empty and Err set when saving failed.
type VerdictEvent struct {
	Mode     string
	Verdict  string
	Truth    string
	Success  bool
	Location string
	Err      error
}
