package player

import (
	"context"

	"example.com/interrogation/internal/config"
	"example.com/interrogation/internal/gateway"
	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/prompt"
	"example.com/interrogation/internal/scenario"
)

// Interrogated is anything the detective can question.
type Interrogated interface {
	Party() scenario.Party
	Answer(ctx context.Context, history, question string) (string, error)
}

// Seat bundles what every AI participant needs to reach the model.
type Seat struct {
	Gen     gateway.Generator
	Model   string
	Options config.GenerationOptions
	Lang    locale.Language
}

// Suspect is a model-played suspect. Its role comes from the case.
type Suspect struct {
	seat  Seat
	party scenario.Party
	c     scenario.Case
}

func NewSuspect(seat Seat, party scenario.Party, c scenario.Case) *Suspect {
	return &Suspect{seat: seat, party: party, c: c}
}

func (s *Suspect) Party() scenario.Party { return s.party }
func (s *Suspect) Role() scenario.Role   { return s.c.RoleOf(s.party) }

// Answer replies to the question in character.
func (s *Suspect) Answer(ctx context.Context, history, question string) (string, error) {
	p := prompt.SuspectAnswer(s.seat.Lang, s.party, s.c, history, question)
	return s.seat.Gen.GenerateText(ctx, s.seat.Model, p, s.seat.Options)
}

// Detective is the model-played interrogator of suspect mode.
type Detective struct {
	seat     Seat
	briefing string
}

func NewDetective(seat Seat, briefing string) *Detective {
	return &Detective{seat: seat, briefing: briefing}
}

// Ask produces the next question given the dialogue so far.
func (d *Detective) Ask(ctx context.Context, history string) (string, error) {
	p := prompt.DetectiveQuestion(d.seat.Lang, d.briefing, history)
	return d.seat.Gen.GenerateText(ctx, d.seat.Model, p, d.seat.Options)
}
