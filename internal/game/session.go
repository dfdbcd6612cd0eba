package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"example.com/interrogation/internal/cards"
	"example.com/interrogation/internal/config"
	"example.com/interrogation/internal/events"
	"example.com/interrogation/internal/gateway"
	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/player"
	"example.com/interrogation/internal/records"
	"example.com/interrogation/internal/scenario"
	"github.com/sirupsen/logrus"
)

// Engine is what a shell drives: one call to show the first prompt, one call
// per line of player input. Calls must not overlap.
type Engine interface {
	StartGame() string
	ProcessTurn(ctx context.Context, text string) string
}

type handler func(ctx context.Context, input string) (string, error)

// errRecovered marks a panic caught off the ProcessTurn goroutine.
var errRecovered = errors.New("recovered from panic")

// state is everything that belongs to one game. A new game replaces it whole.
type state struct {
	id    string
	phase Phase

	lang       locale.Language
	text       locale.Text
	difficulty config.Difficulty
	opts       config.GenerationOptions
	briefing   string
	c          *scenario.Case

	questions int
	history   Transcript

	// detective mode
	hand     *cards.Hand
	suspects []*player.Suspect

	// suspect mode
	playerGuilty bool
	interrogator *player.Detective
}

func newState() *state {
	return &state{phase: ChoosingLanguage, lang: locale.English, text: locale.For(locale.English)}
}

// Session is the interrogation state machine. It advances only when
// ProcessTurn is called and is not safe for concurrent use.
type Session struct {
	gen       gateway.Generator
	store     records.Store
	events    *events.Manager
	log       logrus.FieldLogger
	scenarios *scenario.Generator
	model     string
	retries   int
	now       func() time.Time
	newID     func() string

	handlers map[Phase]handler
	st       *state
}

var _ Engine = (*Session)(nil)

// StartGame discards any game in progress and asks for the language.
func (s *Session) StartGame() string {
	s.st = newState()
	return locale.ChooseLanguage
}

// ProcessTurn feeds one line of player input to the current phase and returns
// the message to show. Failures come back as localized messages; a failed
// model call leaves the game exactly as it was, so the same input can be retried.
func (s *Session) ProcessTurn(ctx context.Context, input string) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("phase", s.st.phase).Errorf("recovered from panic: %v", r)
			msg = s.st.text.InternalError
		}
	}()

	h, ok := s.handlers[s.st.phase]
	if !ok {
		return s.st.text.InternalError
	}
	msg, err := h(ctx, input)
	if errors.Is(err, errRecovered) {
		s.log.WithError(err).WithField("phase", s.st.phase).Error("turn failed")
		return s.st.text.InternalError
	}
	if err != nil {
		s.log.WithError(err).WithField("phase", s.st.phase).Error("turn failed")
		return fmt.Sprintf(s.st.text.ModelErrorFmt, err)
	}
	return msg
}

// Phase reports the current state.
func (s *Session) Phase() Phase { return s.st.phase }

// QuestionsAsked reports the question count of the current game.
func (s *Session) QuestionsAsked() int { return s.st.questions }

// History returns the dialogue transcript of the current game.
func (s *Session) History() string { return s.st.history.String() }

// CardsAvailable reports the remaining count of a card, 0 outside detective mode.
func (s *Session) CardsAvailable(c cards.Card) int {
	if s.st.hand == nil {
		return 0
	}
	return s.st.hand.Available(c)
}

// Case returns the case of the current game, if one was generated.
func (s *Session) Case() (scenario.Case, bool) {
	if s.st.c == nil {
		return scenario.Case{}, false
	}
	return *s.st.c, true
}

func (s *Session) gameLog() logrus.FieldLogger {
	id := s.st.id
	if id == "" {
		return s.log
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return s.log.WithField("game", id)
}

func (s *Session) transition(to Phase) {
	s.gameLog().WithFields(logrus.Fields{"from": s.st.phase, "to": to}).Debug("phase change")
	s.st.phase = to
}

func (s *Session) handleLanguage(_ context.Context, input string) (string, error) {
	lang, ok := locale.ParseLanguage(input)
	if !ok {
		return locale.InvalidLanguage, nil
	}
	st := newState()
	st.id = s.newID()
	st.lang = lang
	st.text = locale.For(lang)
	s.st = st
	s.gameLog().WithField("lang", lang).Info("new game")
	s.transition(ChoosingDifficulty)
	return st.text.ChooseDifficulty, nil
}

func (s *Session) handleDifficulty(_ context.Context, input string) (string, error) {
	d, ok := config.ParseDifficulty(input)
	if !ok {
		return s.st.text.InvalidDifficulty, nil
	}
	s.st.difficulty = d
	s.st.opts = config.Options(d)
	s.st.briefing = s.scenarios.Briefing(s.st.lang)
	c := s.scenarios.Generate(s.st.lang)
	s.st.c = &c
	s.gameLog().WithFields(logrus.Fields{"difficulty": d, "guilty": c.GuiltyParty}).Debug("case generated")
	s.events.Publish(events.CaseGeneratedEvent{Briefing: s.st.briefing, Case: c})

	s.transition(ChoosingRole)
	t := s.st.text
	return fmt.Sprintf("%s\n📖 %s\n%s", t.Welcome, s.st.briefing, t.ChooseRole), nil
}

func (s *Session) handleRole(_ context.Context, input string) (string, error) {
	seat := player.Seat{Gen: s.gen, Model: s.model, Options: s.st.opts, Lang: s.st.lang}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "detective", "détective":
		s.st.hand = cards.NewHand()
		s.st.suspects = make([]*player.Suspect, 0, len(scenario.Parties))
		for _, p := range scenario.Parties {
			s.st.suspects = append(s.st.suspects, player.NewSuspect(seat, p, *s.st.c))
		}
		s.transition(DetectiveAwaitingQuestion)
		return s.st.text.DetectiveIntro, nil
	case "suspect":
		s.st.interrogator = player.NewDetective(seat, s.st.briefing)
		s.transition(SuspectChoosingAlignment)
		return s.st.text.ChooseAlignment, nil
	default:
		return s.st.text.InvalidRole, nil
	}
}
