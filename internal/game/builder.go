package game

import (
	"errors"
	"math/rand"
	"time"

	"example.com/interrogation/internal/events"
	"example.com/interrogation/internal/gateway"
	"example.com/interrogation/internal/records"
	"example.com/interrogation/internal/scenario"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultModel is used when the builder is not given one.
const DefaultModel = "gemma3:latest"

// Builder provides a step-by-step API for constructing a Session.
type Builder struct {
	gen          gateway.Generator
	store        records.Store
	log          *logrus.Logger
	rand         *rand.Rand
	chooser      scenario.Chooser
	eventManager *events.Manager
	model        string
	retries      int
	now          func() time.Time
	newID        func() string
}

// NewBuilder creates a new Builder with its required dependencies.
func NewBuilder(gen gateway.Generator, store records.Store, logger *logrus.Logger, rand *rand.Rand) *Builder {
	return &Builder{
		gen:          gen,
		store:        store,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
		model:        DefaultModel,
		retries:      2,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// EventManager is a public getter for the unexported field.
func (b *Builder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *Builder) WithModel(model string) *Builder {
	b.model = model
	return b
}

// WithAnalysisRetries sets how many extra attempts structured generation gets.
func (b *Builder) WithAnalysisRetries(n int) *Builder {
	b.retries = n
	return b
}

// WithChooser fixes how the guilty party is picked, e.g. for tests.
func (b *Builder) WithChooser(c scenario.Chooser) *Builder {
	b.chooser = c
	return b
}

func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build constructs the Session after all options have been configured. The
// session starts in ChoosingLanguage.
func (b *Builder) Build() (*Session, error) {
	if b.gen == nil {
		return nil, errors.New("a model generator is required")
	}
	if b.store == nil {
		return nil, errors.New("a record store is required")
	}
	if b.model == "" {
		return nil, errors.New("a model name is required")
	}
	if b.rand == nil {
		b.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.retries < 0 {
		b.retries = 0
	}

	s := &Session{
		gen:       b.gen,
		store:     b.store,
		events:    b.eventManager,
		log:       b.log.WithField("component", "session"),
		scenarios: scenario.NewGenerator(b.rand, b.chooser),
		model:     b.model,
		retries:   b.retries,
		now:       b.now,
		newID:     b.newID,
	}
	s.handlers = map[Phase]handler{
		ChoosingLanguage:            s.handleLanguage,
		ChoosingDifficulty:          s.handleDifficulty,
		ChoosingRole:                s.handleRole,
		DetectiveAwaitingQuestion:   s.handleDetectiveQuestion,
		DetectiveForcedToAccuse:     s.handleForcedAccusation,
		SuspectChoosingAlignment:    s.handleAlignment,
		SuspectAwaitingPlayerAnswer: s.handlePlayerAnswer,
	}
	s.st = newState()
	return s, nil
}
