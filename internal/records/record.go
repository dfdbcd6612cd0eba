package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"example.com/interrogation/internal/config"
	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/scenario"
)

var ErrInvalidRecord = errors.New("invalid record")

// Mode is the role the human played.
type Mode string

const (
	ModeDetective Mode = "detective"
	ModeSuspect   Mode = "suspect"
)

// Record is the write-once summary of a finished game.
type Record struct {
	ID         string            `json:"id"`
	Mode       Mode              `json:"mode"`
	Timestamp  time.Time         `json:"timestamp"`
	Lang       locale.Language   `json:"lang"`
	Difficulty config.Difficulty `json:"difficulty"`
	Context    string            `json:"context"`
	Case       scenario.Case     `json:"case"`
	Questions  int               `json:"questions"`
	History    string            `json:"history"`

	// Success is true when the human won: a correct accusation in detective
	// mode, a fooled detective in suspect mode.
	Success bool `json:"success"`

	Culprit     string `json:"culprit,omitempty"`
	PlayerGuess string `json:"player_guess,omitempty"`

	IsCriminal            *bool  `json:"is_criminal,omitempty"`
	AIVerdict             string `json:"ai_verdict,omitempty"`
	AICorrect             *bool  `json:"ai_correct,omitempty"`
	PlayerFooledDetective *bool  `json:"player_fooled_detective,omitempty"`
}

// Validate checks the fields every store relies on.
func (r Record) Validate() error {
	if len(r.ID) < 8 {
		return fmt.Errorf("%w: id %q", ErrInvalidRecord, r.ID)
	}
	switch r.Mode {
	case ModeDetective, ModeSuspect:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidRecord, r.Mode)
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidRecord)
	}
	return nil
}

// Store persists finished games. Save is called once per game and never
// overwrites an existing record.
type Store interface {
	Save(ctx context.Context, r Record) (string, error)
	List(ctx context.Context) ([]Record, error)
	Close() error
}

// Open builds the store selected by the configuration.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.RecordStore {
	case config.StoreFile:
		return NewFileStore(cfg.RecordsDir), nil
	case config.StoreSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, cfg.RecordStore)
	}
}
