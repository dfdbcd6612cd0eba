package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"example.com/interrogation/internal/config"
	"github.com/sirupsen/logrus"
)

// Guarded bounds every call with a timeout and maps backend failures onto
// ErrModelTimeout / ErrModelUnavailable.
type Guarded struct {
	next    Generator
	timeout time.Duration
	log     logrus.FieldLogger
}

// Guard wraps next. A zero timeout leaves calls unbounded.
func Guard(next Generator, timeout time.Duration, log logrus.FieldLogger) *Guarded {
	return &Guarded{next: next, timeout: timeout, log: log.WithField("component", "gateway")}
}

func (g *Guarded) GenerateText(ctx context.Context, model, prompt string, opts config.GenerationOptions) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.next.GenerateText(ctx, model, prompt, opts)
	fields := logrus.Fields{
		"model":        model,
		"prompt_bytes": len(prompt),
		"duration":     time.Since(start).Round(time.Millisecond),
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			g.log.WithFields(fields).WithError(err).Warn("model call timed out")
			return "", fmt.Errorf("%w: %w", ErrModelTimeout, err)
		}
		g.log.WithFields(fields).WithError(err).Warn("model call failed")
		return "", fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	if text == "" {
		g.log.WithFields(fields).Warn("model returned no text")
		return "", ErrEmptyResponse
	}
	g.log.WithFields(fields).WithField("reply_bytes", len(text)).Debug("model call done")
	return text, nil
}
