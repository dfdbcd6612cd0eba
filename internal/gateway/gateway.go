// Package gateway talks to the generative language model.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"example.com/interrogation/internal/config"
)

var (
	// ErrModelUnavailable covers every backend failure that is not a timeout.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrModelTimeout is returned when a call outlives its deadline.
	ErrModelTimeout = errors.New("model timeout")
	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("empty model response")
)

// Generator produces free text for a prompt. Zero-valued options leave the
// backend's own defaults in place.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string, opts config.GenerationOptions) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, model, prompt string, opts config.GenerationOptions) (string, error)

func (f GeneratorFunc) GenerateText(ctx context.Context, model, prompt string, opts config.GenerationOptions) (string, error) {
	return f(ctx, model, prompt, opts)
}

// GenerateStructured asks for a JSON reply and decodes it into T. Each attempt
// tries the whole reply, then the span from the first '{' to the last '}'.
// After maxRetries extra attempts it gives up and reports ok=false; that is an
// expected outcome, not an error. Only transport failures are returned as err.
func GenerateStructured[T any](ctx context.Context, g Generator, model, prompt string, maxRetries int) (T, bool, error) {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		text, err := g.GenerateText(ctx, model, prompt, config.GenerationOptions{})
		if err != nil {
			if errors.Is(err, ErrEmptyResponse) {
				continue
			}
			var zero T
			return zero, false, err
		}
		var out T
		if ExtractJSON(text, &out) {
			return out, true, nil
		}
	}
	var zero T
	return zero, false, nil
}

// ExtractJSON decodes text into out, falling back to the outermost brace span.
func ExtractJSON(text string, out any) bool {
	text = strings.TrimSpace(text)
	if json.Unmarshal([]byte(text), out) == nil {
		return true
	}
	start, end := strings.Index(text, "{"), strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), out) == nil
}
