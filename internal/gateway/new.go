package gateway

import (
	"context"
	"fmt"

	"example.com/interrogation/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the configured backend wrapped in Guard.
func New(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (Generator, error) {
	var (
		backend Generator
		err     error
	)
	switch cfg.Backend {
	case config.BackendOllama:
		backend, err = NewOllama(cfg.OllamaHost, nil)
	case config.BackendOpenAI:
		backend = NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	case config.BackendGemini:
		backend, err = NewGemini(ctx, cfg.GeminiAPIKey)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"backend": cfg.Backend, "model": cfg.Model}).Info("model gateway ready")
	return Guard(backend, cfg.ModelTimeout, log), nil
}
