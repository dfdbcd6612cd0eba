package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"example.com/interrogation/internal/config"
	"github.com/ollama/ollama/api"
)

// Ollama generates text with a local ollama server.
type Ollama struct {
	client *api.Client
}

// NewOllama connects to the ollama server at host, e.g. http://localhost:11434.
func NewOllama(host string, httpClient *http.Client) (*Ollama, error) {
	host = strings.TrimSuffix(strings.TrimSuffix(host, "/"), "/v1")
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host %q: %w", host, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Ollama{client: api.NewClient(base, httpClient)}, nil
}

func (o *Ollama) GenerateText(ctx context.Context, model, prompt string, opts config.GenerationOptions) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:   model,
		Prompt:  prompt,
		Stream:  &stream,
		Options: ollamaOptions(opts),
	}
	var sb strings.Builder
	err := o.client.Generate(ctx, req, func(r api.GenerateResponse) error {
		sb.WriteString(r.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return strings.TrimSpace(sb.String()), nil
}

func ollamaOptions(opts config.GenerationOptions) map[string]any {
	options := map[string]any{}
	if opts.Temperature > 0 {
		options["temperature"] = opts.Temperature
	}
	if opts.MaxOutputTokens > 0 {
		options["num_predict"] = opts.MaxOutputTokens
	}
	return options
}
