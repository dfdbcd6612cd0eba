package gateway

import (
	"context"
	"fmt"
	"strings"

	"example.com/interrogation/internal/config"
	"github.com/sashabaranov/go-openai"
)

// OpenAI generates text with an OpenAI-compatible chat completion endpoint.
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI creates a client. An empty baseURL keeps the official endpoint.
func NewOpenAI(apiKey, baseURL string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg)}
}

func (o *OpenAI) GenerateText(ctx context.Context, model, prompt string, opts config.GenerationOptions) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
