package player

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"example.com/interrogation/internal/config"
	"example.com/interrogation/internal/gateway"
	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/scenario"
	"github.com/stretchr/testify/require"
)

type call struct {
	model  string
	prompt string
	opts   config.GenerationOptions
}

func recorder(reply string, calls *[]call) gateway.Generator {
	return gateway.GeneratorFunc(func(_ context.Context, model, prompt string, opts config.GenerationOptions) (string, error) {
		*calls = append(*calls, call{model, prompt, opts})
		return reply, nil
	})
}

func TestSuspect(t *testing.T) {
	// GIVEN a case where suspect1 is guilty and a seat on hard difficulty
	var calls []call
	seat := Seat{Gen: recorder("I was home.", &calls), Model: "gemma3:latest", Options: config.Options(config.Hard), Lang: locale.English}
	c := scenario.NewGenerator(rand.New(rand.NewSource(1)), scenario.FixedChooser{Party: scenario.PartyA}).Generate(locale.English)
	guilty := NewSuspect(seat, scenario.PartyA, c)
	innocent := NewSuspect(seat, scenario.PartyB, c)

	// WHEN both answer the same question
	a1, err := guilty.Answer(context.Background(), "", "Where were you?")
	require.NoError(t, err)
	_, err = innocent.Answer(context.Background(), "", "Where were you?")
	require.NoError(t, err)

	// THEN each prompt carries its own role and the seat's options
	require.Equal(t, "I was home.", a1)
	require.Equal(t, scenario.Guilty, guilty.Role())
	require.Len(t, calls, 2)
	require.Contains(t, calls[0].prompt, "GUILTY")
	require.Contains(t, calls[1].prompt, "INNOCENT")
	require.Equal(t, config.GenerationOptions{Temperature: 0.4, MaxOutputTokens: 160}, calls[0].opts)
	require.Equal(t, "gemma3:latest", calls[1].model)
}

func TestDetective(t *testing.T) {
	var calls []call
	seat := Seat{Gen: recorder("Where were you at 21:15?", &calls), Model: "m", Lang: locale.French}
	d := NewDetective(seat, "Un vol.")

	q, err := d.Ask(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Where were you at 21:15?", q)
	require.True(t, strings.HasSuffix(calls[0].prompt, "Pose une question au suspect."))

	_, err = d.Ask(context.Background(), "\nQ: x\nS1: y")
	require.NoError(t, err)
	require.Contains(t, calls[1].prompt, "Dialogue:")
}
