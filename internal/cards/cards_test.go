package cards

import (
	"math/rand"
	"testing"

	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/scenario"
	"github.com/stretchr/testify/require"
)

func testCase(lang locale.Language) scenario.Case {
	gen := scenario.NewGenerator(rand.New(rand.NewSource(1)), scenario.FixedChooser{Party: scenario.PartyA})
	return gen.Generate(lang)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantCard Card
		wantRest string
		wantOK   bool
	}{
		{"evidence: where were you?", Evidence, "where were you?", true},
		{"PRESSURE:Why the ink?", Pressure, "Why the ink?", true},
		{"piège: Où étais-tu ?", Trap, "Où étais-tu ?", true},
		{"preuve:  Et ce gant ?", Evidence, "Et ce gant ?", true},
		{"Where were you at 21:15?", 0, "Where were you at 21:15?", false},
		{"no card here", 0, "no card here", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, rest, ok := Parse(tt.input)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantRest, rest)
			if ok {
				require.Equal(t, tt.wantCard, card)
			}
		})
	}
}

func TestApply(t *testing.T) {
	en := testCase(locale.English)
	fr := testCase(locale.French)

	t.Run("pressure keeps the question and demands precision", func(t *testing.T) {
		got := Apply(locale.English, Pressure, "Where were you?", en)
		require.Equal(t, "Where were you? (Answer precisely, no dodging.)", got)
	})

	t.Run("trap substitutes a question about the time of the crime", func(t *testing.T) {
		got := Apply(locale.French, Trap, "ignored", fr)
		require.Equal(t, "Où étais-tu exactement à 21:15 ?", got)
	})

	t.Run("evidence embeds the physical clue verbatim", func(t *testing.T) {
		got := Apply(locale.English, Evidence, "where were you?", en)
		require.Contains(t, got, en.Evidence.PhysicalClue)
		require.NotContains(t, got, "where were you?")
	})
}

func TestHand(t *testing.T) {
	// GIVEN a fresh hand
	h := NewHand()
	for _, c := range All {
		require.Equal(t, 1, h.Available(c))
	}

	// WHEN a card is used twice
	first := h.Use(Trap)
	second := h.Use(Trap)

	// THEN only the first use succeeds and the others stay available
	require.True(t, first)
	require.False(t, second)
	require.Equal(t, 0, h.Available(Trap))
	require.Equal(t, map[string]int{"pressure": 1, "trap": 0, "evidence": 1}, h.Snapshot())
}

func TestNames(t *testing.T) {
	require.Equal(t, "piege", Trap.Name(locale.French))
	require.Equal(t, "evidence", Evidence.Name(locale.English))
	require.Equal(t, "card(5)", Card(5).String())
	require.Equal(t, "card(5)", Card(5).Name(locale.French))
}
