package prompt

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/scenario"
	"github.com/stretchr/testify/require"
)

func newCase(lang locale.Language, guilty scenario.Party) scenario.Case {
	return scenario.NewGenerator(rand.New(rand.NewSource(1)), scenario.FixedChooser{Party: guilty}).Generate(lang)
}

func TestSuspectAnswer(t *testing.T) {
	c := newCase(locale.English, scenario.PartyA)
	history := "\nQ: Hello?\nS1: Hi.\nS2: Hello."

	t.Run("guilty header hides the facts and asks for plausible lies", func(t *testing.T) {
		p := SuspectAnswer(locale.English, scenario.PartyA, c, history, "Where were you?")
		require.True(t, strings.HasPrefix(p, "You are suspect1, the GUILTY suspect."))
		require.Contains(t, p, "do not reveal them literally")
		require.Contains(t, p, "avoid contradictions")
		require.NotContains(t, p, c.Alibi(scenario.PartyA))
	})

	t.Run("innocent header states the real alibi", func(t *testing.T) {
		p := SuspectAnswer(locale.English, scenario.PartyB, c, history, "Where were you?")
		require.True(t, strings.HasPrefix(p, "You are suspect2, an INNOCENT suspect. Always tell the truth."))
		require.Contains(t, p, "Your real alibi: At the library from 20:30 to 22:00.")
	})

	t.Run("history, question and closing instruction follow the header", func(t *testing.T) {
		p := SuspectAnswer(locale.English, scenario.PartyB, c, history, "Where were you?")
		require.True(t, strings.HasSuffix(p, "Conversation:\n"+history+"\n\nDetective: Where were you?\nReply in concise English."))
	})

	t.Run("french prompts close in french", func(t *testing.T) {
		fr := newCase(locale.French, scenario.PartyB)
		p := SuspectAnswer(locale.French, scenario.PartyB, fr, "", "Où étiez-vous ?")
		require.Contains(t, p, "suspect COUPABLE")
		require.True(t, strings.HasSuffix(p, "Réponds en français, de façon naturelle et concise."))
	})
}

func TestSuspicionAnalysis(t *testing.T) {
	en := SuspicionAnalysis(locale.English, "Q: a\nS1: b\nS2: c")
	require.Contains(t, en, `"motives"`)
	require.Contains(t, en, `"inconsistencies"`)
	require.True(t, strings.HasSuffix(en, "Reply ONLY in JSON."))

	fr := SuspicionAnalysis(locale.French, "Q: a")
	require.Contains(t, fr, `"motifs"`)
	require.Contains(t, fr, `"incoherences"`)
	require.True(t, strings.HasSuffix(fr, "Réponds UNIQUEMENT en JSON."))
}

func TestDetectiveQuestion(t *testing.T) {
	require.Equal(t, "A theft.\nDetective: Ask a question to the suspect.",
		DetectiveQuestion(locale.English, "A theft.", ""))
	require.Equal(t, "Un vol.\nDialogue:\nQ: x\nS1: y\nDetective: Pose une autre question au suspect.",
		DetectiveQuestion(locale.French, "Un vol.", "Q: x\nS1: y"))
}

func TestAnalysis(t *testing.T) {
	t.Run("english and french replies decode to the same scores", func(t *testing.T) {
		for _, raw := range []string{
			`{"suspect1":{"score":72,"motives":["ink"]},"suspect2":{"score":30,"motives":[]},"inconsistencies":["time"]}`,
			`{"suspect1":{"score":72.2,"motifs":["encre"]},"suspect2":{"score":30,"motifs":[]},"incoherences":["heure"]}`,
		} {
			var a Analysis
			require.NoError(t, json.Unmarshal([]byte(raw), &a))
			s1, s2, ok := a.Scores()
			require.True(t, ok)
			require.Equal(t, 72, s1)
			require.Equal(t, 30, s2)
			require.Len(t, a.For(scenario.PartyA).Reasons(), 1)
			require.Len(t, a.Contradictions(), 1)
		}
	})

	t.Run("missing score is reported", func(t *testing.T) {
		var a Analysis
		require.NoError(t, json.Unmarshal([]byte(`{"suspect1":{"score":10}}`), &a))
		_, _, ok := a.Scores()
		require.False(t, ok)
	})

	t.Run("scores are clamped", func(t *testing.T) {
		var a Analysis
		require.NoError(t, json.Unmarshal([]byte(`{"suspect1":{"score":140},"suspect2":{"score":-3}}`), &a))
		s1, s2, _ := a.Scores()
		require.Equal(t, 100, s1)
		require.Equal(t, 0, s2)
	})

	t.Run("ties suggest suspect1", func(t *testing.T) {
		require.Equal(t, scenario.PartyA, Suggestion(50, 50))
		require.Equal(t, scenario.PartyB, Suggestion(49, 50))
	})
}
