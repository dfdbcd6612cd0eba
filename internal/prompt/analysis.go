package prompt

import (
	"math"

	"example.com/interrogation/internal/scenario"
)

// PartyAssessment is one suspect's entry in an analysis reply. Motives and
// Motifs are the English and French spellings of the same list.
type PartyAssessment struct {
	Score   *float64 `json:"score"`
	Motives []string `json:"motives,omitempty"`
	Motifs  []string `json:"motifs,omitempty"`
}

// Reasons returns the rationale list whichever language it came in.
func (a *PartyAssessment) Reasons() []string {
	if a == nil {
		return nil
	}
	return append(append([]string{}, a.Motives...), a.Motifs...)
}

// Analysis is the structured reply to SuspicionAnalysis.
type Analysis struct {
	Suspect1        *PartyAssessment `json:"suspect1"`
	Suspect2        *PartyAssessment `json:"suspect2"`
	Inconsistencies []string         `json:"inconsistencies,omitempty"`
	Incoherences    []string         `json:"incoherences,omitempty"`
}

// For returns the entry of the party.
func (a Analysis) For(p scenario.Party) *PartyAssessment {
	if p == scenario.PartyA {
		return a.Suspect1
	}
	return a.Suspect2
}

// Score returns the party's score rounded and clamped to 0..100. ok is false
// when the model left the score out.
func (a Analysis) Score(p scenario.Party) (int, bool) {
	entry := a.For(p)
	if entry == nil || entry.Score == nil {
		return 0, false
	}
	s := int(math.Round(*entry.Score))
	return min(max(s, 0), 100), true
}

// Scores returns both scores, or ok=false if either is missing.
func (a Analysis) Scores() (s1, s2 int, ok bool) {
	s1, ok1 := a.Score(scenario.PartyA)
	s2, ok2 := a.Score(scenario.PartyB)
	return s1, s2, ok1 && ok2
}

// Suggestion names the more suspicious party. Ties go to PartyA.
func Suggestion(s1, s2 int) scenario.Party {
	if s1 >= s2 {
		return scenario.PartyA
	}
	return scenario.PartyB
}

// Contradictions returns the inconsistency list whichever language it came in.
func (a Analysis) Contradictions() []string {
	return append(append([]string{}, a.Inconsistencies...), a.Incoherences...)
}
