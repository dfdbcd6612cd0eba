package game

import (
	"context"
	"fmt"
	"strings"

	"example.com/interrogation/internal/gateway"
	"example.com/interrogation/internal/prompt"
	"example.com/interrogation/internal/scenario"
	"github.com/sirupsen/logrus"
)

// parseAlignment treats anything that is not clearly guilty as innocent.
func parseAlignment(input string) bool {
	t := strings.ToLower(input)
	return strings.Contains(t, "guilt") || strings.Contains(t, "coup")
}

func (s *Session) handleAlignment(ctx context.Context, input string) (string, error) {
	st := s.st
	guilty := parseAlignment(input)

	q, err := st.interrogator.Ask(ctx, "")
	if err != nil {
		return "", err
	}
	q = strings.TrimSpace(q)

	st.playerGuilty = guilty
	st.questions = 1
	st.history.Append("\nQ: " + q)
	s.gameLog().WithField("guilty", guilty).Info("player is the suspect")
	s.transition(SuspectAwaitingPlayerAnswer)
	return fmt.Sprintf(st.text.DetectiveAsksFmt, q), nil
}

func (s *Session) handlePlayerAnswer(ctx context.Context, input string) (string, error) {
	st := s.st
	answer := strings.TrimSpace(input)
	if answer == "" {
		return st.text.TypeAnswer, nil
	}
	// The human sits in the suspect1 seat of the analysis schema.
	pending := st.history.String() + "\nS1: " + answer

	if st.questions >= SuspectVerdictAfter {
		guilty, err := s.suspectVerdict(ctx, pending)
		if err != nil {
			return "", err
		}
		st.history.Append("\nS1: " + answer)
		return s.finalizeSuspect(ctx, guilty), nil
	}

	q, err := st.interrogator.Ask(ctx, pending)
	if err != nil {
		return "", err
	}
	q = strings.TrimSpace(q)
	st.history.Append("\nS1: " + answer + "\nQ: " + q)
	st.questions++
	return fmt.Sprintf(st.text.DetectiveAsksFmt, q), nil
}

// suspectVerdict decides whether the AI detective finds the player guilty.
// An analysis that cannot be parsed counts as guilty, a parsed one without a
// score counts as defaultScore.
func (s *Session) suspectVerdict(ctx context.Context, history string) (bool, error) {
	st := s.st
	log := s.gameLog().WithField("question", st.questions)
	// Only reachable if SuspectVerdictAfter is raised to MaxQuestions or above.
	if st.questions >= MaxQuestions {
		return true, nil
	}

	p := prompt.SuspicionAnalysis(st.lang, st.briefing+"\n"+history)
	a, ok, err := gateway.GenerateStructured[prompt.Analysis](ctx, s.gen, s.model, p, s.retries)
	if err != nil {
		return false, err
	}
	if !ok {
		log.Warn("analysis absent, detective assumes guilt")
		return true, nil
	}
	score, ok := a.Score(scenario.PartyA)
	if !ok {
		score = defaultScore
	}
	log.WithFields(logrus.Fields{"score": score}).Debug("suspect analysis")
	return score > GuiltyAbove, nil
}
