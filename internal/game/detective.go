package game

import (
	"context"
	"fmt"
	"strings"

	"example.com/interrogation/internal/cards"
	"example.com/interrogation/internal/events"
	"example.com/interrogation/internal/gateway"
	"example.com/interrogation/internal/prompt"
	"example.com/interrogation/internal/scenario"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// parseAccusation recognizes "accuse <party>". isCommand is true for a bare
// accuse keyword or one followed by something shaped like a party name, so a
// mistyped accusation can be corrected; "accuse me?" stays a question.
func parseAccusation(input string) (party scenario.Party, isCommand, valid bool) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 || len(fields) > 2 {
		return 0, false, false
	}
	if fields[0] != "accuse" && fields[0] != "accuser" {
		return 0, false, false
	}
	if len(fields) == 1 {
		return 0, true, false
	}
	if !looksLikeParty(fields[1]) {
		return 0, false, false
	}
	party, valid = scenario.ParseParty(fields[1])
	return party, true, valid
}

func looksLikeParty(word string) bool {
	return strings.HasPrefix(word, "suspect") ||
		strings.HasPrefix(word, "party") ||
		(len(word) == 2 && word[0] == 's' && word[1] >= '0' && word[1] <= '9')
}

func (s *Session) handleDetectiveQuestion(ctx context.Context, input string) (string, error) {
	st := s.st
	raw := strings.TrimSpace(input)
	if raw == "" {
		return st.text.TypeQuestion, nil
	}

	if party, isCommand, valid := parseAccusation(raw); isCommand {
		if !valid {
			return st.text.AccuseUsage, nil
		}
		return s.finalizeDetective(ctx, party), nil
	}

	question := raw
	card, rest, played := cards.Parse(raw)
	if played {
		if st.hand.Available(card) == 0 {
			return fmt.Sprintf(st.text.CardUsedFmt, card.Name(st.lang)), nil
		}
		if rest == "" && card == cards.Pressure {
			return st.text.TypeQuestion, nil
		}
		question = cards.Apply(st.lang, card, rest, *st.c)
	}

	answers, err := s.askBoth(ctx, question)
	if err != nil {
		return "", err
	}

	// The turn succeeded: commit everything at once.
	if played {
		st.hand.Use(card)
		s.gameLog().WithField("card", card).Debug("card played")
		s.events.Publish(events.CardPlayedEvent{Card: card, Question: question})
	}
	st.questions++
	st.history.Append(fmt.Sprintf("\nQ: %s\nS1: %s\nS2: %s", question, answers[scenario.PartyA], answers[scenario.PartyB]))
	s.events.Publish(events.QuestionAnsweredEvent{Number: st.questions, Question: question, Answers: answers})

	var b strings.Builder
	for _, p := range scenario.Parties {
		fmt.Fprintf(&b, st.text.SuspectLineFmt+"\n", p.Number(), answers[p])
	}

	var suffix string
	switch {
	case st.questions >= MaxQuestions:
		s.transition(DetectiveForcedToAccuse)
		suffix = "\n" + fmt.Sprintf(st.text.ForcedAccuseFmt, MaxQuestions)
	case st.questions >= AnalysisAfter:
		suffix = s.analysisSuffix(ctx)
	default:
		suffix = "\n" + st.text.AskAnother
	}
	return b.String() + suffix, nil
}

func (s *Session) handleForcedAccusation(ctx context.Context, input string) (string, error) {
	party, _, valid := parseAccusation(input)
	if !valid {
		return s.st.text.AccuseUsage, nil
	}
	return s.finalizeDetective(ctx, party), nil
}

// askBoth puts the question to both suspects in parallel. Either failure fails
// the turn and no answer is kept.
func (s *Session) askBoth(ctx context.Context, question string) (map[scenario.Party]string, error) {
	history := s.st.history.String()
	replies := make([]string, len(s.st.suspects))

	g, gctx := errgroup.WithContext(ctx)
	for i, suspect := range s.st.suspects {
		g.Go(func() (err error) {
			// A panic here would not reach ProcessTurn's recover.
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s: %w: %v", suspect.Party(), errRecovered, r)
				}
			}()
			answer, err := suspect.Answer(gctx, history, question)
			if err != nil {
				return fmt.Errorf("%s: %w", suspect.Party(), err)
			}
			replies[i] = strings.TrimSpace(answer)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	answers := make(map[scenario.Party]string, len(replies))
	for i, suspect := range s.st.suspects {
		answers[suspect.Party()] = replies[i]
	}
	return answers, nil
}

// analysisSuffix asks the model to score both suspects. A missing or partial
// analysis still offers the accusation.
func (s *Session) analysisSuffix(ctx context.Context) string {
	st := s.st
	log := s.gameLog().WithField("question", st.questions)

	p := prompt.SuspicionAnalysis(st.lang, st.history.String())
	a, ok, err := gateway.GenerateStructured[prompt.Analysis](ctx, s.gen, s.model, p, s.retries)
	if err != nil {
		log.WithError(err).Warn("analysis failed")
		return "\n" + st.text.AccuseOffer
	}
	if !ok {
		log.Warn("analysis absent")
		return "\n" + st.text.AccuseOffer
	}
	s1, s2, ok := a.Scores()
	if !ok {
		log.Warn("analysis without scores")
		return "\n" + st.text.AccuseOrAsk
	}

	suggestion := prompt.Suggestion(s1, s2)
	log.WithFields(logrus.Fields{"s1": s1, "s2": s2, "suggestion": suggestion}).Debug("analysis")
	s.events.Publish(events.AnalysisEvent{
		Scores: map[scenario.Party]int{scenario.PartyA: s1, scenario.PartyB: s2},
		Reasons: map[scenario.Party][]string{
			scenario.PartyA: a.For(scenario.PartyA).Reasons(),
			scenario.PartyB: a.For(scenario.PartyB).Reasons(),
		},
		Contradictions: a.Contradictions(),
		Suggestion:     suggestion,
	})
	return "\n" + fmt.Sprintf(st.text.AnalysisFmt, s1, s2, suggestion) + "\n" + st.text.AccuseHint
}
