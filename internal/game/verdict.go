package game

import (
	"context"
	"fmt"

	"example.com/interrogation/internal/events"
	"example.com/interrogation/internal/records"
	"example.com/interrogation/internal/scenario"
	"github.com/sirupsen/logrus"
)

func (s *Session) finalizeDetective(ctx context.Context, guess scenario.Party) string {
	st := s.st
	culprit := st.c.GuiltyParty
	good := guess == culprit

	msg := st.text.Correct
	if !good {
		msg = fmt.Sprintf(st.text.WrongFmt, culprit)
	}

	r := s.newRecord(records.ModeDetective)
	r.Culprit = culprit.String()
	r.PlayerGuess = guess.String()
	r.Success = good

	return s.finish(ctx, msg, r, events.VerdictEvent{
		Mode:    string(records.ModeDetective),
		Verdict: guess.String(),
		Truth:   culprit.String(),
		Success: good,
	})
}

func (s *Session) finalizeSuspect(ctx context.Context, guilty bool) string {
	st := s.st
	correct := guilty == st.playerGuilty

	verdict, shown := scenario.Innocent, st.text.Innocent
	if guilty {
		verdict, shown = scenario.Guilty, st.text.Guilty
	}
	truth := scenario.Innocent
	if st.playerGuilty {
		truth = scenario.Guilty
	}

	msg := fmt.Sprintf(st.text.VerdictFmt, shown) + "\n"
	if correct {
		msg += st.text.DetectiveRight
	} else {
		msg += st.text.PlayerFooled
	}

	isCriminal, fooled := st.playerGuilty, !correct
	r := s.newRecord(records.ModeSuspect)
	r.IsCriminal = &isCriminal
	r.AIVerdict = verdict.String()
	r.AICorrect = &correct
	r.PlayerFooledDetective = &fooled
	r.Success = fooled

	return s.finish(ctx, msg, r, events.VerdictEvent{
		Mode:    string(records.ModeSuspect),
		Verdict: verdict.String(),
		Truth:   truth.String(),
		Success: fooled,
	})
}

func (s *Session) newRecord(mode records.Mode) records.Record {
	st := s.st
	return records.Record{
		ID:         st.id,
		Mode:       mode,
		Timestamp:  s.now(),
		Lang:       st.lang,
		Difficulty: st.difficulty,
		Context:    st.briefing,
		Case:       *st.c,
		Questions:  st.questions,
		History:    st.history.String(),
	}
}

// finish ends the game: the verdict message is composed before the record is
// saved and is returned even when saving fails.
func (s *Session) finish(ctx context.Context, msg string, r records.Record, ev events.VerdictEvent) string {
	st := s.st
	log := s.gameLog().WithFields(logrus.Fields{"mode": r.Mode, "success": r.Success, "questions": r.Questions})

	loc, err := s.store.Save(ctx, r)
	if err != nil {
		log.WithError(err).Warn("record not saved")
		msg += "\n" + st.text.RecordNotSaved
	} else {
		log.WithField("location", loc).Info("game over")
	}
	ev.Location, ev.Err = loc, err
	s.events.Publish(ev)

	s.transition(ChoosingLanguage)
	return msg + "\n\n" + st.text.PlayAgain
}
