package game

import "fmt"

// Phase is the state of the session machine.
type Phase int

const (
	ChoosingLanguage Phase = iota
	ChoosingDifficulty
	ChoosingRole
	DetectiveAwaitingQuestion
	DetectiveForcedToAccuse
	SuspectChoosingAlignment
	SuspectAwaitingPlayerAnswer
)

func (p Phase) String() string {
	switch p {
	case ChoosingLanguage:
		return "choosing_language"
	case ChoosingDifficulty:
		return "choosing_difficulty"
	case ChoosingRole:
		return "choosing_role"
	case DetectiveAwaitingQuestion:
		return "detective_awaiting_question"
	case DetectiveForcedToAccuse:
		return "detective_forced_to_accuse"
	case SuspectChoosingAlignment:
		return "suspect_choosing_alignment"
	case SuspectAwaitingPlayerAnswer:
		return "suspect_awaiting_player_answer"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Game rules.
const (
	// AnalysisAfter is the detective question count from which suspicion
	// scores are offered with each answer.
	AnalysisAfter = 3
	// MaxQuestions forces an accusation in detective mode and a guilty
	// verdict in suspect mode.
	MaxQuestions = 10
	// SuspectVerdictAfter is how many questions the AI detective asks before
	// it judges the human suspect.
	SuspectVerdictAfter = 3
	// GuiltyAbove is the suspect-mode score a verdict of guilty requires.
	GuiltyAbove = 60
	// defaultScore stands in for a score the model left out of its reply.
	defaultScore = 50
)
