// Package prompt renders the instructions sent to the language model.
// Every builder is a pure function of its arguments.
package prompt

import (
	"fmt"

	"example.com/interrogation/internal/locale"
	"example.com/interrogation/internal/scenario"
)

// SuspectAnswer builds the prompt a suspect answers a detective question from.
// The header depends on the role: an innocent suspect gets the plain facts and
// must tell the truth, a guilty one knows the facts but must lie plausibly.
func SuspectAnswer(lang locale.Language, party scenario.Party, c scenario.Case, history, question string) string {
	tag := party.String()
	alibi := c.Alibi(party)
	ev := c.Evidence
	role := c.RoleOf(party)

	var header, tail string
	if lang == locale.French {
		if role == scenario.Guilty {
			header = fmt.Sprintf("Tu es %s, suspect COUPABLE. Mens pour éviter d'être découvert.\n"+
				"Tu connais les faits réels (ne les dis pas tels quels): crime %s à la %s, indice: %s.\n"+
				"N'écris rien d'invraisemblable, évite les contradictions.",
				tag, ev.TimeOfCrime, ev.Location, ev.PhysicalClue)
		} else {
			header = fmt.Sprintf("Tu es %s, suspect INNOCENT. Dis toujours la vérité.\n"+
				"Ton alibi réel: %s. Crime vers %s à la %s.\n"+
				"Indice matériel: %s.",
				tag, alibi, ev.TimeOfCrime, ev.Location, ev.PhysicalClue)
		}
		tail = "Réponds en français, de façon naturelle et concise."
		return fmt.Sprintf("%s\n\nConversation:\n%s\n\nDétective: %s\n%s", header, history, question, tail)
	}

	if role == scenario.Guilty {
		header = fmt.Sprintf("You are %s, the GUILTY suspect. Lie to avoid being discovered.\n"+
			"You know the real facts (do not reveal them literally): crime %s at the %s, clue: %s.\n"+
			"Stay plausible and avoid contradictions.",
			tag, ev.TimeOfCrime, ev.Location, ev.PhysicalClue)
	} else {
		header = fmt.Sprintf("You are %s, an INNOCENT suspect. Always tell the truth.\n"+
			"Your real alibi: %s. Crime around %s in the %s.\n"+
			"Material clue: %s.",
			tag, alibi, ev.TimeOfCrime, ev.Location, ev.PhysicalClue)
	}
	tail = "Reply in concise English."
	return fmt.Sprintf("%s\n\nConversation:\n%s\n\nDetective: %s\n%s", header, history, question, tail)
}

// SuspicionAnalysis asks the model for a compact JSON verdict on both suspects.
// The key names differ per language; see Analysis for the accepted shapes.
func SuspicionAnalysis(lang locale.Language, history string) string {
	if lang == locale.French {
		return "Tu es un détective. Analyse le dialogue ci-dessous et renvoie un JSON compact :\n" +
			`{"suspect1":{"score":int,"motifs":["..."]},"suspect2":{"score":int,"motifs":["..."]},"incoherences":["..."]}` + "\n" +
			"score: 0=innocent, 100=très suspect.\n" +
			"Dialogue:\n" + history + "\nRéponds UNIQUEMENT en JSON."
	}
	return "You are a detective. Analyze dialogue below and return compact JSON:\n" +
		`{"suspect1":{"score":int,"motives":["..."]},"suspect2":{"score":int,"motives":["..."]},"inconsistencies":["..."]}` + "\n" +
		"score: 0=innocent, 100=highly suspicious.\n" +
		"Dialogue:\n" + history + "\nReply ONLY in JSON."
}

// DetectiveQuestion asks the model, playing the detective, for its next question
// to the human suspect. An empty history asks for the opening question.
func DetectiveQuestion(lang locale.Language, briefing, history string) string {
	text := locale.For(lang)
	if history == "" {
		return fmt.Sprintf("%s\nDetective: %s", briefing, text.AskFirstQuestion)
	}
	return fmt.Sprintf("%s\nDialogue:\n%s\nDetective: %s", briefing, history, text.AskNextQuestion)
}
