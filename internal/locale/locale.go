package locale

import "strings"

// Language selects the text bundle used for every player-facing string and prompt.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// ChooseLanguage is shown before a language is known, so it is bilingual.
const ChooseLanguage = "🌍 Choose your language / Choisis ta langue: (fr/en)"

// InvalidLanguage re-prompts a language choice that was not recognized.
const InvalidLanguage = "❓ Type 'fr' or 'en' / Tape 'fr' ou 'en'."

// ParseLanguage recognizes a language selection typed by the player.
func ParseLanguage(input string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "en", "english", "anglais":
		return English, true
	case "fr", "french", "français", "francais":
		return French, true
	default:
		return "", false
	}
}

// Text is one language's bundle. Fields ending in Fmt are fmt format strings.
type Text struct {
	ChooseDifficulty  string
	InvalidDifficulty string
	Welcome           string
	ChooseRole        string
	InvalidRole       string
	DetectiveIntro    string
	TypeQuestion      string
	AskAnother        string
	CardUsedFmt       string
	SuspectLineFmt    string
	AnalysisFmt       string
	AccuseHint        string
	AccuseOrAsk       string
	AccuseOffer       string
	ForcedAccuseFmt   string
	AccuseUsage       string
	Correct           string
	WrongFmt          string
	PlayAgain         string
	ChooseAlignment   string
	DetectiveAsksFmt  string
	TypeAnswer        string
	AskFirstQuestion  string
	AskNextQuestion   string
	VerdictFmt        string
	Guilty            string
	Innocent          string
	DetectiveRight    string
	PlayerFooled      string
	ModelErrorFmt     string
	RecordNotSaved    string
	InternalError     string
	Briefings         []string
}

var bundles = map[Language]Text{
	English: {
		ChooseDifficulty:  "🎚️ Choose difficulty (easy/normal/hard): ",
		InvalidDifficulty: "❓ Invalid difficulty. Type 'easy', 'normal' or 'hard'.",
		Welcome:           "🎮 Welcome to the AI Detective Game!",
		ChooseRole:        "👉 Choose your role (detective/suspect): ",
		InvalidRole:       "❓ Invalid role. Type 'detective' or 'suspect'.",
		DetectiveIntro: "🕵️ You are the detective. Interrogate both suspects!\n" +
			"🎴 Cards (1 each): pressure / trap / evidence. Use them by prefixing your question, e.g.: 'evidence: Where were you?'\n" +
			"👉 Ask your first question:",
		TypeQuestion:     "❓ Please type a question.",
		AskAnother:       "👉 Ask another question.",
		CardUsedFmt:      "♻️ '%s' card already used.",
		SuspectLineFmt:   "👤 Suspect %d: %s",
		AnalysisFmt:      "📊 AI analysis → S1:%d / S2:%d | Suggestion: %s",
		AccuseHint:       "👉 To accuse, type: accuse suspect1 or accuse suspect2. Otherwise, ask another question.",
		AccuseOrAsk:      "👉 You can accuse or ask another question.",
		AccuseOffer:      "👉 You can accuse: 'accuse suspect1' or 'accuse suspect2'.",
		ForcedAccuseFmt:  "⚖️ %d questions reached. You must accuse now!",
		AccuseUsage:      "❓ Type: 'accuse suspect1' or 'accuse suspect2'.",
		Correct:          "✅ Correct! You found the criminal!",
		WrongFmt:         "❌ Wrong choice… It was %s",
		PlayAgain:        "🔁 Type 'fr' or 'en' to play again.",
		ChooseAlignment:  "🎭 Do you want to be innocent or guilty?",
		DetectiveAsksFmt: "🕵️ Detective: %s\n👉 Your answer:",
		TypeAnswer:       "✍️ Type your answer.",
		AskFirstQuestion: "Ask a question to the suspect.",
		AskNextQuestion:  "Ask another question to the suspect.",
		VerdictFmt:       "⚖️ Detective verdict: %s",
		Guilty:           "guilty",
		Innocent:         "innocent",
		DetectiveRight:   "✅ The detective found the truth.",
		PlayerFooled:     "🎉 You fooled the detective!",
		ModelErrorFmt:    "⚠️ Error: %v",
		RecordNotSaved:   "⚠️ The game record could not be saved.",
		InternalError:    "⚠️ Internal state error. Restart the game.",
		Briefings: []string{
			"A murder has taken place in an old library. The detective must find out who is lying.",
			"A burglary was committed in a museum. Two suspects are being questioned.",
			"A poisoning occurred during a dinner party. Who is guilty?",
			"A jewel theft has been reported in a luxury hotel. Two suspects are under interrogation.",
			"An arson destroyed a house. The detective investigates the two surviving suspects.",
		},
	},
	French: {
		ChooseDifficulty:  "🎚️ Choisis une difficulté (easy/normal/hard): ",
		InvalidDifficulty: "❓ Difficulté invalide. Tape 'easy', 'normal' ou 'hard'.",
		Welcome:           "🎮 Bienvenue dans le jeu du détective IA !",
		ChooseRole:        "👉 Choisis ton rôle (detective/suspect): ",
		InvalidRole:       "❓ Rôle invalide. Tape 'detective' ou 'suspect'.",
		DetectiveIntro: "🕵️ Tu es le détective. Interroge les deux suspects !\n" +
			"🎴 Cartes (1 chacune) : pression / piege / preuve. Utilise-les en préfixant ta question, ex: 'preuve: Où étiez-vous ?'\n" +
			"👉 Pose ta première question :",
		TypeQuestion:     "❓ Écris une question.",
		AskAnother:       "👉 Pose une autre question.",
		CardUsedFmt:      "♻️ Carte '%s' déjà utilisée.",
		SuspectLineFmt:   "👤 Suspect %d: %s",
		AnalysisFmt:      "📊 Analyse IA → S1:%d / S2:%d | Suggestion: %s",
		AccuseHint:       "👉 Pour accuser, écris: accuse suspect1 ou accuse suspect2. Sinon pose une autre question.",
		AccuseOrAsk:      "👉 Tu peux accuser ou poser une autre question.",
		AccuseOffer:      "👉 Tu peux accuser: 'accuse suspect1' ou 'accuse suspect2'.",
		ForcedAccuseFmt:  "⚖️ %d questions atteintes. Tu dois accuser maintenant !",
		AccuseUsage:      "❓ Écris: 'accuse suspect1' ou 'accuse suspect2'.",
		Correct:          "✅ Bravo ! Tu as trouvé le coupable !",
		WrongFmt:         "❌ Mauvais choix… C’était %s",
		PlayAgain:        "🔁 Tape 'fr' ou 'en' pour relancer.",
		ChooseAlignment:  "🎭 Veux-tu être innocent ou coupable ?",
		DetectiveAsksFmt: "🕵️ Détective: %s\n👉 Ta réponse :",
		TypeAnswer:       "✍️ Écris ta réponse.",
		AskFirstQuestion: "Pose une question au suspect.",
		AskNextQuestion:  "Pose une autre question au suspect.",
		VerdictFmt:       "⚖️ Verdict du détective: %s",
		Guilty:           "coupable",
		Innocent:         "innocent",
		DetectiveRight:   "✅ Le détective a trouvé la vérité.",
		PlayerFooled:     "🎉 Tu as trompé le détective !",
		ModelErrorFmt:    "⚠️ Erreur: %v",
		RecordNotSaved:   "⚠️ L'enregistrement de la partie a échoué.",
		InternalError:    "⚠️ Erreur d'état interne. Relance le jeu.",
		Briefings: []string{
			"Un meurtre a eu lieu dans une vieille bibliothèque. Le détective doit découvrir qui ment.",
			"Un cambriolage a eu lieu dans un musée. Deux suspects sont interrogés.",
			"Un empoisonnement a eu lieu lors d’un dîner mondain. Qui est le coupable ?",
			"Un vol de bijoux a été signalé dans un hôtel de luxe. Deux suspects sont entendus.",
			"Un incendie criminel a détruit une maison. Le détective enquête sur les deux survivants suspects.",
		},
	},
}

// For returns the bundle for lang, falling back to English for unknown values.
func For(lang Language) Text {
	if t, ok := bundles[lang]; ok {
		return t
	}
	return bundles[English]
}
