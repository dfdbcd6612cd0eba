package scenario

import (
	"math/rand"

	"example.com/interrogation/internal/locale"
)

// Chooser selects the guilty party. It allows swapping random and
// deterministic selection, e.g. for tests.
type Chooser interface {
	Choose(parties []Party) Party
}

// RandomChooser picks a party uniformly.
type RandomChooser struct {
	rand *rand.Rand
}

func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(parties []Party) Party {
	return parties[r.rand.Intn(len(parties))]
}

// FixedChooser always returns the same party.
type FixedChooser struct {
	Party Party
}

func (f FixedChooser) Choose([]Party) Party { return f.Party }

// Generator produces cases and briefings.
type Generator struct {
	chooser Chooser
	rand    *rand.Rand
}

// NewGenerator creates a generator. rand drives the briefing choice and, when
// chooser is nil, the guilt assignment.
func NewGenerator(rand *rand.Rand, chooser Chooser) *Generator {
	if chooser == nil {
		chooser = NewRandomChooser(rand)
	}
	return &Generator{chooser: chooser, rand: rand}
}

// Generate assigns guilt and pairs it with the fixed alibi and evidence bundle
// of the language. Evidence is the same for every case of a language.
func (g *Generator) Generate(lang locale.Language) Case {
	b, ok := bundles[lang]
	if !ok {
		b = bundles[locale.English]
	}
	alibis := make(map[Party]string, len(b.alibis))
	for p, text := range b.alibis {
		alibis[p] = text
	}
	return Case{
		GuiltyParty: g.chooser.Choose(Parties),
		Alibis:      alibis,
		Evidence:    b.evidence,
	}
}

// Briefing picks one of the scenario introductions of the language.
func (g *Generator) Briefing(lang locale.Language) string {
	briefings := locale.For(lang).Briefings
	return briefings[g.rand.Intn(len(briefings))]
}
