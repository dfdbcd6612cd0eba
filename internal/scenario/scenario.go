package scenario

import (
	"fmt"
	"strings"

	"example.com/interrogation/internal/locale"
)

// Party identifies one of the two suspects of a case.
type Party int

const (
	PartyA Party = iota
	PartyB
)

// Parties lists both suspects in presentation order.
var Parties = []Party{PartyA, PartyB}

// String returns the player-facing tag of the party.
func (p Party) String() string {
	switch p {
	case PartyA:
		return "suspect1"
	case PartyB:
		return "suspect2"
	default:
		return fmt.Sprintf("party(%d)", int(p))
	}
}

// Number is the 1-based position of the party, used in "S1"/"S2" transcript labels.
func (p Party) Number() int { return int(p) + 1 }

// Other returns the opposite party.
func (p Party) Other() Party {
	if p == PartyA {
		return PartyB
	}
	return PartyA
}

func (p Party) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Party) UnmarshalText(text []byte) error {
	party, ok := ParseParty(string(text))
	if !ok {
		return fmt.Errorf("unknown party %q", text)
	}
	*p = party
	return nil
}

// ParseParty recognizes the names a player may use for a suspect.
func ParseParty(name string) (Party, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "suspect1", "partya", "s1":
		return PartyA, true
	case "suspect2", "partyb", "s2":
		return PartyB, true
	default:
		return 0, false
	}
}

// Role is the part a suspect plays in the case.
type Role int

const (
	Innocent Role = iota
	Guilty
)

func (r Role) String() string {
	switch r {
	case Innocent:
		return "innocent"
	case Guilty:
		return "guilty"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Evidence holds the fixed facts of the crime.
type Evidence struct {
	TimeOfCrime  string `json:"murder_time"`
	Location     string `json:"location"`
	PhysicalClue string `json:"found_item"`
}

// Case is the ground truth of one session. It is never mutated once generated.
type Case struct {
	GuiltyParty Party            `json:"culprit"`
	Alibis      map[Party]string `json:"alibis"`
	Evidence    Evidence         `json:"evidence"`
}

// RoleOf derives the role of a party from the guilty party.
func (c Case) RoleOf(p Party) Role {
	if c.GuiltyParty == p {
		return Guilty
	}
	return Innocent
}

// Alibi returns the alibi of the party.
func (c Case) Alibi(p Party) string {
	return c.Alibis[p]
}

type bundle struct {
	alibis   map[Party]string
	evidence Evidence
}

var bundles = map[locale.Language]bundle{
	locale.English: {
		alibis: map[Party]string{
			PartyA: "At home watching TV from 20:00 to 23:00",
			PartyB: "At the library from 20:30 to 22:00",
		},
		evidence: Evidence{
			TimeOfCrime:  "21:15",
			Location:     "Old library",
			PhysicalClue: "A glove with traces of ink",
		},
	},
	locale.French: {
		alibis: map[Party]string{
			PartyA: "Chez moi à regarder la TV de 20h00 à 23h00",
			PartyB: "À la bibliothèque de 20h30 à 22h00",
		},
		evidence: Evidence{
			TimeOfCrime:  "21:15",
			Location:     "vieille bibliothèque",
			PhysicalClue: "Un gant avec des traces d’encre",
		},
	},
}
