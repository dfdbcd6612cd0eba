package game

import "strings"

// Transcript is the append-only dialogue log of one game.
type Transcript struct {
	b strings.Builder
}

// Append adds an already formatted entry. Entries are never edited.
func (t *Transcript) Append(entry string) {
	t.b.WriteString(entry)
}

func (t *Transcript) String() string { return t.b.String() }
func (t *Transcript) Len() int       { return t.b.Len() }
