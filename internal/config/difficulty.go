package config

import (
	"fmt"
	"strings"
)

// Difficulty is chosen once per game and fixes the generation options.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDifficulty recognizes a difficulty typed by the player.
func ParseDifficulty(input string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "easy", "facile":
		return Easy, true
	case "normal":
		return Normal, true
	case "hard", "difficile":
		return Hard, true
	default:
		return 0, false
	}
}

// GenerationOptions are the sampling settings sent with every free-text call.
type GenerationOptions struct {
	Temperature     float64
	MaxOutputTokens int
}

var difficultyOptions = map[Difficulty]GenerationOptions{
	Easy:   {Temperature: 0.9, MaxOutputTokens: 200},
	Normal: {Temperature: 0.7, MaxOutputTokens: 180},
	Hard:   {Temperature: 0.4, MaxOutputTokens: 160},
}

// Options maps a difficulty to its fixed generation options.
func Options(d Difficulty) GenerationOptions {
	if o, ok := difficultyOptions[d]; ok {
		return o
	}
	return difficultyOptions[Normal]
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, ok := ParseDifficulty(string(text))
	if !ok {
		return fmt.Errorf("unknown difficulty %q", text)
	}
	*d = parsed
	return nil
}
