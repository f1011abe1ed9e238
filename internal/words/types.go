package words

import (
	"fmt"
	"strings"
)

// BatchSize is the number of words requested per quest
const BatchSize = 5

// SpellingWord is a single quiz entry produced by a generator
type SpellingWord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Hint       string `json:"hint"`
	Category   string `json:"category"`
}

// Difficulty selects how hard the generated words are
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns all difficulties in display order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Label returns the player-facing name of the difficulty
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Early Learner"
	case Medium:
		return "Spelling Star"
	case Hard:
		return "Word Master"
	default:
		return string(d)
	}
}

// ParseDifficulty accepts a difficulty value or its label, case-insensitive
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties() {
		if strings.EqualFold(s, string(d)) || strings.EqualFold(s, d.Label()) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty: %q (want easy, medium or hard)", s)
}

// Theme is one of the fixed quest themes
type Theme string

const (
	Animals         Theme = "Animals"
	Space           Theme = "Space"
	Food            Theme = "Food"
	Nature          Theme = "Nature"
	EverydayObjects Theme = "Everyday Objects"
	Superheroes     Theme = "Superheroes"
)

// Themes returns all themes in display order
func Themes() []Theme {
	return []Theme{Animals, Space, Food, Nature, EverydayObjects, Superheroes}
}

// ParseTheme matches a theme name case-insensitively. Dashes and
// underscores count as spaces so "everyday-objects" works on the command line.
func ParseTheme(s string) (Theme, error) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for _, t := range Themes() {
		if strings.EqualFold(norm, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme: %q", s)
}

// Valid reports whether all required fields are present
func (w SpellingWord) Valid() bool {
	return strings.TrimSpace(w.Word) != "" &&
		strings.TrimSpace(w.Definition) != "" &&
		strings.TrimSpace(w.Hint) != "" &&
		strings.TrimSpace(w.Category) != ""
}
