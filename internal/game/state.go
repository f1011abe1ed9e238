package game

import (
	"slices"
	"strings"

	"codeberg.org/snonux/proplay/internal/words"
)

// Phase is the screen the session is on
type Phase int

const (
	PhaseHome Phase = iota
	PhasePlaying
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhasePlaying:
		return "playing"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Outcome is the result of the last check of the current word
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Token identifies a pending timer or pronunciation. The zero Token means
// nothing is pending.
type Token struct {
	Epoch uint64
	Seq   uint64
}

// IsZero reports whether t is the zero Token
func (t Token) IsZero() bool {
	return t == Token{}
}

// State is a snapshot of the session
type State struct {
	Phase      Phase
	Theme      words.Theme
	Difficulty words.Difficulty
	Loading    bool

	Words      []words.SpellingWord
	Index      int
	Score      int
	FinalScore int

	// per-word state, reset when moving to the next word
	Input       string
	Outcome     Outcome
	HintVisible bool
	Speaking    bool

	// Epoch changes whenever a fetch starts or the session restarts
	Epoch   uint64
	seq     uint64
	pending Token // feedback or advance timer
	listen  Token // pronunciation in flight
}

// NewState returns the initial Home state
func NewState() State {
	return State{
		Phase:      PhaseHome,
		Theme:      words.Animals,
		Difficulty: words.Easy,
	}
}

// CurrentWord returns the word being quizzed
func (s State) CurrentWord() (words.SpellingWord, bool) {
	if s.Phase != PhasePlaying || s.Index < 0 || s.Index >= len(s.Words) {
		return words.SpellingWord{}, false
	}
	return s.Words[s.Index], true
}

// Total returns the number of words in the batch
func (s State) Total() int {
	return len(s.Words)
}

// Pending reports whether a feedback or advance timer is running
func (s State) Pending() bool {
	return !s.pending.IsZero()
}

// Rating returns the results title for the final score
func (s State) Rating() string {
	return Rating(s.FinalScore, s.Total())
}

// Equal reports whether two snapshots are identical
func (s State) Equal(o State) bool {
	return s.Phase == o.Phase &&
		s.Theme == o.Theme &&
		s.Difficulty == o.Difficulty &&
		s.Loading == o.Loading &&
		slices.Equal(s.Words, o.Words) &&
		s.Index == o.Index &&
		s.Score == o.Score &&
		s.FinalScore == o.FinalScore &&
		s.Input == o.Input &&
		s.Outcome == o.Outcome &&
		s.HintVisible == o.HintVisible &&
		s.Speaking == o.Speaking &&
		s.Epoch == o.Epoch &&
		s.seq == o.seq &&
		s.pending == o.pending &&
		s.listen == o.listen
}

func (s *State) nextToken() Token {
	s.seq++
	return Token{Epoch: s.Epoch, Seq: s.seq}
}

func (s *State) resetWord() {
	s.Input = ""
	s.Outcome = OutcomeUnknown
	s.HintVisible = false
	s.pending = Token{}
}

// Normalize prepares text for comparison: surrounding space trimmed, lower case
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
