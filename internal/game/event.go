package game

import "codeberg.org/snonux/proplay/internal/words"

// Event is an input to Transition
type Event interface {
	isEvent()
}

// StartRequested asks for a new batch of words
type StartRequested struct {
	Theme      words.Theme
	Difficulty words.Difficulty
}

// WordsLoaded delivers the generated batch for the fetch started in Epoch
type WordsLoaded struct {
	Epoch uint64
	Words []words.SpellingWord
}

// WordsFailed reports that the fetch started in Epoch failed
type WordsFailed struct {
	Epoch uint64
	Err   error
}

// InputChanged carries the text typed so far
type InputChanged struct {
	Text string
}

// AnswerSubmitted checks Text against the current word
type AnswerSubmitted struct {
	Text string
}

// FeedbackElapsed ends the "incorrect" display
type FeedbackElapsed struct {
	Token Token
}

// AdvanceElapsed moves on after a correct answer
type AdvanceElapsed struct {
	Token Token
}

// HintToggled shows or hides the hint
type HintToggled struct{}

// ListenRequested asks for the current word to be spoken
type ListenRequested struct{}

// PlaybackFinished reports that the pronunciation ended or was unavailable
type PlaybackFinished struct {
	Token Token
}

// RestartRequested returns to Home
type RestartRequested struct{}

func (StartRequested) isEvent()   {}
func (WordsLoaded) isEvent()      {}
func (WordsFailed) isEvent()      {}
func (InputChanged) isEvent()     {}
func (AnswerSubmitted) isEvent()  {}
func (FeedbackElapsed) isEvent()  {}
func (AdvanceElapsed) isEvent()   {}
func (HintToggled) isEvent()      {}
func (ListenRequested) isEvent()  {}
func (PlaybackFinished) isEvent() {}
func (RestartRequested) isEvent() {}
