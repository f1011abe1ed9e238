package game

import (
	"time"

	"codeberg.org/snonux/proplay/internal/words"
)

// Display delays after a checked answer
const (
	AdvanceDelay  = 2000 * time.Millisecond
	FeedbackDelay = 1500 * time.Millisecond
)

// Effect is work requested by Transition
type Effect interface {
	isEffect()
}

// FetchWords requests a batch from the word generator
type FetchWords struct {
	Epoch      uint64
	Theme      words.Theme
	Difficulty words.Difficulty
}

// ShowNotice shows a dismissible notice to the player
type ShowNotice struct {
	Notice Notice
}

// Celebrate triggers the success cue
type Celebrate struct{}

// Schedule delivers Event after Delay
type Schedule struct {
	Delay time.Duration
	Event Event
}

// Pronounce speaks Word and reports back with PlaybackFinished{Token}
type Pronounce struct {
	Token Token
	Word  string
}

func (FetchWords) isEffect() {}
func (ShowNotice) isEffect() {}
func (Celebrate) isEffect()  {}
func (Schedule) isEffect()   {}
func (Pronounce) isEffect()  {}

// Notice is a user-facing failure message
type Notice int

const (
	// NoticeRetry follows an empty or unusable word list
	NoticeRetry Notice = iota + 1
	// NoticeConnection follows any other failure to start
	NoticeConnection
)

func (n Notice) String() string {
	switch n {
	case NoticeRetry:
		return "Oops! The word wizard came back empty-handed. Let's try again."
	case NoticeConnection:
		return "Failed to start game. Check your connection."
	default:
		return ""
	}
}
