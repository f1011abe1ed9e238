package game

import (
	"strings"

	"github.com/samber/lo"

	"codeberg.org/snonux/proplay/internal/words"
)

// Transition applies ev to s. An event that is not valid in s returns s
// unchanged and no effects.
func Transition(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case StartRequested:
		return s.start(ev)
	case WordsLoaded:
		return s.wordsLoaded(ev)
	case WordsFailed:
		return s.wordsFailed(ev)
	case InputChanged:
		return s.inputChanged(ev)
	case AnswerSubmitted:
		return s.answerSubmitted(ev)
	case FeedbackElapsed:
		return s.feedbackElapsed(ev)
	case AdvanceElapsed:
		return s.advanceElapsed(ev)
	case HintToggled:
		return s.hintToggled()
	case ListenRequested:
		return s.listenRequested()
	case PlaybackFinished:
		return s.playbackFinished(ev)
	case RestartRequested:
		return s.restart()
	}
	return s, nil
}

func (s State) start(ev StartRequested) (State, []Effect) {
	if s.Phase != PhaseHome || s.Loading {
		return s, nil
	}
	if ev.Theme != "" {
		s.Theme = ev.Theme
	}
	if ev.Difficulty != "" {
		s.Difficulty = ev.Difficulty
	}
	s.Loading = true
	s.Epoch++
	return s, []Effect{FetchWords{Epoch: s.Epoch, Theme: s.Theme, Difficulty: s.Difficulty}}
}

func (s State) awaiting(epoch uint64) bool {
	return s.Phase == PhaseHome && s.Loading && s.Epoch == epoch
}

func (s State) wordsLoaded(ev WordsLoaded) (State, []Effect) {
	if !s.awaiting(ev.Epoch) {
		return s, nil
	}
	s.Loading = false

	// ParseWords already rejects blank words; other WordSources may not
	batch := lo.Filter(ev.Words, func(w words.SpellingWord, _ int) bool {
		return strings.TrimSpace(w.Word) != ""
	})
	if len(batch) == 0 {
		return s, []Effect{ShowNotice{Notice: NoticeRetry}}
	}

	s.Phase = PhasePlaying
	s.Words = batch
	s.Index = 0
	s.Score = 0
	s.FinalScore = 0
	s.resetWord()
	return s, nil
}

func (s State) wordsFailed(ev WordsFailed) (State, []Effect) {
	if !s.awaiting(ev.Epoch) {
		return s, nil
	}
	s.Loading = false

	notice := NoticeConnection
	if words.IsGenerationError(ev.Err) {
		notice = NoticeRetry
	}
	return s, []Effect{ShowNotice{Notice: notice}}
}

func (s State) inputChanged(ev InputChanged) (State, []Effect) {
	if s.Phase != PhasePlaying || s.Outcome == OutcomeCorrect {
		return s, nil
	}
	s.Input = ev.Text
	return s, nil
}

func (s State) answerSubmitted(ev AnswerSubmitted) (State, []Effect) {
	word, ok := s.CurrentWord()
	if !ok || s.Outcome != OutcomeUnknown || !s.pending.IsZero() {
		return s, nil
	}
	s.Input = ev.Text
	tok := s.nextToken()
	s.pending = tok

	if Normalize(ev.Text) == Normalize(word.Word) {
		s.Outcome = OutcomeCorrect
		s.Score++
		return s, []Effect{
			Celebrate{},
			Schedule{Delay: AdvanceDelay, Event: AdvanceElapsed{Token: tok}},
		}
	}

	s.Outcome = OutcomeIncorrect
	return s, []Effect{Schedule{Delay: FeedbackDelay, Event: FeedbackElapsed{Token: tok}}}
}

func (s State) feedbackElapsed(ev FeedbackElapsed) (State, []Effect) {
	if s.Phase != PhasePlaying || s.pending.IsZero() || ev.Token != s.pending || s.Outcome != OutcomeIncorrect {
		return s, nil
	}
	s.Outcome = OutcomeUnknown
	s.pending = Token{}
	return s, nil
}

func (s State) advanceElapsed(ev AdvanceElapsed) (State, []Effect) {
	if s.Phase != PhasePlaying || s.pending.IsZero() || ev.Token != s.pending || s.Outcome != OutcomeCorrect {
		return s, nil
	}
	if s.Index < len(s.Words)-1 {
		s.Index++
		s.resetWord()
		return s, nil
	}

	s.Phase = PhaseResults
	s.FinalScore = s.Score
	s.resetWord()
	return s, nil
}

func (s State) hintToggled() (State, []Effect) {
	if s.Phase != PhasePlaying {
		return s, nil
	}
	s.HintVisible = !s.HintVisible
	return s, nil
}

func (s State) listenRequested() (State, []Effect) {
	word, ok := s.CurrentWord()
	if !ok || s.Speaking {
		return s, nil
	}
	s.Speaking = true
	s.listen = s.nextToken()
	return s, []Effect{Pronounce{Token: s.listen, Word: word.Word}}
}

func (s State) playbackFinished(ev PlaybackFinished) (State, []Effect) {
	if !s.Speaking || s.listen.IsZero() || ev.Token != s.listen {
		return s, nil
	}
	s.Speaking = false
	s.listen = Token{}
	return s, nil
}

// restart keeps the last theme and difficulty selection
func (s State) restart() (State, []Effect) {
	fresh := NewState()
	if s.Theme != "" {
		fresh.Theme = s.Theme
	}
	if s.Difficulty != "" {
		fresh.Difficulty = s.Difficulty
	}
	fresh.Epoch = s.Epoch + 1
	return fresh, nil
}
