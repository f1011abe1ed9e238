package gui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"codeberg.org/snonux/proplay/internal/game"
	"codeberg.org/snonux/proplay/internal/testutil"
	"codeberg.org/snonux/proplay/internal/words"
)

func newTestApplication(t *testing.T, gen *testutil.MockGenerator) (*Application, *testutil.ManualScheduler) {
	t.Helper()

	fyneApp := test.NewTempApp(t)
	sched := &testutil.ManualScheduler{}
	a := newApplication(fyneApp, &Config{
		Theme:      words.Space,
		Difficulty: words.Medium,
		Words:      gen,
	}, sched)
	t.Cleanup(a.close)
	return a, sched
}

func startGame(t *testing.T, a *Application) {
	t.Helper()
	test.Tap(a.startButton)
	a.machine.Wait()
	testutil.WaitFor(t, time.Second, func() bool {
		return a.last.Phase == game.PhasePlaying
	})
}

func TestHomeScreen(t *testing.T) {
	a, _ := newTestApplication(t, &testutil.MockGenerator{})

	if !a.homeScreen.Visible() {
		t.Error("Expected home screen to be visible")
	}
	if a.playScreen.Visible() || a.resultsScreen.Visible() {
		t.Error("Expected play and results screens to be hidden")
	}
	if a.themeGroup.Selected != "Space" {
		t.Errorf("Expected theme 'Space', got '%s'", a.themeGroup.Selected)
	}
	if a.difficultyGroup.Selected != "Spelling Star" {
		t.Errorf("Expected difficulty 'Spelling Star', got '%s'", a.difficultyGroup.Selected)
	}
	if a.startButton.Disabled() {
		t.Error("Expected start button to be enabled")
	}
}

func TestStartUsesSelection(t *testing.T) {
	gen := &testutil.MockGenerator{Words: (&testutil.TestDataGenerator{}).GenerateWords(5)}
	a, _ := newTestApplication(t, gen)

	a.themeGroup.SetSelected("Food")
	a.difficultyGroup.SetSelected("Word Master")
	startGame(t, a)

	if len(gen.Calls) != 1 || gen.Calls[0] != "Food/hard" {
		t.Errorf("Expected one request for Food/hard, got %v", gen.Calls)
	}
	if !a.playScreen.Visible() || a.homeScreen.Visible() {
		t.Error("Expected only the play screen to be visible")
	}
	if a.progressLabel.Text != "Word 1 of 5" {
		t.Errorf("Expected 'Word 1 of 5', got '%s'", a.progressLabel.Text)
	}
	if !strings.Contains(a.definitionLabel.Text, "A striped wild horse") {
		t.Errorf("Expected definition of zebra, got '%s'", a.definitionLabel.Text)
	}
}

func TestAnswering(t *testing.T) {
	gen := &testutil.MockGenerator{Words: (&testutil.TestDataGenerator{}).GenerateWords(5)}
	a, sched := newTestApplication(t, gen)
	startGame(t, a)

	test.Type(a.answerEntry, "zebar")
	test.Tap(a.submitButton)
	if a.feedbackLabel.Text != "Not quite! Try again." {
		t.Errorf("Expected incorrect feedback, got '%s'", a.feedbackLabel.Text)
	}
	if !a.submitButton.Disabled() {
		t.Error("Expected submit to be disabled while feedback shows")
	}

	sched.Advance(game.FeedbackDelay)
	if a.feedbackLabel.Text != "" {
		t.Errorf("Expected feedback to clear, got '%s'", a.feedbackLabel.Text)
	}

	a.answerEntry.SetText("Zebra")
	test.Tap(a.submitButton)
	if a.feedbackLabel.Text != "AMAZING!" {
		t.Errorf("Expected celebration text, got '%s'", a.feedbackLabel.Text)
	}
	if !a.answerEntry.Disabled() {
		t.Error("Expected entry to be disabled after a correct answer")
	}

	sched.Advance(game.AdvanceDelay)
	if a.progressLabel.Text != "Word 2 of 5" {
		t.Errorf("Expected 'Word 2 of 5', got '%s'", a.progressLabel.Text)
	}
	if a.answerEntry.Text != "" {
		t.Errorf("Expected entry to be cleared, got '%s'", a.answerEntry.Text)
	}
}

func TestHintToggle(t *testing.T) {
	gen := &testutil.MockGenerator{Words: (&testutil.TestDataGenerator{}).GenerateWords(1)}
	a, _ := newTestApplication(t, gen)
	startGame(t, a)

	if a.hintLabel.Visible() {
		t.Error("Expected hint to start hidden")
	}
	test.Tap(a.hintButton)
	if !a.hintLabel.Visible() || a.hintLabel.Text != "Hint: Black and white" {
		t.Errorf("Expected visible hint, got '%s'", a.hintLabel.Text)
	}
	if a.hintButton.Text != "Hide Hint" {
		t.Errorf("Expected 'Hide Hint', got '%s'", a.hintButton.Text)
	}
	test.Tap(a.hintButton)
	if a.hintLabel.Visible() {
		t.Error("Expected hint to be hidden again")
	}
}

func TestListenDisabledWithoutSpeech(t *testing.T) {
	gen := &testutil.MockGenerator{Words: (&testutil.TestDataGenerator{}).GenerateWords(1)}
	a, _ := newTestApplication(t, gen)
	startGame(t, a)

	if !a.listenButton.Disabled() {
		t.Error("Expected listen button to be disabled without a synthesizer")
	}
}

func TestResultsAndPlayAgain(t *testing.T) {
	batch := (&testutil.TestDataGenerator{}).GenerateWords(3)
	gen := &testutil.MockGenerator{Words: batch}
	a, sched := newTestApplication(t, gen)
	startGame(t, a)

	for _, w := range batch {
		a.answerEntry.SetText(w.Word)
		test.Tap(a.submitButton)
		sched.Advance(game.AdvanceDelay)
	}

	if !a.resultsScreen.Visible() {
		t.Fatal("Expected results screen")
	}
	if a.ratingLabel.Text != "Perfect Score!" {
		t.Errorf("Expected 'Perfect Score!', got '%s'", a.ratingLabel.Text)
	}
	if a.scoreLabel.Text != "3 / 3" {
		t.Errorf("Expected '3 / 3', got '%s'", a.scoreLabel.Text)
	}

	test.Tap(a.againButton)
	a.machine.Wait()

	if !a.homeScreen.Visible() || a.resultsScreen.Visible() {
		t.Error("Expected play again to return to the home screen")
	}
	s := a.machine.State()
	if s.Phase != game.PhaseHome || len(s.Words) != 0 || s.Score != 0 {
		t.Errorf("Expected a cleared home state, got phase=%v words=%d score=%d", s.Phase, len(s.Words), s.Score)
	}
	if gen.CallCount() != 1 {
		t.Errorf("Expected no new request, got %d calls", gen.CallCount())
	}
	if a.startButton.Disabled() {
		t.Error("Expected start button to be enabled")
	}
	if a.themeGroup.Selected != "Space" {
		t.Errorf("Expected theme selection to be kept, got '%s'", a.themeGroup.Selected)
	}
}

func TestStartFailureShowsNotice(t *testing.T) {
	gen := &testutil.MockGenerator{Err: &words.TransportError{Provider: "mock", Err: errors.New("offline")}}
	a, _ := newTestApplication(t, gen)

	test.Tap(a.startButton)
	a.machine.Wait()
	testutil.WaitFor(t, time.Second, func() bool {
		return a.statusLabel.Text == game.NoticeConnection.String()
	})

	if !a.homeScreen.Visible() {
		t.Error("Expected to stay on the home screen")
	}
	if a.startButton.Disabled() {
		t.Error("Expected start button to be enabled again")
	}
}

func TestShortcuts(t *testing.T) {
	gen := &testutil.MockGenerator{Words: (&testutil.TestDataGenerator{}).GenerateWords(2)}
	a, _ := newTestApplication(t, gen)

	a.handleRune('s')
	a.machine.Wait()
	testutil.WaitFor(t, time.Second, func() bool {
		return a.last.Phase == game.PhasePlaying
	})

	a.window.Canvas().Unfocus()
	a.handleRune('h')
	if !a.machine.State().HintVisible {
		t.Error("Expected 'h' to toggle the hint")
	}

	a.window.Canvas().Focus(a.answerEntry)
	a.handleRune('h')
	if !a.machine.State().HintVisible {
		t.Error("Expected shortcuts to be ignored while typing")
	}

	a.window.Canvas().Unfocus()
	a.handleRune('r')
	if a.machine.State().Phase != game.PhaseHome {
		t.Error("Expected 'r' to return home")
	}
}

func TestLineWriter(t *testing.T) {
	var tee bytes.Buffer
	var lines []string
	w := &lineWriter{tee: &tee, sink: func(s string) { lines = append(lines, s) }}

	w.Write([]byte("Requesting 5 Animals"))
	if len(lines) != 0 {
		t.Errorf("Expected partial line to be held, got %v", lines)
	}
	w.Write([]byte(" words (mock)...\r\n\nWarning: slow\nrest"))
	w.flush()

	expected := []string{"Requesting 5 Animals words (mock)...", "Warning: slow", "rest"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %v", len(expected), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: expected '%s', got '%s'", i, expected[i], lines[i])
		}
	}
	if !strings.HasPrefix(tee.String(), "Requesting 5 Animals words") {
		t.Errorf("Expected tee to receive raw output, got '%s'", tee.String())
	}
}

func TestGetAppIcon(t *testing.T) {
	icon := GetAppIcon()
	if icon == nil {
		t.Fatal("Expected an icon resource")
	}
	if !bytes.HasPrefix(icon.Content(), []byte("\x89PNG")) {
		t.Error("Expected PNG content")
	}
	if icon != GetAppIcon() {
		t.Error("Expected the icon to be rendered once")
	}
}
