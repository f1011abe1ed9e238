package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"codeberg.org/snonux/proplay/internal/audio"
	"codeberg.org/snonux/proplay/internal/game"
	"codeberg.org/snonux/proplay/internal/words"
)

// MockGenerator mocks a word generator
type MockGenerator struct {
	mu    sync.Mutex
	Words []words.SpellingWord
	Err   error
	Calls []string

	// Block, when set, holds RequestWords until it is closed or ctx ends
	Block chan struct{}
}

// RequestWords mocks generating a batch
func (m *MockGenerator) RequestWords(ctx context.Context, theme words.Theme, difficulty words.Difficulty) ([]words.SpellingWord, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("%s/%s", theme, difficulty))
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Words, m.Err
}

// Name returns the mock name
func (m *MockGenerator) Name() string { return "mock" }

// IsAvailable always succeeds
func (m *MockGenerator) IsAvailable() error { return nil }

// CallCount returns the number of RequestWords calls
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockSynthesizer mocks a pronunciation provider
type MockSynthesizer struct {
	mu    sync.Mutex
	Buf   *audio.Buffer
	Err   error
	Calls []string
}

// Pronounce mocks speaking a word
func (m *MockSynthesizer) Pronounce(ctx context.Context, word string) (*audio.Buffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, word)
	return m.Buf, m.Err
}

// Name returns the mock name
func (m *MockSynthesizer) Name() string { return "mock" }

// IsAvailable always succeeds
func (m *MockSynthesizer) IsAvailable() error { return nil }

// CallCount returns the number of Pronounce calls
func (m *MockSynthesizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockPlayer records played buffers
type MockPlayer struct {
	mu     sync.Mutex
	Played []*audio.Buffer
	Err    error
}

// Play records buf
func (m *MockPlayer) Play(ctx context.Context, buf *audio.Buffer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Played = append(m.Played, buf)
	return m.Err
}

// PlayCount returns the number of Play calls
func (m *MockPlayer) PlayCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Played)
}

// ManualScheduler fires scheduled callbacks only when the test advances it
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

// Stop implements game.Timer
func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// AfterFunc implements game.Scheduler
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) game.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward and runs every callback that became due,
// in due order
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of timers that have neither fired nor stopped
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// RecordingPresenter records everything the machine presents
type RecordingPresenter struct {
	mu         sync.Mutex
	States     []game.State
	Notices    []game.Notice
	Celebrated int
}

// Render records the state
func (p *RecordingPresenter) Render(s game.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.States = append(p.States, s)
}

// Notify records the notice
func (p *RecordingPresenter) Notify(n game.Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Notices = append(p.Notices, n)
}

// Celebrate counts success cues
func (p *RecordingPresenter) Celebrate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Celebrated++
}

// LastNotice returns the most recent notice, or 0
func (p *RecordingPresenter) LastNotice() game.Notice {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Notices) == 0 {
		return 0
	}
	return p.Notices[len(p.Notices)-1]
}

// NoticeCount returns the number of notices shown
func (p *RecordingPresenter) NoticeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Notices)
}

// Celebrations returns the number of success cues
func (p *RecordingPresenter) Celebrations() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Celebrated
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// GenerateWords returns n well-formed words
func (g *TestDataGenerator) GenerateWords(n int) []words.SpellingWord {
	pool := []words.SpellingWord{
		{Word: "zebra", Definition: "A striped wild horse", Hint: "Black and white", Category: "Animals"},
		{Word: "rocket", Definition: "A vehicle that flies into space", Hint: "3, 2, 1, liftoff", Category: "Space"},
		{Word: "banana", Definition: "A long yellow fruit", Hint: "Monkeys love it", Category: "Food"},
		{Word: "river", Definition: "A large natural stream of water", Hint: "It flows to the sea", Category: "Nature"},
		{Word: "pencil", Definition: "A tool for writing or drawing", Hint: "It has an eraser", Category: "Everyday Objects"},
		{Word: "cape", Definition: "A cloak worn over the shoulders", Hint: "Heroes wear one", Category: "Superheroes"},
	}
	out := make([]words.SpellingWord, n)
	for i := range out {
		out[i] = pool[i%len(pool)]
	}
	return out
}

// GenerateAudio returns a short mono buffer
func (g *TestDataGenerator) GenerateAudio() *audio.Buffer {
	return &audio.Buffer{
		Channels:   audio.Channels,
		SampleRate: audio.SampleRate,
		Data:       [][]float32{{0, 0.25, 0.5, 0.25, 0, -0.25, -0.5, -0.25}},
	}
}
