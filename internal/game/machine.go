package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"codeberg.org/snonux/proplay/internal/audio"
	"codeberg.org/snonux/proplay/internal/words"
)

// WordSource produces a batch of words
type WordSource interface {
	RequestWords(ctx context.Context, theme words.Theme, difficulty words.Difficulty) ([]words.SpellingWord, error)
}

// Presenter renders the session. Calls arrive in transition order and must
// not call back into the Machine synchronously.
type Presenter interface {
	Render(s State)
	Notify(n Notice)
	Celebrate()
}

// Options configures a Machine
type Options struct {
	Words     WordSource
	Speech    audio.Synthesizer // nil disables pronunciation
	Player    audio.Player      // defaults to audio.NopPlayer
	Presenter Presenter
	Scheduler Scheduler // defaults to ClockScheduler
}

// Machine owns a session State and runs the effects of each transition
type Machine struct {
	words     WordSource
	speech    audio.Synthesizer
	player    audio.Player
	presenter Presenter
	scheduler Scheduler

	mu     sync.Mutex // guards state and the session context
	state  State
	closed bool

	ctx           context.Context
	cancel        context.CancelFunc
	sessionCtx    context.Context
	cancelSession context.CancelFunc

	out sync.Mutex // orders presenter calls and effects

	timerMu sync.Mutex
	timers  []Timer

	wg sync.WaitGroup
}

// NewMachine creates a Machine in the Home phase
func NewMachine(opts Options) *Machine {
	m := &Machine{
		words:     opts.Words,
		speech:    opts.Speech,
		player:    opts.Player,
		presenter: opts.Presenter,
		scheduler: opts.Scheduler,
		state:     NewState(),
	}
	if m.player == nil {
		m.player = audio.NopPlayer{}
	}
	if m.presenter == nil {
		m.presenter = nopPresenter{}
	}
	if m.scheduler == nil {
		m.scheduler = ClockScheduler{}
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.sessionCtx, m.cancelSession = context.WithCancel(m.ctx)
	return m
}

// Start asks for a new batch of words and enters Playing when it arrives
func (m *Machine) Start(theme words.Theme, difficulty words.Difficulty) {
	m.dispatch(StartRequested{Theme: theme, Difficulty: difficulty})
}

// SetInput records the text typed so far
func (m *Machine) SetInput(text string) {
	m.dispatch(InputChanged{Text: text})
}

// Submit checks text against the current word
func (m *Machine) Submit(text string) {
	m.dispatch(AnswerSubmitted{Text: text})
}

// ToggleHint shows or hides the hint of the current word
func (m *Machine) ToggleHint() {
	m.dispatch(HintToggled{})
}

// Listen speaks the current word
func (m *Machine) Listen() {
	m.dispatch(ListenRequested{})
}

// Restart returns to Home. Pending timers, fetches and playback are dropped.
func (m *Machine) Restart() {
	m.dispatch(RestartRequested{})
}

// State returns the current snapshot
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Wait blocks until all fetches and pronunciations in flight have finished
func (m *Machine) Wait() {
	m.wg.Wait()
}

// Close stops timers, cancels requests in flight and waits for them
func (m *Machine) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.cancel()
	m.stopTimers()
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *Machine) dispatch(ev Event) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	prev := m.state
	next, effects := Transition(prev, ev)
	m.state = next

	if next.Epoch != prev.Epoch {
		m.cancelSession()
		m.stopTimers()
		m.sessionCtx, m.cancelSession = context.WithCancel(m.ctx)
	}
	ctx := m.sessionCtx

	// hand over to the output lock so presenter calls keep transition order
	m.out.Lock()
	m.mu.Unlock()
	defer m.out.Unlock()

	if !next.Equal(prev) {
		m.presenter.Render(next)
	}
	for _, effect := range effects {
		m.run(ctx, effect)
	}
}

func (m *Machine) run(ctx context.Context, effect Effect) {
	switch e := effect.(type) {
	case FetchWords:
		m.async(func() { m.fetch(ctx, e) })

	case Pronounce:
		m.async(func() { m.pronounce(ctx, e) })

	case Schedule:
		timer := m.scheduler.AfterFunc(e.Delay, func() { m.dispatch(e.Event) })
		m.timerMu.Lock()
		m.timers = append(m.timers, timer)
		m.timerMu.Unlock()

	case ShowNotice:
		m.presenter.Notify(e.Notice)

	case Celebrate:
		m.presenter.Celebrate()
	}
}

func (m *Machine) fetch(ctx context.Context, e FetchWords) {
	if m.words == nil {
		m.dispatch(WordsFailed{Epoch: e.Epoch, Err: errors.New("no word generator configured")})
		return
	}

	fmt.Printf("Requesting %d %s words (%s)...\n", words.BatchSize, e.Theme, e.Difficulty.Label())
	batch, err := m.words.RequestWords(ctx, e.Theme, e.Difficulty)
	if err != nil {
		if ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Warning: word generation failed: %v\n", err)
		}
		m.dispatch(WordsFailed{Epoch: e.Epoch, Err: err})
		return
	}
	m.dispatch(WordsLoaded{Epoch: e.Epoch, Words: batch})
}

func (m *Machine) pronounce(ctx context.Context, e Pronounce) {
	defer m.dispatch(PlaybackFinished{Token: e.Token})

	buf := audio.Pronounce(ctx, m.speech, e.Word)
	if buf == nil {
		return
	}
	if err := m.player.Play(ctx, buf); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Warning: playback failed: %v\n", err)
	}
}

// async runs fn on a tracked goroutine unless the machine is closed. The
// Add happens under mu so Close cannot start waiting before it.
func (m *Machine) async(fn func()) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		fn()
	}()
}

// stopTimers must be called with mu held
func (m *Machine) stopTimers() {
	m.timerMu.Lock()
	defer m.timerMu.Unlock()
	for _, t := range m.timers {
		t.Stop()
	}
	m.timers = nil
}

type nopPresenter struct{}

func (nopPresenter) Render(State)  {}
func (nopPresenter) Notify(Notice) {}
func (nopPresenter) Celebrate()    {}
