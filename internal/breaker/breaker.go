package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/proplay/internal/audio"
	"codeberg.org/snonux/proplay/internal/words"
)

// ErrOpen is returned while the breaker rejects calls
var ErrOpen = errors.New("service temporarily disabled after repeated failures")

// Config holds the breaker settings
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures before opening
	OpenTimeout      time.Duration // how long the breaker stays open
}

// DefaultConfig returns the default breaker settings
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
	}
}

// Breaker wraps gobreaker with context-aware helpers
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New creates a breaker
func New(config Config) *Breaker {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 3
	}
	threshold := config.FailureThreshold

	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: 1,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// a cancelled call says nothing about the service
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fmt.Printf("Circuit breaker '%s': %s -> %s\n", name, from, to)
		},
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// Do runs fn through the breaker
func (b *Breaker) Do(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s: %w", b.cb.Name(), ErrOpen)
	}
	return result, err
}

// State returns the breaker state as text ("closed", "open", "half-open")
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Generator guards a words.Generator
type Generator struct {
	next    words.Generator
	breaker *Breaker
}

// WrapGenerator returns gen guarded by a breaker. An empty word list counts as
// a success: the service answered.
func WrapGenerator(gen words.Generator, config Config) *Generator {
	return &Generator{next: gen, breaker: New(config)}
}

// RequestWords implements words.Generator
func (g *Generator) RequestWords(ctx context.Context, theme words.Theme, difficulty words.Difficulty) ([]words.SpellingWord, error) {
	result, err := g.breaker.Do(func() (interface{}, error) {
		return g.next.RequestWords(ctx, theme, difficulty)
	})
	if err != nil {
		if errors.Is(err, ErrOpen) {
			return nil, &words.TransportError{Provider: g.next.Name(), Err: err}
		}
		return nil, err
	}
	list, _ := result.([]words.SpellingWord)
	return list, nil
}

// Name implements words.Generator
func (g *Generator) Name() string {
	return g.next.Name()
}

// IsAvailable implements words.Generator
func (g *Generator) IsAvailable() error {
	if g.breaker.State() == gobreaker.StateOpen.String() {
		return ErrOpen
	}
	return g.next.IsAvailable()
}

// Synthesizer guards an audio.Synthesizer
type Synthesizer struct {
	next    audio.Synthesizer
	breaker *Breaker
}

// WrapSynthesizer returns s guarded by a breaker
func WrapSynthesizer(s audio.Synthesizer, config Config) *Synthesizer {
	return &Synthesizer{next: s, breaker: New(config)}
}

// Pronounce implements audio.Synthesizer
func (s *Synthesizer) Pronounce(ctx context.Context, word string) (*audio.Buffer, error) {
	result, err := s.breaker.Do(func() (interface{}, error) {
		return s.next.Pronounce(ctx, word)
	})
	if err != nil {
		return nil, err
	}
	buf, _ := result.(*audio.Buffer)
	return buf, nil
}

// Name implements audio.Synthesizer
func (s *Synthesizer) Name() string {
	return s.next.Name()
}

// IsAvailable implements audio.Synthesizer
func (s *Synthesizer) IsAvailable() error {
	if s.breaker.State() == gobreaker.StateOpen.String() {
		return ErrOpen
	}
	return s.next.IsAvailable()
}
