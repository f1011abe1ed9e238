package game

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"codeberg.org/snonux/proplay/internal/words"
)

type lateCallSource struct {
	closed   *atomic.Bool
	lateCall atomic.Bool
}

func (s *lateCallSource) RequestWords(ctx context.Context, theme words.Theme, difficulty words.Difficulty) ([]words.SpellingWord, error) {
	if s.closed.Load() {
		s.lateCall.Store(true)
	}
	return nil, ctx.Err()
}

func TestMachineAsyncAfterClose(t *testing.T) {
	m := NewMachine(Options{})
	m.Close()

	ran := false
	m.async(func() { ran = true })
	m.wg.Wait()

	if ran {
		t.Error("Expected no goroutine to start after Close")
	}
}

func TestMachineCloseRacingStart(t *testing.T) {
	for i := 0; i < 100; i++ {
		var closed atomic.Bool
		src := &lateCallSource{closed: &closed}
		m := NewMachine(Options{Words: src})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Start(words.Animals, words.Easy)
		}()

		m.Close()
		closed.Store(true)
		wg.Wait()

		if src.lateCall.Load() {
			t.Fatalf("Iteration %d: fetch ran after Close returned", i)
		}
	}
}
