package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"codeberg.org/snonux/proplay/internal/game"
	"codeberg.org/snonux/proplay/internal/words"
)

// Session is the part of game.Machine the console drives
type Session interface {
	Start(theme words.Theme, difficulty words.Difficulty)
	Submit(text string)
	ToggleHint()
	Listen()
	Restart()
	State() game.State
	Wait()
}

// Console renders a session as text and reads answers line by line
type Console struct {
	in  io.Reader
	out io.Writer

	mu   sync.Mutex // guards out and last
	last game.State

	theme      words.Theme
	difficulty words.Difficulty
}

// New creates a console reading from in and writing to out
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:         in,
		out:        out,
		last:       game.NewState(),
		theme:      words.Animals,
		difficulty: words.Easy,
	}
}

// Run starts a quest and processes input until the player quits, the input
// ends or ctx is cancelled
func (c *Console) Run(ctx context.Context, s Session, theme words.Theme, difficulty words.Difficulty) error {
	c.theme = theme
	c.difficulty = difficulty

	c.printf("Proplay Quest - the fun way to master spelling!\n")
	c.printf("Commands: %s hint, %s listen, :restart, :theme NAME, :difficulty LEVEL, :quit\n\n", hintCmd, listenCmd)
	s.Start(theme, difficulty)
	s.Wait()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			if c.handle(s, line) {
				return nil
			}
		}
	}
}

const (
	hintCmd   = "?"
	listenCmd = "!"

	homePrompt = "\nBack at the start. Press Enter for a new quest, or pick another one with :theme and :difficulty.\n"
)

// handle processes one input line and reports whether to quit
func (c *Console) handle(s Session, line string) bool {
	cmd := strings.TrimSpace(line)
	lower := strings.ToLower(cmd)

	switch {
	case lower == ":quit" || lower == ":q":
		return true
	case strings.HasPrefix(lower, ":theme "):
		c.selectTheme(strings.TrimSpace(cmd[len(":theme "):]))
		return false
	case strings.HasPrefix(lower, ":difficulty "):
		c.selectDifficulty(strings.TrimSpace(cmd[len(":difficulty "):]))
		return false
	case lower == ":restart":
		atHome := s.State().Phase == game.PhaseHome
		s.Restart()
		if atHome {
			c.printf(homePrompt)
		}
		return false
	}

	state := s.State()
	switch state.Phase {
	case game.PhaseHome:
		if !state.Loading {
			s.Start(c.theme, c.difficulty)
			s.Wait()
		}

	case game.PhasePlaying:
		switch lower {
		case hintCmd, ":hint":
			s.ToggleHint()
		case listenCmd, ":listen":
			s.Listen()
		default:
			if state.Pending() {
				c.printf("Wait a moment...\n")
				break
			}
			s.Submit(line)
		}

	case game.PhaseResults:
		switch lower {
		case "", "y", "yes", "again":
			s.Restart()
		case "n", "no":
			return true
		}
	}
	return false
}

func (c *Console) selectTheme(name string) {
	theme, err := words.ParseTheme(name)
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	c.theme = theme
	c.printf("Theme for the next quest: %s\n", theme)
}

func (c *Console) selectDifficulty(name string) {
	difficulty, err := words.ParseDifficulty(name)
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	c.difficulty = difficulty
	c.printf("Difficulty for the next quest: %s\n", difficulty.Label())
}

// Render implements game.Presenter
func (c *Console) Render(s game.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.last
	c.last = s

	switch s.Phase {
	case game.PhaseHome:
		if prev.Phase != game.PhaseHome {
			fmt.Fprint(c.out, homePrompt)
		}
		if s.Loading && !prev.Loading {
			fmt.Fprintf(c.out, "Preparing your adventure: %s, %s...\n", s.Theme, s.Difficulty.Label())
		}

	case game.PhasePlaying:
		word, _ := s.CurrentWord()
		if prev.Phase != game.PhasePlaying || prev.Index != s.Index || prev.Epoch != s.Epoch {
			fmt.Fprintf(c.out, "\nWord %d of %d  %s\n", s.Index+1, s.Total(), progressBar(s.Index+1, s.Total()))
			fmt.Fprintf(c.out, "Definition: \"%s\"\n", word.Definition)
			fmt.Fprintf(c.out, "Type your answer: ")
		} else if s.Outcome == game.OutcomeIncorrect && prev.Outcome != game.OutcomeIncorrect {
			fmt.Fprintf(c.out, "Not quite! Try again: ")
		}
		if s.HintVisible && !prev.HintVisible {
			fmt.Fprintf(c.out, "\nHint: %s\n", word.Hint)
		}

	case game.PhaseResults:
		if prev.Phase != game.PhaseResults {
			fmt.Fprintf(c.out, "\n%s\n", s.Rating())
			fmt.Fprintf(c.out, "Words correct: %d/%d\n", s.FinalScore, s.Total())
			fmt.Fprintf(c.out, "Play again? [Y/n] ")
		}
	}
}

// Notify implements game.Presenter
func (c *Console) Notify(n game.Notice) {
	c.printf("\n%s\nPress Enter to try again.\n", n)
}

// Celebrate implements game.Presenter
func (c *Console) Celebrate() {
	c.printf("AMAZING! *\n")
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

func progressBar(done, total int) string {
	if total <= 0 {
		return ""
	}
	const width = 20
	filled := done * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
