package processor

import (
	"context"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/proplay/internal/audio"
	"codeberg.org/snonux/proplay/internal/breaker"
	"codeberg.org/snonux/proplay/internal/cli"
	"codeberg.org/snonux/proplay/internal/console"
	"codeberg.org/snonux/proplay/internal/game"
	"codeberg.org/snonux/proplay/internal/gui"
	"codeberg.org/snonux/proplay/internal/models"
	"codeberg.org/snonux/proplay/internal/words"
)

// Processor assembles the providers for one run of the program
type Processor struct {
	flags *cli.Flags

	theme      words.Theme
	difficulty words.Difficulty

	generator words.Generator
	speech    audio.Synthesizer // nil when pronunciation is off
	player    audio.Player
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:      flags,
		theme:      words.Animals,
		difficulty: words.Easy,
		player:     audio.NopPlayer{},
	}
}

// Setup reads the configuration and creates all providers. A missing
// pronunciation provider is a warning, a missing word generator is fatal.
func (p *Processor) Setup(ctx context.Context) error {
	theme, difficulty, err := cli.GameSelection()
	if err != nil {
		return err
	}
	p.theme, p.difficulty = theme, difficulty

	genConfig := cli.GeneratorConfig()
	gen, err := words.NewGenerator(ctx, genConfig)
	if err != nil {
		return fmt.Errorf("failed to create word generator: %w", err)
	}
	p.generator = breaker.WrapGenerator(gen, breaker.DefaultConfig("words"))

	audioConfig := cli.AudioConfig(p.flags.NoAudio)
	speech, err := audio.NewSynthesizer(ctx, audioConfig)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: pronunciation disabled: %v\n", err)
	case speech != nil:
		p.speech = breaker.WrapSynthesizer(speech, breaker.DefaultConfig("audio"))
	}

	if p.speech != nil {
		p.player = newPlayer()
	}

	fmt.Printf("Using %s\n", cli.Describe(genConfig, audioConfig))
	return nil
}

// newPlayer prefers direct PortAudio output and falls back to a system
// audio command
func newPlayer() audio.Player {
	if player, err := audio.NewPortAudioPlayer(); err == nil {
		return player
	}
	if err := audio.PlayerAvailable(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no audio player found, words will not be spoken: %v\n", err)
		return audio.NopPlayer{}
	}
	return audio.NewSystemPlayer()
}

// Close releases the audio device, if one was opened
func (p *Processor) Close() error {
	if closer, ok := p.player.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// RunGUIMode launches the GUI and blocks until the window closes
func (p *Processor) RunGUIMode() error {
	guiConfig := &gui.Config{
		Theme:      p.theme,
		Difficulty: p.difficulty,
		Words:      p.generator,
		Player:     p.player,
		CaptureLog: true,
	}
	if p.speech != nil {
		guiConfig.Speech = p.speech
	}

	app := gui.New(guiConfig)
	app.Run()
	return nil
}

// RunConsoleMode plays in the terminal until the player quits or ctx ends
func (p *Processor) RunConsoleMode(ctx context.Context, in io.Reader, out io.Writer) error {
	c := console.New(in, out)

	opts := game.Options{
		Words:     p.generator,
		Player:    p.player,
		Presenter: c,
	}
	if p.speech != nil {
		opts.Speech = p.speech
	}

	m := game.NewMachine(opts)
	defer m.Close()

	return c.Run(ctx, m, p.theme, p.difficulty)
}

// ListModels prints the models usable with the configured API keys
func (p *Processor) ListModels(ctx context.Context, out io.Writer) error {
	return models.NewLister(cli.ModelsConfig(), out).ListAvailableModels(ctx)
}
