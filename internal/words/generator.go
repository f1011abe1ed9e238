package words

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Generator produces a batch of spelling words for a theme and difficulty
type Generator interface {
	// RequestWords asks for BatchSize words. A malformed answer yields an
	// empty slice and a nil error; transport failures yield a *TransportError.
	RequestWords(ctx context.Context, theme Theme, difficulty Difficulty) ([]SpellingWord, error)

	// Name returns the generator name
	Name() string

	// IsAvailable checks if the generator is properly configured
	IsAvailable() error
}

// GenerationError reports a generation that produced no usable words
type GenerationError struct {
	Theme      Theme
	Difficulty Difficulty
	Reason     string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("no words generated for %s (%s): %s", e.Theme, e.Difficulty, e.Reason)
}

// TransportError reports that the upstream service could not be reached or
// rejected the request
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether err is, or wraps, a *GenerationError
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// Config holds configuration for word generators
type Config struct {
	Provider string // "gemini", "openai" or "file"
	Fallback string // optional secondary provider

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string // overrides the API endpoint, empty for the default

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // overrides the API endpoint, empty for the default

	WordsFile string // word list used by the "file" provider
}

// DefaultGeneratorConfig returns default configuration
func DefaultGeneratorConfig() *Config {
	return &Config{
		Provider:    "gemini",
		GeminiModel: "gemini-3-flash-preview",
		OpenAIModel: "gpt-4o-mini",
	}
}

// NewGenerator creates the generator selected by the configuration,
// wrapped with the fallback provider when one is configured
func NewGenerator(ctx context.Context, config *Config) (Generator, error) {
	if config == nil {
		config = DefaultGeneratorConfig()
	}

	primary, err := newSingleGenerator(ctx, config.Provider, config)
	if err != nil {
		return nil, err
	}
	if config.Fallback == "" || config.Fallback == config.Provider {
		return primary, nil
	}

	fallback, err := newSingleGenerator(ctx, config.Fallback, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: fallback word generator disabled: %v\n", err)
		return primary, nil
	}
	return NewGeneratorWithFallback(primary, fallback), nil
}

func newSingleGenerator(ctx context.Context, provider string, config *Config) (Generator, error) {
	switch provider {
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiGenerator(ctx, config)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIGenerator(config)

	case "file":
		if config.WordsFile == "" {
			return nil, fmt.Errorf("words file is required for the file provider")
		}
		return NewFileGenerator(config.WordsFile), nil

	default:
		return nil, fmt.Errorf("unknown word provider: %s", provider)
	}
}

// GeneratorWithFallback wraps a primary generator with a fallback option
type GeneratorWithFallback struct {
	primary  Generator
	fallback Generator
}

// NewGeneratorWithFallback creates a generator that asks the secondary when
// the primary fails or comes back empty
func NewGeneratorWithFallback(primary, fallback Generator) Generator {
	return &GeneratorWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// RequestWords tries the primary generator first
func (g *GeneratorWithFallback) RequestWords(ctx context.Context, theme Theme, difficulty Difficulty) ([]SpellingWord, error) {
	result, err := g.primary.RequestWords(ctx, theme, difficulty)
	if err == nil && len(result) > 0 {
		return result, nil
	}

	if err != nil {
		fmt.Printf("Primary word generator (%s) failed: %v. Falling back to %s\n",
			g.primary.Name(), err, g.fallback.Name())
	} else {
		fmt.Printf("Primary word generator (%s) returned no words. Falling back to %s\n",
			g.primary.Name(), g.fallback.Name())
	}

	return g.fallback.RequestWords(ctx, theme, difficulty)
}

// Name returns the generator name
func (g *GeneratorWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", g.primary.Name(), g.fallback.Name())
}

// IsAvailable checks if at least one generator is available
func (g *GeneratorWithFallback) IsAvailable() error {
	primaryErr := g.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := g.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both generators unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

// BuildPrompt returns the instruction sent to text models
func BuildPrompt(theme Theme, difficulty Difficulty) string {
	return fmt.Sprintf(`Generate a list of %d spelling words for children.
Theme: %s
Difficulty: %s
Include a simple definition and a short hint for each word.`, BatchSize, theme, difficulty)
}
