package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Synthesizer speaks a word and returns the decoded pronunciation
type Synthesizer interface {
	// Pronounce returns the spoken word. A nil buffer with a nil error means
	// no audio is available for this word.
	Pronounce(ctx context.Context, word string) (*Buffer, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// ErrUnavailable marks a pronunciation the provider could not produce
var ErrUnavailable = errors.New("pronunciation unavailable")

// Pronounce asks s for the word and folds every failure into "no audio".
// Absence of audio is a normal outcome and is only logged.
func Pronounce(ctx context.Context, s Synthesizer, word string) *Buffer {
	if s == nil {
		return nil
	}
	buf, err := s.Pronounce(ctx, word)
	if err != nil {
		var decodeErr *DecodeError
		switch {
		case errors.As(err, &decodeErr):
			fmt.Fprintf(os.Stderr, "Warning: could not decode pronunciation of '%s': %v\n", word, err)
		case errors.Is(err, context.Canceled):
		default:
			fmt.Fprintf(os.Stderr, "Warning: pronunciation of '%s' unavailable: %v\n", word, err)
		}
		return nil
	}
	if buf.Frames() == 0 {
		return nil
	}
	return buf
}

// Config holds common configuration for pronunciation providers
type Config struct {
	Provider string // "gemini", "openai", "espeak" or "none"
	Fallback string // optional secondary provider

	// Gemini-specific settings
	GeminiKey     string
	GeminiModel   string // e.g. "gemini-2.5-flash-preview-tts"
	GeminiVoice   string // prebuilt voice, e.g. "Kore"
	GeminiBaseURL string

	// OpenAI-specific settings
	OpenAIKey         string
	OpenAIModel       string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice       string  // "alloy", "coral", "nova", ...
	OpenAISpeed       float64 // 0.25 to 4.0
	OpenAIInstruction string  // Voice instructions for gpt-4o-mini-tts model
	OpenAIBaseURL     string

	// espeak-ng settings
	ESpeak *ESpeakConfig
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:          "gemini",
		GeminiModel:       "gemini-2.5-flash-preview-tts",
		GeminiVoice:       "Kore",
		OpenAIModel:       "gpt-4o-mini-tts",
		OpenAIVoice:       "coral",
		OpenAISpeed:       0.9,
		OpenAIInstruction: "Speak slowly and clearly for a child learning to spell.",
		ESpeak:            DefaultESpeakConfig(),
	}
}

// NewSynthesizer creates the provider selected by the configuration. The
// "none" provider returns a nil Synthesizer and no error.
func NewSynthesizer(ctx context.Context, config *Config) (Synthesizer, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	primary, err := newSingleSynthesizer(ctx, config.Provider, config)
	if err != nil || primary == nil {
		return primary, err
	}
	if config.Fallback == "" || config.Fallback == config.Provider || config.Fallback == "none" {
		return primary, nil
	}

	fallback, err := newSingleSynthesizer(ctx, config.Fallback, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: fallback pronunciation provider disabled: %v\n", err)
		return primary, nil
	}
	return NewSynthesizerWithFallback(primary, fallback), nil
}

func newSingleSynthesizer(ctx context.Context, provider string, config *Config) (Synthesizer, error) {
	switch provider {
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiSynthesizer(ctx, config)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAISynthesizer(config)

	case "espeak":
		return NewESpeakSynthesizer(config.ESpeak)

	case "none", "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", provider)
	}
}

// SynthesizerWithFallback wraps a primary provider with a fallback option
type SynthesizerWithFallback struct {
	primary  Synthesizer
	fallback Synthesizer
}

// NewSynthesizerWithFallback creates a provider that falls back to secondary
// if primary fails or has no audio
func NewSynthesizerWithFallback(primary, fallback Synthesizer) Synthesizer {
	return &SynthesizerWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Pronounce tries primary provider first, falls back to secondary
func (p *SynthesizerWithFallback) Pronounce(ctx context.Context, word string) (*Buffer, error) {
	buf, err := p.primary.Pronounce(ctx, word)
	if err == nil && buf.Frames() > 0 {
		return buf, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fmt.Printf("Primary provider (%s) had no audio (%v). Falling back to %s\n",
		p.primary.Name(), err, p.fallback.Name())
	return p.fallback.Pronounce(ctx, word)
}

// Name returns the provider name
func (p *SynthesizerWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *SynthesizerWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
