package audio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer implements Synthesizer for OpenAI TTS. It requests the
// raw "pcm" response format, which is 24 kHz 16-bit little-endian mono.
type OpenAISynthesizer struct {
	client *openai.Client
	config *Config
}

// NewOpenAISynthesizer creates a new OpenAI TTS provider
func NewOpenAISynthesizer(config *Config) (Synthesizer, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	defaults := DefaultProviderConfig()
	if config.OpenAIModel == "" {
		config.OpenAIModel = defaults.OpenAIModel
	}
	if config.OpenAIVoice == "" {
		config.OpenAIVoice = defaults.OpenAIVoice
	}
	if config.OpenAISpeed == 0 {
		config.OpenAISpeed = defaults.OpenAISpeed
	}

	return &OpenAISynthesizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Pronounce generates speech for the word and decodes it
func (p *OpenAISynthesizer) Pronounce(ctx context.Context, word string) (*Buffer, error) {
	if err := ValidateWord(word); err != nil {
		return nil, err
	}

	text := PrepareText(word)
	fmt.Printf("OpenAI TTS: Using model '%s' with voice '%s' at speed %.2f\n", p.config.OpenAIModel, p.config.OpenAIVoice, p.config.OpenAISpeed)

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: openai.SpeechResponseFormat("pcm"),
	}

	// Instructions are only understood by the gpt-4o family
	if p.config.OpenAIInstruction != "" && strings.HasPrefix(p.config.OpenAIModel, "gpt-4o") {
		req.Instructions = p.config.OpenAIInstruction
	}

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "does not have access to model") && strings.HasPrefix(p.config.OpenAIModel, "gpt-4o") {
			return nil, fmt.Errorf("OpenAI TTS API error: %w\nNote: The %s model requires access. Try using --openai-tts-model tts-1 instead", err, p.config.OpenAIModel)
		}
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	raw, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrUnavailable
	}

	return DecodePCM(raw, SampleRate, Channels)
}

// Name returns the provider name
func (p *OpenAISynthesizer) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAISynthesizer) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// A test call would cost credits, so only the key is checked
	return nil
}
