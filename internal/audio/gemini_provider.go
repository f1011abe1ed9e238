package audio

import (
	"context"
	"fmt"
	"mime"
	"strconv"

	"google.golang.org/genai"
)

// GeminiSynthesizer implements Synthesizer with Gemini text-to-speech
type GeminiSynthesizer struct {
	client *genai.Client
	config *Config
}

// NewGeminiSynthesizer creates a new Gemini TTS provider
func NewGeminiSynthesizer(ctx context.Context, config *Config) (Synthesizer, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      config.GeminiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: config.GeminiBaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	defaults := DefaultProviderConfig()
	if config.GeminiModel == "" {
		config.GeminiModel = defaults.GeminiModel
	}
	if config.GeminiVoice == "" {
		config.GeminiVoice = defaults.GeminiVoice
	}

	return &GeminiSynthesizer{
		client: client,
		config: config,
	}, nil
}

// Pronounce asks Gemini to say the word and decodes the returned PCM
func (p *GeminiSynthesizer) Pronounce(ctx context.Context, word string) (*Buffer, error) {
	if err := ValidateWord(word); err != nil {
		return nil, err
	}

	fmt.Printf("Gemini TTS: Using model '%s' with voice '%s'\n", p.config.GeminiModel, p.config.GeminiVoice)

	resp, err := p.client.Models.GenerateContent(ctx, p.config.GeminiModel,
		genai.Text(fmt.Sprintf("Say clearly: The word is %s.", PrepareText(word))),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: p.config.GeminiVoice},
				},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("Gemini TTS API error: %w", err)
	}

	blob := firstInlineData(resp)
	if blob == nil || len(blob.Data) == 0 {
		return nil, ErrUnavailable
	}

	return DecodePCM(blob.Data, sampleRateFromMIME(blob.MIMEType), Channels)
}

func firstInlineData(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil {
		return nil
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil {
				return part.InlineData
			}
		}
	}
	return nil
}

// sampleRateFromMIME reads the rate parameter of "audio/L16;codec=pcm;rate=24000"
func sampleRateFromMIME(mimeType string) int {
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return SampleRate
	}
	rate, err := strconv.Atoi(params["rate"])
	if err != nil || rate <= 0 {
		return SampleRate
	}
	return rate
}

// Name returns the provider name
func (p *GeminiSynthesizer) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is configured
func (p *GeminiSynthesizer) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
