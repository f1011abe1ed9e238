package words

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator using the Gemini API
type GeminiGenerator struct {
	client *genai.Client
	config *Config
}

// NewGeminiGenerator creates a new Gemini word generator
func NewGeminiGenerator(ctx context.Context, config *Config) (Generator, error) {
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

	if config.GeminiModel == "" {
		config.GeminiModel = DefaultGeneratorConfig().GeminiModel
	}

	return &GeminiGenerator{
		client: client,
		config: config,
	}, nil
}

// wordListSchema mirrors SpellingWord so the model answers with a bare array
var wordListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"word":       {Type: genai.TypeString},
			"definition": {Type: genai.TypeString},
			"hint":       {Type: genai.TypeString},
			"category":   {Type: genai.TypeString},
		},
		Required: []string{"word", "definition", "hint", "category"},
	},
}

// RequestWords asks Gemini for a batch of words
func (g *GeminiGenerator) RequestWords(ctx context.Context, theme Theme, difficulty Difficulty) ([]SpellingWord, error) {
	fmt.Printf("Gemini: requesting %d %s words about %s (model %s)\n",
		BatchSize, difficulty, theme, g.config.GeminiModel)

	resp, err := g.client.Models.GenerateContent(ctx, g.config.GeminiModel,
		genai.Text(BuildPrompt(theme, difficulty)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   wordListSchema,
		},
	)
	if err != nil {
		return nil, &TransportError{Provider: g.Name(), Err: err}
	}

	return ParseWords(resp.Text()), nil
}

// Name returns the generator name
func (g *GeminiGenerator) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is configured
func (g *GeminiGenerator) IsAvailable() error {
	if g.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
