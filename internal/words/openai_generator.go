package words

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements Generator using OpenAI chat completions
type OpenAIGenerator struct {
	client *openai.Client
	config *Config
}

// NewOpenAIGenerator creates a new OpenAI word generator
func NewOpenAIGenerator(config *Config) (Generator, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}
	if config.OpenAIModel == "" {
		config.OpenAIModel = DefaultGeneratorConfig().OpenAIModel
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// RequestWords asks OpenAI for a batch of words in JSON object mode
func (g *OpenAIGenerator) RequestWords(ctx context.Context, theme Theme, difficulty Difficulty) ([]SpellingWord, error) {
	fmt.Printf("OpenAI: requesting %d %s words about %s (model %s)\n",
		BatchSize, difficulty, theme, g.config.OpenAIModel)

	req := openai.ChatCompletionRequest{
		Model: g.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: `You write spelling quizzes for children. Respond only with a JSON object of the form {"words": [{"word": "...", "definition": "...", "hint": "...", "category": "..."}]}.`,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(theme, difficulty),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &TransportError{Provider: g.Name(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, nil
	}

	return ParseWords(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}

// Name returns the generator name
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is configured
func (g *OpenAIGenerator) IsAvailable() error {
	if g.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
