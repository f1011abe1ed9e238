package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Config holds the credentials used for listing
type Config struct {
	GeminiKey     string
	GeminiBaseURL string
	OpenAIKey     string
	OpenAIBaseURL string
}

// Lister handles listing available models
type Lister struct {
	config Config
	out    io.Writer
}

// NewLister creates a new model lister printing to out
func NewLister(config Config, out io.Writer) *Lister {
	return &Lister{config: config, out: out}
}

// Catalog is a set of model IDs split by purpose
type Catalog struct {
	Text   []string
	Speech []string
}

// ListAvailableModels prints the models of every provider with a key
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.config.GeminiKey == "" && l.config.OpenAIKey == "" {
		return fmt.Errorf("no API key found. Set GEMINI_API_KEY or OPENAI_API_KEY, or configure one in .proplay.yaml")
	}

	var errs []error
	if l.config.GeminiKey != "" {
		catalog, err := l.GeminiModels(ctx)
		if err != nil {
			errs = append(errs, err)
		} else {
			l.print("Gemini", catalog)
		}
	}
	if l.config.OpenAIKey != "" {
		catalog, err := l.OpenAIModels(ctx)
		if err != nil {
			errs = append(errs, err)
		} else {
			l.print("OpenAI", catalog)
		}
	}
	return errors.Join(errs...)
}

// GeminiModels lists Gemini models
func (l *Lister) GeminiModels(ctx context.Context) (Catalog, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      l.config.GeminiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: l.config.GeminiBaseURL},
	})
	if err != nil {
		return Catalog{}, fmt.Errorf("create genai client: %w", err)
	}

	var ids []string
	page, err := client.Models.List(ctx, &genai.ListModelsConfig{})
	for {
		if errors.Is(err, genai.ErrPageDone) {
			break
		}
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to list Gemini models: %w", err)
		}
		for _, model := range page.Items {
			if model != nil {
				ids = append(ids, strings.TrimPrefix(model.Name, "models/"))
			}
		}
		if page.NextPageToken == "" {
			break
		}
		page, err = page.Next(ctx)
	}

	return categorize(ids, func(id string) bool { return strings.Contains(id, "gemini") }), nil
}

// OpenAIModels lists OpenAI models
func (l *Lister) OpenAIModels(ctx context.Context) (Catalog, error) {
	clientConfig := openai.DefaultConfig(l.config.OpenAIKey)
	if l.config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = l.config.OpenAIBaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	models, err := client.ListModels(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to list OpenAI models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	return categorize(ids, func(id string) bool {
		return strings.Contains(id, "gpt") || strings.Contains(id, "chat")
	}), nil
}

// categorize splits ids into speech models and text models accepted by isText
func categorize(ids []string, isText func(string) bool) Catalog {
	var catalog Catalog
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts") || strings.Contains(id, "audio"):
			catalog.Speech = append(catalog.Speech, id)
		case strings.Contains(id, "embedding") || strings.Contains(id, "image") || strings.Contains(id, "dall-e"):
		case isText(id):
			catalog.Text = append(catalog.Text, id)
		}
	}
	sort.Strings(catalog.Text)
	sort.Strings(catalog.Speech)
	return catalog
}

func (l *Lister) print(provider string, catalog Catalog) {
	fmt.Fprintf(l.out, "Available %s Models:\n", provider)

	fmt.Fprintln(l.out, "\nWord generation models:")
	if len(catalog.Text) == 0 {
		fmt.Fprintln(l.out, "  No text models found")
	}
	for _, model := range catalog.Text {
		fmt.Fprintf(l.out, "  %s\n", model)
	}

	fmt.Fprintln(l.out, "\nText-to-Speech (TTS) models:")
	if len(catalog.Speech) == 0 {
		fmt.Fprintln(l.out, "  No TTS models found")
	}
	for _, model := range catalog.Speech {
		fmt.Fprintf(l.out, "  %s\n", model)
	}
	fmt.Fprintln(l.out)
}
