package words

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// FileEntry is one word read from a local word list
type FileEntry struct {
	Theme      Theme // empty when the entry is not inside a theme section
	Word       string
	Definition string
	Hint       string
}

// ReadWordsFile reads a word list and returns its entries.
// Supports formats:
//   - "[Animals]" starts a theme section for the following lines
//   - "word = definition" (a hint is derived from the spelling)
//   - "word = definition | hint"
//   - lines starting with '#' are comments
//
// Lines without a definition are ignored.
func ReadWordsFile(filename string) ([]FileEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read words file: %w", err)
	}

	var entries []FileEntry
	var section Theme

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			theme, err := ParseTheme(strings.Trim(line, "[]"))
			if err != nil {
				return nil, fmt.Errorf("invalid section %s: %w", line, err)
			}
			section = theme
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		definition := strings.TrimSpace(parts[1])
		hint := ""
		if i := strings.LastIndex(definition, "|"); i >= 0 {
			hint = strings.TrimSpace(definition[i+1:])
			definition = strings.TrimSpace(definition[:i])
		}
		if word == "" || definition == "" {
			continue
		}

		entries = append(entries, FileEntry{
			Theme:      section,
			Word:       word,
			Definition: definition,
			Hint:       hint,
		})
	}

	return entries, nil
}

// DeriveHint builds a hint from the spelling itself
func DeriveHint(word string) string {
	first, _ := utf8.DecodeRuneInString(word)
	return fmt.Sprintf("It starts with '%c' and has %d letters.", first, utf8.RuneCountInString(word))
}

// FileGenerator implements Generator from a local word list. JSON files are
// read with ParseWords, anything else with ReadWordsFile.
type FileGenerator struct {
	path    string
	shuffle func(n int, swap func(i, j int))
}

// NewFileGenerator creates a generator reading words from path
func NewFileGenerator(path string) *FileGenerator {
	return &FileGenerator{
		path:    path,
		shuffle: rand.Shuffle,
	}
}

// RequestWords picks up to BatchSize words for the theme
func (g *FileGenerator) RequestWords(ctx context.Context, theme Theme, difficulty Difficulty) ([]SpellingWord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates, err := g.load(theme)
	if err != nil {
		return nil, &GenerationError{Theme: theme, Difficulty: difficulty, Reason: err.Error()}
	}

	g.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > BatchSize {
		candidates = candidates[:BatchSize]
	}

	fmt.Printf("Word list: picked %d words about %s from %s\n", len(candidates), theme, filepath.Base(g.path))
	return candidates, nil
}

func (g *FileGenerator) load(theme Theme) ([]SpellingWord, error) {
	if strings.EqualFold(filepath.Ext(g.path), ".json") {
		data, err := os.ReadFile(g.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read words file: %w", err)
		}
		all := ParseWords(string(data))
		matching := lo.Filter(all, func(w SpellingWord, _ int) bool {
			return strings.EqualFold(w.Category, string(theme))
		})
		if len(matching) == 0 {
			return all, nil
		}
		return matching, nil
	}

	entries, err := ReadWordsFile(g.path)
	if err != nil {
		return nil, err
	}

	entries = lo.Filter(entries, func(e FileEntry, _ int) bool {
		return e.Theme == "" || e.Theme == theme
	})
	return lo.Map(entries, func(e FileEntry, _ int) SpellingWord {
		hint := e.Hint
		if hint == "" {
			hint = DeriveHint(e.Word)
		}
		return SpellingWord{
			Word:       e.Word,
			Definition: e.Definition,
			Hint:       hint,
			Category:   string(theme),
		}
	}), nil
}

// Name returns the generator name
func (g *FileGenerator) Name() string {
	return "file"
}

// IsAvailable checks that the word list exists
func (g *FileGenerator) IsAvailable() error {
	if _, err := os.Stat(g.path); err != nil {
		return fmt.Errorf("words file not available: %w", err)
	}
	return nil
}
