package words

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ParseWords decodes a generator response into spelling words.
//
// The payload may be a bare JSON array or an object holding the array under
// "words". Anything that cannot be read as that shape, including a single
// item with a missing or non-string field, yields an empty slice instead of
// an error. Callers treat an empty batch as a failed generation.
func ParseWords(text string) []SpellingWord {
	raw := stripCodeFence(text)
	if raw == "" {
		return nil
	}

	var items []json.RawMessage
	if strings.HasPrefix(raw, "{") {
		var wrapper struct {
			Words []json.RawMessage `json:"words"`
		}
		if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
			logParseFailure(err, raw)
			return nil
		}
		items = wrapper.Words
	} else if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logParseFailure(err, raw)
		return nil
	}

	result := make([]SpellingWord, 0, len(items))
	for i, item := range items {
		var w SpellingWord
		if err := json.Unmarshal(item, &w); err != nil {
			logParseFailure(fmt.Errorf("item %d: %w", i, err), raw)
			return nil
		}
		w = trimWord(w)
		if !w.Valid() {
			logParseFailure(fmt.Errorf("item %d: missing required field", i), raw)
			return nil
		}
		result = append(result, w)
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// stripCodeFence removes a surrounding markdown code fence some models add
// despite being asked for plain JSON
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		return ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func trimWord(w SpellingWord) SpellingWord {
	return SpellingWord{
		Word:       strings.TrimSpace(w.Word),
		Definition: strings.TrimSpace(w.Definition),
		Hint:       strings.TrimSpace(w.Hint),
		Category:   strings.TrimSpace(w.Category),
	}
}

func logParseFailure(err error, raw string) {
	const maxRaw = 200
	if len(raw) > maxRaw {
		raw = raw[:maxRaw] + "..."
	}
	fmt.Fprintf(os.Stderr, "Failed to parse words: %v\nRaw response: %s\n", err, raw)
}
