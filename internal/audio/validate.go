package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateWord checks that the text is something a speech engine can say
func ValidateWord(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			return nil
		}
	}

	return fmt.Errorf("text must contain letters")
}

// PrepareText removes punctuation that speech engines would read aloud
func PrepareText(text string) string {
	cleaned := strings.TrimSpace(text)

	punctuationToRemove := []string{"!", "?", ".", ",", ";", ":", "\"", "(", ")", "[", "]", "{", "}"}
	for _, punct := range punctuationToRemove {
		cleaned = strings.ReplaceAll(cleaned, punct, "")
	}

	return strings.TrimSpace(cleaned)
}
