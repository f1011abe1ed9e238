// Package models lists the Gemini and OpenAI models usable for word
// generation and pronunciation with the configured API keys.
package models
