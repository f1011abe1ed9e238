// Package cli provides command-line interface setup and configuration
// for proplay. It handles flag parsing, command creation, and turning the
// viper configuration into provider configs for the words and audio
// packages.
package cli
