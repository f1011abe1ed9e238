// Package processor wires proplay together. It turns the command-line
// configuration into a word generator, a pronunciation provider and a
// player, guards the remote ones with circuit breakers, and runs a game
// session in the GUI or the terminal.
package processor
