// Package gui provides the fyne desktop front end of proplay. The window has
// three screens, one per game phase, and a log panel mirroring stdout and
// stderr. Application implements game.Presenter; every presenter call is
// moved onto the fyne main goroutine with fyne.Do.
package gui
