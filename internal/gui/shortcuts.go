package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/proplay/internal/game"
)

// setupKeyboardShortcuts binds single-key shortcuts. They are ignored while
// the answer entry has focus so that every letter can be typed.
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(a.handleRune)

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			a.window.Canvas().Unfocus()
		case fyne.KeyReturn, fyne.KeyEnter:
			switch a.last.Phase {
			case game.PhaseHome:
				a.onStart()
			case game.PhasePlaying:
				a.window.Canvas().Focus(a.answerEntry)
			case game.PhaseResults:
				a.onPlayAgain()
			}
		}
	})
}

func (a *Application) handleRune(r rune) {
	if a.window.Canvas().Focused() == a.answerEntry {
		return
	}

	switch r {
	case 's', 'S':
		if a.last.Phase == game.PhaseHome && !a.startButton.Disabled() {
			a.onStart()
		}
	case 'l', 'L':
		if a.last.Phase == game.PhasePlaying && !a.listenButton.Disabled() {
			a.machine.Listen()
		}
	case 'h', 'H':
		if a.last.Phase == game.PhasePlaying {
			a.machine.ToggleHint()
		}
	case 'a', 'A':
		if a.last.Phase == game.PhasePlaying {
			a.window.Canvas().Focus(a.answerEntry)
		}
	case 'p', 'P':
		if a.last.Phase == game.PhaseResults {
			a.onPlayAgain()
		}
	case 'r', 'R':
		a.onRestart()
	case '?':
		a.onShowHotkeys()
	case 'q', 'Q':
		a.window.Close()
	}
}

// onShowHotkeys displays a dialog with all available keyboard shortcuts
func (a *Application) onShowHotkeys() {
	hotkeys := `## Home
**s** Start quest  
**Enter** Start quest  

## Playing
**a** Focus answer field  
**Enter** Check answer  
**l** Listen to the word  
**h** Show or hide hint  
**Esc** Leave answer field  

## Results
**p** Play again (back to the theme picker)  

## Anywhere
**r** Back to start  
**?** Show hotkeys  
**c** Close dialog  
**q** Quit application`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(420, 420))

	d := dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window)

	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if r == 'c' || r == 'C' {
			d.Hide()
			return
		}
		a.handleRune(r)
	})
	d.SetOnClosed(func() {
		a.window.Canvas().SetOnTypedRune(a.handleRune)
	})

	d.Show()
}
