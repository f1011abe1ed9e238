package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/proplay/internal/words"
)

func (a *Application) buildHomeScreen() *fyne.Container {
	title := widget.NewLabelWithStyle("Proplay Quest", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText
	subtitle := widget.NewLabelWithStyle("Master your spelling with magic words!", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	themes := make([]string, 0, len(words.Themes()))
	for _, t := range words.Themes() {
		themes = append(themes, string(t))
	}
	a.themeGroup = widget.NewRadioGroup(themes, func(selected string) {
		if t, err := words.ParseTheme(selected); err == nil {
			a.theme = t
		}
	})
	a.themeGroup.Required = true

	labels := make([]string, 0, len(words.Difficulties()))
	for _, d := range words.Difficulties() {
		labels = append(labels, d.Label())
	}
	a.difficultyGroup = widget.NewRadioGroup(labels, func(selected string) {
		if d, err := words.ParseDifficulty(selected); err == nil {
			a.difficulty = d
		}
	})
	a.difficultyGroup.Horizontal = true
	a.difficultyGroup.Required = true

	a.startButton = ttwidget.NewButtonWithIcon("Start My Quest!", theme.MediaPlayIcon(), a.onStart)
	a.startButton.Importance = widget.HighImportance

	return container.NewVBox(
		title,
		subtitle,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("1. Pick a Theme", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, a.themeGroup),
		widget.NewLabelWithStyle("2. Choose Difficulty", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.difficultyGroup,
		widget.NewSeparator(),
		a.startButton,
	)
}

func (a *Application) buildPlayScreen() *fyne.Container {
	a.progressLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.progressBar = widget.NewProgressBar()
	a.progressBar.TextFormatter = func() string { return "" }

	a.listenButton = ttwidget.NewButtonWithIcon("Listen", theme.VolumeUpIcon(), func() {
		a.machine.Listen()
	})
	a.listenButton.Importance = widget.HighImportance

	a.definitionLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	a.definitionLabel.Wrapping = fyne.TextWrapWord

	a.answerEntry = NewCustomEntry()
	a.answerEntry.SetPlaceHolder("Type your answer...")
	a.answerEntry.OnChanged = a.onAnswerChanged
	a.answerEntry.OnSubmitted = func(string) { a.onSubmit() }
	a.answerEntry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	a.submitButton = ttwidget.NewButtonWithIcon("Check", theme.ConfirmIcon(), a.onSubmit)
	a.hintButton = ttwidget.NewButtonWithIcon("Need a Hint?", theme.InfoIcon(), func() {
		a.machine.ToggleHint()
	})

	a.hintLabel = widget.NewLabel("")
	a.hintLabel.Wrapping = fyne.TextWrapWord
	a.hintLabel.Hide()

	a.feedbackLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.flash = canvas.NewRectangle(color.Transparent)

	body := container.NewVBox(
		container.NewBorder(nil, nil, nil, a.listenButton, a.progressLabel),
		a.progressBar,
		widget.NewSeparator(),
		a.definitionLabel,
		container.NewBorder(nil, nil, nil, a.submitButton, a.answerEntry),
		a.feedbackLabel,
		container.NewHBox(a.hintButton),
		a.hintLabel,
	)
	return container.NewStack(a.flash, body)
}

func (a *Application) buildResultsScreen() *fyne.Container {
	a.ratingLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.ratingLabel.SizeName = theme.SizeNameHeadingText
	a.scoreLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	a.againButton = ttwidget.NewButtonWithIcon("Play Again", theme.ViewRefreshIcon(), a.onPlayAgain)
	a.againButton.Importance = widget.HighImportance

	return container.NewVBox(
		a.ratingLabel,
		widget.NewLabelWithStyle("You've completed your spelling quest!", fyne.TextAlignCenter, fyne.TextStyle{}),
		a.scoreLabel,
		widget.NewLabelWithStyle("Words Correct", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		widget.NewSeparator(),
		a.againButton,
	)
}

func (a *Application) setupTooltips() {
	a.startButton.SetToolTip("Fetch a new batch of words (s)")
	a.listenButton.SetToolTip("Hear the word (l)")
	a.submitButton.SetToolTip("Check your spelling (Enter)")
	a.hintButton.SetToolTip("Show or hide the hint (h)")
	a.againButton.SetToolTip("Back to the theme picker (p)")
}
