package gui

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/proplay/internal"
	"codeberg.org/snonux/proplay/internal/audio"
	"codeberg.org/snonux/proplay/internal/game"
	"codeberg.org/snonux/proplay/internal/words"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Home screen
	homeScreen      *fyne.Container
	themeGroup      *widget.RadioGroup
	difficultyGroup *widget.RadioGroup
	startButton     *ttwidget.Button

	// Play screen
	playScreen      *fyne.Container
	progressLabel   *widget.Label
	progressBar     *widget.ProgressBar
	listenButton    *ttwidget.Button
	definitionLabel *widget.Label
	answerEntry     *CustomEntry
	submitButton    *ttwidget.Button
	hintButton      *ttwidget.Button
	hintLabel       *widget.Label
	feedbackLabel   *widget.Label
	flash           *canvas.Rectangle

	// Results screen
	resultsScreen *fyne.Container
	ratingLabel   *widget.Label
	scoreLabel    *widget.Label
	againButton   *ttwidget.Button

	logViewer   *LogViewer
	statusLabel *widget.Label

	// State management
	machine    *game.Machine
	config     *Config
	last       game.State
	syncing    bool // set while widgets are updated from a State
	theme      words.Theme
	difficulty words.Difficulty

	closeOnce sync.Once
}

// Config holds GUI application configuration
type Config struct {
	Theme      words.Theme
	Difficulty words.Difficulty

	Words  game.WordSource
	Speech audio.Synthesizer // nil disables the listen button
	Player audio.Player

	// CaptureLog mirrors stdout and stderr in the log panel
	CaptureLog bool
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:      words.Animals,
		Difficulty: words.Easy,
		Player:     audio.NopPlayer{},
		CaptureLog: true,
	}
}

// New creates a new GUI application
func New(config *Config) *Application {
	myApp := app.NewWithID("org.codeberg.snonux.proplay")
	myApp.SetIcon(GetAppIcon())
	return newApplication(myApp, config, nil)
}

func newApplication(fyneApp fyne.App, config *Config, scheduler game.Scheduler) *Application {
	if config == nil {
		config = DefaultConfig()
	}
	defaults := DefaultConfig()
	if config.Theme == "" {
		config.Theme = defaults.Theme
	}
	if config.Difficulty == "" {
		config.Difficulty = defaults.Difficulty
	}

	a := &Application{
		app:        fyneApp,
		config:     config,
		last:       game.NewState(),
		theme:      config.Theme,
		difficulty: config.Difficulty,
	}
	a.machine = game.NewMachine(game.Options{
		Words:     config.Words,
		Speech:    config.Speech,
		Player:    config.Player,
		Presenter: a,
		Scheduler: scheduler,
	})

	a.setupUI()
	a.render(a.last)
	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Proplay Quest v%s", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(720, 760))

	a.homeScreen = a.buildHomeScreen()
	a.playScreen = a.buildPlayScreen()
	a.resultsScreen = a.buildResultsScreen()

	a.logViewer = NewLogViewer()
	a.statusLabel = widget.NewLabel("Ready")

	restartButton := ttwidget.NewButtonWithIcon("", theme.HomeIcon(), a.onRestart)
	helpButton := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)
	toolbar := container.NewHBox(restartButton, helpButton, widget.NewSeparator(), a.statusLabel)

	screens := container.NewStack(a.homeScreen, a.playScreen, a.resultsScreen)
	content := container.NewBorder(
		toolbar,
		a.logViewer,
		nil, nil,
		container.NewPadded(screens),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()
	restartButton.SetToolTip("Back to start (r)")
	helpButton.SetToolTip("Show hotkeys (?)")

	a.window.SetOnClosed(a.close)
	a.setupKeyboardShortcuts()
}

// Run starts the GUI application
func (a *Application) Run() {
	if a.config.CaptureLog {
		a.logViewer.StartCapture()
		defer a.logViewer.StopCapture()
	}
	a.window.ShowAndRun()
	a.close()
}

func (a *Application) close() {
	a.closeOnce.Do(a.machine.Close)
}

// Render implements game.Presenter
func (a *Application) Render(s game.State) {
	fyne.Do(func() { a.render(s) })
}

// Notify implements game.Presenter
func (a *Application) Notify(n game.Notice) {
	fyne.Do(func() {
		a.statusLabel.SetText(n.String())
		dialog.ShowInformation("Oops!", n.String(), a.window)
	})
}

// Celebrate implements game.Presenter
func (a *Application) Celebrate() {
	fyne.Do(a.celebrate)
}

func (a *Application) celebrate() {
	a.feedbackLabel.SetText("AMAZING!")
	anim := canvas.NewColorRGBAAnimation(
		color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xcc},
		color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0x00},
		time.Duration(float64(game.AdvanceDelay)*0.75),
		func(c color.Color) {
			a.flash.FillColor = c
			a.flash.Refresh()
		},
	)
	anim.Start()
}

// render updates every widget from s. Runs on the fyne main goroutine.
func (a *Application) render(s game.State) {
	prev := a.last
	a.last = s
	a.syncing = true
	defer func() { a.syncing = false }()

	a.showScreen(s.Phase)

	switch s.Phase {
	case game.PhaseHome:
		a.renderHome(s)
	case game.PhasePlaying:
		a.renderPlaying(prev, s)
	case game.PhaseResults:
		a.renderResults(s)
	}
}

func (a *Application) showScreen(phase game.Phase) {
	screens := map[game.Phase]*fyne.Container{
		game.PhaseHome:    a.homeScreen,
		game.PhasePlaying: a.playScreen,
		game.PhaseResults: a.resultsScreen,
	}
	for p, screen := range screens {
		if p == phase {
			screen.Show()
		} else {
			screen.Hide()
		}
	}
}

func (a *Application) renderHome(s game.State) {
	if s.Loading {
		a.startButton.SetText("Fetching Words...")
		a.startButton.Disable()
		a.themeGroup.Disable()
		a.difficultyGroup.Disable()
		a.statusLabel.SetText(fmt.Sprintf("Preparing your adventure: %s, %s", s.Theme, s.Difficulty.Label()))
		return
	}

	a.startButton.SetText("Start My Quest!")
	a.startButton.Enable()
	a.themeGroup.Enable()
	a.difficultyGroup.Enable()
	a.themeGroup.SetSelected(string(a.theme))
	a.difficultyGroup.SetSelected(a.difficulty.Label())
	if a.statusLabel.Text != game.NoticeRetry.String() && a.statusLabel.Text != game.NoticeConnection.String() {
		a.statusLabel.SetText("Ready")
	}
}

func (a *Application) renderPlaying(prev, s game.State) {
	word, _ := s.CurrentWord()
	newWord := prev.Phase != game.PhasePlaying || prev.Index != s.Index || prev.Epoch != s.Epoch

	a.progressLabel.SetText(fmt.Sprintf("Word %d of %d", s.Index+1, s.Total()))
	a.progressBar.SetValue(float64(s.Index+1) / float64(s.Total()))
	a.definitionLabel.SetText(fmt.Sprintf("\"%s\"", word.Definition))
	a.statusLabel.SetText(fmt.Sprintf("%s - %s", s.Theme, s.Difficulty.Label()))

	if a.answerEntry.Text != s.Input {
		a.answerEntry.SetText(s.Input)
	}

	switch s.Outcome {
	case game.OutcomeCorrect:
		a.feedbackLabel.SetText("AMAZING!")
		a.answerEntry.Disable()
		a.submitButton.Disable()
	case game.OutcomeIncorrect:
		a.feedbackLabel.SetText("Not quite! Try again.")
		a.answerEntry.Enable()
		a.submitButton.Disable()
	default:
		a.feedbackLabel.SetText("")
		a.answerEntry.Enable()
		a.submitButton.Enable()
	}

	if s.HintVisible {
		a.hintLabel.SetText("Hint: " + word.Hint)
		a.hintLabel.Show()
		a.hintButton.SetText("Hide Hint")
	} else {
		a.hintLabel.Hide()
		a.hintButton.SetText("Need a Hint?")
	}

	if s.Speaking || a.config.Speech == nil {
		a.listenButton.Disable()
	} else {
		a.listenButton.Enable()
	}

	if newWord {
		a.window.Canvas().Focus(a.answerEntry)
	}
}

func (a *Application) renderResults(s game.State) {
	a.ratingLabel.SetText(s.Rating())
	a.scoreLabel.SetText(fmt.Sprintf("%d / %d", s.FinalScore, s.Total()))
	a.statusLabel.SetText("Quest complete")
}

func (a *Application) onStart() {
	a.statusLabel.SetText("Ready")
	a.machine.Start(a.theme, a.difficulty)
}

func (a *Application) onSubmit() {
	a.machine.Submit(a.answerEntry.Text)
}

func (a *Application) onAnswerChanged(text string) {
	if a.syncing {
		return
	}
	a.machine.SetInput(text)
}

func (a *Application) onRestart() {
	a.machine.Restart()
}

// onPlayAgain returns to the home screen so a new theme can be picked
func (a *Application) onPlayAgain() {
	a.machine.Restart()
}
