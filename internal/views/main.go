package views

import (
	"guessing-game/internal/i18n"
	"guessing-game/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MainView is the single game window. Every setter hops onto the UI
// goroutine through fyne.Do so callers may use it from anywhere.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	header        *components.Header
	board         *components.Board
	statusBar     *components.StatusBar
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.header = components.NewHeader(
		i18n.T("app_title"),
		i18n.T("mode_hard"),
		i18n.T("button_start"),
	)
	mv.board = components.NewBoard(components.Labels{
		Message:     i18n.T("message_ready"),
		Placeholder: i18n.T("entry_placeholder"),
		Guess:       i18n.T("button_guess"),
		Stop:        i18n.T("button_stop"),
	})
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.header.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.board.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters, called by the controller

func (mv *MainView) SetStartHandler(handler func()) {
	mv.header.SetStartHandler(handler)
}

func (mv *MainView) SetModeChangeHandler(handler func(hard bool)) {
	mv.header.SetModeChangeHandler(handler)
}

func (mv *MainView) SetGuessHandler(handler func(text string)) {
	mv.board.SetGuessHandler(handler)
}

func (mv *MainView) SetStopHandler(handler func()) {
	mv.board.SetStopHandler(handler)
}

// UI update methods, called by the controller

// SetTitle updates both the header title and the window title
func (mv *MainView) SetTitle(title string) {
	fyne.Do(func() {
		mv.header.SetTitle(title)
		mv.window.SetTitle(title)
	})
}

func (mv *MainView) SetHard(hard bool) {
	fyne.Do(func() {
		mv.header.SetHard(hard)
	})
}

// SetPlaying enables the board and disables Start, or the reverse
func (mv *MainView) SetPlaying(playing bool) {
	fyne.Do(func() {
		mv.board.SetEnabled(playing)
		mv.header.SetStartEnabled(!playing)
		if playing {
			mv.window.Canvas().Focus(mv.board.Entry())
		}
	})
}

func (mv *MainView) SetMessage(message string) {
	fyne.Do(func() {
		mv.board.SetMessage(message)
	})
}

func (mv *MainView) SetStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

func (mv *MainView) Show() {
	mv.window.Show()
}

// Accessors used by tests and the application shell

func (mv *MainView) Header() *components.Header {
	return mv.header
}

func (mv *MainView) Board() *components.Board {
	return mv.board
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
