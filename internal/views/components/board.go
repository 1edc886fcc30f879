package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Labels carries the translated texts of the board
type Labels struct {
	Message     string
	Placeholder string
	Guess       string
	Stop        string
}

// Board is the play area: feedback message, guess entry, Guess and Stop.
// It starts disabled.
type Board struct {
	container    *fyne.Container
	messageLabel *widget.Label
	entry        *widget.Entry
	guessButton  *widget.Button
	stopButton   *widget.Button

	guessHandler func(text string)
	stopHandler  func()

	enabled bool
}

func NewBoard(labels Labels) *Board {
	b := &Board{}
	b.createComponents(labels)
	b.buildLayout()
	b.setupEventHandlers()
	b.SetEnabled(false)
	return b
}

func (b *Board) createComponents(labels Labels) {
	b.messageLabel = widget.NewLabel(labels.Message)
	b.messageLabel.Alignment = fyne.TextAlignCenter

	b.entry = widget.NewEntry()
	b.entry.SetPlaceHolder(labels.Placeholder)

	b.guessButton = widget.NewButton(labels.Guess, nil)
	b.guessButton.Importance = widget.HighImportance

	b.stopButton = widget.NewButton(labels.Stop, nil)
	b.stopButton.Importance = widget.MediumImportance
}

func (b *Board) buildLayout() {
	entryRow := container.NewGridWrap(fyne.NewSize(220, b.entry.MinSize().Height), b.entry)

	b.container = container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(b.messageLabel),
		container.NewCenter(entryRow),
		container.NewCenter(container.NewHBox(b.guessButton, b.stopButton)),
		layout.NewSpacer(),
	)
}

func (b *Board) setupEventHandlers() {
	b.guessButton.OnTapped = func() {
		b.submit()
	}

	b.entry.OnSubmitted = func(string) {
		b.submit()
	}

	b.stopButton.OnTapped = func() {
		if b.stopHandler != nil {
			b.stopHandler()
		}
	}
}

func (b *Board) submit() {
	if !b.enabled || b.guessHandler == nil {
		return
	}
	b.guessHandler(b.entry.Text)
}

func (b *Board) SetGuessHandler(handler func(text string)) {
	b.guessHandler = handler
}

func (b *Board) SetStopHandler(handler func()) {
	b.stopHandler = handler
}

// SetEnabled toggles every interactive widget on the board at once
func (b *Board) SetEnabled(enabled bool) {
	b.enabled = enabled
	if enabled {
		b.entry.Enable()
		b.guessButton.Enable()
		b.stopButton.Enable()
		return
	}
	b.entry.Disable()
	b.guessButton.Disable()
	b.stopButton.Disable()
}

func (b *Board) Enabled() bool {
	return b.enabled
}

func (b *Board) SetMessage(message string) {
	b.messageLabel.SetText(message)
}

func (b *Board) Message() string {
	return b.messageLabel.Text
}

func (b *Board) GetContainer() *fyne.Container {
	return b.container
}

func (b *Board) Entry() *widget.Entry {
	return b.entry
}

func (b *Board) GuessButton() *widget.Button {
	return b.guessButton
}

func (b *Board) StopButton() *widget.Button {
	return b.stopButton
}
