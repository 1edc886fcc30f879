package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Header holds the title, the Hard mode switch and the Start button
type Header struct {
	container   *fyne.Container
	titleLabel  *widget.Label
	modeCheck   *widget.Check
	startButton *widget.Button

	modeChangeHandler func(hard bool)
	startHandler      func()
}

func NewHeader(title, modeLabel, startLabel string) *Header {
	h := &Header{}
	h.createComponents(title, modeLabel, startLabel)
	h.buildLayout()
	h.setupEventHandlers()
	return h
}

func (h *Header) createComponents(title, modeLabel, startLabel string) {
	h.titleLabel = widget.NewLabel(title)
	h.titleLabel.Alignment = fyne.TextAlignCenter
	h.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	h.modeCheck = widget.NewCheck(modeLabel, nil)

	h.startButton = widget.NewButton(startLabel, nil)
	h.startButton.Importance = widget.HighImportance
}

func (h *Header) buildLayout() {
	h.container = container.NewBorder(
		nil,
		widget.NewSeparator(),
		h.modeCheck,
		h.startButton,
		h.titleLabel,
	)
}

func (h *Header) setupEventHandlers() {
	h.modeCheck.OnChanged = func(hard bool) {
		if h.modeChangeHandler != nil {
			h.modeChangeHandler(hard)
		}
	}

	h.startButton.OnTapped = func() {
		if h.startHandler != nil {
			h.startHandler()
		}
	}
}

func (h *Header) SetModeChangeHandler(handler func(hard bool)) {
	h.modeChangeHandler = handler
}

func (h *Header) SetStartHandler(handler func()) {
	h.startHandler = handler
}

func (h *Header) SetTitle(title string) {
	h.titleLabel.SetText(title)
}

// SetHard moves the switch without notifying the mode change handler
func (h *Header) SetHard(hard bool) {
	handler := h.modeChangeHandler
	h.modeChangeHandler = nil
	h.modeCheck.SetChecked(hard)
	h.modeChangeHandler = handler
}

// SetStartEnabled toggles the Start button
func (h *Header) SetStartEnabled(enabled bool) {
	if enabled {
		h.startButton.Enable()
	} else {
		h.startButton.Disable()
	}
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}

func (h *Header) Title() string {
	return h.titleLabel.Text
}

func (h *Header) ModeCheck() *widget.Check {
	return h.modeCheck
}

func (h *Header) StartButton() *widget.Button {
	return h.startButton
}
