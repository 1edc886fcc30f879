package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Italic: true}

	return &StatusBar{
		statusLabel: label,
		container:   container.NewHBox(widget.NewSeparator(), label),
	}
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
