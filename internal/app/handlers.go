package app

import (
	"guessing-game/internal/events"
	"guessing-game/internal/logger"

	"fyne.io/fyne/v2"
)

const modePreferenceKey = "mode"

// modePreference remembers the last chosen mode across sessions
type modePreference struct {
	prefs fyne.Preferences
}

func (m *modePreference) Handle(event events.Event) {
	if mode, ok := event.Data["mode"].(string); ok {
		m.prefs.SetString(modePreferenceKey, mode)
	}
}

func (m *modePreference) GetID() string {
	return "mode-preference"
}

type roundLogger struct {
	logger logger.Logger
}

func (r *roundLogger) Handle(event events.Event) {
	r.logger.Debug("Rounds", "round summary", event.Data)
}

func (r *roundLogger) GetID() string {
	return "round-logger"
}
