package controllers

import (
	"errors"
	"strconv"

	"guessing-game/internal/i18n"
	"guessing-game/internal/logger"
	"guessing-game/internal/models"
	"guessing-game/internal/services"
	"guessing-game/internal/stats"
)

// GameView is what the controller needs from the window
type GameView interface {
	SetTitle(title string)
	SetHard(hard bool)
	SetPlaying(playing bool)
	SetMessage(message string)
	SetStatus(status string)

	SetStartHandler(handler func())
	SetModeChangeHandler(handler func(hard bool))
	SetGuessHandler(handler func(text string))
	SetStopHandler(handler func())
}

// MainController translates view events into game operations and game
// results back into view updates.
type MainController struct {
	game   *services.GameService
	view   GameView
	logger logger.Logger
}

func NewMainController(game *services.GameService, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		game:   game,
		logger: log,
	}
}

// SetMainView syncs the view with the current game state and connects its events
func (mc *MainController) SetMainView(view GameView) {
	mc.view = view

	hard := mc.game.Mode() == models.ModeHard
	view.SetHard(hard)
	// the mode title only replaces the application title once the switch moves
	view.SetTitle(i18n.T("app_title"))
	view.SetPlaying(mc.game.Active())
	mc.UpdateStats(stats.Snapshot{})

	view.SetStartHandler(mc.Start)
	view.SetModeChangeHandler(mc.ChangeMode)
	view.SetGuessHandler(mc.Guess)
	view.SetStopHandler(mc.Stop)
}

func (mc *MainController) Start() {
	mc.game.Start()
	mc.view.SetPlaying(true)
}

func (mc *MainController) ChangeMode(hard bool) {
	mode := models.ModeNormal
	if hard {
		mode = models.ModeHard
	}
	if err := mc.game.SetMode(mode); err != nil {
		mc.logger.Error("MainController", "mode change rejected", err, map[string]interface{}{
			"hard": hard,
		})
		return
	}
	mc.view.SetTitle(titleFor(mode))
}

func (mc *MainController) Guess(text string) {
	outcome, err := mc.game.Guess(text)
	switch {
	case errors.Is(err, services.ErrInvalidGuess):
		mc.view.SetMessage(i18n.T("message_not_a_number"))
		return
	case err != nil:
		mc.logger.Warning("MainController", "guess ignored", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	mc.view.SetMessage(messageFor(outcome))
}

func (mc *MainController) Stop() {
	mc.game.Stop()
	mc.view.SetPlaying(false)
}

// UpdateStats renders a statistics snapshot into the status line
func (mc *MainController) UpdateStats(snap stats.Snapshot) {
	if mc.view == nil {
		return
	}
	best := "-"
	if snap.BestGuesses > 0 {
		best = strconv.Itoa(snap.BestGuesses)
	}
	mc.view.SetStatus(i18n.TData("stats_line", map[string]interface{}{
		"Rounds":  snap.RoundsStarted,
		"Won":     snap.RoundsWon,
		"Guesses": snap.TotalGuesses,
		"Best":    best,
	}))
}

func titleFor(mode models.Mode) string {
	if mode == models.ModeHard {
		return i18n.T("title_hard")
	}
	return i18n.T("title_normal")
}

func messageFor(outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeTooSmall:
		return i18n.T("message_too_small")
	case models.OutcomeTooBig:
		return i18n.T("message_too_big")
	default:
		return i18n.T("message_win")
	}
}
