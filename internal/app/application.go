package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"guessing-game/internal/config"
	"guessing-game/internal/controllers"
	"guessing-game/internal/events"
	"guessing-game/internal/i18n"
	"guessing-game/internal/logger"
	"guessing-game/internal/models"
	"guessing-game/internal/services"
	"guessing-game/internal/shutdown"
	"guessing-game/internal/stats"
	"guessing-game/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Guessing Game"
	AppID      = "com.github.guessing_game"
	AppVersion = "1.0.0"

	WindowWidth  = 600
	WindowHeight = 300

	eventBufferSize = 64
	shutdownTimeout = 5 * time.Second
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	game       *services.GameService
	bus        *events.Bus
	stats      *stats.Tracker
	shutdown   *shutdown.Manager
	logger     logger.Logger
	running    atomic.Bool
}

// NewApplication wires the game into fyneApp. The caller owns fyneApp so
// tests can hand in a headless one.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	i18n.Init(cfg.Language)

	mode, err := resolveMode(cfg, fyneApp.Preferences())
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(i18n.T("app_title"))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	bus := events.NewBus(eventBufferSize, log)
	tracker := stats.NewTracker()
	tracker.Attach(bus)
	bus.Subscribe(events.ModeChanged, &modePreference{prefs: fyneApp.Preferences()})
	bus.Subscribe(events.RoundStopped, &roundLogger{logger: log})

	game := services.NewGameService(
		models.NewGameState(mode),
		services.WithPublisher(bus),
		services.WithLogger(log),
	)

	controller := controllers.NewMainController(game, log)
	view := views.NewMainView(window)
	controller.SetMainView(view)
	tracker.SetChangeHandler(controller.UpdateStats)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		game:       game,
		bus:        bus,
		stats:      tracker,
		shutdown:   shutdown.NewManager(log, shutdownTimeout),
		logger:     log,
	}

	application.shutdown.Register(bus)
	application.shutdown.Register(shutdown.Func(application.quit))

	application.setupWindowEvents()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":  AppVersion,
		"mode":     mode.String(),
		"language": cfg.Language,
	})
	return application, nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.game.Stop()
		a.shutdown.Shutdown()
		a.window.Close()
	})
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.logger.Info("Application", "GUI displayed", nil)
	a.running.Store(true)
	a.window.ShowAndRun()
	a.running.Store(false)

	a.shutdown.Shutdown()
	return nil
}

// quit stops the Fyne event loop if it is still running
func (a *Application) quit() {
	if a.running.Load() {
		fyne.Do(a.fyneApp.Quit)
	}
}

func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) Stats() stats.Snapshot {
	return a.stats.Snapshot()
}

// resolveMode prefers an explicitly configured mode over the one remembered
// from the previous session.
func resolveMode(cfg config.Config, prefs fyne.Preferences) (models.Mode, error) {
	name := cfg.Mode
	if name == "" && prefs != nil {
		name = prefs.StringWithFallback(modePreferenceKey, models.ModeNormal.String())
	}
	if name == "" {
		return models.ModeNormal, nil
	}

	mode, err := models.ParseMode(name)
	if err != nil {
		return models.ModeNormal, fmt.Errorf("resolve mode: %w", err)
	}
	return mode, nil
}
