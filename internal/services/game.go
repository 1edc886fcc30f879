package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"guessing-game/internal/events"
	"guessing-game/internal/logger"
	"guessing-game/internal/models"
)

var (
	ErrInvalidGuess = errors.New("guess is not a number")
	ErrNotStarted   = errors.New("no round in progress")
	ErrInvalidMode  = errors.New("invalid mode")
)

// RandomSource draws integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// GameService owns the rules of the game: drawing secrets and judging guesses
type GameService struct {
	state     *models.GameState
	random    RandomSource
	publisher events.Publisher
	logger    logger.Logger
	now       func() time.Time
}

type GameOption func(*GameService)

// WithRandomSource replaces the process-wide generator, mainly for tests
func WithRandomSource(src RandomSource) GameOption {
	return func(gs *GameService) {
		gs.random = src
	}
}

func WithPublisher(p events.Publisher) GameOption {
	return func(gs *GameService) {
		gs.publisher = p
	}
}

func WithLogger(l logger.Logger) GameOption {
	return func(gs *GameService) {
		gs.logger = l
	}
}

func NewGameService(state *models.GameState, opts ...GameOption) *GameService {
	gs := &GameService{
		state:  state,
		random: globalSource{},
		logger: logger.NoOpLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

func (gs *GameService) Mode() models.Mode {
	return gs.state.Mode()
}

// SetMode changes the range used by the next Start. A running round keeps its secret.
func (gs *GameService) SetMode(mode models.Mode) error {
	if mode != models.ModeNormal && mode != models.ModeHard {
		return fmt.Errorf("set mode %d: %w", mode, ErrInvalidMode)
	}
	gs.state.SetMode(mode)

	gs.logger.Debug("GameService", "mode changed", map[string]interface{}{
		"mode": mode.String(),
	})
	gs.publish(events.ModeChanged, map[string]interface{}{"mode": mode.String()})
	return nil
}

// Start draws a new secret for the current mode and opens guessing
func (gs *GameService) Start() models.Round {
	low, high := gs.state.Mode().Bounds()
	secret := low + gs.random.IntN(high-low+1)

	round := gs.state.Begin(secret, gs.now())

	gs.logger.Info("GameService", "round started", map[string]interface{}{
		"round": round.ID,
		"mode":  round.Mode.String(),
	})
	gs.publish(events.RoundStarted, map[string]interface{}{
		"round": round.ID,
		"mode":  round.Mode.String(),
	})
	return round
}

// Guess parses text as a non-negative integer and compares it with the secret.
// Unparsable text returns ErrInvalidGuess and leaves the round untouched.
func (gs *GameService) Guess(text string) (models.Outcome, error) {
	if !gs.state.Active() {
		return 0, ErrNotStarted
	}
	secret, ok := gs.state.Secret()
	if !ok {
		return 0, ErrNotStarted
	}

	value, err := ParseGuess(text)
	if err != nil {
		gs.logger.Debug("GameService", "rejected guess", map[string]interface{}{
			"input": text,
		})
		return 0, err
	}

	outcome := models.Compare(value, secret)
	round := gs.state.RecordGuess(outcome)

	gs.logger.Debug("GameService", "guess judged", map[string]interface{}{
		"round":   round.ID,
		"guesses": round.Guesses,
		"outcome": outcome.String(),
	})
	gs.publish(events.GuessMade, map[string]interface{}{
		"round":   round.ID,
		"guesses": round.Guesses,
		"outcome": outcome.String(),
		"won":     outcome == models.OutcomeWin,
	})
	return outcome, nil
}

// Stop closes guessing. Stopping twice is harmless.
func (gs *GameService) Stop() models.Round {
	wasActive := gs.state.Active()
	round := gs.state.End()
	if !wasActive {
		return round
	}

	gs.logger.Info("GameService", "round stopped", map[string]interface{}{
		"round":    round.ID,
		"guesses":  round.Guesses,
		"won":      round.Won,
		"duration": gs.now().Sub(round.StartedAt).String(),
	})
	gs.publish(events.RoundStopped, map[string]interface{}{
		"round":   round.ID,
		"guesses": round.Guesses,
		"won":     round.Won,
	})
	return round
}

func (gs *GameService) Active() bool {
	return gs.state.Active()
}

func (gs *GameService) publish(eventType string, data map[string]interface{}) {
	if gs.publisher == nil {
		return
	}
	gs.publisher.Publish(events.Event{
		Type:      eventType,
		Timestamp: gs.now(),
		Data:      data,
	})
}

// ParseGuess trims surrounding whitespace and parses an unsigned 32-bit
// integer. One leading plus sign is accepted; minus signs are not.
func ParseGuess(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	digits := strings.TrimPrefix(trimmed, "+")
	value, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", trimmed, ErrInvalidGuess)
	}
	return int(value), nil
}
