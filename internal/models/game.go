package models

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Mode selects the range secrets are drawn from
type Mode int

const (
	ModeNormal Mode = iota
	ModeHard
)

const (
	normalUpperBound = 50
	hardUpperBound   = 100
)

// Bounds returns the inclusive range of secrets for the mode
func (m Mode) Bounds() (low, high int) {
	if m == ModeHard {
		return 1, hardUpperBound
	}
	return 1, normalUpperBound
}

func (m Mode) String() string {
	if m == ModeHard {
		return "hard"
	}
	return "normal"
}

// ParseMode accepts "normal" or "hard", case insensitive
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return ModeNormal, nil
	case "hard":
		return ModeHard, nil
	default:
		return ModeNormal, fmt.Errorf("unknown mode %q", s)
	}
}

// Outcome is the result of comparing a guess with the secret
type Outcome int

const (
	OutcomeTooSmall Outcome = iota
	OutcomeTooBig
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTooSmall:
		return "too_small"
	case OutcomeTooBig:
		return "too_big"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Compare reports how guess relates to secret
func Compare(guess, secret int) Outcome {
	switch {
	case guess < secret:
		return OutcomeTooSmall
	case guess > secret:
		return OutcomeTooBig
	default:
		return OutcomeWin
	}
}

// Round is one started game
type Round struct {
	ID        int
	Mode      Mode
	Secret    int
	Guesses   int
	Won       bool
	StartedAt time.Time
}

// GameState is the single-owner state of the game window
type GameState struct {
	mu     sync.RWMutex
	mode   Mode
	secret *int
	active bool
	round  Round
	nextID int
}

func NewGameState(mode Mode) *GameState {
	return &GameState{mode: mode, nextID: 1}
}

func (gs *GameState) Mode() Mode {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.mode
}

func (gs *GameState) SetMode(mode Mode) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.mode = mode
}

// Secret returns the stored secret and whether one has been drawn yet
func (gs *GameState) Secret() (int, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if gs.secret == nil {
		return 0, false
	}
	return *gs.secret, true
}

func (gs *GameState) Active() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.active
}

// Begin stores a freshly drawn secret and opens a new round
func (gs *GameState) Begin(secret int, now time.Time) Round {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	s := secret
	gs.secret = &s
	gs.active = true
	gs.round = Round{
		ID:        gs.nextID,
		Mode:      gs.mode,
		Secret:    secret,
		StartedAt: now,
	}
	gs.nextID++
	return gs.round
}

// RecordGuess counts a valid guess against the current round
func (gs *GameState) RecordGuess(outcome Outcome) Round {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.round.Guesses++
	if outcome == OutcomeWin {
		gs.round.Won = true
	}
	return gs.round
}

// End closes guessing; the secret is kept until the next Begin
func (gs *GameState) End() Round {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.active = false
	return gs.round
}

func (gs *GameState) CurrentRound() Round {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.round
}
