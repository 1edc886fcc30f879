// Package stats keeps per-session round statistics fed from the game event bus.
package stats

import (
	"sync"

	"guessing-game/internal/events"
)

type Snapshot struct {
	RoundsStarted int
	RoundsWon     int
	TotalGuesses  int
	// BestGuesses is the fewest guesses needed for a win; zero until a round is won.
	BestGuesses int
}

type Tracker struct {
	mu       sync.RWMutex
	snapshot Snapshot
	// rounds already counted as won, so repeated correct guesses count once
	wonRounds map[int]bool
	onChange  func(Snapshot)
}

func NewTracker() *Tracker {
	return &Tracker{wonRounds: make(map[int]bool)}
}

// Attach subscribes the tracker to the round events it needs
func (t *Tracker) Attach(bus *events.Bus) {
	bus.Subscribe(events.RoundStarted, t)
	bus.Subscribe(events.GuessMade, t)
}

// SetChangeHandler registers a callback invoked with every new snapshot.
// It runs on the event bus worker, not the UI goroutine.
func (t *Tracker) SetChangeHandler(handler func(Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = handler
}

func (t *Tracker) GetID() string {
	return "stats-tracker"
}

func (t *Tracker) Handle(event events.Event) {
	t.mu.Lock()
	switch event.Type {
	case events.RoundStarted:
		t.snapshot.RoundsStarted++
	case events.GuessMade:
		t.snapshot.TotalGuesses++
		won, _ := event.Data["won"].(bool)
		roundID, _ := event.Data["round"].(int)
		guesses, _ := event.Data["guesses"].(int)
		if won && !t.wonRounds[roundID] {
			t.wonRounds[roundID] = true
			t.snapshot.RoundsWon++
			if t.snapshot.BestGuesses == 0 || guesses < t.snapshot.BestGuesses {
				t.snapshot.BestGuesses = guesses
			}
		}
	default:
		t.mu.Unlock()
		return
	}
	snap := t.snapshot
	onChange := t.onChange
	t.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot
}
