package services

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"guessing-game/internal/events"
	"guessing-game/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same offset, clamped to n-1
type fixedSource int

func (f fixedSource) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *capturePublisher) Publish(e events.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *capturePublisher) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e.Type)
	}
	return out
}

func newService(t *testing.T, mode models.Mode, src RandomSource) (*GameService, *capturePublisher) {
	t.Helper()
	pub := &capturePublisher{}
	svc := NewGameService(models.NewGameState(mode), WithRandomSource(src), WithPublisher(pub))
	return svc, pub
}

func TestSecretsStayInModeBounds(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))
	for _, tc := range []struct {
		mode models.Mode
		high int
	}{
		{models.ModeNormal, 50},
		{models.ModeHard, 100},
	} {
		state := models.NewGameState(tc.mode)
		svc := NewGameService(state, WithRandomSource(src))
		seen := map[int]bool{}
		for i := 0; i < 5000; i++ {
			svc.Start()
			s, ok := state.Secret()
			require.True(t, ok)
			require.GreaterOrEqual(t, s, 1)
			require.LessOrEqual(t, s, tc.high)
			seen[s] = true
		}
		assert.True(t, seen[1], "lower bound reachable in %s", tc.mode)
		assert.True(t, seen[tc.high], "upper bound reachable in %s", tc.mode)
	}
}

func TestBoundsWithFixedSource(t *testing.T) {
	svc, _ := newService(t, models.ModeNormal, fixedSource(0))
	assert.Equal(t, 1, svc.Start().Secret)

	svc, _ = newService(t, models.ModeNormal, fixedSource(1000))
	assert.Equal(t, 50, svc.Start().Secret)

	svc, _ = newService(t, models.ModeHard, fixedSource(1000))
	assert.Equal(t, 100, svc.Start().Secret)
}

func TestGuessOutcomes(t *testing.T) {
	// secret = 1 + 24 = 25
	svc, _ := newService(t, models.ModeNormal, fixedSource(24))
	svc.Start()

	cases := map[string]models.Outcome{
		"1":          models.OutcomeTooSmall,
		"24":         models.OutcomeTooSmall,
		" 25 ":       models.OutcomeWin,
		"26":         models.OutcomeTooBig,
		"1000":       models.OutcomeTooBig,
		"0":          models.OutcomeTooSmall,
		"\t25\n":     models.OutcomeWin,
		"+7":         models.OutcomeTooSmall,
		"+25":        models.OutcomeWin,
		"3000000000": models.OutcomeTooBig,
		"4294967295": models.OutcomeTooBig,
	}
	for in, want := range cases {
		got, err := svc.Guess(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestInvalidGuessLeavesSecretUntouched(t *testing.T) {
	svc, pub := newService(t, models.ModeHard, fixedSource(41))
	svc.Start()
	before, _ := svc.state.Secret()

	for _, in := range []string{"", "abc", "12a", "-5", "4.2", "+", "++7", "+-7", "4294967296", "99999999999999999999"} {
		_, err := svc.Guess(in)
		assert.ErrorIs(t, err, ErrInvalidGuess, in)
	}

	after, _ := svc.state.Secret()
	assert.Equal(t, before, after)
	assert.Zero(t, svc.state.CurrentRound().Guesses)
	assert.Equal(t, []string{events.RoundStarted}, pub.types())
}

func TestGuessBeforeStart(t *testing.T) {
	svc, _ := newService(t, models.ModeNormal, fixedSource(0))
	_, err := svc.Guess("3")
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestGuessAfterStop(t *testing.T) {
	svc, _ := newService(t, models.ModeNormal, fixedSource(0))
	svc.Start()
	svc.Stop()

	_, err := svc.Guess("1")
	assert.True(t, errors.Is(err, ErrNotStarted))
	assert.False(t, svc.Active())
}

func TestWinKeepsRoundOpen(t *testing.T) {
	svc, _ := newService(t, models.ModeNormal, fixedSource(9))
	svc.Start()

	out, err := svc.Guess("10")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWin, out)
	assert.True(t, svc.Active())

	out, err = svc.Guess("10")
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeWin, out)
}

func TestModeChangeAppliesToNextStart(t *testing.T) {
	svc, _ := newService(t, models.ModeNormal, fixedSource(1000))
	first := svc.Start()
	require.NoError(t, svc.SetMode(models.ModeHard))

	s, _ := svc.state.Secret()
	assert.Equal(t, first.Secret, s)
	assert.Equal(t, models.ModeHard, svc.Mode())

	svc.Stop()
	second := svc.Start()
	assert.Equal(t, 100, second.Secret)
	assert.Equal(t, models.ModeHard, second.Mode)
}

func TestSetModeRejectsUnknown(t *testing.T) {
	svc, _ := newService(t, models.ModeNormal, fixedSource(0))
	assert.ErrorIs(t, svc.SetMode(models.Mode(7)), ErrInvalidMode)
	assert.Equal(t, models.ModeNormal, svc.Mode())
}

func TestEventsPublished(t *testing.T) {
	svc, pub := newService(t, models.ModeNormal, fixedSource(0))
	require.NoError(t, svc.SetMode(models.ModeHard))
	svc.Start()
	_, _ = svc.Guess("1")
	svc.Stop()
	svc.Stop()

	assert.Equal(t, []string{
		events.ModeChanged,
		events.RoundStarted,
		events.GuessMade,
		events.RoundStopped,
	}, pub.types())

	guess := pub.events[2]
	assert.Equal(t, true, guess.Data["won"])
	assert.Equal(t, 1, guess.Data["guesses"])
}

func TestParseGuess(t *testing.T) {
	v, err := ParseGuess("  42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = ParseGuess(" +9")
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	v, err = ParseGuess("4294967295")
	require.NoError(t, err)
	assert.Equal(t, 4294967295, v)

	_, err = ParseGuess("forty-two")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, err = ParseGuess("4294967296")
	assert.ErrorIs(t, err, ErrInvalidGuess)
}
