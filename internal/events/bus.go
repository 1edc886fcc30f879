package events

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"guessing-game/internal/logger"
)

const (
	RoundStarted = "round_started"
	GuessMade    = "guess_made"
	RoundStopped = "round_stopped"
	ModeChanged  = "mode_changed"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Handler interface {
	Handle(event Event)
	GetID() string
}

// Publisher is the producer side of the bus
type Publisher interface {
	Publish(event Event)
}

// Bus fans events out to subscribers on a background worker. Publishing
// never blocks: events are dropped when the buffer is full or after
// Shutdown.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
	buffer      chan Event
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	closeOnce   sync.Once
	dropped     atomic.Int64
	logger      logger.Logger
}

// NewBus starts the dispatch worker. A nil log discards handler failures.
func NewBus(bufferSize int, log logger.Logger) *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	if log == nil {
		log = logger.NoOpLogger{}
	}

	bus := &Bus{
		subscribers: make(map[string][]Handler),
		buffer:      make(chan Event, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
		logger:      log,
	}

	bus.startWorker()
	return bus
}

func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.ctx.Err() != nil {
		return
	}

	select {
	case b.buffer <- event:
	default:
		b.dropped.Add(1)
	}
}

// Dropped reports how many events were discarded because the buffer was full
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops accepting events, drains what is buffered and waits for
// the worker to exit.
func (b *Bus) Shutdown() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.cancel()
		close(b.buffer)
		b.mu.Unlock()
		b.wg.Wait()
	})
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for event := range b.buffer {
			b.dispatchEvent(event)
		}
	}()
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.safeHandle(handler, event)
	}
}

// safeHandle keeps one failing handler from taking the worker down with it
func (b *Bus) safeHandle(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", "handler panicked", fmt.Errorf("%v", r), map[string]interface{}{
				"handler": h.GetID(),
				"event":   event.Type,
			})
		}
	}()
	h.Handle(event)
}
