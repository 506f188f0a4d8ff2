package bus

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNilEmitter = errors.New("bus: emitter is nil")
	ErrNilHandler = errors.New("bus: handler is nil")
)

// simpleEvent is a basic implementation of Event.
type simpleEvent struct {
	typeStr string
	source  string
	ts      time.Time
	data    any
}

func (e simpleEvent) Type() string         { return e.typeStr }
func (e simpleEvent) Source() string       { return e.source }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }

// NewEvent creates a simple Event implementation.
func NewEvent(typ, src string, data any) Event {
	return simpleEvent{typeStr: typ, source: src, ts: time.Now(), data: data}
}

type subscription struct {
	id        string
	eventType string
	listener  any
	handler   EventHandler
	active    atomic.Bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) Listener() any     { return s.listener }
func (s *subscription) IsActive() bool    { return s.active.Load() }
func (s *subscription) Cancel() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

type inMemoryBus struct {
	mu sync.RWMutex
	// bindings: emitter -> eventType -> subscriptions in bind order
	bindings  map[any]map[string][]*subscription
	metrics   EventBusMetrics
	observers map[EventBusObserver]struct{}
}

// New creates a new EventBus instance.
func New() EventBus {
	return &inMemoryBus{
		bindings:  make(map[any]map[string][]*subscription),
		observers: make(map[EventBusObserver]struct{}),
	}
}

func (b *inMemoryBus) Bind(emitter any, eventType string, listener any, handler EventHandler) (Subscription, error) {
	if emitter == nil {
		return nil, ErrNilEmitter
	}
	if handler == nil {
		return nil, ErrNilHandler
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bindings[emitter] == nil {
		b.bindings[emitter] = make(map[string][]*subscription)
	}
	s := &subscription{
		id:        uuid.NewString(),
		eventType: eventType,
		listener:  listener,
		handler:   handler,
	}
	s.active.Store(true)
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.removeLocked(emitter, s)
	}
	b.bindings[emitter][eventType] = append(b.bindings[emitter][eventType], s)
	return s, nil
}

func (b *inMemoryBus) Unbind(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

func (b *inMemoryBus) UnbindAll(emitter, listener any) int {
	if emitter == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	byType, ok := b.bindings[emitter]
	if !ok {
		return 0
	}
	removed := 0
	for eventType, subs := range byType {
		kept := subs[:0]
		for _, s := range subs {
			if s.listener == listener {
				s.active.Store(false)
				removed++
				continue
			}
			kept = append(kept, s)
		}
		if len(kept) == 0 {
			delete(byType, eventType)
		} else {
			byType[eventType] = kept
		}
	}
	if len(byType) == 0 {
		delete(b.bindings, emitter)
	}
	if len(b.observers) > 0 {
		b.metrics.Unbound += uint64(removed)
	}
	return removed
}

func (b *inMemoryBus) HasBindings(emitter any, eventType string) bool {
	if emitter == nil {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.bindings[emitter][eventType]) > 0
}

func (b *inMemoryBus) Trigger(emitter any, event Event) error {
	if emitter == nil {
		return ErrNilEmitter
	}
	start := time.Now()
	etype := event.Type()

	b.mu.RLock()
	subs := append([]*subscription(nil), b.bindings[emitter][etype]...)
	observers := make([]EventBusObserver, 0, len(b.observers))
	for obs := range b.observers {
		observers = append(observers, obs)
	}
	b.mu.RUnlock()

	for _, obs := range observers {
		obs.OnTrigger(etype, event)
	}

	var all error
	delivered := 0
	for _, s := range subs {
		if !s.active.Load() {
			continue
		}
		delivered++
		if err := s.handler(event); err != nil {
			all = errors.Join(all, err)
		}
	}

	if len(observers) > 0 {
		dur := time.Since(start).Microseconds()
		for _, obs := range observers {
			obs.OnDelivered(etype, delivered, all, dur)
		}
		b.mu.Lock()
		b.metrics.Triggered++
		b.metrics.DeliveredHandlers += uint64(delivered)
		if all != nil {
			b.metrics.Errors++
		}
		b.mu.Unlock()
	}
	return all
}

func (b *inMemoryBus) AddObserver(obs EventBusObserver) {
	b.mu.Lock()
	b.observers[obs] = struct{}{}
	b.mu.Unlock()
}

func (b *inMemoryBus) RemoveObserver(obs EventBusObserver) {
	b.mu.Lock()
	delete(b.observers, obs)
	b.mu.Unlock()
}

func (b *inMemoryBus) GetMetrics() EventBusMetrics {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.metrics
}

func (b *inMemoryBus) removeLocked(emitter any, s *subscription) {
	if !s.active.CompareAndSwap(true, false) {
		return
	}
	byType := b.bindings[emitter]
	subs := byType[s.eventType]
	for i, cur := range subs {
		if cur == s {
			byType[s.eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(byType[s.eventType]) == 0 {
		delete(byType, s.eventType)
	}
	if len(byType) == 0 {
		delete(b.bindings, emitter)
	}
}
