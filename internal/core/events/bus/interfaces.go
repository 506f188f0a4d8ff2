package bus

import "time"

// EventBus is an in-process, emitter-scoped pub/sub bus.
//
// Bindings are keyed by the emitter (typically a scene node) and the event type.
// Each binding optionally records the listener that owns it, so every binding a
// listener made on an emitter can be dropped at once with UnbindAll.
//
// Notes:
//   - Emitters and listeners are used as map keys and must be comparable; pointers are the norm.
//   - Delivery is synchronous, in bind order, on the caller goroutine.
//   - Handler errors are joined and returned from Trigger.
//   - All methods are safe for concurrent use.
type EventBus interface {
	// Bind registers handler for eventType on emitter, owned by listener (may be nil).
	Bind(emitter any, eventType string, listener any, handler EventHandler) (Subscription, error)
	// Unbind cancels the given Subscription. It is safe to call with nil; does nothing.
	Unbind(Subscription) error
	// UnbindAll removes every binding on emitter owned by listener and returns how many were removed.
	UnbindAll(emitter, listener any) int
	// HasBindings reports whether emitter has at least one active binding for eventType.
	HasBindings(emitter any, eventType string) bool

	// Trigger delivers event to the bindings of emitter for event.Type().
	Trigger(emitter any, event Event) error

	// AddObserver registers an observer to receive delivery callbacks.
	AddObserver(obs EventBusObserver)
	// RemoveObserver unregisters a previously added observer.
	RemoveObserver(obs EventBusObserver)
	// GetMetrics returns a snapshot of the counters. They only move while an observer is registered.
	GetMetrics() EventBusMetrics
}

// Event is an immutable message transported by the EventBus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

// EventHandler is a user callback invoked per delivered event.
type EventHandler func(event Event) error

// Subscription represents a registered handler bound to an emitter and event type.
type Subscription interface {
	ID() string
	EventType() string
	Listener() any
	IsActive() bool
	// Cancel de-registers the handler from the bus. Multiple calls are safe.
	Cancel() error
}

// EventBusObserver is notified about deliveries. Observers should return quickly.
type EventBusObserver interface {
	OnTrigger(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error, durationMicros int64)
}

// EventBusMetrics is a minimal set of counters.
type EventBusMetrics struct {
	Triggered         uint64
	DeliveredHandlers uint64
	Errors            uint64
	Unbound           uint64
}
