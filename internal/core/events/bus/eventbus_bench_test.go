package bus

import (
	"sync/atomic"
	"testing"
)

func BenchmarkTriggerSingleBinding(b *testing.B) {
	bus := New()
	node := &emitter{"bench"}
	var c int64
	_, _ = bus.Bind(node, "tick", nil, func(Event) error {
		atomic.AddInt64(&c, 1)
		return nil
	})
	evt := NewEvent("tick", "bench", nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bus.Trigger(node, evt)
	}
}

func BenchmarkBindUnbindAll(b *testing.B) {
	bus := New()
	node := &emitter{"bench"}
	owner := &listener{"owner"}
	handler := func(Event) error { return nil }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bus.Bind(node, "update", owner, handler)
		_, _ = bus.Bind(node, "render", owner, handler)
		_ = bus.UnbindAll(node, owner)
	}
}
