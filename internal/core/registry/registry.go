package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/scenegraph/internal/core/models"
)

// Factory builds a component from its serialized data. data may be nil when
// a component is created from scratch.
type Factory func(data map[string]any) (models.Component, error)

// Registry maps component type tags to factories. It replaces ambient global
// class tables: whoever deserializes components passes a Registry explicitly.
type Registry struct {
	mu        sync.RWMutex
	factories map[models.TypeName]Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[models.TypeName]Factory)}
}

// Register adds a factory for name. Registering the same name twice is an error.
func (r *Registry) Register(name models.TypeName, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("register component type %q: name and factory are required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", models.ErrTypeAlreadyRegistered, name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is Register for package init paths.
func (r *Registry) MustRegister(name models.TypeName, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

func (r *Registry) Unregister(name models.TypeName) {
	r.mu.Lock()
	delete(r.factories, name)
	r.mu.Unlock()
}

func (r *Registry) Lookup(name models.TypeName) (Factory, bool) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	return f, ok
}

// Create looks up name and runs its factory.
func (r *Registry) Create(name models.TypeName, data map[string]any) (models.Component, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownComponentType, name)
	}
	c, err := f(data)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	if c == nil {
		return nil, fmt.Errorf("create %s: %w", name, models.ErrNilComponent)
	}
	return c, nil
}

// Names lists the registered type tags in lexical order.
func (r *Registry) Names() []models.TypeName {
	r.mu.RLock()
	out := make([]models.TypeName, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
