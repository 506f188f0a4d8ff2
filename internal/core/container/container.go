package container

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/zeusync/scenegraph/internal/core/events/bus"
	"github.com/zeusync/scenegraph/internal/core/ids"
	"github.com/zeusync/scenegraph/internal/core/models"
	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/registry"
)

// Events triggered on the host after the collection changed. The event data
// is the component.
const (
	EventComponentAdded   = "componentAdded"
	EventComponentRemoved = "componentRemoved"
)

// Registry resolves serialized class names to factories.
type Registry interface {
	Lookup(name models.TypeName) (registry.Factory, bool)
}

// ComponentContainer owns the ordered component collection of a host. It is
// meant to be embedded in the host type and is not safe for concurrent use.
type ComponentContainer struct {
	host       models.Host
	ids        ids.Generator
	logger     log.Log
	components []models.Component
}

type Option func(*ComponentContainer)

func WithLogger(l log.Log) Option {
	return func(c *ComponentContainer) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithIDGenerator(g ids.Generator) Option {
	return func(c *ComponentContainer) {
		if g != nil {
			c.ids = g
		}
	}
}

// New creates an empty container for host. host becomes the back-reference of
// every attached component and the emitter of container events.
func New(host models.Host, opts ...Option) *ComponentContainer {
	c := &ComponentContainer{
		host:   host,
		ids:    ids.NewUUIDGenerator(ids.DefaultPrefix),
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddComponent attaches component to the host and returns it. A component may
// only live in one host at a time; attaching it twice fails with
// models.ErrDuplicateComponent and leaves the collection untouched.
func (c *ComponentContainer) AddComponent(component models.Component) (models.Component, error) {
	if isNil(component) {
		c.logger.Warn("add component: nil component")
		return nil, models.ErrNilComponent
	}
	if c.IndexOfComponent(component) != -1 {
		c.logger.Error("component already attached to this node",
			log.String("type", component.Type().String()),
			log.String("uid", component.UID()))
		return nil, fmt.Errorf("%w: %s %s is already in this node", models.ErrDuplicateComponent, component.Type(), component.UID())
	}
	if root := component.Root(); root != nil {
		c.logger.Error("component attached to another node",
			log.String("type", component.Type().String()),
			log.String("uid", component.UID()),
			log.String("owner", root.UID()))
		return nil, fmt.Errorf("%w: %s %s belongs to node %s", models.ErrDuplicateComponent, component.Type(), component.UID(), root.UID())
	}

	component.SetRoot(c.host)
	if hook, ok := component.(models.AddedToNodeHook); ok {
		hook.OnAddedToNode(c.host)
	}
	if component.UID() == "" {
		component.AssignUID(c.ids.Generate(ids.ComponentPrefix))
	}
	c.components = append(c.components, component)

	c.logger.Debug("component added",
		log.String("type", component.Type().String()),
		log.String("uid", component.UID()),
		log.Int("index", len(c.components)-1))
	c.trigger(EventComponentAdded, component)
	return component, nil
}

// RemoveComponent detaches component. Removing a component that is not in
// this host is a no-op.
func (c *ComponentContainer) RemoveComponent(component models.Component) error {
	if isNil(component) {
		c.logger.Warn("remove component: nil component")
		return models.ErrNilComponent
	}
	if c.IndexOfComponent(component) == -1 {
		c.logger.Debug("remove component: not attached to this node",
			log.String("type", component.Type().String()),
			log.String("uid", component.UID()))
		return nil
	}

	component.SetRoot(nil)
	if hook, ok := component.(models.RemovedFromNodeHook); ok {
		hook.OnRemovedFromNode(c.host)
	}
	if events := c.events(); events != nil {
		events.UnbindAll(c.host, component)
	}
	// the hook may have touched the collection
	if pos := c.IndexOfComponent(component); pos != -1 {
		c.components = slices.Delete(c.components, pos, pos+1)
	}

	c.logger.Debug("component removed",
		log.String("type", component.Type().String()),
		log.String("uid", component.UID()))
	c.trigger(EventComponentRemoved, component)
	return nil
}

// RemoveAllComponents removes components one by one from the front so every
// component gets its hook and listener cleanup.
func (c *ComponentContainer) RemoveAllComponents() {
	for len(c.components) > 0 {
		_ = c.RemoveComponent(c.components[0])
	}
}

func (c *ComponentContainer) HasComponent(t models.TypeName) bool {
	_, ok := c.GetComponent(t)
	return ok
}

// GetComponent returns the first component tagged t.
func (c *ComponentContainer) GetComponent(t models.TypeName) (models.Component, bool) {
	for _, comp := range c.components {
		if comp.Type() == t {
			return comp, true
		}
	}
	return nil, false
}

func (c *ComponentContainer) GetComponentByUID(uid string) (models.Component, bool) {
	for _, comp := range c.components {
		if comp.UID() == uid {
			return comp, true
		}
	}
	return nil, false
}

// IndexOfComponent returns the position of component or -1.
func (c *ComponentContainer) IndexOfComponent(component models.Component) int {
	for i, comp := range c.components {
		if comp == component {
			return i
		}
	}
	return -1
}

func (c *ComponentContainer) ComponentAt(index int) (models.Component, bool) {
	if index < 0 || index >= len(c.components) {
		return nil, false
	}
	return c.components[index], true
}

// Components returns the live collection. Callers must not modify it.
func (c *ComponentContainer) Components() []models.Component {
	return c.components
}

func (c *ComponentContainer) ComponentCount() int {
	return len(c.components)
}

// ProcessAction calls the action called name on every component exposing it
// and returns how many were called.
func (c *ComponentContainer) ProcessAction(name string, params any) int {
	called := 0
	// iterate over a snapshot, actions may attach or detach components
	for _, comp := range slices.Clone(c.components) {
		target, ok := comp.(models.ActionTarget)
		if !ok {
			continue
		}
		fn, ok := target.Action(name)
		if !ok || fn == nil {
			continue
		}
		fn(params)
		called++
	}
	return called
}

// SerializeComponents appends a [class, data] entry per serializable
// component to target.Components, in attachment order.
func (c *ComponentContainer) SerializeComponents(target *models.Info) {
	if target == nil {
		return
	}
	for _, comp := range c.components {
		s, ok := comp.(models.Serializer)
		if !ok {
			continue
		}
		data := s.Serialize()
		if data == nil {
			data = make(map[string]any, 1)
		}
		if _, ok := data["uid"]; !ok {
			data["uid"] = comp.UID()
		}
		target.Components = append(target.Components, models.Entry{Class: comp.Type(), Data: data})
	}
}

// ConfigureComponents rebuilds components from info. A Transform in the first
// entry configures the Transform already attached to the host. Entries that
// fail are logged and skipped; their errors are joined into the result.
func (c *ComponentContainer) ConfigureComponents(info *models.Info, reg Registry) error {
	if info == nil {
		return nil
	}
	var errs error
	for i, entry := range info.Components {
		if err := c.configureEntry(i, entry, reg); err != nil {
			c.logger.Error("skipping component entry",
				log.Int("index", i),
				log.String("type", entry.Class.String()),
				log.Error(err))
			errs = errors.Join(errs, fmt.Errorf("component entry %d (%s): %w", i, entry.Class, err))
		}
	}
	return errs
}

func (c *ComponentContainer) configureEntry(index int, entry models.Entry, reg Registry) error {
	if entry.Class == "" {
		return models.ErrInvalidEntry
	}
	if index == 0 && entry.Class == models.TransformType {
		if existing, ok := c.GetComponent(models.TransformType); ok {
			if cfg, ok := existing.(models.Configurer); ok {
				return cfg.Configure(entry.Data)
			}
		}
	}
	if reg == nil {
		return models.ErrUnknownComponentType
	}
	factory, ok := reg.Lookup(entry.Class)
	if !ok {
		return models.ErrUnknownComponentType
	}
	comp, err := factory(entry.Data)
	if err != nil {
		return err
	}
	if comp == nil {
		return models.ErrNilComponent
	}
	_, err = c.AddComponent(comp)
	return err
}

// CollectResources adds the resources every component depends on to res and
// returns it. A nil res is allocated.
func (c *ComponentContainer) CollectResources(res map[string]bool) map[string]bool {
	if res == nil {
		res = make(map[string]bool)
	}
	for _, comp := range c.components {
		if p, ok := comp.(models.ResourceProvider); ok {
			p.Resources(res)
		}
	}
	return res
}

// isNil also catches a nil pointer wrapped in a non-nil interface, e.g. a
// (*components.Light)(nil).
func isNil(component models.Component) bool {
	if component == nil {
		return true
	}
	v := reflect.ValueOf(component)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (c *ComponentContainer) events() bus.EventBus {
	if c.host == nil {
		return nil
	}
	return c.host.Events()
}

func (c *ComponentContainer) trigger(eventType string, component models.Component) {
	events := c.events()
	if events == nil || !events.HasBindings(c.host, eventType) {
		return
	}
	if err := events.Trigger(c.host, bus.NewEvent(eventType, c.host.UID(), component)); err != nil {
		c.logger.Warn("container event handler failed",
			log.String("event", eventType),
			log.Error(err))
	}
}

// Get returns the first component of concrete type T.
func Get[T models.Component](c *ComponentContainer) (T, bool) {
	for _, comp := range c.components {
		if typed, ok := comp.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether a component of concrete type T is attached.
func Has[T models.Component](c *ComponentContainer) bool {
	_, ok := Get[T](c)
	return ok
}
