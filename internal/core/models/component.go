package models

import "github.com/zeusync/scenegraph/internal/core/events/bus"

// TypeName is the explicit type tag of a component. It identifies the
// component kind for lookups and is the class name used in serialized scenes.
type TypeName string

func (t TypeName) String() string { return string(t) }

// TransformType is the tag of the built-in transform that conventionally sits
// in slot 0 of every node.
const TransformType TypeName = "Transform"

// Host is anything that owns a component collection, usually a scene node.
type Host interface {
	UID() string
	Name() string
	// Events is the bus components bind their listeners on.
	Events() bus.EventBus
}

// Component is the minimal contract for attachable components. Implementations
// embed BaseComponent and add a Type method.
type Component interface {
	Type() TypeName
	UID() string
	// AssignUID sets the uid once. It reports false when a uid is already set.
	AssignUID(uid string) bool
	Root() Host
	SetRoot(Host)
}

// Optional capabilities. The container checks for them with type assertions
// and silently skips components that do not implement them.

type AddedToNodeHook interface {
	OnAddedToNode(host Host)
}

type RemovedFromNodeHook interface {
	OnRemovedFromNode(host Host)
}

type Serializer interface {
	Serialize() map[string]any
}

type Configurer interface {
	Configure(data map[string]any) error
}

// ResourceProvider adds the names of the resources a component needs to res.
type ResourceProvider interface {
	Resources(res map[string]bool)
}

// ActionFunc is a named action a component exposes to broadcast calls.
type ActionFunc func(params any)

type ActionTarget interface {
	Action(name string) (ActionFunc, bool)
}

// BaseComponent stores the uid and host back-reference shared by every
// component. The zero value is unattached with no uid.
type BaseComponent struct {
	uid  string
	root Host
}

func (b *BaseComponent) UID() string { return b.uid }

func (b *BaseComponent) AssignUID(uid string) bool {
	if b.uid != "" || uid == "" {
		return false
	}
	b.uid = uid
	return true
}

func (b *BaseComponent) Root() Host { return b.root }

func (b *BaseComponent) SetRoot(h Host) { b.root = h }

// ConfigureBase applies the fields every serialized component carries.
func (b *BaseComponent) ConfigureBase(data map[string]any) {
	if uid, ok := data["uid"].(string); ok {
		b.AssignUID(uid)
	}
}
