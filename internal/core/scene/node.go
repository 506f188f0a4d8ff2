package scene

import (
	"github.com/zeusync/scenegraph/internal/core/components"
	"github.com/zeusync/scenegraph/internal/core/container"
	"github.com/zeusync/scenegraph/internal/core/events/bus"
	"github.com/zeusync/scenegraph/internal/core/ids"
	"github.com/zeusync/scenegraph/internal/core/models"
	"github.com/zeusync/scenegraph/internal/core/observability/log"
)

var _ models.Host = (*Node)(nil)

// Node is a scene graph node. Components are managed by the embedded
// container; a fresh node carries a Transform in slot 0 unless created
// WithoutTransform.
type Node struct {
	*container.ComponentContainer

	uid    string
	name   string
	events bus.EventBus
}

type nodeOptions struct {
	events        bus.EventBus
	ids           ids.Generator
	logger        log.Log
	transformless bool
}

type Option func(*nodeOptions)

// WithBus shares an event bus between nodes. Each node gets its own bus otherwise.
func WithBus(b bus.EventBus) Option {
	return func(o *nodeOptions) { o.events = b }
}

func WithIDGenerator(g ids.Generator) Option {
	return func(o *nodeOptions) { o.ids = g }
}

func WithLogger(l log.Log) Option {
	return func(o *nodeOptions) { o.logger = l }
}

// WithoutTransform skips the default Transform component.
func WithoutTransform() Option {
	return func(o *nodeOptions) { o.transformless = true }
}

func NewNode(name string, opts ...Option) *Node {
	o := nodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.events == nil {
		o.events = bus.New()
	}
	if o.ids == nil {
		o.ids = ids.NewUUIDGenerator(ids.DefaultPrefix)
	}
	if o.logger == nil {
		o.logger = log.NewNop()
	}

	n := &Node{
		uid:    o.ids.Generate(ids.NodePrefix),
		name:   name,
		events: o.events,
	}
	n.ComponentContainer = container.New(n,
		container.WithIDGenerator(o.ids),
		container.WithLogger(o.logger.With(log.String("node", name))),
	)
	if !o.transformless {
		// a fresh transform on a fresh node cannot collide
		_, _ = n.AddComponent(components.NewTransform())
	}
	return n
}

func (n *Node) UID() string { return n.uid }

func (n *Node) Name() string { return n.name }

func (n *Node) SetName(name string) { n.name = name }

func (n *Node) Events() bus.EventBus { return n.events }

// Transform returns the node transform, nil if the node has none.
func (n *Node) Transform() *components.Transform {
	t, _ := container.Get[*components.Transform](n.ComponentContainer)
	return t
}

// Lights returns the enabled lights attached to the node.
func (n *Node) Lights() ([]*components.Light, error) {
	return components.CollectLights(n)
}

// Serialize returns the node and its components in wire form.
func (n *Node) Serialize() *models.Info {
	info := &models.Info{UID: n.uid, Name: n.name}
	n.SerializeComponents(info)
	return info
}

// Configure applies info to the node. Component entries are resolved through reg.
func (n *Node) Configure(info *models.Info, reg container.Registry) error {
	if info == nil {
		return nil
	}
	if info.UID != "" {
		n.uid = info.UID
	}
	if info.Name != "" {
		n.name = info.Name
	}
	return n.ConfigureComponents(info, reg)
}
