package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/scenegraph/internal/config"
	"github.com/zeusync/scenegraph/internal/core/components"
	"github.com/zeusync/scenegraph/internal/core/events/bus"
	"github.com/zeusync/scenegraph/internal/core/ids"
	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/internal/core/registry"
	"github.com/zeusync/scenegraph/internal/core/scene"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideBus,
	ProvideIDs,
	ProvideRegistry,
	wire.Struct(new(Runtime), "*"),
)

// Runtime bundles the shared collaborators every node of a process uses.
type Runtime struct {
	Config   *config.Config
	Logger   *log.Logger
	Bus      bus.EventBus
	IDs      ids.Generator
	Registry *registry.Registry
}

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	return log.New(cfg.LogLevel(), cfg.Log.Encoding)
}

func ProvideBus() bus.EventBus {
	return bus.New()
}

func ProvideIDs(cfg *config.Config) ids.Generator {
	return ids.NewUUIDGenerator(cfg.IDs.Prefix)
}

func ProvideRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := components.RegisterBuiltins(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// NewNode creates a node wired to the runtime collaborators.
func (r *Runtime) NewNode(name string) *scene.Node {
	opts := []scene.Option{
		scene.WithBus(r.Bus),
		scene.WithIDGenerator(r.IDs),
		scene.WithLogger(r.Logger),
	}
	if !r.Config.Scene.DefaultTransform {
		opts = append(opts, scene.WithoutTransform())
	}
	return scene.NewNode(name, opts...)
}
