package components

import (
	"github.com/zeusync/scenegraph/internal/core/models"
	"github.com/zeusync/scenegraph/internal/core/registry"
)

// RegisterBuiltins registers every component type shipped with the scene graph.
func RegisterBuiltins(reg *registry.Registry) error {
	builtins := []struct {
		name    models.TypeName
		factory registry.Factory
	}{
		{models.TransformType, newTransformFromData},
		{LightType, newLightFromData},
		{CameraType, newCameraFromData},
		{MeshRendererType, newMeshRendererFromData},
	}
	for _, b := range builtins {
		if err := reg.Register(b.name, b.factory); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry with the built-in components.
func NewRegistry() *registry.Registry {
	reg := registry.New()
	if err := RegisterBuiltins(reg); err != nil {
		panic(err)
	}
	return reg
}
