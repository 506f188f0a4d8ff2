package components

import (
	"fmt"

	"github.com/zeusync/scenegraph/internal/core/models"
)

const MeshRendererType models.TypeName = "MeshRenderer"

// MeshRenderer draws a mesh resource, optionally with textures keyed by
// material channel ("color", "normal", ...).
type MeshRenderer struct {
	models.BaseComponent `yaml:"-"`

	Mesh     string            `yaml:"mesh"`
	Textures map[string]string `yaml:"textures"`
	Visible  bool              `yaml:"visible"`
}

func NewMeshRenderer(mesh string) *MeshRenderer {
	return &MeshRenderer{Mesh: mesh, Textures: map[string]string{}, Visible: true}
}

func newMeshRendererFromData(data map[string]any) (models.Component, error) {
	m := NewMeshRenderer("")
	if err := m.Configure(data); err != nil {
		return nil, err
	}
	return m, nil
}

func (*MeshRenderer) Type() models.TypeName { return MeshRendererType }

func (m *MeshRenderer) Serialize() map[string]any {
	textures := make(map[string]any, len(m.Textures))
	for channel, name := range m.Textures {
		textures[channel] = name
	}
	return map[string]any{
		"mesh":     m.Mesh,
		"textures": textures,
		"visible":  m.Visible,
	}
}

func (m *MeshRenderer) Configure(data map[string]any) error {
	// yaml would happily turn a number into a string field
	if raw, ok := data["mesh"]; ok {
		if _, isString := raw.(string); !isString {
			return fmt.Errorf("%w: mesh must be a resource name, got %T", models.ErrInvalidComponentData, raw)
		}
	}
	m.ConfigureBase(data)
	if err := decode(data, m); err != nil {
		return err
	}
	if m.Textures == nil {
		m.Textures = map[string]string{}
	}
	return nil
}

func (m *MeshRenderer) Resources(res map[string]bool) {
	if m.Mesh != "" {
		res[m.Mesh] = true
	}
	for _, name := range m.Textures {
		if name != "" {
			res[name] = true
		}
	}
}
