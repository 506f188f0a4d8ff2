package components

import (
	"github.com/zeusync/scenegraph/internal/core/models"
)

// Transform places a node in space: position, rotation (quaternion x, y, z, w)
// and per-axis scaling.
type Transform struct {
	models.BaseComponent `yaml:"-"`

	Position [3]float64 `yaml:"position"`
	Rotation [4]float64 `yaml:"rotation"`
	Scaling  [3]float64 `yaml:"scaling"`
}

func NewTransform() *Transform {
	t := &Transform{}
	t.Reset()
	return t
}

func newTransformFromData(data map[string]any) (models.Component, error) {
	t := NewTransform()
	if err := t.Configure(data); err != nil {
		return nil, err
	}
	return t, nil
}

func (*Transform) Type() models.TypeName { return models.TransformType }

// Reset restores the identity transform.
func (t *Transform) Reset() {
	t.Position = [3]float64{}
	t.Rotation = [4]float64{0, 0, 0, 1}
	t.Scaling = [3]float64{1, 1, 1}
}

func (t *Transform) Translate(x, y, z float64) {
	t.Position[0] += x
	t.Position[1] += y
	t.Position[2] += z
}

func (t *Transform) SetScale(x, y, z float64) {
	t.Scaling = [3]float64{x, y, z}
}

func (t *Transform) Serialize() map[string]any {
	return map[string]any{
		"position": vec3(t.Position),
		"rotation": vec4(t.Rotation),
		"scaling":  vec3(t.Scaling),
	}
}

func (t *Transform) Configure(data map[string]any) error {
	t.ConfigureBase(data)
	return decode(data, t)
}

// Action exposes "reset" and "translate" (params: [3]float64).
func (t *Transform) Action(name string) (models.ActionFunc, bool) {
	switch name {
	case "reset":
		return func(any) { t.Reset() }, true
	case "translate":
		return func(params any) {
			if d, ok := params.([3]float64); ok {
				t.Translate(d[0], d[1], d[2])
			}
		}, true
	default:
		return nil, false
	}
}
