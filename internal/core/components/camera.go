package components

import (
	"github.com/zeusync/scenegraph/internal/core/models"
)

const CameraType models.TypeName = "Camera"

type Projection string

const (
	Perspective  Projection = "perspective"
	Orthographic Projection = "orthographic"
)

type Camera struct {
	models.BaseComponent `yaml:"-"`

	Projection      Projection `yaml:"type"`
	Fov             float64    `yaml:"fov"`
	Aspect          float64    `yaml:"aspect"`
	Near            float64    `yaml:"near"`
	Far             float64    `yaml:"far"`
	FrustumSize     float64    `yaml:"frustum_size"`
	Eye             [3]float64 `yaml:"eye"`
	Center          [3]float64 `yaml:"center"`
	Up              [3]float64 `yaml:"up"`
	BackgroundColor [4]float64 `yaml:"background_color"`
}

func NewCamera() *Camera {
	return &Camera{
		Projection:      Perspective,
		Fov:             45,
		Aspect:          1,
		Near:            1,
		Far:             1000,
		FrustumSize:     50,
		Eye:             [3]float64{0, 100, 100},
		Center:          [3]float64{0, 0, 0},
		Up:              [3]float64{0, 1, 0},
		BackgroundColor: [4]float64{0, 0, 0, 1},
	}
}

func newCameraFromData(data map[string]any) (models.Component, error) {
	c := NewCamera()
	if err := c.Configure(data); err != nil {
		return nil, err
	}
	return c, nil
}

func (*Camera) Type() models.TypeName { return CameraType }

func (c *Camera) LookAt(eye, center, up [3]float64) {
	c.Eye, c.Center, c.Up = eye, center, up
}

func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type":             string(c.Projection),
		"fov":              c.Fov,
		"aspect":           c.Aspect,
		"near":             c.Near,
		"far":              c.Far,
		"frustum_size":     c.FrustumSize,
		"eye":              vec3(c.Eye),
		"center":           vec3(c.Center),
		"up":               vec3(c.Up),
		"background_color": vec4(c.BackgroundColor),
	}
}

func (c *Camera) Configure(data map[string]any) error {
	c.ConfigureBase(data)
	return decode(data, c)
}

// Action exposes "resize" (params: aspect ratio as float64).
func (c *Camera) Action(name string) (models.ActionFunc, bool) {
	if name != "resize" {
		return nil, false
	}
	return func(params any) {
		if aspect, ok := params.(float64); ok && aspect > 0 {
			c.Aspect = aspect
		}
	}, true
}
