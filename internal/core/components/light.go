package components

import (
	"github.com/zeusync/scenegraph/internal/core/events/bus"
	"github.com/zeusync/scenegraph/internal/core/models"
)

const LightType models.TypeName = "Light"

// EventCollectLights is triggered on a node to gather its lights. The event
// data must be a *[]*Light.
const EventCollectLights = "collectLights"

type LightKind string

const (
	LightOmni        LightKind = "omni"
	LightSpot        LightKind = "spot"
	LightDirectional LightKind = "directional"
)

type Light struct {
	models.BaseComponent `yaml:"-"`

	Kind              LightKind  `yaml:"type"`
	Enabled           bool       `yaml:"enabled"`
	Color             [3]float64 `yaml:"color"`
	Intensity         float64    `yaml:"intensity"`
	AttStart          float64    `yaml:"att_start"`
	AttEnd            float64    `yaml:"att_end"`
	Angle             float64    `yaml:"angle"`
	AngleEnd          float64    `yaml:"angle_end"`
	CastShadows       bool       `yaml:"cast_shadows"`
	ProjectiveTexture string     `yaml:"projective_texture"`
}

func NewLight() *Light {
	return &Light{
		Kind:      LightOmni,
		Enabled:   true,
		Color:     [3]float64{1, 1, 1},
		Intensity: 1,
		AttStart:  0,
		AttEnd:    1000,
		Angle:     45,
		AngleEnd:  60,
	}
}

func newLightFromData(data map[string]any) (models.Component, error) {
	l := NewLight()
	if err := l.Configure(data); err != nil {
		return nil, err
	}
	return l, nil
}

func (*Light) Type() models.TypeName { return LightType }

func (l *Light) OnAddedToNode(host models.Host) {
	events := host.Events()
	if events == nil {
		return
	}
	_, _ = events.Bind(host, EventCollectLights, l, func(e bus.Event) error {
		if out, ok := e.Data().(*[]*Light); ok && l.Enabled {
			*out = append(*out, l)
		}
		return nil
	})
}

func (l *Light) Serialize() map[string]any {
	return map[string]any{
		"type":               string(l.Kind),
		"enabled":            l.Enabled,
		"color":              vec3(l.Color),
		"intensity":          l.Intensity,
		"att_start":          l.AttStart,
		"att_end":            l.AttEnd,
		"angle":              l.Angle,
		"angle_end":          l.AngleEnd,
		"cast_shadows":       l.CastShadows,
		"projective_texture": l.ProjectiveTexture,
	}
}

func (l *Light) Configure(data map[string]any) error {
	l.ConfigureBase(data)
	return decode(data, l)
}

func (l *Light) Resources(res map[string]bool) {
	if l.ProjectiveTexture != "" {
		res[l.ProjectiveTexture] = true
	}
}

// CollectLights triggers EventCollectLights on host and returns the enabled lights.
func CollectLights(host models.Host) ([]*Light, error) {
	var lights []*Light
	events := host.Events()
	if events == nil {
		return nil, nil
	}
	if err := events.Trigger(host, bus.NewEvent(EventCollectLights, host.UID(), &lights)); err != nil {
		return nil, err
	}
	return lights, nil
}
