package components

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scenegraph/internal/core/events/bus"
	"github.com/zeusync/scenegraph/internal/core/models"
)

type host struct {
	events bus.EventBus
}

func (h *host) UID() string          { return "@NODE-test" }
func (h *host) Name() string         { return "test" }
func (h *host) Events() bus.EventBus { return h.events }

func TestTransformDefaultsAndActions(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, [4]float64{0, 0, 0, 1}, tr.Rotation)
	assert.Equal(t, [3]float64{1, 1, 1}, tr.Scaling)

	move, ok := tr.Action("translate")
	require.True(t, ok)
	move([3]float64{1, 2, 3})
	move("ignored")
	assert.Equal(t, [3]float64{1, 2, 3}, tr.Position)

	reset, ok := tr.Action("reset")
	require.True(t, ok)
	reset(nil)
	assert.Equal(t, [3]float64{}, tr.Position)

	_, ok = tr.Action("explode")
	assert.False(t, ok)
}

func TestTransformConfigureAcceptsJSONAndYAMLNumbers(t *testing.T) {
	tr := NewTransform()
	require.NoError(t, tr.Configure(map[string]any{
		"position": []any{1.5, 2.0, -3.0},
		"scaling":  []any{2, 2, 2},
	}))
	assert.Equal(t, [3]float64{1.5, 2, -3}, tr.Position)
	assert.Equal(t, [3]float64{2, 2, 2}, tr.Scaling)
	// untouched by a partial update
	assert.Equal(t, [4]float64{0, 0, 0, 1}, tr.Rotation)

	err := tr.Configure(map[string]any{"position": []any{1, 2}})
	assert.ErrorIs(t, err, models.ErrInvalidComponentData)
}

func TestSerializeConfigureRoundTrip(t *testing.T) {
	light := NewLight()
	light.Kind = LightSpot
	light.Color = [3]float64{1, 0.5, 0.25}
	light.CastShadows = true
	light.ProjectiveTexture = "gobo.png"

	camera := NewCamera()
	camera.Projection = Orthographic
	camera.LookAt([3]float64{1, 2, 3}, [3]float64{0, 0, 0}, [3]float64{0, 0, 1})

	mesh := NewMeshRenderer("crate.obj")
	mesh.Textures["color"] = "crate.png"

	tr := NewTransform()
	tr.Translate(4, 5, 6)

	reg := NewRegistry()
	for _, c := range []models.Component{light, camera, mesh, tr} {
		data := c.(models.Serializer).Serialize()

		// through JSON, the way scenes are stored on disk
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))

		rebuilt, err := reg.Create(c.Type(), decoded)
		require.NoError(t, err)
		assert.Equal(t, c.Type(), rebuilt.Type())
		assert.Equal(t, data, rebuilt.(models.Serializer).Serialize())
	}
}

func TestConfigureKeepsUID(t *testing.T) {
	l := NewLight()
	require.NoError(t, l.Configure(map[string]any{"uid": "@COMP-abc", "intensity": 3}))
	assert.Equal(t, "@COMP-abc", l.UID())
	assert.Equal(t, 3.0, l.Intensity)
}

func TestMeshRendererRejectsNonStringMesh(t *testing.T) {
	m := NewMeshRenderer("keep.obj")
	err := m.Configure(map[string]any{"mesh": 42})
	assert.ErrorIs(t, err, models.ErrInvalidComponentData)
	assert.Equal(t, "keep.obj", m.Mesh)
}

func TestResources(t *testing.T) {
	res := map[string]bool{}
	m := NewMeshRenderer("crate.obj")
	m.Textures["color"] = "crate.png"
	m.Textures["normal"] = ""
	m.Resources(res)

	l := NewLight()
	l.Resources(res)
	l.ProjectiveTexture = "gobo.png"
	l.Resources(res)

	assert.Equal(t, map[string]bool{"crate.obj": true, "crate.png": true, "gobo.png": true}, res)
}

func TestLightCollectAndUnbind(t *testing.T) {
	h := &host{events: bus.New()}
	on := NewLight()
	off := NewLight()
	off.Enabled = false
	on.OnAddedToNode(h)
	off.OnAddedToNode(h)

	lights, err := CollectLights(h)
	require.NoError(t, err)
	assert.Equal(t, []*Light{on}, lights)

	assert.Equal(t, 1, h.events.UnbindAll(h, on))
	lights, err = CollectLights(h)
	require.NoError(t, err)
	assert.Empty(t, lights)

	bare, err := CollectLights(&host{})
	require.NoError(t, err)
	assert.Nil(t, bare)
}

func TestCameraResize(t *testing.T) {
	c := NewCamera()
	resize, ok := c.Action("resize")
	require.True(t, ok)
	resize(16.0 / 9.0)
	assert.InDelta(t, 1.777, c.Aspect, 0.001)
	resize(-1.0)
	resize("wide")
	assert.InDelta(t, 1.777, c.Aspect, 0.001)
	_, ok = c.Action("zoom")
	assert.False(t, ok)
}

func TestRegisterBuiltinsTwice(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []models.TypeName{CameraType, LightType, MeshRendererType, models.TransformType}, reg.Names())
	assert.ErrorIs(t, RegisterBuiltins(reg), models.ErrTypeAlreadyRegistered)
}
