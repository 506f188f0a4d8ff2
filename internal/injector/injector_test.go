package injector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scenegraph/internal/config"
	"github.com/zeusync/scenegraph/internal/core/components"
)

func TestInitializeRuntime(t *testing.T) {
	cfg := config.Default()
	cfg.IDs.Prefix = "#"
	rt, err := InitializeRuntime(cfg)
	require.NoError(t, err)

	assert.Len(t, rt.Registry.Names(), 4)
	n := rt.NewNode("root")
	assert.True(t, strings.HasPrefix(n.UID(), "#NODE-"))
	assert.NotNil(t, n.Transform())
	assert.Same(t, rt.Bus, n.Events())

	_, err = n.AddComponent(components.NewLight())
	require.NoError(t, err)
	lights, err := n.Lights()
	require.NoError(t, err)
	assert.Len(t, lights, 1)
}

func TestRuntimeWithoutDefaultTransform(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.DefaultTransform = false
	rt, err := InitializeRuntime(cfg)
	require.NoError(t, err)
	assert.Zero(t, rt.NewNode("bare").ComponentCount())
}
