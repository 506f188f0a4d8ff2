package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
)

func TestParseEmptyYieldsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, log.LevelInfo, cfg.LogLevel())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
log:
  level: debug
ids:
  prefix: "#"
scene:
  default_transform: false
  output_format: yaml
`))
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel())
	assert.Equal(t, "console", cfg.Log.Encoding, "unset keys keep their default")
	assert.Equal(t, "#", cfg.IDs.Prefix)
	assert.False(t, cfg.Scene.DefaultTransform)
	assert.Equal(t, "yaml", cfg.Scene.OutputFormat)
}

func TestParseValidation(t *testing.T) {
	cases := map[string]string{
		"level":    "log:\n  level: chatty\n",
		"encoding": "log:\n  encoding: xml\n",
		"format":   "scene:\n  output_format: toml\n",
		"syntax":   "log: [\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenetool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, cfg.LogLevel())

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
