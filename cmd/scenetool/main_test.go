package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scenegraph/internal/config"
	"github.com/zeusync/scenegraph/internal/injector"
)

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestProcessRendersScene(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "crate.yaml", `
name: crate
components:
  - [Transform, {position: [1, 0, 0]}]
  - [MeshRenderer, {mesh: crate.obj, textures: {color: crate.png}}]
  - [Mystery, {}]
`)
	rt, err := injector.InitializeRuntime(config.Default())
	require.NoError(t, err)

	out, err := process(rt, path, modeScene)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name": "crate"`)
	assert.Contains(t, string(out), `"MeshRenderer"`)
	assert.NotContains(t, string(out), "Mystery")

	out, err = process(rt, path, modeResources)
	require.NoError(t, err)
	assert.Equal(t, path+":\n  crate.obj\n  crate.png\n", string(out))
}

func TestProcessStrictComponents(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "bad.json", `{"components": [["Mystery", {}]]}`)
	cfg := config.Default()
	cfg.Scene.StrictComponents = true
	rt, err := injector.InitializeRuntime(cfg)
	require.NoError(t, err)

	_, err = process(rt, path, modeScene)
	assert.Error(t, err)
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	good := writeScene(t, dir, "ok.json", `{"name": "ok", "components": []}`)

	err := run(context.Background(), "", "toml", modeScene, []string{good})
	assert.Error(t, err)

	err = run(context.Background(), "", "", modeScene, []string{good, filepath.Join(dir, "missing.json")})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing.json"))
}

func TestProcessFingerprint(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "lamp.json", `{"uid": "@NODE-lamp", "name": "lamp", "components": [["Light", {"uid": "@COMP-light", "intensity": 2}]]}`)
	rt, err := injector.InitializeRuntime(config.Default())
	require.NoError(t, err)

	first, err := process(rt, path, modeFingerprint)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(first), "  "+path+"\n"))
	assert.Len(t, strings.Fields(string(first))[0], 16)
}
