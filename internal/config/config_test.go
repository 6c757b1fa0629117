package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/shading/material"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shading.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
capacity: 64
frames: 10
log:
  prefix: viewer
  debug: true
defaults:
  lighting_model: PBR
  cull_mode: None
  shininess: 8
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.Capacity)
	assert.Equal(t, 10, c.Frames)
	assert.Equal(t, "viewer", c.Log.Prefix)
	assert.True(t, c.Log.Debug)

	p, err := c.MaterialProperties()
	require.NoError(t, err)
	assert.Equal(t, material.LightingModelPhysicallyBased, p.LightingModel)
	assert.Equal(t, material.CullModeNone, p.CullMode)
	assert.Equal(t, 8.0, p.Shininess)
	assert.Equal(t, material.TransparencyModeAOne, p.TransparencyMode)
}

func TestLoad_ColorsAndFlags(t *testing.T) {
	c, err := Load(writeFile(t, `
defaults:
  transparency: 0.5
  writes_depth: false
  colors:
    emissionColor: "#80FF0000"
    rimColor: navy
`))
	require.NoError(t, err)

	p, err := c.MaterialProperties()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), p.Transparency)
	assert.False(t, p.WritesDepth)
	assert.True(t, p.ReadsDepth)

	colors, err := c.MaterialColors()
	require.NoError(t, err)
	assert.Equal(t, material.ColorWhite, colors[material.SlotDiffuseColor])
	assert.Equal(t, material.Color(0x80FF0000), colors[material.SlotEmissionColor])
	assert.Equal(t, material.ColorFromRGBA(0, 0, 0x80, 0xFF), colors["rimColor"])

	none, err := Default().MaterialColors()
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	c, err := Load(writeFile(t, "capacity: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Frames)
	assert.Equal(t, "shading", c.Log.Prefix)
}

func TestLoad_Rejects(t *testing.T) {
	_, err := Load(writeFile(t, "defaults:\n  lighting_model: Toon\n"))
	assert.ErrorIs(t, err, material.ErrInvalidAttributeValue)

	_, err = Load(writeFile(t, "defaults:\n  shininess: -1\n"))
	assert.ErrorIs(t, err, material.ErrInvalidAttributeValue)

	_, err = Load(writeFile(t, "defaults:\n  transparency: 2\n"))
	assert.ErrorIs(t, err, material.ErrInvalidAttributeValue)

	_, err = Load(writeFile(t, "defaults:\n  colors:\n    diffuseColor: mauvish\n"))
	assert.ErrorIs(t, err, material.ErrInvalidAttributeValue)

	_, err = Load(writeFile(t, "defaults:\n  colors:\n    diffuseTexture: red\n"))
	assert.ErrorIs(t, err, material.ErrInvalidAttributeValue)

	_, err = Load(writeFile(t, "capacity: -5\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	c := Default()
	c.Capacity = 12
	c.Defaults.BlendMode = "Add"

	require.NoError(t, Save(path, c))
	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
