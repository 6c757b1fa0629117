package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLightingModel(t *testing.T) {
	tests := []struct {
		in   string
		want LightingModel
	}{
		{"Constant", LightingModelConstant},
		{"lambert", LightingModelLambert},
		{"Blinn", LightingModelBlinn},
		{"PHONG", LightingModelPhong},
		{"PhysicallyBased", LightingModelPhysicallyBased},
		{"PBR", LightingModelPhysicallyBased},
		{" Blinn ", LightingModelBlinn},
	}
	for _, tt := range tests {
		got, err := ParseLightingModel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLightingModel("NotARealModel")
	assert.ErrorIs(t, err, ErrInvalidAttributeValue)
}

func TestParseModes_RoundTripNames(t *testing.T) {
	for _, name := range transparencyModeNames {
		m, err := ParseTransparencyMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	for _, name := range cullModeNames {
		m, err := ParseCullMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	for _, name := range blendModeNames {
		m, err := ParseBlendMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	assert.Equal(t, "CullMode(?)", CullMode(9).String())
}

func TestColor(t *testing.T) {
	c, err := ColorFromInt64(-16777216) // opaque black as a signed 32-bit int
	require.NoError(t, err)
	assert.Equal(t, ColorBlack, c)

	c, err = ColorFromInt64(0xFF336699)
	require.NoError(t, err)
	assert.Equal(t, ColorFromRGBA(0x33, 0x66, 0x99, 0xFF), c)

	_, err = ColorFromInt64(1 << 40)
	assert.ErrorIs(t, err, ErrInvalidAttributeValue)

	v := ColorFromRGBA(255, 0, 51, 255).Vec4()
	assert.InDelta(t, 1.0, v.X(), 1e-6)
	assert.InDelta(t, 0.0, v.Y(), 1e-6)
	assert.InDelta(t, 0.2, v.Z(), 1e-6)
	assert.InDelta(t, 1.0, v.W(), 1e-6)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, Color(0xFFFF0000), c)

	c, err = ParseColor("#8000FF00")
	require.NoError(t, err)
	assert.Equal(t, Color(0x8000FF00), c)

	c, err = ParseColor("Crimson")
	require.NoError(t, err)
	assert.Equal(t, ColorFromRGBA(0xdc, 0x14, 0x3c, 0xff), c)

	for _, bad := range []string{"#FFF", "#GG0000", "notacolor"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidAttributeValue, bad)
	}
}
