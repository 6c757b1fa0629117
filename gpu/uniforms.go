package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/shading/material"
)

// textureSlots fixes the bit each engine texture occupies in Uniforms.TextureMask.
var textureSlots = []string{
	material.SlotDiffuseTexture,
	material.SlotSpecularTexture,
	material.SlotNormalTexture,
	material.SlotReflectiveTexture,
	material.SlotEmissionTexture,
	material.SlotMultiplyTexture,
	material.SlotRoughnessTexture,
	material.SlotMetalnessTexture,
	material.SlotAmbientOcclusionTexture,
}

// TextureBit returns the mask bit for slot, or 0 for slots the shaders do not sample.
func TextureBit(slot string) uint32 {
	for i, s := range textureSlots {
		if s == slot {
			return 1 << i
		}
	}
	return 0
}

// Uniforms mirrors the per-material uniform block in the shaders. 80 bytes,
// 16-byte aligned.
type Uniforms struct {
	DiffuseColor     mgl32.Vec4
	SpecularColor    mgl32.Vec4
	EmissionColor    mgl32.Vec4
	Shininess        float32
	FresnelExponent  float32
	DiffuseIntensity float32
	BloomThreshold   float32
	Transparency     float32
	LightingModel    uint32
	TransparencyMode uint32
	TextureMask      uint32
}

const UniformsSize = 80

func PackUniforms(snap material.Snapshot) Uniforms {
	u := Uniforms{
		DiffuseColor:     snap.ColorOr(material.SlotDiffuseColor, material.ColorWhite).Vec4(),
		SpecularColor:    snap.ColorOr(material.SlotSpecularColor, material.ColorWhite).Vec4(),
		EmissionColor:    snap.ColorOr(material.SlotEmissionColor, 0).Vec4(),
		Shininess:        float32(snap.Shininess),
		FresnelExponent:  float32(snap.FresnelExponent),
		DiffuseIntensity: snap.DiffuseIntensity,
		BloomThreshold:   snap.BloomThreshold,
		Transparency:     snap.Transparency,
		LightingModel:    uint32(snap.LightingModel),
		TransparencyMode: uint32(snap.TransparencyMode),
	}
	for _, slot := range snap.TextureSlots() {
		u.TextureMask |= TextureBit(slot)
	}
	return u
}

func (u Uniforms) Bytes() []byte {
	return wgpu.ToBytes([]Uniforms{u})
}
