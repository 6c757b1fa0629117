// Package gpu turns bound material snapshots into render pipeline state and
// uniform data for the wgpu renderer.
package gpu

import (
	"sort"

	"github.com/gekko3d/shading/binder"
	"github.com/gekko3d/shading/material"
	"github.com/gekko3d/shading/texture"
)

type Draw struct {
	Handle      material.Handle
	Key         PipelineKey
	Uniforms    Uniforms
	Textures    map[string]*texture.Texture
	// Dirty is set when the uniform buffer for this material must be re-uploaded.
	Dirty       bool
	Translucent bool
}

// Translucent reports whether a material blends with what is behind it. A
// blending material that is fully opaque is drawn with the opaque set.
func Translucent(snap material.Snapshot) bool {
	if snap.BlendMode == material.BlendModeNone {
		return false
	}
	if snap.Transparency < 1 || snap.TransparencyMode == material.TransparencyModeRGBZero {
		return true
	}
	return snap.ColorOr(material.SlotDiffuseColor, material.ColorWhite).A() < 0xFF
}

// BuildDrawList orders a frame's bindings for submission: opaque pipelines
// first, then translucent ones, grouping equal keys to minimize pipeline
// switches. Order is otherwise stable.
func BuildDrawList(f *binder.Frame) []Draw {
	dirty := make(map[material.Handle]bool, len(f.Dirty))
	for _, h := range f.Dirty {
		dirty[h] = true
	}

	draws := make([]Draw, 0, len(f.Bindings))
	for _, b := range f.Bindings {
		draws = append(draws, Draw{
			Handle:      b.Handle,
			Key:         KeyFor(b.Snapshot),
			Uniforms:    PackUniforms(b.Snapshot),
			Textures:    b.Textures,
			Dirty:       dirty[b.Handle],
			Translucent: Translucent(b.Snapshot),
		})
	}

	sort.SliceStable(draws, func(i, j int) bool {
		if draws[i].Translucent != draws[j].Translucent {
			return !draws[i].Translucent
		}
		return keyLess(draws[i].Key, draws[j].Key)
	})
	return draws
}

func keyLess(a, b PipelineKey) bool {
	if a.LightingModel != b.LightingModel {
		return a.LightingModel < b.LightingModel
	}
	if a.BlendMode != b.BlendMode {
		return a.BlendMode < b.BlendMode
	}
	if a.CullMode != b.CullMode {
		return a.CullMode < b.CullMode
	}
	if a.DepthWrite != b.DepthWrite {
		return a.DepthWrite
	}
	if a.DepthTest != b.DepthTest {
		return a.DepthTest
	}
	return false
}
