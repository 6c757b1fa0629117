// Package binding exposes the material system through plain int64 handles
// and string mode names, the shape a foreign-function layer calls into.
// Names are parsed into typed values here, once, before reaching a material.
package binding

import (
	"errors"
	"fmt"

	"github.com/gekko3d/shading/logging"
	"github.com/gekko3d/shading/material"
	"github.com/gekko3d/shading/texture"
)

type Bindings struct {
	materials *material.Table
	textures  *texture.Registry
	log       logging.Logger
}

func New(materials *material.Table, textures *texture.Registry, log logging.Logger) *Bindings {
	return &Bindings{
		materials: materials,
		textures:  textures,
		log:       logging.OrNop(log),
	}
}

func (b *Bindings) CreateMaterial() (int64, error) {
	h, _, err := b.materials.Create()
	if err != nil {
		b.log.Errorf("create material: %v", err)
		return 0, err
	}
	return int64(h), nil
}

// DestroyMaterial is a no-op for zero and stale handles.
func (b *Bindings) DestroyMaterial(handle int64) {
	b.materials.Destroy(material.Handle(handle))
}

func (b *Bindings) SetWritesToDepthBuffer(handle int64, v bool) error {
	return b.apply(handle, "writesToDepthBuffer", func(m *material.Material) error {
		return m.SetWritesToDepthBuffer(v)
	})
}

func (b *Bindings) SetReadsFromDepthBuffer(handle int64, v bool) error {
	return b.apply(handle, "readsFromDepthBuffer", func(m *material.Material) error {
		return m.SetReadsFromDepthBuffer(v)
	})
}

// SetTexture binds a registry texture to a slot. A zero texture handle clears
// the slot; any other handle must name a live texture.
func (b *Bindings) SetTexture(handle int64, textureHandle int64, slot string) error {
	if textureHandle != 0 && !b.textures.Contains(texture.Handle(textureHandle)) {
		err := fmt.Errorf("%w: texture %d", material.ErrInvalidHandle, textureHandle)
		b.log.Warnf("set texture on material %d: %v", handle, err)
		return err
	}
	return b.apply(handle, "texture", func(m *material.Material) error {
		return m.SetTexture(slot, material.TextureRef(textureHandle))
	})
}

func (b *Bindings) SetColor(handle int64, color int64, slot string) error {
	return b.apply(handle, "color", func(m *material.Material) error {
		c, err := material.ColorFromInt64(color)
		if err != nil {
			return err
		}
		return m.SetColor(slot, c)
	})
}

func (b *Bindings) SetShininess(handle int64, v float64) error {
	return b.apply(handle, "shininess", func(m *material.Material) error {
		return m.SetShininess(v)
	})
}

func (b *Bindings) SetFresnelExponent(handle int64, v float64) error {
	return b.apply(handle, "fresnelExponent", func(m *material.Material) error {
		return m.SetFresnelExponent(v)
	})
}

func (b *Bindings) SetLightingModel(handle int64, name string) error {
	return b.apply(handle, "lightingModel", func(m *material.Material) error {
		return m.SetLightingModelName(name)
	})
}

func (b *Bindings) SetTransparencyMode(handle int64, name string) error {
	return b.apply(handle, "transparencyMode", func(m *material.Material) error {
		return m.SetTransparencyModeName(name)
	})
}

func (b *Bindings) SetCullMode(handle int64, name string) error {
	return b.apply(handle, "cullMode", func(m *material.Material) error {
		return m.SetCullModeName(name)
	})
}

func (b *Bindings) SetBlendMode(handle int64, name string) error {
	return b.apply(handle, "blendMode", func(m *material.Material) error {
		return m.SetBlendModeName(name)
	})
}

func (b *Bindings) SetDiffuseIntensity(handle int64, v float32) error {
	return b.apply(handle, "diffuseIntensity", func(m *material.Material) error {
		return m.SetDiffuseIntensity(v)
	})
}

func (b *Bindings) SetBloomThreshold(handle int64, v float32) error {
	return b.apply(handle, "bloomThreshold", func(m *material.Material) error {
		return m.SetBloomThreshold(v)
	})
}

func (b *Bindings) SetTransparency(handle int64, v float32) error {
	return b.apply(handle, "transparency", func(m *material.Material) error {
		return m.SetTransparency(v)
	})
}

func (b *Bindings) SetName(handle int64, name string) error {
	return b.apply(handle, "name", func(m *material.Material) error {
		return m.SetName(name)
	})
}

// CreateTexture registers RGBA8 texels with the texture registry.
func (b *Bindings) CreateTexture(width, height uint32, texels []uint8) (int64, error) {
	h, err := b.textures.Create(width, height, texture.FormatRGBA8Unorm, texels)
	if err != nil {
		return 0, err
	}
	return int64(h), nil
}

func (b *Bindings) DestroyTexture(textureHandle int64) {
	b.textures.Destroy(texture.Handle(textureHandle))
}

func (b *Bindings) apply(handle int64, attr string, fn func(m *material.Material) error) error {
	m, err := b.materials.Resolve(material.Handle(handle))
	if err != nil {
		b.log.Warnf("set %s: %v", attr, err)
		return err
	}
	if err := fn(m); err != nil {
		if errors.Is(err, material.ErrInvalidHandle) {
			err = fmt.Errorf("%w: %s", material.ErrInvalidHandle, material.Handle(handle))
		}
		b.log.Warnf("set %s on %s: %v", attr, material.Handle(handle), err)
		return err
	}
	return nil
}
