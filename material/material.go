// Package material holds the shading state of renderable surfaces and the
// handle table that owns it.
//
// A Material publishes its state as immutable Snapshots. Writers serialize on
// a per-material mutex and swap in a new snapshot when a change commits;
// readers load the current snapshot without locking.
package material

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type Material struct {
	id uuid.UUID

	mu        sync.Mutex // serializes writers
	destroyed atomic.Bool
	current   atomic.Pointer[Snapshot]
}

// New returns a material carrying the default attributes.
func New() *Material {
	return NewWithDefaults(DefaultProperties(), nil)
}

// NewWithDefaults returns a material starting from props and the given
// default colors. Callers are expected to have validated props; when colors
// is nil the diffuse color defaults to white.
func NewWithDefaults(props Properties, colors map[string]Color) *Material {
	m := &Material{id: uuid.New()}
	if colors == nil {
		colors = map[string]Color{SlotDiffuseColor: ColorWhite}
	}
	cp := make(map[string]Color, len(colors))
	for k, v := range colors {
		cp[k] = v
	}
	m.current.Store(&Snapshot{
		Properties: props,
		ID:         m.id,
		Version:    0,
		textures:   map[string]TextureRef{},
		colors:     cp,
	})
	return m
}

func (m *Material) ID() uuid.UUID { return m.id }

// Version is incremented by every successful update.
func (m *Material) Version() uint64 { return m.current.Load().Version }

// Snapshot returns the latest committed state.
func (m *Material) Snapshot() Snapshot { return *m.current.Load() }

// Destroyed reports whether the owning table has released the material.
func (m *Material) Destroyed() bool { return m.destroyed.Load() }

func (m *Material) markDestroyed() { m.destroyed.Store(true) }

// Update runs fn against a draft of the current state. If fn returns nil the
// draft is published as one new version; otherwise nothing changes.
func (m *Material) Update(fn func(d *Draft) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed.Load() {
		return ErrInvalidHandle
	}
	cur := m.current.Load()
	d := newDraft(cur)
	err := fn(d)
	d.close()
	if err != nil {
		return err
	}
	m.current.Store(&Snapshot{
		Properties: d.props,
		ID:         m.id,
		Version:    cur.Version + 1,
		textures:   d.textures,
		colors:     d.colors,
	})
	return nil
}

func (m *Material) SetName(name string) error {
	return m.Update(func(d *Draft) error { return d.SetName(name) })
}

func (m *Material) SetWritesToDepthBuffer(v bool) error {
	return m.Update(func(d *Draft) error { return d.SetWritesDepth(v) })
}

func (m *Material) SetReadsFromDepthBuffer(v bool) error {
	return m.Update(func(d *Draft) error { return d.SetReadsDepth(v) })
}

func (m *Material) SetShininess(v float64) error {
	return m.Update(func(d *Draft) error { return d.SetShininess(v) })
}

func (m *Material) SetFresnelExponent(v float64) error {
	return m.Update(func(d *Draft) error { return d.SetFresnelExponent(v) })
}

func (m *Material) SetDiffuseIntensity(v float32) error {
	return m.Update(func(d *Draft) error { return d.SetDiffuseIntensity(v) })
}

func (m *Material) SetBloomThreshold(v float32) error {
	return m.Update(func(d *Draft) error { return d.SetBloomThreshold(v) })
}

func (m *Material) SetTransparency(v float32) error {
	return m.Update(func(d *Draft) error { return d.SetTransparency(v) })
}

func (m *Material) SetLightingModel(model LightingModel) error {
	return m.Update(func(d *Draft) error { return d.SetLightingModel(model) })
}

func (m *Material) SetTransparencyMode(mode TransparencyMode) error {
	return m.Update(func(d *Draft) error { return d.SetTransparencyMode(mode) })
}

func (m *Material) SetCullMode(mode CullMode) error {
	return m.Update(func(d *Draft) error { return d.SetCullMode(mode) })
}

func (m *Material) SetBlendMode(mode BlendMode) error {
	return m.Update(func(d *Draft) error { return d.SetBlendMode(mode) })
}

func (m *Material) SetTexture(slot string, ref TextureRef) error {
	return m.Update(func(d *Draft) error { return d.SetTexture(slot, ref) })
}

func (m *Material) SetColor(slot string, c Color) error {
	return m.Update(func(d *Draft) error { return d.SetColor(slot, c) })
}

// The named setters parse once at the boundary and then go through the typed path.

func (m *Material) SetLightingModelName(name string) error {
	model, err := ParseLightingModel(name)
	if err != nil {
		return err
	}
	return m.SetLightingModel(model)
}

func (m *Material) SetTransparencyModeName(name string) error {
	mode, err := ParseTransparencyMode(name)
	if err != nil {
		return err
	}
	return m.SetTransparencyMode(mode)
}

func (m *Material) SetCullModeName(name string) error {
	mode, err := ParseCullMode(name)
	if err != nil {
		return err
	}
	return m.SetCullMode(mode)
}

func (m *Material) SetBlendModeName(name string) error {
	mode, err := ParseBlendMode(name)
	if err != nil {
		return err
	}
	return m.SetBlendMode(mode)
}
