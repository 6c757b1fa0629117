// Package binder hands material state to the renderer. Each frame it resolves
// the handles referenced by scene geometry, takes one snapshot per material
// and works out which materials changed since the previous frame.
package binder

import (
	"sync"
	"sync/atomic"

	"github.com/gekko3d/shading/logging"
	"github.com/gekko3d/shading/material"
	"github.com/gekko3d/shading/texture"
)

// Resolver maps handles to live materials. *material.Table satisfies it.
type Resolver interface {
	Resolve(h material.Handle) (*material.Material, error)
}

// TextureSource looks textures up without taking ownership.
type TextureSource interface {
	Get(h texture.Handle) (*texture.Texture, bool)
}

// Binding is everything the renderer needs for one material in one frame.
type Binding struct {
	Handle   material.Handle
	Snapshot material.Snapshot
	Textures map[string]*texture.Texture
	// Slots whose texture no longer exists in the registry.
	Missing []string
}

type Frame struct {
	Index    uint64
	Bindings []Binding
	Failed   map[material.Handle]error
	// Materials whose version differs from the one bound last frame, including
	// handles bound for the first time.
	Dirty []material.Handle
}

type Stats struct {
	Frames uint64
	Bound  uint64
	Failed uint64
	Dirty  uint64
}

type Binder struct {
	materials Resolver
	textures  TextureSource
	log       logging.Logger

	mu       sync.Mutex
	frame    uint64
	lastSeen map[material.Handle]uint64

	bound  atomic.Uint64
	failed atomic.Uint64
	dirty  atomic.Uint64
}

// New returns a binder. textures may be nil, in which case texture slots are
// reported as missing.
func New(materials Resolver, textures TextureSource, log logging.Logger) *Binder {
	return &Binder{
		materials: materials,
		textures:  textures,
		log:       logging.OrNop(log),
		lastSeen:  make(map[material.Handle]uint64),
	}
}

// Bind returns the current snapshot of the material behind h. A material
// destroyed concurrently either yields its last snapshot or ErrInvalidHandle,
// never a partially torn state.
func (b *Binder) Bind(h material.Handle) (material.Snapshot, error) {
	m, err := b.materials.Resolve(h)
	if err != nil {
		b.failed.Add(1)
		return material.Snapshot{}, err
	}
	b.bound.Add(1)
	return m.Snapshot(), nil
}

// ResolveTextures looks up every texture slot of snap. Slots pointing at
// textures that are gone come back in missing, sorted.
func (b *Binder) ResolveTextures(snap material.Snapshot) (resolved map[string]*texture.Texture, missing []string) {
	slots := snap.TextureSlots()
	resolved = make(map[string]*texture.Texture, len(slots))
	for _, slot := range slots {
		ref, _ := snap.Texture(slot)
		if b.textures != nil {
			if tex, ok := b.textures.Get(texture.Handle(ref)); ok {
				resolved[slot] = tex
				continue
			}
		}
		missing = append(missing, slot)
	}
	return resolved, missing
}

// BindFrame binds every handle once, in order. Duplicate handles are bound a
// single time. Failures do not abort the frame.
func (b *Binder) BindFrame(handles []material.Handle) *Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frame++
	f := &Frame{
		Index:    b.frame,
		Bindings: make([]Binding, 0, len(handles)),
		Failed:   make(map[material.Handle]error),
	}

	visited := make(map[material.Handle]struct{}, len(handles))
	for _, h := range handles {
		if _, dup := visited[h]; dup {
			continue
		}
		visited[h] = struct{}{}

		snap, err := b.Bind(h)
		if err != nil {
			f.Failed[h] = err
			b.log.Debugf("frame %d: bind %s failed: %v", f.Index, h, err)
			continue
		}
		if v, ok := b.lastSeen[h]; !ok || v != snap.Version {
			f.Dirty = append(f.Dirty, h)
			b.lastSeen[h] = snap.Version
		}

		textures, missing := b.ResolveTextures(snap)
		if len(missing) > 0 {
			b.log.Debugf("frame %d: %s has missing textures %v", f.Index, h, missing)
		}
		f.Bindings = append(f.Bindings, Binding{
			Handle:   h,
			Snapshot: snap,
			Textures: textures,
			Missing:  missing,
		})
	}

	// Forget materials that were not part of this frame so a recycled slot or
	// a returning handle starts out dirty.
	for h := range b.lastSeen {
		if _, ok := visited[h]; !ok {
			delete(b.lastSeen, h)
			continue
		}
		if _, failed := f.Failed[h]; failed {
			delete(b.lastSeen, h)
		}
	}

	b.dirty.Add(uint64(len(f.Dirty)))
	return f
}

func (b *Binder) Stats() Stats {
	b.mu.Lock()
	frames := b.frame
	b.mu.Unlock()
	return Stats{
		Frames: frames,
		Bound:  b.bound.Load(),
		Failed: b.failed.Load(),
		Dirty:  b.dirty.Load(),
	}
}
