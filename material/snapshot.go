package material

import (
	"sort"

	"github.com/google/uuid"
)

// TextureRef is a weak reference into a texture registry. Zero means no texture.
type TextureRef int64

// Snapshot is an immutable copy of a material taken at a single version.
// The texture and color maps are shared between snapshots and only exposed
// through read accessors.
type Snapshot struct {
	Properties
	ID      uuid.UUID
	Version uint64

	textures map[string]TextureRef
	colors   map[string]Color
}

// Texture returns the texture bound to slot.
func (s Snapshot) Texture(slot string) (TextureRef, bool) {
	ref, ok := s.textures[slot]
	return ref, ok
}

// Color returns the color bound to slot.
func (s Snapshot) Color(slot string) (Color, bool) {
	c, ok := s.colors[slot]
	return c, ok
}

// ColorOr returns the color bound to slot, or def if the slot is empty.
func (s Snapshot) ColorOr(slot string, def Color) Color {
	if c, ok := s.colors[slot]; ok {
		return c
	}
	return def
}

// TextureSlots lists bound texture slots in sorted order.
func (s Snapshot) TextureSlots() []string { return sortedKeys(s.textures) }

// ColorSlots lists bound color slots in sorted order.
func (s Snapshot) ColorSlots() []string { return sortedKeys(s.colors) }

// Textures returns a copy of the slot -> texture bindings.
func (s Snapshot) Textures() map[string]TextureRef {
	out := make(map[string]TextureRef, len(s.textures))
	for k, v := range s.textures {
		out[k] = v
	}
	return out
}

// Colors returns a copy of the slot -> color bindings.
func (s Snapshot) Colors() map[string]Color {
	out := make(map[string]Color, len(s.colors))
	for k, v := range s.colors {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
