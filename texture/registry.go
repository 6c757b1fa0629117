// Package texture keeps the textures materials refer to. Materials hold weak
// references only; a texture destroyed here simply stops resolving.
package texture

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/gekko3d/shading/logging"
)

type Handle int64

type Format uint32

const (
	FormatR8Unorm    Format = 0x00000001
	FormatRGBA8Unorm Format = 0x00000012
	FormatRGBA8Uint  Format = 0x00000015
)

func (f Format) BytesPerPixel() int {
	switch f {
	case FormatR8Unorm:
		return 1
	case FormatRGBA8Unorm, FormatRGBA8Uint:
		return 4
	default:
		return 0
	}
}

var (
	ErrUnknownFormat = errors.New("texture: unknown format")
	ErrBadDimensions = errors.New("texture: bad dimensions")
)

type Texture struct {
	AssetID uuid.UUID
	Width   uint32
	Height  uint32
	Format  Format
	Texels  []uint8
}

type Registry struct {
	mu       sync.RWMutex
	textures map[Handle]*Texture
	next     Handle
	log      logging.Logger
}

func NewRegistry(log logging.Logger) *Registry {
	return &Registry{
		textures: make(map[Handle]*Texture),
		log:      logging.OrNop(log),
	}
}

// Create registers raw texels. The slice is retained, not copied.
func (r *Registry) Create(width, height uint32, format Format, texels []uint8) (Handle, error) {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return 0, fmt.Errorf("%w: %#x", ErrUnknownFormat, uint32(format))
	}
	if width == 0 || height == 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	pixels := uint64(width) * uint64(height)
	if pixels > uint64(math.MaxInt)/uint64(bpp) {
		return 0, fmt.Errorf("%w: %dx%d is too large", ErrBadDimensions, width, height)
	}
	if want := int(pixels) * bpp; len(texels) != want {
		return 0, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrBadDimensions, width, height, want, len(texels))
	}

	tex := &Texture{
		AssetID: uuid.New(),
		Width:   width,
		Height:  height,
		Format:  format,
		Texels:  texels,
	}

	r.mu.Lock()
	r.next++
	h := r.next
	r.textures[h] = tex
	r.mu.Unlock()

	r.log.Debugf("texture %d created (%dx%d, %s)", h, width, height, tex.AssetID)
	return h, nil
}

func (r *Registry) Get(h Handle) (*Texture, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tex, ok := r.textures[h]
	return tex, ok
}

func (r *Registry) Contains(h Handle) bool {
	_, ok := r.Get(h)
	return ok
}

// Destroy drops the texture. Unknown handles are ignored.
func (r *Registry) Destroy(h Handle) bool {
	r.mu.Lock()
	_, ok := r.textures[h]
	delete(r.textures, h)
	r.mu.Unlock()
	if ok {
		r.log.Debugf("texture %d destroyed", h)
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.textures)
}
