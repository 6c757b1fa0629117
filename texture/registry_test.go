package texture

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateGetDestroy(t *testing.T) {
	r := NewRegistry(nil)

	h, err := r.Create(2, 2, FormatRGBA8Unorm, make([]uint8, 16))
	require.NoError(t, err)
	assert.NotZero(t, h)

	tex, ok := r.Get(h)
	require.True(t, ok)
	assert.Equal(t, uint32(2), tex.Width)
	assert.NotEqual(t, uuid.Nil, tex.AssetID)

	assert.True(t, r.Destroy(h))
	assert.False(t, r.Destroy(h))
	assert.False(t, r.Contains(h))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_HandlesAreDistinct(t *testing.T) {
	r := NewRegistry(nil)
	a, err := r.Create(1, 1, FormatR8Unorm, []uint8{0})
	require.NoError(t, err)
	r.Destroy(a)
	b, err := r.Create(1, 1, FormatR8Unorm, []uint8{0})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRegistry_RejectsBadInput(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Create(1, 1, Format(0xdead), []uint8{0})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = r.Create(0, 4, FormatR8Unorm, nil)
	assert.ErrorIs(t, err, ErrBadDimensions)

	_, err = r.Create(2, 2, FormatRGBA8Unorm, make([]uint8, 15))
	assert.ErrorIs(t, err, ErrBadDimensions)

	// The byte count would wrap to zero in int arithmetic.
	_, err = r.Create(1<<31, 1<<31, FormatRGBA8Unorm, nil)
	assert.ErrorIs(t, err, ErrBadDimensions)

	_, err = r.Create(math.MaxUint32, math.MaxUint32, FormatR8Unorm, nil)
	assert.ErrorIs(t, err, ErrBadDimensions)

	assert.Equal(t, 0, r.Len())
}
