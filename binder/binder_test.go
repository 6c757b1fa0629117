package binder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/shading/material"
	"github.com/gekko3d/shading/texture"
)

func setup(t *testing.T) (*material.Table, *texture.Registry, *Binder) {
	t.Helper()
	tbl, err := material.NewTable()
	require.NoError(t, err)
	reg := texture.NewRegistry(nil)
	return tbl, reg, New(tbl, reg, nil)
}

func TestBind_ShininessAndLightingModel(t *testing.T) {
	tbl, _, b := setup(t)
	h, m, err := tbl.Create()
	require.NoError(t, err)

	require.NoError(t, m.SetShininess(0.5))
	require.NoError(t, m.SetLightingModelName("Blinn"))

	snap, err := b.Bind(h)
	require.NoError(t, err)
	assert.Equal(t, 0.5, snap.Shininess)
	assert.Equal(t, material.LightingModelBlinn, snap.LightingModel)
}

func TestBind_RejectedModelLeavesSnapshotUnchanged(t *testing.T) {
	tbl, _, b := setup(t)
	h, m, err := tbl.Create()
	require.NoError(t, err)
	require.NoError(t, m.SetLightingModelName("Lambert"))

	err = m.SetLightingModelName("NotARealModel")
	assert.ErrorIs(t, err, material.ErrInvalidAttributeValue)

	snap, err := b.Bind(h)
	require.NoError(t, err)
	assert.Equal(t, material.LightingModelLambert, snap.LightingModel)
}

func TestBind_DestroyedHandle(t *testing.T) {
	tbl, _, b := setup(t)
	h, _, err := tbl.Create()
	require.NoError(t, err)

	tbl.Destroy(h)
	_, err = b.Bind(h)
	assert.ErrorIs(t, err, material.ErrInvalidHandle)

	_, err = b.Bind(0)
	assert.ErrorIs(t, err, material.ErrInvalidHandle)
	assert.Equal(t, uint64(2), b.Stats().Failed)
}

func TestBindFrame_DirtyTracking(t *testing.T) {
	tbl, _, b := setup(t)
	h1, m1, err := tbl.Create()
	require.NoError(t, err)
	h2, _, err := tbl.Create()
	require.NoError(t, err)

	f := b.BindFrame([]material.Handle{h1, h2, h1})
	assert.Equal(t, uint64(1), f.Index)
	assert.Len(t, f.Bindings, 2)
	assert.ElementsMatch(t, []material.Handle{h1, h2}, f.Dirty)

	f = b.BindFrame([]material.Handle{h1, h2})
	assert.Empty(t, f.Dirty)

	require.NoError(t, m1.SetCullModeName("Front"))
	f = b.BindFrame([]material.Handle{h1, h2})
	assert.Equal(t, []material.Handle{h1}, f.Dirty)
	assert.Equal(t, material.CullModeFront, f.Bindings[0].Snapshot.CullMode)

	// h2 drops out of the scene and comes back dirty
	b.BindFrame([]material.Handle{h1})
	f = b.BindFrame([]material.Handle{h1, h2})
	assert.Equal(t, []material.Handle{h2}, f.Dirty)

	assert.Equal(t, uint64(5), b.Stats().Frames)
}

func TestBindFrame_CollectsFailures(t *testing.T) {
	tbl, _, b := setup(t)
	live, _, err := tbl.Create()
	require.NoError(t, err)
	gone, _, err := tbl.Create()
	require.NoError(t, err)
	tbl.Destroy(gone)

	f := b.BindFrame([]material.Handle{gone, live})
	require.Len(t, f.Bindings, 1)
	assert.Equal(t, live, f.Bindings[0].Handle)
	assert.ErrorIs(t, f.Failed[gone], material.ErrInvalidHandle)
	assert.NotContains(t, f.Dirty, gone)
}

func TestBindFrame_WeakTextures(t *testing.T) {
	tbl, reg, b := setup(t)
	h, m, err := tbl.Create()
	require.NoError(t, err)

	diffuse, err := reg.Create(1, 1, texture.FormatRGBA8Unorm, make([]uint8, 4))
	require.NoError(t, err)
	normal, err := reg.Create(1, 1, texture.FormatRGBA8Unorm, make([]uint8, 4))
	require.NoError(t, err)
	require.NoError(t, m.SetTexture(material.SlotDiffuseTexture, material.TextureRef(diffuse)))
	require.NoError(t, m.SetTexture(material.SlotNormalTexture, material.TextureRef(normal)))

	reg.Destroy(normal)

	f := b.BindFrame([]material.Handle{h})
	require.Len(t, f.Bindings, 1)
	bnd := f.Bindings[0]
	assert.Contains(t, bnd.Textures, material.SlotDiffuseTexture)
	assert.NotContains(t, bnd.Textures, material.SlotNormalTexture)
	assert.Equal(t, []string{material.SlotNormalTexture}, bnd.Missing)

	// the material keeps its reference; only resolution fails
	ref, ok := bnd.Snapshot.Texture(material.SlotNormalTexture)
	assert.True(t, ok)
	assert.Equal(t, material.TextureRef(normal), ref)
}

func TestBind_NilTextureSource(t *testing.T) {
	tbl, err := material.NewTable()
	require.NoError(t, err)
	b := New(tbl, nil, nil)
	h, m, err := tbl.Create()
	require.NoError(t, err)
	require.NoError(t, m.SetTexture(material.SlotDiffuseTexture, 3))

	f := b.BindFrame([]material.Handle{h})
	assert.Equal(t, []string{material.SlotDiffuseTexture}, f.Bindings[0].Missing)
}

// A renderer binding while another goroutine destroys materials must either
// get a complete snapshot or ErrInvalidHandle.
func TestBind_ConcurrentDestroy(t *testing.T) {
	tbl, _, b := setup(t)
	handles := make([]material.Handle, 200)
	for i := range handles {
		h, m, err := tbl.Create()
		require.NoError(t, err)
		require.NoError(t, m.Update(func(d *material.Draft) error {
			if err := d.SetShininess(7); err != nil {
				return err
			}
			return d.SetFresnelExponent(7)
		}))
		handles[i] = h
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, h := range handles {
			tbl.Destroy(h)
		}
	}()

	for round := 0; round < 20; round++ {
		for _, h := range handles {
			snap, err := b.Bind(h)
			if err != nil {
				require.ErrorIs(t, err, material.ErrInvalidHandle)
				continue
			}
			require.Equal(t, 7.0, snap.Shininess)
			require.Equal(t, 7.0, snap.FresnelExponent)
		}
	}
	wg.Wait()

	for _, h := range handles {
		_, err := b.Bind(h)
		assert.ErrorIs(t, err, material.ErrInvalidHandle)
	}
}
