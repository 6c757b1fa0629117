package shading

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/shading/binding"
	"github.com/gekko3d/shading/gpu"
	"github.com/gekko3d/shading/material"
)

func newRenderApp(t *testing.T, factory gpu.PipelineFactory) *App {
	t.Helper()
	return NewAppBuilder().
		UseModule(MaterialModule{Capacity: 16}, RenderModule{Factory: factory}).
		Build()
}

func mustResource[T any](t *testing.T, app *App) *T {
	t.Helper()
	r, ok := Resource[T](app)
	require.True(t, ok)
	return r
}

func TestRenderModule_FrameLoop(t *testing.T) {
	var built []gpu.PipelineKey
	app := newRenderApp(t, func(st gpu.PipelineState) (*wgpu.RenderPipeline, error) {
		built = append(built, st.Key)
		return nil, nil
	})
	api := mustResource[binding.Bindings](t, app)
	scene := mustResource[MaterialScene](t, app)
	state := mustResource[RenderState](t, app)

	a, err := api.CreateMaterial()
	require.NoError(t, err)
	b, err := api.CreateMaterial()
	require.NoError(t, err)
	require.NoError(t, api.SetLightingModel(b, "Lambert"))
	scene.Attach(material.Handle(a), material.Handle(b), material.Handle(a))

	app.Step()
	require.NotNil(t, state.Frame)
	assert.Len(t, state.Draws, 2)
	assert.Len(t, state.Pipelines, 2)
	assert.Equal(t, 2, state.Uploaded)
	assert.Len(t, built, 2)

	app.Step()
	assert.Equal(t, 0, state.Uploaded)
	assert.Len(t, built, 2)

	require.NoError(t, api.SetShininess(a, 12))
	app.Step()
	assert.Equal(t, 1, state.Uploaded)
	assert.Len(t, built, 2, "uniform-only changes reuse the pipeline")

	api.DestroyMaterial(b)
	app.Step()
	assert.Len(t, state.Draws, 1)
	assert.Contains(t, state.Frame.Failed, material.Handle(b))

	scene.Detach(material.Handle(b))
	app.Step()
	assert.Empty(t, state.Frame.Failed)
	assert.Equal(t, uint64(5), app.Frame())
}

func TestMaterialModule_Defaults(t *testing.T) {
	props := material.DefaultProperties()
	props.CullMode = material.CullModeFront
	app := NewApp().UseModules(MaterialModule{Defaults: &props})

	table := mustResource[material.Table](t, app)
	_, m, err := table.Create()
	require.NoError(t, err)
	assert.Equal(t, material.CullModeFront, m.Snapshot().CullMode)
	assert.Equal(t, material.ColorWhite, m.Snapshot().ColorOr(material.SlotDiffuseColor, 0))
}

func TestMaterialModule_Capacity(t *testing.T) {
	app := NewApp().UseModules(MaterialModule{Capacity: 1})
	api := mustResource[binding.Bindings](t, app)

	_, err := api.CreateMaterial()
	require.NoError(t, err)
	_, err = api.CreateMaterial()
	assert.ErrorIs(t, err, material.ErrAllocationFailure)
}

func TestMaterialScene(t *testing.T) {
	s := &MaterialScene{}
	s.Attach(1, 2, 2, 3)
	s.Detach(2)
	assert.Equal(t, []material.Handle{1, 3}, s.Handles())
}
