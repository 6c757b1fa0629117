package shading

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/shading/binder"
	"github.com/gekko3d/shading/gpu"
)

// RenderModule binds the scene's materials once per frame and prepares the
// draw list. Factory builds pipelines for new render-state combinations; when
// nil, pipelines are recorded by key only, which suits headless runs.
type RenderModule struct {
	Factory gpu.PipelineFactory
}

// RenderState is what the render systems produced for the latest frame.
type RenderState struct {
	Frame *binder.Frame
	Draws []gpu.Draw
	// Pipelines used by Draws, indexed alike.
	Pipelines []*wgpu.RenderPipeline
	Uploaded  int
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	factory := m.Factory
	if factory == nil {
		factory = func(gpu.PipelineState) (*wgpu.RenderPipeline, error) { return nil, nil }
	}
	cache, err := gpu.NewPipelineCache(factory)
	if err != nil {
		panic(err)
	}
	cmd.AddResources(cache, &RenderState{})

	app.UseSystem(System(bindMaterialsSystem).InStage(PreRender))
	app.UseSystem(System(prepareDrawsSystem).InStage(Render))
}

func bindMaterialsSystem(cmd *Commands, b *binder.Binder, scene *MaterialScene, state *RenderState) {
	state.Frame = b.BindFrame(scene.Handles())
	if n := len(state.Frame.Failed); n > 0 {
		cmd.Logger().Warnf("frame %d: %d materials failed to bind", cmd.Frame(), n)
	}
}

func prepareDrawsSystem(cmd *Commands, cache *gpu.PipelineCache, state *RenderState) {
	if state.Frame == nil {
		return
	}
	state.Draws = gpu.BuildDrawList(state.Frame)
	state.Pipelines = state.Pipelines[:0]
	state.Uploaded = 0
	for _, d := range state.Draws {
		p, err := cache.Get(d.Key)
		if err != nil {
			cmd.Logger().Errorf("frame %d: pipeline for %s: %v", cmd.Frame(), d.Handle, err)
		}
		state.Pipelines = append(state.Pipelines, p)
		if d.Dirty {
			state.Uploaded++
		}
	}
	cmd.Logger().Debugf("frame %d: %d draws, %d uniform uploads, %d pipelines", cmd.Frame(), len(state.Draws), state.Uploaded, cache.Len())
}
