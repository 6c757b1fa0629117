package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/shading/material"
)

// DepthFormat is the depth attachment format every material pipeline targets.
const DepthFormat = wgpu.TextureFormatDepth32Float

// PipelineKey is the subset of a material that needs its own render pipeline.
// Everything else travels in the uniform block.
type PipelineKey struct {
	LightingModel material.LightingModel
	CullMode      material.CullMode
	BlendMode     material.BlendMode
	DepthWrite    bool
	DepthTest     bool
}

func KeyFor(snap material.Snapshot) PipelineKey {
	return PipelineKey{
		LightingModel: snap.LightingModel,
		CullMode:      snap.CullMode,
		BlendMode:     snap.BlendMode,
		DepthWrite:    snap.WritesDepth,
		DepthTest:     snap.ReadsDepth,
	}
}

// PipelineState is the fixed-function part of a render pipeline descriptor.
type PipelineState struct {
	Key          PipelineKey
	Primitive    wgpu.PrimitiveState
	DepthStencil *wgpu.DepthStencilState
	Blend        *wgpu.BlendState
}

func PipelineStateFor(key PipelineKey) PipelineState {
	return PipelineState{
		Key: key,
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cullMode(key.CullMode),
		},
		DepthStencil: depthStencil(key),
		Blend:        blendState(key.BlendMode),
	}
}

func cullMode(m material.CullMode) wgpu.CullMode {
	switch m {
	case material.CullModeFront:
		return wgpu.CullModeFront
	case material.CullModeNone:
		return wgpu.CullModeNone
	default:
		return wgpu.CullModeBack
	}
}

func depthStencil(key PipelineKey) *wgpu.DepthStencilState {
	compare := wgpu.CompareFunctionAlways
	if key.DepthTest {
		compare = wgpu.CompareFunctionLessEqual
	}
	return &wgpu.DepthStencilState{
		Format:            DepthFormat,
		DepthWriteEnabled: key.DepthWrite,
		DepthCompare:      compare,
		StencilFront: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
		StencilBack: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
	}
}

func blendState(m material.BlendMode) *wgpu.BlendState {
	component := func(src, dst wgpu.BlendFactor, op wgpu.BlendOperation) wgpu.BlendComponent {
		return wgpu.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: op}
	}
	alpha := component(wgpu.BlendFactorOne, wgpu.BlendFactorOneMinusSrcAlpha, wgpu.BlendOperationAdd)

	switch m {
	case material.BlendModeNone:
		return nil
	case material.BlendModeAdd:
		return &wgpu.BlendState{
			Color: component(wgpu.BlendFactorSrcAlpha, wgpu.BlendFactorOne, wgpu.BlendOperationAdd),
			Alpha: alpha,
		}
	case material.BlendModeSubtract:
		return &wgpu.BlendState{
			Color: component(wgpu.BlendFactorSrcAlpha, wgpu.BlendFactorOne, wgpu.BlendOperationReverseSubtract),
			Alpha: alpha,
		}
	case material.BlendModeMultiply:
		return &wgpu.BlendState{
			Color: component(wgpu.BlendFactorDst, wgpu.BlendFactorZero, wgpu.BlendOperationAdd),
			Alpha: alpha,
		}
	case material.BlendModeScreen:
		return &wgpu.BlendState{
			Color: component(wgpu.BlendFactorOne, wgpu.BlendFactorOneMinusSrc, wgpu.BlendOperationAdd),
			Alpha: alpha,
		}
	default:
		return &wgpu.BlendState{
			Color: component(wgpu.BlendFactorSrcAlpha, wgpu.BlendFactorOneMinusSrcAlpha, wgpu.BlendOperationAdd),
			Alpha: alpha,
		}
	}
}
