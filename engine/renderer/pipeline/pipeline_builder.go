package pipeline

import "github.com/cogentcore/webgpu/wgpu"

// PipelineBuilderOption is a functional option applied to a pipeline during construction via NewPipeline.
type PipelineBuilderOption func(*pipeline)

// WithTopology sets the primitive topology for the pipeline. The matching
// strip index format is derived from the topology at registration time, so
// strip variants automatically carry the 32-bit strip index format.
//
// Parameters:
//   - t: the Topology to use
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithTopology(t Topology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = t
	}
}

// WithCullMode sets the cull mode for the pipeline.
//
// Parameters:
//   - mode: the wgpu.CullMode to use
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithFrontFace sets the front face winding order for the pipeline.
//
// Parameters:
//   - face: the wgpu.FrontFace winding order to use
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithFrontFace(face wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = face
	}
}

// WithWriteMask sets the color write mask for the pipeline.
//
// Parameters:
//   - mask: the wgpu.ColorWriteMask to use
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithWriteMask(mask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = mask
	}
}

// WithBlendState overrides the pipeline's blend state.
//
// Parameters:
//   - blend: the wgpu.BlendState to use (nil disables blending)
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithBlendState(blend *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blend = blend
	}
}
