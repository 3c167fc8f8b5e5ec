package renderer

import (
	"github.com/Carmen-Shannon/prim-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPipeline registers a Pipeline during renderer construction, after the
// surface has been configured. Registration failure at this point is a fatal
// setup error.
//
// Parameters:
//   - p: the Pipeline to register
//
// Returns:
//   - RendererBuilderOption: a function that applies the pipeline option to a renderer
func WithPipeline(p pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPipelines = append(r.pendingPipelines, p)
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithBackground sets the initial background clear color.
//
// Parameters:
//   - c: the clear color to start with
//
// Returns:
//   - RendererBuilderOption: a function that applies the background option to a renderer
func WithBackground(c wgpu.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.background = c
	}
}

// WithDrawCall configures the draw issued inside each frame's render pass: the
// cached pipeline to bind and the vertex/instance counts for one non-indexed
// draw. Without this option frames are clear-only.
//
// Parameters:
//   - pipelineKey: the key of the registered pipeline to bind
//   - vertexCount: the number of vertices to draw each frame
//   - instanceCount: the number of instances to draw each frame
//
// Returns:
//   - RendererBuilderOption: a function that applies the draw call option to a renderer
func WithDrawCall(pipelineKey string, vertexCount, instanceCount uint32) RendererBuilderOption {
	return func(r *renderer) {
		r.drawKey = pipelineKey
		r.vertexCount = vertexCount
		r.instanceCount = instanceCount
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the
// system (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
