package renderer

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/prim-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/prim-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultBackground is the initial clear color: a near-black blue-gray.
var DefaultBackground = wgpu.Color{R: 0.05, G: 0.062, B: 0.08, A: 1.0}

// pipelineCacheSize bounds the LRU pipeline cache. Each demo registers a
// single pipeline; the bound only matters if a caller registers many.
const pipelineCacheSize = 16

// renderer is the implementation of the Renderer interface.
type renderer struct {
	pipelines *lru.Cache[string, pipeline.Pipeline]

	backendType RendererBackendType
	backend     RendererBackend

	// width and height mirror the last non-zero window size applied to the
	// surface configuration.
	width  int
	height int

	background wgpu.Color

	// Draw issued each frame when drawKey is non-empty; clear-only otherwise.
	drawKey       string
	vertexCount   uint32
	instanceCount uint32

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingPipelines     []pipeline.Pipeline
}

// Renderer defines the interface for the rendering system.
//
// The Renderer owns the window render state: the surface and its configuration,
// the device and queue, a bounded cache of registered pipelines, and the mutable
// background clear color. One call to RenderFrame performs at most one complete
// frame: acquire, one render pass, one submission, one present.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipelines registers one or more pipelines by creating the corresponding
	// GPU pipeline objects via the backend, then caching them by PipelineKey. Pipelines
	// whose keys are already cached are skipped to avoid duplicate GPU resource creation.
	// Evicted cache entries release their GPU pipeline.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize applies a new surface size. When both dimensions are positive the
	// stored size is updated and the surface reconfigured against the device;
	// a zero width or height (window minimized) is a no-op, preserving the last
	// valid configuration.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the last non-zero surface size applied by Resize or construction.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// Background returns the current background clear color.
	//
	// Returns:
	//   - wgpu.Color: the clear color applied at the start of each frame's render pass
	Background() wgpu.Color

	// SetBackground sets the background clear color used for subsequent frames.
	//
	// Parameters:
	//   - c: the clear color
	SetBackground(c wgpu.Color)

	// SetPresentMode sets the surface present mode which controls how frames are
	// delivered to the display. A call to Resize is required after changing this
	// for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// RenderFrame renders one frame: acquires the surface texture, runs the single
	// clearing render pass, issues the configured draw call if one is set, submits,
	// and presents. Transient acquire failures are handled locally: a lost or
	// outdated surface triggers a reconfigure at the last known size and the frame
	// is skipped; a timeout logs a warning and skips the frame. Only terminal
	// failures (out of memory, unclassifiable errors) are returned.
	//
	// Returns:
	//   - error: a terminal error requiring the render loop to stop, or nil
	RenderFrame() error

	// Release frees the GPU resources owned by the renderer and its backend.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer with the specified backend type, drawing to the
// given window's surface. Adapter and device negotiation happen here, blocking until
// complete; failures are fatal and panic with a diagnostic. The surface is configured
// to the window's current framebuffer size before any pipelines are registered.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window whose surface descriptor and size configure the backend
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	cache, _ := lru.NewWithEvict(pipelineCacheSize, releasePipelineOnEviction)
	r := &renderer{
		pipelines:   cache,
		backendType: backendType,
		background:  DefaultBackground,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.width = win.Width()
	r.height = win.Height()
	r.backend.ConfigureSurface(r.width, r.height)

	if err := r.RegisterPipelines(r.pendingPipelines...); err != nil {
		panic(fmt.Sprintf("failed to register pipelines: %v", err))
	}
	r.pendingPipelines = nil

	return r
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	p, _ := r.pipelines.Get(key)
	return p
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		key := p.PipelineKey()
		if r.pipelines.Contains(key) {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return err
		}
		r.pipelines.Add(key, p)
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized-window guard: a zero-area surface configuration is invalid.
		return
	}
	log.Printf("resizing surface to %dx%d", width, height)
	r.width = width
	r.height = height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *renderer) Background() wgpu.Color {
	return r.background
}

func (r *renderer) SetBackground(c wgpu.Color) {
	r.background = c
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) RenderFrame() error {
	if err := r.backend.BeginFrame(r.background); err != nil {
		switch ClassifyFrameError(err) {
		case FrameErrorRecoverable:
			// Lost or outdated surface: reconfigure at the last known size and
			// skip this frame.
			r.Resize(r.width, r.height)
			return nil
		case FrameErrorTimeout:
			log.Printf("surface acquire timeout, skipping frame")
			return nil
		case FrameErrorOutOfMemory:
			return fmt.Errorf("surface out of memory: %w", err)
		default:
			return fmt.Errorf("failed to acquire surface texture: %w", err)
		}
	}

	if r.drawKey != "" {
		if p := r.Pipeline(r.drawKey); p != nil {
			r.backend.DrawCall(p, r.vertexCount, r.instanceCount)
		}
	}

	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.pipelines.Purge()
	r.backend.Release()
}

// releasePipelineOnEviction frees the GPU pipeline of a cache entry displaced
// by RegisterPipelines or dropped by Purge.
func releasePipelineOnEviction(_ string, p pipeline.Pipeline) {
	if rp := p.RenderPipeline(); rp != nil {
		rp.Release()
	}
}
