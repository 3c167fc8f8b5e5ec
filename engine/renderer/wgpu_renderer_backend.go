package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/prim-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat *wgpu.TextureFormat
	presentMode   wgpu.PresentMode // defaults to PresentModeFifo (VSync)

	// Frame state held between BeginFrame and Present
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	// Device returns the logical GPU device owned by the backend.
	//
	// Returns:
	//   - *wgpu.Device: the logical device
	Device() *wgpu.Device

	// Queue returns the command submission queue owned by the backend.
	//
	// Returns:
	//   - *wgpu.Queue: the submission queue
	Queue() *wgpu.Queue

	// Surface returns the presentable surface bound to the platform window.
	//
	// Returns:
	//   - *wgpu.Surface: the surface
	Surface() *wgpu.Surface

	// ConfigureSurface reapplies the surface configuration against the device.
	// This is required when the surface size changes, such as when the window is resized.
	// Callers are responsible for the zero-size guard; width and height must be positive.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered
	// to the display. A call to ConfigureSurface is required for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// RegisterRenderPipeline compiles the pipeline's shader module and creates the GPU
	// render pipeline from its configuration: no vertex buffers, no depth/stencil,
	// single-sample, topology and strip index format from the pipeline's Topology.
	// The created pipeline is stored on the Pipeline via SetRenderPipeline.
	//
	// Parameters:
	//   - p: the pipeline configuration to compile
	//
	// Returns:
	//   - error: an error if shader module or pipeline creation fails
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// BeginFrame acquires the next presentable surface texture, creates a command encoder,
	// and begins the single render pass of the frame, clearing the color attachment to the
	// given background color. Must be paired with EndFrame and Present.
	//
	// Parameters:
	//   - background: the clear color for the pass
	//
	// Returns:
	//   - error: the surface acquire error, classifiable via ClassifyFrameError
	BeginFrame(background wgpu.Color) error

	// DrawCall binds the pipeline and encodes one non-indexed draw within the current
	// render pass started by BeginFrame. Vertices are synthesized in the shader from
	// the vertex index; no vertex or index buffers are bound.
	//
	// Parameters:
	//   - p: the registered Pipeline to bind
	//   - vertexCount: the number of vertices to draw
	//   - instanceCount: the number of instances to draw
	DrawCall(p pipeline.Pipeline, vertexCount, instanceCount uint32)

	// EndFrame ends the render pass and submits the encoded commands to the GPU queue.
	// Does not present the surface — call Present after EndFrame to display the frame.
	EndFrame()

	// Present presents the acquired surface texture to the display and releases the
	// frame's local references. Must be called once per frame after EndFrame.
	Present()

	// Release frees the GPU resources owned by the backend. The backend must not be
	// used after Release.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool) wgpuRendererBackend {
	runtime.LockOSThread()
	b := &wgpuRendererBackendImpl{
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to find an appropriate adapter: %v", err))
	}
	b.adapter = a

	d, err := a.RequestDevice(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create device: %v", err))
	}
	b.device = d
	b.queue = d.GetQueue()

	return b
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) RegisterRenderPipeline(p pipeline.Pipeline) error {
	if p.Shader() == nil {
		return errors.New("a shader must be set to create a render pipeline")
	}
	if b.surfaceFormat == nil {
		return errors.New("surface must be configured before registering a pipeline")
	}

	shdr := p.Shader()
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: shdr.Key(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: shdr.Source(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create shader module %q: %w", shdr.Key(), err)
	}

	// No bind group layouts: the shaders consume nothing beyond the vertex index.
	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: p.PipelineKey(),
	})
	if err != nil {
		return fmt.Errorf("failed to create pipeline layout: %w", err)
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: shdr.VertexEntryPoint(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: shdr.FragmentEntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					Blend:     p.BlendState(),
					WriteMask: p.WriteMask(),
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:         p.Topology().Primitive(),
			StripIndexFormat: p.Topology().StripIndexFormat(),
			FrontFace:        p.FrontFace(),
			CullMode:         p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create render pipeline %q: %w", p.PipelineKey(), err)
	}

	p.SetRenderPipeline(created)
	return nil
}

func (b *wgpuRendererBackendImpl) BeginFrame(background wgpu.Color) error {
	// If a previous frame's surface texture is still held, avoid acquiring
	// another one. Prevents wgpu-native "Surface image is already acquired"
	// validation errors when frames overlap.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: background,
			},
		},
	})

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) DrawCall(p pipeline.Pipeline, vertexCount, instanceCount uint32) {
	if b.framePass == nil {
		return
	}
	b.framePass.SetPipeline(p.RenderPipeline())
	b.framePass.Draw(vertexCount, instanceCount, 0, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	if b.framePass == nil {
		return
	}

	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	// If no frame surface is held, nothing to present.
	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func (b *wgpuRendererBackendImpl) Device() *wgpu.Device {
	return b.device
}

func (b *wgpuRendererBackendImpl) Queue() *wgpu.Queue {
	return b.queue
}

func (b *wgpuRendererBackendImpl) Surface() *wgpu.Surface {
	return b.surface
}
