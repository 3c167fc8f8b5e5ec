package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/prim-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	sh := shader.Primitive()
	p := NewPipeline("test", sh)

	if got := p.PipelineKey(); got != "test" {
		t.Errorf("PipelineKey() = %q, want %q", got, "test")
	}
	if p.Shader() != sh {
		t.Error("Shader() did not return the shader passed to NewPipeline")
	}
	if got := p.Topology(); got != TopologyPointList {
		t.Errorf("Topology() = %v, want TopologyPointList", got)
	}
	if got := p.CullMode(); got != wgpu.CullModeNone {
		t.Errorf("CullMode() = %v, want CullModeNone", got)
	}
	if got := p.FrontFace(); got != wgpu.FrontFaceCCW {
		t.Errorf("FrontFace() = %v, want FrontFaceCCW", got)
	}
	if got := p.WriteMask(); got != wgpu.ColorWriteMaskAll {
		t.Errorf("WriteMask() = %v, want ColorWriteMaskAll", got)
	}
	blend := p.BlendState()
	if blend == nil {
		t.Fatal("BlendState() = nil, want a replace blend")
	}
	if blend.Color.SrcFactor != wgpu.BlendFactorOne || blend.Color.DstFactor != wgpu.BlendFactorZero {
		t.Errorf("default blend color = %+v, want replace (One/Zero)", blend.Color)
	}
	if p.RenderPipeline() != nil {
		t.Error("RenderPipeline() non-nil before registration")
	}
}

func TestNewPipelineOptions(t *testing.T) {
	p := NewPipeline("strip", shader.Primitive(),
		WithTopology(TopologyTriangleStrip),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
	)

	if got := p.Topology(); got != TopologyTriangleStrip {
		t.Errorf("Topology() = %v, want TopologyTriangleStrip", got)
	}
	if got := p.CullMode(); got != wgpu.CullModeBack {
		t.Errorf("CullMode() = %v, want CullModeBack", got)
	}
	if got := p.FrontFace(); got != wgpu.FrontFaceCW {
		t.Errorf("FrontFace() = %v, want FrontFaceCW", got)
	}
}
