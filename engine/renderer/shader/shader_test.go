package shader

import (
	"strings"
	"testing"
)

func TestNewShaderEntryPointDefaults(t *testing.T) {
	s := NewShader("test", "fn noop() {}")
	if got := s.VertexEntryPoint(); got != "vs_main" {
		t.Errorf("VertexEntryPoint() = %q, want %q", got, "vs_main")
	}
	if got := s.FragmentEntryPoint(); got != "fs_main" {
		t.Errorf("FragmentEntryPoint() = %q, want %q", got, "fs_main")
	}
}

func TestNewShaderEntryPointOverrides(t *testing.T) {
	s := NewShader("test", "fn noop() {}",
		WithVertexEntryPoint("vertex"),
		WithFragmentEntryPoint("fragment"),
	)
	if got := s.VertexEntryPoint(); got != "vertex" {
		t.Errorf("VertexEntryPoint() = %q, want %q", got, "vertex")
	}
	if got := s.FragmentEntryPoint(); got != "fragment" {
		t.Errorf("FragmentEntryPoint() = %q, want %q", got, "fragment")
	}
}

func TestPrimitiveShader(t *testing.T) {
	s := Primitive()
	if got := s.Key(); got != "primitive" {
		t.Errorf("Key() = %q, want %q", got, "primitive")
	}
	src := s.Source()
	if !strings.Contains(src, "fn vs_main") {
		t.Error("embedded source missing vs_main entry point")
	}
	if !strings.Contains(src, "fn fs_main") {
		t.Error("embedded source missing fs_main entry point")
	}
}

func TestPrimitiveShaderValidates(t *testing.T) {
	if err := Primitive().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadSource(t *testing.T) {
	s := NewShader("broken", "fn vs_main( -> {")
	if err := s.Validate(); err == nil {
		t.Fatal("Validate() = nil, want an error for malformed WGSL")
	} else if !strings.Contains(err.Error(), "broken") {
		t.Errorf("Validate() error %q does not name the shader key", err)
	}
}
