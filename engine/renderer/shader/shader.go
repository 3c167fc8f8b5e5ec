package shader

import (
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/prim-go/common"
	"github.com/gogpu/naga"
)

//go:embed primitive.wgsl
var primitiveSource string

// shader is the implementation of the Shader interface.
// It holds the WGSL source and entry point names required for pipeline creation.
type shader struct {
	key           string
	source        string
	vertexEntry   string
	fragmentEntry string
}

// Shader defines the interface for an embedded WGSL shader. It exposes the shader's
// unique key, source code, and entry point names needed for render pipeline creation,
// along with source validation via the naga WGSL compiler.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for labels and pipeline caching.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// VertexEntryPoint retrieves the vertex stage entry point function name.
	//
	// Returns:
	//   - string: the vertex entry point (default "vs_main")
	VertexEntryPoint() string

	// FragmentEntryPoint retrieves the fragment stage entry point function name.
	//
	// Returns:
	//   - string: the fragment entry point (default "fs_main")
	FragmentEntryPoint() string

	// Validate compiles the WGSL source to SPIR-V with the naga compiler to surface
	// source errors before the GPU driver sees them. A validation failure at startup
	// is a fatal setup error.
	//
	// Returns:
	//   - error: an error describing the first compilation failure, or nil if the source is valid
	Validate() error
}

var _ Shader = &shader{}

// NewShader creates a Shader from a key and WGSL source with the specified options.
// Entry points default to "vs_main" and "fs_main" when not overridden.
//
// Parameters:
//   - key: the unique identifier for this shader
//   - source: the WGSL source code
//   - opts: functional options to configure the shader
//
// Returns:
//   - Shader: the configured shader
func NewShader(key, source string, opts ...ShaderBuilderOption) Shader {
	s := &shader{
		key:    key,
		source: source,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.vertexEntry = common.Coalesce(s.vertexEntry, "vs_main")
	s.fragmentEntry = common.Coalesce(s.fragmentEntry, "fs_main")
	return s
}

// Primitive returns the embedded primitive shader used by the demo pipelines.
// The vertex stage synthesizes 9 vertices from the vertex index; no vertex
// buffers are consumed.
//
// Returns:
//   - Shader: the embedded primitive shader
func Primitive() Shader {
	return NewShader("primitive", primitiveSource)
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexEntryPoint() string {
	return s.vertexEntry
}

func (s *shader) FragmentEntryPoint() string {
	return s.fragmentEntry
}

func (s *shader) Validate() error {
	if _, err := naga.Compile(s.source); err != nil {
		return fmt.Errorf("shader %q failed validation: %w", s.key, err)
	}
	return nil
}
