package shader

// ShaderBuilderOption is a functional option for configuring a shader.
// Use the With* functions to create options.
type ShaderBuilderOption func(s *shader)

// WithVertexEntryPoint overrides the vertex stage entry point function name.
//
// Parameters:
//   - entryPoint: the vertex entry point function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithVertexEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexEntry = entryPoint
	}
}

// WithFragmentEntryPoint overrides the fragment stage entry point function name.
//
// Parameters:
//   - entryPoint: the fragment entry point function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithFragmentEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.fragmentEntry = entryPoint
	}
}
