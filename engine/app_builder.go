package engine

// AppOption is a functional option for configuring an App.
type AppOption func(*app)

// WithInputHandler installs a handler that sees every window event before the
// default dispatch and may consume it.
//
// Parameters:
//   - handler: the input handler to install
//
// Returns:
//   - AppOption: the option to apply
func WithInputHandler(handler InputHandler) AppOption {
	return func(a *app) {
		a.input = handler
	}
}

// WithProfiling enables per-second FPS and memory logging from the run loop.
//
// Returns:
//   - AppOption: the option to apply
func WithProfiling() AppOption {
	return func(a *app) {
		a.profiling = true
	}
}
