package window

// Event is a window or input event delivered by PollEvents in the order the
// platform reported it.
type Event interface{}

// Resize is emitted when the framebuffer size changes. Width and height are
// physical pixels; either may be zero when the window is minimized.
type Resize struct {
	Width, Height int
}

// CursorMove is emitted when the pointer moves within the window.
// Coordinates are in pixels relative to the window's top-left corner.
type CursorMove struct {
	X, Y float64
}

// KeyPress is emitted when a key is pressed. Code is the GLFW key code.
type KeyPress struct {
	Code uint32
}

// KeyRelease is emitted when a key is released. Code is the GLFW key code.
type KeyRelease struct {
	Code uint32
}

// CloseRequest is emitted when the platform asks the window to close
// (close button, window manager).
type CloseRequest struct{}
