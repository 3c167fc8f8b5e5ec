package engine

import (
	"github.com/Carmen-Shannon/prim-go/common"
	"github.com/Carmen-Shannon/prim-go/engine/renderer"
	"github.com/Carmen-Shannon/prim-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// CursorBackground returns an input handler that recolors the renderer's
// clear color from the cursor position. The red and green channels follow
// the cursor's normalized x and y over the surface, blue and alpha stay at
// full intensity. Cursor move events are consumed, everything else passes
// through to the default dispatch.
//
// Parameters:
//   - rend: the renderer whose background is updated
//
// Returns:
//   - InputHandler: the cursor handler
func CursorBackground(rend renderer.Renderer) InputHandler {
	return func(ev window.Event) bool {
		move, ok := ev.(window.CursorMove)
		if !ok {
			return false
		}
		width, height := rend.Size()
		if width == 0 || height == 0 {
			return true
		}
		rend.SetBackground(wgpu.Color{
			R: common.Clamp(move.X/float64(width), 0, 1),
			G: common.Clamp(move.Y/float64(height), 0, 1),
			B: 1.0,
			A: 1.0,
		})
		return true
	}
}
