package window

import "testing"

func TestPollEventsDrainsInDeliveryOrder(t *testing.T) {
	w := &engineWindow{width: 800, height: 600}

	w.push(KeyPress{Code: 32})
	w.push(CursorMove{X: 1, Y: 2})
	w.push(Resize{Width: 640, Height: 480})
	w.push(KeyRelease{Code: 32})
	w.push(CloseRequest{})

	events := w.PollEvents()
	if len(events) != 5 {
		t.Fatalf("PollEvents() returned %d events, want 5", len(events))
	}
	if _, ok := events[0].(KeyPress); !ok {
		t.Errorf("events[0] = %T, want KeyPress", events[0])
	}
	if _, ok := events[1].(CursorMove); !ok {
		t.Errorf("events[1] = %T, want CursorMove", events[1])
	}
	if _, ok := events[2].(Resize); !ok {
		t.Errorf("events[2] = %T, want Resize", events[2])
	}
	if _, ok := events[3].(KeyRelease); !ok {
		t.Errorf("events[3] = %T, want KeyRelease", events[3])
	}
	if _, ok := events[4].(CloseRequest); !ok {
		t.Errorf("events[4] = %T, want CloseRequest", events[4])
	}
}

func TestPollEventsEmptiesTheQueue(t *testing.T) {
	w := &engineWindow{}
	w.push(KeyPress{Code: 65})

	if got := w.PollEvents(); len(got) != 1 {
		t.Fatalf("first PollEvents() returned %d events, want 1", len(got))
	}
	if got := w.PollEvents(); len(got) != 0 {
		t.Errorf("second PollEvents() returned %d events, want 0", len(got))
	}
}

func TestCursorToPixels(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		scaleX, scaleY float32
		wantX, wantY   float64
	}{
		{name: "scale 1 is identity", x: 400, y: 300, scaleX: 1, scaleY: 1, wantX: 400, wantY: 300},
		{name: "scale 2 doubles", x: 800, y: 600, scaleX: 2, scaleY: 2, wantX: 1600, wantY: 1200},
		{name: "fractional scale", x: 400, y: 200, scaleX: 1.5, scaleY: 1.5, wantX: 600, wantY: 300},
		{name: "per-axis scale", x: 100, y: 100, scaleX: 2, scaleY: 1, wantX: 200, wantY: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := cursorToPixels(tt.x, tt.y, tt.scaleX, tt.scaleY)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("cursorToPixels(%v, %v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, tt.scaleX, tt.scaleY, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// A cursor at the far edge of a scaled window must normalize to 1.0 against
// the framebuffer size once converted to pixels.
func TestCursorToPixelsMatchesFramebuffer(t *testing.T) {
	const screenW, screenH = 800.0, 600.0
	const scale = 2.0
	fbW, fbH := screenW*scale, screenH*scale

	x, y := cursorToPixels(screenW, screenH, scale, scale)
	if got := x / fbW; got != 1.0 {
		t.Errorf("normalized x = %v, want 1.0", got)
	}
	if got := y / fbH; got != 1.0 {
		t.Errorf("normalized y = %v, want 1.0", got)
	}
}

func TestUninitializedWindowState(t *testing.T) {
	w := &engineWindow{}

	if w.IsRunning() {
		t.Error("IsRunning() = true for an uninitialized window")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("SurfaceDescriptor() non-nil for an uninitialized window")
	}
	if err := w.Close(); err == nil {
		t.Error("Close() = nil for an uninitialized window, want an error")
	}
}
