package engine

import (
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/prim-go/common"
	"github.com/Carmen-Shannon/prim-go/engine/profiler"
	"github.com/Carmen-Shannon/prim-go/engine/renderer"
	"github.com/Carmen-Shannon/prim-go/engine/window"
	"github.com/pkg/profile"
)

// cpuProfileEnv enables CPU profiling for the lifetime of the run loop when
// set to "1". The profile is written to the working directory on exit.
const cpuProfileEnv = "PRIM_CPU_PROFILE"

// InputHandler inspects a window event before the default dispatch and
// returns true when it consumed the event. Consumed events are not seen by
// the default handlers.
type InputHandler func(window.Event) bool

type app struct {
	window   window.Window
	renderer renderer.Renderer
	input    InputHandler

	profiler  *profiler.Profiler
	profiling bool

	running bool
}

// App drives the window and renderer from a single-threaded run loop.
// Each iteration polls the window for events, dispatches them in delivery
// order, and renders exactly one frame.
type App interface {
	// Window returns the window the app drives.
	//
	// Returns:
	//   - window.Window: the app's window
	Window() window.Window

	// Renderer returns the renderer the app drives.
	//
	// Returns:
	//   - renderer.Renderer: the app's renderer
	Renderer() renderer.Renderer

	// Run executes the event and render loop until the app quits or a frame
	// fails with an unrecoverable error. Must be called from the main
	// goroutine that created the window.
	//
	// Returns:
	//   - error: the terminal frame error, or nil on a normal quit
	Run() error

	// Quit requests the run loop to stop after the current iteration.
	Quit()
}

var _ App = &app{}

// NewApp creates a new App bound to the given window and renderer.
//
// Parameters:
//   - win: the window to poll for events
//   - rend: the renderer driven once per loop iteration
//   - options: optional configuration functions
//
// Returns:
//   - App: the newly created app
func NewApp(win window.Window, rend renderer.Renderer, options ...AppOption) App {
	a := &app{
		window:   win,
		renderer: rend,
	}
	for _, opt := range options {
		opt(a)
	}
	if a.profiling {
		a.profiler = profiler.NewProfiler()
	}
	return a
}

func (a *app) Window() window.Window {
	return a.window
}

func (a *app) Renderer() renderer.Renderer {
	return a.renderer
}

func (a *app) Run() error {
	if os.Getenv(cpuProfileEnv) == "1" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	a.running = true
	for a.running && a.window.IsRunning() {
		for _, ev := range a.window.PollEvents() {
			a.dispatch(ev)
			if !a.running {
				break
			}
		}
		if !a.running {
			break
		}

		if err := a.renderer.RenderFrame(); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		if a.profiler != nil {
			a.profiler.Tick()
		}
	}
	return nil
}

func (a *app) Quit() {
	a.running = false
}

// dispatch routes a single event through the input handler, then applies the
// default handling: quit on close request or Escape release, resize the
// renderer on window resize. All other events are ignored.
func (a *app) dispatch(ev window.Event) {
	if a.input != nil && a.input(ev) {
		return
	}
	switch e := ev.(type) {
	case window.CloseRequest:
		log.Printf("closing the window")
		a.Quit()
	case window.KeyRelease:
		if e.Code == common.KeyEsc {
			log.Printf("closing the window")
			a.Quit()
		}
	case window.Resize:
		a.renderer.Resize(e.Width, e.Height)
	}
}
