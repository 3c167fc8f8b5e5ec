package main

import (
	"log"
	"os"

	"github.com/Carmen-Shannon/prim-go/engine"
	"github.com/Carmen-Shannon/prim-go/engine/renderer"
	"github.com/Carmen-Shannon/prim-go/engine/window"
)

func main() {
	win := window.NewWindow(
		window.WithTitle("Cursor Background"),
		window.WithWidth(800),
		window.WithHeight(600),
	)
	defer win.Close()

	rend := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeUncapped),
		renderer.WithForceSoftwareRenderer(os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"),
	)
	defer rend.Release()

	appOpts := []engine.AppOption{
		engine.WithInputHandler(engine.CursorBackground(rend)),
	}
	if os.Getenv("PRIM_PROFILE") == "1" {
		appOpts = append(appOpts, engine.WithProfiling())
	}

	app := engine.NewApp(win, rend, appOpts...)
	if err := app.Run(); err != nil {
		log.Fatalf("render loop failed: %v", err)
	}
}
