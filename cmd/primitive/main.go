package main

import (
	"log"
	"os"

	"github.com/Carmen-Shannon/prim-go/engine"
	"github.com/Carmen-Shannon/prim-go/engine/renderer"
	"github.com/Carmen-Shannon/prim-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/prim-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/prim-go/engine/window"
)

const pipelineKey = "primitive"

func main() {
	topology := pipeline.TopologyPointList
	if len(os.Args) > 1 {
		topology = pipeline.ParseTopology(os.Args[1])
	}

	sh := shader.Primitive()
	if err := sh.Validate(); err != nil {
		log.Fatalf("invalid shader: %v", err)
	}

	win := window.NewWindow(
		window.WithTitle("Primitive: "+topology.String()),
		window.WithWidth(800),
		window.WithHeight(600),
	)
	defer win.Close()

	rend := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithForceSoftwareRenderer(os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"),
		renderer.WithPipeline(pipeline.NewPipeline(pipelineKey, sh,
			pipeline.WithTopology(topology),
		)),
		renderer.WithDrawCall(pipelineKey, 9, 1),
	)
	defer rend.Release()

	appOpts := []engine.AppOption{}
	if os.Getenv("PRIM_PROFILE") == "1" {
		appOpts = append(appOpts, engine.WithProfiling())
	}

	log.Printf("rendering with topology %s", topology)
	app := engine.NewApp(win, rend, appOpts...)
	if err := app.Run(); err != nil {
		log.Fatalf("render loop failed: %v", err)
	}
}
