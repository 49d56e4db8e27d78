// Command voxelcore runs the streaming voxel world core standalone: it
// opens a window, starts the generation and mesh worker pools, and drives
// the camera-driven streaming loop every frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/corradin/voxelcore/pkg/render"
	"github.com/corradin/voxelcore/pkg/stream"
	"github.com/corradin/voxelcore/pkg/voxel"
)

func init() {
	// OpenGL calls must all originate from the same OS thread.
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting voxelcore...")

	seed := flag.Int64("seed", time.Now().UnixNano(), "World generation seed")
	horizontal := flag.Int("horizontal", 16, "Horizontal render distance, in chunks")
	vertical := flag.Int("vertical", 10, "Vertical render distance, in chunks")
	genWorkers := flag.Int("gen-workers", 4, "Column generation worker count")
	meshWorkers := flag.Int("mesh-workers", 4, "Mesh build worker count")
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	flag.Parse()

	renderer, err := render.NewRenderer(*width, *height, "voxelcore")
	if err != nil {
		log.Fatalf("failed to initialize renderer: %v", err)
	}
	defer renderer.Cleanup()

	renderer.Camera().LookAt(renderer.Camera().Position().Add(renderer.Camera().FrontVector()))

	cfg := stream.DefaultConfig(*seed)
	cfg.HorizontalRenderDistance = int32(*horizontal)
	cfg.VerticalRenderDistance = int32(*vertical)
	cfg.GenerationDistance = int32(*horizontal) + 1

	store := voxel.NewChunkStore()
	scheduler := stream.NewScheduler[*render.ChunkBuffer](cfg, store, renderer.Buffers())
	scheduler.Start(*genWorkers, *meshWorkers)
	defer scheduler.Stop()

	renderer.SetupOpenGL()

	var frames int
	lastReport := time.Now()

	for !renderer.ShouldClose() {
		renderer.BeginFrame()

		scheduler.Tick(renderer.Camera().Position())
		renderer.ApplyResults(scheduler.Results())

		renderer.DrawFrame()

		frames++
		if elapsed := time.Since(lastReport); elapsed >= time.Second {
			log.Printf("fps=%d generated=%d live=%d", frames, scheduler.GeneratedCount(), scheduler.LiveCount())
			frames = 0
			lastReport = time.Now()
		}
	}
}
