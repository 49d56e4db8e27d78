package stream

import (
	"context"
	"sync"

	"github.com/corradin/voxelcore/pkg/terrain"
	"github.com/corradin/voxelcore/pkg/voxel"
)

type generationResult struct {
	position voxel.SectionPosition
	section  *voxel.ChunkSection
}

// GenerationPool runs the terrain generator on background workers, mirroring
// MeshPool's shape for the generation half of spec.md §4.G's "Generation may
// be dispatched to workers; results are applied in insertion order on the
// scheduler thread" — the scheduler thread is the only ChunkStore writer, so
// results are applied as they are drained rather than strictly in dispatch
// order, which spec.md §5 permits (chunk inserts are independent).
type GenerationPool struct {
	generator *terrain.Generator
	jobs      chan voxel.SectionPosition
	results   chan generationResult

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewGenerationPool returns a pool bound to generator, with no workers
// started.
func NewGenerationPool(generator *terrain.Generator, queueDepth int) *GenerationPool {
	ctx, cancel := context.WithCancel(context.Background())
	return &GenerationPool{
		generator: generator,
		jobs:      make(chan voxel.SectionPosition, queueDepth),
		results:   make(chan generationResult, queueDepth),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches n worker goroutines.
func (p *GenerationPool) Start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop cancels all workers and waits for them to exit.
func (p *GenerationPool) Stop() {
	p.cancel()
	p.wg.Wait()
}

// Enqueue submits a column for generation.
func (p *GenerationPool) Enqueue(position voxel.SectionPosition) {
	select {
	case p.jobs <- position:
	case <-p.ctx.Done():
	}
}

func (p *GenerationPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case position, ok := <-p.jobs:
			if !ok {
				return
			}
			section := p.generator.GenerateSection(position)
			select {
			case p.results <- generationResult{position: position, section: section}:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// drainResults applies every currently-available generation result to store
// and marks it generated, non-blockingly.
func (p *GenerationPool) drainResults(store *voxel.ChunkStore, generated map[voxel.SectionPosition]bool) {
	for {
		select {
		case r := <-p.results:
			entries := make(map[voxel.ChunkCoord]*voxel.Chunk)
			for _, sub := range r.section.NonEmptySubchunks() {
				entries[r.position.WithY(int32(sub.Index))] = sub.Chunk
			}
			store.Extend(entries)
			generated[r.position] = true
		default:
			return
		}
	}
}
