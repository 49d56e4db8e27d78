package stream

import (
	"context"
	"log"
	"sync"

	"github.com/corradin/voxelcore/pkg/voxel"
)

// MeshPool is the work-parallel, position-serial-input mesh worker pool of
// spec.md §4.H: a single-producer job channel drained by a configurable
// number of worker goroutines, each of which builds a ChunkNeighborhood,
// runs the mesher, uploads the result via Uploader, and posts a MeshResult.
// Shape grounded on
// _examples/other_examples/bc7a25b9_..._chunk_sender.go.go's
// ChunkWorkerPool (context-cancelled workers, WaitGroup shutdown,
// ScaleWorkers).
type MeshPool[T any] struct {
	store    *voxel.ChunkStore
	uploader Uploader[T]
	jobs     chan voxel.ChunkCoord
	results  chan MeshResult[T]

	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	mu            sync.Mutex
	workerCancels []context.CancelFunc
}

// NewMeshPool returns a pool with no workers started; call Start or
// ScaleWorkers to run it. queueDepth bounds the job channel; the spec notes
// the scheduler only enqueues positions it actually wants, so back-pressure
// in steady state is rare.
func NewMeshPool[T any](store *voxel.ChunkStore, uploader Uploader[T], queueDepth int) *MeshPool[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &MeshPool[T]{
		store:    store,
		uploader: uploader,
		jobs:     make(chan voxel.ChunkCoord, queueDepth),
		results:  make(chan MeshResult[T], queueDepth),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Results is the channel the render thread drains once per frame, applying
// messages to the mesh registry in arrival order.
func (p *MeshPool[T]) Results() <-chan MeshResult[T] {
	return p.results
}

// Start launches n worker goroutines.
func (p *MeshPool[T]) Start(n int) {
	for i := 0; i < n; i++ {
		p.addWorker()
	}
}

func (p *MeshPool[T]) addWorker() {
	p.wg.Add(1)
	wctx, wcancel := context.WithCancel(p.ctx)
	p.mu.Lock()
	p.workerCancels = append(p.workerCancels, wcancel)
	p.mu.Unlock()
	go p.worker(wctx)
}

// ScaleWorkers adjusts the number of running workers up or down to target.
func (p *MeshPool[T]) ScaleWorkers(target int) {
	if target < 1 {
		target = 1
	}
	p.mu.Lock()
	current := len(p.workerCancels)
	p.mu.Unlock()

	for current < target {
		p.addWorker()
		current++
	}
	for current > target {
		p.mu.Lock()
		idx := len(p.workerCancels) - 1
		cancel := p.workerCancels[idx]
		p.workerCancels = p.workerCancels[:idx]
		p.mu.Unlock()
		cancel()
		current--
	}
}

// Enqueue submits a chunk position for meshing. It never blocks the caller
// on worker availability; it only blocks if the job channel is full.
func (p *MeshPool[T]) Enqueue(position voxel.ChunkCoord) {
	select {
	case p.jobs <- position:
	case <-p.ctx.Done():
	}
}

// Stop cancels all workers and waits for them to exit. In-flight results
// already sent on the results channel are not discarded; the caller should
// drain once more after Stop returns.
func (p *MeshPool[T]) Stop() {
	p.cancel()
	p.wg.Wait()
}

// enqueueEvict posts an eviction message directly onto the results channel,
// from the scheduler thread. It never blocks the scheduler.
func (p *MeshPool[T]) enqueueEvict(position voxel.ChunkCoord) {
	select {
	case p.results <- MeshResult[T]{Position: position, Evict: true}:
	case <-p.ctx.Done():
	}
}

func (p *MeshPool[T]) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case position, ok := <-p.jobs:
			if !ok {
				return
			}
			p.mesh(position)
		case <-ctx.Done():
			return
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *MeshPool[T]) mesh(position voxel.ChunkCoord) {
	if !p.store.Has(position) {
		// No chunk was ever inserted at this position (the store never
		// removes chunks); nothing to mesh.
		return
	}

	neighborhood := voxel.NewChunkNeighborhood(p.store, position)
	mesh := voxel.BuildMesh(neighborhood)
	if mesh.Empty() {
		return
	}

	buffer, err := p.uploader.Upload(position, mesh)
	if err != nil {
		log.Printf("mesh pool: upload failed for %v: %v", position, err)
		return
	}

	select {
	case p.results <- MeshResult[T]{Position: position, Buffer: buffer}:
	case <-p.ctx.Done():
	}
}
