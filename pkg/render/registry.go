package render

import (
	"sync"

	"github.com/corradin/voxelcore/pkg/voxel"
)

// ChunkBuffer is a chunk's uploaded GPU mesh plus its precomputed world-space
// AABB, per spec.md §3. Slot/VertexOffset/IndexCount are the GPU
// collaborator's bookkeeping for one multi-draw-indirect command; they are
// opaque to the registry itself.
type ChunkBuffer struct {
	Coord        voxel.ChunkCoord
	AABB         AABB
	Slot         int
	VertexOffset int
	IndexCount   int
}

// Registry is the mesh registry of spec.md §4.I: a single-owner (render
// thread only) map from chunk coordinate to ChunkBuffer, with upsert/evict/
// iterate operations.
type Registry struct {
	mu      sync.RWMutex
	buffers map[voxel.ChunkCoord]*ChunkBuffer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{buffers: make(map[voxel.ChunkCoord]*ChunkBuffer)}
}

// Upsert inserts or overwrites the buffer at its coordinate. A late, stale
// Insert loses to a subsequent Evict because the registry only ever reflects
// the most recently applied message, per spec.md §5's ordering guarantee.
func (r *Registry) Upsert(buffer *ChunkBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buffers[buffer.Coord] = buffer
}

// Evict drops the buffer at coord, if present.
func (r *Registry) Evict(coord voxel.ChunkCoord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.buffers, coord)
}

// Get returns the buffer at coord, if present.
func (r *Registry) Get(coord voxel.ChunkCoord) (*ChunkBuffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.buffers[coord]
	return b, ok
}

// Len reports the number of live buffers, used to assert the streaming
// bound (count of live ChunkBuffers <= |VisibleOffsets|).
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buffers)
}

// Iter calls fn for every live buffer. fn must not call back into the
// registry.
func (r *Registry) Iter(fn func(*ChunkBuffer)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.buffers {
		fn(b)
	}
}

// Visible returns every buffer whose AABB passes frustum, for the draw-time
// culling step of spec.md §4.I/§4.J.
func (r *Registry) Visible(frustum Frustum) []*ChunkBuffer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	visible := make([]*ChunkBuffer, 0, len(r.buffers))
	for _, b := range r.buffers {
		if b.AABB.IsOnFrustum(frustum) {
			visible = append(visible, b)
		}
	}
	return visible
}

// ApplyResult applies one mesh pipeline message to the registry: Insert
// upserts, Evict drops. T is fixed to *ChunkBuffer at the call site.
func ApplyResult(r *Registry, coord voxel.ChunkCoord, buffer *ChunkBuffer, evict bool) {
	if evict {
		r.Evict(coord)
		return
	}
	r.Upsert(buffer)
}
