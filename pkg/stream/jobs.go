package stream

import "github.com/corradin/voxelcore/pkg/voxel"

// MeshResult is the message a mesh worker sends back to the render thread,
// grounded on spec.md §4.H's MeshResult::Insert/Evict contract. Buffer is
// the zero value when Evict is true.
type MeshResult[T any] struct {
	Position voxel.ChunkCoord
	Buffer   T
	Evict    bool
}

// Uploader is the GPU collaborator capability a mesh worker needs: turn a
// built CPU mesh into a GPU-resident buffer of type T. Implementations must
// be safe to call from any worker goroutine (the spec's "GPU collaborator is
// interior-mutable; calls from any worker are serialized by the collaborator
// itself").
type Uploader[T any] interface {
	Upload(coord voxel.ChunkCoord, mesh *voxel.Mesh) (T, error)
}
