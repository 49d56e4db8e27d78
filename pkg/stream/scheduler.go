package stream

import (
	"github.com/chewxy/math32"
	"github.com/corradin/voxelcore/pkg/terrain"
	"github.com/corradin/voxelcore/pkg/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

// Config is the core's one tunable set, fixed at construction time per
// spec.md §6.
type Config struct {
	HorizontalRenderDistance int32
	VerticalRenderDistance   int32
	GenerationDistance       int32
	Seed                     int64
}

// DefaultConfig matches spec.md §4.G's suggested tunables.
func DefaultConfig(seed int64) Config {
	return Config{
		HorizontalRenderDistance: 16,
		VerticalRenderDistance:   10,
		GenerationDistance:       17, // H + 1
		Seed:                     seed,
	}
}

// Scheduler is the per-frame streaming scheduler of spec.md §4.G: it tracks
// the last observed origin, the set of generated columns, and the set of
// live mesh positions, and on an origin change walks the precomputed radial
// offset tables to enqueue generation and mesh jobs and to evict meshes that
// fell out of range.
type Scheduler[T any] struct {
	store     *voxel.ChunkStore
	genPool   *GenerationPool
	meshPool  *MeshPool[T]
	generated map[voxel.SectionPosition]bool
	live      map[voxel.ChunkCoord]bool

	visibleOffsets    []ChunkOffset
	generatingOffsets []ColumnOffset

	prevOrigin    voxel.ChunkCoord
	havePrevOrigin bool
}

// NewScheduler builds a scheduler with its offset tables precomputed once
// from cfg, matching the "process-wide read-only tables" design note.
func NewScheduler[T any](cfg Config, store *voxel.ChunkStore, uploader Uploader[T]) *Scheduler[T] {
	generator := terrain.NewGenerator(cfg.Seed)
	return &Scheduler[T]{
		store:             store,
		genPool:           NewGenerationPool(generator, 256),
		meshPool:          NewMeshPool[T](store, uploader, 256),
		generated:         make(map[voxel.SectionPosition]bool),
		live:              make(map[voxel.ChunkCoord]bool),
		visibleOffsets:    buildVisibleOffsets(cfg.HorizontalRenderDistance, cfg.VerticalRenderDistance),
		generatingOffsets: buildGeneratingOffsets(cfg.GenerationDistance),
	}
}

// Start launches the background generation and mesh worker goroutines.
func (s *Scheduler[T]) Start(generationWorkers, meshWorkers int) {
	s.genPool.Start(generationWorkers)
	s.meshPool.Start(meshWorkers)
}

// Stop shuts both worker pools down, joining their goroutines.
func (s *Scheduler[T]) Stop() {
	s.genPool.Stop()
	s.meshPool.Stop()
}

// Results is the channel the render thread drains once per frame before
// drawing, applying MeshResult messages to the mesh registry in arrival
// order.
func (s *Scheduler[T]) Results() <-chan MeshResult[T] {
	return s.meshPool.Results()
}

// Tick runs one frame of the scheduler contract. Every tick first applies
// the generation results the workers have finished. If the integer origin
// changed, it then runs the generation step, the visibility step, the
// mesh-enqueue step, and the eviction step, in that order; if the origin is
// unchanged but new columns were applied, it reruns only the visibility,
// mesh-enqueue and eviction steps.
func (s *Scheduler[T]) Tick(cameraPosition mgl32.Vec3) {
	origin := worldToOrigin(cameraPosition)

	generatedBefore := len(s.generated)
	s.genPool.drainResults(s.store, s.generated)

	if s.havePrevOrigin && origin == s.prevOrigin {
		if len(s.generated) == generatedBefore {
			return
		}
		// Newly applied columns can make more chunks meshable.
		visible := s.visibilityStep(origin)
		s.meshEnqueueStep(visible)
		s.evictionStep(visible)
		return
	}
	s.prevOrigin = origin
	s.havePrevOrigin = true

	s.generationStep(origin)
	s.genPool.drainResults(s.store, s.generated)

	visible := s.visibilityStep(origin)
	s.meshEnqueueStep(visible)
	s.evictionStep(visible)
}

func worldToOrigin(pos mgl32.Vec3) voxel.ChunkCoord {
	return voxel.ChunkCoord{
		X: int32(math32.Floor(pos.X() / voxel.Size)),
		Y: int32(math32.Floor(pos.Y() / voxel.Size)),
		Z: int32(math32.Floor(pos.Z() / voxel.Size)),
	}
}

func (s *Scheduler[T]) generationStep(origin voxel.ChunkCoord) {
	column := origin.Section()
	for _, off := range s.generatingOffsets {
		pos := off.Apply(column)
		if !s.generated[pos] {
			// Apply finished columns first so workers blocked on a full
			// results channel free up job slots for this Enqueue.
			s.genPool.drainResults(s.store, s.generated)
			s.genPool.Enqueue(pos)
		}
	}
}

func (s *Scheduler[T]) visibilityStep(origin voxel.ChunkCoord) map[voxel.ChunkCoord]bool {
	visible := make(map[voxel.ChunkCoord]bool)
	for _, off := range s.visibleOffsets {
		p := off.Apply(origin)
		if !s.store.Has(p) {
			continue
		}
		if !s.allHorizontalNeighborsGenerated(p.Section()) {
			continue
		}
		visible[p] = true
	}
	return visible
}

func (s *Scheduler[T]) allHorizontalNeighborsGenerated(col voxel.SectionPosition) bool {
	for _, adj := range col.Adjacent() {
		if !s.generated[adj] {
			return false
		}
	}
	return true
}

func (s *Scheduler[T]) meshEnqueueStep(visible map[voxel.ChunkCoord]bool) {
	for _, off := range s.visibleOffsets {
		p := off.Apply(s.prevOrigin)
		if !visible[p] || s.live[p] {
			continue
		}
		s.meshPool.Enqueue(p)
		s.live[p] = true
	}
}

func (s *Scheduler[T]) evictionStep(visible map[voxel.ChunkCoord]bool) {
	for p := range s.live {
		if visible[p] {
			continue
		}
		delete(s.live, p)
		s.meshPool.enqueueEvict(p)
	}
}

// LiveCount reports the scheduler's optimistic live-mesh set size, mainly
// for tests asserting the streaming bound (|live| <= |VisibleOffsets|).
func (s *Scheduler[T]) LiveCount() int {
	return len(s.live)
}

// GeneratedCount reports the number of generated columns.
func (s *Scheduler[T]) GeneratedCount() int {
	return len(s.generated)
}
