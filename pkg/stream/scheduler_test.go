package stream

import (
	"testing"
	"time"

	"github.com/corradin/voxelcore/pkg/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSchedulerTickPopulatesStoreAndMeshes(t *testing.T) {
	store := voxel.NewChunkStore()
	cfg := Config{
		HorizontalRenderDistance: 1,
		VerticalRenderDistance:   1,
		GenerationDistance:       2,
		Seed:                     7,
	}
	sched := NewScheduler[*fakeBuffer](cfg, store, fakeUploader{})
	sched.Start(2, 2)
	defer sched.Stop()

	sched.Tick(mgl32.Vec3{0, 0, 0})

	deadline := time.Now().Add(3 * time.Second)
	for sched.GeneratedCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		sched.Tick(mgl32.Vec3{0, 0, 0})
	}
	if sched.GeneratedCount() == 0 {
		t.Fatal("GeneratedCount() = 0 after ticking, want > 0")
	}

	deadline = time.Now().Add(3 * time.Second)
	for {
		select {
		case res := <-sched.Results():
			if !res.Evict {
				return
			}
		case <-time.After(10 * time.Millisecond):
			if time.Now().After(deadline) {
				t.Fatal("no mesh result after ticking at a fixed origin, want at least one")
			}
			sched.Tick(mgl32.Vec3{0, 0, 0})
		}
	}
}

func TestSchedulerTickIsNoOpWithoutOriginChange(t *testing.T) {
	store := voxel.NewChunkStore()
	cfg := DefaultConfig(1)
	sched := NewScheduler[*fakeBuffer](cfg, store, fakeUploader{})
	sched.Start(1, 1)
	defer sched.Stop()

	sched.Tick(mgl32.Vec3{0, 0, 0})
	time.Sleep(50 * time.Millisecond)
	firstGenerated := sched.GeneratedCount()

	// Same origin chunk (still within Size=16 of the previous position):
	// the second Tick must short-circuit before touching generation/mesh
	// bookkeeping.
	sched.Tick(mgl32.Vec3{1, 1, 1})
	time.Sleep(20 * time.Millisecond)
	if got := sched.GeneratedCount(); got != firstGenerated {
		t.Errorf("GeneratedCount() changed from %d to %d on a same-origin tick", firstGenerated, got)
	}
}

func TestSchedulerLiveCountNeverExceedsVisibleOffsets(t *testing.T) {
	store := voxel.NewChunkStore()
	cfg := Config{
		HorizontalRenderDistance: 2,
		VerticalRenderDistance:   1,
		GenerationDistance:       3,
		Seed:                     3,
	}
	sched := NewScheduler[*fakeBuffer](cfg, store, fakeUploader{})
	sched.Start(4, 4)
	defer sched.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		sched.Tick(mgl32.Vec3{0, 0, 0})
		time.Sleep(10 * time.Millisecond)
		if sched.LiveCount() > len(sched.visibleOffsets) {
			t.Fatalf("LiveCount() = %d exceeds len(visibleOffsets) = %d", sched.LiveCount(), len(sched.visibleOffsets))
		}
	}
}

func TestWorldToOriginFloorsNegativePositions(t *testing.T) {
	got := worldToOrigin(mgl32.Vec3{-1, 0, 0})
	if got.X != -1 {
		t.Errorf("worldToOrigin({-1,0,0}).X = %d, want -1 (floor(-1/16))", got.X)
	}
	got = worldToOrigin(mgl32.Vec3{15, 0, 0})
	if got.X != 0 {
		t.Errorf("worldToOrigin({15,0,0}).X = %d, want 0", got.X)
	}
	got = worldToOrigin(mgl32.Vec3{16, 0, 0})
	if got.X != 1 {
		t.Errorf("worldToOrigin({16,0,0}).X = %d, want 1", got.X)
	}
}
