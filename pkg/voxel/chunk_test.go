package voxel

import "testing"

func TestNewChunkIsAllAir(t *testing.T) {
	c := NewChunk()
	if !c.IsAllAir() {
		t.Error("NewChunk() is not all Air")
	}
}

func TestChunkSetGetRoundTrip(t *testing.T) {
	c := NewChunk()
	c.Set(3, 4, 5, Grass)
	if got := c.Get(3, 4, 5); got != Grass {
		t.Errorf("Get(3,4,5) = %v, want Grass", got)
	}
	if c.IsAllAir() {
		t.Error("IsAllAir() = true after Set, want false")
	}
}

func TestChunkOutOfBoundsReadsAir(t *testing.T) {
	c := NewChunk()
	c.Set(0, 0, 0, Stone)
	if got := c.Get(-1, 0, 0); got != Air {
		t.Errorf("Get(-1,0,0) = %v, want Air", got)
	}
	if got := c.Get(Size, 0, 0); got != Air {
		t.Errorf("Get(Size,0,0) = %v, want Air", got)
	}
}

func TestChunkOutOfBoundsSetIsIgnored(t *testing.T) {
	c := NewChunk()
	c.Set(-1, 0, 0, Stone)
	c.Set(Size, 0, 0, Stone)
	if !c.IsAllAir() {
		t.Error("out-of-bounds Set mutated the chunk")
	}
}

func TestLocalIndexRoundTrip(t *testing.T) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				idx := LocalToIndex(x, y, z)
				gx, gy, gz := IndexToLocal(idx)
				if gx != x || gy != y || gz != z {
					t.Fatalf("IndexToLocal(LocalToIndex(%d,%d,%d)) = (%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
}
