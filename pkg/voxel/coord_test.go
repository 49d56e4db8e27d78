package voxel

import "testing"

func TestWorldToChunkCoordFloorDivision(t *testing.T) {
	cases := []struct {
		world int32
		want  int32
	}{
		{0, 0},
		{15, 0},
		{16, 1},
		{-1, -1},
		{-16, -1},
		{-17, -2},
	}
	for _, c := range cases {
		got := WorldToChunkCoord(c.world, 0, 0)
		if got.X != c.want {
			t.Errorf("WorldToChunkCoord(%d,_,_).X = %d, want %d", c.world, got.X, c.want)
		}
	}
}

func TestWorldToLocalCoordWraps(t *testing.T) {
	x, _, _ := WorldToLocalCoord(-1, 0, 0)
	if x != Size-1 {
		t.Errorf("WorldToLocalCoord(-1,0,0).x = %d, want %d", x, Size-1)
	}
}

func TestSectionRoundTrip(t *testing.T) {
	c := ChunkCoord{X: 3, Y: 7, Z: -2}
	s := c.Section()
	if s.WithY(7) != c {
		t.Errorf("Section().WithY(Y) = %v, want %v", s.WithY(7), c)
	}
}

func TestSectionAdjacentAreHorizontalNeighbors(t *testing.T) {
	s := SectionPosition{X: 0, Z: 0}
	adj := s.Adjacent()
	want := map[SectionPosition]bool{
		{X: -1, Z: 0}: true,
		{X: 1, Z: 0}:  true,
		{X: 0, Z: -1}: true,
		{X: 0, Z: 1}:  true,
	}
	if len(adj) != 4 {
		t.Fatalf("Adjacent() returned %d entries, want 4", len(adj))
	}
	for _, a := range adj {
		if !want[a] {
			t.Errorf("unexpected adjacent %v", a)
		}
	}
}

func TestChunkToWorldPos(t *testing.T) {
	x, y, z := ChunkToWorldPos(ChunkCoord{X: 2, Y: -1, Z: 0})
	if x != 32 || y != -16 || z != 0 {
		t.Errorf("ChunkToWorldPos = (%d,%d,%d), want (32,-16,0)", x, y, z)
	}
}
