package voxel

import "testing"

func neighborhoodWithSingleBlock(t *testing.T, x, y, z int, block BlockType) *ChunkNeighborhood {
	t.Helper()
	store := NewChunkStore()
	center := NewChunk()
	center.Set(x, y, z, block)
	store.Extend(map[ChunkCoord]*Chunk{{}: center})
	return NewChunkNeighborhood(store, ChunkCoord{})
}

func TestBuildMeshSingleOpaqueBlockEmitsSixFullyLitFaces(t *testing.T) {
	n := neighborhoodWithSingleBlock(t, 5, 5, 5, Grass)
	mesh := BuildMesh(n)

	if mesh.Quads() != 6 {
		t.Fatalf("Quads() = %d, want 6", mesh.Quads())
	}
	for i, v := range mesh.Vertices {
		_, _, _, ao, _, _ := UnpackVertex(v)
		if ao != 3 {
			t.Errorf("vertex %d ao = %d, want 3 (fully exposed)", i, ao)
		}
	}
}

func TestBuildMeshTwoAdjacentBlocksEmitTenFaces(t *testing.T) {
	store := NewChunkStore()
	center := NewChunk()
	center.Set(5, 5, 5, Grass)
	center.Set(6, 5, 5, Grass) // adjacent along +X: the shared face culls on both sides.
	store.Extend(map[ChunkCoord]*Chunk{{}: center})
	n := NewChunkNeighborhood(store, ChunkCoord{})

	mesh := BuildMesh(n)
	if mesh.Quads() != 10 {
		t.Fatalf("Quads() = %d, want 10", mesh.Quads())
	}
}

func TestBuildMeshFullyEnclosedBlockEmitsNoFaces(t *testing.T) {
	store := NewChunkStore()
	center := NewChunk()
	center.Set(5, 5, 5, Grass)
	for _, d := range directions {
		off := d.offset()
		center.Set(5+off[0], 5+off[1], 5+off[2], Stone)
	}
	store.Extend(map[ChunkCoord]*Chunk{{}: center})
	n := NewChunkNeighborhood(store, ChunkCoord{})

	mesh := BuildMesh(n)
	if mesh.Quads() != 0 {
		t.Fatalf("Quads() = %d, want 0 (fully enclosed block should cull entirely)", mesh.Quads())
	}
}

func TestBuildMeshTopFaceFullyOccludedAOIsZero(t *testing.T) {
	store := NewChunkStore()
	center := NewChunk()
	center.Set(5, 5, 5, Grass)
	// Surround the top face's eight AO sample positions with Opaque blocks.
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			center.Set(5+dx, 6, 5+dz, Stone)
		}
	}
	store.Extend(map[ChunkCoord]*Chunk{{}: center})
	n := NewChunkNeighborhood(store, ChunkCoord{})

	ao := faceAO(n, 6, 6, 6, Top) // padded coords: local (5,5,5) + 1
	for i, v := range ao {
		if v != 0 {
			t.Errorf("ao[%d] = %d, want 0 (fully enclosed corner)", i, v)
		}
	}
}

func TestShouldEmitFaceOpaqueCullsAgainstOpaque(t *testing.T) {
	if shouldEmitFace(Stone, Grass) {
		t.Error("Opaque vs Opaque should cull")
	}
	if !shouldEmitFace(Stone, Air) {
		t.Error("Opaque vs Empty should emit")
	}
	if !shouldEmitFace(Stone, Water) {
		t.Error("Opaque vs Transparent should emit")
	}
}

func TestShouldEmitFaceTransparentSameKindCulls(t *testing.T) {
	if shouldEmitFace(Water, Water) {
		t.Error("same-kind Transparent vs Transparent should cull")
	}
}

func TestShouldEmitFaceTransparentDifferentKindEmits(t *testing.T) {
	// Water is the only Transparent BlockType registered by default; register
	// a second Transparent type for the duration of this test to exercise the
	// different-kind branch, since same-package tests share blockProperties.
	const otherTransparent BlockType = 99
	blockProperties[otherTransparent] = BlockProperties{Visibility: Transparent, TextureID: 8}
	defer delete(blockProperties, otherTransparent)

	if !shouldEmitFace(Water, otherTransparent) {
		t.Error("different-kind Transparent vs Transparent should emit")
	}
}

func TestShouldEmitFaceEmptyNeverEmits(t *testing.T) {
	if shouldEmitFace(Air, Stone) {
		t.Error("Empty current block should never emit a face")
	}
}
