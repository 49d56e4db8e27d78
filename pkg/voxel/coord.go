package voxel

// Size is the fixed edge length of a Chunk, in blocks.
const Size = 16

// ChunkCoord identifies a chunk at world position (cx*Size, cy*Size, cz*Size).
type ChunkCoord struct {
	X, Y, Z int32
}

// SectionPosition identifies a vertical column of chunks sharing (x, z),
// independent of y.
type SectionPosition struct {
	X, Z int32
}

// Section drops the Y component, giving this chunk's column identifier.
func (c ChunkCoord) Section() SectionPosition {
	return SectionPosition{X: c.X, Z: c.Z}
}

// WithY builds a ChunkCoord for this column at vertical index y.
func (s SectionPosition) WithY(y int32) ChunkCoord {
	return ChunkCoord{X: s.X, Y: y, Z: s.Z}
}

// Adjacent returns the four horizontal neighbors of this column, matching
// the four-neighbor precondition the streaming scheduler gates meshing on.
func (s SectionPosition) Adjacent() [4]SectionPosition {
	return [4]SectionPosition{
		{X: s.X - 1, Z: s.Z},
		{X: s.X + 1, Z: s.Z},
		{X: s.X, Z: s.Z - 1},
		{X: s.X, Z: s.Z + 1},
	}
}

// WorldToChunkCoord floor-divides a world block position into the chunk
// coordinate that contains it.
func WorldToChunkCoord(worldX, worldY, worldZ int32) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(worldX, Size),
		Y: floorDiv(worldY, Size),
		Z: floorDiv(worldZ, Size),
	}
}

// WorldToLocalCoord returns the 0..Size-1 local position of a world block
// position within its containing chunk.
func WorldToLocalCoord(worldX, worldY, worldZ int32) (int, int, int) {
	return int(floorMod(worldX, Size)), int(floorMod(worldY, Size)), int(floorMod(worldZ, Size))
}

// ChunkToWorldPos returns the minimum-corner world position of a chunk.
func ChunkToWorldPos(c ChunkCoord) (int32, int32, int32) {
	return c.X * Size, c.Y * Size, c.Z * Size
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int32) int32 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// LocalToIndex converts a local (x,y,z) in 0..Size-1 to a flat array index.
func LocalToIndex(x, y, z int) int {
	return x*Size*Size + y*Size + z
}

// IndexToLocal converts a flat array index back to local (x,y,z).
func IndexToLocal(index int) (x, y, z int) {
	x = index / (Size * Size)
	rem := index % (Size * Size)
	y = rem / Size
	z = rem % Size
	return
}
