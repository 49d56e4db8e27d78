package voxel

// faceOffsets are the six face-adjacent chunk coordinate deltas, ordered to
// match the neighbor dispatch in Get below.
var faceOffsets = [6][3]int32{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// ChunkNeighborhood is a short-lived read view over a center chunk and its
// six face neighbors, indexed by a padded local coordinate in 0..=17 where
// 1..=16 addresses the center chunk and 0/17 addresses the appropriate face
// of a neighbor. It does not own the ChunkStore and performs O(7) lookups at
// construction.
type ChunkNeighborhood struct {
	center    *Chunk
	neighbors [6]*Chunk
}

// NewChunkNeighborhood builds a neighborhood for centerCoord against store.
// A missing center or neighbor resolves to nil, which Get treats as all-Air.
func NewChunkNeighborhood(store *ChunkStore, centerCoord ChunkCoord) *ChunkNeighborhood {
	n := &ChunkNeighborhood{}
	n.center, _ = store.Get(centerCoord)
	for i, off := range faceOffsets {
		coord := ChunkCoord{X: centerCoord.X + off[0], Y: centerCoord.Y + off[1], Z: centerCoord.Z + off[2]}
		n.neighbors[i], _ = store.Get(coord)
	}
	return n
}

// Get returns the block at padded local coordinate (x,y,z). Coordinates
// outside 0..=17 on any axis resolve to Air, matching the spec's wrapping
// contract for AO sampling at chunk boundaries.
func (n *ChunkNeighborhood) Get(x, y, z int) BlockType {
	const max = Size + 1

	switch {
	case inRange1(x) && inRange1(y) && inRange1(z):
		return chunkGet(n.center, x-1, y-1, z-1)
	case x == max && inRange1(y) && inRange1(z):
		return chunkGet(n.neighbors[0], 0, y-1, z-1)
	case x == 0 && inRange1(y) && inRange1(z):
		return chunkGet(n.neighbors[1], Size-1, y-1, z-1)
	case inRange1(x) && y == max && inRange1(z):
		return chunkGet(n.neighbors[2], x-1, 0, z-1)
	case inRange1(x) && y == 0 && inRange1(z):
		return chunkGet(n.neighbors[3], x-1, Size-1, z-1)
	case inRange1(x) && inRange1(y) && z == max:
		return chunkGet(n.neighbors[4], x-1, y-1, 0)
	case inRange1(x) && inRange1(y) && z == 0:
		return chunkGet(n.neighbors[5], x-1, y-1, Size-1)
	default:
		return Air
	}
}

func inRange1(v int) bool {
	return v >= 1 && v <= Size
}

func chunkGet(c *Chunk, x, y, z int) BlockType {
	if c == nil {
		return Air
	}
	return c.Get(x, y, z)
}
