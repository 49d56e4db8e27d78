package voxel

// faceCorners gives the four corner offsets (each 0 or 1 on each axis) of a
// unit-cube face, in the winding order the renderer expects for
// front-face=CW, back-face culling. Grounded on the reference mesher's
// per-direction vertex tables.
var faceCorners = [6][4][3]int{
	Top:    {{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
	Bottom: {{1, 0, 1}, {1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
	Left:   {{0, 1, 0}, {0, 1, 1}, {0, 0, 1}, {0, 0, 0}},
	Right:  {{1, 1, 1}, {1, 1, 0}, {1, 0, 0}, {1, 0, 1}},
	Front:  {{0, 1, 1}, {1, 1, 1}, {1, 0, 1}, {0, 0, 1}},
	Back:   {{1, 1, 0}, {0, 1, 0}, {0, 0, 0}, {1, 0, 0}},
}

// aoOffsets gives, per direction, the eight (dx,dy,dz) offsets (relative to
// the padded center position, i.e. 1..16 domain) sampled to build that
// face's ambient occlusion. Index order is side,corner,side,corner,... going
// around the face so the ao of corner k (faceCorners[d][k]) uses samples
// (2k, 2k+1, 2k+2 mod 8).
var aoOffsets = [6][8][3]int{
	Left: {
		{-1, 0, -1}, {-1, 1, -1}, {-1, 1, 0}, {-1, 1, 1},
		{-1, 0, 1}, {-1, -1, 1}, {-1, -1, 0}, {-1, -1, -1},
	},
	Right: {
		{1, 0, 1}, {1, 1, 1}, {1, 1, 0}, {1, 1, -1},
		{1, 0, -1}, {1, -1, -1}, {1, -1, 0}, {1, -1, 1},
	},
	Bottom: {
		{0, -1, 1}, {1, -1, 1}, {1, -1, 0}, {1, -1, -1},
		{0, -1, -1}, {-1, -1, -1}, {-1, -1, 0}, {-1, -1, 1},
	},
	Top: {
		{-1, 1, 0}, {-1, 1, -1}, {0, 1, -1}, {1, 1, -1},
		{1, 1, 0}, {1, 1, 1}, {0, 1, 1}, {-1, 1, 1},
	},
	Back: {
		{1, 0, -1}, {1, 1, -1}, {0, 1, -1}, {-1, 1, -1},
		{-1, 0, -1}, {-1, -1, -1}, {0, -1, -1}, {1, -1, -1},
	},
	Front: {
		{-1, 0, 1}, {-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
		{1, 0, 1}, {1, -1, 1}, {0, -1, 1}, {-1, -1, 1},
	},
}

// aoValue maps three Opaque-occupancy booleans to the 0..3 ambient
// occlusion level: fully enclosed corners are darkest (0), fully open
// corners are brightest (3).
func aoValue(side1, corner, side2 bool) uint8 {
	switch {
	case side1 && side2:
		return 0
	case (side1 && corner && !side2) || (!side1 && corner && side2):
		return 1
	case !side1 && !corner && !side2:
		return 3
	default:
		return 2
	}
}

func faceAO(n *ChunkNeighborhood, x, y, z int, d Direction) [4]uint8 {
	offsets := aoOffsets[d]
	opaque := [8]bool{}
	for i, o := range offsets {
		opaque[i] = n.Get(x+o[0], y+o[1], z+o[2]).Visibility() == Opaque
	}
	return [4]uint8{
		aoValue(opaque[0], opaque[1], opaque[2]),
		aoValue(opaque[2], opaque[3], opaque[4]),
		aoValue(opaque[4], opaque[5], opaque[6]),
		aoValue(opaque[6], opaque[7], opaque[0]),
	}
}

// shouldEmitFace implements the §4.F visibility-pair rule: Opaque culls
// against Opaque, like-kind Transparent culls against itself, and Empty
// never emits or occludes.
func shouldEmitFace(current, neighbor BlockType) bool {
	cv, nv := current.Visibility(), neighbor.Visibility()
	switch cv {
	case Opaque:
		return nv == Empty || nv == Transparent
	case Transparent:
		if nv == Empty {
			return true
		}
		return nv == Transparent && neighbor != current
	default:
		return false
	}
}

// BuildMesh builds a chunk's mesh from its neighborhood by face culling with
// baked ambient occlusion. The mesher never performs greedy/binary face
// merging; every emitted quad is exactly one block face.
func BuildMesh(n *ChunkNeighborhood) *Mesh {
	mesh := NewMesh()
	for px := 1; px <= Size; px++ {
		for py := 1; py <= Size; py++ {
			for pz := 1; pz <= Size; pz++ {
				current := n.Get(px, py, pz)
				if current.Visibility() == Empty {
					continue
				}
				for _, d := range directions {
					off := d.offset()
					neighbor := n.Get(px+off[0], py+off[1], pz+off[2])
					if !shouldEmitFace(current, neighbor) {
						continue
					}
					ao := faceAO(n, px, py, pz, d)
					localX, localY, localZ := px-1, py-1, pz-1
					corners := faceCorners[d]
					var vs [4]uint32
					for i, c := range corners {
						vs[i] = PackVertex(localX+c[0], localY+c[1], localZ+c[2], ao[i], current.TextureID(), d)
					}
					mesh.AddFace(vs)
				}
			}
		}
	}
	return mesh
}
