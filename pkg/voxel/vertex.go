package voxel

// PackVertex packs one chunk-local vertex into a single uint32. Bit layout
// (offset, width): x(27,5) y(22,5) z(17,5) ao(15,2) textureID(9,6)
// direction(6,3), with 6 reserved low bits. x/y/z carry 0..16 inclusive.
func PackVertex(x, y, z int, ao uint8, textureID uint8, direction Direction) uint32 {
	return uint32(x&0x1F)<<27 |
		uint32(y&0x1F)<<22 |
		uint32(z&0x1F)<<17 |
		uint32(ao&0x3)<<15 |
		uint32(textureID&0x3F)<<9 |
		uint32(direction&0x7)<<6
}

// UnpackVertex recovers the fields PackVertex encoded.
func UnpackVertex(v uint32) (x, y, z int, ao uint8, textureID uint8, direction Direction) {
	x = int((v >> 27) & 0x1F)
	y = int((v >> 22) & 0x1F)
	z = int((v >> 17) & 0x1F)
	ao = uint8((v >> 15) & 0x3)
	textureID = uint8((v >> 9) & 0x3F)
	direction = Direction((v >> 6) & 0x7)
	return
}

// Mesh is a chunk's CPU-side triangle data: packed vertices plus 16-bit
// indices, built one quad at a time via AddFace.
type Mesh struct {
	Vertices []uint32
	Indices  []uint16
	quads    uint16
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Empty reports whether the mesh emitted no faces.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Quads reports the number of faces the mesh holds.
func (m *Mesh) Quads() int {
	return int(m.quads)
}

// AddFace appends one quad's four packed vertices and its six indices
// ([0,1,2,2,3,0] offset by 4*quad_index).
func (m *Mesh) AddFace(vertices [4]uint32) {
	base := m.quads * 4
	m.Vertices = append(m.Vertices, vertices[:]...)
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base+2, base+3, base,
	)
	m.quads++
}
