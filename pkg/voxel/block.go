package voxel

// Visibility classifies how a block interacts with the mesher's face-culling
// rules.
type Visibility uint8

const (
	// Empty blocks (only Air) never emit faces and never occlude a neighbor.
	Empty Visibility = iota
	// Opaque blocks occlude every neighbor and are culled against each other.
	Opaque
	// Transparent blocks never occlude an Opaque neighbor; their own faces
	// are culled against Opaque neighbors and against another Transparent
	// block of the same type.
	Transparent
)

// BlockType is the small enumerated set of voxel kinds.
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	Dirt
	Stone
	Sand
	Snow
	Gravel
	Water
)

// BlockProperties carries the static data the mesher and generator need for
// a block type.
type BlockProperties struct {
	Visibility Visibility
	TextureID  uint8
}

var blockProperties = map[BlockType]BlockProperties{
	Air:    {Visibility: Empty, TextureID: 0},
	Grass:  {Visibility: Opaque, TextureID: 1},
	Dirt:   {Visibility: Opaque, TextureID: 2},
	Stone:  {Visibility: Opaque, TextureID: 3},
	Sand:   {Visibility: Opaque, TextureID: 4},
	Snow:   {Visibility: Opaque, TextureID: 5},
	Gravel: {Visibility: Opaque, TextureID: 6},
	Water:  {Visibility: Transparent, TextureID: 7},
}

// GetBlockProperties returns the properties registered for blockType. Unknown
// block types are treated as Opaque so a malformed generator output cannot
// silently open a hole in a chunk's shell.
func GetBlockProperties(blockType BlockType) BlockProperties {
	props, ok := blockProperties[blockType]
	if !ok {
		return BlockProperties{Visibility: Opaque, TextureID: 0}
	}
	return props
}

// Visibility reports the block's visibility class.
func (b BlockType) Visibility() Visibility {
	return GetBlockProperties(b).Visibility
}

// TextureID reports the block's 0-based texture atlas tile index.
func (b BlockType) TextureID() uint8 {
	return GetBlockProperties(b).TextureID
}

// IsEmpty reports whether the block is Air (the only Empty block).
func (b BlockType) IsEmpty() bool {
	return b.Visibility() == Empty
}
