package terrain

import "github.com/corradin/voxelcore/pkg/voxel"

// Biome classifies a column by its temperature sample, grounded on
// original_source/world/generator.rs's Biome enum and
// from_temperature/terrain_block/terrain_water/terrain_beach methods.
type Biome uint8

const (
	Plains Biome = iota
	Winter
	Desert
)

// classifyBiome buckets a temperature value in [0,1]: <0.3 Winter, 0.3..0.6
// Plains, >=0.6 Desert.
func classifyBiome(temperature float64) Biome {
	switch {
	case temperature < 0.3:
		return Winter
	case temperature < 0.6:
		return Plains
	default:
		return Desert
	}
}

// terrainBlock is the biome's subsurface fill block, used below the surface.
func (b Biome) terrainBlock() voxel.BlockType {
	switch b {
	case Winter:
		return voxel.Snow
	case Desert:
		return voxel.Sand
	default:
		return voxel.Grass
	}
}

// waterBlock is the biome's block for columns below WaterLevel and above
// the terrain surface.
func (b Biome) waterBlock() voxel.BlockType {
	return voxel.Water
}

// beachBlock is the biome's block for the single surface layer adjacent to
// WaterLevel.
func (b Biome) beachBlock() voxel.BlockType {
	switch b {
	case Winter:
		return voxel.Gravel
	default:
		return voxel.Sand
	}
}
