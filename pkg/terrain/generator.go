package terrain

import "github.com/corradin/voxelcore/pkg/voxel"

const (
	scale              = 64.0
	temperatureScale   = 256.0
	waterLevel         = 40
	terrainScale       = 48.0
	baseTerrainHeight  = 24
	sectionHeightTotal = voxel.Size * voxel.Size // 256 blocks tall
)

// Generator produces one ChunkSection (a full vertical column) at a time,
// deterministically from a SectionPosition and the seed it was constructed
// with.
type Generator struct {
	base        fbmLayer
	hill        fbmLayer
	temperature fbmLayer
}

// NewGenerator builds the composed noise sampler: base Fbm, blended against
// a lower-frequency hill Fbm (used as both the blend source and its own
// control signal), raised to an exponent, plus an independent temperature
// Fbm for biome classification. Parameters are grounded on
// original_source/world/generator.rs's DefaultGenerator::new.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		base:        newFBMLayer(seed, 0.85, 0.25, 2.08, 8),
		hill:        newFBMLayer(seed+1, 0.45, 0.65, 0.95, 3),
		temperature: newFBMLayer(seed+2, 0.5, 0.5, 0.7, 2),
	}
}

// heightField samples the composed terrain noise at a world (x,z) and
// returns a value in [0,1].
func (g *Generator) heightField(globalX, globalZ int32) float64 {
	nx, nz := float64(globalX)/scale, float64(globalZ)/scale
	base := g.base.sample(nx, nz)
	hill := g.hill.sample(nx, nz)
	blended := blend(base, hill, hill)
	return unitInterval(exponent(blended, 1.4))
}

func (g *Generator) biomeAt(globalX, globalZ int32) Biome {
	tx, tz := float64(globalX)/temperatureScale, float64(globalZ)/temperatureScale
	temperature := unitInterval(g.temperature.sample(tx, tz))
	return classifyBiome(temperature)
}

// GenerateSection deterministically produces the full 256-block-tall column
// at pos. Equal (pos, seed) pairs always yield equal sections.
func (g *Generator) GenerateSection(pos voxel.SectionPosition) *voxel.ChunkSection {
	section := voxel.NewChunkSection()

	for x := 0; x < voxel.Size; x++ {
		for z := 0; z < voxel.Size; z++ {
			globalX := pos.X*voxel.Size + int32(x)
			globalZ := pos.Z*voxel.Size + int32(z)

			field := g.heightField(globalX, globalZ)
			height := baseTerrainHeight + int(field*terrainScale)
			biome := g.biomeAt(globalX, globalZ)

			for y := 0; y < sectionHeightTotal; y++ {
				if height > y {
					diff := height - y
					var block voxel.BlockType
					switch {
					case diff == 1 && y >= waterLevel-1 && y <= waterLevel:
						block = biome.beachBlock()
					case diff > 3:
						block = voxel.Stone
					default:
						block = biome.terrainBlock()
					}
					section.Set(x, y, z, block)
				} else if y < waterLevel {
					section.Set(x, y, z, biome.waterBlock())
				}
			}
		}
	}

	return section
}
