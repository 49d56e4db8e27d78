package stream

import (
	"sort"

	"github.com/corradin/voxelcore/pkg/voxel"
)

// ColumnOffset is a radial offset over SectionPosition, carrying its
// precomputed squared distance as its sort key.
type ColumnOffset struct {
	DX, DZ int32
	DistSq int64
}

// ChunkOffset is a radial offset over ChunkCoord.
type ChunkOffset struct {
	DX, DY, DZ int32
	DistSq     int64
}

// buildGeneratingOffsets returns every column offset within radius,
// sorted ascending by squared distance. This is the GeneratingOffsets table
// spec.md §4.G iterates to drive the generation step.
func buildGeneratingOffsets(radius int32) []ColumnOffset {
	offsets := make([]ColumnOffset, 0, (2*radius+1)*(2*radius+1))
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			d := int64(dx)*int64(dx) + int64(dz)*int64(dz)
			if d > int64(radius)*int64(radius) {
				continue
			}
			offsets = append(offsets, ColumnOffset{DX: dx, DZ: dz, DistSq: d})
		}
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i].DistSq < offsets[j].DistSq })
	return offsets
}

// buildVisibleOffsets returns every chunk offset within the horizontal and
// vertical render distances, sorted ascending by squared distance. This is
// the VisibleOffsets table spec.md §4.G iterates for the visibility step.
func buildVisibleOffsets(horizontal, vertical int32) []ChunkOffset {
	offsets := make([]ChunkOffset, 0)
	for dx := -horizontal; dx <= horizontal; dx++ {
		for dz := -horizontal; dz <= horizontal; dz++ {
			horizSq := int64(dx)*int64(dx) + int64(dz)*int64(dz)
			if horizSq > int64(horizontal)*int64(horizontal) {
				continue
			}
			for dy := -vertical; dy <= vertical; dy++ {
				d := horizSq + int64(dy)*int64(dy)
				offsets = append(offsets, ChunkOffset{DX: dx, DY: dy, DZ: dz, DistSq: d})
			}
		}
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i].DistSq < offsets[j].DistSq })
	return offsets
}

// Apply returns the absolute SectionPosition this offset yields around
// origin.
func (o ColumnOffset) Apply(origin voxel.SectionPosition) voxel.SectionPosition {
	return voxel.SectionPosition{X: origin.X + o.DX, Z: origin.Z + o.DZ}
}

// Apply returns the absolute ChunkCoord this offset yields around origin.
func (o ChunkOffset) Apply(origin voxel.ChunkCoord) voxel.ChunkCoord {
	return voxel.ChunkCoord{X: origin.X + o.DX, Y: origin.Y + o.DY, Z: origin.Z + o.DZ}
}
