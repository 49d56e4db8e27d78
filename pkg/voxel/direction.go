package voxel

import "github.com/go-gl/mathgl/mgl32"

// Direction is a face orientation. Ordinal values 0..5 are the wire encoding
// used by PackVertex, so the ordering below must not change.
type Direction uint8

const (
	Top Direction = iota
	Bottom
	Left
	Right
	Front
	Back
)

var directions = [6]Direction{Top, Bottom, Left, Right, Front, Back}

// Directions returns the six face orientations in ordinal order.
func Directions() [6]Direction { return directions }

// offset is the integer (dx,dy,dz) a Direction steps from a block toward the
// neighbor it faces.
func (d Direction) offset() [3]int {
	switch d {
	case Top:
		return [3]int{0, 1, 0}
	case Bottom:
		return [3]int{0, -1, 0}
	case Left:
		return [3]int{-1, 0, 0}
	case Right:
		return [3]int{1, 0, 0}
	case Front:
		return [3]int{0, 0, 1}
	case Back:
		return [3]int{0, 0, -1}
	default:
		return [3]int{0, 0, 0}
	}
}

// Vector returns the unit vector for the direction, for consumers (e.g. the
// renderer's normal-dependent shading) that want it as a float vector.
func (d Direction) Vector() mgl32.Vec3 {
	o := d.offset()
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}
