package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is a normalized half-space (normal . point + distance >= 0 is the
// positive side), grounded on
// original_source/render/frustum_culling.rs's Plane type.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

func newPlane(a, b, c, d float32) Plane {
	normal := mgl32.Vec3{a, b, c}
	length := normal.Len()
	if length == 0 {
		return Plane{Normal: normal, Distance: d}
	}
	inv := 1 / length
	return Plane{Normal: normal.Mul(inv), Distance: d * inv}
}

// SignedDistance returns the signed distance from p to the plane.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum is the six planes of a view-projection matrix's clip volume.
type Frustum struct {
	Left, Right, Bottom, Top, Near, Far Plane
}

// FrustumFromViewProjection extracts the six frustum planes from a
// column-major view-projection matrix via row addition/subtraction,
// grounded on
// original_source/render/frustum_culling.rs's Frustum::from_projection.
func FrustumFromViewProjection(m mgl32.Mat4) Frustum {
	// mgl32.Mat4 is stored column-major; row(i) reads (m[i], m[i+4], m[i+8], m[i+12]).
	row := func(i int) (float32, float32, float32, float32) {
		return m[i], m[i+4], m[i+8], m[i+12]
	}

	r0a, r0b, r0c, r0d := row(0)
	r1a, r1b, r1c, r1d := row(1)
	r2a, r2b, r2c, r2d := row(2)
	r3a, r3b, r3c, r3d := row(3)

	return Frustum{
		Left:   newPlane(r3a+r0a, r3b+r0b, r3c+r0c, r3d+r0d),
		Right:  newPlane(r3a-r0a, r3b-r0b, r3c-r0c, r3d-r0d),
		Bottom: newPlane(r3a+r1a, r3b+r1b, r3c+r1c, r3d+r1d),
		Top:    newPlane(r3a-r1a, r3b-r1b, r3c-r1c, r3d-r1d),
		Near:   newPlane(r3a+r2a, r3b+r2b, r3c+r2c, r3d+r2d),
		Far:    newPlane(r3a-r2a, r3b-r2b, r3c-r2c, r3d-r2d),
	}
}

func (f Frustum) planes() [6]Plane {
	return [6]Plane{f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far}
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max mgl32.Vec3
}

func (b AABB) corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
}

// isOutsidePlane reports whether every corner of b lies strictly on the
// negative side of plane — the AABB is fully culled by that single plane.
func (b AABB) isOutsidePlane(p Plane) bool {
	for _, corner := range b.corners() {
		if p.SignedDistance(corner) >= 0 {
			return false
		}
	}
	return true
}

// IsOnFrustum reports whether b passes every one of the frustum's six
// planes (is at least partially inside), matching
// original_source/render/frustum_culling.rs's AABB::is_on_frustum.
func (b AABB) IsOnFrustum(f Frustum) bool {
	for _, p := range f.planes() {
		if b.isOutsidePlane(p) {
			return false
		}
	}
	return true
}

// ChunkAABB returns the precomputed world-space AABB for the chunk whose
// minimum world corner (coord*16) is (minX, minY, minZ): max = min + 15.
func ChunkAABB(minX, minY, minZ int32) AABB {
	const size = 16
	min := mgl32.Vec3{float32(minX), float32(minY), float32(minZ)}
	max := mgl32.Vec3{
		float32(minX) + size - 1,
		float32(minY) + size - 1,
		float32(minZ) + size - 1,
	}
	return AABB{Min: min, Max: max}
}
