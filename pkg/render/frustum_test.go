package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlaneSignedDistance(t *testing.T) {
	p := Plane{Normal: mgl32.Vec3{1, 0, 0}, Distance: -5}
	if got := p.SignedDistance(mgl32.Vec3{5, 0, 0}); got != 0 {
		t.Errorf("SignedDistance at the boundary = %v, want 0", got)
	}
	if got := p.SignedDistance(mgl32.Vec3{10, 0, 0}); got <= 0 {
		t.Errorf("SignedDistance on the positive side = %v, want > 0", got)
	}
	if got := p.SignedDistance(mgl32.Vec3{0, 0, 0}); got >= 0 {
		t.Errorf("SignedDistance on the negative side = %v, want < 0", got)
	}
}

func TestAABBIsOutsideASinglePlane(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	// A plane whose positive half-space starts well past the box along +X.
	farPlane := Plane{Normal: mgl32.Vec3{1, 0, 0}, Distance: -100}
	if !box.isOutsidePlane(farPlane) {
		t.Error("isOutsidePlane() = false, want true for a box entirely on the negative side")
	}

	nearPlane := Plane{Normal: mgl32.Vec3{1, 0, 0}, Distance: 0}
	if box.isOutsidePlane(nearPlane) {
		t.Error("isOutsidePlane() = true, want false: the box lies on x>=0")
	}
}

func TestChunkAABBBounds(t *testing.T) {
	box := ChunkAABB(16, 0, -16)
	want := AABB{Min: mgl32.Vec3{16, 0, -16}, Max: mgl32.Vec3{31, 15, -1}}
	if box != want {
		t.Errorf("ChunkAABB(16,0,-16) = %+v, want %+v", box, want)
	}
}

func TestFrustumFromViewProjectionCullsBehindNearPlane(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 0}
	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 1000)
	f := FrustumFromViewProjection(proj.Mul4(view))

	inFront := AABB{Min: mgl32.Vec3{-1, -1, -101}, Max: mgl32.Vec3{1, 1, -99}}
	if !inFront.IsOnFrustum(f) {
		t.Error("IsOnFrustum() = false for a box at (0,0,-100) in front of the camera, want true")
	}

	behind := AABB{Min: mgl32.Vec3{-1, -1, 99}, Max: mgl32.Vec3{1, 1, 101}}
	if behind.IsOnFrustum(f) {
		t.Error("IsOnFrustum() = true for a box at (0,0,100) behind the camera, want false (culled by the near plane)")
	}
}

func TestFrustumFromViewProjectionCullsBeyondFarPlane(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 0}
	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	f := FrustumFromViewProjection(proj.Mul4(view))

	tooFar := AABB{Min: mgl32.Vec3{-1, -1, -5001}, Max: mgl32.Vec3{1, 1, -4999}}
	if tooFar.IsOnFrustum(f) {
		t.Error("IsOnFrustum() = true for a box far past the far plane, want false")
	}
}

func TestIsOnFrustumRejectsBoxFullyOutsideOnePlane(t *testing.T) {
	// Six planes facing inward toward the origin, each 10 units from it:
	// a box at x=1000 must be rejected via the +X plane alone.
	half := float32(10)
	f := Frustum{
		Left:   Plane{Normal: mgl32.Vec3{1, 0, 0}, Distance: half},
		Right:  Plane{Normal: mgl32.Vec3{-1, 0, 0}, Distance: half},
		Bottom: Plane{Normal: mgl32.Vec3{0, 1, 0}, Distance: half},
		Top:    Plane{Normal: mgl32.Vec3{0, -1, 0}, Distance: half},
		Near:   Plane{Normal: mgl32.Vec3{0, 0, 1}, Distance: half},
		Far:    Plane{Normal: mgl32.Vec3{0, 0, -1}, Distance: half},
	}

	inside := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	if !inside.IsOnFrustum(f) {
		t.Error("IsOnFrustum() = false for a box well within all six planes, want true")
	}

	outside := AABB{Min: mgl32.Vec3{1000, -1, -1}, Max: mgl32.Vec3{1001, 1, 1}}
	if outside.IsOnFrustum(f) {
		t.Error("IsOnFrustum() = true for a box far outside the +X plane, want false")
	}
}
