package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the length below which a direction vector is treated as zero.
const Epsilon float32 = 1e-6

// IsZero reports whether every component of v is exactly zero.
//
// Parameters:
//   - v: the vector to check
//
// Returns:
//   - bool: true if v is the zero vector
func IsZero(v mgl32.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// IsDegenerate reports whether v is too short to be normalized, or holds NaN/Inf components.
//
// Parameters:
//   - v: the vector to check
//
// Returns:
//   - bool: true if v cannot be used as a direction
func IsDegenerate(v mgl32.Vec3) bool {
	l := v.Len()
	return l < Epsilon || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0)
}

// SafeNormalize returns v scaled to unit length.
// Unlike mgl32.Vec3.Normalize it never produces NaN; a degenerate input is
// returned unchanged together with false.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the unit vector, or v itself if degenerate
//   - bool: false if v could not be normalized
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	if IsDegenerate(v) {
		return v, false
	}
	return v.Mul(1 / v.Len()), true
}

// RightFrom computes normalize(look x up), the right axis of a look/up pair.
//
// Parameters:
//   - look: forward direction
//   - up: up direction
//
// Returns:
//   - mgl32.Vec3: the unit right vector
//   - bool: false if look and up are parallel or either is zero
func RightFrom(look, up mgl32.Vec3) (mgl32.Vec3, bool) {
	return SafeNormalize(look.Cross(up))
}

// Orthonormalize re-derives a unit, mutually orthogonal look/up pair.
// The look direction is kept; up is projected onto the plane perpendicular to
// it (Gram-Schmidt) and renormalized.
//
// Parameters:
//   - look: forward direction (any length)
//   - up: approximate up direction
//
// Returns:
//   - mgl32.Vec3: unit look vector
//   - mgl32.Vec3: unit up vector orthogonal to look
//   - bool: false if the pair is degenerate, in which case the inputs are returned unchanged
func Orthonormalize(look, up mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, bool) {
	l, ok := SafeNormalize(look)
	if !ok {
		return look, up, false
	}
	right, ok := RightFrom(l, up)
	if !ok {
		return look, up, false
	}
	u, ok := SafeNormalize(right.Cross(l))
	if !ok {
		return look, up, false
	}
	return l, u, true
}

// TransformDirection applies m to v as a direction (w = 0), discarding translation.
//
// Parameters:
//   - m: the 4x4 transform
//   - v: the direction to transform
//
// Returns:
//   - mgl32.Vec3: the transformed direction
func TransformDirection(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// MatApproxEqual reports whether a and b agree element-wise within eps.
//
// Parameters:
//   - a, b: the matrices to compare
//   - eps: absolute tolerance per element
//
// Returns:
//   - bool: true if every element differs by at most eps
func MatApproxEqual(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if float32(math.Abs(float64(a[i]-b[i]))) > eps {
			return false
		}
	}
	return true
}
