package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// The identity maps onto the clip volume itself: x, y in [-1, 1] and z in [0, 1].
func TestExtractFrustumFromIdentity(t *testing.T) {
	f := ExtractFrustumFromMatrix(mgl32.Ident4())

	wantNormals := map[int]mgl32.Vec3{
		FrustumLeft:   {1, 0, 0},
		FrustumRight:  {-1, 0, 0},
		FrustumBottom: {0, 1, 0},
		FrustumTop:    {0, -1, 0},
		FrustumNear:   {0, 0, 1},
		FrustumFar:    {0, 0, -1},
	}
	for i, n := range wantNormals {
		if !f.Planes[i].Normal.ApproxEqual(n) {
			t.Errorf("plane %d normal = %v, want %v", i, f.Planes[i].Normal, n)
		}
	}
	if f.Planes[FrustumNear].Distance != 0 {
		t.Errorf("near distance = %v, want 0", f.Planes[FrustumNear].Distance)
	}

	tests := []struct {
		p    mgl32.Vec3
		want bool
	}{
		{mgl32.Vec3{0, 0, 0.5}, true},
		{mgl32.Vec3{1, -1, 1}, true},
		{mgl32.Vec3{0, 0, -0.1}, false},
		{mgl32.Vec3{0, 0, 1.1}, false},
		{mgl32.Vec3{1.5, 0, 0.5}, false},
		{mgl32.Vec3{0, -2, 0.5}, false},
	}
	for _, tt := range tests {
		if got := f.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPlanesAreNormalized(t *testing.T) {
	m := mgl32.Scale3D(4, 0.5, 2)
	for i, pl := range ExtractFrustumFromMatrix(m).Planes {
		if l := pl.Normal.Len(); l < 0.9999 || l > 1.0001 {
			t.Errorf("plane %d normal length = %v", i, l)
		}
	}
}

func TestIntersectsSphere(t *testing.T) {
	f := ExtractFrustumFromMatrix(mgl32.Ident4())

	if !f.IntersectsSphere(mgl32.Vec3{1.2, 0, 0.5}, 0.5) {
		t.Errorf("sphere straddling the right plane reported outside")
	}
	if f.IntersectsSphere(mgl32.Vec3{3, 0, 0.5}, 0.5) {
		t.Errorf("sphere beyond the right plane reported inside")
	}
	if !f.IntersectsSphere(mgl32.Vec3{0, 0, 0.5}, 10) {
		t.Errorf("sphere enclosing the frustum reported outside")
	}
}

func TestSignedDistance(t *testing.T) {
	pl := Plane{Normal: mgl32.Vec3{0, 1, 0}, Distance: -2}
	if d := pl.SignedDistance(mgl32.Vec3{7, 5, -3}); d != 3 {
		t.Errorf("SignedDistance = %v, want 3", d)
	}
}
