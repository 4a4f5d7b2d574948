package camera

import (
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

func assertMat(t *testing.T, name string, got, want mgl32.Mat4) {
	t.Helper()
	if !common.MatApproxEqual(got, want, eps) {
		t.Errorf("%s =\n%v\nwant\n%v", name, got, want)
	}
}

// projectionStates returns a spread of valid camera configurations.
func projectionStates(t *testing.T) map[string]*cameraImpl {
	t.Helper()
	states := map[string]*cameraImpl{}

	def, _ := newTestCamera(t)
	states["default"] = def

	wide, _ := newTestCamera(t, WithViewAngle(110), WithNearPlane(0.1), WithFarPlane(1000), WithScreenSize(1920, 1080))
	states["wide"] = wide

	narrow, _ := newTestCamera(t, WithViewAngle(15), WithNearPlane(2), WithFarPlane(30), WithScreenSize(480, 640))
	states["narrow portrait"] = narrow

	oblique, _ := newTestCamera(t, WithOrientation(mgl32.Vec3{4, -2, 7}, mgl32.Vec3{0, 1, -3}, mgl32.Vec3{0.2, 1, 0}))
	oblique.SetRotUVW(12, -40, 77)
	states["oblique"] = oblique

	return states
}

func TestProjectionIsUnhingeTimesScale(t *testing.T) {
	for name, c := range projectionStates(t) {
		t.Run(name, func(t *testing.T) {
			assertMat(t, "projection", c.ProjectionMatrix(), c.UnhingeMatrix().Mul4(c.ScaleMatrix()))
		})
	}
}

func TestModelViewInverse(t *testing.T) {
	for name, c := range projectionStates(t) {
		t.Run(name, func(t *testing.T) {
			mv := c.ModelViewMatrix()
			inv := c.InverseModelViewMatrix()
			assertMat(t, "mv * inv", mv.Mul4(inv), mgl32.Ident4())
			assertMat(t, "inv * mv", inv.Mul4(mv), mgl32.Ident4())
		})
	}
}

func TestScaleInverse(t *testing.T) {
	for name, c := range projectionStates(t) {
		t.Run(name, func(t *testing.T) {
			assertMat(t, "scale * inv", c.ScaleMatrix().Mul4(c.InverseScaleMatrix()), mgl32.Ident4())
		})
	}
}

func TestScaleMatrixEntries(t *testing.T) {
	c, _ := newTestCamera(t, WithViewAngle(90), WithFarPlane(10), WithScreenSize(400, 200))

	// hHalf = tan(45) * 10 = 10, wHalf = 10 * 2 = 20
	want := mgl32.Diag4(mgl32.Vec4{1.0 / 20, 1.0 / 10, 1.0 / 10, 1})
	assertMat(t, "scale", c.ScaleMatrix(), want)
	assertMat(t, "inverse scale", c.InverseScaleMatrix(), mgl32.Diag4(mgl32.Vec4{20, 10, 10, 1}))
}

func TestUnhingeMatrixEntries(t *testing.T) {
	c, _ := newTestCamera(t, WithNearPlane(1), WithFarPlane(4))
	k := float32(-0.25)

	m := c.UnhingeMatrix()
	want := mgl32.Ident4()
	want[10] = -1 / (k + 1)
	want[11] = -1
	want[14] = k / (k + 1)
	want[15] = 0
	assertMat(t, "unhinge", m, want)

	if m.At(3, 2) != -1 || m.At(3, 3) != 0 {
		t.Errorf("unhinge row 3 = %v, want (0, 0, -1, 0)", m.Row(3))
	}
}

func TestScaleMatrixFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(c *cameraImpl)
		want    mgl32.Mat4
		message string
	}{
		{
			name:    "screen size",
			corrupt: func(c *cameraImpl) { c.screenWidth, c.screenHeight = 0, -4 },
			// 1x1 screen, 60 degrees, far 20
			want:    scaleFor(60, 20, 1),
			message: ErrInvalidScreenSize.Error(),
		},
		{
			name:    "view angle",
			corrupt: func(c *cameraImpl) { c.viewAngle = mgl32.DegToRad(190) },
			want:    scaleFor(45, 20, 1),
			message: ErrInvalidViewAngle.Error(),
		},
		{
			name:    "planes",
			corrupt: func(c *cameraImpl) { c.SetNearPlane(50) },
			want:    scaleFor(60, 100, 1),
			message: ErrInvalidFarPlane.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, logs := newTestCamera(t)
			tt.corrupt(c)

			assertMat(t, "scale", c.ScaleMatrix(), tt.want)
			if !strings.Contains(logs.String(), tt.message) {
				t.Errorf("missing %q warning, got %q", tt.message, logs.String())
			}
		})
	}
}

func TestMatrixFallbacksKeepState(t *testing.T) {
	c, _ := newTestCamera(t)
	c.SetNearPlane(50)

	_ = c.ProjectionMatrix()

	if c.NearPlane() != 50 || c.FarPlane() != 20 {
		t.Errorf("projection fallback modified state: near %v far %v", c.NearPlane(), c.FarPlane())
	}
}

func TestUnhingeFallback(t *testing.T) {
	c, logs := newTestCamera(t)
	c.SetNearPlane(50)

	k := -(matrixFallbackNearPlane / matrixFallbackFarPlane)
	m := c.UnhingeMatrix()
	if !approx(m[10], -1/(k+1)) || !approx(m[14], k/(k+1)) {
		t.Errorf("unhinge fallback = %v", m)
	}
	if !strings.Contains(logs.String(), ErrInvalidFarPlane.Error()) {
		t.Errorf("missing warning, got %q", logs.String())
	}
}

func TestModelViewMatrix(t *testing.T) {
	c, _ := newTestCamera(t)
	mv := c.ModelViewMatrix()

	origin := mv.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVec(t, "origin in camera space", origin, mgl32.Vec3{0, 0, -DefaultFocusLength})

	eye := mv.Mul4x1(c.EyePoint().Vec4(1)).Vec3()
	assertVec(t, "eye in camera space", eye, mgl32.Vec3{})

	look := common.TransformDirection(mv, c.LookVector())
	assertVec(t, "look in camera space", look, mgl32.Vec3{0, 0, -1})
}

func TestProjectionDepthRange(t *testing.T) {
	c, _ := newTestCamera(t, WithNearPlane(1), WithFarPlane(10))
	vp := c.ViewProjectionMatrix()
	eye := c.EyePoint()

	ndc := func(p mgl32.Vec3) mgl32.Vec3 {
		clip := vp.Mul4x1(p.Vec4(1))
		return clip.Vec3().Mul(1 / clip[3])
	}

	near := ndc(eye.Add(c.LookVector().Mul(1)))
	far := ndc(eye.Add(c.LookVector().Mul(10)))
	mid := ndc(eye.Add(c.LookVector().Mul(4)))

	if !approx(near[2], 0) {
		t.Errorf("near plane depth = %v, want 0", near[2])
	}
	if !approx(far[2], 1) {
		t.Errorf("far plane depth = %v, want 1", far[2])
	}
	if !(mid[2] > 0 && mid[2] < 1) {
		t.Errorf("mid depth = %v, want in (0, 1)", mid[2])
	}

	// top edge of the frustum at the far plane maps to y = 1
	hHalf := float32(math.Tan(float64(mgl32.DegToRad(c.ViewAngle())/2))) * 10
	top := ndc(eye.Add(c.LookVector().Mul(10)).Add(c.UpVector().Mul(hHalf)))
	if !approx(top[1], 1) {
		t.Errorf("top edge y = %v, want 1", top[1])
	}
}

func TestFrustum(t *testing.T) {
	c, _ := newTestCamera(t)
	f := c.Frustum()

	inside := []mgl32.Vec3{{0, 0, 0}, {0, 0, -15}, {0.5, 0.5, 0}}
	outside := []mgl32.Vec3{{0, 0, 2}, {0, 0, -30}, {100, 0, 0}, {0, -50, 0}}

	for _, p := range inside {
		if !f.ContainsPoint(p) {
			t.Errorf("expected %v inside the frustum", p)
		}
	}
	for _, p := range outside {
		if f.ContainsPoint(p) {
			t.Errorf("expected %v outside the frustum", p)
		}
	}

	if f.IntersectsSphere(mgl32.Vec3{0, 0, 2}, 0.5) {
		t.Errorf("sphere behind the eye reported visible")
	}
	if !f.IntersectsSphere(mgl32.Vec3{0, 0, 1.2}, 0.5) {
		t.Errorf("sphere straddling the near plane reported hidden")
	}
}

func TestMatricesAreNotCached(t *testing.T) {
	c, _ := newTestCamera(t)
	before := c.ProjectionMatrix()
	c.SetViewAngle(30)
	if common.MatApproxEqual(before, c.ProjectionMatrix(), eps) {
		t.Errorf("projection did not follow view angle change")
	}
}

// scaleFor builds the expected scale matrix for a view angle in degrees.
func scaleFor(degrees, far, aspect float32) mgl32.Mat4 {
	hHalf := float32(math.Tan(float64(mgl32.DegToRad(degrees))/2)) * far
	wHalf := hHalf * aspect
	return mgl32.Diag4(mgl32.Vec4{1 / wHalf, 1 / hHalf, 1 / far, 1})
}
