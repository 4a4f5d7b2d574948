package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestControllerDefaults(t *testing.T) {
	c, _ := newTestCamera(t)
	cc := NewCameraController(c)

	if cc.Camera() != Camera(c) {
		t.Errorf("Camera() returned a different camera")
	}
	if cc.RotationStep() <= 0 || cc.MoveStep() <= 0 || cc.ZoomStep() <= 0 || cc.MouseSensitivity() <= 0 {
		t.Errorf("non-positive default steps: %v %v %v %v",
			cc.RotationStep(), cc.MoveStep(), cc.ZoomStep(), cc.MouseSensitivity())
	}
}

func TestControllerKeyBindings(t *testing.T) {
	const step = 5
	tests := []struct {
		name string
		key  uint32
		want func(Camera)
	}{
		{"W pitches up", common.KeyW, func(c Camera) { c.RotateU(step) }},
		{"S pitches down", common.KeyS, func(c Camera) { c.RotateU(-step) }},
		{"A yaws left", common.KeyA, func(c Camera) { c.RotateV(step) }},
		{"D yaws right", common.KeyD, func(c Camera) { c.RotateV(-step) }},
		{"Q rolls left", common.KeyQ, func(c Camera) { c.RotateW(-step) }},
		{"E rolls right", common.KeyE, func(c Camera) { c.RotateW(step) }},
		{"right arrow", common.KeyRight, func(c Camera) { c.Translate(mgl32.Vec3{0.5, 0, 0}) }},
		{"left arrow", common.KeyLeft, func(c Camera) { c.Translate(mgl32.Vec3{-0.5, 0, 0}) }},
		{"up arrow", common.KeyUp, func(c Camera) { c.Translate(mgl32.Vec3{0, 0.5, 0}) }},
		{"down arrow", common.KeyDown, func(c Camera) { c.Translate(mgl32.Vec3{0, -0.5, 0}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := newTestCamera(t)
			cc := NewCameraController(got, WithRotationStep(step), WithMoveStep(0.5))
			if !cc.KeyDown(tt.key) {
				t.Fatalf("KeyDown(%d) reported unbound", tt.key)
			}

			want, _ := newTestCamera(t)
			tt.want(want)

			assertVec(t, "look", got.LookVector(), want.LookVector())
			assertVec(t, "up", got.UpVector(), want.UpVector())
		})
	}
}

func TestControllerResetAndOrthonormalizeKeys(t *testing.T) {
	c, _ := newTestCamera(t)
	cc := NewCameraController(c)

	c.upVector = mgl32.Vec3{0, 1, 0.5}
	cc.KeyDown(common.KeyO)
	assertOrthonormal(t, c)

	c.OrientLookAt(mgl32.Vec3{9, 9, 9}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cc.KeyDown(common.KeyR)
	assertVec(t, "eye", c.EyePoint(), mgl32.Vec3{0, 0, DefaultFocusLength})
}

func TestControllerUnboundKey(t *testing.T) {
	c, _ := newTestCamera(t)
	cc := NewCameraController(c)
	look := c.LookVector()

	const space = 32 // GLFW space bar
	if cc.KeyDown(space) {
		t.Errorf("space reported as bound")
	}
	if c.LookVector() != look {
		t.Errorf("unbound key changed the camera")
	}
}

func TestControllerScroll(t *testing.T) {
	c, logs := newTestCamera(t)
	cc := NewCameraController(c, WithZoomStep(10), WithZoomBounds(20, 100))

	cc.Scroll(1)
	if !approx(c.ViewAngle(), 50) {
		t.Errorf("after zoom in ViewAngle() = %v, want 50", c.ViewAngle())
	}

	cc.Scroll(10)
	if !approx(c.ViewAngle(), 20) {
		t.Errorf("zoom in not clamped: %v", c.ViewAngle())
	}

	cc.Scroll(-50)
	if !approx(c.ViewAngle(), 100) {
		t.Errorf("zoom out not clamped: %v", c.ViewAngle())
	}
	if logs.Len() != 0 {
		t.Errorf("clamped zoom produced warnings: %q", logs.String())
	}
}

func TestControllerDrag(t *testing.T) {
	c, _ := newTestCamera(t)
	cc := NewCameraController(c, WithMouseSensitivity(1))

	cc.DragMove(50, 50) // no drag active
	assertVec(t, "look before drag", c.LookVector(), mgl32.Vec3{0, 0, -1})

	cc.DragStart(100, 100)
	cc.DragMove(10, 100) // 90 px left turns the camera 90 degrees left about world Y
	assertVec(t, "look after horizontal drag", c.LookVector(), mgl32.Vec3{-1, 0, 0})

	cc.DragEnd(10, 100)
	cc.DragMove(500, 500)
	assertVec(t, "look after drag end", c.LookVector(), mgl32.Vec3{-1, 0, 0})

	c.Reset()
	cc.DragStart(0, 100)
	cc.DragEnd(0, 10) // 90 px up pitches the camera up
	assertVec(t, "look after vertical drag", c.LookVector(), mgl32.Vec3{0, 1, 0})
}

func TestControllerResize(t *testing.T) {
	c, logs := newTestCamera(t)
	cc := NewCameraController(c)

	cc.Resize(1280, 720)
	if c.ScreenWidth() != 1280 || c.ScreenHeight() != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", c.ScreenWidth(), c.ScreenHeight())
	}

	cc.Resize(0, 0)
	if c.ScreenWidth() != 1280 || c.ScreenHeight() != 720 {
		t.Errorf("minimized resize changed screen to %dx%d", c.ScreenWidth(), c.ScreenHeight())
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected diagnostics: %q", logs.String())
	}
}

func TestControllerSliders(t *testing.T) {
	c, _ := newTestCamera(t)
	cc := NewCameraController(c)

	cc.SetSliders(10, 0, 0)
	cc.SetSliders(20, 0, 0)

	want, _ := newTestCamera(t)
	want.RotateU(20)
	assertVec(t, "look", c.LookVector(), want.LookVector())
	if u, _, _ := c.Rotation(); u != 20 {
		t.Errorf("rotation tracker u = %v, want 20", u)
	}
}
