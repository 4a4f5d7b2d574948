package camera

import (
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// worldUp is the axis horizontal drags turn the camera about.
var worldUp = mgl32.Vec3{0, 1, 0}

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	camera Camera

	rotationStep     float32
	moveStep         float32
	zoomStep         float32
	minViewAngle     float32
	maxViewAngle     float32
	mouseSensitivity float32

	dragging bool
	lastX    int32
	lastY    int32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller driving cam.
//
// Parameters:
//   - cam: the camera to control
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		camera: cam,

		rotationStep:     2.0,
		moveStep:         0.05,
		zoomStep:         2.0,
		minViewAngle:     5.0,
		maxViewAngle:     120.0,
		mouseSensitivity: 0.25,
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) KeyDown(keyCode uint32) bool {
	switch keyCode {
	case common.KeyW:
		cc.camera.RotateU(cc.rotationStep)
	case common.KeyS:
		cc.camera.RotateU(-cc.rotationStep)
	case common.KeyA:
		cc.camera.RotateV(cc.rotationStep)
	case common.KeyD:
		cc.camera.RotateV(-cc.rotationStep)
	case common.KeyQ:
		cc.camera.RotateW(-cc.rotationStep)
	case common.KeyE:
		cc.camera.RotateW(cc.rotationStep)
	case common.KeyRight:
		cc.camera.Translate(mgl32.Vec3{cc.moveStep, 0, 0})
	case common.KeyLeft:
		cc.camera.Translate(mgl32.Vec3{-cc.moveStep, 0, 0})
	case common.KeyUp:
		cc.camera.Translate(mgl32.Vec3{0, cc.moveStep, 0})
	case common.KeyDown:
		cc.camera.Translate(mgl32.Vec3{0, -cc.moveStep, 0})
	case common.KeyR:
		cc.camera.Reset()
		cc.dragging = false
	case common.KeyO:
		cc.camera.Orthonormalize()
	default:
		return false
	}
	return true
}

func (cc *cameraControllerImpl) Scroll(delta float32) {
	angle := cc.camera.ViewAngle() - delta*cc.zoomStep
	cc.camera.SetViewAngle(mgl32.Clamp(angle, cc.minViewAngle, cc.maxViewAngle))
}

func (cc *cameraControllerImpl) DragStart(x, y int32) {
	cc.dragging = true
	cc.lastX = x
	cc.lastY = y
}

func (cc *cameraControllerImpl) DragMove(x, y int32) {
	if !cc.dragging {
		return
	}
	dx := float32(x - cc.lastX)
	dy := float32(y - cc.lastY)
	cc.lastX = x
	cc.lastY = y

	if dx != 0 {
		cc.camera.Rotate(cc.camera.EyePoint(), worldUp, -dx*cc.mouseSensitivity)
	}
	if dy != 0 {
		cc.camera.RotateU(-dy * cc.mouseSensitivity)
	}
}

func (cc *cameraControllerImpl) DragEnd(x, y int32) {
	cc.DragMove(x, y)
	cc.dragging = false
}

func (cc *cameraControllerImpl) Resize(width, height int) {
	if width == 0 && height == 0 {
		return
	}
	cc.camera.SetScreenSize(width, height)
}

func (cc *cameraControllerImpl) SetSliders(u, v, w float32) {
	cc.camera.SetRotUVW(u, v, w)
}

func (cc *cameraControllerImpl) RotationStep() float32 {
	return cc.rotationStep
}

func (cc *cameraControllerImpl) MoveStep() float32 {
	return cc.moveStep
}

func (cc *cameraControllerImpl) ZoomStep() float32 {
	return cc.zoomStep
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	return cc.mouseSensitivity
}
