package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRotationStep sets the degrees applied per rotation key press.
//
// Parameters:
//   - degrees: rotation per key press
//
// Returns:
//   - CameraControllerOption: functional option to set the rotation step
func WithRotationStep(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotationStep = degrees
	}
}

// WithMoveStep sets the camera-space distance applied per translation key press.
//
// Parameters:
//   - step: translation per key press
//
// Returns:
//   - CameraControllerOption: functional option to set the move step
func WithMoveStep(step float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveStep = step
	}
}

// WithZoomStep sets the view angle change per unit of scroll.
//
// Parameters:
//   - degrees: view angle change per scroll unit
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom step
func WithZoomStep(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomStep = degrees
	}
}

// WithZoomBounds sets the view angle range the scroll wheel is clamped to.
//
// Parameters:
//   - minDegrees: narrowest view angle
//   - maxDegrees: widest view angle
//
// Returns:
//   - CameraControllerOption: functional option to set zoom bounds
func WithZoomBounds(minDegrees, maxDegrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minViewAngle = minDegrees
		cc.maxViewAngle = maxDegrees
	}
}

// WithMouseSensitivity sets the degrees turned per pixel of drag.
//
// Parameters:
//   - sensitivity: degrees per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}
