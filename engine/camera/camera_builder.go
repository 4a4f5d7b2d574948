package camera

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithLogger sets the logger receiving fallback and degeneracy warnings.
// A nil logger discards them.
//
// Parameters:
//   - logger: destination for camera diagnostics
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's logger
func WithLogger(logger *log.Logger) CameraBuilderOption {
	return func(c *cameraImpl) {
		if logger == nil {
			logger = discardLogger
		}
		c.logger = logger
	}
}

// WithOrientation points the camera from eye towards target.
//
// Parameters:
//   - eye: world-space eye position
//   - target: world-space look-at point
//   - up: approximate up direction
//
// Returns:
//   - CameraBuilderOption: a function that orients the camera
func WithOrientation(eye, target, up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.OrientLookAt(eye, target, up)
	}
}

// WithViewAngle sets the vertical field of view in degrees.
//
// Parameters:
//   - degrees: field of view
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's view angle
func WithViewAngle(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetViewAngle(degrees)
	}
}

// WithNearPlane sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNearPlane(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetNearPlane(near)
	}
}

// WithFarPlane sets the far clipping plane distance. Apply after WithNearPlane.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the far plane
func WithFarPlane(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetFarPlane(far)
	}
}

// WithScreenSize sets the screen dimensions in pixels.
//
// Parameters:
//   - width, height: screen size
//
// Returns:
//   - CameraBuilderOption: a function that sets the screen size
func WithScreenSize(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetScreenSize(width, height)
	}
}

// WithOrthonormalizeEvery makes the camera re-orthonormalize its basis after every n
// incremental rotations. n <= 0 disables it, which is the default.
//
// Parameters:
//   - n: rotations between re-orthonormalizations
//
// Returns:
//   - CameraBuilderOption: a function that sets the interval
func WithOrthonormalizeEvery(n int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orthonormalizeEvery = n
		c.rotationsSinceOrtho = 0
	}
}
