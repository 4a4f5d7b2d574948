package camera

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Defaults applied by Reset.
const (
	DefaultFocusLength  float32 = 1.0
	DefaultViewAngle    float32 = 60.0 // degrees
	DefaultNearPlane    float32 = 0.01
	DefaultFarPlane     float32 = 20.0
	DefaultScreenWidth          = 200
	DefaultScreenHeight         = 200
)

// cameraImpl is the single implementation of Camera.
// It is a plain value object: no locking, no cached matrices.
type cameraImpl struct {
	logger *log.Logger

	position   mgl32.Vec3
	lookVector mgl32.Vec3
	upVector   mgl32.Vec3

	viewAngle float32 // radians
	nearPlane float32
	farPlane  float32

	screenWidth  int
	screenHeight int

	// rotation holds the last absolute U, V, W angles (degrees) passed to SetRotUVW.
	rotation [3]float32

	// orthonormalizeEvery re-derives the basis after this many incremental rotations (0 = never).
	orthonormalizeEvery int
	rotationsSinceOrtho int
}

// Camera defines the viewpoint of the viewer: eye position and orientation,
// frustum parameters, and the view/projection matrices derived from them.
//
// Setters never fail. Out-of-range input is replaced by a documented fallback
// and degenerate geometry turns the call into a no-op; both are reported on
// the camera's logger. Read the value back through the getter if the applied
// value matters.
//
// Camera is not safe for concurrent use.
type Camera interface {
	// Reset restores the defaults: eye at (0, 0, DefaultFocusLength) looking at the
	// origin with up (0, 1, 0), default view angle and planes, a 200x200 screen and
	// zeroed rotation trackers.
	Reset()

	// OrientLookAt points the camera from eye towards target.
	//
	// Parameters:
	//   - eye: world-space eye position
	//   - target: world-space point to look at
	//   - up: approximate up direction
	OrientLookAt(eye, target, up mgl32.Vec3)

	// OrientLookVec sets the eye position and look direction, then re-derives up so
	// that look and up are orthonormal. Parallel or zero inputs leave the camera unchanged.
	//
	// Parameters:
	//   - eye: world-space eye position
	//   - look: forward direction (any length)
	//   - up: approximate up direction
	OrientLookVec(eye, look, up mgl32.Vec3)

	// SetViewAngle sets the vertical field of view in degrees.
	// Values outside (0, 180) fall back to 60.
	//
	// Parameters:
	//   - degrees: vertical field of view
	SetViewAngle(degrees float32)

	// SetNearPlane sets the near clipping distance. Non-positive values fall back to 0.01.
	//
	// Parameters:
	//   - near: near plane distance
	SetNearPlane(near float32)

	// SetFarPlane sets the far clipping distance. Values not beyond the current
	// near plane fall back to 20.
	//
	// Parameters:
	//   - far: far plane distance
	SetFarPlane(far float32)

	// SetScreenSize sets the screen dimensions in pixels. Non-positive values fall back to 800x600.
	//
	// Parameters:
	//   - width, height: screen size in pixels
	SetScreenSize(width, height int)

	// RotateU pitches the camera about its right axis.
	//
	// Parameters:
	//   - degrees: rotation angle
	RotateU(degrees float32)

	// RotateV yaws the camera about its up vector. The up vector itself is not modified.
	//
	// Parameters:
	//   - degrees: rotation angle
	RotateV(degrees float32)

	// RotateW rolls the camera about its look vector. The look vector itself is not modified.
	//
	// Parameters:
	//   - degrees: rotation angle
	RotateW(degrees float32)

	// Rotate turns the look and up vectors about a world-space axis through point.
	// Only directions are transformed, so point does not affect the result.
	//
	// Parameters:
	//   - point: pivot point of the axis
	//   - axis: world-space rotation axis
	//   - degrees: rotation angle
	Rotate(point, axis mgl32.Vec3, degrees float32)

	// SetRotUVW drives the camera from absolute U, V, W angles (as from UI sliders)
	// by applying only the change since the previous call, in U, V, W order.
	//
	// Parameters:
	//   - u, v, w: absolute angles in degrees
	SetRotUVW(u, v, w float32)

	// Translate interprets v as a camera-space direction, maps it to world space and
	// adds it to the look vector. The eye position is not moved.
	// No-op with a warning if the look and up vectors are zero or parallel.
	//
	// Parameters:
	//   - v: camera-space offset
	Translate(v mgl32.Vec3)

	// Orthonormalize re-derives a unit, orthogonal look/up pair, removing drift
	// accumulated by incremental rotations.
	Orthonormalize()

	// EyePoint returns the world-space eye position.
	EyePoint() mgl32.Vec3

	// LookVector returns the forward direction.
	LookVector() mgl32.Vec3

	// UpVector returns the up direction.
	UpVector() mgl32.Vec3

	// RightVector returns normalize(look x up), or the zero vector if the basis is degenerate.
	RightVector() mgl32.Vec3

	// ViewAngle returns the vertical field of view in degrees.
	ViewAngle() float32

	// NearPlane returns the near clipping distance.
	NearPlane() float32

	// FarPlane returns the far clipping distance.
	FarPlane() float32

	// ScreenWidth returns the screen width in pixels.
	ScreenWidth() int

	// ScreenHeight returns the screen height in pixels.
	ScreenHeight() int

	// ScreenWidthRatio returns the aspect ratio, width / height.
	ScreenWidthRatio() float32

	// Rotation returns the last absolute angles applied through SetRotUVW.
	//
	// Returns:
	//   - u, v, w: angles in degrees
	Rotation() (u, v, w float32)

	// ModelViewMatrix returns the world-to-camera look-at matrix (column-major).
	ModelViewMatrix() mgl32.Mat4

	// InverseModelViewMatrix returns the camera-to-world matrix.
	InverseModelViewMatrix() mgl32.Mat4

	// ScaleMatrix returns the matrix fitting the frustum into the unit cube.
	ScaleMatrix() mgl32.Mat4

	// InverseScaleMatrix returns the algebraic inverse of ScaleMatrix for the current state.
	// Unlike ScaleMatrix it does not apply fallbacks.
	InverseScaleMatrix() mgl32.Mat4

	// UnhingeMatrix returns the perspective depth-remap matrix.
	UnhingeMatrix() mgl32.Mat4

	// ProjectionMatrix returns UnhingeMatrix * ScaleMatrix.
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ModelViewMatrix.
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the world-space view frustum planes.
	Frustum() common.Frustum

	// Uniform returns the GPU uniform block for the current state.
	Uniform() GPUCameraUniform

	// String returns a human-readable dump of position, look and up.
	String() string
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera in its Reset state and applies the options in order.
// Options go through the validated setters, so WithLogger should come first for
// their warnings to reach the chosen logger.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		logger: log.Default(),
	}
	c.Reset()
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Reset() {
	c.OrientLookAt(
		mgl32.Vec3{0, 0, DefaultFocusLength},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	c.SetViewAngle(DefaultViewAngle)
	c.SetNearPlane(DefaultNearPlane)
	c.SetFarPlane(DefaultFarPlane)
	c.screenWidth = DefaultScreenWidth
	c.screenHeight = DefaultScreenHeight
	c.rotation = [3]float32{}
	c.rotationsSinceOrtho = 0
}

func (c *cameraImpl) OrientLookAt(eye, target, up mgl32.Vec3) {
	c.OrientLookVec(eye, target.Sub(eye), up)
}

func (c *cameraImpl) OrientLookVec(eye, look, up mgl32.Vec3) {
	if common.IsDegenerate(look) || common.IsDegenerate(up) {
		c.warn(fmt.Errorf("orient: %w (look %v, up %v)", ErrZeroVector, look, up))
		return
	}
	l, u, ok := common.Orthonormalize(look, up)
	if !ok {
		c.warn(fmt.Errorf("orient: %w (look %v, up %v)", ErrDegenerateBasis, look, up))
		return
	}
	c.position = eye
	c.lookVector = l
	c.upVector = u
}

func (c *cameraImpl) SetViewAngle(degrees float32) {
	v, err := ValidateViewAngle(degrees)
	c.warn(err)
	c.viewAngle = mgl32.DegToRad(v)
}

func (c *cameraImpl) SetNearPlane(near float32) {
	v, err := ValidateNearPlane(near)
	c.warn(err)
	c.nearPlane = v
}

func (c *cameraImpl) SetFarPlane(far float32) {
	v, err := ValidateFarPlane(far, c.nearPlane)
	c.warn(err)
	c.farPlane = v
}

func (c *cameraImpl) SetScreenSize(width, height int) {
	w, h, err := ValidateScreenSize(width, height)
	c.warn(err)
	c.screenWidth = w
	c.screenHeight = h
}

func (c *cameraImpl) EyePoint() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) LookVector() mgl32.Vec3 {
	return c.lookVector
}

func (c *cameraImpl) UpVector() mgl32.Vec3 {
	return c.upVector
}

func (c *cameraImpl) RightVector() mgl32.Vec3 {
	right, ok := common.RightFrom(c.lookVector, c.upVector)
	if !ok {
		return mgl32.Vec3{}
	}
	return right
}

func (c *cameraImpl) ViewAngle() float32 {
	return mgl32.RadToDeg(c.viewAngle)
}

func (c *cameraImpl) NearPlane() float32 {
	return c.nearPlane
}

func (c *cameraImpl) FarPlane() float32 {
	return c.farPlane
}

func (c *cameraImpl) ScreenWidth() int {
	return c.screenWidth
}

func (c *cameraImpl) ScreenHeight() int {
	return c.screenHeight
}

func (c *cameraImpl) ScreenWidthRatio() float32 {
	return float32(c.screenWidth) / float32(c.screenHeight)
}

func (c *cameraImpl) Rotation() (u, v, w float32) {
	return c.rotation[0], c.rotation[1], c.rotation[2]
}

func (c *cameraImpl) String() string {
	var sb strings.Builder
	writeVec := func(name string, v mgl32.Vec3) {
		if common.IsZero(v) {
			fmt.Fprintf(&sb, "warning: %s is uninitialized or zero vector\n", name)
			return
		}
		fmt.Fprintf(&sb, "%s: (%f, %f, %f)\n", name, v[0], v[1], v[2])
	}
	writeVec("position", c.position)
	writeVec("lookVector", c.lookVector)
	writeVec("upVector", c.upVector)
	return sb.String()
}

// warn logs err if it is non-nil.
func (c *cameraImpl) warn(err error) {
	if err == nil {
		return
	}
	c.logger.Printf("[Camera] %v", err)
}

// discardLogger swallows camera diagnostics.
var discardLogger = log.New(io.Discard, "", 0)
