package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sentinel errors describing why a value was replaced or an operation skipped.
var (
	ErrInvalidViewAngle  = errors.New("view angle must be between 0 and 180 degrees")
	ErrInvalidNearPlane  = errors.New("near plane must be greater than 0")
	ErrInvalidFarPlane   = errors.New("far plane must be greater than near plane")
	ErrInvalidScreenSize = errors.New("screen dimensions must be positive")
	ErrZeroVector        = errors.New("direction vector is zero")
	ErrDegenerateBasis   = errors.New("look and up vectors are parallel")
)

// Setter fallbacks.
const (
	FallbackViewAngle    float32 = 60.0
	FallbackNearPlane    float32 = 0.01
	FallbackFarPlane     float32 = 20.0
	FallbackScreenWidth          = 800
	FallbackScreenHeight         = 600
)

// Fallbacks used only while building the scale and unhinge matrices.
// They never modify the camera's stored state.
const (
	matrixFallbackViewAngle    float32 = 45.0
	matrixFallbackNearPlane    float32 = 0.1
	matrixFallbackFarPlane     float32 = 100.0
	matrixFallbackScreenWidth          = 1
	matrixFallbackScreenHeight         = 1
)

// ValidateViewAngle checks a vertical field of view in degrees.
//
// Parameters:
//   - degrees: requested view angle
//
// Returns:
//   - float32: degrees if it lies in (0, 180), otherwise FallbackViewAngle
//   - error: wraps ErrInvalidViewAngle when the fallback was used
func ValidateViewAngle(degrees float32) (float32, error) {
	if !(degrees > 0 && degrees < 180) {
		return FallbackViewAngle, fmt.Errorf("%w: got %g, using %g", ErrInvalidViewAngle, degrees, FallbackViewAngle)
	}
	return degrees, nil
}

// ValidateNearPlane checks a near clipping distance.
//
// Parameters:
//   - near: requested near plane
//
// Returns:
//   - float32: near if positive, otherwise FallbackNearPlane
//   - error: wraps ErrInvalidNearPlane when the fallback was used
func ValidateNearPlane(near float32) (float32, error) {
	if !(near > 0) {
		return FallbackNearPlane, fmt.Errorf("%w: got %g, using %g", ErrInvalidNearPlane, near, FallbackNearPlane)
	}
	return near, nil
}

// ValidateFarPlane checks a far clipping distance against the current near plane.
//
// Parameters:
//   - far: requested far plane
//   - near: the near plane far must exceed
//
// Returns:
//   - float32: far if greater than near, otherwise FallbackFarPlane
//   - error: wraps ErrInvalidFarPlane when the fallback was used
func ValidateFarPlane(far, near float32) (float32, error) {
	if !(far > near) {
		return FallbackFarPlane, fmt.Errorf("%w: got %g with near %g, using %g", ErrInvalidFarPlane, far, near, FallbackFarPlane)
	}
	return far, nil
}

// ValidateScreenSize checks screen dimensions in pixels.
//
// Parameters:
//   - width, height: requested size
//
// Returns:
//   - int, int: the size if both are positive, otherwise 800x600
//   - error: wraps ErrInvalidScreenSize when the fallback was used
func ValidateScreenSize(width, height int) (int, int, error) {
	if width <= 0 || height <= 0 {
		return FallbackScreenWidth, FallbackScreenHeight, fmt.Errorf("%w: got %dx%d, using %dx%d",
			ErrInvalidScreenSize, width, height, FallbackScreenWidth, FallbackScreenHeight)
	}
	return width, height, nil
}

// frustumParams is the snapshot of state the scale and unhinge matrices are built from.
type frustumParams struct {
	viewAngle float32 // radians
	near      float32
	far       float32
	width     int
	height    int
}

// aspect returns width / height.
func (p frustumParams) aspect() float32 {
	return float32(p.width) / float32(p.height)
}

// halfExtents returns the frustum half-width and half-height at the far plane.
func (p frustumParams) halfExtents() (wHalf, hHalf float32) {
	hHalf = float32(math.Tan(float64(p.viewAngle)/2)) * p.far
	wHalf = hHalf * p.aspect()
	return wHalf, hHalf
}

// validateFrustum applies the matrix-building fallbacks independently for the
// screen size, view angle and near/far pair.
//
// Parameters:
//   - p: raw camera state
//
// Returns:
//   - frustumParams: corrected parameters
//   - []error: one entry per corrected group, nil if p was valid
func validateFrustum(p frustumParams) (frustumParams, []error) {
	var errs []error
	if p.width <= 0 || p.height <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d, using %dx%d for projection",
			ErrInvalidScreenSize, p.width, p.height, matrixFallbackScreenWidth, matrixFallbackScreenHeight))
		if p.width <= 0 {
			p.width = matrixFallbackScreenWidth
		}
		if p.height <= 0 {
			p.height = matrixFallbackScreenHeight
		}
	}
	if !(p.viewAngle > 0 && p.viewAngle < mgl32.DegToRad(180)) {
		errs = append(errs, fmt.Errorf("%w: got %g, using %g for projection",
			ErrInvalidViewAngle, mgl32.RadToDeg(p.viewAngle), matrixFallbackViewAngle))
		p.viewAngle = mgl32.DegToRad(matrixFallbackViewAngle)
	}
	near, far, err := validatePlanes(p.near, p.far)
	if err != nil {
		errs = append(errs, err)
	}
	p.near, p.far = near, far
	return p, errs
}

// validatePlanes checks 0 < near < far and falls back to 0.1/100 as a pair.
func validatePlanes(near, far float32) (float32, float32, error) {
	if !(near > 0 && near < far) {
		return matrixFallbackNearPlane, matrixFallbackFarPlane, fmt.Errorf("%w: got near %g far %g, using %g/%g for projection",
			ErrInvalidFarPlane, near, far, matrixFallbackNearPlane, matrixFallbackFarPlane)
	}
	return near, far, nil
}
