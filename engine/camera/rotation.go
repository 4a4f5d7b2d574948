package camera

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationDelta returns the per-axis change from the last applied absolute angles to target.
//
// Parameters:
//   - last: previously applied U, V, W angles
//   - target: requested U, V, W angles
//
// Returns:
//   - [3]float32: target - last, component-wise
func RotationDelta(last, target [3]float32) [3]float32 {
	return [3]float32{
		target[0] - last[0],
		target[1] - last[1],
		target[2] - last[2],
	}
}

func (c *cameraImpl) RotateU(degrees float32) {
	right, ok := c.checkBasis("rotateU")
	if !ok {
		return
	}
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(degrees), right)
	look, lookOK := common.SafeNormalize(common.TransformDirection(rot, c.lookVector))
	up, upOK := common.SafeNormalize(common.TransformDirection(rot, c.upVector))
	if !lookOK || !upOK {
		c.warn(fmt.Errorf("rotateU: %w after rotation", ErrZeroVector))
		return
	}
	c.lookVector = look
	c.upVector = up
	c.rotated()
}

func (c *cameraImpl) RotateV(degrees float32) {
	if _, ok := c.checkBasis("rotateV"); !ok {
		return
	}
	axis, _ := common.SafeNormalize(c.upVector)
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis)
	look, ok := common.SafeNormalize(common.TransformDirection(rot, c.lookVector))
	if !ok {
		c.warn(fmt.Errorf("rotateV: %w after rotation", ErrZeroVector))
		return
	}
	c.lookVector = look
	c.rotated()
}

func (c *cameraImpl) RotateW(degrees float32) {
	if _, ok := c.checkBasis("rotateW"); !ok {
		return
	}
	axis, _ := common.SafeNormalize(c.lookVector)
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis)
	up, ok := common.SafeNormalize(common.TransformDirection(rot, c.upVector))
	if !ok {
		c.warn(fmt.Errorf("rotateW: %w after rotation", ErrZeroVector))
		return
	}
	c.upVector = up
	c.rotated()
}

func (c *cameraImpl) Rotate(point, axis mgl32.Vec3, degrees float32) {
	if common.IsDegenerate(c.lookVector) || common.IsDegenerate(c.upVector) {
		c.warn(fmt.Errorf("rotate: %w (look %v, up %v)", ErrZeroVector, c.lookVector, c.upVector))
		return
	}
	n, ok := common.SafeNormalize(axis)
	if !ok {
		c.warn(fmt.Errorf("rotate: %w (axis %v)", ErrZeroVector, axis))
		return
	}

	// translate to origin, rotate, translate back
	rot := mgl32.Translate3D(point[0], point[1], point[2]).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(degrees), n)).
		Mul4(mgl32.Translate3D(-point[0], -point[1], -point[2]))

	look, lookOK := common.SafeNormalize(common.TransformDirection(rot, c.lookVector))
	up, upOK := common.SafeNormalize(common.TransformDirection(rot, c.upVector))
	if !lookOK || !upOK {
		c.warn(fmt.Errorf("rotate: %w after rotation", ErrZeroVector))
		return
	}
	c.lookVector = look
	c.upVector = up
	c.rotated()
}

func (c *cameraImpl) SetRotUVW(u, v, w float32) {
	target := [3]float32{u, v, w}
	d := RotationDelta(c.rotation, target)
	c.RotateU(d[0])
	c.RotateV(d[1])
	c.RotateW(d[2])
	c.rotation = target
}

func (c *cameraImpl) Translate(v mgl32.Vec3) {
	if _, ok := c.checkBasis("translate"); !ok {
		return
	}
	look := c.lookVector.Add(common.TransformDirection(c.InverseModelViewMatrix(), v))
	if hasNaN(look) {
		c.warn(fmt.Errorf("translate: %w (offset %v)", ErrDegenerateBasis, v))
		return
	}
	// a zero-length result from a valid basis is kept
	c.lookVector = look
}

func (c *cameraImpl) Orthonormalize() {
	look, up, ok := common.Orthonormalize(c.lookVector, c.upVector)
	if !ok {
		c.warn(fmt.Errorf("orthonormalize: %w (look %v, up %v)", ErrDegenerateBasis, c.lookVector, c.upVector))
		return
	}
	c.lookVector = look
	c.upVector = up
	c.rotationsSinceOrtho = 0
}

// checkBasis verifies look and up are usable and returns the unit right axis.
// Failures are logged under op.
func (c *cameraImpl) checkBasis(op string) (mgl32.Vec3, bool) {
	if common.IsDegenerate(c.lookVector) || common.IsDegenerate(c.upVector) {
		c.warn(fmt.Errorf("%s: %w (look %v, up %v)", op, ErrZeroVector, c.lookVector, c.upVector))
		return mgl32.Vec3{}, false
	}
	right, ok := common.RightFrom(c.lookVector, c.upVector)
	if !ok {
		c.warn(fmt.Errorf("%s: %w", op, ErrDegenerateBasis))
		return mgl32.Vec3{}, false
	}
	return right, true
}

// hasNaN reports whether any component of v is NaN or infinite.
func hasNaN(v mgl32.Vec3) bool {
	for _, x := range v {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return true
		}
	}
	return false
}

// rotated counts an incremental rotation and re-orthonormalizes when the configured interval is reached.
func (c *cameraImpl) rotated() {
	if c.orthonormalizeEvery <= 0 {
		return
	}
	c.rotationsSinceOrtho++
	if c.rotationsSinceOrtho >= c.orthonormalizeEvery {
		c.Orthonormalize()
	}
}
