package camera

import (
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/go-gl/mathgl/mgl32"
)

// All matrices are column-major mgl32.Mat4 values meant to be applied as M * v.
// Nothing is cached; every call recomputes from the current state.

func (c *cameraImpl) ModelViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.lookVector), c.upVector)
}

func (c *cameraImpl) InverseModelViewMatrix() mgl32.Mat4 {
	return c.ModelViewMatrix().Inv()
}

// ScaleMatrix returns
//
//	| 1/wHalf  0        0      0 |
//	| 0        1/hHalf  0      0 |
//	| 0        0        1/far  0 |
//	| 0        0        0      1 |
//
// with hHalf = tan(viewAngle/2) * far and wHalf = hHalf * aspect.
// Invalid screen size, view angle or planes are replaced for this call only.
func (c *cameraImpl) ScaleMatrix() mgl32.Mat4 {
	p := c.validatedFrustum()
	wHalf, hHalf := p.halfExtents()
	return mgl32.Diag4(mgl32.Vec4{1 / wHalf, 1 / hHalf, 1 / p.far, 1})
}

func (c *cameraImpl) InverseScaleMatrix() mgl32.Mat4 {
	wHalf, hHalf := c.frustumParams().halfExtents()
	return mgl32.Diag4(mgl32.Vec4{wHalf, hHalf, c.farPlane, 1})
}

// UnhingeMatrix returns, with c = -near/far,
//
//	| 1  0  0           0        |
//	| 0  1  0           0        |
//	| 0  0  -1/(c+1)    c/(c+1)  |
//	| 0  0  -1          0        |
//
// which maps the scaled frustum's near plane to depth 0 and its far plane to depth 1.
func (c *cameraImpl) UnhingeMatrix() mgl32.Mat4 {
	near, far, err := validatePlanes(c.nearPlane, c.farPlane)
	c.warn(err)
	k := -(near / far)

	m := mgl32.Ident4()
	m.Set(2, 2, -(1 / (k + 1)))
	m.Set(3, 3, 0)
	m.Set(3, 2, -1)
	m.Set(2, 3, k/(k+1))
	return m
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.UnhingeMatrix().Mul4(c.ScaleMatrix())
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ModelViewMatrix())
}

func (c *cameraImpl) Frustum() common.Frustum {
	return common.ExtractFrustumFromMatrix(c.ViewProjectionMatrix())
}

// frustumParams snapshots the raw projection state.
func (c *cameraImpl) frustumParams() frustumParams {
	return frustumParams{
		viewAngle: c.viewAngle,
		near:      c.nearPlane,
		far:       c.farPlane,
		width:     c.screenWidth,
		height:    c.screenHeight,
	}
}

// validatedFrustum snapshots the projection state with fallbacks applied, logging each one.
func (c *cameraImpl) validatedFrustum() frustumParams {
	p, errs := validateFrustum(c.frustumParams())
	for _, err := range errs {
		c.warn(err)
	}
	return p
}
