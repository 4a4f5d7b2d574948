package camera

// CameraController translates window input into Camera operations.
// Key presses pitch, yaw and roll the camera or translate its look vector,
// the scroll wheel zooms by narrowing the view angle, middle-button drags
// turn the camera, and UI sliders feed absolute U, V, W angles.
type CameraController interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera receiving input
	Camera() Camera

	// KeyDown applies the action bound to keyCode, if any.
	// Bindings: W/S pitch, A/D yaw, Q/E roll, arrow keys translate the look
	// vector, R resets the camera, O re-orthonormalizes its basis.
	//
	// Parameters:
	//   - keyCode: GLFW-compatible virtual key code
	//
	// Returns:
	//   - bool: true if the key was bound
	KeyDown(keyCode uint32) bool

	// Scroll zooms the camera. Positive delta zooms in (narrower view angle).
	//
	// Parameters:
	//   - delta: scroll wheel delta scaled by ZoomStep
	Scroll(delta float32)

	// DragStart begins a mouse drag at the given cursor position.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	DragStart(x, y int32)

	// DragMove turns the camera by the cursor movement since the previous drag event.
	// Horizontal motion rotates about the world Y axis through the eye, vertical
	// motion pitches about the camera's right axis. Ignored when no drag is active.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	DragMove(x, y int32)

	// DragEnd finishes the current mouse drag.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	DragEnd(x, y int32)

	// Resize forwards a new framebuffer size to the camera.
	// A zero-sized framebuffer (minimized window) is ignored.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	Resize(width, height int)

	// SetSliders drives the camera from absolute rotation slider values.
	//
	// Parameters:
	//   - u, v, w: absolute angles in degrees
	SetSliders(u, v, w float32)

	// RotationStep returns the degrees applied per rotation key press.
	//
	// Returns:
	//   - float32: degrees per key press
	RotationStep() float32

	// MoveStep returns the camera-space distance applied per translation key press.
	//
	// Returns:
	//   - float32: distance per key press
	MoveStep() float32

	// ZoomStep returns the view angle change in degrees per unit of scroll.
	//
	// Returns:
	//   - float32: degrees per scroll unit
	ZoomStep() float32

	// MouseSensitivity returns the degrees turned per pixel of drag.
	//
	// Returns:
	//   - float32: degrees per pixel
	MouseSensitivity() float32
}
