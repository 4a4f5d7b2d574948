// Package input connects windowing callbacks to a camera controller.
package input

import (
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
)

// Source is the subset of window.Window that produces input events.
// window.Window satisfies it; tests can supply a fake.
type Source interface {
	SetResizeCallback(callback func(width, height int))
	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(keyCode uint32))
	SetMiddleMouseDownCallback(callback func(x, y int32))
	SetMiddleMouseUpCallback(callback func(x, y int32))
	SetMouseMoveCallback(callback func(x, y int32))
	Width() int
	Height() int
}

// BindCameraController routes src's events to cc and pushes the current
// framebuffer size to the camera.
//
// Parameters:
//   - src: the event source, usually a window.Window
//   - cc: the controller receiving the events
func BindCameraController(src Source, cc camera.CameraController) {
	src.SetResizeCallback(cc.Resize)
	src.SetScrollCallback(cc.Scroll)
	src.SetKeyDownCallback(func(keyCode uint32) {
		cc.KeyDown(keyCode)
	})
	src.SetMiddleMouseDownCallback(cc.DragStart)
	src.SetMiddleMouseUpCallback(cc.DragEnd)
	src.SetMouseMoveCallback(cc.DragMove)

	cc.Resize(src.Width(), src.Height())
}
