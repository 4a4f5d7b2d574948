// Package window opens the viewer's GLFW window and its OpenGL 4.1 core context,
// and forwards input events as plain callbacks.
package window

import (
	"fmt"
	"runtime"
)

// Window is the viewer's on-screen surface.
// Its event setters match input.Source, so a Window can be bound straight to a
// camera controller.
type Window interface {
	// SetUpdateCallback sets the per-frame function run by ProcessMessages.
	// A nil callback leaves the loop polling events only.
	SetUpdateCallback(callback func())

	// SetResizeCallback receives the new framebuffer size in pixels.
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback receives the vertical wheel offset; positive is away from the user.
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback receives GLFW key codes for presses and auto-repeats.
	// Escape is handled by the window itself and closes it.
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback receives GLFW key codes on release.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMiddleMouseDownCallback receives the cursor position when the middle button is pressed.
	SetMiddleMouseDownCallback(callback func(x, y int32))

	// SetMiddleMouseUpCallback receives the cursor position when the middle button is released.
	SetMiddleMouseUpCallback(callback func(x, y int32))

	// SetMouseMoveCallback receives every cursor position inside the window.
	SetMouseMoveCallback(callback func(x, y int32))

	// SetTitle replaces the title bar text.
	//
	// Parameters:
	//   - title: the new window title
	SetTitle(title string)

	// SwapBuffers presents the frame drawn into the GL context.
	SwapBuffers()

	// Time returns the seconds elapsed since GLFW was initialized.
	//
	// Returns:
	//   - float64: elapsed time in seconds
	Time() float64

	// IsRunning reports whether the window is still open.
	//
	// Returns:
	//   - bool: false once closed by the user, Escape, or Close
	IsRunning() bool

	// Close destroys the window and terminates GLFW.
	//
	// Returns:
	//   - error: non-nil if the window was never opened or is already closed
	Close() error

	// ProcessMessages polls events and runs the update callback until the window closes.
	// The update callback is expected to draw a frame and call SwapBuffers.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// callbacks groups the event handlers; any of them may be nil.
type callbacks struct {
	update          func()
	resize          func(width, height int)
	scroll          func(delta float32)
	keyDown         func(keyCode uint32)
	keyUp           func(keyCode uint32)
	middleMouseDown func(x, y int32)
	middleMouseUp   func(x, y int32)
	mouseMove       func(x, y int32)
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	// size limits in screen coordinates; -1 leaves a maximum unbounded
	minWidth, minHeight int
	maxWidth, maxHeight int

	// requested size before the window opens, framebuffer size afterwards
	width, height int

	// swapInterval is the number of screen refreshes SwapBuffers waits for.
	swapInterval int

	// internalWindow is the *glfwWindow once opened, nil before and after.
	internalWindow any

	on callbacks
}

var _ Window = &engineWindow{}

// NewWindow opens a window and makes its OpenGL context current on the calling
// goroutine, whose OS thread stays locked for the window's lifetime.
// Panics if GLFW or OpenGL cannot be initialized.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open, visible window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:        "Oxy Viewer",
		minWidth:     200,
		minHeight:    200,
		maxWidth:     -1,
		maxHeight:    -1,
		width:        800,
		height:       600,
		swapInterval: 1,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to open viewer window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) { w.on.update = callback }

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) { w.on.resize = callback }

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) { w.on.scroll = callback }

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) { w.on.keyDown = callback }

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) { w.on.keyUp = callback }

func (w *engineWindow) SetMiddleMouseDownCallback(callback func(x, y int32)) {
	w.on.middleMouseDown = callback
}

func (w *engineWindow) SetMiddleMouseUpCallback(callback func(x, y int32)) {
	w.on.middleMouseUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y int32)) { w.on.mouseMove = callback }

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) Time() float64 {
	return platformTime()
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for platformProcessMessages(w) {
		if w.on.update != nil {
			w.on.update()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
