package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var errNotOpen = errors.New("window is not open")

// glfwWindow is the open GLFW window and its running flag.
type glfwWindow struct {
	window  *glfw.Window
	running bool
}

// openWindow returns the GLFW state of w, or nil if w is not open.
func openWindow(w *engineWindow) *glfwWindow {
	gw, _ := w.internalWindow.(*glfwWindow)
	return gw
}

// newPlatformWindow opens the GLFW window, creates an OpenGL 4.1 core context,
// loads the GL function pointers and registers the event callbacks.
//
// GLFW: https://www.glfw.org/docs/latest/window_guide.html
// go-gl: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	// GLFW and the GL context are bound to the main OS thread.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)
	win.MakeContextCurrent()
	glfw.SwapInterval(w.swapInterval)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return fmt.Errorf("gl init: %w", err)
	}

	gw := &glfwWindow{window: win, running: true}
	w.internalWindow = gw
	registerInput(w, gw)
	registerResize(w, win)

	// the camera wants framebuffer pixels, not screen coordinates
	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width, w.height = fbWidth, fbHeight
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return nil
}

// registerInput forwards keys, scroll, middle-button drags and cursor motion to w's callbacks.
// Escape closes the window and is not forwarded.
func registerInput(w *engineWindow, gw *glfwWindow) {
	win := gw.window

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape {
			if action == glfw.Press {
				gw.running = false
				win.SetShouldClose(true)
			}
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			if w.on.keyDown != nil {
				w.on.keyDown(uint32(key))
			}
		case glfw.Release:
			if w.on.keyUp != nil {
				w.on.keyUp(uint32(key))
			}
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.on.scroll != nil {
			w.on.scroll(float32(yoff))
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonMiddle {
			return
		}
		x, y := win.GetCursorPos()
		switch {
		case action == glfw.Press && w.on.middleMouseDown != nil:
			w.on.middleMouseDown(int32(x), int32(y))
		case action == glfw.Release && w.on.middleMouseUp != nil:
			w.on.middleMouseUp(int32(x), int32(y))
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.on.mouseMove != nil {
			w.on.mouseMove(int32(x), int32(y))
		}
	})
}

// registerResize keeps the GL viewport and w's size in step with the framebuffer.
func registerResize(w *engineWindow, win *glfw.Window) {
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		if w.on.resize != nil {
			w.on.resize(width, height)
		}
	})
}

func platformSetTitle(w *engineWindow, title string) {
	if gw := openWindow(w); gw != nil {
		gw.window.SetTitle(title)
	}
}

func platformSwapBuffers(w *engineWindow) {
	if gw := openWindow(w); gw != nil {
		gw.window.SwapBuffers()
	}
}

func platformTime() float64 {
	return glfw.GetTime()
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw := openWindow(w)
	return gw != nil && gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the window and terminates GLFW.
// Returns errNotOpen if the window was never opened or is already closed.
func platformCloseWindow(w *engineWindow) error {
	gw := openWindow(w)
	if gw == nil {
		return errNotOpen
	}
	gw.running = false
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls pending events without blocking and reports
// whether the window is still open afterwards. GLFW is not touched once closed.
func platformProcessMessages(w *engineWindow) bool {
	if !platformIsRunningCheck(w) {
		return false
	}
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
