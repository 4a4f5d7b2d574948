// Package engine runs the viewer frame loop: window events drive the camera
// controller, and each frame hands the camera to a render callback.
package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
	"github.com/Carmen-Shannon/oxy-view/engine/profiler"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the thread that owns the window's GL context.
type engine struct {
	logger *log.Logger

	window     window.Window
	camera     camera.Camera
	controller camera.CameraController

	controllerOptions []camera.CameraControllerOption

	profiler         *profiler.Profiler
	profilingEnabled bool
	title            string

	renderCallback   func(deltaTime float32, cam camera.Camera)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	now        func() time.Time
	sleep      func(time.Duration)
	lastRender time.Time
	quit       bool
}

// Engine is the main entry point for the viewer.
// It owns the window, the camera and its controller, and the frame loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera rendered each frame.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Controller returns the controller receiving the window's input events.
	//
	// Returns:
	//   - camera.CameraController: the controller instance
	Controller() camera.CameraController

	// EnableProfiler shows the measured frame rate in the window title.
	EnableProfiler()

	// DisableProfiler stops updating the window title with the frame rate.
	DisableProfiler()

	// SetRenderCallback registers the function called each frame before the buffers are swapped.
	//
	// Parameters:
	//   - callback: receives the delta time in seconds and the camera to render with
	SetRenderCallback(callback func(deltaTime float32, cam camera.Camera))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the frame loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run binds input to the controller and runs the frame loop.
	// Blocks until the window closes or Quit is called.
	Run()

	// Quit closes the window at the start of the next frame.
	// Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window and camera are created with their defaults unless supplied via
// WithWindow and WithCamera; the controller is always built for the camera.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger:   log.Default(),
		profiler: profiler.NewProfiler(),
		title:    "Oxy Viewer",
		now:      time.Now,
		sleep:    time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow(window.WithTitle(e.title))
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithLogger(e.logger))
	}
	e.controller = camera.NewCameraController(e.camera, e.controllerOptions...)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Run() {
	input.BindCameraController(e.window, e.controller)
	e.lastRender = e.now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
}

// frame renders one frame, then handles profiling and the frame limit.
func (e *engine) frame() {
	if e.quit {
		if err := e.window.Close(); err != nil {
			e.logger.Printf("[Engine] close failed: %v", err)
		}
		return
	}

	start := e.now()
	dt := float32(start.Sub(e.lastRender).Seconds())
	e.lastRender = start

	if e.renderCallback != nil {
		e.renderCallback(dt, e.camera)
	}
	e.window.SwapBuffers()

	if e.profilingEnabled {
		if _, updated := e.profiler.Tick(); updated {
			e.window.SetTitle(e.profiler.Title(e.title))
		}
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) Quit() {
	e.quit = true
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
	e.window.SetTitle(e.title)
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32, cam camera.Camera)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a frame rate cap into a minimum frame duration.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
