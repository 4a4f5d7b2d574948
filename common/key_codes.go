package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW = 87 // W key (ASCII): pitch up
	KeyA = 65 // A key (ASCII): yaw left
	KeyS = 83 // S key (ASCII): pitch down
	KeyD = 68 // D key (ASCII): yaw right
	KeyQ = 81 // Q key (ASCII): roll left
	KeyE = 69 // E key (ASCII): roll right
	KeyR = 82 // R key (ASCII): reset camera
	KeyO = 79 // O key (ASCII): re-orthonormalize basis
)

// Arrow keys (GLFW), used for camera-space translation.
const (
	KeyRight = 262
	KeyLeft  = 263
	KeyDown  = 264
	KeyUp    = 265
)

