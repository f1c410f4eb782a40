package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyQ      = glfw.KeyQ
	KeyE      = glfw.KeyE
	KeyP      = glfw.KeyP
	KeyO      = glfw.KeyO
	KeyEscape = glfw.KeyEscape
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed   = 2.5
	DefaultRotateSpeed = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view (degrees); scroll zoom adjusts within these bounds
	DefaultZoom = 80.0
	MinZoom     = 1.0
	MaxZoom     = 120.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Clip planes shared by both projection modes
	NearPlane = 0.1
	FarPlane  = 100.0

	// Vertical half-extent of the orthographic view volume in world units
	OrthoHalfExtent = 10.0
)

// MaxTextureSlots is the number of texture units the registry may fill.
// One loaded texture occupies one unit.
const MaxTextureSlots = 16
