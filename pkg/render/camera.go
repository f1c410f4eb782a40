package render

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// KeyStater answers whether a key is currently held down. It is the part of
// the window the camera needs for per-frame movement polling.
type KeyStater interface {
	GetKeyState(key glfw.Key) glfw.Action
}

// Camera implements a 3D fly camera for navigating the scene. It owns the
// projection mode flag, so switching between perspective and orthographic
// viewing is part of camera input handling.
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	// Camera options
	zoom        float32
	moveSpeed   float32
	rotateSpeed float32

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool

	// Projection mode; false is perspective
	orthographic bool
}

// NewCamera creates a new camera with sensible defaults
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},  // Y-up coordinate system
		front:       mgl32.Vec3{0, 0, -1}, // Looking along negative Z
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		zoom:        DefaultZoom,
		moveSpeed:   DefaultMoveSpeed,
		rotateSpeed: DefaultRotateSpeed,
		firstMouse:  true,
	}

	// Initialize vectors
	camera.updateCameraVectors()

	return camera
}

// updateCameraVectors recalculates camera vectors based on Euler angles
func (c *Camera) updateCameraVectors() {
	// Calculate new front vector
	front := mgl32.Vec3{
		float32(math.Cos(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
	}
	c.front = front.Normalize()

	// Re-calculate right and up vectors
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix computes the projection matrix for the current mode and
// window aspect ratio. It must be recomputed every frame: the zoom, the
// projection mode and the aspect ratio all change at runtime.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.orthographic {
		return mgl32.Ortho(
			-OrthoHalfExtent*aspect, OrthoHalfExtent*aspect,
			-OrthoHalfExtent, OrthoHalfExtent,
			NearPlane, FarPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, NearPlane, FarPlane)
}

// Orthographic reports whether the camera is in orthographic mode.
func (c *Camera) Orthographic() bool {
	return c.orthographic
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Zoom returns the current field of view in degrees.
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position).Normalize()

	// Calculate yaw and pitch from direction vector
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))

	c.updateCameraVectors()
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// ProcessKeyboardInput processes keyboard input for camera movement and
// projection switching. Movement is scaled by the frame delta time so the
// fly speed is independent of the frame rate.
func (c *Camera) ProcessKeyboardInput(deltaTime float32, keys KeyStater) {
	speed := c.moveSpeed * deltaTime

	// Forward/Backward
	if keys.GetKeyState(KeyW) == Press {
		c.position = c.position.Add(c.front.Mul(speed))
	}
	if keys.GetKeyState(KeyS) == Press {
		c.position = c.position.Sub(c.front.Mul(speed))
	}

	// Left/Right
	if keys.GetKeyState(KeyA) == Press {
		c.position = c.position.Sub(c.right.Mul(speed))
	}
	if keys.GetKeyState(KeyD) == Press {
		c.position = c.position.Add(c.right.Mul(speed))
	}

	// Up/Down
	if keys.GetKeyState(KeyQ) == Press {
		c.position = c.position.Add(c.worldUp.Mul(speed))
	}
	if keys.GetKeyState(KeyE) == Press {
		c.position = c.position.Sub(c.worldUp.Mul(speed))
	}

	// Projection toggle. O is checked first so that holding both keys in
	// the same poll deterministically resolves to perspective.
	if keys.GetKeyState(KeyO) == Press {
		c.orthographic = true
	}
	if keys.GetKeyState(KeyP) == Press {
		c.orthographic = false
	}
}

// HandleMouseMovement updates camera orientation based on mouse movement.
// The first invocation only seeds the last cursor position, so a freshly
// captured cursor cannot produce a spurious jump.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	// Calculate offset
	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: y ranges bottom to top

	c.lastX = xpos
	c.lastY = ypos

	// Apply sensitivity
	xoffset *= c.rotateSpeed
	yoffset *= c.rotateSpeed

	// Update camera angles
	c.yaw += xoffset
	c.pitch += yoffset

	// Constrain pitch
	if c.pitch > MaxPitch {
		c.pitch = MaxPitch
	}
	if c.pitch < MinPitch {
		c.pitch = MinPitch
	}

	// Update camera vectors
	c.updateCameraVectors()
}

// HandleMouseScroll handles mouse scroll for zoom. Zoom affects the field
// of view and therefore only the perspective projection.
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.zoom -= float32(yoffset)

	// Constrain zoom
	if c.zoom < MinZoom {
		c.zoom = MinZoom
	}
	if c.zoom > MaxZoom {
		c.zoom = MaxZoom
	}
}

// ResetMouseState resets the first-mouse flag for smooth camera control
func (c *Camera) ResetMouseState() {
	c.firstMouse = true
}
