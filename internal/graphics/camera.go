package graphics

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-fly camera: WASD moves in the horizontal view plane,
// space/shift move vertically, mouse look adjusts yaw and pitch.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees, -90 looks down -Z
	Pitch    float32 // degrees, clamped to avoid gimbal flip

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	MoveSpeed   float32
	Sensitivity float32

	firstMouse   bool
	lastX, lastY float64
}

// NewCamera creates a camera for the given viewport size.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 24, 48},
		Yaw:         -90,
		Pitch:       -15,
		FOV:         60,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000,
		MoveSpeed:   24,
		Sensitivity: 0.1,
		firstMouse:  true,
	}
}

// Front returns the view direction derived from yaw and pitch.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// ProcessKeyboard applies movement input for this frame.
func (c *Camera) ProcessKeyboard(window *glfw.Window, dt float64) {
	var dir mgl32.Vec3
	front := c.Front()
	// Horizontal-only basis so W/S don't change altitude
	flat := mgl32.Vec3{front.X(), 0, front.Z()}
	if flat.LenSqr() > 0 {
		flat = flat.Normalize()
	}
	right := flat.Cross(mgl32.Vec3{0, 1, 0})

	if window.GetKey(glfw.KeyW) == glfw.Press {
		dir = dir.Add(flat)
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		dir = dir.Sub(flat)
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		dir = dir.Sub(right)
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		dir = dir.Add(right)
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		dir = dir.Add(mgl32.Vec3{0, 1, 0})
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		dir = dir.Sub(mgl32.Vec3{0, 1, 0})
	}

	if dir.LenSqr() > 0 {
		c.Position = c.Position.Add(dir.Normalize().Mul(c.MoveSpeed * float32(dt)))
	}
}

// ProcessMouse applies a mouse look update from a cursor position callback.
func (c *Camera) ProcessMouse(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX, c.lastY = xpos, ypos
		c.firstMouse = false
		return
	}
	dx := float32(xpos-c.lastX) * c.Sensitivity
	dy := float32(c.lastY-ypos) * c.Sensitivity
	c.lastX, c.lastY = xpos, ypos

	c.Yaw += dx
	c.Pitch += dy
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// ResetMouse makes the next mouse event re-anchor instead of jumping,
// used after the cursor was released (pause) and recaptured.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}
