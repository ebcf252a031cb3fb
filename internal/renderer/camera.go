package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera. OrbitControls move it; the renderer reads
// its view and projection each frame.
type Camera struct {
	Position   mgl32.Vec3 // World space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Degrees
	Yaw        float32    // Degrees

	WorldUp     mgl32.Vec3
	Fov         float32 // Vertical field of view in degrees
	Near        float32
	Far         float32
	AspectRatio float32 // Width / height
}

type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

type Frustum struct {
	Planes [6]Plane
}

// NewCamera creates a perspective camera at position looking at target.
func NewCamera(fov, near, far float32, width, height int32, position, target mgl32.Vec3) *Camera {
	camera := Camera{
		Position:    position,
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90.0,
		Fov:         fov,
		Near:        near,
		Far:         far,
		AspectRatio: aspect(width, height),
	}
	camera.LookAt(target)
	camera.UpdateProjection()
	return &camera
}

func aspect(width, height int32) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int32) {
	c.AspectRatio = aspect(width, height)
	c.UpdateProjection()
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

// LookAt points the camera at target. Looking straight up or down is clamped
// to a pitch of +-89 degrees.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.Yaw = mgl32.RadToDeg(math32.Atan2(direction.Z(), direction.X()))
	c.Pitch = mgl32.Clamp(mgl32.RadToDeg(math32.Asin(direction.Y())), -89, 89)
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yawRad) * math32.Cos(pitchRad),
		math32.Sin(pitchRad),
		math32.Sin(yawRad) * math32.Cos(pitchRad),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// CalculateFrustum extracts the six clip planes (left, right, bottom, top,
// near, far) from the view-projection matrix, normalized so that
// DistanceToPoint is a true distance.
func (c *Camera) CalculateFrustum() Frustum {
	vp := c.GetViewProjection()
	w := vp.Row(3)

	var frustum Frustum
	for axis := 0; axis < 3; axis++ {
		row := vp.Row(axis)
		frustum.Planes[2*axis] = planeFrom(w.Add(row))
		frustum.Planes[2*axis+1] = planeFrom(w.Sub(row))
	}
	return frustum
}

func planeFrom(v mgl32.Vec4) Plane {
	normal := v.Vec3()
	length := normal.Len()
	return Plane{Normal: normal.Mul(1 / length), Distance: v.W() / length}
}

func (p *Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}
