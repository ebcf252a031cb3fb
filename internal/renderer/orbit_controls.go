package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// minPolar keeps the camera off the poles where the view matrix degenerates.
const minPolar = 0.001

// OrbitControls rotates and zooms a camera around a target point. Input is
// accumulated as angular velocity and applied by Update, which decays it by
// Damping each frame.
type OrbitControls struct {
	Target      mgl32.Vec3
	Distance    float32
	Azimuth     float32 // Radians around the world up axis
	Polar       float32 // Radians from the world up axis
	Damping     float32 // Fraction of velocity lost per frame, 0 stops immediately
	RotateSpeed float32 // Radians per pixel of drag
	ZoomSpeed   float32 // Fraction of the distance per scroll step
	MinDistance float32
	MaxDistance float32

	azimuthVelocity float32
	polarVelocity   float32
}

// NewOrbitControls starts orbiting from the camera's current position.
func NewOrbitControls(camera *Camera, target mgl32.Vec3, damping float32) *OrbitControls {
	offset := camera.Position.Sub(target)
	distance := offset.Len()

	controls := &OrbitControls{
		Target:      target,
		Distance:    distance,
		Damping:     damping,
		RotateSpeed: 0.005,
		ZoomSpeed:   0.1,
		MinDistance: 0.1,
		MaxDistance: camera.Far,
	}
	if distance > 0 {
		controls.Azimuth = math32.Atan2(offset.X(), offset.Z())
		controls.Polar = math32.Acos(mgl32.Clamp(offset.Y()/distance, -1, 1))
	}
	return controls
}

// Rotate queues a drag of dx, dy pixels.
func (o *OrbitControls) Rotate(dx, dy float32) {
	o.azimuthVelocity -= dx * o.RotateSpeed
	o.polarVelocity -= dy * o.RotateSpeed
}

// Zoom moves toward the target for positive steps and away for negative ones.
func (o *OrbitControls) Zoom(steps float32) {
	o.Distance *= math32.Pow(1-o.ZoomSpeed, steps)
	o.Distance = mgl32.Clamp(o.Distance, o.MinDistance, o.MaxDistance)
}

// Update applies pending rotation and places the camera.
func (o *OrbitControls) Update(camera *Camera) {
	o.Azimuth += o.azimuthVelocity
	o.Polar = mgl32.Clamp(o.Polar+o.polarVelocity, minPolar, math32.Pi-minPolar)

	if o.Damping > 0 {
		o.azimuthVelocity *= 1 - o.Damping
		o.polarVelocity *= 1 - o.Damping
	} else {
		o.azimuthVelocity = 0
		o.polarVelocity = 0
	}

	camera.Position = o.Target.Add(o.Offset())
	camera.LookAt(o.Target)
}

// Offset is the camera position relative to the target.
func (o *OrbitControls) Offset() mgl32.Vec3 {
	sinPolar := math32.Sin(o.Polar)
	return mgl32.Vec3{
		o.Distance * sinPolar * math32.Sin(o.Azimuth),
		o.Distance * math32.Cos(o.Polar),
		o.Distance * sinPolar * math32.Cos(o.Azimuth),
	}
}

// Moving reports whether queued rotation is still being applied.
func (o *OrbitControls) Moving() bool {
	const eps = 1e-6
	return math32.Abs(o.azimuthVelocity) > eps || math32.Abs(o.polarVelocity) > eps
}
