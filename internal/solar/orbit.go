package solar

import (
	"math"
	"time"

	"SolarSystem/internal/config"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitAngle returns the orbital angle at wall clock now. The product is
// formed in float64 and wrapped to one turn so float32 keeps its precision
// for present day timestamps.
func OrbitAngle(now time.Time, speed float32) float32 {
	ms := float64(now.UnixNano()) / float64(time.Millisecond)
	return float32(math.Mod(ms*float64(speed), 2*math.Pi))
}

// MoonPosition places the moon on its orbit around earth. Only x and z change.
func MoonPosition(earth, moon mgl32.Vec3, b config.BodySettings, angle float32) mgl32.Vec3 {
	distance := b.EarthRadius + b.MoonDistanceFromEarth
	return mgl32.Vec3{
		earth.X() + distance*math32.Cos(angle),
		moon.Y(),
		earth.Z() + distance*math32.Sin(angle),
	}
}

// DysonPosition places the dyson sphere opposite the moon.
func DysonPosition(earth, dyson mgl32.Vec3, b config.BodySettings, angle float32) mgl32.Vec3 {
	distance := b.EarthRadius + b.DysonDistanceFromEarth
	return mgl32.Vec3{
		earth.X() - distance*math32.Cos(angle),
		dyson.Y(),
		earth.Z() - distance*math32.Sin(angle),
	}
}

// Euler holds rotation angles in radians, applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float32
}

func (e Euler) Quat() mgl32.Quat {
	qx := mgl32.QuatRotate(e.X, mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(e.Y, mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(e.Z, mgl32.Vec3{0, 0, 1})
	return qx.Mul(qy).Mul(qz)
}

// SpinMode selects the per frame rotation rule of a body.
type SpinMode string

const (
	SpinSun    SpinMode = "sun"
	SpinEarth  SpinMode = "earth"
	SpinMoon   SpinMode = "moon"
	SpinDyson  SpinMode = "dyson"
	SpinTumble SpinMode = "tumble" // Standalone dyson view
)

// Spin advances e by one frame.
func Spin(mode SpinMode, e Euler, m config.MotionSettings) Euler {
	s := m.RotationSpeed
	switch mode {
	case SpinSun, SpinMoon:
		e.Y += s
	case SpinEarth:
		e.Y += m.EarthRotationSpeed
	case SpinDyson:
		// y is turned back before the tumble, so it only moves with x and z
		e.Y -= s
		e.X += s
		e.Y += s
		e.Z += s
	case SpinTumble:
		e.X += s
		e.Y += s
		e.Z += s
	}
	return e
}
