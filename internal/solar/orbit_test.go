package solar

import (
	"math"
	"testing"
	"time"

	"SolarSystem/internal/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitAngleWrapsToOneTurn(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	angle := OrbitAngle(now, 0.00005)

	assert.GreaterOrEqual(t, angle, float32(0))
	assert.Less(t, angle, float32(2*math.Pi))

	ms := float64(now.UnixNano()) / 1e6
	want := math.Mod(ms*float64(float32(0.00005)), 2*math.Pi)
	assert.InDelta(t, want, float64(angle), 1e-5)
}

func TestOrbitAngleAdvancesWithTime(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	speed := float32(0.00005)
	a := OrbitAngle(start, speed)
	b := OrbitAngle(start.Add(1000*time.Millisecond), speed)

	delta := math.Mod(float64(b-a)+2*math.Pi, 2*math.Pi)
	assert.InDelta(t, 1000*float64(speed), delta, 1e-4)
}

func TestMoonPosition(t *testing.T) {
	b := config.Default().Bodies
	earth := mgl32.Vec3{1, 2, 3}

	pos := MoonPosition(earth, mgl32.Vec3{0, 7, 0}, b, 0)
	assert.InDelta(t, 1+5+3.84, pos.X(), 1e-5)
	assert.Equal(t, float32(7), pos.Y(), "moon keeps its own height")
	assert.InDelta(t, 3, pos.Z(), 1e-5)

	pos = MoonPosition(earth, mgl32.Vec3{}, b, math.Pi/2)
	assert.InDelta(t, 1, pos.X(), 1e-5)
	assert.InDelta(t, 3+5+3.84, pos.Z(), 1e-5)
}

func TestDysonOppositeMoon(t *testing.T) {
	b := config.Default().Bodies
	earth := mgl32.Vec3{}

	for _, angle := range []float32{0, 0.7, 2, 4.5} {
		moon := MoonPosition(earth, mgl32.Vec3{}, b, angle)
		dyson := DysonPosition(earth, mgl32.Vec3{}, b, angle)

		assert.InDelta(t, 5+3.84, moon.Len(), 1e-4)
		assert.InDelta(t, 5+4.5, dyson.Len(), 1e-4)
		assert.InDelta(t, -1, moon.Normalize().Dot(dyson.Normalize()), 1e-5)
	}
}

func TestEulerQuatOrder(t *testing.T) {
	e := Euler{X: 0.3, Y: -1.1, Z: 2}
	q := e.Quat()

	v := mgl32.Vec3{1, 2, 3}
	// XYZ order rotates about z first, then y, then x in world terms.
	want := mgl32.QuatRotate(e.X, mgl32.Vec3{1, 0, 0}).Rotate(
		mgl32.QuatRotate(e.Y, mgl32.Vec3{0, 1, 0}).Rotate(
			mgl32.QuatRotate(e.Z, mgl32.Vec3{0, 0, 1}).Rotate(v)))
	got := q.Rotate(v)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
	assert.True(t, Euler{}.Quat().ApproxEqual(mgl32.QuatIdent()))
}

func TestSpin(t *testing.T) {
	m := config.Default().Motion

	sun := Spin(SpinSun, Euler{}, m)
	assert.Equal(t, Euler{Y: m.RotationSpeed}, sun)

	earth := Spin(SpinEarth, Euler{}, m)
	assert.Equal(t, Euler{Y: m.EarthRotationSpeed}, earth)

	moon := Spin(SpinMoon, Euler{Y: 1}, m)
	assert.Equal(t, Euler{Y: 1 + m.RotationSpeed}, moon)

	tumble := Spin(SpinTumble, Euler{}, m)
	s := m.RotationSpeed
	assert.Equal(t, Euler{X: s, Y: s, Z: s}, tumble)
}

func TestSpinDysonKeepsYaw(t *testing.T) {
	m := config.Default().Motion
	e := Euler{}
	for i := 0; i < 100; i++ {
		e = Spin(SpinDyson, e, m)
	}
	assert.InDelta(t, 0, e.Y, 1e-6)
	assert.InDelta(t, 100*m.RotationSpeed, e.X, 1e-5)
	assert.InDelta(t, 100*m.RotationSpeed, e.Z, 1e-5)
}
