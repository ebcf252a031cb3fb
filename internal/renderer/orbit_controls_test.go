package renderer

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitControlsKeepsCameraWithoutInput(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam, mgl32.Vec3{}, 0.05)

	controls.Update(cam)

	assert.InDelta(t, 32, cam.Position.X(), 1e-3)
	assert.InDelta(t, 6, cam.Position.Y(), 1e-3)
	assert.InDelta(t, 16, cam.Position.Z(), 1e-3)
	assert.False(t, controls.Moving())
}

func TestOrbitControlsRotateKeepsDistance(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam, mgl32.Vec3{}, 0)
	distance := cam.Position.Len()
	azimuth := controls.Azimuth

	controls.Rotate(100, 0)
	controls.Update(cam)

	assert.InDelta(t, distance, cam.Position.Len(), 1e-3)
	assert.InDelta(t, azimuth-0.5, controls.Azimuth, 1e-5)
	assert.False(t, controls.Moving(), "no damping stops after one frame")
}

func TestOrbitControlsDamping(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam, mgl32.Vec3{}, 0.5)

	controls.Rotate(10, 0)
	controls.Update(cam)
	first := controls.Azimuth
	assert.True(t, controls.Moving())

	controls.Update(cam)
	second := controls.Azimuth - first

	// Half of the first step remains for the second frame
	assert.InDelta(t, -0.025, second, 1e-5)
}

func TestOrbitControlsPolarClamp(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam, mgl32.Vec3{}, 0)

	controls.Rotate(0, 100000)
	controls.Update(cam)
	assert.InDelta(t, minPolar, controls.Polar, 1e-6)

	controls.Rotate(0, -100000)
	controls.Update(cam)
	assert.InDelta(t, math32.Pi-minPolar, controls.Polar, 1e-5)
}

func TestOrbitControlsZoom(t *testing.T) {
	cam := newTestCamera()
	controls := NewOrbitControls(cam, mgl32.Vec3{}, 0)
	distance := controls.Distance

	controls.Zoom(1)
	assert.InDelta(t, distance*0.9, controls.Distance, 1e-3)

	controls.Zoom(-1000)
	assert.Equal(t, controls.MaxDistance, controls.Distance)

	controls.Zoom(1000)
	assert.Equal(t, controls.MinDistance, controls.Distance)
}

func TestOrbitControlsLooksAtTarget(t *testing.T) {
	cam := newTestCamera()
	target := mgl32.Vec3{1, 2, 3}
	controls := NewOrbitControls(cam, target, 0)

	controls.Rotate(40, 20)
	controls.Update(cam)

	want := target.Sub(cam.Position).Normalize()
	assert.True(t, vecNear(cam.Front, want, 1e-3), "front %v want %v", cam.Front, want)
}
