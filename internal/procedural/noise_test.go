package procedural

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(n int, spread float64) []mgl64.Vec3 {
	rng := rand.New(rand.NewSource(7))
	points := make([]mgl64.Vec3, n)
	for i := range points {
		points[i] = mgl64.Vec3{
			(rng.Float64()*2 - 1) * spread,
			(rng.Float64()*2 - 1) * spread,
			(rng.Float64()*2 - 1) * spread,
		}
	}
	return points
}

func TestNoiseaDeterministic(t *testing.T) {
	for _, p := range randomPoints(200, 50) {
		assert.Equal(t, Noisea(p), Noisea(p))
	}
}

func TestNoiseaRange(t *testing.T) {
	for _, p := range randomPoints(2000, 100) {
		n := Noisea(p)
		require.False(t, math.IsNaN(n))
		assert.GreaterOrEqual(t, n, -1.0)
		assert.Less(t, n, 1.0)
	}
}

func TestNoiseaOrigin(t *testing.T) {
	// Every intermediate is zero, so fract(0)*2-1 is exact
	assert.Equal(t, -1.0, Noisea(mgl64.Vec3{0, 0, 0}))
}

func TestNoiseaIntegerInputs(t *testing.T) {
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for z := -3; z <= 3; z++ {
				n := Noisea(mgl64.Vec3{float64(x), float64(y), float64(z)})
				assert.GreaterOrEqual(t, n, -1.0)
				assert.Less(t, n, 1.0)
			}
		}
	}
}

func TestSmoothBoundaries(t *testing.T) {
	assert.Equal(t, 1.0, Smooth(0))
	assert.Equal(t, 0.0, Smooth(1))
	assert.Equal(t, 0.5, Smooth(0.5))

	// Out of range inputs clamp
	assert.Equal(t, 1.0, Smooth(-0.25))
	assert.Equal(t, 0.0, Smooth(1.25))
}

func TestSmoothMonotonic(t *testing.T) {
	prev := Smooth(0)
	for i := 1; i <= 1000; i++ {
		cur := Smooth(float64(i) / 1000)
		assert.LessOrEqual(t, cur, prev, "smooth increased at step %d", i)
		prev = cur
	}
}

func TestSmoothComplementSumsToOne(t *testing.T) {
	for i := 0; i <= 100; i++ {
		f := float64(i) / 100
		assert.InDelta(t, 1.0, Smooth(f)+Smooth(1-f), 1e-12)
	}
}

func TestNoisegLatticeExact(t *testing.T) {
	for x := -4; x <= 4; x++ {
		for y := -4; y <= 4; y++ {
			for z := -4; z <= 4; z++ {
				p := mgl64.Vec3{float64(x), float64(y), float64(z)}
				assert.Equal(t, Noisea(p), Noiseg(p)[0], "lattice point %v", p)
			}
		}
	}
}

func TestNoisegBroadcast(t *testing.T) {
	for _, p := range randomPoints(50, 10) {
		n := Noiseg(p)
		assert.Equal(t, n[0], n[1])
		assert.Equal(t, n[0], n[2])
	}
}

func TestNoisegRange(t *testing.T) {
	for _, p := range randomPoints(2000, 30) {
		n := Noiseg(p)[0]
		assert.GreaterOrEqual(t, n, -1.0-1e-12)
		assert.LessOrEqual(t, n, 1.0+1e-12)
	}
}

func TestNoisegContinuousAcrossCells(t *testing.T) {
	const eps = 1e-9
	for x := -3; x <= 3; x++ {
		below := Noiseg(mgl64.Vec3{float64(x) - eps, 0.3, 0.7})[0]
		above := Noiseg(mgl64.Vec3{float64(x) + eps, 0.3, 0.7})[0]
		assert.InDelta(t, below, above, 1e-6, "discontinuity at x=%d", x)
	}
}

func TestNoisegDeterministic(t *testing.T) {
	for _, p := range randomPoints(200, 20) {
		assert.Equal(t, Noiseg(p), Noiseg(p))
	}
}
