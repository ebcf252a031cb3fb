package solar

import (
	"testing"

	"SolarSystem/internal/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStarfield(t *testing.T) {
	positions, colors := GenerateStarfield(500, 1000, 42)
	require.Len(t, positions, 1500)
	require.Len(t, colors, 1500)

	for i := 0; i < 500; i++ {
		p := mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}
		assert.LessOrEqual(t, p.Len(), float32(1000.01))
	}
	for _, c := range colors {
		assert.GreaterOrEqual(t, c, float32(0))
		assert.Less(t, c, float32(1))
	}
}

func TestGenerateStarfieldSeeded(t *testing.T) {
	p1, c1 := GenerateStarfield(100, 10, 7)
	p2, c2 := GenerateStarfield(100, 10, 7)
	p3, _ := GenerateStarfield(100, 10, 8)

	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
	assert.NotEqual(t, p1, p3)
}

func TestGenerateStarfieldEmpty(t *testing.T) {
	positions, colors := GenerateStarfield(0, 10, 1)
	assert.Empty(t, positions)
	assert.Empty(t, colors)
}

func TestNewStarfield(t *testing.T) {
	s := config.Default().Starfield
	s.Count = 64
	cloud := NewStarfield(s)

	assert.Equal(t, "Stars", cloud.Name)
	assert.Equal(t, 64, cloud.Count())
	assert.Equal(t, s.Size, cloud.Size)
	assert.True(t, cloud.Transparent)
}

func TestTwinkleOscillatesBelowBand(t *testing.T) {
	tw := NewTwinkle(0.05, 1)

	assert.InDelta(t, 0.051, tw.Step(), 1e-6)
	assert.InDelta(t, 0.050, tw.Step(), 1e-6)
	assert.InDelta(t, 0.051, tw.Step(), 1e-6)
}

func TestTwinkleBouncesAtTop(t *testing.T) {
	tw := NewTwinkle(0.5, 1)

	var peak float32
	for i := 0; i < 2000; i++ {
		size := tw.Step()
		if size > peak {
			peak = size
		}
		assert.GreaterOrEqual(t, size, float32(0.29))
	}
	assert.InDelta(t, 1.001, peak, 1e-3)
}

func TestTwinkleBrightness(t *testing.T) {
	tw := NewTwinkle(0.05, 3)
	other := NewTwinkle(0.05, 3)

	varied := false
	first := tw.Brightness(0, 0.25)
	for i := 0; i < 200; i++ {
		b := tw.Brightness(i, 1.5)
		assert.GreaterOrEqual(t, b, float32(0))
		assert.LessOrEqual(t, b, float32(1))
		assert.Equal(t, b, other.Brightness(i, 1.5))
		if b != first {
			varied = true
		}
	}
	assert.True(t, varied, "brightness should differ between stars")
}

func TestTwinkleApply(t *testing.T) {
	s := config.Default().Starfield
	s.Count = 32
	cloud := NewStarfield(s)
	tw := NewTwinkle(cloud.Size, 5)

	tw.Apply(cloud, 2.75)

	assert.InDelta(t, 0.051, cloud.Size, 1e-6)
	for i := 0; i < cloud.Count(); i++ {
		assert.Equal(t, tw.Brightness(i, 2.75), cloud.Brightness[i])
	}
}
