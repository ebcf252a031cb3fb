package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPointCloud(t *testing.T) {
	positions := []float32{0, 0, 0, 1, 1, 1}
	colors := []float32{1, 0, 0, 0, 1, 0}

	cloud := NewPointCloud("stars", positions, colors, 0.05)

	assert.Equal(t, 2, cloud.Count())
	assert.Equal(t, []float32{1, 1}, cloud.Brightness)
	assert.Equal(t, float32(0.05), cloud.Size)
	assert.False(t, cloud.Dirty())
}

func TestPointCloudSetBrightness(t *testing.T) {
	cloud := NewPointCloud("stars", make([]float32, 9), make([]float32, 9), 1)

	cloud.SetBrightness(1, 1)
	assert.False(t, cloud.Dirty(), "unchanged value should not dirty the buffer")

	cloud.SetBrightness(1, 0.5)
	assert.True(t, cloud.Dirty())
	assert.Equal(t, float32(0.5), cloud.Brightness[1])

	cloud.SetBrightness(-1, 0)
	cloud.SetBrightness(3, 0)
	assert.Equal(t, []float32{1, 0.5, 1}, cloud.Brightness)
}
