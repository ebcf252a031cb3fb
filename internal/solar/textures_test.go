package solar

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"SolarSystem/internal/behaviour"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgb(r, g, b float64) colorful.Color {
	return colorful.Color{R: r, G: g, B: b}
}

func TestPalettesDiffer(t *testing.T) {
	sun := Palette(behaviour.BodySun)
	earth := Palette(behaviour.BodyEarth)
	moon := Palette(behaviour.BodyMoon)

	assert.NotEqual(t, sun.Color, earth.Color)
	assert.NotEqual(t, earth.Color, moon.Color)
	assert.NotEqual(t, sun.Seed, moon.Seed)
}

func TestFallbackTexture(t *testing.T) {
	img, err := FallbackTexture(context.Background(), behaviour.BodyMoon, 32, 16)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestTextureOrFallback(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "earth.jpg")
	require.NoError(t, os.WriteFile(present, []byte("jpeg"), 0o644))

	img, err := textureOrFallback(context.Background(), behaviour.BodyEarth, present, 8, 4)
	require.NoError(t, err)
	assert.Nil(t, img, "existing files are loaded by the renderer")

	img, err = textureOrFallback(context.Background(), behaviour.BodyEarth, filepath.Join(dir, "missing.jpg"), 8, 4)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, 8, img.Bounds().Dx())

	img, err = textureOrFallback(context.Background(), behaviour.BodySun, "", 8, 4)
	require.NoError(t, err)
	assert.NotNil(t, img)
}
