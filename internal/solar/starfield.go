package solar

import (
	"math/rand"

	"SolarSystem/internal/config"
	"SolarSystem/internal/renderer"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
)

// GenerateStarfield scatters count stars inside a ball of the given radius.
// Each star takes six draws from the seeded source: radius, polar angle,
// azimuth and then its red, green and blue components.
func GenerateStarfield(count int, radius float32, seed int64) (positions, colors []float32) {
	rng := rand.New(rand.NewSource(seed))
	positions = make([]float32, count*3)
	colors = make([]float32, count*3)

	for i := 0; i < count; i++ {
		r := radius * rng.Float32()
		theta := math32.Acos(2*rng.Float32() - 1)
		phi := 2 * math32.Pi * rng.Float32()

		positions[i*3] = r * math32.Sin(theta) * math32.Cos(phi)
		positions[i*3+1] = r * math32.Sin(theta) * math32.Sin(phi)
		positions[i*3+2] = r * math32.Cos(theta)

		colors[i*3] = rng.Float32()
		colors[i*3+1] = rng.Float32()
		colors[i*3+2] = rng.Float32()
	}
	return positions, colors
}

// NewStarfield builds the transparent point cloud of the scene.
func NewStarfield(s config.StarfieldSettings) *renderer.PointCloud {
	positions, colors := GenerateStarfield(s.Count, s.Radius, s.Seed)
	cloud := renderer.NewPointCloud("Stars", positions, colors, s.Size)
	cloud.Transparent = true
	return cloud
}

const (
	twinkleStep    = 0.001
	twinkleMinSize = 0.3
	twinkleMaxSize = 1.0

	// Perlin sampling of per star brightness
	twinkleStarSpacing = 0.37
	twinkleTimeScale   = 0.5
	twinkleDepth       = 0.5
)

// Twinkle animates a starfield. The shared point size bounces between
// twinkleMinSize and twinkleMaxSize; each star's brightness follows 2D Perlin
// noise over its index and time.
type Twinkle struct {
	Size      float32
	direction float32
	noise     *perlin.Perlin
}

func NewTwinkle(size float32, seed int64) *Twinkle {
	return &Twinkle{
		Size:      size,
		direction: 1,
		noise:     perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Step grows or shrinks the point size by one frame and returns it. The
// direction flips after any step that leaves the size band, so a size that
// starts outside the band oscillates in place.
func (t *Twinkle) Step() float32 {
	t.Size += twinkleStep * t.direction
	if t.Size > twinkleMaxSize || t.Size < twinkleMinSize {
		t.direction = -t.direction
	}
	return t.Size
}

// Brightness returns the brightness of star i at the given time, in [0, 1].
func (t *Twinkle) Brightness(star int, seconds float64) float32 {
	v := t.noise.Noise2D(float64(star)*twinkleStarSpacing, seconds*twinkleTimeScale)
	b := 1 - twinkleDepth/2 + twinkleDepth*float32(v)
	return math32.Max(0, math32.Min(1, b))
}

// Apply steps the size and writes every star's brightness into cloud.
func (t *Twinkle) Apply(cloud *renderer.PointCloud, seconds float64) {
	cloud.Size = t.Step()
	for i := 0; i < cloud.Count(); i++ {
		cloud.SetBrightness(i, t.Brightness(i, seconds))
	}
}
