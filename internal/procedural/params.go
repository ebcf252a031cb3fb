package procedural

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Params controls the dyson sphere pattern. Colors are normalized to 0..1.
type Params struct {
	Scale      float64        // Logarithmic frequency control, expected in [-10, 10]
	Complexity int            // Extra octaves on top of the fixed four
	Variation  float64        // Accepted for parity with other patterns, unused
	Color      colorful.Color // Pattern color
	Background colorful.Color // Color where the noise is low
	Seed       mgl64.Vec3     // Offset folded into noise space
}

// DefaultParams returns scale 2, complexity 2, color #c0d0ff on black.
func DefaultParams() Params {
	return Params{
		Scale:      2,
		Complexity: 2,
		Variation:  0,
		Color:      HexColor(0xc0d0ff),
		Background: HexColor(0x000000),
		Seed:       mgl64.Vec3{0, 0, 0},
	}
}

// Frequency is the multiplier applied to object-space positions.
func (p Params) Frequency() float64 {
	return math.Exp(p.Scale/2 + 0.5)
}

// NoiseSpace maps an object-space position to the point where the first
// octave is sampled.
func (p Params) NoiseSpace(position mgl64.Vec3) mgl64.Vec3 {
	return position.Mul(p.Frequency()).Add(p.Seed)
}

// HexColor converts a 0xRRGGBB value to a normalized color.
func HexColor(v uint32) colorful.Color {
	return colorful.Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}
