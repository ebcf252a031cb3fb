package renderer

import (
	"SolarSystem/internal/procedural"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// ApplyNoiseParams sets the custom uniforms read by the dyson shader.
func ApplyNoiseParams(m *Model, p procedural.Params) {
	m.SetUniform("noiseScale", float32(p.Scale))
	m.SetUniform("noiseComplexity", int32(p.Complexity))
	m.SetUniform("noiseColor", colorVec(p.Color))
	m.SetUniform("noiseBackground", colorVec(p.Background))
	m.SetUniform("noiseSeed", mgl32.Vec3{float32(p.Seed[0]), float32(p.Seed[1]), float32(p.Seed[2])})
}

func colorVec(c colorful.Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}
