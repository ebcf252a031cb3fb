package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightMode string

const (
	PointLight       LightMode = "point"
	DirectionalLight LightMode = "directional"
)

type Light struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3 // Direction the light travels, directional lights only
	Color     mgl32.Vec3
	Intensity float32
	Mode      LightMode

	// Attenuation factors, point lights only
	ConstantAtten  float32
	LinearAtten    float32
	QuadraticAtten float32

	// Shadow settings are kept on the light for scene descriptions; the
	// renderer does not draw shadow maps.
	CastShadow    bool
	ShadowMapSize int32
	ShadowNear    float32
	ShadowFar     float32
}

func CreateLight() *Light {
	return &Light{
		Position:       mgl32.Vec3{0, 0, 0},
		Direction:      mgl32.Vec3{0, -1, 0},
		Color:          mgl32.Vec3{1, 1, 1},
		Intensity:      1,
		Mode:           PointLight,
		ConstantAtten:  1,
		LinearAtten:    0,
		QuadraticAtten: 0,
	}
}

// CreatePointLight creates a point light. A range of zero or less disables
// distance attenuation.
func CreatePointLight(position mgl32.Vec3, color mgl32.Vec3, intensity float32, range_ float32) *Light {
	light := CreateLight()
	light.Mode = PointLight
	light.Position = position
	light.Color = color
	light.Intensity = intensity

	if range_ > 0 {
		light.LinearAtten = 2.0 / range_
		light.QuadraticAtten = 1.0 / (range_ * range_)
	}
	return light
}

// CreateDirectionalLight creates a light shining from position toward target.
func CreateDirectionalLight(position, target mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	light := CreateLight()
	light.Mode = DirectionalLight
	light.Position = position
	light.Direction = target.Sub(position).Normalize()
	light.Color = color
	light.Intensity = intensity
	return light
}

// Attenuation returns the intensity multiplier at distance d.
func (l *Light) Attenuation(d float32) float32 {
	if l.Mode == DirectionalLight {
		return 1
	}
	return 1.0 / (l.ConstantAtten + l.LinearAtten*d + l.QuadraticAtten*d*d)
}
