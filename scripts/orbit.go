package scripts

import (
	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/config"
	"SolarSystem/internal/solar"
)

// OrbitScript moves its GameObject around Center on the wall clock. Moons
// lead, dyson spheres trail on the opposite side.
type OrbitScript struct {
	behaviour.BaseComponent
	Center *behaviour.GameObject
	Kind   behaviour.BodyKind
	Bodies *config.BodySettings
	Motion *config.MotionSettings
}

func init() {
	behaviour.RegisterScript("OrbitScript", func() behaviour.Component {
		defaults := config.Default()
		return &OrbitScript{Kind: behaviour.BodyMoon, Bodies: &defaults.Bodies, Motion: &defaults.Motion}
	})
}

func (o *OrbitScript) Update() {
	if o.Center == nil || behaviour.Time.Now.IsZero() {
		return
	}

	angle := solar.OrbitAngle(behaviour.Time.Now, o.Motion.OrbitSpeed)
	center := o.Center.Transform.Position
	transform := o.GetGameObject().Transform

	if o.Kind == behaviour.BodyDyson {
		transform.SetPosition(solar.DysonPosition(center, transform.Position, *o.Bodies, angle))
	} else {
		transform.SetPosition(solar.MoonPosition(center, transform.Position, *o.Bodies, angle))
	}
}
