package scripts

import (
	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/config"
	"SolarSystem/internal/solar"
)

// SpinScript turns its GameObject a little every frame.
type SpinScript struct {
	behaviour.BaseComponent
	Mode   solar.SpinMode
	Motion *config.MotionSettings
	Angles solar.Euler
}

func init() {
	behaviour.RegisterScript("SpinScript", func() behaviour.Component {
		motion := config.Default().Motion
		return &SpinScript{Mode: solar.SpinSun, Motion: &motion}
	})
}

func (s *SpinScript) Update() {
	s.Angles = solar.Spin(s.Mode, s.Angles, *s.Motion)
	s.GetGameObject().Transform.SetRotation(s.Angles.Quat())
}
