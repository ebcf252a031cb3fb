package scripts

import (
	"fmt"

	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/solar"
)

// AttachSolarSystem gives every object of scene its per frame scripts. Call it
// before the scene is registered so the scripts receive Start.
func AttachSolarSystem(scene *solar.Scene) error {
	if scene.Standalone {
		return spin(scene, scene.Dyson, solar.SpinTumble)
	}

	spins := []struct {
		obj  *behaviour.GameObject
		mode solar.SpinMode
	}{
		{scene.Sun, solar.SpinSun},
		{scene.Earth, solar.SpinEarth},
		{scene.Moon, solar.SpinMoon},
		{scene.Dyson, solar.SpinDyson},
		{scene.DysonWireframe, solar.SpinDyson},
	}
	for _, s := range spins {
		if err := spin(scene, s.obj, s.mode); err != nil {
			return err
		}
	}

	orbits := []struct {
		obj  *behaviour.GameObject
		kind behaviour.BodyKind
	}{
		{scene.Moon, behaviour.BodyMoon},
		{scene.Dyson, behaviour.BodyDyson},
		{scene.DysonWireframe, behaviour.BodyDyson},
	}
	for _, o := range orbits {
		if err := orbit(scene, o.obj, o.kind); err != nil {
			return err
		}
	}

	if scene.Stars != nil && scene.Settings.Starfield.Twinkle {
		_, err := behaviour.AttachScript(scene.Stars, "TwinkleScript", func(c behaviour.Component) {
			c.(*TwinkleScript).Seed = scene.Settings.Starfield.Seed
		})
		if err != nil {
			return fmt.Errorf("attach twinkle: %w", err)
		}
	}
	return nil
}

func spin(scene *solar.Scene, obj *behaviour.GameObject, mode solar.SpinMode) error {
	if obj == nil {
		return nil
	}
	_, err := behaviour.AttachScript(obj, "SpinScript", func(c behaviour.Component) {
		s := c.(*SpinScript)
		s.Mode = mode
		s.Motion = &scene.Settings.Motion
	})
	if err != nil {
		return fmt.Errorf("attach spin to %s: %w", obj.Name, err)
	}
	return nil
}

func orbit(scene *solar.Scene, obj *behaviour.GameObject, kind behaviour.BodyKind) error {
	if obj == nil {
		return nil
	}
	_, err := behaviour.AttachScript(obj, "OrbitScript", func(c behaviour.Component) {
		o := c.(*OrbitScript)
		o.Center = scene.Earth
		o.Kind = kind
		o.Bodies = &scene.Settings.Bodies
		o.Motion = &scene.Settings.Motion
	})
	if err != nil {
		return fmt.Errorf("attach orbit to %s: %w", obj.Name, err)
	}
	return nil
}
