package scripts

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/config"
	"SolarSystem/internal/renderer"
	"SolarSystem/internal/solar"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFrame(t *testing.T, now time.Time) {
	t.Helper()
	behaviour.Time = behaviour.FrameTime{}
	behaviour.GlobalBehaviourManager.Advance(now)
	t.Cleanup(func() { behaviour.Time = behaviour.FrameTime{} })
}

func TestScriptsRegistered(t *testing.T) {
	names := behaviour.GetAvailableScripts()
	assert.Contains(t, names, "OrbitScript")
	assert.Contains(t, names, "SpinScript")
	assert.Contains(t, names, "TwinkleScript")
}

func TestOrbitScriptFollowsCenter(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	setFrame(t, now)

	bodies := config.Default().Bodies
	motion := config.Default().Motion
	earth := behaviour.NewGameObject("Earth")
	earth.Transform.SetPosition(mgl32.Vec3{2, 0, -1})

	for _, kind := range []behaviour.BodyKind{behaviour.BodyMoon, behaviour.BodyDyson} {
		obj := behaviour.NewGameObject(string(kind))
		obj.Transform.SetPosition(mgl32.Vec3{0, 0.5, 0})
		obj.AddComponent(&OrbitScript{Center: earth, Kind: kind, Bodies: &bodies, Motion: &motion})

		obj.Components[0].Update()

		angle := solar.OrbitAngle(now, motion.OrbitSpeed)
		want := solar.MoonPosition(earth.Transform.Position, mgl32.Vec3{0, 0.5, 0}, bodies, angle)
		if kind == behaviour.BodyDyson {
			want = solar.DysonPosition(earth.Transform.Position, mgl32.Vec3{0, 0.5, 0}, bodies, angle)
		}
		assert.Equal(t, want, obj.Transform.Position, string(kind))
	}
}

func TestOrbitScriptWaitsForClock(t *testing.T) {
	behaviour.Time = behaviour.FrameTime{}
	bodies := config.Default().Bodies
	motion := config.Default().Motion

	obj := behaviour.NewGameObject("Moon")
	obj.AddComponent(&OrbitScript{Center: behaviour.NewGameObject("Earth"), Bodies: &bodies, Motion: &motion})
	obj.Components[0].Update()

	assert.Equal(t, mgl32.Vec3{}, obj.Transform.Position)
}

func TestSpinScriptAccumulates(t *testing.T) {
	motion := config.Default().Motion
	obj := behaviour.NewGameObject("Dyson")
	script := &SpinScript{Mode: solar.SpinDyson, Motion: &motion}
	obj.AddComponent(script)

	for i := 0; i < 3; i++ {
		script.Update()
	}

	s := motion.RotationSpeed
	assert.InDelta(t, 3*s, script.Angles.X, 1e-7)
	assert.InDelta(t, 0, script.Angles.Y, 1e-7)
	assert.True(t, obj.Transform.Rotation.ApproxEqual(script.Angles.Quat()))
}

func TestSpinScriptSeesMotionChanges(t *testing.T) {
	motion := config.Default().Motion
	obj := behaviour.NewGameObject("Sun")
	script := &SpinScript{Mode: solar.SpinSun, Motion: &motion}
	obj.AddComponent(script)

	motion.RotationSpeed = 0.25
	script.Update()

	assert.Equal(t, float32(0.25), script.Angles.Y)
}

func TestTwinkleScript(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	setFrame(t, start)

	cloud := renderer.NewPointCloud("Stars", make([]float32, 30), make([]float32, 30), 0.05)
	stars := behaviour.NewGameObject("Stars")
	stars.AddComponent(behaviour.NewStarfieldComponent(cloud, cloud.Count()))
	_, err := behaviour.AttachScript(stars, "TwinkleScript", nil)
	require.NoError(t, err)

	cm := behaviour.NewComponentManager()
	cm.RegisterGameObject(stars)
	cm.UpdateAll()

	assert.InDelta(t, 0.051, cloud.Size, 1e-6)

	behaviour.GlobalBehaviourManager.Advance(start.Add(2 * time.Second))
	cm.UpdateAll()

	assert.InDelta(t, 0.050, cloud.Size, 1e-6)
	twinkle := solar.NewTwinkle(0.05, 1)
	for i := 0; i < cloud.Count(); i++ {
		assert.Equal(t, twinkle.Brightness(i, 2), cloud.Brightness[i])
	}
}

func TestTwinkleScriptWithoutStarfield(t *testing.T) {
	obj := behaviour.NewGameObject("Empty")
	script := &TwinkleScript{}
	obj.AddComponent(script)

	script.Start()
	script.Update()

	assert.Nil(t, script.Twinkle)
}

func buildScene(t *testing.T, wireframe bool) *solar.Scene {
	t.Helper()
	dir := t.TempDir()
	s := config.Default()
	s.Textures.Sun = filepath.Join(dir, "sun.jpg")
	s.Textures.Moon = filepath.Join(dir, "moon.jpg")
	s.Textures.Earth = filepath.Join(dir, "earth.jpg")
	s.Textures.FallbackWidth = 8
	s.Textures.FallbackHeight = 4
	s.Starfield.Count = 20
	s.Dyson.Wireframe = wireframe

	scene, err := solar.BuildScene(context.Background(), s, 640, 480)
	require.NoError(t, err)
	return scene
}

func TestAttachSolarSystem(t *testing.T) {
	scene := buildScene(t, true)
	require.NoError(t, AttachSolarSystem(scene))

	counts := map[*behaviour.GameObject]int{
		scene.Sun:            1,
		scene.Earth:          1,
		scene.Moon:           2,
		scene.Dyson:          2,
		scene.DysonWireframe: 2,
		scene.Stars:          1,
	}
	for obj, want := range counts {
		assert.Len(t, obj.GetComponents(behaviour.ComponentTypeScript), want, obj.Name)
	}
	assert.Empty(t, scene.SunLight.GetComponents(behaviour.ComponentTypeScript))
}

func TestAttachSolarSystemMovesBodies(t *testing.T) {
	scene := buildScene(t, false)
	require.NoError(t, AttachSolarSystem(scene))

	cm := behaviour.NewComponentManager()
	scene.Register(cm)
	setFrame(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	cm.UpdateAll()

	moon := solar.ModelOf(scene.Moon)
	dyson := solar.ModelOf(scene.Dyson)
	assert.InDelta(t, 5+3.84, moon.Position.Len(), 1e-4)
	assert.InDelta(t, 5+4.5, dyson.Position.Len(), 1e-4)
	assert.InDelta(t, -1, moon.Position.Normalize().Dot(dyson.Position.Normalize()), 1e-5)
	assert.False(t, solar.ModelOf(scene.Sun).Rotation.ApproxEqual(mgl32.QuatIdent()))
	assert.InDelta(t, 0.051, scene.PointCloud().Size, 1e-6)
}

func TestAttachStandalone(t *testing.T) {
	scene, err := solar.BuildDysonScene(config.Default(), 640, 480)
	require.NoError(t, err)
	require.NoError(t, AttachSolarSystem(scene))

	scripts := scene.Dyson.GetComponents(behaviour.ComponentTypeScript)
	require.Len(t, scripts, 1)
	spin := scripts[0].(*behaviour.ScriptComponent).Script.(*SpinScript)
	assert.Equal(t, solar.SpinTumble, spin.Mode)
}
