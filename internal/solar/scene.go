package solar

import (
	"context"
	"fmt"
	"image"

	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/config"
	"SolarSystem/internal/loader"
	"SolarSystem/internal/logger"
	"SolarSystem/internal/procedural"
	"SolarSystem/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

// Starting positions before the first orbit update, 1 unit = 1000 km.
const (
	initialMoonX  = 5.384
	initialDysonX = 5.45

	sunSegments  = 64
	bodySegments = 32

	// Standalone dyson view
	standaloneRadius  = 5
	standaloneCameraZ = 10

	wireframeScale = 1.002
)

var (
	sunEmissive       = procedural.HexColor(0xffaa00)
	ambientColor      = procedural.HexColor(0x404040)
	standaloneColor   = procedural.HexColor(0xffff00)
	sunLightIntensity = float32(5)
)

// Scene is everything the viewer draws and animates. Scripts keep pointers
// into Settings so ApplySettings changes take effect on the next frame.
type Scene struct {
	Settings config.Settings
	Camera   *renderer.Camera
	Controls *renderer.OrbitControls
	Lights   *renderer.Lights

	Sun            *behaviour.GameObject
	Earth          *behaviour.GameObject
	Moon           *behaviour.GameObject
	Dyson          *behaviour.GameObject
	DysonWireframe *behaviour.GameObject // nil unless dyson.wireframe is set
	Stars          *behaviour.GameObject
	SunLight       *behaviour.GameObject

	// Standalone is the single spinning dyson sphere view.
	Standalone bool

	Objects   []*behaviour.GameObject
	fallbacks map[*renderer.Model]*image.RGBA
}

func newScene(s config.Settings, width, height int32, cameraPosition mgl32.Vec3) *Scene {
	camera := renderer.NewCamera(s.Camera.FOV, s.Camera.Near, s.Camera.Far, width, height, cameraPosition, mgl32.Vec3{})
	return &Scene{
		Settings:  s,
		Camera:    camera,
		Controls:  renderer.NewOrbitControls(camera, mgl32.Vec3{}, s.Camera.Damping),
		Lights:    &renderer.Lights{Ambient: vec3(ambientColor)},
		fallbacks: make(map[*renderer.Model]*image.RGBA),
	}
}

// BuildScene assembles the sun, earth, moon, dyson sphere, lights and stars.
// Bodies whose texture file is missing get a baked stand-in.
func BuildScene(ctx context.Context, s config.Settings, width, height int32) (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	scene := newScene(s, width, height, mgl32.Vec3(s.Camera.Position))
	b := s.Bodies

	sunPosition := mgl32.Vec3{-b.SunDistanceFromEarth, 0, 0}
	sun, sunModel, err := scene.addBody(ctx, "Sun", behaviour.BodySun, b.SunRadius, sunSegments, s.Textures.Sun)
	if err != nil {
		return nil, err
	}
	sunModel.SetPosition(sunPosition[0], sunPosition[1], sunPosition[2])
	sunModel.SetEmissive(float32(sunEmissive.R), float32(sunEmissive.G), float32(sunEmissive.B), 2)
	sunModel.SetMaterialPBR(0.5, 0.5)
	scene.Sun = sun

	white := mgl32.Vec3{1, 1, 1}
	point := renderer.CreatePointLight(sunPosition, white, sunLightIntensity, 0)
	directional := renderer.CreateDirectionalLight(sunPosition, mgl32.Vec3{}, white, sunLightIntensity)
	directional.CastShadow = true
	directional.ShadowMapSize = 1024
	directional.ShadowNear = 0.1
	directional.ShadowFar = 500
	scene.SunLight = behaviour.NewGameObject("SunLight")
	scene.SunLight.Transform.SetPosition(sunPosition)
	scene.SunLight.AddComponent(behaviour.NewLightComponent(point))
	scene.SunLight.AddComponent(behaviour.NewLightComponent(directional))
	scene.Objects = append(scene.Objects, scene.SunLight)
	scene.Lights.Sources = append(scene.Lights.Sources, point, directional)

	dyson, err := scene.addDyson("Dyson", b.DysonRadius)
	if err != nil {
		return nil, err
	}
	scene.Dyson = dyson
	if s.Dyson.Wireframe {
		c := s.Dyson.WireframeColor.Color()
		scene.DysonWireframe, err = scene.addWireframe("DysonWireframe", b.DysonRadius, c.R, c.G, c.B)
		if err != nil {
			return nil, err
		}
		ModelOf(scene.DysonWireframe).SetScale(wireframeScale, wireframeScale, wireframeScale)
	}
	for _, obj := range []*behaviour.GameObject{scene.Dyson, scene.DysonWireframe} {
		if obj != nil {
			ModelOf(obj).SetPosition(initialDysonX, 0, 0)
		}
	}

	moon, moonModel, err := scene.addBody(ctx, "Moon", behaviour.BodyMoon, b.MoonRadius, bodySegments, s.Textures.Moon)
	if err != nil {
		return nil, err
	}
	moonModel.SetPosition(initialMoonX, 0, 0)
	scene.Moon = moon

	earth, _, err := scene.addBody(ctx, "Earth", behaviour.BodyEarth, b.EarthRadius, bodySegments, s.Textures.Earth)
	if err != nil {
		return nil, err
	}
	scene.Earth = earth

	cloud := NewStarfield(s.Starfield)
	scene.Stars = behaviour.NewGameObject("Stars")
	scene.Stars.AddComponent(behaviour.NewStarfieldComponent(cloud, cloud.Count()))
	scene.Objects = append(scene.Objects, scene.Stars)

	logger.Log.Info("Scene built",
		zap.Int("objects", len(scene.Objects)),
		zap.Int("stars", cloud.Count()),
		zap.Int("fallbackTextures", len(scene.fallbacks)))
	return scene, nil
}

// BuildDysonScene assembles the standalone view: one yellow wireframe sphere
// in front of the camera.
func BuildDysonScene(s config.Settings, width, height int32) (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	scene := newScene(s, width, height, mgl32.Vec3{0, 0, standaloneCameraZ})
	scene.Standalone = true

	dyson, err := scene.addWireframe("Dyson", standaloneRadius, standaloneColor.R, standaloneColor.G, standaloneColor.B)
	if err != nil {
		return nil, err
	}
	scene.Dyson = dyson
	return scene, nil
}

func (s *Scene) addBody(ctx context.Context, name string, kind behaviour.BodyKind, radius float32, segments int, texture string) (*behaviour.GameObject, *renderer.Model, error) {
	m, err := loader.LoadSphere(name, radius, segments, segments)
	if err != nil {
		return nil, nil, err
	}
	m.SetDiffuseColor(1, 1, 1)

	img, err := textureOrFallback(ctx, kind, texture, s.Settings.Textures.FallbackWidth, s.Settings.Textures.FallbackHeight)
	if err != nil {
		return nil, nil, err
	}
	if img != nil {
		s.fallbacks[m] = img
	} else {
		m.SetTexture(texture)
	}

	body := behaviour.NewBodyComponent(kind, radius)
	body.TexturePath = texture
	obj := s.addObject(name, m, body)
	return obj, m, nil
}

func (s *Scene) addDyson(name string, radius float32) (*behaviour.GameObject, error) {
	m, err := loader.LoadSphere(name, radius, bodySegments, bodySegments)
	if err != nil {
		return nil, err
	}
	m.Shader = renderer.InitDysonShader()
	renderer.ApplyNoiseParams(m, s.Settings.Dyson.Params())
	return s.addObject(name, m, behaviour.NewBodyComponent(behaviour.BodyDyson, radius)), nil
}

func (s *Scene) addWireframe(name string, radius float32, r, g, b float64) (*behaviour.GameObject, error) {
	m, err := loader.LoadSphere(name, radius, bodySegments, bodySegments)
	if err != nil {
		return nil, err
	}
	m.SetWireframe(float32(r), float32(g), float32(b))
	return s.addObject(name, m, behaviour.NewBodyComponent(behaviour.BodyDyson, radius)), nil
}

func (s *Scene) addObject(name string, m *renderer.Model, body *behaviour.BodyComponent) *behaviour.GameObject {
	obj := behaviour.NewGameObject(name)
	obj.Tag = string(body.Kind)
	obj.AddComponent(behaviour.NewMeshComponent(m))
	obj.AddComponent(body)
	s.Objects = append(s.Objects, obj)
	return obj
}

// Models returns the models of every object in the scene.
func (s *Scene) Models() []*renderer.Model {
	var models []*renderer.Model
	for _, obj := range s.Objects {
		if m := ModelOf(obj); m != nil {
			models = append(models, m)
		}
	}
	return models
}

// PointCloud returns the starfield, or nil in the standalone view.
func (s *Scene) PointCloud() *renderer.PointCloud {
	if s.Stars == nil {
		return nil
	}
	if c, ok := s.Stars.GetComponent("StarfieldComponent").(*behaviour.StarfieldComponent); ok {
		cloud, _ := c.Cloud.(*renderer.PointCloud)
		return cloud
	}
	return nil
}

// Attach uploads baked textures and hands every model and the starfield to r.
func (s *Scene) Attach(r renderer.Render) error {
	for _, m := range s.Models() {
		if img, ok := s.fallbacks[m]; ok {
			id, err := r.CreateTextureFromImage(img, m.Name+"-fallback")
			if err != nil {
				return fmt.Errorf("upload fallback texture for %s: %w", m.Name, err)
			}
			m.Material.TextureID = id
		}
		r.AddModel(m)
	}
	if cloud := s.PointCloud(); cloud != nil {
		r.AddPointCloud(cloud)
	}
	return nil
}

// Register adds every object to cm. Scripts must be attached first so they
// receive Start.
func (s *Scene) Register(cm *behaviour.ComponentManager) {
	for _, obj := range s.Objects {
		cm.RegisterGameObject(obj)
	}
}

// ApplySettings takes over motion, orbit distances and dyson noise from next.
// Radii and texture changes need a restart.
func (s *Scene) ApplySettings(next config.Settings) {
	if next.Bodies.SunRadius != s.Settings.Bodies.SunRadius ||
		next.Bodies.EarthRadius != s.Settings.Bodies.EarthRadius ||
		next.Bodies.MoonRadius != s.Settings.Bodies.MoonRadius ||
		next.Bodies.DysonRadius != s.Settings.Bodies.DysonRadius {
		logger.Log.Warn("Body radius changes apply on restart")
	}
	s.Settings.Motion = next.Motion
	s.Settings.Bodies.MoonDistanceFromEarth = next.Bodies.MoonDistanceFromEarth
	s.Settings.Bodies.DysonDistanceFromEarth = next.Bodies.DysonDistanceFromEarth
	s.Settings.Dyson = next.Dyson

	if !s.Standalone && s.Dyson != nil {
		renderer.ApplyNoiseParams(ModelOf(s.Dyson), s.Settings.Dyson.Params())
	}
	if s.DysonWireframe != nil {
		c := s.Settings.Dyson.WireframeColor.Color()
		ModelOf(s.DysonWireframe).SetWireframe(float32(c.R), float32(c.G), float32(c.B))
	}
	logger.Log.Info("Settings applied",
		zap.Float64("dysonScale", s.Settings.Dyson.Scale),
		zap.Int("dysonComplexity", s.Settings.Dyson.Complexity))
}

// ModelOf returns the renderer model bound to obj.
func ModelOf(obj *behaviour.GameObject) *renderer.Model {
	if obj == nil {
		return nil
	}
	m, _ := obj.GetModel().(*renderer.Model)
	return m
}

func vec3(c colorful.Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}
