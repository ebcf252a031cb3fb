package config

import (
	"errors"
	"fmt"
	"os"

	"SolarSystem/internal/procedural"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidSettings is wrapped by every error Validate returns.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the full configuration of the viewer and the bake command.
// Distances use 1 unit = 1000 km.
type Settings struct {
	Window    WindowSettings         `toml:"window"`
	Camera    CameraSettings         `toml:"camera"`
	Bodies    BodySettings           `toml:"bodies"`
	Motion    MotionSettings         `toml:"motion"`
	Dyson     DysonSettings          `toml:"dyson"`
	Starfield StarfieldSettings      `toml:"starfield"`
	Textures  TextureSettings        `toml:"textures"`
	Bake      procedural.BakeOptions `toml:"bake"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type CameraSettings struct {
	FOV      float32    `toml:"fov"` // Degrees
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	Position [3]float32 `toml:"position"`
	Damping  float32    `toml:"damping"` // Orbit controls inertia, 0 disables it
}

type BodySettings struct {
	SunRadius              float32 `toml:"sun_radius"`
	EarthRadius            float32 `toml:"earth_radius"`
	MoonRadius             float32 `toml:"moon_radius"`
	DysonRadius            float32 `toml:"dyson_radius"`
	MoonDistanceFromEarth  float32 `toml:"moon_distance_from_earth"`
	DysonDistanceFromEarth float32 `toml:"dyson_distance_from_earth"`
	SunDistanceFromEarth   float32 `toml:"sun_distance_from_earth"`
}

type MotionSettings struct {
	OrbitSpeed         float32 `toml:"orbit_speed"`    // Radians per millisecond of wall clock
	RotationSpeed      float32 `toml:"rotation_speed"` // Radians per frame
	EarthRotationSpeed float32 `toml:"earth_rotation_speed"`
}

// DysonSettings holds the noise parameters of the dyson sphere shader.
type DysonSettings struct {
	Scale          float64    `toml:"scale"`
	Complexity     int        `toml:"complexity"`
	Variation      float64    `toml:"variation"`
	Color          HexColor   `toml:"color"`
	Background     HexColor   `toml:"background"`
	Seed           [3]float64 `toml:"seed"`
	Wireframe      bool       `toml:"wireframe"`
	WireframeColor HexColor   `toml:"wireframe_color"`
}

type StarfieldSettings struct {
	Count   int     `toml:"count"`
	Radius  float32 `toml:"radius"`
	Size    float32 `toml:"size"`
	Seed    int64   `toml:"seed"`
	Twinkle bool    `toml:"twinkle"`
}

// TextureSettings points at the body textures. A missing file is replaced by
// a baked texture of FallbackWidth x FallbackHeight.
type TextureSettings struct {
	Sun            string `toml:"sun"`
	Moon           string `toml:"moon"`
	Earth          string `toml:"earth"`
	FallbackWidth  int    `toml:"fallback_width"`
	FallbackHeight int    `toml:"fallback_height"`
}

// Default returns the settings the viewer runs with when no file is given.
func Default() Settings {
	params := procedural.DefaultParams()
	return Settings{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "Solar System",
			VSync:  true,
		},
		Camera: CameraSettings{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{32, 6, 16},
			Damping:  0.05,
		},
		Bodies: BodySettings{
			SunRadius:              20,
			EarthRadius:            5,
			MoonRadius:             1,
			DysonRadius:            0.75,
			MoonDistanceFromEarth:  3.84,
			DysonDistanceFromEarth: 4.5,
			SunDistanceFromEarth:   149.6,
		},
		Motion: MotionSettings{
			OrbitSpeed:         0.00005,
			RotationSpeed:      0.0005,
			EarthRotationSpeed: 0.00025,
		},
		Dyson: DysonSettings{
			Scale:          params.Scale,
			Complexity:     params.Complexity,
			Variation:      params.Variation,
			Color:          HexColor(params.Color),
			Background:     HexColor(params.Background),
			Wireframe:      false,
			WireframeColor: HexColor(procedural.HexColor(0x3e5879)),
		},
		Starfield: StarfieldSettings{
			Count:   10000,
			Radius:  1000,
			Size:    0.05,
			Seed:    1,
			Twinkle: true,
		},
		Textures: TextureSettings{
			Sun:            "textures/sun.jpg",
			Moon:           "textures/moon.jpg",
			Earth:          "textures/earth_night.jpg",
			FallbackWidth:  512,
			FallbackHeight: 256,
		},
		Bake: procedural.DefaultBakeOptions(),
	}
}

// Params converts the dyson section into noise parameters.
func (d DysonSettings) Params() procedural.Params {
	return procedural.Params{
		Scale:      d.Scale,
		Complexity: d.Complexity,
		Variation:  d.Variation,
		Color:      d.Color.Color(),
		Background: d.Background.Color(),
		Seed:       mgl64.Vec3(d.Seed),
	}
}

// Validate reports the first setting the viewer cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	case s.Camera.FOV <= 0 || s.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v", ErrInvalidSettings, s.Camera.FOV)
	case s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near:
		return fmt.Errorf("%w: camera clip planes %v..%v", ErrInvalidSettings, s.Camera.Near, s.Camera.Far)
	case s.Bodies.SunRadius <= 0, s.Bodies.EarthRadius <= 0, s.Bodies.MoonRadius <= 0, s.Bodies.DysonRadius <= 0:
		return fmt.Errorf("%w: body radii must be positive", ErrInvalidSettings)
	case s.Bodies.MoonDistanceFromEarth < 0, s.Bodies.DysonDistanceFromEarth < 0, s.Bodies.SunDistanceFromEarth < 0:
		return fmt.Errorf("%w: distances must not be negative", ErrInvalidSettings)
	case s.Dyson.Complexity < 0:
		return fmt.Errorf("%w: dyson complexity %d", ErrInvalidSettings, s.Dyson.Complexity)
	case s.Starfield.Count <= 0:
		return fmt.Errorf("%w: starfield needs at least one star", ErrInvalidSettings)
	case s.Starfield.Radius <= 0 || s.Starfield.Size <= 0:
		return fmt.Errorf("%w: starfield radius and size must be positive", ErrInvalidSettings)
	case s.Textures.FallbackWidth <= 0 || s.Textures.FallbackHeight <= 0:
		return fmt.Errorf("%w: fallback texture size %dx%d", ErrInvalidSettings, s.Textures.FallbackWidth, s.Textures.FallbackHeight)
	}
	return nil
}

// Load reads a TOML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes s as TOML.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// HexColor is a color stored as "#rrggbb" in settings files.
type HexColor colorful.Color

func (c HexColor) Color() colorful.Color {
	return colorful.Color(c)
}

func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(colorful.Color(c).Clamped().Hex()), nil
}

func (c *HexColor) UnmarshalText(text []byte) error {
	parsed, err := colorful.Hex(string(text))
	if err != nil {
		return fmt.Errorf("color %q: %w", text, err)
	}
	*c = HexColor(parsed)
	return nil
}
