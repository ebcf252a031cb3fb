package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PointCloud is a set of colored points drawn with one shared size, such as a
// starfield. Brightness scales each point's color and may change every frame.
type PointCloud struct {
	Name        string
	Positions   []float32 // xyz per point
	Colors      []float32 // rgb per point
	Brightness  []float32 // One per point, uploaded again when dirty
	Size        float32   // World space size before attenuation
	Opacity     float32
	Transparent bool
	ModelMatrix mgl32.Mat4

	VAO             uint32
	positionVBO     uint32
	colorVBO        uint32
	brightnessVBO   uint32
	brightnessDirty bool
}

// NewPointCloud creates a cloud with full brightness. Positions and colors
// must have the same length.
func NewPointCloud(name string, positions, colors []float32, size float32) *PointCloud {
	brightness := make([]float32, len(positions)/3)
	for i := range brightness {
		brightness[i] = 1
	}
	return &PointCloud{
		Name:        name,
		Positions:   positions,
		Colors:      colors,
		Brightness:  brightness,
		Size:        size,
		Opacity:     1,
		ModelMatrix: mgl32.Ident4(),
	}
}

func (p *PointCloud) Count() int {
	return len(p.Positions) / 3
}

// SetBrightness changes the brightness of point i. Out of range indices are
// ignored.
func (p *PointCloud) SetBrightness(i int, value float32) {
	if i < 0 || i >= len(p.Brightness) {
		return
	}
	if p.Brightness[i] != value {
		p.Brightness[i] = value
		p.brightnessDirty = true
	}
}

// Dirty reports whether brightness changed since the last upload.
func (p *PointCloud) Dirty() bool {
	return p.brightnessDirty
}
