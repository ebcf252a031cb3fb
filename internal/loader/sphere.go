package loader

import (
	"fmt"

	"SolarSystem/internal/procedural"
	"SolarSystem/internal/renderer"
)

// SphereGeometry holds interleaved vertex data (position, uv, normal) and
// triangle indices.
type SphereGeometry struct {
	InterleavedData []float32
	Indices         []int32
	Name            string
}

// CreateSphereGeometry builds a UV sphere. Vertices follow
// procedural.SpherePoint, so a texture baked by procedural.Bake maps onto the
// sphere without distortion: u runs around the equator and v from the north
// pole (0) to the south pole (1).
func CreateSphereGeometry(radius float32, widthSegments, heightSegments int) (*SphereGeometry, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %v", radius)
	}
	if widthSegments < 3 || heightSegments < 2 {
		return nil, fmt.Errorf("sphere needs at least 3x2 segments, got %dx%d", widthSegments, heightSegments)
	}

	rowLength := widthSegments + 1
	interleavedData := make([]float32, 0, rowLength*(heightSegments+1)*8)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)

			p := procedural.SpherePoint(u, v, float64(radius))
			n := procedural.SpherePoint(u, v, 1)

			interleavedData = append(interleavedData,
				float32(p[0]), float32(p[1]), float32(p[2]),
				float32(u), float32(v),
				float32(n[0]), float32(n[1]), float32(n[2]),
			)
		}
	}

	indices := make([]int32, 0, widthSegments*heightSegments*6)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := int32(iy*rowLength + ix + 1)
			b := int32(iy*rowLength + ix)
			c := int32((iy+1)*rowLength + ix)
			d := int32((iy+1)*rowLength + ix + 1)

			// The pole rows collapse to a point, skip their degenerate halves
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return &SphereGeometry{
		InterleavedData: interleavedData,
		Indices:         indices,
		Name:            "Sphere",
	}, nil
}

// LoadSphere creates a sphere model ready to be added to a renderer.
func LoadSphere(name string, radius float32, widthSegments, heightSegments int) (*renderer.Model, error) {
	geometry, err := CreateSphereGeometry(radius, widthSegments, heightSegments)
	if err != nil {
		return nil, fmt.Errorf("load sphere %s: %w", name, err)
	}
	return renderer.NewModel(name, geometry.InterleavedData, geometry.Indices), nil
}
