package renderer

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var FrustumCullingEnabled bool = true
var FaceCullingEnabled bool = true
var Debug bool = false
var DepthTestEnabled bool = true
var ClearColor = mgl32.Vec3{0, 0, 0}

// MaxLights is the size of the light array in the lit shader.
const MaxLights = 4

// Lights is everything that illuminates a frame.
type Lights struct {
	Ambient mgl32.Vec3 // Added to every lit fragment
	Sources []*Light   // Only the first MaxLights are used
}

type Render interface {
	Init(width, height int32, window *glfw.Window) error
	Render(camera Camera, lights *Lights)
	AddModel(model *Model)
	RemoveModel(model *Model)
	AddPointCloud(cloud *PointCloud)
	LoadTexture(path string) (uint32, error)
	CreateTextureFromImage(img image.Image, name string) (uint32, error)
	UpdateViewport(width, height int32)
	Cleanup()
}
