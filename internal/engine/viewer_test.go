package engine

import (
	"context"
	"image"
	"testing"
	"time"

	"SolarSystem/internal/config"
	"SolarSystem/internal/renderer"
	"SolarSystem/internal/solar"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullRenderer struct {
	models   int
	clouds   int
	viewport [2]int32
}

func (r *nullRenderer) Init(width, height int32, window *glfw.Window) error { return nil }
func (r *nullRenderer) Render(camera renderer.Camera, lights *renderer.Lights) {}
func (r *nullRenderer) AddModel(model *renderer.Model)                        { r.models++ }
func (r *nullRenderer) RemoveModel(model *renderer.Model)                     {}
func (r *nullRenderer) AddPointCloud(cloud *renderer.PointCloud)              { r.clouds++ }
func (r *nullRenderer) LoadTexture(path string) (uint32, error)               { return 1, nil }
func (r *nullRenderer) UpdateViewport(width, height int32)                    { r.viewport = [2]int32{width, height} }
func (r *nullRenderer) Cleanup()                                              {}

func (r *nullRenderer) CreateTextureFromImage(img image.Image, name string) (uint32, error) {
	return 1, nil
}

func newTestViewer(t *testing.T) (*Viewer, *nullRenderer) {
	t.Helper()
	v := NewViewer(config.Default())
	v.DysonOnly = true
	r := &nullRenderer{}
	v.rendererAPI = r
	require.NoError(t, v.load(context.Background()))
	return v, r
}

func TestNewViewerUsesWindowSettings(t *testing.T) {
	s := config.Default()
	s.Window.Width = 640
	s.Window.Height = 360
	v := NewViewer(s)

	assert.Equal(t, int32(640), v.Width)
	assert.Equal(t, int32(360), v.Height)
}

func TestLoadDysonOnly(t *testing.T) {
	v, r := newTestViewer(t)

	assert.True(t, v.scene.Standalone)
	assert.Equal(t, 1, r.models)
	assert.Equal(t, 0, r.clouds)
}

func TestStepSpinsScene(t *testing.T) {
	v, _ := newTestViewer(t)
	dyson := solar.ModelOf(v.scene.Dyson)

	now := time.Now()
	for i := 0; i < 3; i++ {
		v.step(now.Add(time.Duration(i) * 16 * time.Millisecond))
	}

	assert.False(t, dyson.Rotation.ApproxEqual(mgl32.QuatIdent()))
	assert.Equal(t, 1, v.frameTrackId, "fixed update resets the frame counter")
}

func TestOfferKeepsLatest(t *testing.T) {
	v := NewViewer(config.Default())
	first := config.Default()
	first.Motion.OrbitSpeed = 1
	second := config.Default()
	second.Motion.OrbitSpeed = 2

	v.offer(first)
	v.offer(second)

	got := <-v.reloads
	assert.Equal(t, float32(2), got.Motion.OrbitSpeed)
	select {
	case <-v.reloads:
		t.Fatal("only the latest settings should be queued")
	default:
	}
}

func TestDragRotatesControls(t *testing.T) {
	v, _ := newTestViewer(t)

	v.drag(100, 100, true)
	assert.False(t, v.scene.Controls.Moving(), "first press only records the cursor")

	v.drag(120, 90, true)
	assert.True(t, v.scene.Controls.Moving())

	v.drag(200, 200, false)
	assert.False(t, v.dragging)
}

func TestResize(t *testing.T) {
	v, _ := newTestViewer(t)

	v.resize(1000, 500)
	assert.Equal(t, float32(2), v.scene.Camera.AspectRatio)

	v.resize(0, 0)
	assert.Equal(t, int32(1000), v.Width, "minimized windows keep the last size")
}

func TestStepFollowsOrbitControls(t *testing.T) {
	v, _ := newTestViewer(t)
	before := v.scene.Camera.Position

	v.scene.Controls.Rotate(50, 0)
	v.step(time.Now())

	assert.False(t, v.scene.Camera.Position.ApproxEqual(before))
	assert.InDelta(t, v.scene.Controls.Distance, v.scene.Camera.Position.Sub(v.scene.Controls.Target).Len(), 1e-3)
}
