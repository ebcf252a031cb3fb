package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad returns a unit square in the xy plane as interleaved data.
func quad() ([]float32, []int32) {
	data := []float32{
		-1, -1, 0, 0, 0, 0, 0, 1,
		1, -1, 0, 1, 0, 0, 0, 1,
		1, 1, 0, 1, 1, 0, 0, 1,
		-1, 1, 0, 0, 1, 0, 0, 1,
	}
	return data, []int32{0, 1, 2, 0, 2, 3}
}

func TestNewModel(t *testing.T) {
	data, faces := quad()
	m := NewModel("quad", data, faces)

	require.Len(t, m.Vertices, 12)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.Scale)
	assert.Equal(t, mgl32.QuatIdent(), m.Rotation)
	assert.Equal(t, mgl32.Ident4(), m.ModelMatrix)
	assert.InDelta(t, 1.41421, m.BoundingSphereRadius, 1e-4)
}

func TestModelTransform(t *testing.T) {
	data, faces := quad()
	m := NewModel("quad", data, faces)

	m.SetPosition(5, 0, 0)
	m.SetScale(2, 2, 2)

	p := m.ModelMatrix.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 7, p.X(), 1e-5)
	assert.Equal(t, mgl32.Vec3{5, 0, 0}, m.BoundingSphereCenter)
	assert.InDelta(t, 2.82843, m.BoundingSphereRadius, 1e-4)
}

func TestModelRefreshAppliesDirtyTransform(t *testing.T) {
	data, faces := quad()
	m := NewModel("quad", data, faces)

	m.SetPositionVec(mgl32.Vec3{0, 3, 0})
	assert.True(t, m.IsDirty)

	m.Refresh()
	assert.False(t, m.IsDirty)
	assert.Equal(t, mgl32.Translate3D(0, 3, 0), m.ModelMatrix)
}

func TestModelMaterialIsNotShared(t *testing.T) {
	data, faces := quad()
	a := NewModel("a", data, faces)
	b := NewModel("b", data, faces)
	a.Material = DefaultMaterial
	b.Material = DefaultMaterial

	a.SetDiffuseColor(1, 0, 0)

	assert.Equal(t, [3]float32{1, 1, 1}, DefaultMaterial.DiffuseColor)
	assert.Equal(t, [3]float32{1, 1, 1}, b.Material.DiffuseColor)
	assert.Equal(t, [3]float32{1, 0, 0}, a.Material.DiffuseColor)
}

func TestModelSetWireframe(t *testing.T) {
	data, faces := quad()
	m := NewModel("grid", data, faces)

	m.SetWireframe(0.2, 0.3, 0.4)

	require.NotNil(t, m.Material)
	assert.True(t, m.Material.Wireframe)
	assert.True(t, m.Material.Unlit)
	assert.Equal(t, [3]float32{0.2, 0.3, 0.4}, m.Material.DiffuseColor)
}

func TestModelSetEmissive(t *testing.T) {
	data, faces := quad()
	m := NewModel("sun", data, faces)

	m.SetEmissive(1, 0.5, 0, 2)

	assert.Equal(t, [3]float32{1, 0.5, 0}, m.Material.EmissiveColor)
	assert.Equal(t, float32(2), m.Material.EmissiveIntensity)
	assert.Equal(t, float32(1), m.Material.Exposure)
}

func TestModelSetTexture(t *testing.T) {
	data, faces := quad()
	m := NewModel("moon", data, faces)

	m.SetTexture("textures/moon.jpg")

	assert.Equal(t, "textures/moon.jpg", m.Material.TexturePath)
	assert.Zero(t, m.Material.TextureID)
}
