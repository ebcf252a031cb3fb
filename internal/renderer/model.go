package renderer

import (
	"SolarSystem/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Metallic:      0.0,
	Roughness:     0.5,
	Exposure:      1.0,
	Alpha:         1.0,
}

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4 // Transformation matrix
	Position    mgl32.Vec3 // Position in world space
	Scale       mgl32.Vec3 // Scale factors
	Rotation    mgl32.Quat // Rotation quaternion
	Material    *Material  // Material properties pointer
	VAO         uint32     // Vertex Array Object
	VBO         uint32     // Vertex Buffer Object
	EBO         uint32     // Element Buffer Object
	IsDirty     bool       // Needs recalculation flag

	// MEDIUM DATA - Conditional/periodic access
	BoundingSphereCenter mgl32.Vec3             // For frustum culling
	BoundingSphereRadius float32                // For frustum culling
	Shader               Shader                 // Custom shader for this model
	CustomUniforms       map[string]interface{} // Custom uniforms for this model

	// COLD DATA - Initialization only or rarely accessed
	Id              int
	Name            string
	Vertices        []float32 // Vertex position data
	Faces           []int32   // Triangle indices
	InterleavedData []float32 // Position, uv, normal per vertex
	localRadius     float32   // Largest vertex distance from the origin
}

type Material struct {
	// HOT DATA - Accessed every render call for shading calculations
	DiffuseColor      [3]float32 // Base color, multiplied with the texture
	SpecularColor     [3]float32 // Specular highlight color
	EmissiveColor     [3]float32 // Light emitted regardless of scene lights
	EmissiveIntensity float32
	Shininess         float32 // Specular exponent
	Metallic          float32 // 0.0 = dielectric, 1.0 = metallic
	Roughness         float32 // 0.0 = mirror, 1.0 = completely rough
	Exposure          float32 // Tone mapping exposure
	Alpha             float32 // Transparency (0.0 = transparent, 1.0 = opaque)
	TextureID         uint32  // OpenGL texture ID
	Unlit             bool    // Skip lighting, output the base color
	Wireframe         bool    // Draw triangle edges only

	// COLD DATA - Rarely accessed (identification only)
	Name        string
	TexturePath string // Path to texture file (loaded lazily when OpenGL is ready)
}

// NewModel wraps interleaved position/uv/normal data and triangle indices.
func NewModel(name string, interleaved []float32, faces []int32) *Model {
	m := &Model{
		Name:            name,
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1, 1, 1},
		InterleavedData: interleaved,
		Faces:           faces,
		Vertices:        make([]float32, 0, len(interleaved)/8*3),
	}
	for i := 0; i+8 <= len(interleaved); i += 8 {
		v := mgl32.Vec3{interleaved[i], interleaved[i+1], interleaved[i+2]}
		m.Vertices = append(m.Vertices, v[0], v[1], v[2])
		if l := v.Len(); l > m.localRadius {
			m.localRadius = l
		}
	}
	m.updateModelMatrix()
	return m
}

func (m *Model) X() float32 {
	return m.Position[0]
}

func (m *Model) Y() float32 {
	return m.Position[1]
}

func (m *Model) Z() float32 {
	return m.Position[2]
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

func (m *Model) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

// The accessors below let behaviour.GameObject drive the model.

func (m *Model) GetPosition() mgl32.Vec3 { return m.Position }
func (m *Model) GetRotation() mgl32.Quat { return m.Rotation }
func (m *Model) GetScale() mgl32.Vec3    { return m.Scale }

func (m *Model) SetPositionVec(p mgl32.Vec3) {
	m.Position = p
	m.IsDirty = true
}

func (m *Model) SetRotationQuat(q mgl32.Quat) {
	m.Rotation = q
	m.IsDirty = true
}

func (m *Model) SetScaleVec(s mgl32.Vec3) {
	m.Scale = s
	m.IsDirty = true
}

func (m *Model) MarkDirty() {
	m.IsDirty = true
}

// CalculateBoundingSphere centers the bounds on the model position. Scale is
// taken from the largest axis so rotation never moves a vertex outside.
func (m *Model) CalculateBoundingSphere() {
	maxScale := m.Scale[0]
	if m.Scale[1] > maxScale {
		maxScale = m.Scale[1]
	}
	if m.Scale[2] > maxScale {
		maxScale = m.Scale[2]
	}
	m.BoundingSphereCenter = m.Position
	m.BoundingSphereRadius = m.localRadius * maxScale
}

func (m *Model) updateModelMatrix() {
	// Matrices are multiplied right-to-left: T * R * S transforms vertices as: scale first, then rotate, then translate
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
	m.CalculateBoundingSphere()
}

// Refresh recomputes the model matrix if the transform changed.
func (m *Model) Refresh() {
	if m.IsDirty {
		m.updateModelMatrix()
		m.IsDirty = false
	}
}

// ensureMaterial gives the model its own material so setters never modify
// DefaultMaterial.
func (m *Model) ensureMaterial() {
	if m.Material == nil {
		m.Material = &Material{}
		*m.Material = *DefaultMaterial
	} else if m.Material == DefaultMaterial {
		logger.Log.Debug("Creating unique material copy", zap.String("model", m.Name))
		material := *DefaultMaterial
		m.Material = &material
	}
}

func (m *Model) SetDiffuseColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.DiffuseColor = [3]float32{r, g, b}
}

func (m *Model) SetSpecularColor(r, g, b float32) {
	m.ensureMaterial()
	m.Material.SpecularColor = [3]float32{r, g, b}
}

func (m *Model) SetMaterialPBR(metallic, roughness float32) {
	m.ensureMaterial()
	m.Material.Metallic = metallic
	m.Material.Roughness = roughness
}

func (m *Model) SetEmissive(r, g, b, intensity float32) {
	m.ensureMaterial()
	m.Material.EmissiveColor = [3]float32{r, g, b}
	m.Material.EmissiveIntensity = intensity
}

func (m *Model) SetExposure(exposure float32) {
	m.ensureMaterial()
	m.Material.Exposure = exposure
}

func (m *Model) SetAlpha(alpha float32) {
	m.ensureMaterial()
	m.Material.Alpha = alpha
}

// SetWireframe draws the model as unlit colored edges.
func (m *Model) SetWireframe(r, g, b float32) {
	m.ensureMaterial()
	m.Material.DiffuseColor = [3]float32{r, g, b}
	m.Material.Wireframe = true
	m.Material.Unlit = true
}

func (m *Model) SetTexture(texturePath string) {
	// The texture is loaded when the model is added to a renderer
	m.ensureMaterial()
	m.Material.TexturePath = texturePath
	logger.Log.Debug("Texture path set for model",
		zap.String("path", texturePath),
		zap.String("model", m.Name))
}

// SetUniform stores a value for the model's custom shader. Supported types are
// float32, int32, bool and mgl32.Vec3.
func (m *Model) SetUniform(name string, value interface{}) {
	if m.CustomUniforms == nil {
		m.CustomUniforms = make(map[string]interface{})
	}
	m.CustomUniforms[name] = value
}
