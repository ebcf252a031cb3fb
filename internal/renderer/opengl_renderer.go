package renderer

import (
	"fmt"
	"image"

	"SolarSystem/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type OpenGLRenderer struct {
	defaultShader        Shader
	pointsShader         Shader
	Models               []*Model
	PointClouds          []*PointCloud
	Textures             *TextureManager
	currentShaderProgram uint32 // Track currently bound shader to avoid unnecessary switches
	currentTextureID     uint32
	viewportHeight       int32
	frustum              Frustum
}

func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init OpenGL: %w", err)
	}

	rend.Textures = NewTextureManager()
	rend.defaultShader = InitShader()
	if err := rend.defaultShader.Compile(); err != nil {
		return err
	}
	rend.pointsShader = InitPointsShader()
	if err := rend.pointsShader.Compile(); err != nil {
		return err
	}

	rend.UpdateViewport(width, height)
	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return nil
}

func (rend *OpenGLRenderer) AddModel(model *Model) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)

	stride := int32((8) * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo

	if model.Shader.IsValid() {
		if err := model.Shader.Compile(); err != nil {
			logger.Log.Error("Custom shader failed, using default", zap.String("model", model.Name), zap.Error(err))
			model.Shader = Shader{}
		}
	}

	if model.Material != nil && model.Material.TexturePath != "" && model.Material.TextureID == 0 {
		textureID, err := rend.Textures.LoadTexture(model.Material.TexturePath)
		if err != nil {
			logger.Log.Warn("Texture not loaded", zap.String("model", model.Name), zap.Error(err))
		} else {
			model.Material.TextureID = textureID
		}
	}

	model.updateModelMatrix()
	rend.Models = append(rend.Models, model)
	logger.Log.Debug("Model added", zap.String("model", model.Name), zap.Int("triangles", len(model.Faces)/3))
}

func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	for i, m := range rend.Models {
		if m == model {
			rend.deleteModel(m)
			rend.Models = append(rend.Models[:i], rend.Models[i+1:]...)
			break
		}
	}
}

func (rend *OpenGLRenderer) deleteModel(model *Model) {
	gl.DeleteVertexArrays(1, &model.VAO)
	gl.DeleteBuffers(1, &model.VBO)
	gl.DeleteBuffers(1, &model.EBO)
	model.Shader.Delete()
	if model.Material != nil {
		rend.Textures.ReleaseTexture(model.Material.TextureID)
	}
}

func (rend *OpenGLRenderer) AddPointCloud(cloud *PointCloud) {
	gl.GenVertexArrays(1, &cloud.VAO)
	gl.BindVertexArray(cloud.VAO)

	cloud.positionVBO = floatAttribute(0, 3, cloud.Positions, gl.STATIC_DRAW)
	cloud.colorVBO = floatAttribute(1, 3, cloud.Colors, gl.STATIC_DRAW)
	cloud.brightnessVBO = floatAttribute(2, 1, cloud.Brightness, gl.DYNAMIC_DRAW)
	cloud.brightnessDirty = false

	gl.BindVertexArray(0)
	rend.PointClouds = append(rend.PointClouds, cloud)
	logger.Log.Debug("Point cloud added", zap.String("cloud", cloud.Name), zap.Int("points", cloud.Count()))
}

func floatAttribute(index uint32, size int32, data []float32, usage uint32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, size*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(index)
	return vbo
}

func (rend *OpenGLRenderer) Render(camera Camera, lights *Lights) {
	gl.ClearColor(ClearColor.X(), ClearColor.Y(), ClearColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	viewProjection := camera.GetViewProjection()
	if FrustumCullingEnabled {
		rend.frustum = camera.CalculateFrustum()
	}

	for _, model := range rend.Models {
		model.Refresh()
		if FrustumCullingEnabled && !rend.frustum.IntersectsSphere(model.BoundingSphereCenter, model.BoundingSphereRadius) {
			continue
		}
		rend.renderModel(model, viewProjection, lights, camera)
	}

	rend.renderPointClouds(camera)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
}

func (rend *OpenGLRenderer) renderModel(model *Model, viewProjection mgl32.Mat4, lights *Lights, camera Camera) {
	shader := &rend.defaultShader
	if model.Shader.IsValid() {
		shader = &model.Shader
	}

	if rend.currentShaderProgram != shader.program {
		shader.Use()
		rend.currentShaderProgram = shader.program
	}

	shader.SetMat4("viewProjection", viewProjection)
	shader.SetMat4("model", model.ModelMatrix)
	shader.SetVec3("viewPos", camera.Position)
	rend.setLightUniforms(shader, lights)
	rend.setMaterialUniforms(shader, model)
	rend.setShaderSpecificUniforms(shader, model)

	wireframe := Debug || (model.Material != nil && model.Material.Wireframe)
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(model.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (rend *OpenGLRenderer) setLightUniforms(shader *Shader, lights *Lights) {
	if lights == nil {
		shader.SetInt("lightCount", 0)
		return
	}
	shader.SetVec3("ambientColor", lights.Ambient)

	count := len(lights.Sources)
	if count > MaxLights {
		count = MaxLights
	}
	shader.SetInt("lightCount", int32(count))

	for i := 0; i < count; i++ {
		light := lights.Sources[i]
		prefix := fmt.Sprintf("lights[%d].", i)
		shader.SetVec3(prefix+"position", light.Position)
		shader.SetVec3(prefix+"direction", light.Direction)
		shader.SetVec3(prefix+"color", light.Color)
		shader.SetFloat(prefix+"intensity", light.Intensity)
		shader.SetBool(prefix+"isDirectional", light.Mode == DirectionalLight)
		shader.SetFloat(prefix+"constantAtten", light.ConstantAtten)
		shader.SetFloat(prefix+"linearAtten", light.LinearAtten)
		shader.SetFloat(prefix+"quadraticAtten", light.QuadraticAtten)
	}
}

func (rend *OpenGLRenderer) setMaterialUniforms(shader *Shader, model *Model) {
	material := model.Material
	if material == nil {
		material = DefaultMaterial
	}

	shader.SetVec3("diffuseColor", mgl32.Vec3(material.DiffuseColor))
	shader.SetVec3("specularColor", mgl32.Vec3(material.SpecularColor))
	shader.SetVec3("emissiveColor", mgl32.Vec3(material.EmissiveColor))
	shader.SetFloat("emissiveIntensity", material.EmissiveIntensity)
	shader.SetFloat("shininess", material.Shininess)
	shader.SetFloat("metallic", material.Metallic)
	shader.SetFloat("roughness", material.Roughness)
	shader.SetFloat("exposure", material.Exposure)
	shader.SetFloat("alpha", material.Alpha)
	shader.SetBool("unlit", material.Unlit)

	shader.SetBool("hasTexture", material.TextureID != 0)
	if material.TextureID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		if material.TextureID != rend.currentTextureID {
			gl.BindTexture(gl.TEXTURE_2D, material.TextureID)
			rend.currentTextureID = material.TextureID
		}
		shader.SetInt("textureSampler", 0)
	}
}

// setShaderSpecificUniforms uploads the model's custom uniforms
func (rend *OpenGLRenderer) setShaderSpecificUniforms(shader *Shader, model *Model) {
	for name, value := range model.CustomUniforms {
		switch v := value.(type) {
		case float32:
			shader.SetFloat(name, v)
		case int32:
			shader.SetInt(name, v)
		case bool:
			shader.SetBool(name, v)
		case mgl32.Vec3:
			shader.SetVec3(name, v)
		default:
			logger.Log.Debug("Unsupported uniform type", zap.String("uniform", name))
		}
	}
}

func (rend *OpenGLRenderer) renderPointClouds(camera Camera) {
	if len(rend.PointClouds) == 0 {
		return
	}

	shader := &rend.pointsShader
	shader.Use()
	rend.currentShaderProgram = shader.program

	shader.SetMat4("view", camera.GetViewMatrix())
	shader.SetMat4("projection", camera.GetProjectionMatrix())
	shader.SetFloat("pointScale", float32(rend.viewportHeight)/2)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	for _, cloud := range rend.PointClouds {
		if cloud.brightnessDirty {
			gl.BindBuffer(gl.ARRAY_BUFFER, cloud.brightnessVBO)
			gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(cloud.Brightness)*4, gl.Ptr(cloud.Brightness))
			cloud.brightnessDirty = false
		}

		if cloud.Transparent {
			gl.Enable(gl.BLEND)
			gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
			gl.DepthMask(false)
		}

		shader.SetMat4("model", cloud.ModelMatrix)
		shader.SetFloat("pointSize", cloud.Size)
		shader.SetFloat("opacity", cloud.Opacity)

		gl.BindVertexArray(cloud.VAO)
		gl.DrawArrays(gl.POINTS, 0, int32(cloud.Count()))
		gl.BindVertexArray(0)

		if cloud.Transparent {
			gl.Disable(gl.BLEND)
			gl.DepthMask(true)
		}
	}
	gl.Disable(gl.PROGRAM_POINT_SIZE)
}

// Cleanup deletes every GL object the renderer created.
func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		rend.deleteModel(model)
	}
	rend.Models = nil

	for _, cloud := range rend.PointClouds {
		gl.DeleteVertexArrays(1, &cloud.VAO)
		gl.DeleteBuffers(1, &cloud.positionVBO)
		gl.DeleteBuffers(1, &cloud.colorVBO)
		gl.DeleteBuffers(1, &cloud.brightnessVBO)
	}
	rend.PointClouds = nil

	rend.defaultShader.Delete()
	rend.pointsShader.Delete()
	if rend.Textures != nil {
		rend.Textures.LogStats()
		rend.Textures.Clear()
	}
	logger.Log.Info("Renderer resources released")
}

func (rend *OpenGLRenderer) LoadTexture(filePath string) (uint32, error) {
	return rend.Textures.LoadTexture(filePath)
}

func (rend *OpenGLRenderer) CreateTextureFromImage(img image.Image, name string) (uint32, error) {
	return rend.Textures.CreateTextureFromImage(img, name)
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
	rend.viewportHeight = height
}
