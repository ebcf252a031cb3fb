package renderer

import (
	"fmt"
	"strings"

	"SolarSystem/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	Name           string
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
	uniforms       *UniformCache
}

// IsValid reports whether the shader has sources to compile.
func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

// Compile builds the program. Compiling an already compiled shader is a no-op.
func (shader *Shader) Compile() error {
	if shader.isCompiled {
		return nil
	}
	vertex, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%s vertex shader: %w", shader.Name, err)
	}
	fragment, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return fmt.Errorf("%s fragment shader: %w", shader.Name, err)
	}
	program, err := GenShaderProgram(vertex, fragment)
	if err != nil {
		return fmt.Errorf("%s program: %w", shader.Name, err)
	}

	shader.program = program
	shader.uniforms = NewUniformCache(program)
	shader.isCompiled = true
	logger.Log.Debug("Shader compiled", zap.String("shader", shader.Name), zap.Uint32("program", program))
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Delete() {
	if shader.isCompiled {
		gl.DeleteProgram(shader.program)
		shader.isCompiled = false
		shader.uniforms = nil
	}
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	shader.uniforms.SetVec3(name, value)
}

func (shader *Shader) SetFloat(name string, value float32) {
	shader.uniforms.SetFloat(name, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	shader.uniforms.SetInt(name, value)
}

func (shader *Shader) SetBool(name string, value bool) {
	shader.uniforms.SetBool(name, value)
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	shader.uniforms.SetMat4(name, value)
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile", zap.Uint32("shaderType", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture Coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;
uniform mat4 viewProjection;

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;
out vec3 LocalPos;        // Object space position, sampled by procedural shaders

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = mat3(model) * inNormal; // Bodies are scaled uniformly
    fragTexCoord = inTexCoord;
    LocalPos = inPosition;

    gl_Position = viewProjection * vec4(FragPos, 1.0);
}
` + "\x00"

var fragmentShaderSource = `#version 330 core
#define MAX_LIGHTS 4

in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

struct Light {
    vec3 position;
    vec3 direction;
    vec3 color;
    float intensity;
    int isDirectional;
    float constantAtten;
    float linearAtten;
    float quadraticAtten;
};

uniform sampler2D textureSampler;
uniform bool hasTexture;
uniform Light lights[MAX_LIGHTS];
uniform int lightCount;
uniform vec3 ambientColor;
uniform vec3 viewPos;

uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float metallic;
uniform float roughness;
uniform float exposure;
uniform float alpha;
uniform vec3 emissiveColor;
uniform float emissiveIntensity;
uniform bool unlit;

out vec4 FragColor;

void main() {
    vec3 base = diffuseColor;
    if (hasTexture) {
        base *= texture(textureSampler, fragTexCoord).rgb;
    }

    if (unlit) {
        FragColor = vec4(base, alpha);
        return;
    }

    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 result = ambientColor * base;

    // Rough surfaces get wider, dimmer highlights; metals tint them
    float specPower = max(shininess * (1.0 - roughness), 1.0);
    vec3 specTint = mix(specularColor, base, metallic);

    for (int i = 0; i < lightCount && i < MAX_LIGHTS; i++) {
        vec3 lightDir;
        float attenuation = 1.0;
        if (lights[i].isDirectional == 1) {
            lightDir = normalize(-lights[i].direction);
        } else {
            vec3 toLight = lights[i].position - FragPos;
            float d = length(toLight);
            lightDir = toLight / d;
            attenuation = 1.0 / (lights[i].constantAtten + lights[i].linearAtten * d + lights[i].quadraticAtten * d * d);
        }

        float diff = max(dot(norm, lightDir), 0.0);
        vec3 reflectDir = reflect(-lightDir, norm);
        float spec = pow(max(dot(viewDir, reflectDir), 0.0), specPower) * (1.0 - roughness);

        vec3 radiance = lights[i].color * lights[i].intensity * attenuation;
        result += (diff * base * (1.0 - metallic) + spec * specTint) * radiance;
    }

    result += emissiveColor * emissiveIntensity;

    // Exposure tone mapping keeps intense lights from clipping
    vec3 mapped = vec3(1.0) - exp(-result * exposure);
    FragColor = vec4(mapped, alpha);
}
` + "\x00"

// dysonFragmentShaderSource paints the dyson sphere noise over the object
// space position. It mirrors procedural.DysonSphere.
var dysonFragmentShaderSource = `#version 330 core

in vec3 LocalPos;

uniform float noiseScale;
uniform int noiseComplexity;
uniform vec3 noiseColor;
uniform vec3 noiseBackground;
uniform vec3 noiseSeed;

out vec4 FragColor;

float noisea(vec3 p) {
    p = fract(p * sqrt(5.0));
    p += dot(p, p + vec3(31.4159, 27.1828, 14.142));
    return fract(p.z * (p.x + p.y)) * 2.0 - 1.0;
}

float smoothWeight(float x) {
    float t = clamp(1.0 - x, 0.0, 1.0);
    return t * t * (3.0 - 2.0 * t);
}

vec3 noiseg(vec3 p) {
    vec3 lo = floor(p);
    vec3 hi = lo + 1.0;
    vec3 f = p - lo;

    vec3 d = vec3(smoothWeight(f.x), smoothWeight(f.y), smoothWeight(f.z));
    vec3 m = vec3(smoothWeight(1.0 - f.x), smoothWeight(1.0 - f.y), smoothWeight(1.0 - f.z));

    float n = noisea(vec3(lo.x, lo.y, lo.z)) * d.x * d.y * d.z
            + noisea(vec3(lo.x, lo.y, hi.z)) * d.x * d.y * m.z
            + noisea(vec3(lo.x, hi.y, lo.z)) * d.x * m.y * d.z
            + noisea(vec3(lo.x, hi.y, hi.z)) * d.x * m.y * m.z
            + noisea(vec3(hi.x, lo.y, lo.z)) * m.x * d.y * d.z
            + noisea(vec3(hi.x, lo.y, hi.z)) * m.x * d.y * m.z
            + noisea(vec3(hi.x, hi.y, lo.z)) * m.x * m.y * d.z
            + noisea(vec3(hi.x, hi.y, hi.z)) * m.x * m.y * m.z;
    return vec3(n);
}

void main() {
    vec3 pos = LocalPos * exp(noiseScale / 2.0 + 0.5) + noiseSeed;

    vec3 res = vec3(0.0);
    float factor = 1.0;
    int octaves = max(noiseComplexity, 0) + 4;
    for (int i = 0; i < octaves; i++) {
        res += noiseg(pos * factor);
        factor += factor;
    }

    vec3 color = mix(noiseBackground, noiseColor, (res.x + 1.0) / 5.0);
    FragColor = vec4(clamp(color, 0.0, 1.0), 1.0);
}
` + "\x00"

var pointsVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inColor;
layout(location = 2) in float inBrightness;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform float pointSize;
uniform float pointScale; // Half the viewport height in pixels

out vec3 fragColor;

void main() {
    vec4 mvPosition = view * model * vec4(inPosition, 1.0);
    fragColor = inColor * inBrightness;

    // Size attenuation: points shrink with distance from the camera
    gl_PointSize = max(pointSize * pointScale / -mvPosition.z, 1.0);
    gl_Position = projection * mvPosition;
}
` + "\x00"

var pointsFragmentShaderSource = `#version 330 core

in vec3 fragColor;

uniform float opacity;

out vec4 FragColor;

void main() {
    // Round points
    vec2 c = gl_PointCoord - vec2(0.5);
    if (dot(c, c) > 0.25) {
        discard;
    }
    FragColor = vec4(fragColor, opacity);
}
` + "\x00"

func InitShader() Shader {
	return Shader{
		Name:           "default",
		vertexSource:   vertexShaderSource,
		fragmentSource: fragmentShaderSource,
	}
}

// InitDysonShader returns the procedural noise shader. Its parameters are read
// from the model's custom uniforms, see ApplyNoiseParams.
func InitDysonShader() Shader {
	return Shader{
		Name:           "dyson",
		vertexSource:   vertexShaderSource,
		fragmentSource: dysonFragmentShaderSource,
	}
}

func InitPointsShader() Shader {
	return Shader{
		Name:           "points",
		vertexSource:   pointsVertexShaderSource,
		fragmentSource: pointsFragmentShaderSource,
	}
}
