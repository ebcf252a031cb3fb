package renderer

import (
	"sort"

	"SolarSystem/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// UniformCache remembers uniform locations of one program. Shaders share the
// renderer's uniform names, so lookups that miss are expected and cached too.
type UniformCache struct {
	locations map[string]int32
	program   uint32
}

func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
	}
}

// GetLocation returns the location of name, asking GL only the first time.
// Unknown names are cached as -1.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := gl.GetUniformLocation(uc.program, gl.Str(name+"\x00"))
	if loc == -1 {
		logger.Log.Debug("Uniform not in program", zap.String("uniform", name), zap.Uint32("program", uc.program))
	}
	uc.locations[name] = loc
	return loc
}

// Missing lists the names the program does not declare, sorted.
func (uc *UniformCache) Missing() []string {
	var names []string
	for name, loc := range uc.locations {
		if loc == -1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetVec3(name string, value mgl32.Vec3) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform3f(loc, value[0], value[1], value[2])
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

// SetBool uploads value as 0 or 1, the way GLSL bool uniforms are set.
func (uc *UniformCache) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	uc.SetInt(name, v)
}

func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

// Clear forgets every location, for when the program is relinked.
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
