package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Component is anything attached to a GameObject that takes part in the
// frame lifecycle.
type Component interface {
	Awake()       // on AddComponent
	Start()       // when the object is registered
	Update()      // every frame
	FixedUpdate() // every other frame
	OnDestroy()

	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent gives empty lifecycle methods. Embed it and override what
// the component needs.
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()       {}
func (c *BaseComponent) Start()       {}
func (c *BaseComponent) Update()      {}
func (c *BaseComponent) FixedUpdate() {}
func (c *BaseComponent) OnDestroy()   {}

func (c *BaseComponent) GetEnabled() bool              { return c.enabled }
func (c *BaseComponent) SetEnabled(enabled bool)       { c.enabled = enabled }
func (c *BaseComponent) GetGameObject() *GameObject    { return c.gameObject }
func (c *BaseComponent) SetGameObject(obj *GameObject) { c.gameObject = obj }

// ModelInterface is the part of renderer.Model the behaviour layer needs.
// Declared here so this package does not import the renderer.
type ModelInterface interface {
	GetPosition() mgl32.Vec3
	GetRotation() mgl32.Quat
	GetScale() mgl32.Vec3
	SetPositionVec(mgl32.Vec3)
	SetRotationQuat(mgl32.Quat)
	SetScaleVec(mgl32.Vec3)
	MarkDirty()
}

// GameObject represents a body, light or starfield in the scene.
// Its Transform is kept in sync with the model it wraps.
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	model      ModelInterface
}

// Transform is the position, rotation and scale scripts write to.
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

// Rotate applies angle radians about axis on top of the current rotation.
func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, axis))
}

func (t *Transform) SetPosition(pos mgl32.Vec3) { t.Position = pos }
func (t *Transform) SetRotation(rot mgl32.Quat) { t.Rotation = rot }
func (t *Transform) SetScale(scale mgl32.Vec3)  { t.Scale = scale }

func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:   name,
		Active: true,
		Transform: &Transform{
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

// AddComponent enables component and calls its Awake.
func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// GetComponent returns the first component with the given type name
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			return comp
		}
	}
	return nil
}

// GetComponents returns every component of the given category
func (obj *GameObject) GetComponents(category ComponentType) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if comp != nil && GetComponentCategory(comp) == category {
			result = append(result, comp)
		}
	}
	return result
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) SetModel(model ModelInterface) { obj.model = model }
func (obj *GameObject) GetModel() ModelInterface      { return obj.model }

// each calls fn for every enabled component of an active object.
func (obj *GameObject) each(fn func(Component)) {
	if !obj.Active {
		return
	}
	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			fn(comp)
		}
	}
}

func (obj *GameObject) internalStart()       { obj.each(Component.Start) }
func (obj *GameObject) internalUpdate()      { obj.each(Component.Update) }
func (obj *GameObject) internalFixedUpdate() { obj.each(Component.FixedUpdate) }

// Destroy calls OnDestroy on every component and deactivates obj.
func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
