package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeMesh      ComponentType = "Mesh"
	ComponentTypeScript    ComponentType = "Script"
	ComponentTypeLight     ComponentType = "Light"
	ComponentTypeBody      ComponentType = "Body"
	ComponentTypeStarfield ComponentType = "Starfield"
	ComponentTypeCustom    ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// MeshComponent holds the renderer.Model drawn for a GameObject
type MeshComponent struct {
	BaseComponent
	Model ModelInterface
}

func NewMeshComponent(model ModelInterface) *MeshComponent {
	return &MeshComponent{Model: model}
}

func (m *MeshComponent) GetComponentType() ComponentType {
	return ComponentTypeMesh
}

func (m *MeshComponent) GetTypeName() string {
	return "MeshComponent"
}

// Awake binds the model to the GameObject so transform changes reach it.
func (m *MeshComponent) Awake() {
	if m.GetGameObject() != nil && m.Model != nil {
		m.GetGameObject().SetModel(m.Model)
	}
}

// BodyKind names a celestial body in the scene
type BodyKind string

const (
	BodySun   BodyKind = "sun"
	BodyEarth BodyKind = "earth"
	BodyMoon  BodyKind = "moon"
	BodyDyson BodyKind = "dyson"
)

// BodyComponent describes a celestial body
type BodyComponent struct {
	BaseComponent
	Kind        BodyKind
	Radius      float32
	TexturePath string // Empty for procedurally shaded bodies
}

func NewBodyComponent(kind BodyKind, radius float32) *BodyComponent {
	return &BodyComponent{Kind: kind, Radius: radius}
}

func (b *BodyComponent) GetComponentType() ComponentType {
	return ComponentTypeBody
}

func (b *BodyComponent) GetTypeName() string {
	return "BodyComponent"
}

// LightComponent holds a renderer.Light
type LightComponent struct {
	BaseComponent
	LightData interface{}
}

func NewLightComponent(light interface{}) *LightComponent {
	return &LightComponent{LightData: light}
}

func (l *LightComponent) GetComponentType() ComponentType {
	return ComponentTypeLight
}

func (l *LightComponent) GetTypeName() string {
	return "LightComponent"
}

// StarfieldComponent holds a renderer.PointCloud of stars
type StarfieldComponent struct {
	BaseComponent
	Cloud interface{}
	Count int
}

func NewStarfieldComponent(cloud interface{}, count int) *StarfieldComponent {
	return &StarfieldComponent{Cloud: cloud, Count: count}
}

func (s *StarfieldComponent) GetComponentType() ComponentType {
	return ComponentTypeStarfield
}

func (s *StarfieldComponent) GetTypeName() string {
	return "StarfieldComponent"
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.SetEnabled(true)
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update()
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// GetComponentTypeName returns the type name of typed components
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// GetComponentCategory returns the category of typed components
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}
