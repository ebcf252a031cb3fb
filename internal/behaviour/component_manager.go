package behaviour

// ComponentManager owns the GameObjects of the loaded scene and drives their
// components once per frame.
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
}

var GlobalComponentManager = NewComponentManager()

func NewComponentManager() *ComponentManager {
	return &ComponentManager{}
}

// RegisterGameObject adds obj and starts its components.
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.internalStart()
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			obj.Destroy()
			return
		}
	}
}

func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag returns the objects of one body kind.
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// UpdateAll runs Update on every active object. The Transform is read from
// the model before the components run and written back after, so scripts only
// ever touch the Transform.
func (cm *ComponentManager) UpdateAll() {
	for _, obj := range cm.toDestroy {
		cm.UnregisterGameObject(obj)
	}
	cm.toDestroy = cm.toDestroy[:0]

	for _, obj := range cm.gameObjects {
		if !obj.Active {
			continue
		}
		model := obj.GetModel()
		if model != nil {
			pullTransform(obj.Transform, model)
		}
		obj.internalUpdate()
		if model != nil {
			pushTransform(obj.Transform, model)
		}
	}
}

func pullTransform(t *Transform, model ModelInterface) {
	t.Position = model.GetPosition()
	t.Rotation = model.GetRotation()
	t.Scale = model.GetScale()
}

// pushTransform copies t onto the model, leaving it clean when nothing moved.
func pushTransform(t *Transform, model ModelInterface) {
	if t.Position.ApproxEqual(model.GetPosition()) &&
		t.Rotation.ApproxEqual(model.GetRotation()) &&
		t.Scale.ApproxEqual(model.GetScale()) {
		return
	}
	model.SetPositionVec(t.Position)
	model.SetRotationQuat(t.Rotation)
	model.SetScaleVec(t.Scale)
}

func (cm *ComponentManager) FixedUpdateAll() {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalFixedUpdate()
		}
	}
}

// DestroyGameObject removes obj at the start of the next UpdateAll.
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear destroys every object, ready for a new scene.
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = nil
	cm.toDestroy = cm.toDestroy[:0]
}
