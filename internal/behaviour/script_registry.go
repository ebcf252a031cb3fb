package behaviour

import (
	"fmt"
	"sort"
)

type ScriptConstructor func() Component

var scriptRegistry = make(map[string]ScriptConstructor)

// RegisterScript makes a script available by name. Scripts register
// themselves from init.
func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CreateScript(name string) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor()
	}
	return nil
}

// AttachScript creates the named script, lets configure adjust it, and adds
// it to obj wrapped in a ScriptComponent.
func AttachScript(obj *GameObject, name string, configure func(Component)) (Component, error) {
	script := CreateScript(name)
	if script == nil {
		return nil, fmt.Errorf("unknown script %q", name)
	}
	if configure != nil {
		configure(script)
	}
	obj.AddComponent(NewScriptComponent(name, script))
	return script, nil
}
