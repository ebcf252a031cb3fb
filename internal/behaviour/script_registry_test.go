package behaviour

import (
	"testing"
)

func resetScripts(names ...string) {
	scriptRegistry = make(map[string]ScriptConstructor)
	for _, name := range names {
		RegisterScript(name, func() Component { return &MockComponent{} })
	}
}

func TestAvailableScriptsSorted(t *testing.T) {
	resetScripts("Twinkle", "Orbit", "Spin")

	scripts := GetAvailableScripts()

	want := []string{"Orbit", "Spin", "Twinkle"}
	if len(scripts) != len(want) {
		t.Fatalf("Expected %d scripts, got %d", len(want), len(scripts))
	}
	for i := range want {
		if scripts[i] != want[i] {
			t.Errorf("Expected %q at %d, got %q", want[i], i, scripts[i])
		}
	}
}

func TestCreateScript(t *testing.T) {
	resetScripts("Orbit")

	if CreateScript("Orbit") == nil {
		t.Error("CreateScript returned nil for a registered script")
	}
	if CreateScript("Wobble") != nil {
		t.Error("CreateScript should return nil for an unknown script")
	}
}

func TestCreateScriptReturnsFreshInstances(t *testing.T) {
	resetScripts("Spin")

	if CreateScript("Spin") == CreateScript("Spin") {
		t.Error("Each call should build a new script")
	}
}

func TestAttachScript(t *testing.T) {
	resetScripts("Orbit")

	obj := NewGameObject("Moon")
	configured := false
	script, err := AttachScript(obj, "Orbit", func(c Component) {
		configured = true
	})

	if err != nil {
		t.Fatalf("AttachScript failed: %v", err)
	}
	if !configured {
		t.Error("configure callback was not called")
	}
	if script.GetGameObject() != obj {
		t.Error("Script should be bound to the GameObject")
	}
	if len(obj.Components) != 1 || GetComponentTypeName(obj.Components[0]) != "Orbit" {
		t.Error("Script should be wrapped in a ScriptComponent")
	}
}

func TestAttachScriptUnknown(t *testing.T) {
	resetScripts()

	if _, err := AttachScript(NewGameObject("Moon"), "Missing", nil); err == nil {
		t.Error("AttachScript should fail for unknown scripts")
	}
}
