package behaviour

import "time"

// Behaviour is frame logic that belongs to the viewer rather than to a
// GameObject, like the camera rig.
type Behaviour interface {
	Start()
	Update()
	UpdateFixed()
}

type managedBehaviour struct {
	Behaviour
	started bool
}

func (b *managedBehaviour) ensureStarted() {
	if !b.started {
		b.Start()
		b.started = true
	}
}

// FrameTime describes the frame currently being updated.
type FrameTime struct {
	Now   time.Time     // Wall clock at the start of the frame
	Delta time.Duration // Time since the previous frame, zero on the first
	Frame uint64        // Frames advanced so far
}

// Time is the frame clock read by scripts during Update.
var Time FrameTime

// BehaviourManager advances the frame clock and updates the behaviours,
// then the GameObjects of its ComponentManager.
type BehaviourManager struct {
	Components *ComponentManager
	behaviours []*managedBehaviour
}

var GlobalBehaviourManager = NewBehaviourManager(GlobalComponentManager)

func NewBehaviourManager(components *ComponentManager) *BehaviourManager {
	return &BehaviourManager{Components: components}
}

func (m *BehaviourManager) Add(b Behaviour) {
	m.behaviours = append(m.behaviours, &managedBehaviour{Behaviour: b})
}

func (m *BehaviourManager) Remove(b Behaviour) {
	for i, mb := range m.behaviours {
		if mb.Behaviour == b {
			m.behaviours = append(m.behaviours[:i], m.behaviours[i+1:]...)
			return
		}
	}
}

func (m *BehaviourManager) Clear() {
	m.behaviours = nil
}

// Advance moves the frame clock to now. Call it once per frame before UpdateAll.
func (m *BehaviourManager) Advance(now time.Time) {
	if !Time.Now.IsZero() {
		Time.Delta = now.Sub(Time.Now)
	}
	Time.Now = now
	Time.Frame++
}

func (m *BehaviourManager) UpdateAll() {
	for _, b := range m.behaviours {
		b.ensureStarted()
		b.Update()
	}
	if m.Components != nil {
		m.Components.UpdateAll()
	}
}

func (m *BehaviourManager) UpdateAllFixed() {
	for _, b := range m.behaviours {
		b.ensureStarted()
		b.UpdateFixed()
	}
	if m.Components != nil {
		m.Components.FixedUpdateAll()
	}
}
