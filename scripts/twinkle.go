package scripts

import (
	"time"

	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/logger"
	"SolarSystem/internal/renderer"
	"SolarSystem/internal/solar"

	"go.uber.org/zap"
)

// TwinkleScript animates the starfield held by its GameObject.
type TwinkleScript struct {
	behaviour.BaseComponent
	Seed    int64
	Twinkle *solar.Twinkle

	cloud *renderer.PointCloud
	start time.Time
}

func init() {
	behaviour.RegisterScript("TwinkleScript", func() behaviour.Component {
		return &TwinkleScript{Seed: 1}
	})
}

func (t *TwinkleScript) Start() {
	stars, ok := t.GetGameObject().GetComponent("StarfieldComponent").(*behaviour.StarfieldComponent)
	if !ok {
		logger.Log.Warn("TwinkleScript needs a StarfieldComponent", zap.String("object", t.GetGameObject().Name))
		return
	}
	t.cloud, _ = stars.Cloud.(*renderer.PointCloud)
	if t.cloud != nil && t.Twinkle == nil {
		t.Twinkle = solar.NewTwinkle(t.cloud.Size, t.Seed)
	}
}

func (t *TwinkleScript) Update() {
	if t.cloud == nil || t.Twinkle == nil {
		return
	}
	if t.start.IsZero() {
		t.start = behaviour.Time.Now
	}
	t.Twinkle.Apply(t.cloud, behaviour.Time.Now.Sub(t.start).Seconds())
}
