package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pulse is a looping ping-pong tween used for power pellet glow and the
// scared-state flash
type pulse struct {
	tween  *gween.Tween
	rising bool
	low    float32
	high   float32
	period float32
	value  float32
}

func newPulse(low, high, period float32) *pulse {
	return &pulse{
		tween:  gween.New(low, high, period, ease.InOutQuad),
		rising: true,
		low:    low,
		high:   high,
		period: period,
		value:  low,
	}
}

// Update advances the pulse by dt seconds and returns the current value
func (p *pulse) Update(dt float32) float32 {
	v, finished := p.tween.Update(dt)
	p.value = v
	if finished {
		if p.rising {
			p.tween = gween.New(p.high, p.low, p.period, ease.InOutQuad)
		} else {
			p.tween = gween.New(p.low, p.high, p.period, ease.InOutQuad)
		}
		p.rising = !p.rising
	}
	return p.value
}
