package render

import "testing"

// TestPulseStaysInBounds verifies the glow never leaves its range
func TestPulseStaysInBounds(t *testing.T) {
	p := newPulse(0.4, 1.0, 0.5)
	for i := 0; i < 1000; i++ {
		v := p.Update(0.016)
		if v < 0.4-1e-3 || v > 1.0+1e-3 {
			t.Fatalf("pulse value %v out of [0.4, 1.0] at step %d", v, i)
		}
	}
}

// TestPulsePingPongs verifies the glow comes back down after peaking
func TestPulsePingPongs(t *testing.T) {
	p := newPulse(0.0, 1.0, 0.5)

	var peak float32
	for i := 0; i < 40; i++ { // 0.64s, past the rising half
		if v := p.Update(0.016); v > peak {
			peak = v
		}
	}
	if peak < 0.9 {
		t.Fatalf("pulse never approached its high, peak %v", peak)
	}

	var last float32
	for i := 0; i < 40; i++ {
		last = p.Update(0.016)
	}
	if last > 0.5 {
		t.Errorf("pulse did not descend after peaking, value %v", last)
	}
}
