package boxdrop

import (
	"math"
	"testing"

	"github.com/vovakirdan/phys-arcade/internal/config"
)

func testAnimConfig() config.AnimationConfig {
	return config.AnimationConfig{Amplitude: 0.1, Rate: 8.0}
}

func TestPulseAccumulatesWhileActive(t *testing.T) {
	v := Visual{Scale: 1.0}
	cfg := testAnimConfig()

	updatePulse(&v, true, 0.1, cfg)
	if !v.Animating {
		t.Error("visual not marked animating while active")
	}
	if v.AnimTime != 0.1 {
		t.Errorf("anim time = %v, expected 0.1", v.AnimTime)
	}
	want := 1.0 + 0.1*math.Sin(0.1*8.0)
	if math.Abs(v.Scale-want) > 1e-12 {
		t.Errorf("scale = %v, expected %v", v.Scale, want)
	}

	updatePulse(&v, true, 0.1, cfg)
	if v.AnimTime != 0.2 {
		t.Errorf("anim time = %v, expected 0.2 after second update", v.AnimTime)
	}
}

func TestPulseSnapsOffImmediately(t *testing.T) {
	v := Visual{Scale: 1.0}
	cfg := testAnimConfig()

	// Run the animation for a while
	for i := 0; i < 50; i++ {
		updatePulse(&v, true, 0.05, cfg)
	}
	if v.Scale == 1.0 {
		t.Fatal("scale never left 1.0 while animating")
	}

	// First inactive frame: exact snap, no decay
	updatePulse(&v, false, 0.05, cfg)
	if v.Scale != 1.0 {
		t.Errorf("scale = %v after deactivation, expected exactly 1.0", v.Scale)
	}
	if v.AnimTime != 0 {
		t.Errorf("anim time = %v after deactivation, expected exactly 0", v.AnimTime)
	}
	if v.Animating {
		t.Error("visual still marked animating after deactivation")
	}
}

func TestPulseRestartsFromZero(t *testing.T) {
	v := Visual{Scale: 1.0}
	cfg := testAnimConfig()

	updatePulse(&v, true, 0.3, cfg)
	updatePulse(&v, false, 0.3, cfg)
	updatePulse(&v, true, 0.1, cfg)

	if v.AnimTime != 0.1 {
		t.Errorf("anim time = %v after restart, expected 0.1", v.AnimTime)
	}
}
