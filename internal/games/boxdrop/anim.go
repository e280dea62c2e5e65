package boxdrop

import (
	"math"

	"github.com/vovakirdan/phys-arcade/internal/config"
)

// updatePulse advances the pulsing-scale animation on a visual. While active
// holds, elapsed time accumulates and the scale follows
// 1 + amplitude*sin(t*rate). The moment active stops holding, accumulated
// time and scale snap back to exactly zero and 1.0 with no decay.
func updatePulse(v *Visual, active bool, dt float64, cfg config.AnimationConfig) {
	if !active {
		v.Animating = false
		v.AnimTime = 0
		v.Scale = 1.0
		return
	}
	v.Animating = true
	v.AnimTime += dt
	v.Scale = 1.0 + cfg.Amplitude*math.Sin(v.AnimTime*cfg.Rate)
}
