package config

import (
	_ "embed"
)

//go:embed defaults/boxdrop.yaml
var defaultBoxdropYAML []byte

// DefaultBoxdropConfig returns the default Box Drop configuration.
// Kept in sync with defaults/boxdrop.yaml as a last-resort fallback.
func DefaultBoxdropConfig() BoxdropConfig {
	return BoxdropConfig{
		World: WorldConfig{
			GravityY:      -10.0,
			FallThreshold: -20.0,
			ResetX:        0.0,
			ResetY:        10.0,
		},
		Player: PlayerConfig{
			MoveForce:         20.0,
			JumpImpulse:       6.0,
			GroundedThreshold: 0.01,
		},
		Proximity: ProximityConfig{
			Margin:     1.0,
			ScoreAward: 100,
		},
		Particles: ParticleConfig{
			Capacity: 256,
			BurstMin: 12,
			BurstMax: 24,
			SpeedMin: 2.0,
			SpeedMax: 6.0,
			LifeMin:  0.4,
			LifeMax:  1.2,
			SizeMin:  0.08,
			SizeMax:  0.25,
			SpinMax:  8.0,
			Gravity:  9.0,
		},
		Popup: PopupConfig{
			Duration: 1.2,
			RiseRate: 40.0,
			Scale:    1.0,
			OffsetY:  1.0,
		},
		Animation: AnimationConfig{
			Amplitude: 0.1,
			Rate:      8.0,
		},
	}
}
