// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// BoxdropConfig contains all tuning for the Box Drop demo.
type BoxdropConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Proximity ProximityConfig `yaml:"proximity"`
	Particles ParticleConfig  `yaml:"particles"`
	Popup     PopupConfig     `yaml:"popup"`
	Animation AnimationConfig `yaml:"animation"`
}

// WorldConfig defines the simulation world layout.
type WorldConfig struct {
	GravityY      float64 `yaml:"gravity_y"`
	FallThreshold float64 `yaml:"fall_threshold"` // Below this y the player is reset
	ResetX        float64 `yaml:"reset_x"`
	ResetY        float64 `yaml:"reset_y"`
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	MoveForce         float64 `yaml:"move_force"`
	JumpImpulse       float64 `yaml:"jump_impulse"`
	GroundedThreshold float64 `yaml:"grounded_threshold"` // |vy| below this counts as grounded
}

// ProximityConfig defines the proximity detector and scoring.
// The margin inflates the player's AABB; the target box uses its exact size.
type ProximityConfig struct {
	Margin     float64 `yaml:"margin"`
	ScoreAward int     `yaml:"score_award"`
}

// ParticleConfig defines the explosion particle burst tuning.
type ParticleConfig struct {
	Capacity int     `yaml:"capacity"`
	BurstMin int     `yaml:"burst_min"`
	BurstMax int     `yaml:"burst_max"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	LifeMin  float64 `yaml:"life_min"`
	LifeMax  float64 `yaml:"life_max"`
	SizeMin  float64 `yaml:"size_min"`
	SizeMax  float64 `yaml:"size_max"`
	SpinMax  float64 `yaml:"spin_max"` // Max rotation speed, radians/second
	Gravity  float64 `yaml:"gravity"`  // Downward acceleration on particles
}

// PopupConfig defines the floating score popup behavior.
type PopupConfig struct {
	Duration float64 `yaml:"duration"`  // Seconds until fully faded
	RiseRate float64 `yaml:"rise_rate"` // Pixels per second the popup rises
	Scale    float64 `yaml:"scale"`
	OffsetY  float64 `yaml:"offset_y"` // Spawn offset above the target, simulation units
}

// AnimationConfig defines the proximity pulse animation.
type AnimationConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Rate      float64 `yaml:"rate"` // Angular rate, radians/second
}
