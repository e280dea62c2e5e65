package boxdrop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/phys-arcade/internal/config"
	"github.com/vovakirdan/phys-arcade/internal/core"
)

// Particle is a short-lived visual billboard. Positions and sizes are in
// simulation units; rendering projects them to screen space.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Life     float64 // Remaining life, seconds
	MaxLife  float64
	Size     float64 // Current size, shrinks with remaining life
	BaseSize float64
	Rotation float64
	Spin     float64 // Rotation speed, radians/second
}

// LifeFraction returns remaining life as a fraction of total, in [0, 1].
// Drives both the size shrink and the render fade.
func (p *Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}

// ParticleSystem owns a fixed-capacity set of live particles. Spawn requests
// beyond capacity are silently dropped.
type ParticleSystem struct {
	cfg    config.ParticleConfig
	rng    *rand.Rand
	active []Particle
}

// NewParticleSystem creates an empty particle system with the given tuning
// and RNG. The RNG is shared with the game for determinism.
func NewParticleSystem(cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg:    cfg,
		rng:    rng,
		active: make([]Particle, 0, cfg.Capacity),
	}
}

// Spawn generates a randomized explosion burst at pos: burst count within the
// configured range, each particle with independently randomized direction,
// speed, lifetime, size, rotation and spin.
func (ps *ParticleSystem) Spawn(pos core.Vec2) {
	count := ps.cfg.BurstMin
	if ps.cfg.BurstMax > ps.cfg.BurstMin {
		count += ps.rng.Intn(ps.cfg.BurstMax - ps.cfg.BurstMin + 1)
	}

	for i := 0; i < count; i++ {
		if len(ps.active) >= ps.cfg.Capacity {
			return
		}
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.rangeF(ps.cfg.SpeedMin, ps.cfg.SpeedMax)
		life := ps.rangeF(ps.cfg.LifeMin, ps.cfg.LifeMax)
		size := ps.rangeF(ps.cfg.SizeMin, ps.cfg.SizeMax)

		ps.active = append(ps.active, Particle{
			Pos:      pos,
			Vel:      core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:     life,
			MaxLife:  life,
			Size:     size,
			BaseSize: size,
			Rotation: ps.rng.Float64() * 2 * math.Pi,
			Spin:     (ps.rng.Float64()*2 - 1) * ps.cfg.SpinMax,
		})
	}
}

// Advance integrates every live particle by dt: position by velocity, constant
// downward gravity on velocity, life decrement, size shrink by life fraction,
// rotation advance. Expired particles are filtered out in the same pass, so
// each live particle is visited exactly once per call.
func (ps *ParticleSystem) Advance(dt float64) {
	live := ps.active[:0]
	for i := range ps.active {
		p := ps.active[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y -= ps.cfg.Gravity * dt
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Size = p.BaseSize * p.LifeFraction()
		p.Rotation += p.Spin * dt
		live = append(live, p)
	}
	ps.active = live
}

// Active returns the live particle set. The slice is owned by the system and
// valid until the next Spawn or Advance.
func (ps *ParticleSystem) Active() []Particle {
	return ps.active
}

// Reset drops all live particles.
func (ps *ParticleSystem) Reset() {
	ps.active = ps.active[:0]
}

func (ps *ParticleSystem) rangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + ps.rng.Float64()*(max-min)
}
