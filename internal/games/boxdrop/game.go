// Package boxdrop implements the Box Drop physics demo: a player-controlled
// box moves and jumps under gravity over a static ground, and closing within
// a proximity halo of a dynamic target box highlights it, awards score, and
// fires visual effects. The physics engine and the renderer are black boxes
// behind internal/physics and internal/render; this package is the
// orchestration between them.
package boxdrop

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/phys-arcade/internal/config"
	"github.com/vovakirdan/phys-arcade/internal/core"
	"github.com/vovakirdan/phys-arcade/internal/physics"
	"github.com/vovakirdan/phys-arcade/internal/registry"
	"github.com/vovakirdan/phys-arcade/internal/render"
)

// World layout constants. Positions and extents are in simulation units.
const (
	GroundY     = -5.0
	GroundHalfW = 50.0
	GroundHalfH = 0.1

	PlayerHalfW = 1.0
	PlayerHalfH = 1.0

	BoxStartX = 2.0
	BoxStartY = 6.0
	BoxHalfW  = 0.5
	BoxHalfH  = 0.5

	BodyDensity  = 1.0
	BodyFriction = 0.3

	// Solver iteration counts per fixed step
	VelocityIters = 8
	PositionIters = 3

	// Upper bound on the wall-clock delta fed to the visual subsystems,
	// so a stalled frame cannot teleport particles
	MaxFrameDelta = 0.25
)

// Texture keys resolved by the platform's asset loader.
const (
	TexturePlayer = "player"
	TextureBox    = "box"
	TextureGround = "ground"
)

var configPath string

// SetConfigPath sets a custom config file path for the next game creation.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Box Drop demo logic.
type Game struct {
	world  *physics.World
	player *Entity
	box    *Entity
	ground *Entity

	particles *ParticleSystem
	popups    *PopupSystem

	camera render.Camera
	rng    *rand.Rand

	score     int
	prevNear  bool // Proximity predicate last frame, for rising-edge detection
	prevBurst bool // Burst key held last frame, for edge triggering
	paused    bool
	tickCount uint64

	config core.RuntimeConfig
	tuning config.BoxdropConfig
}

// New creates a new Box Drop game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("boxdrop", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "boxdrop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Box Drop"
}

// Reset initializes or restarts the game. The physics world is rebuilt from
// scratch so restarts are fully deterministic.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tuning, err := config.LoadBoxdrop(configPath)
	if err != nil {
		tuning = config.DefaultBoxdropConfig()
	}
	g.config = cfg
	g.tuning = tuning
	g.camera = render.NewCamera(cfg)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.world = physics.NewWorld(core.Vec2{Y: tuning.World.GravityY})

	g.ground = newEntity(TagGround, g.world.CreateBox(physics.BoxDef{
		Kind:     physics.Static,
		Position: core.Vec2{X: 0, Y: GroundY},
		HalfW:    GroundHalfW, HalfH: GroundHalfH,
		Friction: BodyFriction,
	}), core.ColorGround, TextureGround, true)

	g.player = newEntity(TagPlayer, g.world.CreateBox(physics.BoxDef{
		Kind:     physics.Dynamic,
		Position: core.Vec2{X: tuning.World.ResetX, Y: tuning.World.ResetY},
		HalfW:    PlayerHalfW, HalfH: PlayerHalfH,
		Density:  BodyDensity, Friction: BodyFriction,
	}), core.ColorPlayer, TexturePlayer, false)

	g.box = newEntity(TagBox, g.world.CreateBox(physics.BoxDef{
		Kind:     physics.Dynamic,
		Position: core.Vec2{X: BoxStartX, Y: BoxStartY},
		HalfW:    BoxHalfW, HalfH: BoxHalfH,
		Density:  BodyDensity, Friction: BodyFriction,
	}), core.ColorBox, TextureBox, true)

	g.particles = NewParticleSystem(tuning.Particles, g.rng)
	g.popups = NewPopupSystem(tuning.Popup)

	g.score = 0
	g.prevNear = false
	g.prevBurst = false
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick. Physics always moves by the fixed
// timestep from the runtime config; elapsed is the measured wall-clock delta
// driving particles, popups and the pulse animation. The phases run in a
// strict order: input, physics, safety, gameplay derivation, subsystems.
func (g *Game) Step(in core.InputFrame, elapsed float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := core.ClampF(elapsed, 0, MaxFrameDelta)

	// Input phase
	g.applyInput(in)

	// Physics phase: exactly one fixed step, decoupled from frame time
	g.world.Step(g.config.FixedDelta(), VelocityIters, PositionIters)

	// Safety phase: recover the player from falling out of the world
	if g.player.Body.Position().Y < g.tuning.World.FallThreshold {
		g.resetPlayer()
	}

	// Gameplay-derivation phase
	g.deriveProximity(dt)

	// Subsystem-advance phase
	g.particles.Advance(dt)
	g.popups.Advance(dt)

	return core.StepResult{State: g.State()}
}

// applyInput maps held actions to forces and impulses on the player body.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.player.Body.ApplyForce(core.Vec2{X: -g.tuning.Player.MoveForce})
	}
	if in.Has(core.ActionRight) {
		g.player.Body.ApplyForce(core.Vec2{X: g.tuning.Player.MoveForce})
	}
	if in.Has(core.ActionJump) {
		// Grounded heuristic: only jump when vertical velocity is near zero
		if core.Abs(g.player.Body.Velocity().Y) < g.tuning.Player.GroundedThreshold {
			g.player.Body.ApplyImpulse(core.Vec2{Y: g.tuning.Player.JumpImpulse})
		}
	}
	if in.Has(core.ActionReset) {
		g.resetPlayer()
	}

	// Particle burst is edge-triggered: it must not re-fire while the key
	// stays held, so track the previous frame's held state.
	burst := in.Has(core.ActionBurst)
	if burst && !g.prevBurst {
		g.particles.Spawn(g.player.Body.Position())
	}
	g.prevBurst = burst
}

// deriveProximity recomputes the player-target proximity predicate and the
// state derived from it: target tint, rising-edge score award, one popup per
// rising edge, and the pulse animation feed.
func (g *Game) deriveProximity(dt float64) {
	near := proximityOverlap(g.player.Body, g.box.Body, g.tuning.Proximity.Margin, 0)

	// Reset unconditionally, then override while near
	g.box.Visual.Tint = core.ColorBox
	if near {
		g.box.Visual.Tint = core.ColorHighlight
	}

	if near && !g.prevNear {
		g.score += g.tuning.Proximity.ScoreAward
		spawnAt := g.box.Body.Position().Add(core.Vec2{Y: g.tuning.Popup.OffsetY})
		g.popups.Spawn(g.tuning.Proximity.ScoreAward, g.camera.Project(spawnAt))
	}
	g.prevNear = near

	updatePulse(&g.box.Visual, near, dt, g.tuning.Animation)
}

// resetPlayer teleports the player to the start position with zero velocity.
func (g *Game) resetPlayer() {
	g.player.Body.SetTransform(core.Vec2{X: g.tuning.World.ResetX, Y: g.tuning.World.ResetY}, 0)
	g.player.Body.SetVelocity(core.Vec2{})
}

// BuildFrame fills the draw list: world bodies first, then particles, then
// text overlays, then the persistent score readout.
func (g *Game) BuildFrame(dst *render.Frame) {
	for _, e := range []*Entity{g.ground, g.player, g.box} {
		dst.AddQuad(render.Quad{
			Model: g.camera.Model(
				e.Body.Position(), e.Body.Angle(),
				e.halfW(), e.halfH(), e.Visual.Scale,
			),
			Tint:       e.Visual.Tint,
			Alpha:      1,
			Texture:    e.Visual.Texture,
			UseTexture: e.Visual.UseTexture,
		})
	}

	for _, p := range g.particles.Active() {
		dst.AddQuad(render.Quad{
			Model:    g.camera.BillboardModel(p.Pos, p.Rotation, p.Size),
			Tint:     core.ColorParticle,
			Alpha:    float32(p.LifeFraction()),
			Additive: true,
		})
	}

	for i := range g.popups.Active() {
		t := &g.popups.Active()[i]
		dst.AddLabel(render.Label{
			Text:         t.Text,
			Pos:          t.Pos,
			Scale:        t.Scale,
			Color:        t.Color,
			Alpha:        t.Alpha(),
			Shadow:       true,
			ShadowColor:  t.ShadowColor,
			ShadowOffset: t.ShadowOffset,
		})
	}

	dst.AddLabel(render.Label{
		Text:  fmt.Sprintf("Score: %d", g.score),
		Pos:   core.Vec2{X: 16, Y: 16},
		Scale: 1,
		Color: core.ColorWhite,
		Alpha: 1,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
}

func (e *Entity) halfW() float64 {
	w, _ := e.Body.HalfExtents()
	return w
}

func (e *Entity) halfH() float64 {
	_, h := e.Body.HalfExtents()
	return h
}
