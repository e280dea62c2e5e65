package boxdrop

import (
	"testing"

	"github.com/vovakirdan/phys-arcade/internal/core"
	"github.com/vovakirdan/phys-arcade/internal/render"
)

const testDelta = 1.0 / 60.0

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:       800,
		ScreenH:       600,
		PixelsPerUnit: 50,
		TickRate:      60,
		Seed:          seed,
	})
	return g
}

func TestRisingEdgeAwardsExactlyOncePerInterval(t *testing.T) {
	g := newTestGame(1)

	// Pin the bodies so the proximity predicate is fully controlled
	g.player.Body.SetTransform(core.Vec2{X: 0, Y: 0}, 0)
	g.player.Body.SetVelocity(core.Vec2{})

	near := core.Vec2{X: 1, Y: 0}
	far := core.Vec2{X: 10, Y: 0}

	// The classic edge sequence: awards only at indices 2 and 6
	pattern := []bool{false, false, true, true, true, false, true}
	awardsAt := []int{}

	for i, isNear := range pattern {
		pos := far
		if isNear {
			pos = near
		}
		g.box.Body.SetTransform(pos, 0)

		before := g.score
		g.deriveProximity(testDelta)
		if g.score > before {
			awardsAt = append(awardsAt, i)
		}
	}

	if len(awardsAt) != 2 || awardsAt[0] != 2 || awardsAt[1] != 6 {
		t.Errorf("awards at %v, expected [2 6]", awardsAt)
	}
	if g.score != 2*g.tuning.Proximity.ScoreAward {
		t.Errorf("score = %d, expected %d", g.score, 2*g.tuning.Proximity.ScoreAward)
	}
	if got := len(g.popups.Active()); got != 2 {
		t.Errorf("popup count = %d, expected one per rising edge", got)
	}
}

func TestProximityHighlightsTarget(t *testing.T) {
	g := newTestGame(1)
	g.player.Body.SetTransform(core.Vec2{X: 0, Y: 0}, 0)

	g.box.Body.SetTransform(core.Vec2{X: 10, Y: 0}, 0)
	g.deriveProximity(testDelta)
	if g.box.Visual.Tint != core.ColorBox {
		t.Errorf("distant target tint = %v, expected base color", g.box.Visual.Tint)
	}
	if g.box.Visual.Animating {
		t.Error("distant target is animating")
	}

	g.box.Body.SetTransform(core.Vec2{X: 1, Y: 0}, 0)
	g.deriveProximity(testDelta)
	if g.box.Visual.Tint != core.ColorHighlight {
		t.Errorf("near target tint = %v, expected highlight", g.box.Visual.Tint)
	}
	if !g.box.Visual.Animating {
		t.Error("near target is not animating")
	}

	// Moving away resets both tint and animation immediately
	g.box.Body.SetTransform(core.Vec2{X: 10, Y: 0}, 0)
	g.deriveProximity(testDelta)
	if g.box.Visual.Tint != core.ColorBox {
		t.Error("target tint not reset after leaving proximity")
	}
	if g.box.Visual.Scale != 1.0 || g.box.Visual.AnimTime != 0 {
		t.Errorf("animation did not snap off: scale=%v time=%v", g.box.Visual.Scale, g.box.Visual.AnimTime)
	}
}

func TestSafetyResetAfterFallingOut(t *testing.T) {
	g := newTestGame(1)

	g.player.Body.SetTransform(core.Vec2{X: 3, Y: -25}, 0)
	g.Step(core.NewInputFrame(), testDelta)

	pos := g.player.Body.Position()
	if pos.X != 0 || pos.Y != 10 {
		t.Errorf("player at (%v, %v) after safety reset, expected (0, 10)", pos.X, pos.Y)
	}
	vel := g.player.Body.Velocity()
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("player velocity (%v, %v) after safety reset, expected (0, 0)", vel.X, vel.Y)
	}
}

func TestManualReset(t *testing.T) {
	g := newTestGame(1)

	// Push right for a second so the player drifts
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 60; i++ {
		g.Step(right, testDelta)
	}

	reset := core.NewInputFrame()
	reset.Set(core.ActionReset)
	g.Step(reset, testDelta)

	pos := g.player.Body.Position()
	if pos.X != 0 {
		t.Errorf("player x = %v after manual reset, expected 0", pos.X)
	}
	// One physics step ran after the reset, so y sits just under the spawn
	if pos.Y > 10 || pos.Y < 9.9 {
		t.Errorf("player y = %v after manual reset, expected just below 10", pos.Y)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	g := newTestGame(1)

	// Let the player fall for a few frames: clearly airborne
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame(), testDelta)
	}
	fallingVY := g.player.Body.Velocity().Y
	if fallingVY >= 0 {
		t.Fatalf("player not falling, vy = %v", fallingVY)
	}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump, testDelta)
	if g.player.Body.Velocity().Y > fallingVY {
		t.Error("airborne jump changed vertical velocity upward")
	}

	// Settle on the ground, then jump works
	for i := 0; i < 600; i++ {
		g.Step(core.NewInputFrame(), testDelta)
	}
	if core.Abs(g.player.Body.Velocity().Y) >= g.tuning.Player.GroundedThreshold {
		t.Fatalf("player never settled, vy = %v", g.player.Body.Velocity().Y)
	}

	g.Step(jump, testDelta)
	if g.player.Body.Velocity().Y <= 0 {
		t.Errorf("grounded jump left vy = %v, expected upward", g.player.Body.Velocity().Y)
	}
}

func TestBurstIsEdgeTriggered(t *testing.T) {
	g := newTestGame(1)

	burst := core.NewInputFrame()
	burst.Set(core.ActionBurst)

	g.Step(burst, testDelta)
	count := len(g.particles.Active())
	if count == 0 {
		t.Fatal("burst press spawned no particles")
	}

	// Holding the key must not re-fire
	g.Step(burst, testDelta)
	if len(g.particles.Active()) != count {
		t.Errorf("held burst key changed particle count from %d to %d", count, len(g.particles.Active()))
	}

	// Release, press again: fires again
	g.Step(core.NewInputFrame(), testDelta)
	g.Step(burst, testDelta)
	if len(g.particles.Active()) <= count {
		t.Errorf("second burst press did not spawn, count = %d", len(g.particles.Active()))
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(), testDelta)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, testDelta)
	if !g.State().Paused {
		t.Fatal("game not paused after pause action")
	}

	tick := g.tickCount
	posBefore := g.player.Body.Position()
	g.Step(core.NewInputFrame(), testDelta)
	if g.tickCount != tick {
		t.Error("tick advanced while paused")
	}
	if g.player.Body.Position() != posBefore {
		t.Error("physics advanced while paused")
	}

	g.Step(pause, testDelta)
	if g.State().Paused {
		t.Error("game still paused after unpause action")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:       800,
		ScreenH:       600,
		PixelsPerUnit: 50,
		TickRate:      60,
		Seed:          12345,
	}

	// A busy input script: movement, jumps, bursts
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputs[i].Set(core.ActionRight)
		case i%7 < 5:
			inputs[i].Set(core.ActionLeft)
		}
		if i%60 == 30 {
			inputs[i].Set(core.ActionJump)
		}
		if i%45 == 0 {
			inputs[i].Set(core.ActionBurst)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			// Hand each run its own copy so the shared script stays pristine
			g.Step(in.Clone(), testDelta)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1 != snap2 {
		t.Errorf("determinism failed:\nrun1: %+v\nrun2: %+v", snap1, snap2)
	}
}

func TestBuildFrameOrdering(t *testing.T) {
	g := newTestGame(1)

	burst := core.NewInputFrame()
	burst.Set(core.ActionBurst)
	g.Step(burst, testDelta)

	var frame render.Frame
	g.BuildFrame(&frame)

	// Three world bodies lead the quad list, particles follow
	if len(frame.Quads) != 3+len(g.particles.Active()) {
		t.Errorf("quad count = %d, expected %d", len(frame.Quads), 3+len(g.particles.Active()))
	}
	for i := 0; i < 3; i++ {
		if frame.Quads[i].Additive {
			t.Errorf("world quad %d marked additive", i)
		}
	}
	for i := 3; i < len(frame.Quads); i++ {
		if !frame.Quads[i].Additive {
			t.Errorf("particle quad %d not additive", i)
		}
	}

	// Score HUD is always the last label
	if len(frame.Labels) == 0 {
		t.Fatal("no labels in frame")
	}
	hud := frame.Labels[len(frame.Labels)-1]
	if hud.Text != "Score: 0" {
		t.Errorf("HUD label = %q, expected \"Score: 0\"", hud.Text)
	}
}

func TestScoreSurfacesInState(t *testing.T) {
	g := newTestGame(1)
	g.player.Body.SetTransform(core.Vec2{X: 0, Y: 0}, 0)
	g.box.Body.SetTransform(core.Vec2{X: 1, Y: 0}, 0)
	g.deriveProximity(testDelta)

	if got := g.State().Score; got != g.tuning.Proximity.ScoreAward {
		t.Errorf("state score = %d, expected %d", got, g.tuning.Proximity.ScoreAward)
	}
}
