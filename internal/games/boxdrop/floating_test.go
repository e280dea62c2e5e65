package boxdrop

import (
	"testing"

	"github.com/vovakirdan/phys-arcade/internal/config"
	"github.com/vovakirdan/phys-arcade/internal/core"
)

func testPopupConfig() config.PopupConfig {
	return config.PopupConfig{
		Duration: 1.0,
		RiseRate: 40,
		Scale:    1.0,
		OffsetY:  1.0,
	}
}

func TestPopupSpawnFormatsPoints(t *testing.T) {
	s := NewPopupSystem(testPopupConfig())
	s.Spawn(100, core.Vec2{X: 400, Y: 300})

	popups := s.Active()
	if len(popups) != 1 {
		t.Fatalf("popup count = %d, expected 1", len(popups))
	}
	if popups[0].Text != "+100" {
		t.Errorf("popup text = %q, expected \"+100\"", popups[0].Text)
	}
	if popups[0].Pos.X != 400 || popups[0].Pos.Y != 300 {
		t.Errorf("popup at (%v, %v), expected (400, 300)", popups[0].Pos.X, popups[0].Pos.Y)
	}
}

func TestPopupAlphaFadesLinearly(t *testing.T) {
	s := NewPopupSystem(testPopupConfig())
	s.Spawn(100, core.Vec2{})

	prev := float32(1.0)
	for i := 0; i < 9; i++ {
		s.Advance(0.1)
		if len(s.Active()) != 1 {
			t.Fatalf("popup removed early at step %d", i)
		}
		alpha := s.Active()[0].Alpha()

		// Alpha is exactly life/duration
		want := float32(s.Active()[0].Life / s.Active()[0].Duration)
		if alpha != want {
			t.Errorf("alpha = %v, expected life/duration = %v", alpha, want)
		}
		// And monotonically decreasing
		if alpha >= prev {
			t.Errorf("alpha %v did not decrease from %v at step %d", alpha, prev, i)
		}
		prev = alpha
	}

	// The final step exhausts the lifetime: popup removed exactly when
	// alpha would hit zero
	s.Advance(0.11)
	if len(s.Active()) != 0 {
		t.Errorf("popup still alive after lifetime exhausted")
	}
}

func TestPopupRises(t *testing.T) {
	s := NewPopupSystem(testPopupConfig())
	s.Spawn(100, core.Vec2{X: 0, Y: 300})

	s.Advance(0.5)
	// Screen Y shrinks as the popup rises: 300 - 40*0.5
	if got := s.Active()[0].Pos.Y; got != 280 {
		t.Errorf("popup y = %v, expected 280", got)
	}
}

func TestPopupAdvanceWithLargeDeltaRemovesAll(t *testing.T) {
	s := NewPopupSystem(testPopupConfig())
	s.Spawn(100, core.Vec2{})
	s.Spawn(200, core.Vec2{X: 10})

	s.Advance(5.0)
	if len(s.Active()) != 0 {
		t.Errorf("%d popups alive after advancing past duration", len(s.Active()))
	}
}

func TestPopupReset(t *testing.T) {
	s := NewPopupSystem(testPopupConfig())
	s.Spawn(100, core.Vec2{})
	s.Spawn(200, core.Vec2{X: 10})

	s.Reset()
	if len(s.Active()) != 0 {
		t.Errorf("%d popups alive after reset", len(s.Active()))
	}
}
