package boxdrop

import (
	"fmt"

	"github.com/vovakirdan/phys-arcade/internal/config"
	"github.com/vovakirdan/phys-arcade/internal/core"
)

// FloatingText is a transient score popup. Position is captured in screen
// space once at spawn time; the popup rises independently of the source
// entity afterward.
type FloatingText struct {
	Text         string
	Pos          core.Vec2 // Screen-space pixels
	Life         float64   // Remaining life, seconds
	Duration     float64
	Scale        float64
	Color        core.RGB
	ShadowColor  core.RGB
	ShadowOffset core.Vec2
}

// Alpha returns the popup's current opacity: a linear fade from 1 to 0 over
// the popup's duration.
func (t *FloatingText) Alpha() float32 {
	if t.Duration <= 0 {
		return 0
	}
	return float32(t.Life / t.Duration)
}

// PopupSystem owns the live score popups.
type PopupSystem struct {
	cfg    config.PopupConfig
	active []FloatingText
}

// NewPopupSystem creates an empty popup system with the given tuning.
func NewPopupSystem(cfg config.PopupConfig) *PopupSystem {
	return &PopupSystem{cfg: cfg}
}

// Spawn creates a popup for the given point award at a screen position.
func (s *PopupSystem) Spawn(points int, screenPos core.Vec2) {
	s.active = append(s.active, FloatingText{
		Text:         fmt.Sprintf("+%d", points),
		Pos:          screenPos,
		Life:         s.cfg.Duration,
		Duration:     s.cfg.Duration,
		Scale:        s.cfg.Scale,
		Color:        core.ColorHighlight,
		ShadowColor:  core.ColorShadow,
		ShadowOffset: core.Vec2{X: 2, Y: 2},
	})
}

// Advance ages every popup by dt and rises it at the configured rate.
// Popups whose life reaches zero are removed.
func (s *PopupSystem) Advance(dt float64) {
	live := s.active[:0]
	for i := range s.active {
		t := s.active[i]
		t.Life -= dt
		if t.Life <= 0 {
			continue
		}
		// Screen Y grows downward, so rising means decreasing Y
		t.Pos.Y -= s.cfg.RiseRate * dt
		live = append(live, t)
	}
	s.active = live
}

// Active returns the live popups. The slice is owned by the system and valid
// until the next Spawn or Advance.
func (s *PopupSystem) Active() []FloatingText {
	return s.active
}

// Reset drops all live popups.
func (s *PopupSystem) Reset() {
	s.active = s.active[:0]
}
