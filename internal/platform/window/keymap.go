package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/phys-arcade/internal/core"
)

// pollInput samples the keyboard into a semantic input frame.
//
// Movement, jump, reset and burst carry held-key state; the game core does
// its own edge detection where it needs one-shot behavior. Pause is sampled
// as just-pressed here because the game treats it as a toggle per press.
func pollInput(dst *core.InputFrame) {
	dst.Clear()

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		dst.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		dst.Set(core.ActionRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		dst.Set(core.ActionJump)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		dst.Set(core.ActionReset)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		dst.Set(core.ActionBurst)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		dst.Set(core.ActionPause)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		dst.Set(core.ActionQuit)
	}
}
