// Package window hosts games in a native Ebitengine window. It owns the
// render loop, keyboard sampling, asset loading and score persistence, so
// game packages stay free of any graphics backend imports.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/phys-arcade/internal/core"
	"github.com/vovakirdan/phys-arcade/internal/registry"
	"github.com/vovakirdan/phys-arcade/internal/render"
	"github.com/vovakirdan/phys-arcade/internal/storage"
)

// runner adapts a registry.Game to the ebiten.Game interface.
type runner struct {
	game   registry.Game
	cfg    core.RuntimeConfig
	assets *Assets

	input core.InputFrame
	frame render.Frame

	lastTick time.Time
}

// Update implements ebiten.Game. It measures the wall-clock delta since the
// previous tick, samples input and advances the game one step. The game
// clamps the delta internally, so a stall while the window is dragged or
// minimized does not teleport the visual effects.
func (r *runner) Update() error {
	now := time.Now()
	elapsed := now.Sub(r.lastTick).Seconds()
	r.lastTick = now

	pollInput(&r.input)

	if r.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	r.game.Step(r.input, elapsed)
	return nil
}

// Draw implements ebiten.Game. The game fills a backend-agnostic draw list
// which is then executed against the screen.
func (r *runner) Draw(screen *ebiten.Image) {
	r.frame.Reset()
	r.game.BuildFrame(&r.frame)
	executeFrame(screen, &r.frame, r.assets)
}

// Layout implements ebiten.Game and fixes the logical resolution.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.cfg.ScreenW, r.cfg.ScreenH
}

// Run opens a window and runs the game until the player quits. The final
// score is saved to the store when one is provided.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	game.Reset(cfg)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	r := &runner{
		game:     game,
		cfg:      cfg,
		assets:   LoadAssets(),
		input:    core.NewInputFrame(),
		lastTick: time.Now(),
	}

	err := ebiten.RunGame(r)

	if store != nil {
		state := game.State()
		if state.Score > 0 {
			if _, saveErr := store.SaveScore(game.ID(), state.Score); saveErr != nil {
				log.Warn("could not save score", "game", game.ID(), "err", saveErr)
			}
		}
	}

	return err
}
