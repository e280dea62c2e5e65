// Package render defines the draw-list contract between game cores and the
// platform layer. Games fill a Frame with transform/tint/texture draw calls;
// the platform executes them. The package is pure math with no graphics
// backend dependency, which keeps game logic testable.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/phys-arcade/internal/core"
)

// Camera maps simulation space (meters, Y up, origin at window center) to
// screen space (pixels, Y down, origin at top-left) with a fixed orthographic
// projection: one simulation unit = PixelsPerUnit pixels.
type Camera struct {
	ScreenW       int
	ScreenH       int
	PixelsPerUnit float64
}

// NewCamera builds a camera from the runtime config.
func NewCamera(cfg core.RuntimeConfig) Camera {
	return Camera{
		ScreenW:       cfg.ScreenW,
		ScreenH:       cfg.ScreenH,
		PixelsPerUnit: cfg.PixelsPerUnit,
	}
}

// Project converts a simulation-space point to screen pixels.
func (c Camera) Project(sim core.Vec2) core.Vec2 {
	return core.Vec2{
		X: sim.X*c.PixelsPerUnit + float64(c.ScreenW)/2,
		Y: float64(c.ScreenH)/2 - sim.Y*c.PixelsPerUnit,
	}
}

// Model composes the screen-space model matrix for a box of the given
// half-extents at a simulation position and rotation: translate to the
// projected center, rotate (negated, since the Y axis flips handedness),
// then scale a unit quad to the full pixel size. The extra scale factor is
// the animation pulse multiplier.
func (c Camera) Model(pos core.Vec2, angle, halfW, halfH, scale float64) mgl32.Mat4 {
	p := c.Project(pos)
	m := mgl32.Translate3D(float32(p.X), float32(p.Y), 0)
	m = m.Mul4(mgl32.HomogRotate3DZ(float32(-angle)))
	m = m.Mul4(mgl32.Scale3D(
		float32(halfW*2*c.PixelsPerUnit*scale),
		float32(halfH*2*c.PixelsPerUnit*scale),
		1,
	))
	return m
}

// BillboardModel composes the screen-space model matrix for a camera-facing
// particle quad already positioned in simulation space, with size given in
// simulation units.
func (c Camera) BillboardModel(pos core.Vec2, rotation, size float64) mgl32.Mat4 {
	p := c.Project(pos)
	m := mgl32.Translate3D(float32(p.X), float32(p.Y), 0)
	m = m.Mul4(mgl32.HomogRotate3DZ(float32(-rotation)))
	px := float32(size * c.PixelsPerUnit)
	m = m.Mul4(mgl32.Scale3D(px, px, 1))
	return m
}
