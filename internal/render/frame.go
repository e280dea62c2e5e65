package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/phys-arcade/internal/core"
)

// Quad is a single textured or flat-colored quad draw call. The model matrix
// maps a unit quad centered at the origin into screen pixels.
type Quad struct {
	Model      mgl32.Mat4
	Tint       core.RGB
	Alpha      float32
	Texture    string // Texture key resolved by the platform; ignored unless UseTexture
	UseTexture bool
	Additive   bool // Additive blending (particles)
}

// Label is a screen-space text draw call. Position is the top-left pen
// origin in pixels.
type Label struct {
	Text         string
	Pos          core.Vec2
	Scale        float64
	Color        core.RGB
	Alpha        float32
	Shadow       bool
	ShadowColor  core.RGB
	ShadowOffset core.Vec2
}

// Frame is the per-frame draw list. Submission order is draw order: world
// quads first, then particles, then text overlays.
type Frame struct {
	Quads  []Quad
	Labels []Label
}

// Reset clears the frame for reuse without reallocating.
func (f *Frame) Reset() {
	f.Quads = f.Quads[:0]
	f.Labels = f.Labels[:0]
}

// AddQuad appends a quad draw call.
func (f *Frame) AddQuad(q Quad) {
	f.Quads = append(f.Quads, q)
}

// AddLabel appends a text draw call.
func (f *Frame) AddLabel(l Label) {
	f.Labels = append(f.Labels, l)
}
