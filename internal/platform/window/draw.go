package window

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/phys-arcade/internal/render"
)

// baseFontSize is the label font size at Scale 1.0.
const baseFontSize = 18

// executeFrame draws a completed frame against the screen. Quads are drawn
// in submission order, then labels on top.
func executeFrame(screen *ebiten.Image, frame *render.Frame, assets *Assets) {
	for i := range frame.Quads {
		drawQuad(screen, &frame.Quads[i], assets)
	}
	if assets.Font == nil {
		return
	}
	for i := range frame.Labels {
		drawLabel(screen, &frame.Labels[i], assets)
	}
}

// drawQuad executes a single quad draw call. The quad's model matrix maps a
// unit quad centered at the origin to screen pixels; the source image is
// first normalized to that unit quad, then the model's affine part is
// applied on top.
func drawQuad(screen *ebiten.Image, q *render.Quad, assets *Assets) {
	img := assets.White
	if q.UseTexture {
		img = assets.Texture(q.Texture)
	}

	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(1/w, 1/h)
	op.GeoM.Concat(modelGeoM(q.Model))

	op.ColorScale.Scale(q.Tint.R, q.Tint.G, q.Tint.B, 1)
	op.ColorScale.ScaleAlpha(q.Alpha)
	if q.Additive {
		op.Blend = ebiten.BlendLighter
	}

	screen.DrawImage(img, op)
}

// modelGeoM extracts the 2D affine transform from a model matrix. The
// matrices produced by the camera only ever rotate about Z, scale and
// translate, so rows 0 and 1 carry the whole transform.
func modelGeoM(m mgl32.Mat4) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.At(0, 0)))
	g.SetElement(0, 1, float64(m.At(0, 1)))
	g.SetElement(0, 2, float64(m.At(0, 3)))
	g.SetElement(1, 0, float64(m.At(1, 0)))
	g.SetElement(1, 1, float64(m.At(1, 1)))
	g.SetElement(1, 2, float64(m.At(1, 3)))
	return g
}

// drawLabel executes a single text draw call, shadow pass first.
func drawLabel(screen *ebiten.Image, l *render.Label, assets *Assets) {
	face := &text.GoTextFace{
		Source: assets.Font,
		Size:   baseFontSize * l.Scale,
	}

	if l.Shadow {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.Pos.X+l.ShadowOffset.X, l.Pos.Y+l.ShadowOffset.Y)
		op.ColorScale.Scale(l.ShadowColor.R, l.ShadowColor.G, l.ShadowColor.B, 1)
		op.ColorScale.ScaleAlpha(l.Alpha)
		text.Draw(screen, l.Text, face, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(l.Pos.X, l.Pos.Y)
	op.ColorScale.Scale(l.Color.R, l.Color.G, l.Color.B, 1)
	op.ColorScale.ScaleAlpha(l.Alpha)
	text.Draw(screen, l.Text, face, op)
}
