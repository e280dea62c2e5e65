package core

// RGB is a normalized tint color with components in [0, 1].
// Alpha is handled separately by the render pass.
type RGB struct {
	R, G, B float32
}

// Predefined colors for game elements.
var (
	ColorPlayer    = RGB{R: 0.9, G: 0.3, B: 0.25}
	ColorBox       = RGB{R: 0.2, G: 0.5, B: 0.8}
	ColorGround    = RGB{R: 0.4, G: 0.6, B: 0.3}
	ColorHighlight = RGB{R: 1.0, G: 1.0, B: 0.0}
	ColorWhite     = RGB{R: 1.0, G: 1.0, B: 1.0}
	ColorShadow    = RGB{R: 0.1, G: 0.1, B: 0.1}
	ColorParticle  = RGB{R: 1.0, G: 0.7, B: 0.2}
)
