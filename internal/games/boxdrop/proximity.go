package boxdrop

import (
	"github.com/vovakirdan/phys-arcade/internal/physics"
)

// proximityOverlap reports whether two bodies are "near" each other: each
// body's AABB is inflated by its own margin and the inflated boxes are tested
// for overlap. Using inflated AABBs instead of exact contact events lets
// "near" trigger at a tunable distance and is cheap to recompute every frame.
// Touching edges count as overlapping.
func proximityOverlap(a, b *physics.Body, marginA, marginB float64) bool {
	return a.AABB(marginA).Overlaps(b.AABB(marginB))
}
