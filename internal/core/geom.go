// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Ebitengine) to keep game
// logic pure and testable.
package core

// Vec2 is a 2D vector, in simulation units (meters) or screen pixels
// depending on context.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AABB is an axis-aligned bounding box in simulation-space units,
// defined by its min/max corners.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// AABBAround builds the AABB of a box centered at center with the given
// half-extents, inflated on every side by margin. A zero margin yields the
// exact bounding box.
func AABBAround(center Vec2, halfW, halfH, margin float64) AABB {
	return AABB{
		MinX: center.X - halfW - margin,
		MinY: center.Y - halfH - margin,
		MaxX: center.X + halfW + margin,
		MaxY: center.Y + halfH + margin,
	}
}

// Overlaps reports whether two boxes overlap. The test negates the strict
// disjoint condition, so boxes that touch exactly at an edge count as
// overlapping.
func (a AABB) Overlaps(b AABB) bool {
	return !(a.MaxX < b.MinX || a.MinX > b.MaxX || a.MaxY < b.MinY || a.MinY > b.MaxY)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of a float64.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
