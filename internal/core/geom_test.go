package core

import "testing"

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        AABBAround(Vec2{X: 0, Y: 0}, 1, 1, 0),
			b:        AABBAround(Vec2{X: 1, Y: 1}, 1, 1, 0),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        AABBAround(Vec2{X: 0, Y: 0}, 1, 1, 0),
			b:        AABBAround(Vec2{X: 5, Y: 0}, 1, 1, 0),
			expected: false,
		},
		{
			name:     "separated on y",
			a:        AABBAround(Vec2{X: 0, Y: 0}, 1, 1, 0),
			b:        AABBAround(Vec2{X: 0, Y: 5}, 1, 1, 0),
			expected: false,
		},
		{
			name:     "identical centers",
			a:        AABBAround(Vec2{X: 2, Y: 3}, 1, 1, 0),
			b:        AABBAround(Vec2{X: 2, Y: 3}, 0.5, 0.5, 0),
			expected: true,
		},
		{
			name:     "touching edges count as overlap",
			a:        AABBAround(Vec2{X: 0, Y: 0}, 1, 1, 0),
			b:        AABBAround(Vec2{X: 2, Y: 0}, 1, 1, 0),
			expected: true,
		},
		{
			name:     "contained box",
			a:        AABBAround(Vec2{X: 0, Y: 0}, 5, 5, 0),
			b:        AABBAround(Vec2{X: 1, Y: -1}, 0.5, 0.5, 0),
			expected: true,
		},
		{
			name:     "margin bridges the gap",
			a:        AABBAround(Vec2{X: 0, Y: 0}, 1, 1, 1),
			b:        AABBAround(Vec2{X: 2.5, Y: 0}, 0.5, 0.5, 0),
			expected: true,
		},
		{
			name:     "margin inflated boxes touch exactly at boundary",
			a:        AABBAround(Vec2{X: 0, Y: 0}, 1.0, 1.0, 1.0),
			b:        AABBAround(Vec2{X: 1.5, Y: 0}, 0.5, 0.5, 0),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Overlap must be symmetric
			if tc.b.Overlaps(tc.a) != result {
				t.Errorf("Overlaps() is not symmetric for %s", tc.name)
			}
		})
	}
}

func TestAABBAroundMargin(t *testing.T) {
	box := AABBAround(Vec2{X: 1, Y: 2}, 0.5, 0.25, 1.0)

	if box.MinX != -0.5 || box.MaxX != 2.5 {
		t.Errorf("x extent = [%v, %v], expected [-0.5, 2.5]", box.MinX, box.MaxX)
	}
	if box.MinY != 0.75 || box.MaxY != 3.25 {
		t.Errorf("y extent = [%v, %v], expected [0.75, 3.25]", box.MinY, box.MaxY)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 3); got != 3 {
		t.Errorf("ClampF(5, 0, 3) = %v, expected 3", got)
	}
	if got := ClampF(-1, 0, 3); got != 0 {
		t.Errorf("ClampF(-1, 0, 3) = %v, expected 0", got)
	}
	if got := ClampF(2, 0, 3); got != 2 {
		t.Errorf("ClampF(2, 0, 3) = %v, expected 2", got)
	}
}
