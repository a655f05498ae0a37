package core

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edges count",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertical edges count",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "touching corners count",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 5, 5),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional gap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10.01, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	r.Translate(1.5, -2)

	if r.X != 2.5 || r.Y != 0 {
		t.Errorf("Translate() moved to (%v, %v), expected (2.5, 0)", r.X, r.Y)
	}
	if r.W != 3 || r.H != 4 {
		t.Errorf("Translate() changed size to %vx%v", r.W, r.H)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Left() != 5 {
		t.Errorf("Left() = %v, expected 5", r.Left())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Top() != 10 {
		t.Errorf("Top() = %v, expected 10", r.Top())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestRectSnapHelpers(t *testing.T) {
	r := NewRect(0, 0, 4, 6)

	r.SetBottom(100)
	if r.Bottom() != 100 || r.Y != 94 {
		t.Errorf("SetBottom(100) gave Y=%v Bottom=%v", r.Y, r.Bottom())
	}
	r.SetTop(10)
	if r.Top() != 10 {
		t.Errorf("SetTop(10) gave Top=%v", r.Top())
	}
	r.SetRight(50)
	if r.Right() != 50 || r.X != 46 {
		t.Errorf("SetRight(50) gave X=%v Right=%v", r.X, r.Right())
	}
	r.SetLeft(-3)
	if r.Left() != -3 {
		t.Errorf("SetLeft(-3) gave Left=%v", r.Left())
	}
}

func TestCenteredAt(t *testing.T) {
	r := CenteredAt(10, 20, 4, 6)
	cx, cy := r.Center()
	if cx != 10 || cy != 20 {
		t.Errorf("CenteredAt center = (%v, %v), expected (10, 20)", cx, cy)
	}
	if !r.Valid() {
		t.Error("CenteredAt rect should be valid")
	}
	if NewRect(0, 0, 0, 5).Valid() {
		t.Error("zero-width rect should not be valid")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec
		speed    float64
	}{
		{"right", Vec{0, 0}, Vec{10, 0}, 10},
		{"diagonal", Vec{1, 1}, Vec{4, 5}, 7},
		{"up-left", Vec{100, 100}, Vec{-3, 2}, 2.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Direction(tc.from, tc.to, tc.speed)
			if math.Abs(d.Len()-tc.speed) > 1e-9 {
				t.Errorf("Direction length = %v, expected %v", d.Len(), tc.speed)
			}
			// Same heading as to - from
			cross := (tc.to.X-tc.from.X)*d.Y - (tc.to.Y-tc.from.Y)*d.X
			if math.Abs(cross) > 1e-9 {
				t.Errorf("Direction %v is not parallel to target", d)
			}
		})
	}

	if d := Direction(Vec{3, 3}, Vec{3, 3}, 10); d != (Vec{}) {
		t.Errorf("Direction for coincident points = %v, expected zero", d)
	}
}
