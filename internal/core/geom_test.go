package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
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
			name:     "adjacent edges do not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "empty rect never intersects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 0, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(4, 6, 10, 10)

	got := a.Intersection(b)
	want := NewRect(4, 6, 6, 4)
	if got != want {
		t.Errorf("Intersection() = %+v, expected %+v", got, want)
	}

	if !a.Intersection(NewRect(20, 20, 1, 1)).Empty() {
		t.Error("disjoint rects should have an empty intersection")
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(V(50, 40), 20, 10)
	if r.X != 40 || r.Y != 35 {
		t.Errorf("CenteredRect origin = (%v, %v), expected (40, 35)", r.X, r.Y)
	}
	if r.Center() != V(50, 40) {
		t.Errorf("Center() = %+v, expected (50, 40)", r.Center())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right edge (exclusive)", V(30, 25), false},
		{"outside left", V(5, 15), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVecNorm(t *testing.T) {
	n, ok := V(3, 4).Norm()
	if !ok {
		t.Fatal("Norm() of non-zero vector should succeed")
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Norm() = %+v, expected (0.6, 0.8)", n)
	}

	if _, ok := V(0, 0).Norm(); ok {
		t.Error("Norm() of zero vector should report no direction")
	}
}

func TestVecArithmetic(t *testing.T) {
	a, b := V(1, 2), V(3, 5)
	if a.Add(b) != V(4, 7) {
		t.Errorf("Add() = %+v", a.Add(b))
	}
	if b.Sub(a) != V(2, 3) {
		t.Errorf("Sub() = %+v", b.Sub(a))
	}
	if a.Scale(2) != V(2, 4) {
		t.Errorf("Scale() = %+v", a.Scale(2))
	}
	if d := V(0, 0).Dist(V(3, 4)); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 10)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-10) > 1e-9 {
		t.Errorf("FromAngle(pi/2, 10) = %+v, expected (0, 10)", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
