package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), NewRect(5, 5, 5, 5)},
		{"adjacent", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersect(tc.b); got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
			if got := tc.b.Intersect(tc.a); got != tc.expected {
				t.Errorf("Intersect() (reversed) = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		expected   Rect
	}{
		{"brick on grid", 448, 64, 64, 32, NewRect(28, 2, 4, 1)},
		{"ball straddling cells", 627, 678, 16, 16, NewRect(39, 21, 2, 1)},
		{"tiny box keeps one cell", 10, 10, 0, 0, NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Scale(tc.x, tc.y, tc.w, tc.h, 16, 32)
			if got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
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

	if ClampF(-1.5, 0, 1) != 0 || ClampF(2.5, 0, 1) != 1 || ClampF(0.5, 0, 1) != 0.5 {
		t.Error("ClampF should restrict to [min, max]")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionClose)
	f.SetHeld(ActionLeft)

	if !f.IsHit(ActionClose) || !f.IsHeld(ActionClose) {
		t.Error("Press should mark the action hit and held")
	}
	if f.IsHit(ActionLeft) {
		t.Error("SetHeld should not mark the action hit")
	}

	clone := f.Clone()
	clear(f.Held)
	if !clone.IsHeld(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	zero.SetHit(ActionContinue)
	if !zero.IsHit(ActionContinue) {
		t.Error("zero-value frame should accept actions")
	}
}
