package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		a, b     int
		min, max int
	}{
		{5, 10, 5, 10},
		{10, 5, 5, 10},
		{-3, 0, -3, 0},
		{7, 7, 7, 7},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.min {
			t.Errorf("Min(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.min)
		}
		if got := Max(tc.a, tc.b); got != tc.max {
			t.Errorf("Max(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.max)
		}
	}
}
