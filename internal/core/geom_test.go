package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add() = %v, expected (4, 6)", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub() = %v, expected (2, 2)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := a.Dist(V(0, 0)); got != 5 {
		t.Errorf("Dist() = %f, expected 5", got)
	}
}

func TestVecNorm(t *testing.T) {
	n := V(10, 0).Norm()
	if n != V(1, 0) {
		t.Errorf("Norm() = %v, expected (1, 0)", n)
	}

	diag := V(3, 4).Norm()
	if math.Abs(diag.Len()-1) > 1e-9 {
		t.Errorf("Norm() length = %f, expected 1", diag.Len())
	}

	if !V(0, 0).Norm().IsZero() {
		t.Error("Norm of zero vector should be zero")
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(V(100, 50), 20, 10)

	if b.Min != V(90, 45) || b.Max != V(110, 55) {
		t.Errorf("BoxAround() = %+v, expected min (90,45) max (110,55)", b)
	}
}

func TestBoxOverlapsX(t *testing.T) {
	b := BoxAround(V(100, 100), 20, 20) // x in [90, 110]

	tests := []struct {
		name        string
		left, right float64
		expected    bool
	}{
		{"overlapping", 100, 160, true},
		{"containing", 0, 200, true},
		{"touching left edge", 40, 90, false},
		{"touching right edge", 110, 170, false},
		{"far right", 200, 260, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.OverlapsX(tc.left, tc.right); got != tc.expected {
				t.Errorf("OverlapsX(%f, %f) = %v, expected %v", tc.left, tc.right, got, tc.expected)
			}
		})
	}
}

func TestBoxWithinY(t *testing.T) {
	b := BoxAround(V(100, 100), 20, 20) // y in [90, 110]

	tests := []struct {
		name        string
		top, bottom float64
		expected    bool
	}{
		{"inside", 50, 150, true},
		{"exact fit", 90, 110, true},
		{"pokes out top", 95, 150, false},
		{"pokes out bottom", 50, 105, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.WithinY(tc.top, tc.bottom); got != tc.expected {
				t.Errorf("WithinY(%f, %f) = %v, expected %v", tc.top, tc.bottom, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
