package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: true,
		},
		{
			name: "touching edges do not overlap",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: false,
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(5, 5, 2, 2),
			want: true,
		},
		{
			name: "separate",
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(20, 20, 5, 5),
			want: false,
		},
		{
			name: "vertical separation",
			a:    NewRect(0, 0, 10, 5),
			b:    NewRect(0, 10, 10, 5),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},   // top-left corner
		{5, 7, true},   // inside far corner
		{6, 3, false},  // right edge is exclusive
		{2, 8, false},  // bottom edge is exclusive
		{1, 3, false},  // left of rect
		{0, 0, false},  // outside
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestVec2Ops(t *testing.T) {
	v := Vec(3, 4)

	if got := v.Len(); got != 5 {
		t.Errorf("Len() = %v, want 5", got)
	}

	sum := v.Add(Vec(1, -1))
	if sum != (Vec2{X: 4, Y: 3}) {
		t.Errorf("Add = %v, want (4,3)", sum)
	}

	scaled := v.Scale(2)
	if scaled != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %v, want (6,8)", scaled)
	}

	n := v.Normalized()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, want 1", n.Len())
	}

	// Zero vector normalizes to zero, not NaN
	z := Vec2{}.Normalized()
	if z != (Vec2{}) {
		t.Errorf("zero Normalized = %v, want zero", z)
	}
}

func TestVec2ClampLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		max  float64
		want float64 // expected resulting length
	}{
		{"under cap unchanged", Vec(3, 0), 5, 3},
		{"over cap clamped", Vec(6, 8), 5, 5},
		{"exactly at cap", Vec(0, 5), 5, 5},
		{"zero vector", Vec2{}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLen(tt.max).Len()
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ClampLen(%v).Len() = %v, want %v", tt.max, got, tt.want)
			}
		})
	}
}

func TestClampHelpers(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %d", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5,0,1) = %v", got)
	}
}
