package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.0001
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b Float
		t    float32
		want Float
	}{
		{"start", 0, 10, 0, 0},
		{"mid", 0, 10, 0.5, 5},
		{"end", 0, 10, 1, 10},
		{"negative", 4, -4, 0.25, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); !approx(float32(got), float32(tt.want)) {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpVec3(t *testing.T) {
	got := Lerp(Vec3{0, 0, 0}, Vec3{10, 20, 30}, 0.5)
	want := Vec3{5, 10, 15}
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Z, want.Z) {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
}

func TestBezierEndpoints(t *testing.T) {
	p0, p1, p2, p3 := Float(0), Float(5), Float(-5), Float(10)
	if got := Bezier(p0, p1, p2, p3, 0); !approx(float32(got), 0) {
		t.Errorf("Bezier at 0 = %v, want 0", got)
	}
	if got := Bezier(p0, p1, p2, p3, 1); !approx(float32(got), 10) {
		t.Errorf("Bezier at 1 = %v, want 10", got)
	}
}

func TestBezierStraightLine(t *testing.T) {
	// Control points on the line make Bezier degenerate to Lerp.
	got := Bezier(Float(0), Float(10.0/3), Float(20.0/3), Float(10), 0.5)
	if !approx(float32(got), 5) {
		t.Errorf("Bezier midpoint = %v, want 5", got)
	}
}

func TestHermite(t *testing.T) {
	// Zero tangents give a smoothstep.
	if got := Hermite(Float(0), Float(0), Float(0), Float(10), 0.5); !approx(float32(got), 5) {
		t.Errorf("Hermite midpoint = %v, want 5", got)
	}
	if got := Hermite(Float(0), Float(0), Float(0), Float(10), 0.25); !approx(float32(got), 1.5625) {
		t.Errorf("Hermite at 0.25 = %v, want 1.5625", got)
	}
	if got := Hermite(Float(2), Float(7), Float(-3), Float(8), 1); !approx(float32(got), 8) {
		t.Errorf("Hermite at 1 = %v, want 8", got)
	}
}
