package core

import (
	"math"
	"testing"
)

func vecClose(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("x × y = %v, want (0,0,1)", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("y × x = %v, want (0,0,-1)", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Zero vector should normalize to zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component large", NewVec3(1e-9, 1e-7, 0), false},
		{"unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, want %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestReflect_Involution(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 1, 0).Normalize(),
		NewVec3(-0.3, 0.2, 0.9).Normalize(),
	}
	vectors := []Vec3{
		NewVec3(1, -1, 0),
		NewVec3(0.2, 0.5, -3),
		NewVec3(-4, 0.1, 2),
	}

	for _, n := range normals {
		for _, v := range vectors {
			twice := Reflect(Reflect(v, n), n)
			if !vecClose(twice, v, 1e-12) {
				t.Errorf("Reflect twice about %v: got %v, want %v", n, twice, v)
			}
		}
	}
}

func TestReflect_Mirror(t *testing.T) {
	got := Reflect(NewVec3(1, -1, 0), NewVec3(0, 1, 0))
	if !vecClose(got, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}

func TestRefract_UnitRatioIsStraight(t *testing.T) {
	n := NewVec3(0, 1, 0)
	for _, dir := range []Vec3{
		NewVec3(1, -1, 0).Normalize(),
		NewVec3(0, -1, 0),
		NewVec3(0.3, -0.8, 0.5).Normalize(),
	} {
		got := Refract(dir, n, 1.0)
		if !vecClose(got, dir, 1e-9) {
			t.Errorf("Refract(%v) with ratio 1 = %v, want unchanged", dir, got)
		}
	}
}

func TestRefract_BendsTowardNormal(t *testing.T) {
	n := NewVec3(0, 1, 0)
	in := NewVec3(1, -1, 0).Normalize()
	out := Refract(in, n, 1.0/1.5)

	// Snell: sin(out) = sin(in) / 1.5
	sinIn := math.Abs(in.X)
	sinOut := math.Abs(out.X) / out.Length()
	if math.Abs(sinOut-sinIn/1.5) > 1e-9 {
		t.Errorf("Expected sin(out)=%f, got %f", sinIn/1.5, sinOut)
	}
	if out.Y >= 0 {
		t.Errorf("Refracted ray should continue downward, got %v", out)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 2, 3), NewVec3(0, 0, -2), 0.25)
	if got := ray.At(1.5); got != NewVec3(1, 2, 0) {
		t.Errorf("At(1.5) = %v, want (1,2,0)", got)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
}
