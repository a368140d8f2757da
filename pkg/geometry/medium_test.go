package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestConstantMedium_DenseScattersAtEntry(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	medium := NewConstantMediumColor(boundary, 1e9, core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewSeededSampler(1)

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	hit, ok := medium.Hit(ray, hitInterval, sampler)
	if !ok {
		t.Fatal("Expected a scattering event in a dense medium")
	}
	if math.Abs(hit.T-4) > 1e-6 {
		t.Errorf("Expected event just past the boundary at t=4, got %f", hit.T)
	}
	if hit.Normal != core.NewVec3(1, 0, 0) || !hit.FrontFace {
		t.Errorf("Volume events use normal (1,0,0) and front face, got %v %t", hit.Normal, hit.FrontFace)
	}
	if _, isotropic := hit.Shader.(*material.Isotropic); !isotropic {
		t.Errorf("Expected isotropic phase function, got %T", hit.Shader)
	}
}

func TestConstantMedium_ThinPassesThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	medium := NewConstantMediumColor(boundary, 1e-9, core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(2)

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	for i := 0; i < 100; i++ {
		if _, ok := medium.Hit(ray, hitInterval, sampler); ok {
			t.Fatal("Expected a near-vacuum medium to let the ray through")
		}
	}
}

func TestConstantMedium_Misses(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	medium := NewConstantMediumColor(boundary, 1e9, core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(3)

	tests := []struct {
		name string
		ray  core.Ray
		rayT core.Interval
	}{
		{"misses boundary", core.NewRay(core.NewVec3(-5, 3, 0), core.NewVec3(1, 0, 0)), hitInterval},
		{"medium beyond interval", core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)), core.NewInterval(0.001, 2)},
		{"medium behind origin", core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(1, 0, 0)), hitInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := medium.Hit(tt.ray, tt.rayT, sampler); ok {
				t.Errorf("Expected no event, got t=%f", hit.T)
			}
		})
	}
}

func TestConstantMedium_OriginInside(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	medium := NewConstantMediumColor(boundary, 1e9, core.NewVec3(1, 1, 1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit, ok := medium.Hit(ray, hitInterval, core.NewSeededSampler(4))
	if !ok {
		t.Fatal("Expected an event for a ray starting inside a dense medium")
	}
	if math.Abs(hit.T-hitInterval.Min) > 1e-6 {
		t.Errorf("Expected event at the interval start, got %f", hit.T)
	}
}

func TestConstantMedium_MeanFreePath(t *testing.T) {
	const density = 0.5
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1000, nil)
	medium := NewConstantMediumColor(boundary, density, core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(5)

	// Non-unit direction: distances are measured along the ray, not in t
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0))

	const n = 5000
	sum := 0.0
	for i := 0; i < n; i++ {
		hit, ok := medium.Hit(ray, core.NewInterval(0, math.Inf(1)), sampler)
		if !ok {
			t.Fatal("A 1000-unit medium should always scatter")
		}
		sum += hit.Point.Length()
	}

	if mean := sum / n; math.Abs(mean-1/density) > 0.15 {
		t.Errorf("Mean free path %f, want about %f", mean, 1/density)
	}
}
