package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, world core.Surface, sampler core.Sampler, depth int) core.Vec3
}

// Background gives the radiance of rays that escape the scene
type Background interface {
	Evaluate(ray core.Ray) core.Vec3
}

// GradientBackground blends vertically from Bottom (looking down) to Top (looking up)
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewSkyBackground returns the default white-to-blue sky
func NewSkyBackground() *GradientBackground {
	return &GradientBackground{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Evaluate lerps on the Y component of the unit direction
func (g *GradientBackground) Evaluate(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return g.Bottom.Multiply(1.0 - a).Add(g.Top.Multiply(a))
}

// SolidBackground returns one color in every direction
type SolidBackground struct {
	Color core.Vec3
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

// Evaluate returns the background color
func (s *SolidBackground) Evaluate(ray core.Ray) core.Vec3 {
	return s.Color
}
