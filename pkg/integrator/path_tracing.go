package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they leave
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	Background Background
	// IncludeEmission adds each hit's Emitted radiance to the estimate.
	// Off by default, in which case emitters behave as pure absorbers.
	IncludeEmission bool
}

// NewPathTracingIntegrator creates an integrator with the sky background and emission off
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: NewSkyBackground()}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Surface, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.Background.Evaluate(ray)
	}

	var colorEmitted core.Vec3
	if pt.IncludeEmission {
		colorEmitted = hit.Shader.Emitted(hit.UV.X, hit.UV.Y, hit.Point)
	}

	scatter, didScatter := hit.Shader.Scatter(ray, hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, sampler, depth-1))
	return colorEmitted.Add(colorScattered)
}
