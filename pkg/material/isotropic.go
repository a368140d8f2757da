package material

import "github.com/df07/go-pathtracer/pkg/core"

// Isotropic is the phase function of a participating medium: it scatters uniformly in all directions
type Isotropic struct {
	nonEmissive
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with the given albedo
func NewIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
