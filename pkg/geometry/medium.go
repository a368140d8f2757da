package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryEpsilon separates the entry hit from the exit hit search
const boundaryEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium filling a closed boundary surface
type ConstantMedium struct {
	Boundary      core.Surface
	NegInvDensity float64
	PhaseFunction core.Shader
}

// NewConstantMedium fills boundary with a medium of the given density scattering with albedo
func NewConstantMedium(boundary core.Surface, density float64, albedo core.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewConstantMediumColor fills boundary with a medium of a single color
func NewConstantMediumColor(boundary core.Surface, density float64, color core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(color))
}

// Hit samples a scattering event along the ray's path through the medium.
// The boundary must be closed and convex; the sampler provides the free-flight distance.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+boundaryEpsilon, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.NegInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Shader:    m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's bounding box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
