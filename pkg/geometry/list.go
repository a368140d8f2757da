package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// SurfaceList is an ordered collection of surfaces tested linearly
type SurfaceList struct {
	Surfaces []core.Surface
	bbox     core.AABB
}

// NewSurfaceList creates a list holding the given surfaces
func NewSurfaceList(surfaces ...core.Surface) *SurfaceList {
	list := &SurfaceList{bbox: core.EmptyAABB}
	for _, s := range surfaces {
		list.Add(s)
	}
	return list
}

// Add appends a surface and grows the list's bounding box
func (l *SurfaceList) Add(surface core.Surface) {
	l.Surfaces = append(l.Surfaces, surface)
	l.bbox = l.bbox.Union(surface.BoundingBox())
}

// Len returns the number of surfaces in the list
func (l *SurfaceList) Len() int {
	return len(l.Surfaces)
}

// Hit returns the closest hit among all surfaces
func (l *SurfaceList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := rayT.Max

	for _, surface := range l.Surfaces {
		if hit, ok := surface.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of every member's bounding box
func (l *SurfaceList) BoundingBox() core.AABB {
	return l.bbox
}
