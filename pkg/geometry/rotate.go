package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-pathtracer/pkg/core"
)

var yAxis = r3.Vec{X: 0, Y: 1, Z: 0}

// RotateY rotates a surface about the world Y axis
type RotateY struct {
	Object  core.Surface
	Degrees float64
	toWorld r3.Rotation // object space to world space, +θ
	toLocal r3.Rotation // world space to object space, -θ
	bbox    core.AABB
}

// NewRotateY wraps object so that it appears rotated by angle degrees about Y
func NewRotateY(object core.Surface, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:  object,
		Degrees: angle,
		toWorld: r3.NewRotation(radians, yAxis),
		toLocal: r3.NewRotation(-radians, yAxis),
	}

	corners := object.BoundingBox().Corners()
	rotated := make([]core.Vec3, len(corners))
	for i, corner := range corners {
		rotated[i] = r.ObjectToWorld(corner)
	}
	r.bbox = core.NewAABBFromPoints(rotated...)

	return r
}

// ObjectToWorld rotates a vector from object space into world space
func (r *RotateY) ObjectToWorld(v core.Vec3) core.Vec3 {
	return fromR3(r.toWorld.Rotate(toR3(v)))
}

// WorldToObject rotates a vector from world space into object space
func (r *RotateY) WorldToObject(v core.Vec3) core.Vec3 {
	return fromR3(r.toLocal.Rotate(toR3(v)))
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	localRay := core.NewRayAtTime(r.WorldToObject(ray.Origin), r.WorldToObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(localRay, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.ObjectToWorld(hit.Point)
	hit.Normal = r.ObjectToWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box of the 8 rotated corners of the child's box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

func toR3(v core.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
