package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere is a sphere whose center may move linearly over the shutter interval
type Sphere struct {
	Center core.Ray // Center at time 0 plus displacement reached at time 1
	Radius float64
	Shader core.Shader
	bbox   core.AABB
}

// NewSphere creates a stationary sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, shader core.Shader) *Sphere {
	radius = math.Max(radius, 0)
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center: core.NewRay(center, core.Vec3{}),
		Radius: radius,
		Shader: shader,
		bbox:   core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere moving from center0 at time 0 to center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, shader core.Shader) *Sphere {
	radius = math.Max(radius, 0)
	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(center0.Subtract(rvec), center0.Add(rvec))
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	return &Sphere{
		Center: core.NewRay(center0, center1.Subtract(center0)),
		Radius: radius,
		Shader: shader,
		bbox:   box0.Union(box1),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	center := s.Center.At(ray.Time)

	// Quadratic with h = d·(C-O): t = (h ± sqrt(h² - a·c)) / a
	oc := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root strictly inside the interval
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	hitRecord := &core.HitRecord{
		T:      root,
		Point:  point,
		UV:     SphereUV(outwardNormal),
		Shader: s.Shader,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere over the whole shutter interval
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// SphereUV maps a point on the unit sphere to texture coordinates.
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1.
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
