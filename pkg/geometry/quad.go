package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3   // One corner of the quad
	U      core.Vec3   // First edge vector
	V      core.Vec3   // Second edge vector
	Normal core.Vec3   // Unit normal (U × V normalized)
	D      float64     // Plane equation constant: n·p = D
	W      core.Vec3   // n / (n·(U × V)), used for planar coordinates
	Shader core.Shader // Shader of the quad
	bbox   core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, shader core.Shader) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	// Both diagonals so that the box covers all four vertices
	diag1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diag2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(corner),
		W:      normal.Multiply(1.0 / normal.Dot(cross)),
		Shader: shader,
		bbox:   diag1.Union(diag2),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	alpha, beta := q.PlanarCoordinates(hitPoint)

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:      t,
		Point:  hitPoint,
		UV:     core.NewVec2(alpha, beta),
		Shader: q.Shader,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// PlanarCoordinates expresses a point on the quad's plane as Corner + alpha·U + beta·V
func (q *Quad) PlanarCoordinates(point core.Vec3) (alpha, beta float64) {
	qp := point.Subtract(q.Corner)
	alpha = q.W.Dot(qp.Cross(q.V))
	beta = q.W.Dot(q.U.Cross(qp))
	return alpha, beta
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
