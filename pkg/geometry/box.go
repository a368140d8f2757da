package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewBox creates the closed axis-aligned box spanned by two opposite corners.
// The faces are six quads with outward normals, sharing one shader.
func NewBox(a, b core.Vec3, shader core.Shader) *SurfaceList {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides := NewSurfaceList()
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, shader))          // front
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, shader)) // right
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, shader)) // back
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, shader))          // left
	sides.Add(NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), shader)) // top
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, shader))          // bottom

	return sides
}
