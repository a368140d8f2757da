package core

// aabbMinThickness is the smallest extent any AABB axis may have.
// Flat primitives (quads) would otherwise produce zero-width slabs.
const aabbMinThickness = 0.0001

// AABB represents an axis-aligned bounding box as three per-axis intervals
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from per-axis intervals, padding thin axes
func NewAABB(x, y, z Interval) AABB {
	aabb := AABB{X: x, Y: y, Z: z}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	aabb := AABB{
		X: Interval{Min: points[0].X, Max: points[0].X},
		Y: Interval{Min: points[0].Y, Max: points[0].Y},
		Z: Interval{Min: points[0].Z, Max: points[0].Z},
	}
	for _, p := range points[1:] {
		aabb.X = aabb.X.Union(Interval{Min: p.X, Max: p.X})
		aabb.Y = aabb.Y.Union(Interval{Min: p.Y, Max: p.Y})
		aabb.Z = aabb.Z.Union(Interval{Min: p.Z, Max: p.Z})
	}
	aabb.padToMinimums()
	return aabb
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < aabbMinThickness {
		aabb.X = aabb.X.Expand(aabbMinThickness)
	}
	if aabb.Y.Size() < aabbMinThickness {
		aabb.Y = aabb.Y.Expand(aabbMinThickness)
	}
	if aabb.Z.Size() < aabbMinThickness {
		aabb.Z = aabb.Z.Expand(aabbMinThickness)
	}
}

// AxisInterval returns the interval for axis 0=X, 1=Y, 2=Z
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return Vec3{aabb.X.Min, aabb.Y.Min, aabb.Z.Min}
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return Vec3{aabb.X.Max, aabb.Y.Max, aabb.Z.Max}
}

// Hit tests if a ray intersects the box within rayT using the slab method.
// A zero direction component yields signed infinities. A NaN bound (origin on
// the slab plane) fails every comparison and leaves the running interval as is.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Translate returns the AABB shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Shift(offset.X),
		Y: aabb.Y.Shift(offset.Y),
		Z: aabb.Z.Shift(offset.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x, y, z := aabb.X.Min, aabb.Y.Min, aabb.Z.Min
		if i&1 != 0 {
			x = aabb.X.Max
		}
		if i&2 != 0 {
			y = aabb.Y.Max
		}
		if i&4 != 0 {
			z = aabb.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties go to the earlier axis.
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x >= y && x >= z {
		return 0
	}
	if y >= z {
		return 1
	}
	return 2
}
