package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode is an interior node of the Bounding Volume Hierarchy.
// Children are either other nodes or leaf surfaces.
type BVHNode struct {
	Box   core.AABB
	Left  core.Surface
	Right core.Surface
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root core.Surface // nil for an empty hierarchy
}

// NewBVH constructs a BVH from a slice of surfaces
func NewBVH(surfaces []core.Surface) *BVH {
	if len(surfaces) == 0 {
		return &BVH{}
	}

	// Sorting happens in place, so work on a copy of the caller's slice
	surfacesCopy := make([]core.Surface, len(surfaces))
	copy(surfacesCopy, surfaces)

	return &BVH{Root: buildBVH(surfacesCopy)}
}

// NewBVHFromList constructs a BVH over the members of a list
func NewBVHFromList(list *SurfaceList) *BVH {
	return NewBVH(list.Surfaces)
}

// buildBVH recursively builds the hierarchy by median split along the longest axis
func buildBVH(surfaces []core.Surface) *BVHNode {
	boundingBox := core.EmptyAABB
	for _, s := range surfaces {
		boundingBox = boundingBox.Union(s.BoundingBox())
	}

	switch len(surfaces) {
	case 1:
		return newBVHNode(surfaces[0], surfaces[0])
	case 2:
		return newBVHNode(surfaces[0], surfaces[1])
	}

	axis := boundingBox.LongestAxis()
	sortSurfacesByAxis(surfaces, axis)

	mid := len(surfaces) / 2
	return newBVHNode(buildBVH(surfaces[:mid]), buildBVH(surfaces[mid:]))
}

func newBVHNode(left, right core.Surface) *BVHNode {
	return &BVHNode{
		Box:   left.BoundingBox().Union(right.BoundingBox()),
		Left:  left,
		Right: right,
	}
}

// sortSurfacesByAxis stable-sorts surfaces by the minimum of their bounding box along axis
func sortSurfacesByAxis(surfaces []core.Surface, axis int) {
	sort.SliceStable(surfaces, func(i, j int) bool {
		return surfaces[i].BoundingBox().AxisInterval(axis).Min < surfaces[j].BoundingBox().AxisInterval(axis).Min
	})
}

// Hit tests if a ray intersects any surface in the BVH
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.Hit(ray, rayT, sampler)
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.EmptyAABB
	}
	return bvh.Root.BoundingBox()
}

// Hit returns the closest hit below this node. The right child is only
// searched up to the left child's hit, so the left child wins ties.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		if !hitLeft || rightHit.T < leftHit.T {
			return rightHit, true
		}
	}

	return leftHit, hitLeft
}

// BoundingBox returns the union of both children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // Interior nodes
	Leaves   int // Leaf references, counting duplicated single children twice
	MaxDepth int
}

// Stats walks the hierarchy and returns its structural statistics
func (bvh *BVH) Stats() BVHStats {
	var stats BVHStats
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(surface core.Surface, depth int, stats *BVHStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node, ok := surface.(*BVHNode)
	if !ok {
		stats.Leaves++
		return
	}

	stats.Nodes++
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
