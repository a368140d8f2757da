package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Surface is anything a ray can hit: primitives, volumes, pose decorators and aggregates.
// Implementations are immutable once built and safe for concurrent Hit calls.
type Surface interface {
	// Hit returns the closest intersection with parameter inside rayT.
	// The sampler is only consumed by stochastic surfaces such as participating media.
	Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool)
	BoundingBox() AABB
}

// Shader decides what happens to light arriving at a surface point
type Shader interface {
	// Scatter returns the attenuation and outgoing ray, or false when the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)
	// Emitted returns the light emitted at the given texture coordinates and point
	Emitted(u, v float64, point Vec3) Vec3
}

// ColorSource provides spatially-varying colors for shaders
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv Vec2, point Vec3) Vec3
}

// ScatterResult contains the result of shader scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point     Vec3    // Point of intersection
	Normal    Vec3    // Unit surface normal, always facing against the incoming ray
	T         float64 // Parameter t along the ray
	UV        Vec2    // Surface texture coordinates
	FrontFace bool    // Whether ray hit the front face
	Shader    Shader  // Shader of the hit surface
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
