package material

import "github.com/df07/go-pathtracer/pkg/core"

// ColorSource provides spatially-varying colors for shaders
type ColorSource = core.ColorSource

// nonEmissive is embedded by shaders that reflect light but never emit it
type nonEmissive struct{}

// Emitted returns black
func (nonEmissive) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
