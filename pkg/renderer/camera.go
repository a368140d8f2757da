package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// CameraConfig contains the user-facing camera and sampling settings
type CameraConfig struct {
	AspectRatio     float64   // Image width over height
	Width           int       // Image width in pixels
	SamplesPerPixel int       // Samples taken for every pixel
	MaxDepth        int       // Maximum number of bounces per path
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Cone angle in degrees through each pixel; 0 disables depth of field
	FocusDistance   float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns a small square image looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// Camera generates rays for rendering
type Camera struct {
	config CameraConfig

	// derived by Initialize
	height           int
	pixelSampleScale float64
	center           core.Vec3
	pixel00          core.Vec3
	pixelDeltaU      core.Vec3
	pixelDeltaV      core.Vec3
	u, v, w          core.Vec3
	defocusDiskU     core.Vec3
	defocusDiskV     core.Vec3

	// rendering setup, see render.go
	integrator integrator.Integrator
	logger     core.Logger
	numWorkers int
	seed       int64
}

// NewCamera creates a camera and derives its viewing geometry from config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.Initialize()
	return c
}

// Config returns the camera's configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Initialize recomputes every derived field from the configuration
func (c *Camera) Initialize() {
	cfg := c.config

	c.height = int(float64(cfg.Width) / cfg.AspectRatio)
	if c.height < 1 {
		c.height = 1
	}
	c.pixelSampleScale = 1.0 / float64(cfg.SamplesPerPixel)

	c.center = cfg.LookFrom

	// Viewport dimensions at the focus plane
	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * (float64(cfg.Width) / float64(c.height))

	// Orthonormal camera basis
	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Viewport edges; V runs down the image
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Multiply(-viewportHeight)

	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(cfg.Width))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.height))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(degreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height derived from width and aspect ratio
func (c *Camera) Height() int {
	return c.height
}

// GetRay returns sample s of pixel (i, j): the pixel position is jittered by the
// blue-noise tile, the origin by the defocus disk, and the time is uniform in [0,1).
func (c *Camera) GetRay(i, j, s int, sampler core.Sampler) core.Ray {
	dx, dy := BlueNoiseOffset(i, j, s)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + dx)).
		Add(c.pixelDeltaV.Multiply(float64(j) + dy))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
