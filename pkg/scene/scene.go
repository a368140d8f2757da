package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name            string
	Objects         *geometry.SurfaceList // Top-level objects before acceleration
	World           *geometry.BVH         // Acceleration structure built over Objects
	CameraConfig    renderer.CameraConfig
	Background      integrator.Background
	IncludeEmission bool // Whether emitters contribute light; set by scenes that contain lights
}

// Builder assembles a scene. Random placement and noise draw from random only.
type Builder func(random *rand.Rand, logger core.Logger) *Scene

// Info describes a named scene
type Info struct {
	Name        string
	Description string
	Build       Builder
}

var registry = map[string]Info{}

func register(name, description string, build Builder) {
	registry[name] = Info{Name: name, Description: description, Build: build}
}

func init() {
	register("bouncing-spheres", "Random small spheres, some moving, around three large ones", NewBouncingSpheres)
	register("checkered-spheres", "Two spheres sharing a spatial checker texture", NewCheckeredSpheres)
	register("earth", "A globe textured with earthmap.jpg", NewEarth)
	register("perlin-spheres", "Marble noise on a ground sphere and a small sphere", NewPerlinSpheres)
	register("quads", "Five colored quads facing the camera", NewQuads)
	register("simple-light", "Perlin spheres lit by a sphere and a quad light", NewSimpleLight)
	register("cornell-box", "Cornell box with two rotated boxes", NewCornellBox)
	register("cornell-smoke", "Cornell box with smoke and fog blocks", NewCornellSmoke)
	register("final-scene", "Everything: box field, volumes, textures, moving sphere", NewFinalScene)
	register("uv-checker", "Checkerboard image on a sphere and a quad for inspecting UVs", NewUVChecker)
}

// Names returns every registered scene name in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the scene registered under name
func Lookup(name string) (Info, error) {
	info, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return info, nil
}

// Build assembles the named scene with a random source seeded from seed
func Build(name string, seed int64, logger core.Logger) (*Scene, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return info.Build(rand.New(rand.NewSource(seed)), logger), nil
}

// newScene wraps objects in a BVH and fills in the sky background
func newScene(name string, objects *geometry.SurfaceList, config renderer.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		Objects:      objects,
		World:        geometry.NewBVHFromList(objects),
		CameraConfig: config,
		Background:   integrator.NewSkyBackground(),
	}
}

// withLights switches a scene to a black background with emitters enabled
func (s *Scene) withLights() *Scene {
	s.Background = integrator.NewSolidBackground(core.Vec3{})
	s.IncludeEmission = true
	return s
}

// Integrator returns a path tracer configured with the scene's background and emission setting
func (s *Scene) Integrator() *integrator.PathTracingIntegrator {
	pt := integrator.NewPathTracingIntegrator()
	pt.Background = s.Background
	pt.IncludeEmission = s.IncludeEmission
	return pt
}

// Camera creates a camera for the scene using its integrator
func (s *Scene) Camera() *renderer.Camera {
	camera := renderer.NewCamera(s.CameraConfig)
	camera.SetIntegrator(s.Integrator())
	return camera
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Objects.Len()
}

// randomColor returns a color with every channel uniform in [min, max)
func randomColor(sampler core.Sampler, min, max float64) core.Vec3 {
	return core.RandomVec3InRange(sampler, min, max)
}
