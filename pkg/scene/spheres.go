package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// outdoorCamera is the wide shot shared by the sphere scenes
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// NewBouncingSpheres creates the classic field of small random spheres. Diffuse
// ones bounce upward during the shutter interval.
func NewBouncingSpheres(random *rand.Rand, logger core.Logger) *Scene {
	sampler := core.NewRandomSampler(random)
	world := geometry.NewSurfaceList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(sampler, 0, 1).MultiplyVec(randomColor(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomInRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(sampler, 0.5, 1)
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	config := outdoorCamera()
	config.DefocusAngle = 0.6
	return newScene("bouncing-spheres", world, config)
}

// NewCheckeredSpheres creates two large spheres cut by the same 3D checker pattern
func NewCheckeredSpheres(random *rand.Rand, logger core.Logger) *Scene {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	world := geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return newScene("checkered-spheres", world, outdoorCamera())
}

// NewEarth creates a single globe. A missing earthmap.jpg renders magenta.
func NewEarth(random *rand.Rand, logger core.Logger) *Scene {
	earth := material.NewTexturedLambertian(loaders.LoadTexture("earthmap.jpg", logger))
	world := geometry.NewSurfaceList(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth))

	config := outdoorCamera()
	config.LookFrom = core.NewVec3(0, 0, 12)
	return newScene("earth", world, config)
}

// perlinSpheres builds the ground and small marble sphere shared by two scenes
func perlinSpheres(random *rand.Rand) *geometry.SurfaceList {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	return geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
}

// NewPerlinSpheres creates marble-textured spheres
func NewPerlinSpheres(random *rand.Rand, logger core.Logger) *Scene {
	return newScene("perlin-spheres", perlinSpheres(random), outdoorCamera())
}
