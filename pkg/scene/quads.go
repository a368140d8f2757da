package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuads creates five colored quads framing the view
func NewQuads(random *rand.Rand, logger core.Logger) *Scene {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewSurfaceList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	config := renderer.CameraConfig{
		AspectRatio:     1.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            80,
		LookFrom:        core.NewVec3(0, 0, 9),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		FocusDistance:   10,
	}
	return newScene("quads", world, config)
}

// NewSimpleLight lights the marble spheres with a glowing sphere and a rectangle
func NewSimpleLight(random *rand.Rand, logger core.Logger) *Scene {
	world := perlinSpheres(random)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	world.Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))
	world.Add(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))

	config := outdoorCamera()
	config.LookFrom = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)
	return newScene("simple-light", world, config).withLights()
}

// NewUVChecker maps a checkerboard image onto a sphere and a quad to inspect texture coordinates
func NewUVChecker(random *rand.Rand, logger core.Logger) *Scene {
	grid := material.NewTexturedLambertian(material.NewCheckerboardTexture(
		256, 128, 16, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.1, 0.1, 0.6)))

	world := geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(-1.2, 0, 0), 1, grid),
		geometry.NewQuad(core.NewVec3(0.4, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), grid),
	)

	config := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 50,
		MaxDepth:        10,
		VFov:            40,
		LookFrom:        core.NewVec3(0, 0, 6),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		FocusDistance:   10,
	}
	return newScene("uv-checker", world, config)
}
