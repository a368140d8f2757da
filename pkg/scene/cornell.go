package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// cornellSize is the side length of the Cornell box
const cornellSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		AspectRatio:     1.0,
		Width:           600,
		SamplesPerPixel: 200,
		MaxDepth:        50,
		VFov:            40,
		LookFrom:        core.NewVec3(278, 278, -800),
		LookAt:          core.NewVec3(278, 278, 0),
		Up:              core.NewVec3(0, 1, 0),
		FocusDistance:   10,
	}
}

// cornellWalls returns the five walls of the box without the ceiling light
func cornellWalls(white core.Shader) *geometry.SurfaceList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	s := cornellSize

	return geometry.NewSurfaceList(
		geometry.NewQuad(core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), red),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(s, 0, 0), core.NewVec3(0, 0, s), white),
		geometry.NewQuad(core.NewVec3(s, s, s), core.NewVec3(-s, 0, 0), core.NewVec3(0, 0, -s), white),
		geometry.NewQuad(core.NewVec3(0, 0, s), core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), white),
	)
}

// cornellBlocks returns the tall and short boxes, posed but not yet added
func cornellBlocks(shader core.Shader) (tall, short core.Surface) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), shader), 15),
		core.NewVec3(265, 0, 295))
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), shader), -18),
		core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellBox creates the Cornell box with two rotated diffuse blocks
func NewCornellBox(random *rand.Rand, logger core.Logger) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world := cornellWalls(white)
	world.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	return newScene("cornell-box", world, cornellCamera()).withLights()
}

// NewCornellSmoke replaces the blocks with dark smoke and white fog under a larger light
func NewCornellSmoke(random *rand.Rand, logger core.Logger) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	world := cornellWalls(white)
	world.Add(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)))

	return newScene("cornell-smoke", world, cornellCamera()).withLights()
}
