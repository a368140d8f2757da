package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	groundBoxesPerSide = 20
	groundBoxWidth     = 100.0
	foamSpheres        = 1000
)

// NewFinalScene combines every feature: a field of boxes, a moving sphere, glass,
// metal, a subsurface-looking glass ball, global mist, image and noise textures,
// and a rotated cluster of small spheres.
func NewFinalScene(random *rand.Rand, logger core.Logger) *Scene {
	sampler := core.NewRandomSampler(random)

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]core.Surface, 0, groundBoxesPerSide*groundBoxesPerSide)
	for i := 0; i < groundBoxesPerSide; i++ {
		for j := 0; j < groundBoxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*groundBoxWidth
			z0 := -1000.0 + float64(j)*groundBoxWidth
			y1 := core.RandomInRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+groundBoxWidth, y1, z0+groundBoxWidth),
				ground))
		}
	}

	world := geometry.NewSurfaceList(geometry.NewBVH(boxes))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center0, center1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := material.NewTexturedLambertian(loaders.LoadTexture("earthmap.jpg", logger))
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, earth))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(0.2, random))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	foam := make([]core.Surface, 0, foamSpheres)
	for i := 0; i < foamSpheres; i++ {
		foam = append(foam, geometry.NewSphere(core.RandomVec3InRange(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(foam), 15),
		core.NewVec3(-100, 270, 395)))

	config := renderer.CameraConfig{
		AspectRatio:     1.0,
		Width:           400,
		SamplesPerPixel: 250,
		MaxDepth:        40,
		VFov:            40,
		LookFrom:        core.NewVec3(478, 278, -600),
		LookAt:          core.NewVec3(278, 278, 0),
		Up:              core.NewVec3(0, 1, 0),
		FocusDistance:   10,
	}
	return newScene("final-scene", world, config).withLights()
}
