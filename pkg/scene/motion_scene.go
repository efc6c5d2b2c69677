package scene

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/geometry"
	"github.com/df07/go-scatter-raytracer/pkg/material"
	"github.com/df07/go-scatter-raytracer/pkg/renderer"
)

// NewMotionScene creates a scene with spheres moving during the shutter interval
func NewMotionScene() *Scene {
	config := renderer.SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 200, // Motion blur needs extra time samples
		MaxDepth:        50,
	}
	camera := renderer.NewCameraWithShutter(90, float64(config.Width)/float64(config.Height), 0.0, 1.0)
	s := NewScene(camera, config)

	ground := material.NewTexturedLambertian(material.NewCheckerTexture(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		10,
	))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		// Falls toward the ground
		geometry.NewMovingSphere(
			core.NewVec3(-1, 0.3, -1), core.NewVec3(-1, 0, -1), 0.0, 1.0, 0.5,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)),
		),
		// Slides sideways
		geometry.NewMovingSphere(
			core.NewVec3(0, 0, -1.5), core.NewVec3(0.4, 0, -1.5), 0.0, 1.0, 0.5,
			material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0),
		),
		// Static reference
		geometry.NewSphere(core.NewVec3(1.1, 0, -1), 0.5, material.NewDielectric(1.5)),
	)

	return s
}
