package scene

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/geometry"
	"github.com/df07/go-scatter-raytracer/pkg/material"
	"github.com/df07/go-scatter-raytracer/pkg/renderer"
)

// NewDefaultScene creates the classic scene: a diffuse sphere between a metal
// sphere and a hollow glass sphere, resting on a large diffuse ground sphere
func NewDefaultScene() *Scene {
	config := renderer.SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
	camera := renderer.NewCamera(90, float64(config.Width)/float64(config.Height))
	s := NewScene(camera, config)

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		// Hollow glass: the negative radius flips the inner normals
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	return s
}
