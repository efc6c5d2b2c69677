package scene

import (
	"fmt"

	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/geometry"
	"github.com/df07/go-scatter-raytracer/pkg/loaders"
	"github.com/df07/go-scatter-raytracer/pkg/material"
	"github.com/df07/go-scatter-raytracer/pkg/renderer"
)

// NewTextureScene creates a scene demonstrating texture mapping on a ground
// plane, spheres, and a backdrop quad.
// texturePath names a PNG or JPEG wrapped onto the center sphere; when empty a
// procedural checkerboard image is used instead.
func NewTextureScene(texturePath string) (*Scene, error) {
	config := renderer.SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
	camera := renderer.NewCamera(90, float64(config.Width)/float64(config.Height))
	s := NewScene(camera, config)

	var centerTexture material.ColorSource
	if texturePath != "" {
		imageTexture, err := loaders.LoadImageTexture(texturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
		centerTexture = imageTexture
	} else {
		centerTexture = material.NewCheckerboardTexture(256, 128, 16,
			core.NewVec3(0.9, 0.9, 0.9),
			core.NewVec3(0.8, 0.1, 0.1),
		)
	}

	groundChecker := material.NewCheckerTexture(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		10,
	)
	skyGradient := material.NewGradientTexture(64, 64,
		core.NewVec3(0.9, 0.7, 0.3),
		core.NewVec3(0.3, 0.3, 0.8),
	)

	s.Add(
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), material.NewTexturedLambertian(groundChecker)),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewTexturedLambertian(centerTexture)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewTexturedMetal(skyGradient, 0.1)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		// Backdrop showing the same image flat, mapped once across the quad
		geometry.NewQuad(
			core.NewVec3(-2, -0.5, -3), core.NewVec3(4, 0, 0), core.NewVec3(0, 2, 0),
			material.NewTexturedLambertian(centerTexture),
		),
	)

	return s, nil
}
