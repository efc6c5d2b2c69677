package scene

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/geometry"
	"github.com/df07/go-scatter-raytracer/pkg/material"
	"github.com/df07/go-scatter-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	World          *geometry.HittableList // Objects in the scene
	TopColor       core.Vec3              // Sky color straight up
	BottomColor    core.Vec3              // Sky color straight down
	SamplingConfig renderer.SamplingConfig
}

// NewScene creates an empty scene with the standard blue sky gradient
func NewScene(camera *renderer.Camera, config renderer.SamplingConfig) *Scene {
	return &Scene{
		Camera:         camera,
		World:          geometry.NewHittableList(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: config,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.World.Add(shapes...)
}

// Hit returns the closest intersection with any shape in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}

// BackgroundColor blends between BottomColor and TopColor by ray elevation
func (s *Scene) BackgroundColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.BottomColor.Multiply(1.0 - t).Add(s.TopColor.Multiply(t))
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetSamplingConfig returns the scene's recommended sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the total number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Shapes)
}
