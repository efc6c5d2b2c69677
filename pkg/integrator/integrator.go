package integrator

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/material"
)

// World is what an integrator needs from a scene
type World interface {
	// Hit returns the closest intersection in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BackgroundColor returns the radiance carried by a ray that escapes the scene
	BackgroundColor(ray core.Ray) core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}
