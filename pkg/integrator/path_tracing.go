package integrator

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
)

// shadowEpsilon keeps scattered rays from re-hitting their own surface
const shadowEpsilon = 0.001

// maxDistance bounds every intersection query
const maxDistance = 1000.0

// PathTracingIntegrator follows a single scattered ray per bounce and
// multiplies the attenuations together until the path escapes, is absorbed,
// or reaches the depth limit
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	return pt.rayColorRecursive(ray, world, sampler, pt.maxDepth)
}

// rayColorRecursive returns the light arriving along r with depth bounces left
func (pt *PathTracingIntegrator) rayColorRecursive(r core.Ray, world World, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(r, shadowEpsilon, maxDistance)
	if !isHit {
		return world.BackgroundColor(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColorRecursive(scatter.Scattered, world, sampler, depth-1))
}
