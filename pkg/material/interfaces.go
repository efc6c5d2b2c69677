package material

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
)

// Material decides how a ray continues after striking a surface.
// The set of materials is closed: Lambertian, Metal and Dielectric.
type Material interface {
	// Scatter returns the outgoing ray and its attenuation.
	// The bool is false when the material absorbs the ray.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	sealed()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It is read-only to materials and only lives for a single Scatter call.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward-facing unit surface normal
	T        float64   // Parameter t along the ray
	Time     float64   // Time stamp of the ray that produced the hit
	UV       core.Vec2 // Surface coordinates, (0,0) when the surface has none
	Material Material  // Material of the hit object
}
