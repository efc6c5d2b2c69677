package material

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction relative to air (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter picks exactly one of reflection or refraction, weighted by the
// Schlick reflectance. Dielectrics always scatter and never tint.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	direction := rayIn.Direction
	reflected := core.Reflect(direction, hit.Normal)

	// Determine if we're entering or leaving the material
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dirDotNormal := direction.Dot(hit.Normal); dirDotNormal > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotNormal / direction.Length()
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / direction.Length()
	}

	// Total internal reflection forces a reflection
	reflectProbability := 1.0
	refracted, canRefract := core.Refract(direction, outwardNormal, niOverNt)
	if canRefract {
		reflectProbability = core.Schlick(cosine, d.RefractiveIndex)
	}

	scatteredDirection := refracted
	if sampler.Get1D() < reflectProbability {
		scatteredDirection = reflected
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, scatteredDirection, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

func (d *Dielectric) sealed() {}
