package geometry

import (
	"math"

	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors.
// The outward normal is U × V, and UV runs from (0,0) at the corner to (1,1)
// at corner + U + V.
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal (U × V normalized)
	D        float64   // Plane equation constant: normal · x = D
	W        core.Vec3 // Cached n / (n · (U × V)) for the planar coordinates
	Material material.Material
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		D:        normal.Dot(corner),
		W:        cross.Multiply(1.0 / cross.Dot(cross)),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the quad
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Planar coordinates of the hit along U and V
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Normal:   q.Normal,
		Time:     ray.Time,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}, true
}
