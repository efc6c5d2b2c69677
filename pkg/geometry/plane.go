package geometry

import (
	"math"

	"github.com/df07/go-scatter-raytracer/pkg/core"
	"github.com/df07/go-scatter-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal, reported as the outward normal of every hit
	UAxis    core.Vec3 // Tangent direction of increasing U
	VAxis    core.Vec3 // Tangent direction of increasing V
	Material material.Material
}

// NewPlane creates a new plane. UV is the hit point's offset from point
// measured along a tangent frame, in world units.
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	n := normal.Normalize()

	// Any axis not parallel to the normal seeds the tangent frame
	axis := core.NewVec3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		axis = core.NewVec3(0, 1, 0)
	}
	uAxis := axis.Cross(n).Normalize()
	vAxis := n.Cross(uAxis)

	return &Plane{
		Point:    point,
		Normal:   n,
		UAxis:    uAxis,
		VAxis:    vAxis,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	offset := hitPoint.Subtract(p.Point)

	return &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Normal:   p.Normal,
		Time:     ray.Time,
		UV:       core.NewVec2(offset.Dot(p.UAxis), offset.Dot(p.VAxis)),
		Material: p.Material,
	}, true
}
