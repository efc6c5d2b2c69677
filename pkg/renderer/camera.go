package renderer

import (
	"math"

	"github.com/df07/go-scatter-raytracer/pkg/core"
)

// Camera generates rays from a fixed origin through a rectangular viewport
// one unit down the -Z axis
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	time0, time1    float64 // Shutter open/close times
}

// NewCamera creates a camera from a vertical field of view (degrees, top to
// bottom) and a width/height aspect ratio
func NewCamera(vfov, aspect float64) *Camera {
	return NewCameraWithShutter(vfov, aspect, 0, 0)
}

// NewCameraWithShutter creates a camera whose sampled rays carry a time in
// [time0, time1), for motion blur
func NewCameraWithShutter(vfov, aspect, time0, time1 float64) *Camera {
	halfHeight := math.Tan(vfov * math.Pi / 360)
	halfWidth := aspect * halfHeight

	return &Camera{
		origin:          core.NewVec3(0, 0, 0),
		lowerLeftCorner: core.NewVec3(-halfWidth, -halfHeight, -1),
		horizontal:      core.NewVec3(2*halfWidth, 0, 0),
		vertical:        core.NewVec3(0, 2*halfHeight, 0),
		time0:           time0,
		time1:           time1,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1.
// (0,0) is the lower-left corner. The ray is stamped with the shutter open time.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRayAtTime(c.origin, direction, c.time0)
}

// SampleRay is GetRay with a time drawn uniformly from the shutter interval
func (c *Camera) SampleRay(u, v float64, sampler core.Sampler) core.Ray {
	ray := c.GetRay(u, v)
	if c.time1 > c.time0 {
		ray.Time = c.time0 + sampler.Get1D()*(c.time1-c.time0)
	}
	return ray
}
