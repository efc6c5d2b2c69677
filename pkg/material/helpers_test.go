package material

import (
	"github.com/df07/go-scatter-raytracer/pkg/core"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value, f.value, f.value)
}

// forbiddenSampler fails if any randomness is drawn
type forbiddenSampler struct{}

func (forbiddenSampler) Get1D() float64   { panic("unexpected random draw") }
func (forbiddenSampler) Get2D() core.Vec2 { panic("unexpected random draw") }
func (forbiddenSampler) Get3D() core.Vec3 { panic("unexpected random draw") }

// positionTexture encodes its inputs in the returned color and remembers them
type positionTexture struct {
	lastUV    core.Vec2
	lastPoint core.Vec3
	calls     int
}

func (p *positionTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	p.lastUV = uv
	p.lastPoint = point
	p.calls++
	return core.NewVec3(uv.X, uv.Y, point.Z)
}
