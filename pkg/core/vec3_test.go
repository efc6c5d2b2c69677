package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if a.Dot(b) != 12 {
		t.Errorf("Expected dot product 12, got %f", a.Dot(b))
	}
}

func TestVec3_ValueSemantics(t *testing.T) {
	a := NewVec3(1, 1, 1)
	_ = a.Add(NewVec3(1, 2, 3))
	_ = a.Multiply(10)

	if !a.Equals(NewVec3(1, 1, 1)) {
		t.Errorf("Arithmetic should not modify the receiver, got %v", a)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	unit := v.Normalize()

	if math.Abs(unit.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}
	if unit.Subtract(NewVec3(0.6, 0, 0.8)).Length() > 1e-12 {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", unit)
	}
}

func TestVec3_NormalizeZeroIsNotRepaired(t *testing.T) {
	unit := NewVec3(0, 0, 0).Normalize()
	if !math.IsNaN(unit.X) {
		t.Errorf("Zero vector should not be silently turned into a direction, got %v", unit)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 0, 0), NewVec3(0, 2, 0), 0.25)

	if !ray.At(1.5).Equals(NewVec3(1, 3, 0)) {
		t.Errorf("Expected (1, 3, 0), got %v", ray.At(1.5))
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
	if NewRay(ray.Origin, ray.Direction).Time != 0 {
		t.Error("NewRay should start at time zero")
	}
}

func TestVec3_Luminance(t *testing.T) {
	white := NewVec3(1, 1, 1)
	if math.Abs(white.Luminance()-1.0) > 1e-9 {
		t.Errorf("Expected white luminance 1.0, got %f", white.Luminance())
	}
}
