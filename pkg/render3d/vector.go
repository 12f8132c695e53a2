// Package render3d renders a Rubik's-style cube as shaded ASCII cells.
//
// The cube is a fixed point cloud generated once; each frame the points are
// rotated, projected with perspective, depth tested and shaded from the
// rotated face normals.
package render3d

import (
	"github.com/chewxy/math32"
)

// Vector3 is a 3D vector used for points, normals and the light direction.
type Vector3 struct {
	X, Y, Z float32
}

// Magnitude returns the Euclidean length of v.
func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length.
// A zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	mag := v.Magnitude()
	if mag > 0 {
		oomag := 1 / mag
		return Vector3{v.X * oomag, v.Y * oomag, v.Z * oomag}
	}
	return v
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Trig holds the precomputed sines and cosines of the three rotation angles:
// A (yaw, around Z), B (pitch, around Y) and C (roll, around X).
type Trig struct {
	SinA, CosA float32
	SinB, CosB float32
	SinC, CosC float32
}

// Identity is the rotation by zero on every axis.
var Identity = Trig{CosA: 1, CosB: 1, CosC: 1}

// NewTrig precomputes the sines and cosines of a, b and c.
func NewTrig(a, b, c float32) Trig {
	var t Trig
	t.SinA, t.CosA = math32.Sincos(a)
	t.SinB, t.CosB = math32.Sincos(b)
	t.SinC, t.CosC = math32.Sincos(c)
	return t
}

// Rotate applies the combined yaw/pitch/roll rotation to v.
func (v Vector3) Rotate(t Trig) Vector3 {
	cosASinB := t.CosA * t.SinB
	sinASinB := t.SinA * t.SinB

	return Vector3{
		X: t.CosA*t.CosB*v.X +
			(cosASinB*t.SinC-t.SinA*t.CosC)*v.Y +
			(cosASinB*t.CosC+t.SinA*t.SinC)*v.Z,
		Y: t.SinA*t.CosB*v.X +
			(sinASinB*t.SinC+t.CosA*t.CosC)*v.Y +
			(sinASinB*t.CosC-t.CosA*t.SinC)*v.Z,
		Z: -v.X*t.SinB + v.Y*t.CosB*t.SinC + v.Z*t.CosB*t.CosC,
	}
}

// Angles is a yaw/pitch/roll triple in radians.
type Angles struct {
	A, B, C float32
}

// Trig precomputes the sines and cosines of the angles.
func (a Angles) Trig() Trig {
	return NewTrig(a.A, a.B, a.C)
}

// Add returns the component-wise sum of a and d.
func (a Angles) Add(d Angles) Angles {
	return Angles{a.A + d.A, a.B + d.B, a.C + d.C}
}
