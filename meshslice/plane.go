package meshslice

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// A Plane is an oriented plane. A point p is in front of the plane when
// Normal.Dot(p)+Distance <= 0, and behind it otherwise.
//
// The normal is never renormalized, so callers constructing a Plane directly
// must pass a unit normal.
type Plane struct {
	Normal   model3d.Coord3D
	Distance float64
}

// NewPlanePoint creates a plane with the given unit normal passing through
// point.
func NewPlanePoint(normal, point model3d.Coord3D) *Plane {
	return &Plane{
		Normal:   normal,
		Distance: -normal.Dot(point),
	}
}

// NewPlaneEuler creates a plane through point whose normal is the +Z axis
// rotated by the Euler angles (in degrees) in euler.
//
// The rotations are applied around Z, then X, then Y.
func NewPlaneEuler(point, euler model3d.Coord3D) *Plane {
	return NewPlanePoint(EulerRotation(euler).MulColumn(model3d.Z(1)), point)
}

// EulerRotation creates a rotation matrix for Euler angles in degrees,
// rotating around Z, then X, then Y.
func EulerRotation(euler model3d.Coord3D) *model3d.Matrix3 {
	toRad := math.Pi / 180
	rz := model3d.NewMatrix3Rotation(model3d.Z(1), euler.Z*toRad)
	rx := model3d.NewMatrix3Rotation(model3d.X(1), euler.X*toRad)
	ry := model3d.NewMatrix3Rotation(model3d.Y(1), euler.Y*toRad)
	return ry.Mul(rx).Mul(rz)
}

// Value computes the raw signed value of c relative to the plane.
func (p *Plane) Value(c model3d.Coord3D) float64 {
	return p.Normal.Dot(c) + p.Distance
}

// Side classifies c. Points exactly on the plane are Front.
func (p *Plane) Side(c model3d.Coord3D) Side {
	if p.Value(c) > 0 {
		return Back
	}
	return Front
}

// Interpolant computes t such that p1 + (p2-p1)*t lies on the plane.
//
// The result is not clamped, and is only meaningful when p1 and p2 are on
// different sides of the plane.
func (p *Plane) Interpolant(p1, p2 model3d.Coord3D) float64 {
	return p.Value(p1) / p.Normal.Dot(p1.Sub(p2))
}

// Flip returns the same plane with the opposite orientation.
func (p *Plane) Flip() *Plane {
	return &Plane{
		Normal:   p.Normal.Scale(-1),
		Distance: -p.Distance,
	}
}
