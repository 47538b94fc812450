// Package vector provides a 3D vector value type over a floating point scalar.
//
// Operations never fail: dividing by zero, normalizing the zero vector or
// taking the angle to the zero vector produce Inf or NaN components, which
// callers can detect with IsFinite and IsNaN.
package vector

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Scalar is the component type of a Vec3.
type Scalar interface {
	~float32 | ~float64
}

// Vec3 is a Cartesian vector (X, Y, Z). The zero value is the zero vector.
type Vec3[T Scalar] struct{ X, Y, Z T }

// Vec3d is the double precision vector used by most callers.
type Vec3d = Vec3[float64]

// Unit vectors along each axis and the common constant vectors.
var (
	XAxis = Vec3[float64]{X: 1}
	YAxis = Vec3[float64]{Y: 1}
	ZAxis = Vec3[float64]{Z: 1}
	Zero  = Vec3[float64]{}
	One   = Vec3[float64]{X: 1, Y: 1, Z: 1}
)

// New creates a vector with the given components.
func New[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// UnitX returns (1, 0, 0) for any scalar type.
func UnitX[T Scalar]() Vec3[T] { return Vec3[T]{X: 1} }

// UnitY returns (0, 1, 0) for any scalar type.
func UnitY[T Scalar]() Vec3[T] { return Vec3[T]{Y: 1} }

// UnitZ returns (0, 0, 1) for any scalar type.
func UnitZ[T Scalar]() Vec3[T] { return Vec3[T]{Z: 1} }

// Random returns a vector with each component drawn uniformly from [0, 1).
func Random[T Scalar]() Vec3[T] {
	return Vec3[T]{X: T(rand.Float64()), Y: T(rand.Float64()), Z: T(rand.Float64())}
}

// Components returns the coordinates as an ordered triple.
func (v Vec3[T]) Components() (x, y, z T) { return v.X, v.Y, v.Z }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3[T]) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// IsNaN reports whether any component is NaN.
func (v Vec3[T]) IsNaN() bool {
	return v.X != v.X || v.Y != v.Y || v.Z != v.Z
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

func finite[T Scalar](f T) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
