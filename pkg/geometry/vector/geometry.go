package vector

import "math"

// Products are converted to T so each is rounded before it is summed;
// the conversions keep the compiler from emitting fused multiply-adds.

// Dot returns the dot product of two vectors
func (v Vec3[T]) Dot(o Vec3[T]) T { return T(v.X*o.X) + T(v.Y*o.Y) + T(v.Z*o.Z) }

// Cross returns the right-handed cross product of two vectors
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: T(v.Y*o.Z) - T(v.Z*o.Y),
		Y: T(v.Z*o.X) - T(v.X*o.Z),
		Z: T(v.X*o.Y) - T(v.Y*o.X),
	}
}

// MagnitudeSq returns the squared Euclidean norm
func (v Vec3[T]) MagnitudeSq() T { return v.Dot(v) }

// Magnitude returns the vector's Euclidean norm
func (v Vec3[T]) Magnitude() T { return T(math.Sqrt(float64(v.MagnitudeSq()))) }

// Distance returns the Euclidean distance between two points
func (v Vec3[T]) Distance(o Vec3[T]) T { return v.Sub(o).Magnitude() }

// Normalized returns a unit vector in the same direction.
// The zero vector has no direction and yields NaN components.
func (v Vec3[T]) Normalized() Vec3[T] {
	return v.Divide(v.Magnitude())
}

// Normalize rescales v in place to unit length, see Normalized.
func (v *Vec3[T]) Normalize() {
	*v = v.Normalized()
}

// Lerp interpolates linearly from v to o. t is not clamped, values outside
// [0, 1] extrapolate.
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		X: lerp(v.X, o.X, t),
		Y: lerp(v.Y, o.Y, t),
		Z: lerp(v.Z, o.Z, t),
	}
}

// Angle returns the angle between two vectors in radians, in [0, π].
// It is NaN when either vector has zero length.
func (v Vec3[T]) Angle(o Vec3[T]) T {
	cos := float64(v.Dot(o)) / (float64(v.Magnitude()) * float64(o.Magnitude()))
	// rounding can push parallel vectors slightly past ±1
	cos = math.Max(-1, math.Min(1, cos))
	return T(math.Acos(cos))
}

// AngleDeg is Angle in degrees.
func (v Vec3[T]) AngleDeg(o Vec3[T]) T {
	return v.Angle(o) * (180 / math.Pi)
}

// FuzzyEqual reports whether the distance between v and o is at most epsilon.
func (v Vec3[T]) FuzzyEqual(o Vec3[T], epsilon T) bool {
	return v.Distance(o) <= epsilon
}

func lerp[T Scalar](a, b, t T) T { return a + T((b-a)*t) }
