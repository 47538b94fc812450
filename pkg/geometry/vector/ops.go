package vector

// Add returns the sum of two vectors
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns the vector with every component sign-inverted
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// Scale multiplies a vector by a scalar
func (v Vec3[T]) Scale(k T) Vec3[T] { return Vec3[T]{v.X * k, v.Y * k, v.Z * k} }

// Divide divides every component by k. A zero k yields Inf or NaN components.
func (v Vec3[T]) Divide(k T) Vec3[T] { return Vec3[T]{v.X / k, v.Y / k, v.Z / k} }

// MulComponents returns the component-wise product
func (v Vec3[T]) MulComponents(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// DivComponents returns the component-wise quotient
func (v Vec3[T]) DivComponents(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Min returns the component-wise minimum of two vectors
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}
