package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromArray builds a vector from an [x, y, z] array.
func FromArray[T Scalar](a [3]T) Vec3[T] {
	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// FromSlice builds a vector from the first three elements of s.
func FromSlice[T Scalar](s []T) (Vec3[T], error) {
	if len(s) < 3 {
		return Vec3[T]{}, fmt.Errorf("%w: got %d elements", ErrInvalidSlice, len(s))
	}
	return Vec3[T]{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Array returns the components as an [x, y, z] array.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Parse reads a vector written as "(x, y, z)" or "Vector3(x, y, z)",
// the first being the form produced by String.
func Parse[T Scalar](s string) (Vec3[T], error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "Vector3")
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return Vec3[T]{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	parts := strings.Split(body[1:len(body)-1], ",")
	if len(parts) != 3 {
		return Vec3[T]{}, fmt.Errorf("%w: %q has %d components", ErrInvalidFormat, s, len(parts))
	}

	bits := bitSize[T]()
	var out [3]T
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), bits)
		if err != nil {
			return Vec3[T]{}, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
		}
		out[i] = T(f)
	}
	return FromArray(out), nil
}

// bitSize is 32 when T cannot hold values above math.MaxFloat32.
func bitSize[T Scalar]() int {
	var big T = math.MaxFloat32
	if math.IsInf(float64(big*2), 0) {
		return 32
	}
	return 64
}
