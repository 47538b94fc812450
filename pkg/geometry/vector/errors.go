package vector

import "errors"

// Conversion errors. Arithmetic never fails.
var (
	ErrInvalidFormat = errors.New("vector: invalid format")
	ErrInvalidNumber = errors.New("vector: invalid number")
	ErrInvalidSlice  = errors.New("vector: slice needs at least 3 elements")
)
