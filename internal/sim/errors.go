package sim

import "errors"

// ErrQueueFull is returned by Submit when the engine is not keeping up.
var ErrQueueFull = errors.New("command queue full")
