// Package env applies environmental effects to an aircraft's local position
// and velocity.
package env

import (
	"vector3/pkg/geometry/vector"
)

// Environment is an interface for applying environmental effects to the aircraft.
// Each implementation can modify the aircraft's velocity or position based on
// environmental factors like wind, terrain, or other atmospheric conditions.
type Environment interface {
	// Apply takes the current position and velocity of the aircraft and returns
	// the modified position, velocity, and an optional warning message.
	// The dt parameter is the time step in seconds since the last update.
	Apply(dt float64, pos, vel vector.Vec3d) (vector.Vec3d, vector.Vec3d, string)
}

// Chain applies multiple effects in order, feeding each the previous output.
// The last non-empty warning message is returned.
type Chain struct {
	Effects []Environment
}

func (c *Chain) Apply(dt float64, pos, vel vector.Vec3d) (vector.Vec3d, vector.Vec3d, string) {
	var warning string
	for _, effect := range c.Effects {
		newPos, newVel, w := effect.Apply(dt, pos, vel)
		if w != "" {
			warning = w
		}
		pos, vel = newPos, newVel
	}
	return pos, vel, warning
}

// NoOp is an environment that does nothing.
var NoOp Environment = noOpEnv{}

type noOpEnv struct{}

func (noOpEnv) Apply(_ float64, pos, vel vector.Vec3d) (vector.Vec3d, vector.Vec3d, string) {
	return pos, vel, ""
}
