package env

import (
	"math"

	"vector3/pkg/geometry/vector"
)

// Wind is a constant air mass velocity in m/s, X=east, Y=north, Z=up.
type Wind struct {
	Velocity vector.Vec3d
}

// Apply drifts the ground track by the wind without touching airspeed.
func (w Wind) Apply(dt float64, pos, vel vector.Vec3d) (vector.Vec3d, vector.Vec3d, string) {
	return pos.Add(w.Velocity.Scale(dt)), vel, ""
}

// Calm returns a Wind with zero velocity (no wind).
func Calm() Wind {
	return Wind{}
}

// FromSpeedAndDir creates a horizontal Wind from a speed (m/s) and the
// direction it blows toward, in degrees clockwise from north.
func FromSpeedAndDir(speed, directionDeg float64) Wind {
	rad := directionDeg * math.Pi / 180
	// heading 0 is +Y, 90 is +X
	return Wind{Velocity: vector.New(math.Sin(rad), math.Cos(rad), 0).Scale(speed)}
}

// Turbulence perturbs the air velocity by a random vector of at most
// Intensity m/s per second of simulated time.
type Turbulence struct {
	Intensity float64
	// Rand returns a vector with components in [0, 1). Defaults to vector.Random.
	Rand func() vector.Vec3d
}

func (t Turbulence) Apply(dt float64, pos, vel vector.Vec3d) (vector.Vec3d, vector.Vec3d, string) {
	if t.Intensity <= 0 {
		return pos, vel, ""
	}
	draw := t.Rand
	if draw == nil {
		draw = vector.Random[float64]
	}
	// shift [0,1) to [-1,1)
	gust := draw().Scale(2).Sub(vector.One)
	if gust.MagnitudeSq() > 1 {
		gust = gust.Normalized()
	}
	return pos, vel.Add(gust.Scale(t.Intensity * dt)), ""
}
