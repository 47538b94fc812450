package env

import (
	"math"

	"vector3/pkg/geometry/vector"
)

// Terrain keeps the aircraft above a synthetic ground surface plus a margin.
type Terrain struct {
	// SafetyMarginM is the minimum allowed altitude above terrain in meters
	SafetyMarginM float64
}

// GroundAltitude returns the terrain height under pos. The surface is a sum
// of two sine waves.
func (t Terrain) GroundAltitude(pos vector.Vec3d) float64 {
	wave1 := math.Sin(pos.X/1000) * 100
	wave2 := math.Sin((pos.X+pos.Y)/500) * 50
	return wave1 + wave2
}

// Apply lifts the aircraft to the minimum allowed altitude and cancels any
// descent when it is below it.
func (t Terrain) Apply(_ float64, pos, vel vector.Vec3d) (vector.Vec3d, vector.Vec3d, string) {
	minAllowedAlt := t.GroundAltitude(pos) + t.SafetyMarginM
	if pos.Z >= minAllowedAlt {
		return pos, vel, ""
	}

	pos.Z = minAllowedAlt
	if vel.Z < 0 {
		vel.Z = 0
	}
	return pos, vel, "terrain-floor: altitude clipped to safety margin"
}

// DefaultTerrain returns a Terrain with an 80 m safety margin.
func DefaultTerrain() Terrain {
	return Terrain{SafetyMarginM: 80}
}
