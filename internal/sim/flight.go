package sim

import (
	"math"
	"time"

	"vector3/internal/env"
	"vector3/pkg/geometry/vector"
)

// Tuning holds the flight controller limits.
type Tuning struct {
	PosTolM       float64 // horizontal arrival radius
	AltTolM       float64 // vertical arrival band
	DefaultSpeed  float64 // m/s when a command gives none
	MaxClimbRate  float64 // m/s
	MaxHorizAccel float64 // m/s²
	MaxVertAccel  float64 // m/s²
}

func DefaultTuning() Tuning {
	return Tuning{
		PosTolM:       25,
		AltTolM:       10,
		DefaultSpeed:  80,
		MaxClimbRate:  8,
		MaxHorizAccel: 12,
		MaxVertAccel:  5,
	}
}

// flight is the aircraft state owned by the engine goroutine.
type flight struct {
	geo    GeoRef
	tuning Tuning
	env    env.Environment

	pos vector.Vec3d
	vel vector.Vec3d // air velocity

	active   Command
	traj     []Waypoint
	trajIdx  int
	trajLoop bool
}

func (f *flight) apply(cmd Command) {
	f.active = cmd
	f.traj = nil
	f.trajIdx = 0
	f.trajLoop = false

	switch c := cmd.(type) {
	case StopCommand:
		f.active = nil
		f.vel = vector.Zero
	case HoldCommand:
		f.vel = vector.Zero
	case TrajectoryCommand:
		f.traj = c.Waypoints
		f.trajLoop = c.Loop
	}
}

// step advances the state by dt seconds and returns the environment warning.
func (f *flight) step(dt float64) string {
	var desired vector.Vec3d

	switch c := f.active.(type) {
	case GoToCommand:
		target := f.geo.GeoToLocal(c.Lat, c.Lon, c.Alt)
		if f.arrived(target) {
			f.active = nil
			break
		}
		desired = f.desiredVel(target, c.Speed)

	case TrajectoryCommand:
		if f.trajIdx >= len(f.traj) {
			f.active = nil
			break
		}
		wp := f.traj[f.trajIdx]
		target := f.geo.GeoToLocal(wp.Lat, wp.Lon, wp.Alt)
		if !f.arrived(target) {
			desired = f.desiredVel(target, wp.Speed)
			break
		}
		f.trajIdx++
		if f.trajIdx >= len(f.traj) {
			if !f.trajLoop {
				f.active = nil
				break
			}
			f.trajIdx = 0
		}
	}

	f.vel = f.approach(f.vel, desired, dt)

	var warning string
	if f.env != nil {
		f.pos, f.vel, warning = f.env.Apply(dt, f.pos, f.vel)
	}

	// wind drift is already in pos
	f.pos = f.pos.Add(f.vel.Scale(dt))
	return warning
}

func (f *flight) arrived(target vector.Vec3d) bool {
	d := target.Sub(f.pos)
	return horizontal(d).Magnitude() <= f.tuning.PosTolM && math.Abs(d.Z) <= f.tuning.AltTolM
}

func (f *flight) desiredVel(target vector.Vec3d, speed float64) vector.Vec3d {
	if speed <= 0 {
		speed = f.tuning.DefaultSpeed
	}

	delta := target.Sub(f.pos)
	var desired vector.Vec3d
	if h := horizontal(delta); h.Magnitude() > f.tuning.PosTolM {
		desired = h.Normalized().Scale(speed)
	}

	switch {
	case delta.Z > f.tuning.AltTolM:
		desired.Z = f.tuning.MaxClimbRate
	case delta.Z < -f.tuning.AltTolM:
		desired.Z = -f.tuning.MaxClimbRate
	}
	return desired
}

// approach moves cur toward des, limiting the horizontal change to
// MaxHorizAccel*dt along the direction of change and the vertical change to
// MaxVertAccel*dt.
func (f *flight) approach(cur, des vector.Vec3d, dt float64) vector.Vec3d {
	diff := des.Sub(cur)

	h := horizontal(diff)
	if maxStep := f.tuning.MaxHorizAccel * dt; h.Magnitude() > maxStep {
		h = h.Normalized().Scale(maxStep)
	}
	out := cur.Add(h)

	maxStep := f.tuning.MaxVertAccel * dt
	out.Z = cur.Z + math.Max(-maxStep, math.Min(maxStep, diff.Z))
	return out
}

func (f *flight) snapshot(ts time.Time, warning string) AircraftState {
	lat, lon, alt := f.geo.LocalToGeo(f.pos)
	st := AircraftState{
		Lat: lat, Lon: lon, Alt: alt,
		Vx: f.vel.X, Vy: f.vel.Y, Vz: f.vel.Z,
		AirSpeed:    f.vel.Magnitude(),
		HeadingDeg:  HeadingDegFromVec(f.vel),
		TS:          ts,
		Warning:     warning,
		TargetIndex: f.trajIdx,
	}
	if f.active != nil {
		st.ActiveCommand = string(f.active.Type())
		st.CommandID = f.active.CommandID().String()
	}
	return st
}

func horizontal(v vector.Vec3d) vector.Vec3d {
	return vector.New(v.X, v.Y, 0)
}
