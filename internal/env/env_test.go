package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vector3/pkg/geometry/vector"
)

func TestWindDrift(t *testing.T) {
	w := Wind{Velocity: vector.New(5.0, 2.0, 0.0)}
	vel := vector.New(100.0, 0.0, -1.0)

	pos, gotVel, warn := w.Apply(2, vector.Zero, vel)
	assert.Equal(t, vector.New(10.0, 4.0, 0.0), pos)
	assert.Equal(t, vel, gotVel)
	assert.Empty(t, warn)
}

func TestFromSpeedAndDir(t *testing.T) {
	tests := []struct {
		dir  float64
		want vector.Vec3d
	}{
		{0, vector.New(0.0, 10.0, 0.0)},
		{90, vector.New(10.0, 0.0, 0.0)},
		{180, vector.New(0.0, -10.0, 0.0)},
		{270, vector.New(-10.0, 0.0, 0.0)},
	}
	for _, tt := range tests {
		got := FromSpeedAndDir(10, tt.dir).Velocity
		assert.True(t, got.FuzzyEqual(tt.want, 1e-9), "dir %v: got %v", tt.dir, got)
	}
	assert.Equal(t, vector.Zero, Calm().Velocity)
}

func TestTurbulence(t *testing.T) {
	vel := vector.New(50.0, 0.0, 0.0)

	still := Turbulence{Intensity: 0}
	_, got, _ := still.Apply(1, vector.Zero, vel)
	assert.Equal(t, vel, got)

	// corner of the unit cube is clamped to a unit gust
	corner := Turbulence{Intensity: 4, Rand: func() vector.Vec3d { return vector.New(0.9999, 0.9999, 0.5) }}
	_, got, _ = corner.Apply(0.5, vector.Zero, vel)
	assert.InDelta(t, 2.0, got.Distance(vel), 1e-9)

	random := Turbulence{Intensity: 3}
	for i := 0; i < 100; i++ {
		_, got, _ := random.Apply(1, vector.Zero, vel)
		assert.LessOrEqual(t, got.Distance(vel), 3.0+1e-9)
	}
}

func TestTerrainClip(t *testing.T) {
	terrain := DefaultTerrain()
	ground := terrain.GroundAltitude(vector.Zero)
	assert.Equal(t, 0.0, ground)

	pos, vel, warn := terrain.Apply(1, vector.New(0.0, 0.0, 10.0), vector.New(0.0, 0.0, -5.0))
	assert.Equal(t, 80.0, pos.Z)
	assert.Equal(t, 0.0, vel.Z)
	assert.NotEmpty(t, warn)

	pos, vel, warn = terrain.Apply(1, vector.New(0.0, 0.0, 500.0), vector.New(0.0, 0.0, -5.0))
	assert.Equal(t, 500.0, pos.Z)
	assert.Equal(t, -5.0, vel.Z)
	assert.Empty(t, warn)
}

func TestChain(t *testing.T) {
	chain := &Chain{Effects: []Environment{
		Wind{Velocity: vector.New(0.0, 0.0, -100.0)},
		Terrain{SafetyMarginM: 10},
		NoOp,
	}}

	pos, _, warn := chain.Apply(1, vector.New(0.0, 0.0, 50.0), vector.Zero)
	assert.Equal(t, 10.0, pos.Z)
	assert.Equal(t, "terrain-floor: altitude clipped to safety margin", warn)
}
