package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"vector3/pkg/geometry/vector"
)

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(`
port: 9090
log_level: debug
origin:
  lat: 48.85
sim:
  tick_hz: 50
env:
  wind: "(1, -2, 0.5)"
  turbulence: 0.3
`))
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 48.85, c.Origin.Lat)
	assert.Equal(t, 34.7818, c.Origin.Lon)
	assert.Equal(t, 50.0, c.Sim.TickHz)
	assert.Equal(t, vector.New(1.0, -2.0, 0.5), c.Env.Wind.Vec3d)
	assert.Equal(t, 0.3, c.Env.Turbulence)
}

func TestDecodeWindSequence(t *testing.T) {
	c, err := Decode(strings.NewReader("env:\n  wind: [3, 4, 0]\n"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, c.Env.Wind.Magnitude())

	_, err = Decode(strings.NewReader("env:\n  wind: [3, 4]\n"))
	assert.ErrorIs(t, err, vector.ErrInvalidSlice)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("env:\n  wind: \"3, 4, 0\"\n"))
	assert.ErrorIs(t, err, vector.ErrInvalidFormat)

	_, err = Decode(strings.NewReader("env:\n  wind: \"(3, x, 0)\"\n"))
	assert.ErrorIs(t, err, vector.ErrInvalidNumber)

	_, err = Decode(strings.NewReader("unknown: 1\n"))
	assert.Error(t, err)

	for _, in := range []string{"port: 0", "sim:\n  tick_hz: -1", "origin:\n  lat: 91", "env:\n  turbulence: -1", "env:\n  wind: \"(NaN, 0, 0)\""} {
		_, err = Decode(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInvalidConfig, in)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7070\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, c.Port)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVecMarshal(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Wind Vec `yaml:"wind"`
	}{Vec{vector.New(1.0, 2.0, 3.0)}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "(1, 2, 3)")
}
