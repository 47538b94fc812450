// Package config loads the server configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"vector3/pkg/geometry/vector"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	Origin struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"origin"`

	Sim struct {
		TickHz       float64 `yaml:"tick_hz"`
		StartAltM    float64 `yaml:"start_alt_m"`
		DefaultSpeed float64 `yaml:"default_speed"`
	} `yaml:"sim"`

	Env struct {
		Wind          Vec     `yaml:"wind"`
		Turbulence    float64 `yaml:"turbulence"`
		SafetyMarginM float64 `yaml:"safety_margin_m"`
	} `yaml:"env"`
}

// Vec is a vector in YAML, written either as "(x, y, z)" or as [x, y, z].
type Vec struct {
	vector.Vec3d
}

func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var s []float64
		if err := node.Decode(&s); err != nil {
			return err
		}
		if len(s) != 3 {
			return fmt.Errorf("line %d: %w", node.Line, vector.ErrInvalidSlice)
		}
		parsed, err := vector.FromSlice(s)
		if err != nil {
			return err
		}
		v.Vec3d = parsed
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := vector.Parse[float64](s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	v.Vec3d = parsed
	return nil
}

func (v Vec) MarshalYAML() (any, error) {
	return v.String(), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Port: 8080, LogLevel: "info"}
	// Tel Aviv
	c.Origin.Lat = 32.0853
	c.Origin.Lon = 34.7818
	c.Sim.TickHz = 20
	c.Sim.StartAltM = 1000
	c.Sim.DefaultSpeed = 80
	c.Env.Wind = Vec{vector.New(5.0, 2.0, 0.0)}
	c.Env.SafetyMarginM = 10
	return c
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads YAML from r on top of the defaults and validates the result.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	case c.Origin.Lat < -90 || c.Origin.Lat > 90:
		return fmt.Errorf("%w: origin.lat %v", ErrInvalidConfig, c.Origin.Lat)
	case c.Origin.Lon < -180 || c.Origin.Lon > 180:
		return fmt.Errorf("%w: origin.lon %v", ErrInvalidConfig, c.Origin.Lon)
	case c.Sim.TickHz <= 0:
		return fmt.Errorf("%w: sim.tick_hz must be positive", ErrInvalidConfig)
	case c.Sim.DefaultSpeed <= 0:
		return fmt.Errorf("%w: sim.default_speed must be positive", ErrInvalidConfig)
	case !c.Env.Wind.IsFinite():
		return fmt.Errorf("%w: env.wind %v", ErrInvalidConfig, c.Env.Wind)
	case c.Env.Turbulence < 0:
		return fmt.Errorf("%w: env.turbulence must not be negative", ErrInvalidConfig)
	}
	return nil
}
