package fourier

import (
	"errors"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/lynxnot/p5-fourier/trajectory"
	"github.com/lynxnot/p5-fourier/wavegen"
)

// Default simulation parameters.
const (
	DefaultOctaves = 8
	DefaultDt      = 0.0125
)

// Config carries the tunable parameters of a Simulator. Zero values are
// replaced by the defaults, so an empty Config is valid.
type Config struct {
	Waveform wavegen.Kind `yaml:"Waveform" mapstructure:"Waveform"` // waveform to trace, by name
	Octaves  int          `yaml:"Octaves" mapstructure:"Octaves"`   // number of harmonics in the chain
	Capacity int          `yaml:"Capacity" mapstructure:"Capacity"` // trajectory history size in points
	Dt       float64      `yaml:"Dt" mapstructure:"Dt"`             // phase advance per step in radians
	Scale    float64      `yaml:"Scale" mapstructure:"Scale"`       // amplitude scale A of the generators
}

// UnmarshalYAML decodes a config and fills unset fields with the defaults.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Config
	if err := unmarshal((*plain)(c)); err != nil {
		return err
	}
	*c = c.withDefaults()
	return c.validate()
}

// Returns the config with defaults substituted for zero-valued fields.
func (c Config) withDefaults() Config {
	if c.Octaves == 0 {
		c.Octaves = DefaultOctaves
	}
	if c.Capacity == 0 {
		c.Capacity = trajectory.DefaultCapacity
	}
	if c.Dt == 0 {
		c.Dt = DefaultDt
	}
	if c.Scale == 0 {
		c.Scale = wavegen.DefaultScale
	}
	return c
}

func (c Config) validate() error {
	if c.Capacity < 0 {
		return errors.New("Capacity must be greater than 0")
	}
	if c.Dt < 0 {
		return errors.New("Dt must be greater than 0")
	}
	if c.Scale < 0 {
		return errors.New("Scale must be greater than 0")
	}
	return nil
}

// DecodeHook returns a mapstructure hook that resolves Waveform fields
// from their string names. This supports configuration solutions like
// spf13/viper that use mapstructure to unmarshal config files.
func DecodeHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(wavegen.Square) && f.Kind() == reflect.String {
			return wavegen.KindFromName(data.(string)), nil
		}
		return data, nil
	}
}
