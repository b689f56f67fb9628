// Configuration for turning raw coordinates into scene space.
//
// The only knobs the mesh pipeline has are the two pipes that remap longitude
// and latitude, plus the altitude the meshes sit at. These are read from YAML:
//
//	longitude:
//	  domain: [-125, -66]
//	  range: [-5, 5]
//	latitude:
//	  domain: [24, 50]
//	  range: [-5, 5]
//	  overflow: saturate
//	altitude: 0.02
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/reliefmesh"
)

type PipeConfig struct {
	Domain   [2]float64          `yaml:"domain"`
	Range    [2]float64          `yaml:"range"`
	Overflow reliefmesh.Overflow `yaml:"overflow"`
}

func (pc PipeConfig) Pipe() reliefmesh.Pipe {
	return reliefmesh.NewPipe(
		reliefmesh.Interval{Start: pc.Domain[0], End: pc.Domain[1]},
		reliefmesh.Interval{Start: pc.Range[0], End: pc.Range[1]},
	).SetOverflow(pc.Overflow)
}

type Config struct {
	Longitude PipeConfig `yaml:"longitude"`
	Latitude  PipeConfig `yaml:"latitude"`
	Altitude  float64    `yaml:"altitude"`
}

// The contiguous United States, spread over ten scene units on the ground.
func Default() Config {
	return Config{
		Longitude: PipeConfig{
			Domain: [2]float64{-125, -66},
			Range:  [2]float64{-5, 5},
		},
		Latitude: PipeConfig{
			Domain: [2]float64{24, 50},
			Range:  [2]float64{-5, 5},
		},
	}
}

// The longitude and latitude pipes, in that order.
func (c Config) Pipes() (lon, lat reliefmesh.Pipe) {
	return c.Longitude.Pipe(), c.Latitude.Pipe()
}

// Parse YAML over the defaults. Keys that aren't recognized are an error, as
// is an unknown overflow policy.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	return Parse(data)
}
