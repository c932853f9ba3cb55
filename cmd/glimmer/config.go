package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds the various parameters required for running a field.
type Config struct {
	// Output is either a filename (path) for the HDF5 output file,
	// or the empty string for an interactive OpenGL run.
	Output string

	// Serve is a listen address for the websocket frame server,
	// or the empty string. It takes precedence over Output.
	Serve string

	Count int   // number of particles
	Seed  int64 // random seed; 0 draws one from the clock
	Steps int   // number of recorded frames (hdf5 only)

	// Headless runs have no monitor to take these from.
	TickHz      int     // nominal frame rate
	AspectRatio float64 // width/height of the simulated area
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Output:      "",
	Serve:       "",
	Count:       32,
	Seed:        0,
	Steps:       10000,
	TickHz:      60,
	AspectRatio: 16.0 / 9.0,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	_, err := toml.DecodeFile(path, conf)
	return conf, err
}
