package main

import (
	"github.com/moptim/glimmer"
	"github.com/moptim/glimmer/hdf5"
)

// RunHDF5 runs the field without a window and records its trajectory.
// Headless frames always advance by the nominal step: there is no frame
// pacing to measure, so wall-clock timing would only add noise.
func RunHDF5(conf *Config) error {
	sim, err := glimmer.New(conf.Count, float32(conf.AspectRatio), seedOf(conf))
	if err != nil {
		return err
	}

	step := glimmer.NewClock(conf.TickHz).Step(0, false)
	return hdf5.Run(sim, &hdf5.Config{
		Output: conf.Output,
		Steps:  conf.Steps,
		Step:   func() { sim.Step(step) },
	})
}
