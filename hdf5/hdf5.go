// Package hdf5 records and replays glow-field trajectories.
//
// A recording holds one dataset per renderable attribute family
// (position+radius, color, shape), each indexed by [step, particle], plus
// a config dataset carrying run metadata as attributes. Per-particle rows
// stay index-aligned across the three datasets.
package hdf5

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/moptim/glimmer"
	"gonum.org/v1/hdf5"
)

// A dataset stipulates how to extract one attribute family from the
// simulation and where to store it in the HDF5 file.
type dataset struct {
	// name of the dataset in the HDF5 file.
	name string

	// val is a value of the row element type, used to derive the
	// compound HDF5 datatype.
	val interface{}

	// data returns a pointer to the live attribute array.
	data func(*glimmer.Simulation) interface{}

	dset   *hdf5.Dataset
	fspace *hdf5.Dataspace
	mspace *hdf5.Dataspace
}

// Config holds the parameters of the HDF5 recorder.
type Config struct {
	Output string // path of the output file
	Steps  int    // total number of steps to record
	Step   func() // go to next step
}

// Run records a simulation to an HDF5 file, one frame per step.
func Run(s *glimmer.Simulation, conf *Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(conf.Output), 0755); err != nil {
		return err
	}

	file, err := hdf5.CreateFile(conf.Output, hdf5.F_ACC_TRUNC)
	if err != nil {
		return err
	}
	defer checkClose(&err, file)

	if err := saveConfig(file, s, conf); err != nil {
		return err
	}

	datasets := []*dataset{
		{name: "pos_rad", val: glimmer.Vec3{}, data: func(s *glimmer.Simulation) interface{} { return &s.Swarm.PosRad }},
		{name: "color", val: glimmer.Vec3{}, data: func(s *glimmer.Simulation) interface{} { return &s.Swarm.Color }},
		{name: "shape", val: glimmer.Vec4{}, data: func(s *glimmer.Simulation) interface{} { return &s.Swarm.Shape }},
	}
	for _, d := range datasets {
		if err := d.init(file, conf.Steps, s.Swarm.Len()); err != nil {
			return err
		}
		defer checkClose(&err, d)
	}

	for k := 0; k < conf.Steps; k++ {
		// show progress as percentage
		fmt.Printf("\r% 3d%%", 100*k/conf.Steps)

		for _, d := range datasets {
			if err := d.fspace.SetOffset([]uint{uint(k), 0}); err != nil {
				return err
			}
			if err := d.dset.WriteSubset(d.data(s), d.mspace, d.fspace); err != nil {
				return err
			}
		}

		conf.Step()
	}
	fmt.Printf("\r100%%\n")
	return nil
}

// saveConfig creates a "config" dataset with a null dataspace whose
// attributes carry the run metadata.
func saveConfig(file *hdf5.File, s *glimmer.Simulation, conf *Config) (err error) {
	null, err := hdf5.CreateDataspace(hdf5.S_NULL)
	if err != nil {
		return err
	}

	anytype, err := hdf5.NewDatatypeFromValue(0)
	if err != nil {
		return err
	}
	defer checkClose(&err, anytype)

	dset, err := file.CreateDataset("config", anytype, null)
	if err != nil {
		return err
	}
	defer checkClose(&err, dset)

	scalar, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}

	attrs := []struct {
		name string
		val  interface{}
	}{
		{"Time", time.Now().String()},
		{"Count", s.Swarm.Len()},
		{"Steps", conf.Steps},
		{"AspectRatio", float64(s.Aspect)},
	}
	for _, a := range attrs {
		err := func() (err error) {
			dtype, err := hdf5.NewDatatypeFromValue(a.val)
			if err != nil {
				return err
			}
			defer checkClose(&err, dtype)

			attr, err := dset.CreateAttribute(a.name, dtype, scalar)
			if err != nil {
				return err
			}
			defer checkClose(&err, attr)

			rv := reflect.ValueOf(a.val)
			ptr := reflect.New(rv.Type())
			ptr.Elem().Set(rv)
			return attr.Write(ptr.Interface(), dtype)
		}()
		if err != nil {
			return err
		}
	}
	return nil
}

// init creates the dataset and its file and memory dataspaces.
func (d *dataset) init(file *hdf5.File, steps, count int) error {
	dtype, err := hdf5.NewDatatypeFromValue(d.val)
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	dims := []uint{uint(steps), uint(count)}
	d.fspace, err = hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return err
	}

	if err := d.fspace.SelectHyperslab([]uint{0, 0}, nil, []uint{1, uint(count)}, nil); err != nil {
		checkClose(&err, d.fspace)
		return err
	}

	d.mspace, err = hdf5.CreateSimpleDataspace([]uint{uint(count)}, nil)
	if err != nil {
		checkClose(&err, d.fspace)
		return err
	}

	d.dset, err = file.CreateDataset(d.name, dtype, d.fspace)
	if err != nil {
		checkClose(&err, d.fspace)
		checkClose(&err, d.mspace)
	}
	return err
}

// Close closes the HDF5 dataset and dataspaces.
func (d *dataset) Close() error {
	if err := d.dset.Close(); err != nil {
		return err
	}
	if err := d.mspace.Close(); err != nil {
		return err
	}
	return d.fspace.Close()
}

// checkClose checks for errors in deferred calls.
func checkClose(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
