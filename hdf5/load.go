package hdf5

import (
	"fmt"

	"github.com/moptim/glimmer"
	"gonum.org/v1/hdf5"
)

// A Loader sequentially loads recorded frames from an HDF5 file.
type Loader struct {
	i uint // index of the current frame
	n uint // total number of frames

	count int // particles per frame

	posRad []glimmer.Vec3
	color  []glimmer.Vec3
	shape  []glimmer.Vec4

	file *hdf5.File
	sets [3]*loadSet
}

// loadSet wraps one open dataset with its dataspaces.
type loadSet struct {
	dset   *hdf5.Dataset
	fspace *hdf5.Dataspace
	mspace *hdf5.Dataspace
}

// NewLoader opens a recording and verifies that its three attribute
// datasets are index-aligned. A recording with mismatched dataset shapes
// is a producer bug and refuses to load.
func NewLoader(path string) (*Loader, error) {
	l := new(Loader)
	var err error
	l.file, err = hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, err
	}

	names := [3]string{"pos_rad", "color", "shape"}
	for i, name := range names {
		s, dims, err := openSet(l.file, name)
		if err != nil {
			l.Close()
			return nil, err
		}
		l.sets[i] = s
		if i == 0 {
			l.n = dims[0]
			l.count = int(dims[1])
		} else if dims[0] != l.n || int(dims[1]) != l.count {
			l.Close()
			return nil, fmt.Errorf("loader: dataset %q is %dx%d, want %dx%d like pos_rad",
				name, dims[0], dims[1], l.n, l.count)
		}
	}

	l.posRad = make([]glimmer.Vec3, l.count)
	l.color = make([]glimmer.Vec3, l.count)
	l.shape = make([]glimmer.Vec4, l.count)
	return l, nil
}

// openSet opens one dataset and selects a single-frame hyperslab.
func openSet(file *hdf5.File, name string) (*loadSet, []uint, error) {
	s := new(loadSet)
	var err error
	s.dset, err = file.OpenDataset(name)
	if err != nil {
		return nil, nil, err
	}
	s.fspace = s.dset.Space()
	dims, _, err := s.fspace.SimpleExtentDims()
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	if len(dims) != 2 {
		s.Close()
		return nil, nil, fmt.Errorf("loader: dataset %q has %d dimensions, want 2", name, len(dims))
	}

	s.mspace, err = hdf5.CreateSimpleDataspace(dims[1:], nil)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	if err := s.fspace.SelectHyperslab([]uint{0, 0}, nil, []uint{1, dims[1]}, nil); err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, dims, nil
}

// Count returns the number of particles per frame.
func (l *Loader) Count() int {
	return l.count
}

// Frames returns the number of recorded frames.
func (l *Loader) Frames() int {
	return int(l.n)
}

// Load loads the next frame into w, cycling back to the first frame after
// the last one. The swarm must hold exactly Count particles.
func (l *Loader) Load(w *glimmer.Swarm) error {
	if err := w.Check(); err != nil {
		return err
	}
	if w.Len() != l.count {
		return fmt.Errorf("loader: swarm holds %d particles, recording has %d", w.Len(), l.count)
	}

	bufs := [3]interface{}{&l.posRad, &l.color, &l.shape}
	for i, s := range l.sets {
		if err := s.fspace.SetOffset([]uint{l.i, 0}); err != nil {
			return err
		}
		if err := s.dset.ReadSubset(bufs[i], s.mspace, s.fspace); err != nil {
			return err
		}
	}
	l.i = (l.i + 1) % l.n

	copy(w.PosRad, l.posRad)
	copy(w.Color, l.color)
	copy(w.Shape, l.shape)
	return nil
}

// Close releases the file and all dataset handles.
func (l *Loader) Close() error {
	var err error
	for _, s := range l.sets {
		if s != nil {
			checkClose(&err, s)
		}
	}
	if l.file != nil {
		checkClose(&err, l.file)
	}
	return err
}

// Close closes the dataset and its dataspaces.
func (s *loadSet) Close() error {
	var err error
	if s.mspace != nil {
		checkClose(&err, s.mspace)
	}
	if s.fspace != nil {
		checkClose(&err, s.fspace)
	}
	if s.dset != nil {
		checkClose(&err, s.dset)
	}
	return err
}
