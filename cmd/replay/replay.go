// Command replay plays back a recorded glow field in an OpenGL window.
//
// Usage
//
// The replay command takes one argument:
//  replay recording.h5
// It is the path to an HDF5 file produced by the glimmer command's
// recording mode. Playback loops forever; the tail sharpness and draw
// controls still work since only positions, colors and shapes are
// recorded. Escape quits.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/moptim/glimmer"
	"github.com/moptim/glimmer/hdf5"
	"github.com/moptim/glimmer/opengl"
)

const usage = `Usage: replay recording.h5

The argument is the path to an HDF5 recording produced by glimmer.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) != 2 {
		Fatal(fmt.Errorf("%d arguments provided (1 required)\n\n%s", len(os.Args)-1, usage))
	}

	l, err := hdf5.NewLoader(os.Args[1])
	if err != nil {
		Fatal(err)
	}
	defer l.Close()

	err = opengl.Run(&opengl.Config{
		Title: "glimmer replay",
		New: func(aspect float32) (*glimmer.Simulation, error) {
			// The spawned attributes are overwritten from the
			// recording before the first draw, so any seed does.
			return glimmer.New(l.Count(), aspect, 1)
		},
		Step: func(s *glimmer.Simulation, dt float32) {
			if err := l.Load(s.Swarm); err != nil {
				Fatal(err)
			}
			// No physics during playback; only the control
			// surface stays live.
			s.Keys.Drain(&s.Params)
		},
	})
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
