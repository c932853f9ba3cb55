// Command glimmer animates a field of soft, glowing star particles.
//
// Usage
//
// The glimmer command takes one optional argument:
//  glimmer [config_file]
// It is the path to a TOML config file.
// If no config file is specified, an interactive field with default
// parameters will run fullscreen in an OpenGL window.
//
// Interactive mode
//
// Up and down arrows sharpen and soften the glow tails, F and V raise and
// lower friction, D toggles drawing (the simulation keeps running unseen),
// L toggles wall-clock frame timing, and Escape quits.
//
// Headless modes
//
// With an 'output' path in the config the field runs without a window and
// records its trajectory to an HDF5 file (see the replay command). With a
// 'serve' listen address it instead broadcasts frames to websocket viewers
// on /ws, which may send back the same control actions as the keyboard.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/moptim/glimmer"
	"github.com/moptim/glimmer/opengl"
)

const usage = `Usage: glimmer [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive field with default
parameters will run fullscreen in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()
}

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	switch {
	case conf.Serve != "":
		err = RunServe(conf)
	case conf.Output != "":
		err = RunHDF5(conf)
	default:
		err = RunOpenGL(conf)
	}
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// seedOf returns the configured seed, or a fresh one from the clock when
// no explicit seed was given.
func seedOf(conf *Config) uint64 {
	if conf.Seed != 0 {
		return uint64(conf.Seed)
	}
	return uint64(time.Now().UnixNano())
}

// RunOpenGL runs the field interactively in a fullscreen window.
func RunOpenGL(conf *Config) error {
	return opengl.Run(&opengl.Config{
		Title: "glimmer",
		New: func(aspect float32) (*glimmer.Simulation, error) {
			return glimmer.New(conf.Count, aspect, seedOf(conf))
		},
		Step: func(s *glimmer.Simulation, dt float32) {
			s.Step(dt)
		},
	})
}
