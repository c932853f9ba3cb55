//go:build nogl

package opengl

import (
	"fmt"
	"os"

	"github.com/moptim/glimmer"
)

// MaxParticles matches the uniform array sizes in the fragment shader.
const MaxParticles = 64

// Config holds the parameters of the OpenGL driver.
type Config struct {
	// New creates the simulation once the window exists and its aspect
	// ratio is known.
	New func(aspect float32) (*glimmer.Simulation, error)

	// Step advances to the next frame.
	Step func(s *glimmer.Simulation, dt float32)

	// Title of the fullscreen window.
	Title string
}

// Run returns an error explaining that OpenGL support is disabled.
func Run(conf *Config) error {
	return fmt.Errorf("%s was built without OpenGL support", os.Args[0])
}
