//go:build !nogl

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/moptim/glimmer"
)

// MaxParticles matches the uniform array sizes in the fragment shader.
const MaxParticles = 64

// Config holds the parameters of the OpenGL driver.
type Config struct {
	// New creates the simulation once the window exists and its aspect
	// ratio is known, so spawn positions land in the visible area.
	New func(aspect float32) (*glimmer.Simulation, error)

	// Step advances to the next frame. The argument is the step
	// duration produced by the frame clock.
	Step func(s *glimmer.Simulation, dt float32)

	// Title of the fullscreen window.
	Title string
}

// Run drives a glow field in a fullscreen OpenGL window on the primary
// monitor. Key presses feed the simulation's control queue: up/down adjust
// tail sharpness, F/V friction, D toggles drawing, L toggles wall-clock
// frame timing, and Escape quits. The simulation keeps advancing while
// drawing is disabled.
func Run(conf *Config) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()

	glfw.WindowHint(glfw.RedBits, mode.RedBits)
	glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
	glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
	glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	w, err := glfw.CreateWindow(mode.Width, mode.Height, conf.Title, monitor, nil)
	if err != nil {
		return err
	}
	w.MakeContextCurrent()
	w.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	w.SetInputMode(glfw.StickyKeysMode, glfw.True)

	if err := gl.Init(); err != nil {
		return err
	}
	gl.ClearColor(0, 0, 0, 1)

	d, err := newDisplay()
	if err != nil {
		return err
	}

	aspect := float32(mode.Width) / float32(mode.Height)
	s, err := conf.New(aspect)
	if err != nil {
		return err
	}
	if n := s.Swarm.Len(); n > MaxParticles {
		return fmt.Errorf("opengl: %d particles exceed the shader limit of %d", n, MaxParticles)
	}
	d.setCount(uint32(s.Swarm.Len()))

	// Resize events become explicit aspect values handled on the frame
	// loop; GLFW invokes the callback from inside PollEvents on this
	// same thread, so plain variables suffice.
	aspectChanged := true
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		aspect = float32(width) / float32(height)
		aspectChanged = true
	})

	// Key presses are only counted here; the simulation replays them
	// during its own step.
	bindings := map[glfw.Key]glimmer.Action{
		glfw.KeyUp:   glimmer.Sharpen,
		glfw.KeyDown: glimmer.Soften,
		glfw.KeyD:    glimmer.ToggleDraw,
		glfw.KeyL:    glimmer.ToggleLimitTime,
		glfw.KeyF:    glimmer.MoreFriction,
		glfw.KeyV:    glimmer.LessFriction,
	}
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		if a, ok := bindings[key]; ok && action == glfw.Press {
			s.Keys.Trigger(a)
		}
	})

	clock := glimmer.NewClock(mode.RefreshRate)
	for !w.ShouldClose() {
		glfw.PollEvents()
		if aspectChanged {
			aspectChanged = false
			s.SetAspect(aspect)
			d.setAspect(aspect)
		}

		conf.Step(s, clock.Tick(s.Params.LimitTime))
		d.upload(s)

		if s.Params.Draw {
			d.draw()
		}
		if s.Params.LimitTime || s.Params.Draw {
			w.SwapBuffers()
		}
	}
	return nil
}

// display owns the shader program and its uniform handles.
type display struct {
	prog uint32
	vao  uint32
	uni  struct {
		count  int32
		aspect int32
		tail   int32
		posRad int32
		color  int32
		shape  int32
	}
}

// newDisplay compiles the shaders and resolves the uniform locations.
func newDisplay() (*display, error) {
	d := new(display)

	var err error
	d.prog, err = makeProg([]shader{
		{"Vertex", vertexShader, gl.CreateShader(gl.VERTEX_SHADER)},
		{"Fragment", fragmentShader, gl.CreateShader(gl.FRAGMENT_SHADER)},
	})
	if err != nil {
		return nil, err
	}

	d.uni.count = gl.GetUniformLocation(d.prog, gl.Str("particle_count\x00"))
	d.uni.aspect = gl.GetUniformLocation(d.prog, gl.Str("aspect_ratio\x00"))
	d.uni.tail = gl.GetUniformLocation(d.prog, gl.Str("tail_critical_value\x00"))
	d.uni.posRad = gl.GetUniformLocation(d.prog, gl.Str("particle_pos_rad\x00"))
	d.uni.color = gl.GetUniformLocation(d.prog, gl.Str("particle_color\x00"))
	d.uni.shape = gl.GetUniformLocation(d.prog, gl.Str("particle_shape\x00"))

	// The fullscreen pair of triangles is generated in the vertex
	// shader, so an empty VAO is enough.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.UseProgram(d.prog)
	return d, nil
}

// upload sends the current frame's particle vectors to the program.
func (d *display) upload(s *glimmer.Simulation) {
	gl.UseProgram(d.prog)
	gl.Uniform1f(d.uni.tail, s.Params.TailCritical)
	n := int32(s.Swarm.Len())
	if n == 0 {
		return
	}
	gl.Uniform3fv(d.uni.posRad, n, &s.Swarm.PosRad[0].X)
	gl.Uniform3fv(d.uni.color, n, &s.Swarm.Color[0].X)
	gl.Uniform4fv(d.uni.shape, n, &s.Swarm.Shape[0].X)
}

func (d *display) setCount(n uint32) {
	gl.UseProgram(d.prog)
	gl.Uniform1ui(d.uni.count, n)
}

func (d *display) setAspect(aspect float32) {
	gl.UseProgram(d.prog)
	gl.Uniform1f(d.uni.aspect, aspect)
}

// draw paints the field over the whole framebuffer.
func (d *display) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// A shader pairs a source string with an OpenGL shader object.
type shader struct {
	name   string
	src    string
	shader uint32
}

// makeProg builds an OpenGL program from the given shaders.
func makeProg(shaders []shader) (uint32, error) {
	var fail bool
	for _, s := range shaders {
		src, free := gl.Strs(s.src + "\x00")
		gl.ShaderSource(s.shader, 1, src, nil)
		free()
		gl.CompileShader(s.shader)
		var status int32
		gl.GetShaderiv(s.shader, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			var n int32
			gl.GetShaderiv(s.shader, gl.INFO_LOG_LENGTH, &n)
			log := make([]uint8, n)
			gl.GetShaderInfoLog(s.shader, n, &n, &log[0])
			fmt.Printf("### %s shader compilation error ###\n\n%s\n\n", s.name, gl.GoStr(&log[0]))
			fail = true
			gl.DeleteShader(s.shader)
		}
	}
	if fail {
		return 0, fmt.Errorf("opengl: GLSL errors")
	}
	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s.shader)
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		return 0, fmt.Errorf("opengl: program link failed")
	}
	return prog, nil
}
