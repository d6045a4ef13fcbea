package openglhelper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Stage identifies the step of program creation that produced a diagnostic.
type Stage string

const (
	StageVertex   Stage = "VERTEX"
	StageFragment Stage = "FRAGMENT"
	StageProgram  Stage = "PROGRAM"
)

// CompileError carries the driver info log of a failed compile or link.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == StageProgram {
		return fmt.Sprintf("program linking error of type: %s\n%s", e.Stage, e.Log)
	}
	return fmt.Sprintf("shader compilation error of type: %s\n%s", e.Stage, e.Log)
}

// Shader represents an OpenGL shader program
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// compileShader compiles a single shader. The shader object is returned even
// when compilation fails so that linking reports the failure too.
func compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return shader, &CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}

	return shader, nil
}

// NewShader compiles and links a program from vertex and fragment source.
// The returned Shader is never nil: on failure err holds one *CompileError per
// failed stage and the program draws nothing, but it can still be bound and
// fed uniforms.
func NewShader(vertexShaderSource, fragmentShaderSource string) (*Shader, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	return &Shader{ID: program, uniforms: make(map[string]int32)}, err
}

// newProgram creates a shader program from vertex and fragment shader sources
func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, vertErr := compileShader(vertexShaderSource, gl.VERTEX_SHADER, StageVertex)
	fragmentShader, fragErr := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER, StageFragment)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var linkErr error
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		linkErr = &CompileError{Stage: StageProgram, Log: strings.TrimRight(log, "\x00")}
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, errors.Join(vertErr, fragErr, linkErr)
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// location looks up a uniform once per name. Unknown names resolve to -1,
// which GL ignores on upload.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVec2 sets a vec2 uniform
func (s *Shader) SetVec2(name string, vec mgl32.Vec2) {
	gl.Uniform2f(s.location(name), vec[0], vec[1])
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(name string, vec mgl32.Vec3) {
	gl.Uniform3f(s.location(name), vec[0], vec[1], vec[2])
}
