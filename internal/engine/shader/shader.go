// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage names used in CompileError.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return e.Stage + " shader: compile failed: " + e.Log
}

// LinkError is returned when compiled stages fail to link into a program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program: link failed: " + e.Log
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID, or a *CompileError / *LinkError.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, StageVertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, StageFragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLen, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLen, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return shader, nil
}

// infoLog reads a driver info log of logLen bytes (including the terminator).
func infoLog(logLen int32, read func(buf *uint8)) string {
	if logLen <= 0 {
		return "(no log)"
	}
	buf := make([]byte, logLen)
	read(&buf[0])
	return trimLog(buf)
}

func trimLog(buf []byte) string {
	s := string(buf)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "(no log)"
	}
	return s
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
