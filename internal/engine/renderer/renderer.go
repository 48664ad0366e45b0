// Package renderer owns every OpenGL object used to draw the lit mesh.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/engine/lighting"
	"github.com/Faultbox/spinlight/internal/engine/mesh"
	"github.com/Faultbox/spinlight/internal/engine/shader"
	"github.com/Faultbox/spinlight/internal/engine/shaders"
	"github.com/Faultbox/spinlight/internal/engine/window"
	"github.com/Faultbox/spinlight/internal/logger"
	"github.com/Faultbox/spinlight/pkg/math"
)

// Renderer is the GPU context for one mesh and the lit shader program.
// It must be created after the OpenGL context and closed before it.
type Renderer struct {
	width  int32
	height int32

	program uint32

	vao         uint32
	positionVBO uint32
	normalVBO   uint32
	ebo         uint32
	indexCount  int32

	locModel         int32
	locView          int32
	locProj          int32
	locNormalMatrix  int32
	locLightPosition int32
	locLightColor    int32
	locAmbientColor  int32
	locShininess     int32
}

// New initializes OpenGL, builds the lit program and uploads the mesh.
// The mesh must already be validated.
func New(m *mesh.Mesh, width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, &window.ContextUnavailableError{
			Backend: "opengl",
			Err:     fmt.Errorf("failed to initialize OpenGL: %w", err),
		}
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	r := &Renderer{
		width:  int32(width),
		height: int32(height),
	}

	gl.Viewport(0, 0, r.width, r.height)
	gl.DepthFunc(gl.LESS)

	program, err := shader.CompileProgram(shaders.LitVertexShader, shaders.LitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	r.program = program

	r.locModel = r.uniform("uModel")
	r.locView = r.uniform("uView")
	r.locProj = r.uniform("uProj")
	r.locNormalMatrix = r.uniform("uNormalMatrix")
	r.locLightPosition = r.uniform("uLightPosition")
	r.locLightColor = r.uniform("uLightColor")
	r.locAmbientColor = r.uniform("uAmbientColor")
	r.locShininess = r.uniform("uShininess")

	r.upload(m)

	logger.Debug("renderer ready",
		zap.Uint32("program", r.program),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return r, nil
}

// uniform looks up a uniform location. Missing uniforms are logged; GL
// silently ignores uploads to location -1.
func (r *Renderer) uniform(name string) int32 {
	loc := shader.GetUniform(r.program, name)
	if loc < 0 {
		logger.Warn("uniform not active in lit program", zap.String("uniform", name))
	}
	return loc
}

// upload creates the VAO with one buffer per attribute plus the index buffer.
func (r *Renderer) upload(m *mesh.Mesh) {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(shaders.PositionLocation, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(shaders.PositionLocation)

	gl.GenBuffers(1, &r.normalVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.normalVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*4, gl.Ptr(m.Normals), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(shaders.NormalLocation, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(shaders.NormalLocation)

	// The element buffer binding is part of the VAO state.
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	r.indexCount = int32(len(m.Indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetCamera uploads the view and projection matrices. They are set once.
func (r *Renderer) SetCamera(view, proj math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProj, 1, false, proj.Ptr())
}

// SetLighting uploads the light parameters. They are set once.
func (r *Renderer) SetLighting(p lighting.Phong) {
	gl.UseProgram(r.program)
	gl.Uniform3f(r.locLightPosition, p.Light.Position.X, p.Light.Position.Y, p.Light.Position.Z)
	gl.Uniform3f(r.locLightColor, p.Light.Color.X, p.Light.Color.Y, p.Light.Color.Z)
	gl.Uniform3f(r.locAmbientColor, p.Ambient.X, p.Ambient.Y, p.Ambient.Z)
	gl.Uniform1f(r.locShininess, p.Shininess)
}

// Submit uploads the per-frame model and normal matrices.
func (r *Renderer) Submit(model math.Mat4, normal math.Mat3) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.UniformMatrix3fv(r.locNormalMatrix, 1, false, normal.Ptr())
}

// Draw clears to black and draws the mesh.
func (r *Renderer) Draw() {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	pixels = make([]byte, int(r.width)*int(r.height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, r.width, r.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, int(r.width), int(r.height)
}

// Close releases every GL object owned by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	for _, buf := range []*uint32{&r.positionVBO, &r.normalVBO, &r.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
