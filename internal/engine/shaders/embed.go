// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// Attribute locations bound by layout qualifiers in lit.vert.
const (
	PositionLocation = 0
	NormalLocation   = 1
)

// LitVertexShader transforms positions to clip space and normals to world space.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader applies ambient, diffuse and specular lighting.
//
//go:embed lit.frag
var LitFragmentShader string
