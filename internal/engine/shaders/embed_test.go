package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLitShadersDeclareUniforms(t *testing.T) {
	for _, name := range []string{"uModel", "uView", "uProj", "uNormalMatrix"} {
		assert.Contains(t, LitVertexShader, name)
	}
	for _, name := range []string{"uLightPosition", "uLightColor", "uAmbientColor", "uShininess"} {
		assert.Contains(t, LitFragmentShader, name)
	}
}

func TestLitShadersTargetCoreProfile(t *testing.T) {
	assert.True(t, strings.HasPrefix(LitVertexShader, "#version 410 core"))
	assert.True(t, strings.HasPrefix(LitFragmentShader, "#version 410 core"))
	assert.Contains(t, LitVertexShader, "layout (location = 0) in vec3 aPosition")
	assert.Contains(t, LitVertexShader, "layout (location = 1) in vec3 aNormal")
}
