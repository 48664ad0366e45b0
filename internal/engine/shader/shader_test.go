package shader

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: StageFragment, Log: "0:3(1): error: syntax error"}
	assert.Equal(t, "fragment shader: compile failed: 0:3(1): error: syntax error", err.Error())
}

func TestErrorsAreDistinguishable(t *testing.T) {
	wrapped := fmt.Errorf("building lit program: %w", &LinkError{Log: "varying vNormal not written"})

	var le *LinkError
	var ce *CompileError
	assert.True(t, errors.As(wrapped, &le))
	assert.False(t, errors.As(wrapped, &ce))
	assert.Equal(t, "varying vNormal not written", le.Log)
}

func TestTrimLog(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"nul terminated", []byte("ERROR: 0:1\n\x00\x00"), "ERROR: 0:1"},
		{"no terminator", []byte("  link error  "), "link error"},
		{"empty", []byte{0}, "(no log)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimLog(tt.in))
		})
	}
}

func TestInfoLogEmpty(t *testing.T) {
	called := false
	got := infoLog(0, func(*uint8) { called = true })
	assert.Equal(t, "(no log)", got)
	assert.False(t, called)
}
