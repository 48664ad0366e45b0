package window

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenUnknownBackend(t *testing.T) {
	s, err := Open(Config{Backend: "directfb", Width: 640, Height: 480})
	require.Error(t, err)
	assert.Nil(t, s)

	var cue *ContextUnavailableError
	require.True(t, errors.As(err, &cue))
	assert.Equal(t, "directfb", cue.Backend)
	assert.Contains(t, err.Error(), `unknown window backend "directfb"`)
}

func TestContextUnavailableErrorUnwrap(t *testing.T) {
	cause := errors.New("no display")
	err := fmt.Errorf("setup: %w", &ContextUnavailableError{Backend: BackendGLFW, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "setup: glfw: rendering context unavailable: no display", err.Error())
}
