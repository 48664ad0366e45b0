package capture

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRowFrame is 1x2: the bottom row (first in GL order) is red, the top row blue.
func twoRowFrame() []byte {
	return []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
}

func TestFromPixelsFlipsRows(t *testing.T) {
	img, err := FromPixels(twoRowFrame(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0), "top row")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1), "bottom row")
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	_, err := FromPixels(make([]byte, 7), 1, 2)
	assert.ErrorContains(t, err, "size mismatch")

	_, err = FromPixels(nil, 0, 0)
	assert.Error(t, err)
}

func TestWriteFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures")
	w := NewWriter(dir, "run")

	path, err := w.WriteFrame(90, twoRowFrame(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run_frame00090.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

func TestFilenameWithoutDir(t *testing.T) {
	assert.Equal(t, "x_frame00001.png", NewWriter("", "x").Filename(1))
}

// failingFile accepts writes but fails on Close, like a full disk flushing.
type failingFile struct {
	bytes.Buffer
	closed bool
}

func (f *failingFile) Close() error {
	f.closed = true
	return errors.New("no space left on device")
}

func TestEncodeReportsCloseError(t *testing.T) {
	img, err := FromPixels(twoRowFrame(), 1, 2)
	require.NoError(t, err)

	f := &failingFile{}
	err = encode(f, img)
	assert.ErrorContains(t, err, "closing file: no space left on device")
	assert.True(t, f.closed)
	assert.NotZero(t, f.Len())
}
