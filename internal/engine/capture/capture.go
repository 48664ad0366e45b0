// Package capture writes rendered frames to PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Writer saves frames into a directory.
type Writer struct {
	outputDir string
	prefix    string
}

// NewWriter creates a frame writer. prefix usually carries the run ID.
func NewWriter(outputDir, prefix string) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// Filename returns the path used for the given frame number.
func (w *Writer) Filename(frame uint64) string {
	name := fmt.Sprintf("%s_frame%05d.png", w.prefix, frame)
	if w.outputDir != "" {
		return filepath.Join(w.outputDir, name)
	}
	return name
}

// FromPixels converts bottom-up RGBA rows (as returned by glReadPixels)
// into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// WriteFrame stores one frame and returns the file path.
func (w *Writer) WriteFrame(frame uint64, pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}

	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := w.Filename(frame)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := encode(file, img); err != nil {
		return "", err
	}
	return filename, nil
}

// encode writes img as PNG and closes wc. A failed close is an error:
// buffered data may not have reached the disk.
func encode(wc io.WriteCloser, img image.Image) error {
	if err := png.Encode(wc, img); err != nil {
		wc.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
