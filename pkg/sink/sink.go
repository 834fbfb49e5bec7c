// Package sink persists rendered grayscale buffers as image files.
package sink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/willbeason/mandelbrot/pkg/plane"
)

// A Sink accepts a finished row-major grayscale buffer of bounds b.
type Sink interface {
	Write(pixels []byte, b plane.Bounds) error
}

// Format is an image file encoding.
type Format string

const (
	PNG  Format = "png"
	TIFF Format = "tiff"
	BMP  Format = "bmp"
)

// FormatFor picks the encoding for path from its extension. Anything
// unrecognized is written as PNG.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	default:
		return PNG
	}
}

// WriteError is a failure to persist an image.
type WriteError struct {
	Path string
	// Op is the step that failed: "create", "encode" or "close".
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// File writes images to the file at Path, replacing it.
type File struct {
	Path string

	// Scale, if greater than 1, shrinks the image by this factor before encoding.
	Scale int
}

// Write encodes pixels to f.Path in the format its extension names.
func (f File) Write(pixels []byte, b plane.Bounds) (err error) {
	img, err := Downscale(Gray(pixels, b), f.Scale)
	if err != nil {
		return err
	}

	out, err := os.Create(f.Path)
	if err != nil {
		return &WriteError{Path: f.Path, Op: "create", Err: err}
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = &WriteError{Path: f.Path, Op: "close", Err: closeErr}
		}
	}()

	if err := Encode(out, FormatFor(f.Path), img); err != nil {
		return &WriteError{Path: f.Path, Op: "encode", Err: err}
	}
	return nil
}

// Encode writes img to w as format.
func Encode(w io.Writer, format Format, img image.Image) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}

// Gray wraps pixels as an 8-bit luminance image without copying.
//
// Panics if len(pixels) != b.Pixels().
func Gray(pixels []byte, b plane.Bounds) *image.Gray {
	if len(pixels) != b.Pixels() {
		panic(fmt.Sprintf("sink: buffer holds %d pixels, bounds %v need %d", len(pixels), b, b.Pixels()))
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// ErrScale is returned when an image is too small to shrink by the requested factor.
var ErrScale = errors.New("image too small to scale")

// Downscale shrinks img by an integer factor. A factor of 1 or less returns img.
func Downscale(img *image.Gray, factor int) (*image.Gray, error) {
	if factor <= 1 {
		return img, nil
	}

	size := img.Bounds().Size()
	w, h := size.X/factor, size.Y/factor
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d by %d", ErrScale, size.X, size.Y, factor)
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
