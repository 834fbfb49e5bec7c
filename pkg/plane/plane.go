// Package plane maps pixel coordinates of an output image onto the complex plane.
package plane

import (
	"fmt"
	"math"

	"github.com/willbeason/mandelbrot/pkg/pair"
)

// Bounds is the size of an output image in pixels.
type Bounds struct {
	Width, Height int
}

// Pixels is the number of pixels, and so bytes, in a grayscale buffer of these bounds.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Empty reports whether the bounds contain no pixels.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// ParseBounds parses "<width>x<height>", for example "1000x750".
//
// ok is false if either side, or the number of pixels, does not fit in an int.
func ParseBounds(s string) (Bounds, bool) {
	w, h, ok := pair.Parse(s, 'x', pair.Uint)
	if !ok || w > math.MaxInt || h > math.MaxInt {
		return Bounds{}, false
	}

	b := Bounds{Width: int(w), Height: int(h)}
	if b.Width != 0 && b.Height > math.MaxInt/b.Width {
		return Bounds{}, false
	}
	return b, true
}

// Viewport is the rectangle of the complex plane covered by an image.
//
// UpperLeft maps to pixel (0, 0) and LowerRight to pixel (Width, Height).
// Rows grow downward while the imaginary axis grows upward, so a conventional
// viewport has real(UpperLeft) < real(LowerRight) and imag(UpperLeft) > imag(LowerRight).
// Other orientations are not rejected; they mirror the image.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Width is the signed real extent of the viewport.
func (v Viewport) Width() float64 {
	return real(v.LowerRight) - real(v.UpperLeft)
}

// Height is the signed imaginary extent of the viewport.
func (v Viewport) Height() float64 {
	return imag(v.UpperLeft) - imag(v.LowerRight)
}

// PixelToPoint returns the point of the complex plane at pixel (col, row) of an
// image with bounds b. Coordinates outside b are extrapolated, which is how band
// corners one row past the bottom are computed.
func (v Viewport) PixelToPoint(b Bounds, col, row int) complex128 {
	width, height := v.Width(), v.Height()

	return complex(
		real(v.UpperLeft)+float64(col)*width/float64(b.Width),
		// Subtract: row grows downward, imaginary part grows upward.
		imag(v.UpperLeft)-float64(row)*height/float64(b.Height),
	)
}

// Sub returns the viewport covering the pixel rows [top, top+rows) of an image
// with bounds b, spanning its full width.
func (v Viewport) Sub(b Bounds, top, rows int) Viewport {
	return Viewport{
		UpperLeft:  v.PixelToPoint(b, 0, top),
		LowerRight: v.PixelToPoint(b, b.Width, top+rows),
	}
}
