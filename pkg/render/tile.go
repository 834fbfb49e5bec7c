// Package render fills grayscale pixel buffers with escape-time images, splitting
// the work into horizontal bands rendered concurrently.
package render

import (
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/plane"
)

// Tile renders the whole of pixels, a row-major buffer of bounds b covering
// viewport v, one byte per pixel.
//
// Panics if len(pixels) != b.Pixels().
func Tile(pixels []byte, b plane.Bounds, v plane.Viewport, e escape.Evaluator, limit int) {
	checkLength(pixels, b)
	tile(pixels, b, v, 0, e, limit)
}

// tile renders the rows of an image of bounds full starting at row top into
// pixels. Every pixel is mapped through the full viewport, so a row renders
// identically whichever band it falls in.
func tile(pixels []byte, full plane.Bounds, v plane.Viewport, top int, e escape.Evaluator, limit int) {
	w := full.Width
	if w <= 0 {
		return
	}

	rows := len(pixels) / w
	for row := 0; row < rows; row++ {
		line := pixels[row*w : (row+1)*w]
		for col := range line {
			line[col] = Shade(e.Escape(v.PixelToPoint(full, col, top+row), limit))
		}
	}
}

// Shade is the gray level of a pixel with escape time n.
//
// Members of the set are black. Points that escape quickly are bright and fade
// toward black near the boundary of the set.
func Shade(n int, escaped bool) byte {
	if !escaped {
		return 0
	}
	return 255 - byte(min(n, 255))
}

func checkLength(pixels []byte, b plane.Bounds) {
	if len(pixels) != b.Pixels() {
		panic(fmt.Sprintf("render: buffer holds %d pixels, bounds %v need %d", len(pixels), b, b.Pixels()))
	}
}
