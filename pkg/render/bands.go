package render

import (
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/plane"
)

// DefaultWorkers is the number of bands an image is split into when no count is
// given. It is a fixed policy, independent of the number of CPUs.
const DefaultWorkers = 8

// RowsPerBand is the nominal height of each of workers bands over height rows.
//
// The +1 over-provisions so workers bands always cover every row, even when
// workers does not divide height. The last band may come out short, and for
// small images trailing bands may be empty.
func RowsPerBand(height, workers int) int {
	return height/workers + 1
}

// A Band is a run of whole rows of an image, owned by exactly one worker while
// the image renders.
type Band struct {
	Index int

	// Top is the first row of the band within the whole image.
	Top int

	// Bounds and Viewport describe the band as an image of its own.
	Bounds   plane.Bounds
	Viewport plane.Viewport

	// Pixels is the band's part of the image buffer. Its capacity is capped at
	// its length so it cannot be grown into the next band.
	Pixels []byte
}

// Empty reports whether the band has no rows to render.
func (b Band) Empty() bool {
	return len(b.Pixels) == 0
}

func (b Band) String() string {
	return fmt.Sprintf("band %d: rows [%d, %d)", b.Index, b.Top, b.Top+b.Bounds.Height)
}

// Bands splits pixels, an image of bounds b covering viewport v, into workers
// bands of consecutive rows. The bands' row ranges are disjoint and together
// cover every row of the image; some may be empty.
//
// Panics if len(pixels) != b.Pixels() or workers < 1.
func Bands(pixels []byte, b plane.Bounds, v plane.Viewport, workers int) []Band {
	checkLength(pixels, b)
	if workers < 1 {
		panic(fmt.Sprintf("render: need at least one worker, got %d", workers))
	}

	rows := RowsPerBand(b.Height, workers)
	bands := make([]Band, workers)

	for i := range bands {
		top := min(i*rows, b.Height)
		bottom := min(top+rows, b.Height)
		lo, hi := top*b.Width, bottom*b.Width

		band := Band{
			Index:  i,
			Top:    top,
			Bounds: plane.Bounds{Width: b.Width, Height: bottom - top},
			Pixels: pixels[lo:hi:hi],
		}
		if !b.Empty() {
			// Corners come from the whole image's bounds so each band is an
			// exact sub-rectangle of v.
			band.Viewport = v.Sub(b, top, bottom-top)
		}
		bands[i] = band
	}

	return bands
}
