package render

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/plane"
)

// Options control a render. The zero value renders the Mandelbrot set with
// DefaultWorkers bands and escape.DefaultLimit iterations, without logging.
// Workers or Limit below 1 select their defaults.
type Options struct {
	// Workers is the number of bands, and so goroutines, the image is split into.
	Workers int

	// Limit is the iteration cap per pixel.
	Limit int

	Evaluator escape.Evaluator

	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = DefaultWorkers
	}
	if o.Limit < 1 {
		o.Limit = escape.DefaultLimit
	}
	if o.Evaluator == nil {
		o.Evaluator = escape.Mandelbrot{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// WorkerPanic is raised by Parallel when a band's worker panicked.
type WorkerPanic struct {
	Band  Band
	Value any
	Stack []byte
}

func (p *WorkerPanic) Error() string {
	return fmt.Sprintf("render: %v panicked: %v", p.Band, p.Value)
}

// Render allocates a buffer for bounds b and renders viewport v into it.
func Render(b plane.Bounds, v plane.Viewport, opts Options) []byte {
	pixels := make([]byte, b.Pixels())
	Parallel(pixels, b, v, opts)
	return pixels
}

// Parallel renders viewport v into pixels, an image of bounds b, with one
// goroutine per non-empty band. It returns once every band is done.
//
// There is no partial result: if any worker panics, Parallel waits for the
// others and then panics with a *WorkerPanic on the caller's goroutine.
func Parallel(pixels []byte, b plane.Bounds, v plane.Viewport, opts Options) {
	opts = opts.withDefaults()
	log := opts.Logger
	start := time.Now()

	bands := Bands(pixels, b, v, opts.Workers)
	log.Debug("split image into bands",
		zap.Stringer("bounds", b),
		zap.Int("workers", opts.Workers),
		zap.Int("rows_per_band", RowsPerBand(b.Height, opts.Workers)))

	// Each worker only writes its own index.
	failures := make([]*WorkerPanic, len(bands))

	var wg sync.WaitGroup
	for i, band := range bands {
		i, band := i, band
		if band.Empty() {
			log.Debug("skipping empty band", zap.Int("band", i))
			continue
		}

		log.Debug("rendering band",
			zap.Stringer("band", band),
			zap.Complex128("upper_left", band.Viewport.UpperLeft),
			zap.Complex128("lower_right", band.Viewport.LowerRight))

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failures[i] = &WorkerPanic{Band: band, Value: r, Stack: debug.Stack()}
				}
			}()

			tile(band.Pixels, b, v, band.Top, opts.Evaluator, opts.Limit)
		}()
	}
	wg.Wait()

	for _, failure := range failures {
		if failure != nil {
			log.Error("render failed", zap.Stringer("band", failure.Band), zap.Any("panic", failure.Value))
			panic(failure)
		}
	}

	log.Info("rendered image",
		zap.Stringer("bounds", b),
		zap.Int("limit", opts.Limit),
		zap.Duration("elapsed", time.Since(start)))
}
