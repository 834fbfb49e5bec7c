// Package escape decides membership in the Mandelbrot and filled Julia sets by
// escape time: how many steps of z -> z² + c it takes an orbit to leave the
// circle of radius 2.
package escape

import "github.com/willbeason/mandelbrot/pkg/transforms"

// DefaultLimit is the iteration cap used when none is given. It matches the
// 256 gray levels of the output, so every escape count maps to its own shade.
const DefaultLimit = 255

// An Evaluator decides whether the orbit for point p escapes within limit steps.
//
// If it does, n is the number of updates applied before the orbit was first seen
// outside the escape radius, and 0 <= n < limit. Otherwise escaped is false and p
// is treated as a member of the set.
type Evaluator interface {
	Escape(p complex128, limit int) (n int, escaped bool)
}

// Mandelbrot tests points for membership in the Mandelbrot set.
type Mandelbrot struct{}

func (Mandelbrot) Escape(p complex128, limit int) (int, bool) {
	return Time(p, limit)
}

// Julia tests points for membership in the filled Julia set of C.
type Julia struct {
	C complex128
}

func (j Julia) Escape(p complex128, limit int) (int, bool) {
	return orbit(p, transforms.Quadratic{C: j.C}, limit)
}

// Time is the escape time of c in the Mandelbrot set, iterating from z = 0.
func Time(c complex128, limit int) (int, bool) {
	return orbit(0, transforms.Quadratic{C: c}, limit)
}

// orbit checks z before each update, so a starting point already outside the
// radius escapes at 0.
func orbit(z complex128, q transforms.Quadratic, limit int) (int, bool) {
	for i := 0; i < limit; i++ {
		if transforms.Escaped(z) {
			return i, true
		}
		z = q.Next(z)
	}
	return 0, false
}

var (
	_ Evaluator = Mandelbrot{}
	_ Evaluator = Julia{}
)
