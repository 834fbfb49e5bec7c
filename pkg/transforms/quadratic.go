package transforms

// Quadratic is the map z -> z² + C.
//
// Iterated from z = 0 with C set to the point being tested it decides membership
// in the Mandelbrot set; iterated from the point itself with a fixed C it decides
// membership in the filled Julia set of C.
type Quadratic struct {
	C complex128
}

func (q Quadratic) Next(z complex128) complex128 {
	return z*z + q.C
}
