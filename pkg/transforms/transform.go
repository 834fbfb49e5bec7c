package transforms

// A Transform is one step of an iterated map on the complex plane.
type Transform interface {
	Next(z complex128) complex128
}

// Escaped reports whether z lies outside the circle of radius 2 about the origin.
// Once an orbit of a Quadratic map leaves that circle it diverges.
func Escaped(z complex128) bool {
	return real(z)*real(z)+imag(z)*imag(z) > 4.0
}

var _ Transform = Quadratic{}
