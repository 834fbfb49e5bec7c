package config

import (
	"errors"
	"fmt"
)

// Usage is the command line of the mandelbrot tool.
const Usage = "mandelbrot FILE PIXELS UPPERLEFT LOWERRIGHT"

// Example is a typical invocation of the mandelbrot tool.
const Example = "mandelbrot mandel.png 1000x750 -1.20,0.35 -1,0.20"

// ArgError is a command-line argument or setting that could not be used.
type ArgError struct {
	Arg    string
	Value  string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Arg, e.Value, e.Reason)
}

// IsArgError reports whether err is, or wraps, an *ArgError.
func IsArgError(err error) bool {
	var argErr *ArgError
	return errors.As(err, &argErr)
}
