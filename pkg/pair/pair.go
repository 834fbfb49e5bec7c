// Package pair parses delimited textual pairs such as "400x600" or "-1.20,0.35".
package pair

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// A ParseFunc parses a single field of a pair, failing explicitly on malformed input.
type ParseFunc[T any] func(s string) (T, error)

// Parse splits s at the first occurrence of sep and parses both halves with parse.
//
// ok is false if sep does not appear in s or if either half fails to parse.
// Only the first separator is used as the split point, so "1,2,3" with sep ','
// hands "2,3" to parse for the right half.
func Parse[T any](s string, sep rune, parse ParseFunc[T]) (left, right T, ok bool) {
	i := strings.IndexRune(s, sep)
	if i < 0 {
		return left, right, false
	}

	l, err := parse(s[:i])
	if err != nil {
		return left, right, false
	}
	r, err := parse(s[i+utf8.RuneLen(sep):])
	if err != nil {
		return left, right, false
	}

	return l, r, true
}

// Uint parses an unsigned decimal integer.
func Uint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 0)
	return uint(v), err
}

// Int parses a signed decimal integer.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// Float64 parses a double-precision floating point number.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// Float32 parses a single-precision floating point number.
func Float32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

// ParseComplex parses "<re>,<im>" as a point in the complex plane.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := Parse(s, ',', Float64)
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}
