package plane

import "testing"

func TestPixelToPoint(t *testing.T) {
	v := Viewport{UpperLeft: complex(-1.0, 1.0), LowerRight: complex(1.0, -1.0)}

	got := v.PixelToPoint(Bounds{Width: 100, Height: 200}, 25, 175)
	want := complex(-0.5, -0.75)
	if got != want {
		t.Errorf("PixelToPoint = %v, want %v", got, want)
	}
}

func TestPixelToPointCorners(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		v      Viewport
	}{
		{
			name:   "unit square",
			bounds: Bounds{Width: 3, Height: 3},
			v:      Viewport{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)},
		},
		{
			name:   "whole set",
			bounds: Bounds{Width: 1000, Height: 750},
			v:      Viewport{UpperLeft: complex(-2, 1.5), LowerRight: complex(1, -1.5)},
		},
		{
			name:   "off center",
			bounds: Bounds{Width: 7, Height: 9},
			v:      Viewport{UpperLeft: complex(-1.25, 0.5), LowerRight: complex(0.75, -0.25)},
		},
		{
			name:   "mirrored",
			bounds: Bounds{Width: 4, Height: 2},
			v:      Viewport{UpperLeft: complex(1, -1), LowerRight: complex(-1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.PixelToPoint(tt.bounds, 0, 0); got != tt.v.UpperLeft {
				t.Errorf("pixel (0,0) = %v, want %v", got, tt.v.UpperLeft)
			}
			got := tt.v.PixelToPoint(tt.bounds, tt.bounds.Width, tt.bounds.Height)
			if got != tt.v.LowerRight {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.bounds.Width, tt.bounds.Height, got, tt.v.LowerRight)
			}
		})
	}
}

func TestPixelToPointRowsGoDown(t *testing.T) {
	v := Viewport{UpperLeft: complex(-2, 1), LowerRight: complex(1, -1)}
	b := Bounds{Width: 30, Height: 20}

	top := v.PixelToPoint(b, 0, 0)
	below := v.PixelToPoint(b, 0, 1)
	if imag(below) >= imag(top) {
		t.Errorf("imag at row 1 = %v, want less than row 0 = %v", imag(below), imag(top))
	}
}

func TestSub(t *testing.T) {
	v := Viewport{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}
	b := Bounds{Width: 4, Height: 4}

	got := v.Sub(b, 1, 2)
	want := Viewport{UpperLeft: complex(-1, 0.5), LowerRight: complex(1, -0.5)}
	if got != want {
		t.Errorf("Sub(1, 2) = %+v, want %+v", got, want)
	}

	if whole := v.Sub(b, 0, 4); whole != v {
		t.Errorf("Sub(0, 4) = %+v, want %+v", whole, v)
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		s    string
		want Bounds
		ok   bool
	}{
		{s: "400x600", want: Bounds{Width: 400, Height: 600}, ok: true},
		{s: "1000x750", want: Bounds{Width: 1000, Height: 750}, ok: true},
		{s: "0x0", want: Bounds{}, ok: true},
		{s: "-400x600"},
		{s: "400,600"},
		{s: ""},
		// Sides or pixel counts too large for an int.
		{s: "18446744073709551615x1"},
		{s: "0x18446744073709551615"},
		{s: "4294967296x4294967296"},
		{s: "3037000500x3037000500"},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, ok := ParseBounds(tt.s)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseBounds(%q) = (%v, %v), want (%v, %v)", tt.s, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Width: 3, Height: 5}
	if b.Pixels() != 15 {
		t.Errorf("Pixels() = %d, want 15", b.Pixels())
	}
	if b.Empty() {
		t.Error("3x5 should not be empty")
	}
	if !(Bounds{Width: 3}).Empty() {
		t.Error("3x0 should be empty")
	}
	if b.String() != "3x5" {
		t.Errorf("String() = %q, want \"3x5\"", b.String())
	}
}
