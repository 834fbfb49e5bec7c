package sink

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/willbeason/mandelbrot/pkg/plane"
)

var fixture = []byte{252, 250, 252, 244, 0, 0, 244, 0, 0}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "mandel.png", want: PNG},
		{path: "mandel.PNG", want: PNG},
		{path: "mandel.tif", want: TIFF},
		{path: "out/mandel.tiff", want: TIFF},
		{path: "mandel.bmp", want: BMP},
		{path: "mandel", want: PNG},
		{path: "mandel.jpg", want: PNG},
	}

	for _, tt := range tests {
		if got := FormatFor(tt.path); got != tt.want {
			t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFileWrite(t *testing.T) {
	tests := []struct {
		name   string
		decode func(r *os.File) (image.Image, error)
	}{
		{name: "mandel.png", decode: func(r *os.File) (image.Image, error) { return png.Decode(r) }},
		{name: "mandel.tiff", decode: func(r *os.File) (image.Image, error) { return tiff.Decode(r) }},
		{name: "mandel.bmp", decode: func(r *os.File) (image.Image, error) { return bmp.Decode(r) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)
			if err := (File{Path: path}).Write(fixture, plane.Bounds{Width: 3, Height: 3}); err != nil {
				t.Fatalf("Write: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer f.Close()

			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := img.Bounds(); got != image.Rect(0, 0, 3, 3) {
				t.Fatalf("bounds = %v, want 3x3", got)
			}

			for i, want := range fixture {
				x, y := i%3, i/3
				r, _, _, _ := img.At(x, y).RGBA()
				if got := byte(r >> 8); got != want {
					t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
				}
			}
		})
	}
}

func TestFileWritePNGIsGray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandel.png")
	if err := (File{Path: path}).Write(fixture, plane.Bounds{Width: 3, Height: 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	if !bytes.Equal(gray.Pix, fixture) {
		t.Errorf("Pix = %v, want %v", gray.Pix, fixture)
	}
}

func TestFileWriteCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "mandel.png")

	err := (File{Path: path}).Write(fixture, plane.Bounds{Width: 3, Height: 3})
	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Write = %v, want *WriteError", err)
	}
	if writeErr.Op != "create" || writeErr.Path != path {
		t.Errorf("WriteError = %+v, want create of %s", writeErr, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Write error %v should wrap os.ErrNotExist", err)
	}
}

func TestFileWriteScaled(t *testing.T) {
	b := plane.Bounds{Width: 8, Height: 6}
	pixels := bytes.Repeat([]byte{200}, b.Pixels())
	path := filepath.Join(t.TempDir(), "mandel.png")

	if err := (File{Path: path, Scale: 2}).Write(pixels, b); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("scaled image is %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}

func TestDownscale(t *testing.T) {
	src := Gray(bytes.Repeat([]byte{128}, 16), plane.Bounds{Width: 4, Height: 4})

	same, err := Downscale(src, 1)
	if err != nil || same != src {
		t.Errorf("Downscale(1) = (%p, %v), want the source image", same, err)
	}

	half, err := Downscale(src, 2)
	if err != nil {
		t.Fatalf("Downscale(2): %v", err)
	}
	if half.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Downscale(2) bounds = %v, want 2x2", half.Bounds())
	}
	for i, p := range half.Pix {
		// Filter weights are normalized in floating point, so allow rounding.
		if p < 127 || p > 129 {
			t.Errorf("uniform image pixel %d = %d after scaling, want 128", i, p)
		}
	}

	if _, err := Downscale(src, 5); !errors.Is(err, ErrScale) {
		t.Errorf("Downscale(5) = %v, want ErrScale", err)
	}
}

func TestGray(t *testing.T) {
	img := Gray(fixture, plane.Bounds{Width: 3, Height: 3})
	if img.GrayAt(1, 0).Y != 250 || img.GrayAt(0, 2).Y != 244 {
		t.Error("Gray does not lay pixels out row-major")
	}

	defer func() {
		if recover() == nil {
			t.Error("Gray with a short buffer should panic")
		}
	}()
	Gray(fixture[:8], plane.Bounds{Width: 3, Height: 3})
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Format("gif"), image.NewGray(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("Encode with an unknown format should fail")
	}
}
