package pixelmatrix

import (
	"errors"
	"image"
	imgcolor "image/color"
	"testing"

	"github.com/brycejohnston/chunky-png/color"
)

// pseudoColor returns distinct, well spread colors for distinct i.
func pseudoColor(i int) color.Color {
	return color.Color(uint32(i+1) * 2654435761)
}

// patternMatrix fills a width x height matrix with colors from cs.
func patternMatrix(t testing.TB, width, height int, cs []color.Color) *Matrix {
	t.Helper()
	m := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := m.Set(x, y, cs[(x*7+y*13+x*y*3)%len(cs)]); err != nil {
				t.Fatal(err)
			}
		}
	}
	return m
}

func assertMatrixEqual(t *testing.T, got, want *Matrix) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for i, c := range want.Pixels() {
		if got.Pixels()[i] != c {
			t.Fatalf("pixel (%d, %d) = %v, want %v", i%want.Width(), i/want.Width(), got.Pixels()[i], c)
		}
	}
}

func TestNew(t *testing.T) {
	m := New(3, 2)
	if m.Width() != 3 || m.Height() != 2 || len(m.Pixels()) != 6 {
		t.Fatalf("New(3, 2) has size %dx%d", m.Width(), m.Height())
	}
	for _, c := range m.Pixels() {
		if c != color.Transparent {
			t.Fatalf("New filled with %v", c)
		}
	}
	for _, c := range NewFilled(2, 2, color.White).Pixels() {
		if c != color.White {
			t.Fatalf("NewFilled filled with %v", c)
		}
	}
}

func TestMatrix_GetSet(t *testing.T) {
	m := New(4, 3)
	if err := m.Set(3, 2, color.Black); err != nil {
		t.Fatal(err)
	}
	if c, err := m.Get(3, 2); err != nil || c != color.Black {
		t.Errorf("Get(3, 2) = %v, %v", c, err)
	}
	if m.Row(2)[3] != color.Black {
		t.Error("Row does not see Set")
	}

	for _, pt := range []image.Point{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		var argErr *color.ArgumentError
		if _, err := m.Get(pt.X, pt.Y); !errors.As(err, &argErr) {
			t.Errorf("Get(%v) = %v, want *color.ArgumentError", pt, err)
		}
		if err := m.Set(pt.X, pt.Y, color.White); !errors.As(err, &argErr) {
			t.Errorf("Set(%v) = %v, want *color.ArgumentError", pt, err)
		}
	}
}

func TestFromPixels(t *testing.T) {
	pixels := []color.Color{color.White, color.Black, color.White, color.Black}
	m, err := FromPixels(2, 2, pixels)
	if err != nil {
		t.Fatal(err)
	}
	pixels[0] = color.Transparent
	if c, _ := m.Get(0, 0); c != color.White {
		t.Error("FromPixels shares memory with its input")
	}

	if _, err := FromPixels(3, 2, pixels); err == nil {
		t.Error("FromPixels accepted a wrong pixel count")
	}
}

func TestMatrix_Equal(t *testing.T) {
	a := patternMatrix(t, 5, 4, []color.Color{color.White, color.Black, 0x336699ff})
	b := patternMatrix(t, 5, 4, []color.Color{color.White, color.Black, 0x336699ff})
	if !a.Equal(b) {
		t.Error("identical matrices differ")
	}
	b.Set(4, 3, 0x12345678)
	if a.Equal(b) {
		t.Error("Equal ignored a changed pixel")
	}
	if a.Equal(New(4, 5)) {
		t.Error("Equal ignored the size")
	}
}

func TestMatrix_Image(t *testing.T) {
	var img image.Image = patternMatrix(t, 3, 2, []color.Color{0xff000080, 0x00ff00ff})
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	n := imgcolor.NRGBAModel.Convert(img.At(0, 0)).(imgcolor.NRGBA)
	if n != (imgcolor.NRGBA{R: 0xff, A: 0x80}) {
		t.Errorf("At(0, 0) = %+v", n)
	}
	if img.At(5, 5) != color.Transparent {
		t.Error("At outside the bounds is not transparent")
	}
	if got := img.ColorModel().Convert(imgcolor.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != color.Color(0x01020304) {
		t.Errorf("ColorModel().Convert = %v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	src.SetNRGBA(2, 3, imgcolor.NRGBA{R: 10, G: 100, B: 150, A: 255})
	src.SetNRGBA(4, 4, imgcolor.NRGBA{R: 1, G: 2, B: 3, A: 100})

	m := FromImage(src)
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("size = %dx%d", m.Width(), m.Height())
	}
	if c, _ := m.Get(0, 0); c != 0x0a6496ff {
		t.Errorf("(0, 0) = %v", c)
	}
	if c, _ := m.Get(2, 1); c != 0x01020364 {
		t.Errorf("(2, 1) = %v", c)
	}

	if !FromImage(m).Equal(m) {
		t.Error("FromImage of a matrix is not a copy")
	}
}
