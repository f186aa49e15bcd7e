package color

import "testing"

func TestPixelBytesize(t *testing.T) {
	tests := []struct {
		mode  ColorMode
		depth int
		want  int
	}{
		{Truecolor, 8, 3},
		{Truecolor, 16, 6},
		{TruecolorAlpha, 16, 8},
		{GrayscaleAlpha, 16, 4},
		{Truecolor, 4, 1},
		{Indexed, 2, 1},
		{GrayscaleAlpha, 1, 1},
		{Grayscale, 1, 1},
	}
	for _, tt := range tests {
		if got := PixelBytesize(tt.mode, tt.depth); got != tt.want {
			t.Errorf("PixelBytesize(%v, %d) = %d, want %d", tt.mode, tt.depth, got, tt.want)
		}
	}
}

func TestScanlineBytesize(t *testing.T) {
	modes := []struct {
		mode  ColorMode
		depth int
	}{
		{Grayscale, 1}, {Grayscale, 2}, {Indexed, 4}, {Truecolor, 8},
		{GrayscaleAlpha, 16}, {TruecolorAlpha, 16},
	}
	for _, md := range modes {
		for width := 0; width <= 70; width++ {
			want := (width*md.mode.SamplesPerPixel()*md.depth + 7) / 8
			if got := ScanlineBytesize(md.mode, md.depth, width); got != want {
				t.Errorf("ScanlineBytesize(%v, %d, %d) = %d, want %d", md.mode, md.depth, width, got, want)
			}
		}
	}
}

func TestPassBytesize(t *testing.T) {
	tests := []struct {
		name          string
		mode          ColorMode
		depth         int
		width, height int
		want          int
	}{
		{"truecolor 10x10", Truecolor, 8, 10, 10, 310},
		{"zero width", Truecolor, 8, 0, 10, 0},
		{"zero height", Truecolor, 8, 10, 0, 0},
		{"1-bit gray rounds up", Grayscale, 1, 9, 2, 6},
		{"16-bit rgba", TruecolorAlpha, 16, 3, 1, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PassBytesize(tt.mode, tt.depth, tt.width, tt.height); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColorMode_AllowsBitDepth(t *testing.T) {
	legal := map[ColorMode][]int{
		Grayscale:      {1, 2, 4, 8, 16},
		Truecolor:      {8, 16},
		Indexed:        {1, 2, 4, 8},
		GrayscaleAlpha: {8, 16},
		TruecolorAlpha: {8, 16},
	}
	for mode, depths := range legal {
		allowed := map[int]bool{}
		for _, d := range depths {
			allowed[d] = true
		}
		for _, d := range []int{0, 1, 2, 3, 4, 8, 12, 16, 32} {
			if got := mode.AllowsBitDepth(d); got != allowed[d] {
				t.Errorf("%v.AllowsBitDepth(%d) = %v, want %v", mode, d, got, allowed[d])
			}
		}
	}
	if ColorMode(1).Valid() || ColorMode(5).Valid() {
		t.Error("color types 1 and 5 must be invalid")
	}
}

func TestParseColorMode(t *testing.T) {
	for _, m := range []ColorMode{Grayscale, Truecolor, Indexed, GrayscaleAlpha, TruecolorAlpha} {
		got, err := ParseColorMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseColorMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseColorMode("cmyk"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
