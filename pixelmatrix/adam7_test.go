package pixelmatrix

import "testing"

func TestAdam7PassSizes(t *testing.T) {
	tests := []struct {
		width, height int
		want          [7][2]int
	}{
		{10, 10, [7][2]int{{2, 2}, {1, 2}, {3, 1}, {2, 3}, {5, 2}, {5, 5}, {10, 5}}},
		{1, 1, [7][2]int{{1, 1}, {0, 1}, {1, 0}, {0, 1}, {1, 0}, {0, 1}, {1, 0}}},
		{8, 8, [7][2]int{{1, 1}, {1, 1}, {2, 1}, {2, 2}, {4, 2}, {4, 4}, {8, 4}}},
		{3, 2, [7][2]int{{1, 1}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {1, 1}, {3, 1}}},
	}
	for _, tt := range tests {
		for i, p := range adam7 {
			w, h := p.size(tt.width, tt.height)
			if [2]int{w, h} != tt.want[i] {
				t.Errorf("%dx%d pass %d = %dx%d, want %v", tt.width, tt.height, i+1, w, h, tt.want[i])
			}
		}
	}
}

func TestAdam7CoversEveryPixelOnce(t *testing.T) {
	for width := 1; width <= 17; width++ {
		for height := 1; height <= 17; height++ {
			seen := make([]int, width*height)
			for _, p := range adam7 {
				pw, ph := p.size(width, height)
				for y := 0; y < ph; y++ {
					for x := 0; x < pw; x++ {
						seen[p.index(x, y, width)]++
					}
				}
			}
			for i, n := range seen {
				if n != 1 {
					t.Fatalf("%dx%d: pixel %d covered %d times", width, height, i, n)
				}
			}
		}
	}
}

func TestPasses(t *testing.T) {
	if got := passes(false); len(got) != 1 || got[0] != fullPass {
		t.Errorf("passes(false) = %v", got)
	}
	if got := passes(true); len(got) != 7 {
		t.Errorf("passes(true) has %d passes", len(got))
	}
	if w, h := fullPass.size(5, 3); w != 5 || h != 3 {
		t.Errorf("fullPass.size(5, 3) = %d, %d", w, h)
	}
}
