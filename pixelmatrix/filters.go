package pixelmatrix

import (
	"fmt"
	"strings"
)

// FilterMethod is the per-scanline filter type byte.
type FilterMethod byte

const (
	FilterNone FilterMethod = iota
	FilterSub
	FilterUp
	FilterAverage
	FilterPaeth
)

var filterNames = [...]string{"none", "sub", "up", "average", "paeth"}

func (f FilterMethod) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return fmt.Sprintf("filter(%d)", byte(f))
}

// ParseFilterMethod converts a name returned by String to a FilterMethod.
func ParseFilterMethod(s string) (FilterMethod, error) {
	for i, name := range filterNames {
		if strings.EqualFold(name, s) {
			return FilterMethod(i), nil
		}
	}
	return 0, fmt.Errorf("png: unknown filter %q", s)
}

// unfilterScanline reverses filter in place. prev is the previous unfiltered
// scanline of the same pass, all zero for the first one.
func unfilterScanline(filter FilterMethod, line, prev []byte, bpp int) error {
	switch filter {
	case FilterNone:
	case FilterSub:
		processSubFilter(line, bpp)
	case FilterUp:
		processUpFilter(line, prev)
	case FilterAverage:
		processAvgFilter(line, prev, bpp)
	case FilterPaeth:
		processPaethFilter(line, prev, bpp)
	default:
		return &FormatError{Reason: fmt.Sprintf("unknown filter type %d", byte(filter))}
	}
	return nil
}

func processSubFilter(line []byte, bpp int) {
	for i := bpp; i < len(line); i++ {
		line[i] += line[i-bpp]
	}
}

func processUpFilter(line, prev []byte) {
	for i := range line {
		line[i] += prev[i]
	}
}

func processAvgFilter(line, prev []byte, bpp int) {
	for i := 0; i < bpp && i < len(line); i++ {
		line[i] += prev[i] / 2
	}
	for i := bpp; i < len(line); i++ {
		line[i] += byte((int(line[i-bpp]) + int(prev[i])) / 2)
	}
}

func processPaethFilter(line, prev []byte, bpp int) {
	for i := 0; i < bpp && i < len(line); i++ {
		line[i] += prev[i]
	}
	for i := bpp; i < len(line); i++ {
		line[i] += byte(paethPredictor(int(line[i-bpp]), int(prev[i]), int(prev[i-bpp])))
	}
}

// filterScanline writes line filtered with filter into dst, which must be
// as long as line.
func filterScanline(dst []byte, filter FilterMethod, line, prev []byte, bpp int) {
	switch filter {
	case FilterSub:
		for i := range line {
			var left byte
			if i >= bpp {
				left = line[i-bpp]
			}
			dst[i] = line[i] - left
		}
	case FilterUp:
		for i := range line {
			dst[i] = line[i] - prev[i]
		}
	case FilterAverage:
		for i := range line {
			var left int
			if i >= bpp {
				left = int(line[i-bpp])
			}
			dst[i] = line[i] - byte((left+int(prev[i]))/2)
		}
	case FilterPaeth:
		for i := range line {
			var left, upperLeft int
			if i >= bpp {
				left, upperLeft = int(line[i-bpp]), int(prev[i-bpp])
			}
			dst[i] = line[i] - byte(paethPredictor(left, int(prev[i]), upperLeft))
		}
	default:
		copy(dst, line)
	}
}

// adaptiveFilter filters line with every method and keeps the one with the
// smallest sum of absolute signed bytes. scratch must hold 5*len(line) bytes.
// Ties go to the lower filter number.
func adaptiveFilter(dst []byte, line, prev []byte, bpp int, scratch []byte) FilterMethod {
	best, bestSum := FilterNone, -1
	for f := FilterNone; f <= FilterPaeth; f++ {
		out := scratch[int(f)*len(line) : int(f+1)*len(line)]
		filterScanline(out, f, line, prev, bpp)
		sum := 0
		for _, b := range out {
			sum += abs(int(int8(b)))
		}
		if bestSum < 0 || sum < bestSum {
			best, bestSum = f, sum
		}
	}
	copy(dst, scratch[int(best)*len(line):int(best+1)*len(line)])
	return best
}
