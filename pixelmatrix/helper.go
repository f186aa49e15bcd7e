package pixelmatrix

// paethPredictor picks whichever of left (a), up (b) and upper-left (c) is
// closest to a+b-c. Ties go to a, then b.
func paethPredictor(a, b, c int) int {
	p := a + b - c
	pa := abs(p - a)
	pb := abs(p - b)
	pc := abs(p - c)

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
