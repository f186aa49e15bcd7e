package pixelmatrix

// pass is a subgrid of the image: every dx-th column starting at x0 of every
// dy-th row starting at y0.
type pass struct {
	x0, y0, dx, dy int
}

var adam7 = [7]pass{
	{0, 0, 8, 8},
	{4, 0, 8, 8},
	{0, 4, 4, 8},
	{2, 0, 4, 4},
	{0, 2, 2, 4},
	{1, 0, 2, 2},
	{0, 1, 1, 2},
}

var fullPass = pass{0, 0, 1, 1}

// size returns the width and height of the subgrid within a width x height
// image. Either may be 0.
func (p pass) size(width, height int) (int, int) {
	return (width - p.x0 + p.dx - 1) / p.dx, (height - p.y0 + p.dy - 1) / p.dy
}

// index returns the offset into the pixel slice of pass pixel (x, y).
func (p pass) index(x, y, width int) int {
	return (p.y0+y*p.dy)*width + p.x0 + x*p.dx
}

// passes returns the passes the image data is stored in.
func passes(interlace bool) []pass {
	if interlace {
		return adam7[:]
	}
	return []pass{fullPass}
}
