package noise

import "github.com/designforge/forge/internal/prng"

// field holds the raw per-cell samples for one generation pass, before
// compositing. values are raw luminance in [0, 1); weights are opacity
// weights in [0, 1]. Both are indexed cellY*cellsX+cellX (or by row
// for the lines variant, where cellsX is 1 and cellsY is the height).
type field struct {
	cellsX  int
	cellsY  int
	values  []float64
	weights []float64
}

// cellCount returns the number of samples a pass over o will draw.
// Every variant except Lines samples per scale×scale cell; Lines
// samples once per output row.
func cellCount(o *Options) (cellsX, cellsY int) {
	if o.Variant == Lines {
		return 1, o.Height
	}
	return ceilDiv(o.Width, o.Scale), ceilDiv(o.Height, o.Scale)
}

// generateField consumes the stream in strict raster order — left to
// right within a row of cells, top to bottom across rows — so the
// sample at a given cell index depends only on the seed and the cells
// before it. Changing scale or variant changes how many draws happen,
// never the value of an earlier draw.
func generateField(s *prng.Stream, o *Options) *field {
	cellsX, cellsY := cellCount(o)
	f := &field{
		cellsX:  cellsX,
		cellsY:  cellsY,
		values:  make([]float64, cellsX*cellsY),
		weights: make([]float64, cellsX*cellsY),
	}

	for i := range f.values {
		f.values[i], f.weights[i] = o.Variant.sample(s, o.Intensity)
	}
	return f
}

// ceilDiv returns ceil(a/b) for positive operands.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
