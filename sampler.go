package icon565

// Sampler estimates per-pixel coverage by multi-sample supersampling.
// The unit pixel square is partitioned into an N x N grid and the coverage
// function is evaluated at the center of each sub-cell (offset by half a
// sub-cell from each grid line — corner sampling double-counts edge cases
// near lines of symmetry). The N*N samples are averaged arithmetically.
//
// Every visible edge-quality guarantee in the generator derives from this
// averaging being unbiased and symmetric.
type Sampler struct {
	n int
}

// DefaultSamples is the supersampling grid density per axis (4x4 = 16
// samples per pixel). Lowering it visibly roughens edges at icon scale;
// raising it is diminishing returns past 4.
const DefaultSamples = 4

// NewSampler creates a sampler with an n x n sub-pixel grid.
// n below 1 is coerced to 1 (plain center sampling).
func NewSampler(n int) Sampler {
	if n < 1 {
		n = 1
	}
	return Sampler{n: n}
}

// Samples returns the grid density per axis.
func (s Sampler) Samples() int { return s.n }

// Pixel returns the averaged coverage of f over the pixel at (x, y).
// For a constant coverage function the result is exact: summing n*n equal
// values and dividing by n*n introduces no averaging artifact.
func (s Sampler) Pixel(x, y int, f Coverage) float64 {
	step := 1.0 / float64(s.n)
	offset := step / 2
	total := 0.0
	for sy := 0; sy < s.n; sy++ {
		py := float64(y) + offset + float64(sy)*step
		for sx := 0; sx < s.n; sx++ {
			px := float64(x) + offset + float64(sx)*step
			total += f(px, py)
		}
	}
	return total / float64(s.n*s.n)
}
