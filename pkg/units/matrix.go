package units

import (
	"gonum.org/v1/gonum/mat"
)

// Ratios outside (SCI_LOW, SCI_HIGH) read better in scientific notation.
const (
	SCI_HIGH = 1e6
	SCI_LOW  = 1e-4
)

type Cell struct {
	Ratio      float64
	Scientific bool
	Identity   bool
}

// Matrix holds Ratio(r, c) for every pair of units of a scale.
type Matrix struct {
	Labels []string
	Ratios *mat.Dense
}

func RatioMatrix(s *Scale) *Matrix {
	n := s.Len()
	ratios := mat.NewDense(n, n, nil)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			ratios.Set(r, c, s.Ratio(r, c))
		}
	}
	return &Matrix{Labels: s.Labels(), Ratios: ratios}
}

func (m *Matrix) Size() int {
	n, _ := m.Ratios.Dims()
	return n
}

func (m *Matrix) At(r, c int) Cell {
	ratio := m.Ratios.At(r, c)
	return Cell{
		Ratio:      ratio,
		Scientific: ratio >= SCI_HIGH || ratio <= SCI_LOW,
		Identity:   r == c,
	}
}
