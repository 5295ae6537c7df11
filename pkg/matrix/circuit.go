package matrix

import (
	"fmt"
	"log"

	"github.com/edp1096/sparse"
)

// CircuitMatrix is a real MNA system A*x = b. Rows and columns are 1-based;
// row 0 is ground and never stored.
type CircuitMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func NewMatrix(size int) (*CircuitMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("matrix size must be positive: %d", size)
	}

	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      false,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
		Annotate:       0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &CircuitMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}, nil
}

func (m *CircuitMatrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		log.Printf("matrix: index out of bounds (i=%d, j=%d, size=%d)", i, j, m.Size)
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *CircuitMatrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.Size {
		log.Printf("matrix: RHS index out of bounds (i=%d, size=%d)", i, m.Size)
		return
	}
	m.rhs[i] += value
}

// At reads back a stamped coefficient.
func (m *CircuitMatrix) At(i, j int) float64 {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return 0
	}
	return m.matrix.GetElement(int64(i), int64(j)).Real
}

func (m *CircuitMatrix) Solve() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	solution, err := m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}
	m.solution = solution

	return nil
}

func (m *CircuitMatrix) Solution() []float64 {
	return m.solution
}

// PrintSystem dumps the equations, for the CLI's -debug output.
func (m *CircuitMatrix) PrintSystem() {
	fmt.Printf("\nNetwork Equations (%dx%d):\n", m.Size, m.Size)
	for i := 1; i <= m.Size; i++ {
		fmt.Printf("Equation %d:", i)
		for j := 1; j <= m.Size; j++ {
			if v := m.At(i, j); v != 0 {
				fmt.Printf("  %+g*x%d", v, j)
			}
		}
		fmt.Printf(" = %g\n", m.rhs[i])
	}
}

func (m *CircuitMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
