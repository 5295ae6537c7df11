package matrix

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSolve(t *testing.T) {
	m, err := NewMatrix(2)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	defer m.Destroy()

	// [2 1; 1 3] x = [3; 5]
	m.AddElement(1, 1, 2)
	m.AddElement(1, 2, 1)
	m.AddElement(2, 1, 1)
	m.AddElement(2, 2, 3)
	m.AddRHS(1, 3)
	m.AddRHS(2, 5)

	// Out of range writes are dropped.
	m.AddElement(3, 1, 100)
	m.AddRHS(0, 100)

	if got := m.At(1, 2); got != 1 {
		t.Errorf("At(1,2) = %v", got)
	}

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	x := m.Solution()
	if !scalar.EqualWithinAbs(x[1], 0.8, 1e-12) || !scalar.EqualWithinAbs(x[2], 1.4, 1e-12) {
		t.Errorf("x = %v", x)
	}
}

func TestNewMatrixSize(t *testing.T) {
	if _, err := NewMatrix(0); err == nil {
		t.Error("NewMatrix(0) succeeded")
	}
}
