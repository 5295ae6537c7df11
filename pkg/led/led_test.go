package led

import (
	"errors"
	"testing"

	"eecalc/pkg/units"

	"gonum.org/v1/gonum/floats/scalar"
)

func milliAmps(v float64) units.Quantity {
	return units.Quantity{Value: v, Unit: units.MilliAmp}
}

func TestSolveFeasible(t *testing.T) {
	res, err := Solve(units.Default(), Inputs{Supply: 5, ForwardVoltage: 2, Current: milliAmps(20), Series: 2, Parallel: 1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Status != Feasible {
		t.Fatalf("status = %v", res.Status)
	}
	if res.TotalVf != 4 {
		t.Errorf("total Vf = %v", res.TotalVf)
	}
	if !scalar.EqualWithinRel(res.Resistance, 50, 1e-12) {
		t.Errorf("R = %v", res.Resistance)
	}
	if !scalar.EqualWithinRel(res.Power, 0.02, 1e-12) || res.OverPower {
		t.Errorf("P = %v over=%v", res.Power, res.OverPower)
	}
}

func TestSolveInfeasible(t *testing.T) {
	for _, supply := range []float64{3, 4} {
		res, err := Solve(units.Default(), Inputs{Supply: supply, ForwardVoltage: 2, Current: milliAmps(20), Series: 2, Parallel: 1})
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if res.Status != Infeasible {
			t.Errorf("supply %v: status = %v", supply, res.Status)
		}
		if res.Resistance != 0 || res.Power != 0 || res.OverPower {
			t.Errorf("supply %v: infeasible result carries numbers %+v", supply, res)
		}
	}
}

func TestSolveParallel(t *testing.T) {
	res, err := Solve(units.Default(), Inputs{
		Supply:         12,
		ForwardVoltage: 3,
		Current:        units.Quantity{Value: 0.1, Unit: units.Amp},
		Series:         3,
		Parallel:       4,
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !scalar.EqualWithinRel(res.TotalCurrent, 0.4, 1e-12) {
		t.Errorf("total current = %v", res.TotalCurrent)
	}
	if !scalar.EqualWithinRel(res.Resistance, 7.5, 1e-12) {
		t.Errorf("R = %v", res.Resistance)
	}
	if !scalar.EqualWithinRel(res.Power, 1.2, 1e-12) || !res.OverPower {
		t.Errorf("P = %v over=%v", res.Power, res.OverPower)
	}
}

func TestSolveCountsDefaultToOne(t *testing.T) {
	in := Inputs{Supply: 5, ForwardVoltage: 2, Current: units.Quantity{Value: 500, Unit: units.MicroAmp}}
	for _, n := range [][2]int{{0, 0}, {-3, -1}, {1, 1}} {
		in.Series, in.Parallel = n[0], n[1]
		res, err := Solve(units.Default(), in)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if res.TotalVf != 2 || !scalar.EqualWithinRel(res.Resistance, 6000, 1e-12) {
			t.Errorf("counts %v: %+v", n, res)
		}
	}
}

func TestSolveUndefined(t *testing.T) {
	for _, c := range []float64{0, -1} {
		_, err := Solve(units.Default(), Inputs{Supply: 5, ForwardVoltage: 2, Current: milliAmps(c)})
		if !errors.Is(err, ErrUndefined) {
			t.Errorf("current %v: err = %v", c, err)
		}
	}
}
