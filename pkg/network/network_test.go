package network

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDividerNetwork(t *testing.T) {
	n := New("divider")
	n.Add(
		NewVoltageSource("V1", []string{"in", "0"}, 10),
		NewResistor("R1", []string{"in", "out"}, 1000),
		NewResistor("R2", []string{"out", "gnd"}, 3000),
	)

	sol, err := n.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	checks := map[string]float64{
		"V(in)":  10,
		"V(out)": 7.5,
		"I(V1)":  2.5e-3,
		"I(R1)":  2.5e-3,
		"I(R2)":  2.5e-3,
	}
	for name, want := range checks {
		got, ok := sol[name]
		if !ok {
			t.Errorf("%s missing from solution", name)
			continue
		}
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-9) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	// Solving again renumbers from scratch.
	again, err := n.Solve()
	if err != nil {
		t.Fatalf("second Solve: %v", err)
	}
	if !scalar.EqualWithinRel(again["V(out)"], 7.5, 1e-9) {
		t.Errorf("second V(out) = %v", again["V(out)"])
	}
}

func TestSolveErrors(t *testing.T) {
	if _, err := New("empty").Solve(); err == nil {
		t.Error("empty network solved")
	}

	n := New("bad")
	n.Add(
		NewVoltageSource("V1", []string{"in", "0"}, 5),
		NewResistor("R1", []string{"in", "0"}, 0),
	)
	if _, err := n.Solve(); err == nil {
		t.Error("zero ohm resistor accepted")
	}

	dup := New("dup")
	dup.Add(
		NewVoltageSource("V1", []string{"a", "0"}, 5),
		NewVoltageSource("V1", []string{"b", "0"}, 5),
		NewResistor("R1", []string{"a", "b"}, 10),
	)
	if _, err := dup.Solve(); err == nil {
		t.Error("duplicate source accepted")
	}
}
