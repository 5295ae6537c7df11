package divider

import (
	"errors"
	"testing"

	"eecalc/pkg/units"

	"gonum.org/v1/gonum/floats/scalar"
)

func ohms(v float64) units.Quantity { return units.Quantity{Value: v, Unit: units.Ohm} }
func kiloOhms(v float64) units.Quantity { return units.Quantity{Value: v, Unit: units.KiloOhm} }

func TestSolveModes(t *testing.T) {
	tab := units.Default()
	tests := []struct {
		mode Mode
		in   Inputs
		want Result
	}{
		{SolveVout, Inputs{Vin: 12, R1: kiloOhms(10), R2: kiloOhms(2)}, Result{Vout, 2, 2}},
		{SolveVin, Inputs{Vout: 2, R1: kiloOhms(10), R2: ohms(2000)}, Result{Vin, 12, 12}},
		{SolveR1, Inputs{Vin: 12, Vout: 2, R1: kiloOhms(0), R2: ohms(2000)}, Result{R1, 10, 10000}},
		{SolveR2, Inputs{Vin: 12, Vout: 2, R1: ohms(10000), R2: kiloOhms(0)}, Result{R2, 2, 2000}},
	}
	for _, tt := range tests {
		got, err := Solve(tab, tt.mode, tt.in)
		if err != nil {
			t.Errorf("%v: %v", tt.mode, err)
			continue
		}
		if got.Target != tt.want.Target ||
			!scalar.EqualWithinRel(got.Value, tt.want.Value, 1e-12) ||
			!scalar.EqualWithinRel(got.Base, tt.want.Base, 1e-12) {
			t.Errorf("%v = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
}

func TestVoutVinRoundTrip(t *testing.T) {
	tab := units.Default()
	for _, vin := range []float64{-5, 0.1, 3.3, 12, 400} {
		for _, r := range [][2]float64{{1, 1}, {4.7, 10}, {100, 0.22}, {0, 5}} {
			in := Inputs{Vin: vin, R1: kiloOhms(r[0]), R2: kiloOhms(r[1])}
			vout, err := Solve(tab, SolveVout, in)
			if err != nil {
				t.Fatalf("Vout(%v, %v): %v", vin, r, err)
			}
			in.Vout, in.Vin = vout.Base, 0
			back, err := Solve(tab, SolveVin, in)
			if err != nil {
				t.Fatalf("Vin(%v, %v): %v", vout.Base, r, err)
			}
			if !scalar.EqualWithinAbsOrRel(back.Base, vin, 1e-12, 1e-12) {
				t.Errorf("Vin %v -> Vout %v -> Vin %v (R %v)", vin, vout.Base, back.Base, r)
			}
		}
	}
}

func TestSolveUndefined(t *testing.T) {
	tab := units.Default()
	tests := []struct {
		mode Mode
		in   Inputs
	}{
		{SolveVout, Inputs{Vin: 5, R1: ohms(0), R2: ohms(0)}},
		{SolveVout, Inputs{Vin: 5, R1: ohms(100), R2: ohms(-100)}},
		{SolveVin, Inputs{Vout: 5, R1: ohms(100), R2: ohms(0)}},
		{SolveR1, Inputs{Vin: 5, Vout: 0, R2: ohms(100)}},
		{SolveR2, Inputs{Vin: 5, Vout: 5, R1: ohms(100)}},
	}
	for _, tt := range tests {
		if res, err := Solve(tab, tt.mode, tt.in); !errors.Is(err, ErrUndefined) || res != (Result{}) {
			t.Errorf("%v %+v = %+v, %v", tt.mode, tt.in, res, err)
		}
	}
}

func TestModeFields(t *testing.T) {
	for _, m := range []Mode{SolveVout, SolveVin, SolveR1, SolveR2} {
		if !m.Valid() {
			t.Errorf("%v not valid", m)
		}
		sources := m.Sources()
		if len(sources) != 3 {
			t.Fatalf("%v sources = %v", m, sources)
		}
		for _, f := range sources {
			if f == m.Target() {
				t.Errorf("%v lists its target %v as a source", m, f)
			}
		}
	}
	if SolveR1.Target() != R1 || SolveVin.Target() != Vin {
		t.Error("targets mixed up")
	}
	if Mode(7).Valid() {
		t.Error("Mode(7) valid")
	}
}

func TestLoaded(t *testing.T) {
	unloaded, err := Loaded(12, 10e3, 2e3, 0)
	if err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	if !scalar.EqualWithinRel(unloaded.Vout, 2, 1e-9) {
		t.Errorf("unloaded Vout = %v", unloaded.Vout)
	}
	if !scalar.EqualWithinRel(unloaded.SourceCurrent, 1e-3, 1e-9) || unloaded.LoadCurrent != 0 {
		t.Errorf("unloaded currents = %+v", unloaded)
	}

	// 2k || 2k = 1k, so Vout = 12 * 1k / 11k.
	loaded, err := Loaded(12, 10e3, 2e3, 2e3)
	if err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	if !scalar.EqualWithinRel(loaded.Vout, 12.0/11, 1e-9) {
		t.Errorf("loaded Vout = %v", loaded.Vout)
	}
	if !scalar.EqualWithinRel(loaded.LoadCurrent, loaded.Vout/2e3, 1e-9) {
		t.Errorf("load current = %v", loaded.LoadCurrent)
	}

	// A very light load approaches the closed formula.
	light, err := Loaded(12, 10e3, 2e3, 1e12)
	if err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	if !scalar.EqualWithinRel(light.Vout, 2, 1e-6) {
		t.Errorf("light load Vout = %v", light.Vout)
	}

	if _, err := Loaded(12, 0, 2e3, 0); !errors.Is(err, ErrUndefined) {
		t.Errorf("R1=0 err = %v", err)
	}
}

func TestNetworkDebug(t *testing.T) {
	n, err := Network(5, 1e3, 1e3, 0)
	if err != nil {
		t.Fatalf("Network: %v", err)
	}
	n.Debug = true
	res, err := SolveNetwork(n)
	if err != nil {
		t.Fatalf("SolveNetwork: %v", err)
	}
	if !scalar.EqualWithinRel(res.Vout, 2.5, 1e-9) {
		t.Errorf("Vout = %v", res.Vout)
	}
}
