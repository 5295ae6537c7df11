// Package divider solves a two-resistor voltage divider for any one of its
// four quantities.
//
//	Vin ──R1──┬── Vout
//	          R2
//	          └── 0
package divider

import (
	"errors"
	"fmt"
	"math"

	"eecalc/pkg/units"
)

var ErrUndefined = errors.New("divider: undefined input")

type Field int

const (
	Vin Field = iota
	Vout
	R1
	R2
)

func (f Field) String() string {
	switch f {
	case Vin:
		return "Vin"
	case Vout:
		return "Vout"
	case R1:
		return "R1"
	case R2:
		return "R2"
	default:
		return "Unknown"
	}
}

// Mode selects the computed field; the other three are inputs.
type Mode int

const (
	SolveVout Mode = iota
	SolveVin
	SolveR1
	SolveR2
)

func (m Mode) String() string {
	switch m {
	case SolveVout:
		return "Solve Vout"
	case SolveVin:
		return "Solve Vin"
	case SolveR1:
		return "Solve R1"
	case SolveR2:
		return "Solve R2"
	default:
		return "Unknown"
	}
}

func (m Mode) Valid() bool {
	return m >= SolveVout && m <= SolveR2
}

func (m Mode) Target() Field {
	switch m {
	case SolveVout:
		return Vout
	case SolveVin:
		return Vin
	case SolveR1:
		return R1
	case SolveR2:
		return R2
	}
	panic(fmt.Sprintf("divider: invalid mode %d", int(m)))
}

func (m Mode) Sources() []Field {
	target := m.Target()
	sources := make([]Field, 0, 3)
	for _, f := range []Field{Vin, Vout, R1, R2} {
		if f != target {
			sources = append(sources, f)
		}
	}
	return sources
}

// Inputs carries the resistors in their own resistance units.
type Inputs struct {
	Vin  float64
	Vout float64
	R1   units.Quantity
	R2   units.Quantity
}

type Result struct {
	Target Field
	Value  float64 // in the target's display unit
	Base   float64 // volts or ohms
}

func Solve(t *units.Tables, mode Mode, in Inputs) (Result, error) {
	r1 := in.R1.Base(t.Resistance)
	r2 := in.R2.Base(t.Resistance)

	res := Result{Target: mode.Target()}
	switch mode {
	case SolveVout:
		if r1+r2 == 0 {
			return Result{}, fmt.Errorf("%w: R1+R2 is zero", ErrUndefined)
		}
		res.Base = in.Vin * r2 / (r1 + r2)
		res.Value = res.Base

	case SolveVin:
		if r2 == 0 {
			return Result{}, fmt.Errorf("%w: R2 is zero", ErrUndefined)
		}
		res.Base = in.Vout * (r1 + r2) / r2
		res.Value = res.Base

	case SolveR1:
		if in.Vout == 0 {
			return Result{}, fmt.Errorf("%w: Vout is zero", ErrUndefined)
		}
		res.Base = r2 * (in.Vin - in.Vout) / in.Vout
		res.Value = t.Resistance.FromBase(res.Base, in.R1.Unit)

	case SolveR2:
		if in.Vin == in.Vout {
			return Result{}, fmt.Errorf("%w: Vin equals Vout", ErrUndefined)
		}
		res.Base = r1 * in.Vout / (in.Vin - in.Vout)
		res.Value = t.Resistance.FromBase(res.Base, in.R2.Unit)
	}

	if math.IsInf(res.Base, 0) || math.IsNaN(res.Base) {
		return Result{}, fmt.Errorf("%w: %v overflows", ErrUndefined, res.Target)
	}
	return res, nil
}
