// Package led sizes the current-limiting resistor of an LED array made of
// parallel branches, each a series string of identical diodes.
package led

import (
	"errors"
	"fmt"

	"eecalc/pkg/units"
)

var ErrUndefined = errors.New("led: undefined input")

// POWER_LIMIT is the rating of a common 1/4 W resistor.
const POWER_LIMIT = 0.25

type Status int

const (
	Feasible Status = iota
	Infeasible // supply does not exceed the string's forward voltage
)

func (s Status) String() string {
	switch s {
	case Feasible:
		return "Feasible"
	case Infeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

type Inputs struct {
	Supply         float64        // V
	ForwardVoltage float64        // V, one diode
	Current        units.Quantity // per branch
	Series         int
	Parallel       int
}

type Result struct {
	Status       Status
	TotalVf      float64 // V
	TotalCurrent float64 // A
	Resistance   float64 // ohm, only when Feasible
	Power        float64 // W, only when Feasible
	OverPower    bool
}

// Count clamps a diode count to at least one.
func Count(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func Solve(t *units.Tables, in Inputs) (Result, error) {
	branch := in.Current.Base(t.Current)
	if branch <= 0 {
		return Result{}, fmt.Errorf("%w: branch current %g must be positive", ErrUndefined, branch)
	}

	res := Result{
		TotalVf:      in.ForwardVoltage * float64(Count(in.Series)),
		TotalCurrent: branch * float64(Count(in.Parallel)),
	}

	if in.Supply <= res.TotalVf {
		res.Status = Infeasible
		return res, nil
	}

	headroom := in.Supply - res.TotalVf
	res.Status = Feasible
	res.Resistance = headroom / res.TotalCurrent
	res.Power = headroom * res.TotalCurrent
	res.OverPower = res.Power > POWER_LIMIT
	return res, nil
}
