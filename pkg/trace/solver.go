package trace

import (
	"errors"
	"fmt"
)

var ErrUndefined = errors.New("trace: undefined input")

// Field names the input the user edited last.
type Field int

const (
	Current Field = iota
	TempRise
	Thickness
	Length
	ExternalWidth
	InternalWidth
	UnitSelect
)

func (f Field) String() string {
	switch f {
	case Current:
		return "Current"
	case TempRise:
		return "TempRise"
	case Thickness:
		return "Thickness"
	case Length:
		return "Length"
	case ExternalWidth:
		return "ExternalWidth"
	case InternalWidth:
		return "InternalWidth"
	case UnitSelect:
		return "UnitSelect"
	default:
		return "Unknown"
	}
}

// Params are in base units: A, C, mm.
type Params struct {
	Current       float64
	TempRise      float64
	Thickness     float64
	ExternalWidth float64
	InternalWidth float64
	Length        float64
}

// Losses of the external trace over its length.
type Losses struct {
	Resistance  float64 // ohm
	VoltageDrop float64 // V
	PowerLoss   float64 // W
}

type Result struct {
	Current       float64
	ExternalWidth float64
	InternalWidth float64
	// Source is the field treated as authoritative: Current, ExternalWidth or
	// InternalWidth.
	Source    Field
	HasLosses bool
	Losses    Losses
}

// Solve recomputes the trace from whichever field changed. An edited width
// fixes the current through the inverse formula and the other width follows
// from that current; any other change keeps the current and resizes both widths.
func Solve(p Params, changed Field) (Result, error) {
	if p.TempRise <= 0 {
		return Result{}, fmt.Errorf("%w: temperature rise %g must be positive", ErrUndefined, p.TempRise)
	}
	if p.Thickness <= 0 {
		return Result{}, fmt.Errorf("%w: copper thickness %g must be positive", ErrUndefined, p.Thickness)
	}

	var res Result
	switch changed {
	case ExternalWidth:
		if p.ExternalWidth < 0 {
			return Result{}, fmt.Errorf("%w: external width %g is negative", ErrUndefined, p.ExternalWidth)
		}
		res.Source = ExternalWidth
		res.ExternalWidth = p.ExternalWidth
		res.Current = CurrentFor(p.ExternalWidth, p.TempRise, p.Thickness, External)
		res.InternalWidth = Width(res.Current, p.TempRise, p.Thickness, Internal)

	case InternalWidth:
		if p.InternalWidth < 0 {
			return Result{}, fmt.Errorf("%w: internal width %g is negative", ErrUndefined, p.InternalWidth)
		}
		res.Source = InternalWidth
		res.InternalWidth = p.InternalWidth
		res.Current = CurrentFor(p.InternalWidth, p.TempRise, p.Thickness, Internal)
		res.ExternalWidth = Width(res.Current, p.TempRise, p.Thickness, External)

	default:
		if p.Current < 0 {
			return Result{}, fmt.Errorf("%w: current %g is negative", ErrUndefined, p.Current)
		}
		res.Source = Current
		res.Current = p.Current
		res.ExternalWidth = Width(p.Current, p.TempRise, p.Thickness, External)
		res.InternalWidth = Width(p.Current, p.TempRise, p.Thickness, Internal)
	}

	if p.Length > 0 && res.ExternalWidth > 0 {
		res.HasLosses = true
		res.Losses = ExternalLosses(res.Current, p.TempRise, p.Thickness, res.ExternalWidth, p.Length)
	}

	return res, nil
}

// ExternalLosses computes resistance, drop and dissipation of a trace
// (all lengths in mm).
func ExternalLosses(current, tempRise, thickness, width, length float64) Losses {
	lengthCm := length / 10
	areaCm2 := (width / 10) * (thickness / 10)
	r := Resistivity(tempRise) * lengthCm / areaCm2

	return Losses{
		Resistance:  r,
		VoltageDrop: current * r,
		PowerLoss:   current * current * r,
	}
}

// Curve samples the forward formula for each current, as plotted on an
// IPC-2221 derating chart.
func Curve(tempRise, thickness float64, currents []float64) (external, internal []float64, err error) {
	if tempRise <= 0 || thickness <= 0 {
		return nil, nil, fmt.Errorf("%w: temperature rise and thickness must be positive", ErrUndefined)
	}

	external = make([]float64, len(currents))
	internal = make([]float64, len(currents))
	for i, c := range currents {
		if c < 0 {
			return nil, nil, fmt.Errorf("%w: current %g is negative", ErrUndefined, c)
		}
		external[i] = Width(c, tempRise, thickness, External)
		internal[i] = Width(c, tempRise, thickness, Internal)
	}
	return external, internal, nil
}
