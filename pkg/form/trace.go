package form

import (
	"log"

	"eecalc/pkg/guard"
	"eecalc/pkg/trace"
	"eecalc/pkg/units"
)

// TraceEvent carries every trace field. Unit indices refer to the Current,
// Length, Width, Ohms, Volts and Watts scales.
type TraceEvent struct {
	Changed trace.Field

	Current       Number
	CurrentUnit   int
	TempRise      Number
	Thickness     Number
	ThicknessUnit int
	Length        Number
	LengthUnit    int
	External      Number
	ExternalUnit  int
	Internal      Number
	InternalUnit  int

	OhmsUnit  int
	VoltsUnit int
	WattsUnit int
}

type Trace struct {
	base
	mass guard.Guard
}

func NewTrace(t *units.Tables, sink Sink, logger *log.Logger) *Trace {
	return &Trace{base: newBase("trace", t, sink, logger)}
}

// Change recomputes after the field ev.Changed was edited.
func (f *Trace) Change(ev TraceEvent) bool {
	return f.run(&f.guard, func() { f.solve(ev) })
}

// ChangeMass writes the copper thickness for a weight in oz/ft^2.
func (f *Trace) ChangeMass(oz Number, thicknessUnit int) bool {
	return f.run(&f.mass, func() {
		if !f.need(TraceMass, oz) {
			return
		}
		mm := trace.ThicknessFromOunces(oz.Value)
		f.sink.Show(TraceThickness, f.tables.Length.FromBase(mm, thicknessUnit))
	})
}

func (f *Trace) solve(ev TraceEvent) {
	t := f.tables
	if !f.need(TraceTempRise, ev.TempRise) || !f.need(TraceThickness, ev.Thickness) {
		return
	}

	p := trace.Params{
		TempRise:  ev.TempRise.Value,
		Thickness: t.Length.ToBase(ev.Thickness.Value, ev.ThicknessUnit),
	}
	switch ev.Changed {
	case trace.ExternalWidth:
		if !f.need(TraceExternal, ev.External) {
			return
		}
		p.ExternalWidth = t.Width.ToBase(ev.External.Value, ev.ExternalUnit)
	case trace.InternalWidth:
		if !f.need(TraceInternal, ev.Internal) {
			return
		}
		p.InternalWidth = t.Width.ToBase(ev.Internal.Value, ev.InternalUnit)
	default:
		if !f.need(TraceCurrent, ev.Current) {
			return
		}
		p.Current = t.Current.ToBase(ev.Current.Value, ev.CurrentUnit)
	}
	if ev.Length.OK {
		p.Length = t.Length.ToBase(ev.Length.Value, ev.LengthUnit)
	}

	res, err := trace.Solve(p, ev.Changed)
	if err != nil {
		f.log.Printf("trace: %v", err)
		return
	}

	if res.Source != trace.Current {
		f.sink.Show(TraceCurrent, t.Current.FromBase(res.Current, ev.CurrentUnit))
	}
	if res.Source != trace.ExternalWidth {
		f.sink.Show(TraceExternal, t.Width.FromBase(res.ExternalWidth, ev.ExternalUnit))
	}
	if res.Source != trace.InternalWidth {
		f.sink.Show(TraceInternal, t.Width.FromBase(res.InternalWidth, ev.InternalUnit))
	}
	if !res.HasLosses {
		f.clear(TraceResistance, TraceDrop, TraceLoss)
		return
	}
	f.sink.Show(TraceResistance, t.Ohms.FromBase(res.Losses.Resistance, ev.OhmsUnit))
	f.sink.Show(TraceDrop, t.Volts.FromBase(res.Losses.VoltageDrop, ev.VoltsUnit))
	f.sink.Show(TraceLoss, t.Watts.FromBase(res.Losses.PowerLoss, ev.WattsUnit))
}
