package form

import (
	"log"

	"eecalc/pkg/led"
	"eecalc/pkg/units"
)

// LEDEvent carries the LED fields. Counts below one are taken as one.
type LEDEvent struct {
	Supply         Number
	ForwardVoltage Number
	Current        Number
	CurrentUnit    int
	Series         int
	Parallel       int
	ResistanceUnit int
}

type LED struct {
	base
}

func NewLED(t *units.Tables, sink Sink, logger *log.Logger) *LED {
	return &LED{base: newBase("led", t, sink, logger)}
}

func (f *LED) Change(ev LEDEvent) bool {
	return f.run(&f.guard, func() { f.solve(ev) })
}

func (f *LED) solve(ev LEDEvent) {
	ok := f.need(LEDSupply, ev.Supply)
	ok = f.need(LEDForwardVoltage, ev.ForwardVoltage) && ok
	ok = f.need(LEDCurrent, ev.Current) && ok
	if !ok {
		f.clear(LEDResistance, LEDPower)
		return
	}

	res, err := led.Solve(f.tables, led.Inputs{
		Supply:         ev.Supply.Value,
		ForwardVoltage: ev.ForwardVoltage.Value,
		Current:        units.Quantity{Value: ev.Current.Value, Unit: ev.CurrentUnit},
		Series:         ev.Series,
		Parallel:       ev.Parallel,
	})
	if err != nil {
		f.log.Printf("led: %v", err)
		f.clear(LEDResistance, LEDPower)
		return
	}

	f.sink.Show(LEDTotalVf, res.TotalVf)
	f.sink.Show(LEDTotalCurrent, f.tables.Current.FromBase(res.TotalCurrent, ev.CurrentUnit))

	if res.Status == led.Infeasible {
		f.clear(LEDResistance, LEDPower)
		f.sink.Mark(LEDResistance, FlagInfeasible)
		f.sink.Mark(LEDPower, FlagInfeasible)
		return
	}
	f.sink.Show(LEDResistance, f.tables.Resistance.FromBase(res.Resistance, ev.ResistanceUnit))
	f.sink.Mark(LEDResistance, FlagNone)
	f.sink.Show(LEDPower, res.Power)
	f.sink.Mark(LEDPower, warnIf(res.OverPower))
}
