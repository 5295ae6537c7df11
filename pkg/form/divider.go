package form

import (
	"fmt"
	"log"

	"eecalc/pkg/divider"
	"eecalc/pkg/units"
)

// DividerEvent carries the four divider fields. R1Unit and R2Unit index the
// Resistance scale.
type DividerEvent struct {
	Vin    Number
	Vout   Number
	R1     Number
	R1Unit int
	R2     Number
	R2Unit int
}

var dividerFields = map[divider.Field]Field{
	divider.Vin:  DividerVin,
	divider.Vout: DividerVout,
	divider.R1:   DividerR1,
	divider.R2:   DividerR2,
}

type Divider struct {
	base
	mode divider.Mode
}

func NewDivider(t *units.Tables, sink Sink, logger *log.Logger) *Divider {
	return &Divider{base: newBase("divider", t, sink, logger), mode: divider.SolveVout}
}

func (f *Divider) Mode() divider.Mode {
	return f.mode
}

// SetMode selects the computed field and recomputes it. Existing values are
// kept.
func (f *Divider) SetMode(m divider.Mode, ev DividerEvent) bool {
	if !m.Valid() {
		panic(fmt.Sprintf("form: invalid divider mode %d", int(m)))
	}
	f.mode = m
	return f.Change(ev)
}

func (f *Divider) Change(ev DividerEvent) bool {
	return f.run(&f.guard, func() { f.solve(ev) })
}

func (f *Divider) solve(ev DividerEvent) {
	numbers := map[divider.Field]Number{
		divider.Vin:  ev.Vin,
		divider.Vout: ev.Vout,
		divider.R1:   ev.R1,
		divider.R2:   ev.R2,
	}
	ok := true
	for _, src := range f.mode.Sources() {
		ok = f.need(dividerFields[src], numbers[src]) && ok
	}
	if !ok {
		return
	}

	res, err := divider.Solve(f.tables, f.mode, divider.Inputs{
		Vin:  ev.Vin.Value,
		Vout: ev.Vout.Value,
		R1:   units.Quantity{Value: ev.R1.Value, Unit: ev.R1Unit},
		R2:   units.Quantity{Value: ev.R2.Value, Unit: ev.R2Unit},
	})
	if err != nil {
		f.log.Printf("divider: %v", err)
		return
	}
	f.sink.Show(dividerFields[res.Target], res.Value)
}
