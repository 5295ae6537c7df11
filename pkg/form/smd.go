package form

import (
	"log"

	"eecalc/pkg/smd"
	"eecalc/pkg/units"
)

// SMD decodes component markings. A code that does not decode shows 0 and is
// marked with FlagParseError.
type SMD struct {
	base
}

func NewSMD(t *units.Tables, sink Sink, logger *log.Logger) *SMD {
	return &SMD{base: newBase("smd", t, sink, logger)}
}

// ChangeResistor decodes code into the Resistance unit.
func (f *SMD) ChangeResistor(code string, unit int) bool {
	return f.run(&f.guard, func() {
		f.show(SMDResistor, code)(smd.Resistor(f.tables, code, unit))
	})
}

// ChangeCapacitor decodes code into the Capacitance unit.
func (f *SMD) ChangeCapacitor(code string, unit int) bool {
	return f.run(&f.guard, func() {
		f.show(SMDCapacitor, code)(smd.Capacitor(f.tables, code, unit))
	})
}

func (f *SMD) show(field Field, code string) func(float64, error) {
	return func(v float64, err error) {
		if err != nil {
			f.log.Printf("smd: %q: %v", code, err)
			f.sink.Show(field, 0)
			f.sink.Mark(field, FlagParseError)
			return
		}
		f.sink.Show(field, v)
		f.sink.Mark(field, FlagNone)
	}
}
