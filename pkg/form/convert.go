package form

import (
	"log"

	"eecalc/pkg/units"
)

// ConvertEvent converts Value between two units of Scale, the prefix scale
// when Scale is nil.
type ConvertEvent struct {
	Scale *units.Scale
	Value Number
	From  int
	To    int
}

type Converter struct {
	base
}

func NewConverter(t *units.Tables, sink Sink, logger *log.Logger) *Converter {
	return &Converter{base: newBase("convert", t, sink, logger)}
}

func (f *Converter) Change(ev ConvertEvent) bool {
	return f.run(&f.guard, func() {
		if !f.need(ConvertInput, ev.Value) {
			f.sink.Clear(ConvertOutput)
			return
		}
		f.sink.Show(ConvertOutput, f.scale(ev.Scale).Convert(ev.Value.Value, ev.From, ev.To))
	})
}

// Matrix returns the ratio table of s, the prefix scale when s is nil.
func (f *Converter) Matrix(s *units.Scale) *units.Matrix {
	return units.RatioMatrix(f.scale(s))
}

func (f *Converter) scale(s *units.Scale) *units.Scale {
	if s == nil {
		return f.tables.Prefix
	}
	return s
}
