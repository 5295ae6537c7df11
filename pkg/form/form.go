// Package form drives the solvers from field change events. A form reads the
// event, runs one solver under its guard and writes the results to a Sink.
// Writing to the sink may synchronously fire another change event on the same
// form; such nested events are dropped.
package form

import (
	"io"
	"log"

	"eecalc/pkg/guard"
	"eecalc/pkg/units"
)

type Field int

const (
	TraceMass Field = iota
	TraceThickness
	TraceTempRise
	TraceCurrent
	TraceLength
	TraceExternal
	TraceInternal
	TraceResistance
	TraceDrop
	TraceLoss

	ViaMass
	ViaSurface
	ViaWall
	ViaDiameter
	ViaBoard
	ViaTempRise
	ViaCurrent
	ViaArea
	ViaMaxCurrent
	ViaResistance
	ViaDrop
	ViaLoss

	DividerVin
	DividerVout
	DividerR1
	DividerR2

	LEDSupply
	LEDForwardVoltage
	LEDCurrent
	LEDTotalVf
	LEDTotalCurrent
	LEDResistance
	LEDPower

	SMDResistor
	SMDCapacitor

	ConvertInput
	ConvertOutput
)

var fieldNames = [...]string{
	"trace.mass", "trace.thickness", "trace.temp_rise", "trace.current", "trace.length",
	"trace.external", "trace.internal", "trace.resistance", "trace.drop", "trace.loss",
	"via.mass", "via.surface", "via.wall", "via.diameter", "via.board", "via.temp_rise",
	"via.current", "via.area", "via.max_current", "via.resistance", "via.drop", "via.loss",
	"divider.vin", "divider.vout", "divider.r1", "divider.r2",
	"led.supply", "led.vf", "led.current", "led.total_vf", "led.total_current",
	"led.resistance", "led.power",
	"smd.resistor", "smd.capacitor",
	"convert.input", "convert.output",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Flag is a rendering hint attached to a field.
type Flag int

const (
	FlagNone Flag = iota
	FlagWarning
	FlagInfeasible
	FlagParseError
)

func (f Flag) String() string {
	switch f {
	case FlagNone:
		return "none"
	case FlagWarning:
		return "warning"
	case FlagInfeasible:
		return "infeasible"
	case FlagParseError:
		return "parse error"
	default:
		return "unknown"
	}
}

// Sink receives computed values. Values are in the unit the event selected
// for that field.
type Sink interface {
	Show(field Field, value float64)
	Clear(field Field)
	Mark(field Field, flag Flag)
}

// Number is a parsed input field. OK is false when the text did not parse.
type Number struct {
	Value float64
	OK    bool
}

func Value(v float64) Number {
	return Number{Value: v, OK: true}
}

type base struct {
	name   string
	tables *units.Tables
	sink   Sink
	log    *log.Logger
	guard  guard.Guard
}

func newBase(name string, t *units.Tables, sink Sink, logger *log.Logger) base {
	if t == nil {
		t = units.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return base{name: name, tables: t, sink: sink, log: logger}
}

// run executes fn under g and reports whether it ran.
func (b *base) run(g *guard.Guard, fn func()) bool {
	if !g.Run(fn) {
		b.log.Printf("%s: recompute in progress, change dropped", b.name)
		return false
	}
	return true
}

// need flags a field that failed to parse, or lifts the flag once it parses,
// and reports whether n is usable.
func (b *base) need(field Field, n Number) bool {
	if !n.OK {
		b.sink.Mark(field, FlagParseError)
		b.log.Printf("%s: %v is not a number", b.name, field)
		return false
	}
	b.sink.Mark(field, FlagNone)
	return true
}

func (b *base) clear(fields ...Field) {
	for _, f := range fields {
		b.sink.Clear(f)
	}
}

func warnIf(over bool) Flag {
	if over {
		return FlagWarning
	}
	return FlagNone
}
