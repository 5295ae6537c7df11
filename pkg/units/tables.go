package units

// Unit indices of the built-in scales.
const (
	Pico = iota
	Nano
	Micro
	Milli
	One
	Kilo
	Mega
)

const (
	Ohm = iota
	KiloOhm
	MegaOhm
)

const (
	PicoFarad = iota
	NanoFarad
	MicroFarad
)

const (
	MicroAmp = iota
	MilliAmp
	Amp
)

const (
	Micrometer = iota
	Mil
	Millimeter
	Centimeter
)

const (
	WidthMil = iota
	WidthMM
)

const (
	SubUnit = iota // mOhm, mV, mW
	WholeUnit      // Ohm, V, W
)

// Tables groups every scale the calculators use. The scales are built once and
// only read afterwards, so one Tables value is handed to all forms.
type Tables struct {
	Prefix      *Scale // p .. M
	Resistance  *Scale // base ohm
	Capacitance *Scale // base pF
	Current     *Scale // base A
	Length      *Scale // base mm
	Width       *Scale // base mm
	Ohms        *Scale // mOhm/Ohm readout
	Volts       *Scale // mV/V readout
	Watts       *Scale // mW/W readout
}

var defaultTables = &Tables{
	Prefix: MustScale("prefix",
		Unit{Label: "p", Exponent: -12},
		Unit{Label: "n", Exponent: -9},
		Unit{Label: "u", Exponent: -6},
		Unit{Label: "m", Exponent: -3},
		Unit{Label: "1", Exponent: 0},
		Unit{Label: "K", Exponent: 3},
		Unit{Label: "M", Exponent: 6},
	),
	Resistance: MustScale("resistance",
		Unit{Label: "Ω", Exponent: 0},
		Unit{Label: "kΩ", Exponent: 3},
		Unit{Label: "MΩ", Exponent: 6},
	),
	Capacitance: MustScale("capacitance",
		Unit{Label: "pF", Exponent: 0},
		Unit{Label: "nF", Exponent: 3},
		Unit{Label: "μF", Exponent: 6},
	),
	Current: MustScale("current",
		Unit{Label: "uA", Exponent: -6},
		Unit{Label: "mA", Exponent: -3},
		Unit{Label: "A", Exponent: 0},
	),
	Length: MustScale("length",
		Unit{Label: "um", Exponent: -3},
		Unit{Label: "mil", Exponent: -2, Mantissa: 2.54},
		Unit{Label: "mm", Exponent: 0},
		Unit{Label: "cm", Exponent: 1},
	),
	Width: MustScale("width",
		Unit{Label: "mil", Exponent: -2, Mantissa: 2.54},
		Unit{Label: "mm", Exponent: 0},
	),
	Ohms: MustScale("ohms",
		Unit{Label: "mΩ", Exponent: -3},
		Unit{Label: "Ω", Exponent: 0},
	),
	Volts: MustScale("volts",
		Unit{Label: "mV", Exponent: -3},
		Unit{Label: "V", Exponent: 0},
	),
	Watts: MustScale("watts",
		Unit{Label: "mW", Exponent: -3},
		Unit{Label: "W", Exponent: 0},
	),
}

// Default returns the built-in tables. Each call gets its own copy of the
// table set; the scales themselves are immutable and shared.
func Default() *Tables {
	t := *defaultTables
	return &t
}
