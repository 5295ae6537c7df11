package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"eecalc/pkg/chart"
	"eecalc/pkg/config"
	"eecalc/pkg/divider"
	"eecalc/pkg/form"
	"eecalc/pkg/trace"
	"eecalc/pkg/units"
	"eecalc/pkg/util"
)

const usage = `Usage: eecalc [-config file] [-v] <command> [flags] [args]

Commands:
  convert   convert a value between units of a scale
  smd       decode an SMD resistor or capacitor marking
  trace     size a PCB trace (IPC-2221)
  via       rate a plated via
  divider   solve a voltage divider
  led       size an LED current-limiting resistor
`

var (
	tables   = units.Default()
	logger   = log.New(io.Discard, "", 0)
	defaults config.Defaults
)

// ASCII spellings for unit labels that are awkward to type.
var aliases = map[string]string{
	"ohm":    "Ω",
	"kohm":   "kΩ",
	"megohm": "MΩ",
	"mohm":   "mΩ",
	"uF":     "μF",
}

func unitIndex(s *units.Scale, label string) int {
	if i, ok := s.Index(label); ok {
		return i
	}
	if i, ok := s.Index(aliases[label]); ok {
		return i
	}
	log.Fatalf("unknown %s unit %q (have %s)", s.Name(), label, strings.Join(s.Labels(), ", "))
	return 0
}

func number(text string) form.Number {
	v, ok := util.ParseNumber(text)
	return form.Number{Value: v, OK: ok}
}

func parse(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		log.Fatalf("%s: %v", fs.Name(), err)
	}
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	scaleName := fs.String("scale", "prefix", "prefix, resistance, capacitance, current or length")
	from := fs.String("from", "1", "source unit")
	to := fs.String("to", "1", "target unit")
	matrix := fs.Bool("matrix", false, "print the ratio matrix of the scale")
	parse(fs, args)

	scales := map[string]*units.Scale{
		"prefix":      tables.Prefix,
		"resistance":  tables.Resistance,
		"capacitance": tables.Capacitance,
		"current":     tables.Current,
		"length":      tables.Length,
	}
	s, ok := scales[*scaleName]
	if !ok {
		log.Fatalf("unknown scale %q", *scaleName)
	}

	p := newPrinter(map[form.Field]string{form.ConvertOutput: *to})
	f := form.NewConverter(tables, p, logger)

	if *matrix {
		printMatrix(f.Matrix(s))
		return
	}
	if fs.NArg() != 1 {
		log.Fatal("convert: need one value")
	}
	f.Change(form.ConvertEvent{
		Scale: s,
		Value: number(fs.Arg(0)),
		From:  unitIndex(s, *from),
		To:    unitIndex(s, *to),
	})
	p.flush(os.Stdout)
}

func printMatrix(m *units.Matrix) {
	fmt.Printf("%-8s", "")
	for _, l := range m.Labels {
		fmt.Printf("%10s", l)
	}
	fmt.Println()
	for r := 0; r < m.Size(); r++ {
		fmt.Printf("%-8s", m.Labels[r])
		for c := 0; c < m.Size(); c++ {
			cell := m.At(r, c)
			text := util.FormatMagnitude(cell.Ratio)
			if cell.Identity {
				text = "*" + strings.TrimSpace(text)
			}
			fmt.Printf("%10s", text)
		}
		fmt.Println()
	}
}

func runSMD(args []string) {
	fs := flag.NewFlagSet("smd", flag.ExitOnError)
	capacitor := fs.Bool("cap", false, "decode a capacitor code (pF base)")
	unit := fs.String("unit", "", "output unit (default ohm or pF)")
	parse(fs, args)
	if fs.NArg() != 1 {
		log.Fatal("smd: need one code")
	}

	scale, field := tables.Resistance, form.SMDResistor
	if *capacitor {
		scale, field = tables.Capacitance, form.SMDCapacitor
	}
	idx := scale.Base()
	if *unit != "" {
		idx = unitIndex(scale, *unit)
	}

	p := newPrinter(map[form.Field]string{field: scale.Unit(idx).Label})
	f := form.NewSMD(tables, p, logger)
	if *capacitor {
		f.ChangeCapacitor(fs.Arg(0), idx)
	} else {
		f.ChangeResistor(fs.Arg(0), idx)
	}
	p.flush(os.Stdout)
}

func runTrace(args []string) {
	d := defaults.Trace
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	current := fs.String("current", fmt.Sprint(d.Current), "current")
	currentUnit := fs.String("current-unit", "A", "current unit")
	dT := fs.String("dt", fmt.Sprint(d.TempRise), "temperature rise (C)")
	oz := fs.String("oz", fmt.Sprint(d.Ounces), "copper weight (oz/ft^2), used when -thickness is empty")
	thickness := fs.String("thickness", "", "copper thickness")
	thicknessUnit := fs.String("thickness-unit", "mm", "thickness unit")
	length := fs.String("length", fmt.Sprint(d.Length), "trace length")
	lengthUnit := fs.String("length-unit", "mm", "length unit")
	external := fs.String("external", "", "solve from this outer layer width")
	internal := fs.String("internal", "", "solve from this inner layer width")
	widthUnit := fs.String("width-unit", "mm", "width unit (mm or mil)")
	plotFile := fs.String("plot", "", "write the derating chart to this file (.png, .svg, .pdf)")
	parse(fs, args)

	ev := form.TraceEvent{
		Changed:       trace.Current,
		Current:       number(*current),
		CurrentUnit:   unitIndex(tables.Current, *currentUnit),
		TempRise:      number(*dT),
		ThicknessUnit: unitIndex(tables.Length, *thicknessUnit),
		Length:        number(*length),
		LengthUnit:    unitIndex(tables.Length, *lengthUnit),
		External:      number(*external),
		ExternalUnit:  unitIndex(tables.Width, *widthUnit),
		Internal:      number(*internal),
		InternalUnit:  unitIndex(tables.Width, *widthUnit),
		OhmsUnit:      units.SubUnit,
		VoltsUnit:     units.SubUnit,
		WattsUnit:     units.SubUnit,
	}
	switch {
	case *external != "":
		ev.Changed = trace.ExternalWidth
	case *internal != "":
		ev.Changed = trace.InternalWidth
	}

	p := newPrinter(map[form.Field]string{
		form.TraceThickness:  *thicknessUnit,
		form.TraceCurrent:    *currentUnit,
		form.TraceExternal:   *widthUnit,
		form.TraceInternal:   *widthUnit,
		form.TraceResistance: tables.Ohms.Unit(units.SubUnit).Label,
		form.TraceDrop:       tables.Volts.Unit(units.SubUnit).Label,
		form.TraceLoss:       tables.Watts.Unit(units.SubUnit).Label,
	})
	f := form.NewTrace(tables, p, logger)

	if *thickness != "" {
		ev.Thickness = number(*thickness)
	} else {
		f.ChangeMass(number(*oz), ev.ThicknessUnit)
		if v, ok := p.values[form.TraceThickness]; ok {
			ev.Thickness = form.Value(v)
		}
	}
	f.Change(ev)
	p.flush(os.Stdout)

	if *plotFile != "" {
		writeChart(*plotFile, ev)
	}
}

func writeChart(path string, ev form.TraceEvent) {
	maxCurrent := tables.Current.ToBase(ev.Current.Value, ev.CurrentUnit) * 2
	if maxCurrent <= 0 {
		maxCurrent = 1
	}
	pl, err := chart.Derating(chart.Options{
		TempRise:   ev.TempRise.Value,
		Thickness:  tables.Length.ToBase(ev.Thickness.Value, ev.ThicknessUnit),
		MaxCurrent: maxCurrent,
	})
	if err != nil {
		log.Fatalf("trace: %v", err)
	}
	if err := chart.Save(pl, path); err != nil {
		log.Fatalf("trace: saving %s: %v", path, err)
	}
	log.Printf("derating chart written to %s", path)
}

func runVia(args []string) {
	d := defaults.Via
	fs := flag.NewFlagSet("via", flag.ExitOnError)
	current := fs.String("current", fmt.Sprint(d.Current), "operating current")
	currentUnit := fs.String("current-unit", "A", "current unit")
	dT := fs.String("dt", fmt.Sprint(d.TempRise), "temperature rise (C)")
	board := fs.String("board", fmt.Sprint(d.Board), "board thickness (mm)")
	diameter := fs.String("diameter", fmt.Sprint(d.Diameter), "finished hole diameter (mm)")
	wall := fs.String("wall", fmt.Sprint(d.Wall), "plating wall thickness (um)")
	oz := fs.String("oz", "", "derive the wall from this copper weight instead")
	parse(fs, args)

	p := newPrinter(map[form.Field]string{
		form.ViaSurface:    "um",
		form.ViaWall:       "um",
		form.ViaArea:       "mm^2",
		form.ViaMaxCurrent: *currentUnit,
		form.ViaResistance: tables.Ohms.Unit(units.SubUnit).Label,
		form.ViaDrop:       tables.Volts.Unit(units.WholeUnit).Label,
		form.ViaLoss:       tables.Watts.Unit(units.WholeUnit).Label,
	})
	f := form.NewVia(tables, p, logger)

	wallValue := number(*wall)
	if *oz != "" {
		f.ChangeMass(number(*oz), units.Micrometer, units.Micrometer)
		if v, ok := p.values[form.ViaWall]; ok {
			wallValue = form.Value(v)
		}
	}

	f.Change(form.ViaEvent{
		Current:      number(*current),
		CurrentUnit:  unitIndex(tables.Current, *currentUnit),
		TempRise:     number(*dT),
		Board:        number(*board),
		BoardUnit:    units.Millimeter,
		Diameter:     number(*diameter),
		DiameterUnit: units.Millimeter,
		Wall:         wallValue,
		WallUnit:     units.Micrometer,
		OhmsUnit:     units.SubUnit,
		VoltsUnit:    units.WholeUnit,
		WattsUnit:    units.WholeUnit,
	})
	p.flush(os.Stdout)
}

func runDivider(args []string) {
	fs := flag.NewFlagSet("divider", flag.ExitOnError)
	mode := fs.String("mode", "vout", "field to solve: vout, vin, r1 or r2")
	vin := fs.String("vin", "", "input voltage")
	vout := fs.String("vout", "", "output voltage")
	r1 := fs.String("r1", "", "top resistor (ohm, SI suffix allowed)")
	r2 := fs.String("r2", "", "bottom resistor (ohm, SI suffix allowed)")
	load := fs.String("load", "", "load resistor across R2 (ohm), solved by nodal analysis")
	debug := fs.Bool("debug", false, "print the nodal equations of the loaded divider")
	parse(fs, args)

	modes := map[string]divider.Mode{
		"vout": divider.SolveVout,
		"vin":  divider.SolveVin,
		"r1":   divider.SolveR1,
		"r2":   divider.SolveR2,
	}
	m, ok := modes[strings.ToLower(*mode)]
	if !ok {
		log.Fatalf("divider: unknown mode %q", *mode)
	}

	ohm := tables.Resistance.Unit(units.Ohm).Label
	p := newPrinter(map[form.Field]string{
		form.DividerVin:  "V",
		form.DividerVout: "V",
		form.DividerR1:   ohm,
		form.DividerR2:   ohm,
	})
	f := form.NewDivider(tables, p, logger)
	ev := form.DividerEvent{
		Vin:    number(*vin),
		Vout:   number(*vout),
		R1:     number(*r1),
		R1Unit: units.Ohm,
		R2:     number(*r2),
		R2Unit: units.Ohm,
	}
	f.SetMode(m, ev)
	p.flush(os.Stdout)

	if *load == "" {
		return
	}
	rl, err := util.ParseValue(*load)
	if err != nil {
		log.Fatalf("divider: -load: %v", err)
	}
	// Use the solved field when the mode computed it.
	solved := func(f form.Field, n form.Number) float64 {
		if v, ok := p.values[f]; ok {
			return v
		}
		return n.Value
	}
	n, err := divider.Network(solved(form.DividerVin, ev.Vin), solved(form.DividerR1, ev.R1), solved(form.DividerR2, ev.R2), rl)
	if err != nil {
		log.Fatalf("divider: %v", err)
	}
	n.Debug = *debug
	res, err := divider.SolveNetwork(n)
	if err != nil {
		log.Fatalf("divider: %v", err)
	}
	fmt.Printf("%-20s %s\n", "loaded.vout", util.FormatValueFactor(res.Vout, "V"))
	fmt.Printf("%-20s %s\n", "loaded.source", util.FormatValueFactor(res.SourceCurrent, "A"))
	fmt.Printf("%-20s %s\n", "loaded.load", util.FormatValueFactor(res.LoadCurrent, "A"))
}

func runLED(args []string) {
	d := defaults.LED
	fs := flag.NewFlagSet("led", flag.ExitOnError)
	supply := fs.String("supply", "", "supply voltage")
	vf := fs.String("vf", fmt.Sprint(d.ForwardVoltage), "forward voltage of one LED")
	current := fs.String("current", fmt.Sprint(d.Current), "branch current")
	currentUnit := fs.String("current-unit", "mA", "current unit")
	series := fs.String("series", fmt.Sprint(d.Series), "LEDs in series")
	parallel := fs.String("parallel", fmt.Sprint(d.Parallel), "parallel branches")
	parse(fs, args)

	cu := unitIndex(tables.Current, *currentUnit)
	p := newPrinter(map[form.Field]string{
		form.LEDTotalVf:      "V",
		form.LEDTotalCurrent: *currentUnit,
		form.LEDResistance:   tables.Resistance.Unit(units.Ohm).Label,
		form.LEDPower:        "W",
	})
	form.NewLED(tables, p, logger).Change(form.LEDEvent{
		Supply:         number(*supply),
		ForwardVoltage: number(*vf),
		Current:        number(*current),
		CurrentUnit:    cu,
		Series:         util.ParseCount(*series),
		Parallel:       util.ParseCount(*parallel),
		ResistanceUnit: units.Ohm,
	})
	p.flush(os.Stdout)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }

	configPath := flag.String("config", "", "defaults file (TOML)")
	verbose := flag.Bool("v", false, "log solver diagnostics to stderr")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		logger = log.New(os.Stderr, "eecalc: ", log.LstdFlags)
	}

	path := *configPath
	if path == "" {
		if p, err := config.Path(); err == nil {
			path = p
		}
	}
	var err error
	if defaults, err = config.Load(path); err != nil {
		log.Fatalf("Error loading defaults: %v", err)
	}

	commands := map[string]func([]string){
		"convert": runConvert,
		"smd":     runSMD,
		"trace":   runTrace,
		"via":     runVia,
		"divider": runDivider,
		"led":     runLED,
	}
	run, ok := commands[flag.Arg(0)]
	if !ok {
		flag.Usage()
		log.Fatalf("unknown command %q", flag.Arg(0))
	}
	run(flag.Args()[1:])
}
