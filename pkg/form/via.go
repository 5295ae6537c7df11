package form

import (
	"log"

	"eecalc/pkg/guard"
	"eecalc/pkg/units"
	"eecalc/pkg/via"
)

// ViaEvent carries every via field. Lengths use the Length scale, the
// operating and maximum current the Current scale.
type ViaEvent struct {
	Current      Number
	CurrentUnit  int
	TempRise     Number
	Board        Number
	BoardUnit    int
	Diameter     Number
	DiameterUnit int
	Wall         Number
	WallUnit     int

	OhmsUnit  int
	VoltsUnit int
	WattsUnit int
}

var viaOutputs = []Field{ViaArea, ViaMaxCurrent, ViaResistance, ViaDrop, ViaLoss}

type Via struct {
	base
	copper guard.Guard // mass <-> surface thickness
}

func NewVia(t *units.Tables, sink Sink, logger *log.Logger) *Via {
	return &Via{base: newBase("via", t, sink, logger)}
}

// Change recomputes the via. A field that does not parse is flagged and the
// outputs are cleared. A temperature rise of zero or less takes the default
// rise.
func (f *Via) Change(ev ViaEvent) bool {
	return f.run(&f.guard, func() { f.solve(ev) })
}

// ChangeMass writes surface and barrel plating for a copper weight.
func (f *Via) ChangeMass(oz Number, surfaceUnit, wallUnit int) bool {
	return f.run(&f.copper, func() {
		if !f.need(ViaMass, oz) {
			return
		}
		surface, wall := via.Plating(oz.Value)
		f.sink.Show(ViaSurface, f.tables.Length.Convert(surface, units.Micrometer, surfaceUnit))
		f.sink.Show(ViaWall, f.tables.Length.Convert(wall, units.Micrometer, wallUnit))
	})
}

// ChangeSurface writes the copper weight for a surface thickness.
func (f *Via) ChangeSurface(thickness Number, unit int) bool {
	return f.run(&f.copper, func() {
		if !f.need(ViaSurface, thickness) {
			return
		}
		um := f.tables.Length.Convert(thickness.Value, unit, units.Micrometer)
		f.sink.Show(ViaMass, via.Ounces(um))
	})
}

func (f *Via) solve(ev ViaEvent) {
	ok := f.need(ViaCurrent, ev.Current)
	ok = f.need(ViaTempRise, ev.TempRise) && ok
	ok = f.need(ViaBoard, ev.Board) && ok
	ok = f.need(ViaDiameter, ev.Diameter) && ok
	ok = f.need(ViaWall, ev.Wall) && ok
	if !ok {
		f.clear(viaOutputs...)
		return
	}

	t := f.tables
	p := via.Params{
		Current:        t.Current.ToBase(ev.Current.Value, ev.CurrentUnit),
		TempRise:       ev.TempRise.Value,
		BoardThickness: t.Length.ToBase(ev.Board.Value, ev.BoardUnit),
		Diameter:       t.Length.ToBase(ev.Diameter.Value, ev.DiameterUnit),
		WallThickness:  t.Length.ToBase(ev.Wall.Value, ev.WallUnit),
	}

	res, err := via.Solve(p)
	if err != nil {
		f.log.Printf("via: %v", err)
		f.clear(viaOutputs...)
		return
	}

	f.sink.Show(ViaArea, res.AreaMM2)
	f.sink.Show(ViaMaxCurrent, t.Current.FromBase(res.MaxCurrent, ev.CurrentUnit))
	f.sink.Show(ViaResistance, t.Ohms.FromBase(res.Resistance, ev.OhmsUnit))
	f.sink.Show(ViaDrop, t.Volts.FromBase(res.VoltageDrop, ev.VoltsUnit))
	f.sink.Show(ViaLoss, t.Watts.FromBase(res.PowerLoss, ev.WattsUnit))
	f.sink.Mark(ViaLoss, warnIf(res.OverLimit))
}
