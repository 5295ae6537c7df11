// Package units converts values between engineering unit scales.
//
// A scale is an ordered list of units whose magnitudes grow with their index.
// Every magnitude is mantissa*10^exponent relative to the scale's base unit, so
// conversions between decimal prefixes reduce to a difference of exponents.
package units

import (
	"errors"
	"fmt"
	"math"
)

var ErrScale = errors.New("units: invalid scale")

// Unit is one entry of a scale. A zero Mantissa means 1.
type Unit struct {
	Label    string
	Exponent int
	Mantissa float64
}

func (u Unit) mantissa() float64 {
	if u.Mantissa == 0 {
		return 1
	}
	return u.Mantissa
}

// Magnitude is the size of the unit expressed in the scale's base unit.
func (u Unit) Magnitude() float64 {
	return u.mantissa() * math.Pow10(u.Exponent)
}

// Scale is immutable once built and safe to share.
type Scale struct {
	name  string
	units []Unit
	base  int
}

// NewScale checks that exponents strictly increase and that exactly one unit is
// the base unit (exponent 0, mantissa 1).
func NewScale(name string, units ...Unit) (*Scale, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: %s has no units", ErrScale, name)
	}

	base := -1
	for i, u := range units {
		if m := u.mantissa(); m < 1 || m >= 10 {
			return nil, fmt.Errorf("%w: %s unit %q mantissa %g not in [1,10)", ErrScale, name, u.Label, m)
		}
		if i > 0 && u.Exponent <= units[i-1].Exponent {
			return nil, fmt.Errorf("%w: %s exponents not strictly increasing at %q", ErrScale, name, u.Label)
		}
		if u.Exponent == 0 && u.mantissa() == 1 {
			if base >= 0 {
				return nil, fmt.Errorf("%w: %s has more than one base unit", ErrScale, name)
			}
			base = i
		}
	}
	if base < 0 {
		return nil, fmt.Errorf("%w: %s has no base unit", ErrScale, name)
	}

	return &Scale{
		name:  name,
		units: append([]Unit(nil), units...),
		base:  base,
	}, nil
}

// MustScale is NewScale for the built-in tables.
func MustScale(name string, units ...Unit) *Scale {
	s, err := NewScale(name, units...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scale) Name() string { return s.name }
func (s *Scale) Len() int     { return len(s.units) }
func (s *Scale) Base() int    { return s.base }

// Unit panics on an invalid index; a bad index is a caller bug, not user input.
func (s *Scale) Unit(i int) Unit {
	if i < 0 || i >= len(s.units) {
		panic(fmt.Sprintf("units: index %d out of range for %s scale [0,%d)", i, s.name, len(s.units)))
	}
	return s.units[i]
}

func (s *Scale) Labels() []string {
	labels := make([]string, len(s.units))
	for i, u := range s.units {
		labels[i] = u.Label
	}
	return labels
}

// Index looks a unit up by label.
func (s *Scale) Index(label string) (int, bool) {
	for i, u := range s.units {
		if u.Label == label {
			return i, true
		}
	}
	return -1, false
}

// Ratio is how many "to" units make up one "from" unit.
func (s *Scale) Ratio(from, to int) float64 {
	uf, ut := s.Unit(from), s.Unit(to)
	ratio := math.Pow10(uf.Exponent - ut.Exponent)
	if mf, mt := uf.mantissa(), ut.mantissa(); mf != mt {
		ratio *= mf / mt
	}
	return ratio
}

func (s *Scale) Convert(value float64, from, to int) float64 {
	return value * s.Ratio(from, to)
}

func (s *Scale) ToBase(value float64, from int) float64 {
	return s.Convert(value, from, s.base)
}

func (s *Scale) FromBase(value float64, to int) float64 {
	return s.Convert(value, s.base, to)
}

// Quantity is a value together with the index of its unit.
type Quantity struct {
	Value float64
	Unit  int
}

func (q Quantity) Base(s *Scale) float64 {
	return s.ToBase(q.Value, q.Unit)
}

func (q Quantity) In(s *Scale, to int) Quantity {
	return Quantity{Value: s.Convert(q.Value, q.Unit, to), Unit: to}
}

func (q Quantity) Format(s *Scale) string {
	return fmt.Sprintf("%g %s", q.Value, s.Unit(q.Unit).Label)
}
