// Package smd decodes the value markings printed on surface-mount resistors
// and capacitors.
//
// Three digit codes carry two significant digits and a power of ten ("103" is
// 10*10^3). A marker letter R, P or N stands in for the decimal point ("4R7"
// is 4.7). Resistor codes decode to ohms, capacitor codes to picofarads.
package smd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"eecalc/pkg/units"
)

var ErrParse = errors.New("smd: invalid code")

const markers = "RrPpNn"

// Decode returns the base-unit value of a marking. Codes that do not follow
// one of the marking schemes decode to 0 with ErrParse.
func Decode(code string) (float64, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, nil
	}

	n := 0
	for _, r := range code {
		if strings.ContainsRune(markers, r) {
			n++
		}
	}

	switch {
	case n == 1:
		idx := strings.IndexAny(code, markers)
		whole, frac := code[:idx], code[idx+1:]
		if whole+frac == "" || !isDigits(whole) || !isDigits(frac) {
			return 0, fmt.Errorf("%w: %q", ErrParse, code)
		}
		return parse(whole+"."+frac, code)

	case n > 1:
		return 0, fmt.Errorf("%w: %q has more than one decimal marker", ErrParse, code)
	}

	if !isDigits(code) {
		return 0, fmt.Errorf("%w: %q", ErrParse, code)
	}

	if len(code) >= 3 {
		mantissa, err := parse(code[:len(code)-1], code)
		if err != nil {
			return 0, err
		}
		exponent := int(code[len(code)-1] - '0')
		return mantissa * math.Pow10(exponent), nil
	}

	return parse(code, code)
}

// Resistor decodes a resistor marking into the given resistance unit.
func Resistor(t *units.Tables, code string, unit int) (float64, error) {
	ohms, err := Decode(code)
	return t.Resistance.FromBase(ohms, unit), err
}

// Capacitor decodes a capacitor marking into the given capacitance unit.
func Capacitor(t *units.Tables, code string, unit int) (float64, error) {
	pf, err := Decode(code)
	return t.Capacitance.FromBase(pf, unit), err
}

func parse(s, code string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, code)
	}
	return v, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
