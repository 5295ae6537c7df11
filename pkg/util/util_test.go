package util

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{" 4.7k ", 4700},
		{"4.7K", 4700},
		{"2meg", 2e6},
		{"2M", 2e6},
		{"100n", 100e-9},
		{"22p", 22e-12},
		{"3.3m", 3.3e-3},
		{"-1.5", -1.5},
		{"1e3", 1000},
		{".5u", 0.5e-6},
		{"1T", 1e12},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		if err != nil {
			t.Errorf("ParseValue(%q): %v", tt.in, err)
			continue
		}
		if !scalar.EqualWithinRel(got, tt.want, 1e-12) {
			t.Errorf("ParseValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseValueInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "1.2.3", "5x", "k", "1 k"} {
		if _, err := ParseValue(in); !errors.Is(err, ErrParse) {
			t.Errorf("ParseValue(%q) err = %v", in, err)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if v, ok := ParseNumber("1.5"); !ok || v != 1.5 {
		t.Errorf("ParseNumber(1.5) = %v, %v", v, ok)
	}
	if _, ok := ParseNumber("x"); ok {
		t.Error("ParseNumber(x) ok")
	}
}

func TestParseCount(t *testing.T) {
	tests := map[string]int{"3": 3, " 12 ": 12, "0": 1, "-4": 1, "": 1, "two": 1, "1.5": 1}
	for in, want := range tests {
		if got := ParseCount(in); got != want {
			t.Errorf("ParseCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestFormatValueFactor(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{4700, "ohm", "4.700 kohm"},
		{2.2e6, "ohm", "2.200 Mohm"},
		{0.02, "A", "20.000 mA"},
		{1e-7, "F", "100.000 nF"},
		{5, "V", "5.000 V"},
		{0, "W", "0.000 W"},
	}
	for _, tt := range tests {
		if got := FormatValueFactor(tt.value, tt.unit); got != tt.want {
			t.Errorf("FormatValueFactor(%v, %s) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestFormatMagnitude(t *testing.T) {
	tests := map[float64]string{
		1:     "       1",
		1000:  "    1000",
		1e6:   "1.00e+06",
		1e-4:  "1.00e-04",
		0.001: "   0.001",
		0:     "       0",
	}
	for v, want := range tests {
		if got := FormatMagnitude(v); got != want {
			t.Errorf("FormatMagnitude(%v) = %q, want %q", v, got, want)
		}
	}
}
