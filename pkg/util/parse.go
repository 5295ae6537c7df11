package util

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrParse = errors.New("util: invalid number")

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"M":   1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?$`)

// ParseValue reads a number with an optional SI suffix: "4.7k", "100n", "2meg".
// "M" is mega here, not milli.
func ParseValue(val string) (float64, error) {
	text := strings.TrimSpace(val)
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrParse)
	}

	matches := valueRe.FindStringSubmatch(text)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// factor
	if matches[2] != "" {
		num *= unitMap[matches[2]]
	}
	return num, nil
}

// ParseNumber is ParseValue with a success flag instead of an error.
func ParseNumber(text string) (float64, bool) {
	v, err := ParseValue(text)
	return v, err == nil
}

// ParseCount reads a diode count. Anything unreadable or below one is one.
func ParseCount(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
