package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1e9:
		return fmt.Sprintf("%.3f G%s", value/1e9, unit)
	case absValue >= 1e6:
		return fmt.Sprintf("%.3f M%s", value/1e6, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatMagnitude prints a converter ratio: plain when readable, otherwise in
// scientific notation.
func FormatMagnitude(value float64) string {
	absValue := math.Abs(value)
	if absValue >= 1e6 || (absValue <= 1e-4 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+06" or "5.43e-05"
	}
	return fmt.Sprintf("%8.4g", value) // "   732.5"
}
