// Package trace sizes PCB copper traces with the IPC-2221 current/area law.
//
//	I = k * dT^0.44 * A^0.725
//
// where A is the cross-section in square mils and k depends on whether the
// trace is on an outer or an inner layer. Widths and thicknesses are in mm.
package trace

import (
	"math"

	"eecalc/internal/consts"
)

type Layer int

const (
	External Layer = iota
	Internal
)

func (l Layer) String() string {
	switch l {
	case External:
		return "External"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// K is the IPC-2221 coefficient of the layer.
func (l Layer) K() float64 {
	if l == Internal {
		return consts.IPC_K_INTERNAL
	}
	return consts.IPC_K_EXTERNAL
}

// Area returns the cross-section (mil^2) needed to carry current at tempRise.
func Area(current, tempRise float64, layer Layer) float64 {
	return math.Pow(current/(layer.K()*math.Pow(tempRise, consts.IPC_DT_EXP)), 1.0/consts.IPC_AREA_EXP)
}

// Width is the forward formula: the trace width (mm) for a current.
func Width(current, tempRise, thickness float64, layer Layer) float64 {
	thicknessMil := thickness / consts.MIL_TO_MM
	return Area(current, tempRise, layer) / thicknessMil * consts.MIL_TO_MM
}

// CurrentFor is the inverse formula: the current a trace of width (mm) carries.
func CurrentFor(width, tempRise, thickness float64, layer Layer) float64 {
	area := (width / consts.MIL_TO_MM) * (thickness / consts.MIL_TO_MM)
	return layer.K() * math.Pow(tempRise, consts.IPC_DT_EXP) * math.Pow(area, consts.IPC_AREA_EXP)
}

// Resistivity of copper (ohm*cm) at dT above the 20C reference.
func Resistivity(tempRise float64) float64 {
	return consts.CU_RHO_CM * (1 + consts.CU_ALPHA*tempRise)
}

// ThicknessFromOunces converts copper weight (oz/ft^2) to thickness (mm).
func ThicknessFromOunces(oz float64) float64 {
	return oz * consts.OZ_TO_MM
}
