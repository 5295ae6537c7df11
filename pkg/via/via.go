// Package via estimates the current capacity and losses of a plated
// through-hole.
//
// The plated barrel is treated as a copper shell unrolled into a flat strip of
// width pi*(d+t) and thickness t, then rated with the outer-layer IPC-2221
// coefficient. All lengths are in mm.
package via

import (
	"errors"
	"fmt"
	"math"

	"eecalc/internal/consts"
)

var ErrUndefined = errors.New("via: undefined input")

// DEFAULT_TEMP_RISE replaces a non-positive temperature rise.
const DEFAULT_TEMP_RISE = 10.0

// WALL_RATIO is the barrel plating relative to the surface copper.
const WALL_RATIO = 0.7

type Params struct {
	Current        float64 // operating current (A)
	TempRise       float64 // C
	BoardThickness float64 // barrel length
	Diameter       float64 // finished hole
	WallThickness  float64 // plating
}

type Result struct {
	AreaMM2     float64
	AreaMil2    float64
	MaxCurrent  float64 // A
	Resistance  float64 // ohm
	VoltageDrop float64 // V at the operating current
	PowerLoss   float64 // W at the operating current
	OverLimit   bool    // operating current above MaxCurrent
}

// Area returns the barrel cross-section in mm^2.
func Area(diameter, wall float64) float64 {
	return math.Pi * (diameter + wall) * wall
}

// Resistivity of copper (ohm*mm) at ambient plus tempRise.
func Resistivity(tempRise float64) float64 {
	hot := consts.AMBIENT_TEMP + tempRise
	return consts.CU_RHO_MM * (1 + consts.CU_ALPHA*(hot-consts.CU_REF_TEMP))
}

func Solve(p Params) (Result, error) {
	if p.Diameter <= 0 {
		return Result{}, fmt.Errorf("%w: diameter %g must be positive", ErrUndefined, p.Diameter)
	}
	if p.WallThickness <= 0 {
		return Result{}, fmt.Errorf("%w: wall thickness %g must be positive", ErrUndefined, p.WallThickness)
	}
	if p.BoardThickness <= 0 {
		return Result{}, fmt.Errorf("%w: board thickness %g must be positive", ErrUndefined, p.BoardThickness)
	}

	dT := p.TempRise
	if dT <= 0 {
		dT = DEFAULT_TEMP_RISE
	}

	var res Result
	res.AreaMM2 = Area(p.Diameter, p.WallThickness)
	res.AreaMil2 = res.AreaMM2 * consts.MM2_TO_MIL2
	res.MaxCurrent = consts.IPC_K_EXTERNAL * math.Pow(dT, consts.IPC_DT_EXP) * math.Pow(res.AreaMil2, consts.IPC_AREA_EXP)

	res.Resistance = Resistivity(dT) * p.BoardThickness / res.AreaMM2
	res.VoltageDrop = p.Current * res.Resistance
	res.PowerLoss = p.Current * p.Current * res.Resistance
	res.OverLimit = p.Current > res.MaxCurrent

	return res, nil
}

// Plating derives surface copper (um) and barrel wall (um) from copper
// weight in oz/ft^2.
func Plating(oz float64) (surface, wall float64) {
	surface = oz * consts.OZ_TO_UM
	return surface, surface * WALL_RATIO
}

// Ounces is the copper weight of a surface thickness in um.
func Ounces(um float64) float64 {
	return um / consts.OZ_TO_UM
}
