package divider

import (
	"fmt"
	"math"

	"eecalc/pkg/network"
)

type LoadResult struct {
	Vout          float64 // V
	SourceCurrent float64 // A drawn from Vin
	LoadCurrent   float64 // A into the load, 0 when unloaded
}

// Loaded solves the divider with rload (ohms) across R2. A non-positive or
// infinite rload leaves the output unloaded. Resistors are in ohms.
func Loaded(vin, r1, r2, rload float64) (LoadResult, error) {
	n, err := Network(vin, r1, r2, rload)
	if err != nil {
		return LoadResult{}, err
	}
	return SolveNetwork(n)
}

// Network builds the divider circuit: VIN drives node "in", R1 joins "in" to
// "out", R2 and the optional RL tie "out" to ground.
func Network(vin, r1, r2, rload float64) (*network.Network, error) {
	if r1 <= 0 || r2 <= 0 {
		return nil, fmt.Errorf("%w: R1 and R2 must be positive", ErrUndefined)
	}

	n := network.New("divider")
	n.Add(
		network.NewVoltageSource("VIN", []string{"in", "0"}, vin),
		network.NewResistor("R1", []string{"in", "out"}, r1),
		network.NewResistor("R2", []string{"out", "0"}, r2),
	)
	if rload > 0 && !math.IsInf(rload, 1) {
		n.Add(network.NewResistor("RL", []string{"out", "0"}, rload))
	}
	return n, nil
}

// SolveNetwork solves a circuit built by Network.
func SolveNetwork(n *network.Network) (LoadResult, error) {
	sol, err := n.Solve()
	if err != nil {
		return LoadResult{}, fmt.Errorf("loaded divider: %v", err)
	}

	return LoadResult{
		Vout:          sol["V(out)"],
		SourceCurrent: sol["I(VIN)"],
		LoadCurrent:   sol["I(RL)"], // absent when unloaded
	}, nil
}
