package network

import (
	"fmt"

	"eecalc/pkg/matrix"
)

type Resistor struct {
	BaseDevice
}

func NewResistor(name string, nodeNames []string, value float64) *Resistor {
	return &Resistor{
		BaseDevice: BaseDevice{
			Name:      name,
			Nodes:     make([]int, len(nodeNames)),
			NodeNames: nodeNames,
			Value:     value,
		},
	}
}

func (r *Resistor) GetType() string { return "R" }

func (r *Resistor) Stamp(matrix matrix.DeviceMatrix) error {
	if len(r.Nodes) != 2 {
		return fmt.Errorf("resistor %s: requires exactly 2 nodes", r.Name)
	}
	if r.Value <= 0 {
		return fmt.Errorf("resistor %s: value must be positive: %g", r.Name, r.Value)
	}

	n1, n2 := r.Nodes[0], r.Nodes[1]
	g := 1.0 / r.Value // Conductance. G = 1/R

	if n1 != 0 {
		matrix.AddElement(n1, n1, g)
		if n2 != 0 {
			matrix.AddElement(n1, n2, -g)
		}
	}
	if n2 != 0 {
		if n1 != 0 {
			matrix.AddElement(n2, n1, -g)
		}
		matrix.AddElement(n2, n2, g)
	}

	return nil
}
