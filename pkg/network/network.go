package network

import (
	"fmt"

	"eecalc/pkg/matrix"
)

type Network struct {
	name      string
	nodeMap   map[string]int
	branchMap map[string]int
	devices   []Device
	Debug     bool // print the stamped system before solving
}

func New(name string) *Network {
	return &Network{
		name:      name,
		nodeMap:   make(map[string]int),
		branchMap: make(map[string]int),
		devices:   make([]Device, 0),
	}
}

func (n *Network) Add(devices ...Device) {
	n.devices = append(n.devices, devices...)
}

func (n *Network) Name() string {
	return n.name
}

// assign numbers the non-ground nodes 1..N, then the voltage source
// branches N+1..N+M.
func (n *Network) assign() error {
	n.nodeMap = make(map[string]int)
	n.branchMap = make(map[string]int)

	for _, dev := range n.devices {
		for _, nodeName := range dev.GetNodeNames() {
			if isGround(nodeName) {
				continue
			}
			if _, exists := n.nodeMap[nodeName]; !exists {
				n.nodeMap[nodeName] = len(n.nodeMap) + 1
			}
		}
	}

	branchStart := len(n.nodeMap) + 1
	for _, dev := range n.devices {
		if dev.GetType() == "V" {
			if _, exists := n.branchMap[dev.GetName()]; exists {
				return fmt.Errorf("network %s: duplicate source %s", n.name, dev.GetName())
			}
			n.branchMap[dev.GetName()] = branchStart
			branchStart++
		}
	}

	for _, dev := range n.devices {
		nodeIndices := make([]int, len(dev.GetNodeNames()))
		for i, nodeName := range dev.GetNodeNames() {
			if isGround(nodeName) {
				continue
			}
			nodeIndices[i] = n.nodeMap[nodeName]
		}
		dev.SetNodes(nodeIndices)

		if v, ok := dev.(*VoltageSource); ok {
			v.SetBranchIndex(n.branchMap[v.GetName()])
		}
	}
	return nil
}

// Solve returns V(node) for every node and I(name) for every device. A source
// current is positive when the source delivers power.
func (n *Network) Solve() (map[string]float64, error) {
	if len(n.devices) == 0 {
		return nil, fmt.Errorf("network %s: no devices", n.name)
	}
	if err := n.assign(); err != nil {
		return nil, err
	}

	size := len(n.nodeMap) + len(n.branchMap)
	mat, err := matrix.NewMatrix(size)
	if err != nil {
		return nil, fmt.Errorf("network %s: %v", n.name, err)
	}
	defer mat.Destroy()

	for _, dev := range n.devices {
		if err := dev.Stamp(mat); err != nil {
			return nil, fmt.Errorf("stamping device %s: %v", dev.GetName(), err)
		}
	}

	if n.Debug {
		mat.PrintSystem()
	}

	if err := mat.Solve(); err != nil {
		return nil, fmt.Errorf("network %s: %v", n.name, err)
	}

	return n.solution(mat.Solution()), nil
}

func (n *Network) solution(x []float64) map[string]float64 {
	solution := make(map[string]float64)

	for name, idx := range n.nodeMap {
		solution[fmt.Sprintf("V(%s)", name)] = x[idx]
	}
	for name, idx := range n.branchMap {
		solution[fmt.Sprintf("I(%s)", name)] = -x[idx]
	}

	// V = IR -> I = V/R
	for _, dev := range n.devices {
		if dev.GetType() != "R" {
			continue
		}
		nodes := dev.GetNodes()
		v1, v2 := 0.0, 0.0
		if nodes[0] > 0 {
			v1 = x[nodes[0]]
		}
		if nodes[1] > 0 {
			v2 = x[nodes[1]]
		}
		solution[fmt.Sprintf("I(%s)", dev.GetName())] = (v1 - v2) / dev.GetValue()
	}

	return solution
}
