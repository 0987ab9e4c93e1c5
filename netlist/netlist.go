// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package netlist builds decision diagrams for the gates of an and-inverter
// graph, such as a circuit read from an AIGER file.
package netlist

import "fmt"

// GateType is the kind of a gate in a Circuit.
type GateType uint8

const (
	Const          GateType = iota // constant false
	Input                          // primary input
	And                            // two-input and gate
	Output                         // primary output, with one fanin
	RegisterInput                  // next-state function of a register, with one fanin
	RegisterOutput                 // current state of a register
)

var gatenames = [...]string{
	Const:          "CONST",
	Input:          "PI",
	And:            "AIG",
	Output:         "PO",
	RegisterInput:  "RI",
	RegisterOutput: "RO",
}

func (t GateType) String() string {
	if int(t) < len(gatenames) {
		return gatenames[t]
	}
	return fmt.Sprintf("GateType(%d)", t)
}

// Lit is a reference to the output of a gate, possibly inverted.
type Lit struct {
	Gate int
	Inv  bool
}

// Not returns the inverted literal.
func (l Lit) Not() Lit {
	return Lit{Gate: l.Gate, Inv: !l.Inv}
}

// Gate is a node in a Circuit.
type Gate struct {
	Type  GateType
	Fanin []Lit
	Name  string
}

// Register pairs the gate holding the current state of a register with the
// gate computing its next state.
type Register struct {
	Output int // RegisterOutput gate
	Input  int // RegisterInput gate
}

// Circuit is a read-only view over an and-inverter graph. Gates are identified
// by an integer in [0, Len) and gate 0 is the constant false.
type Circuit interface {
	Len() int
	Gate(id int) Gate
	Inputs() []int
	Outputs() []int
	Registers() []Register
}

// Netlist is a simple in-memory Circuit. Gate 0 is always the constant false.
type Netlist struct {
	gates     []Gate
	inputs    []int
	outputs   []int
	registers []Register
}

// New returns a Netlist with only the constant gate.
func New() *Netlist {
	return &Netlist{gates: []Gate{{Type: Const, Name: "const0"}}}
}

func (n *Netlist) Len() int              { return len(n.gates) }
func (n *Netlist) Gate(id int) Gate      { return n.gates[id] }
func (n *Netlist) Inputs() []int         { return n.inputs }
func (n *Netlist) Outputs() []int        { return n.outputs }
func (n *Netlist) Registers() []Register { return n.registers }

// False returns the literal for the constant false.
func (n *Netlist) False() Lit {
	return Lit{Gate: 0}
}

func (n *Netlist) add(g Gate) int {
	n.gates = append(n.gates, g)
	return len(n.gates) - 1
}

// AddInput adds a primary input and returns its literal.
func (n *Netlist) AddInput(name string) Lit {
	id := n.add(Gate{Type: Input, Name: name})
	n.inputs = append(n.inputs, id)
	return Lit{Gate: id}
}

// AddAnd adds an and gate with fanins a and b and returns its literal.
func (n *Netlist) AddAnd(a, b Lit) Lit {
	return Lit{Gate: n.add(Gate{Type: And, Fanin: []Lit{a, b}})}
}

// AddOutput adds a primary output driven by in and returns its id.
func (n *Netlist) AddOutput(name string, in Lit) int {
	id := n.add(Gate{Type: Output, Fanin: []Lit{in}, Name: name})
	n.outputs = append(n.outputs, id)
	return id
}

// AddRegister adds a register and returns its index together with the literal
// of its current state. The next state must be set with SetNext.
func (n *Netlist) AddRegister(name string) (int, Lit) {
	ro := n.add(Gate{Type: RegisterOutput, Name: name})
	ri := n.add(Gate{Type: RegisterInput, Name: name + "_ns"})
	n.registers = append(n.registers, Register{Output: ro, Input: ri})
	return len(n.registers) - 1, Lit{Gate: ro}
}

// SetNext sets in as the next-state function of the register with index reg.
func (n *Netlist) SetNext(reg int, in Lit) {
	ri := n.registers[reg].Input
	n.gates[ri].Fanin = []Lit{in}
}
