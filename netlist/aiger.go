// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
)

// FromAiger returns the Netlist of an AIGER circuit. Inputs, latches and and
// gates keep the index of their variable in the underlying logic system as
// gate id, and gate 0 is the constant false. Outputs, then next-state gates of
// latches, get the ids following the last variable.
func FromAiger(a *aiger.T) (*Netlist, error) {
	sys := a.S
	n := &Netlist{gates: make([]Gate, sys.Len())}
	n.gates[0] = Gate{Type: Const, Name: "const0"}
	lit := func(m z.Lit) Lit {
		if m.Var() == sys.T.Var() {
			// the constant true of the logic system is the negation of gate 0
			return Lit{Gate: 0, Inv: m == sys.T}
		}
		return Lit{Gate: int(m.Var()), Inv: !m.IsPos()}
	}
	latches := make(map[z.Var]int, len(sys.Latches))
	for i, m := range sys.Latches {
		latches[m.Var()] = i
	}
	for i := 1; i < sys.Len(); i++ {
		m := sys.At(i)
		if m.Var() == sys.T.Var() {
			n.gates[i] = Gate{Type: Const, Name: "const1"}
			continue
		}
		if _, ok := latches[m.Var()]; ok {
			n.gates[i] = Gate{Type: RegisterOutput}
			continue
		}
		switch sys.Type(m) {
		case logic.SInput:
			n.gates[i] = Gate{Type: Input}
		case logic.SAnd:
			x, y := sys.Ins(m)
			n.gates[i] = Gate{Type: And, Fanin: []Lit{lit(x), lit(y)}}
		default:
			n.gates[i] = Gate{Type: Const}
		}
	}
	for i, m := range a.Inputs {
		id := int(m.Var())
		n.gates[id] = Gate{Type: Input, Name: symbol(a.InputName(i))}
		n.inputs = append(n.inputs, id)
	}
	for i, m := range a.Outputs {
		name, ok := a.OutputName(i)
		if !ok {
			name = fmt.Sprintf("o%d", i)
		}
		n.outputs = append(n.outputs, n.add(Gate{Type: Output, Fanin: []Lit{lit(m)}, Name: name}))
	}
	for i, m := range sys.Latches {
		ro := int(m.Var())
		name, ok := a.LatchName(i)
		if !ok {
			name = fmt.Sprintf("l%d", i)
		}
		n.gates[ro] = Gate{Type: RegisterOutput, Name: name}
		ri := n.add(Gate{Type: RegisterInput, Fanin: []Lit{lit(sys.Next(m))}, Name: name + "_ns"})
		n.registers = append(n.registers, Register{Output: ro, Input: ri})
	}
	return n, nil
}

func symbol(name string, ok bool) string {
	if !ok {
		return ""
	}
	return name
}

// ReadAiger reads a circuit in AIGER format from r, in ASCII (aag) format if
// ascii is true and in binary (aig) format otherwise.
func ReadAiger(r io.Reader, ascii bool) (*Netlist, error) {
	var a *aiger.T
	var err error
	if ascii {
		a, err = aiger.ReadAscii(r)
	} else {
		a, err = aiger.ReadBinary(r)
	}
	if err != nil {
		return nil, fmt.Errorf("reading aiger: %w", err)
	}
	return FromAiger(a)
}

// ReadAigerFile reads a circuit from an AIGER file. Files with extension .aag
// are in ASCII format, all others in binary format.
func ReadAigerFile(filename string) (*Netlist, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAiger(bufio.NewReader(f), strings.HasSuffix(filename, ".aag"))
}
