// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package netlist

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/dalzilio/bfdd"
)

var (
	// ErrTooFewSupports is returned when the manager has less supports than
	// required by the circuit (see Supports).
	ErrTooFewSupports = errors.New("not enough supports for the circuit")
	// ErrBadGate is returned when a gate has a wrong type or number of fanins.
	ErrBadGate = errors.New("malformed gate")
)

// Supports returns the number of supports needed to build the diagrams of c:
// one for each primary input, and two for each register (current and next
// state).
func Supports(c Circuit) int {
	return len(c.Inputs()) + 2*len(c.Registers())
}

// Builder computes the BDD of the gates of a circuit and binds them, by gate
// id, in the registry of a manager.
type Builder struct {
	m   *bfdd.Manager
	c   Circuit
	log *log.Logger
}

// NewBuilder returns a Builder for c and assigns the supports of m: primary
// inputs get levels 1 to n, then come the current state of registers, then
// their next state. Input and current state gates are bound to their support
// by id, while next states are bound by name (the name of the register
// followed by "_ns"). The constant gates are bound to Zero.
func NewBuilder(m *bfdd.Manager, c Circuit, logger *log.Logger) (*Builder, error) {
	need := Supports(c)
	if need > m.NumSupports() {
		return nil, fmt.Errorf("%w: circuit needs %d, manager has %d", ErrTooFewSupports, need, m.NumSupports())
	}
	if logger == nil {
		logger = log.Default()
	}
	b := &Builder{m: m, c: c, log: logger}
	level := 1
	for _, id := range c.Inputs() {
		m.AddBDD(id, m.Support(level))
		level++
	}
	for _, r := range c.Registers() {
		m.AddBDD(r.Output, m.Support(level))
		level++
	}
	for _, r := range c.Registers() {
		m.AddBDDName(b.NextStateName(r), m.Support(level))
		level++
	}
	if c.Len() > 0 && c.Gate(0).Type == Const {
		m.AddBDD(0, m.Zero())
	}
	b.log.Debug("bdd order", "inputs", len(c.Inputs()), "registers", len(c.Registers()), "supports", need)
	return b, nil
}

// NextStateName returns the name bound to the next-state support of r.
func (b *Builder) NextStateName(r Register) string {
	name := b.c.Gate(r.Output).Name
	if name == "" {
		name = strconv.Itoa(r.Output)
	}
	return name + "_ns"
}

// NextState returns the support used for the next state of r.
func (b *Builder) NextState(r Register) bfdd.BDD {
	return b.m.BDDByName(b.NextStateName(r))
}

// BuildAll builds the BDD of every output and of the next-state function of
// every register.
func (b *Builder) BuildAll() error {
	for _, id := range b.c.Outputs() {
		if _, err := b.Build(id); err != nil {
			return err
		}
	}
	for _, r := range b.c.Registers() {
		if _, err := b.Build(r.Input); err != nil {
			return err
		}
	}
	return nil
}

// Build returns the BDD for gate id. The BDD of all the and gates in its fanin
// cone are computed in depth-first order and bound to their gate id.
func (b *Builder) Build(id int) (bfdd.BDD, error) {
	if n := b.m.BDDByID(id); !n.IsNull() {
		return n, nil
	}
	for _, g := range b.dfs(id) {
		gate := b.c.Gate(g)
		switch gate.Type {
		case And:
			if len(gate.Fanin) != 2 {
				return bfdd.BDD{}, fmt.Errorf("%w: and gate %d has %d fanins", ErrBadGate, g, len(gate.Fanin))
			}
			l, err := b.lit(gate.Fanin[0])
			if err != nil {
				return bfdd.BDD{}, err
			}
			r, err := b.lit(gate.Fanin[1])
			if err != nil {
				return bfdd.BDD{}, err
			}
			b.m.AddBDD(g, l.And(r))
		case Output, RegisterInput:
			if g != id {
				return bfdd.BDD{}, fmt.Errorf("%w: %s gate %d used as a fanin", ErrBadGate, gate.Type, g)
			}
			if len(gate.Fanin) != 1 {
				return bfdd.BDD{}, fmt.Errorf("%w: %s gate %d has %d fanins", ErrBadGate, gate.Type, g, len(gate.Fanin))
			}
			res, err := b.lit(gate.Fanin[0])
			if err != nil {
				return bfdd.BDD{}, err
			}
			b.m.AddBDD(g, res)
		}
	}
	res := b.m.BDDByID(id)
	if res.IsNull() {
		return res, fmt.Errorf("%w: no diagram for %s gate %d", ErrBadGate, b.c.Gate(id).Type, id)
	}
	b.log.Debug("build", "gate", id, "type", b.c.Gate(id).Type, "nodes", res.NodeCount())
	return res, nil
}

func (b *Builder) lit(l Lit) (bfdd.BDD, error) {
	n := b.m.BDDByID(l.Gate)
	if n.IsNull() {
		return n, fmt.Errorf("%w: fanin %d has no diagram", ErrBadGate, l.Gate)
	}
	if l.Inv {
		return n.Not(), nil
	}
	return n, nil
}

// dfs returns the gates in the fanin cone of id, in post-order, skipping the
// gates that already have a diagram. We use an explicit stack since cones can
// be very deep.
func (b *Builder) dfs(id int) []int {
	type frame struct {
		id   int
		next int // index of the next fanin to visit
	}
	res := []int{}
	visited := map[int]bool{id: true}
	stack := []frame{{id: id}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		fanin := b.c.Gate(top.id).Fanin
		if top.next < len(fanin) {
			g := fanin[top.next].Gate
			top.next++
			if !visited[g] && b.m.BDDByID(g).IsNull() {
				visited[g] = true
				stack = append(stack, frame{id: g})
			}
			continue
		}
		res = append(res, top.id)
		stack = stack[:len(stack)-1]
	}
	return res
}
