// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import "fmt"

// NodeID is the index of a node in the node table of a kernel. Index 0 is the
// null identity and index 1 is the terminal node, shared by the two constants.
type NodeID uint32

// Polarity is the complement flag carried by an Edge.
type Polarity uint8

const (
	Pos Polarity = iota // regular edge
	Neg                 // complemented edge
)

func (p Polarity) String() string {
	if p == Neg {
		return "-"
	}
	return "+"
}

// Edge is a reference to a node together with a polarity. Two edges are equal
// exactly when they denote the same function, so Edge values can be compared
// with ==.
type Edge struct {
	ID  NodeID
	Pol Polarity
}

const (
	nullID     NodeID = 0
	terminalID NodeID = 1
)

var (
	edgeOne  = Edge{ID: terminalID, Pol: Pos}
	edgeZero = Edge{ID: terminalID, Pol: Neg}
)

// Not returns the complemented edge.
func (e Edge) Not() Edge {
	return Edge{ID: e.ID, Pol: e.Pol ^ 1}
}

// IsNull reports whether e is the zero value.
func (e Edge) IsNull() bool {
	return e.ID == nullID
}

// IsTerminal reports whether e points to the terminal node.
func (e Edge) IsTerminal() bool {
	return e.ID == terminalID
}

func (e Edge) negIf(b bool) Edge {
	if b {
		return e.Not()
	}
	return e
}

func (e Edge) word() uint32 {
	return uint32(e.ID)<<1 | uint32(e.Pol&1)
}

func (e Edge) String() string {
	switch {
	case e.IsNull():
		return "null"
	case e == edgeOne:
		return "1"
	case e == edgeZero:
		return "0"
	}
	return fmt.Sprintf("%s%d", e.Pol, e.ID)
}

// node is an entry in the node table. The meaning of hi and lo depends on the
// kernel: Shannon cofactors for BDD, difference and negative cofactor for FDD.
type node struct {
	hi    Edge
	lo    Edge
	level uint16
	ref   uint16 // 15 bits, saturates at _MAXREFCOUNT
	next  uint32 // next node in the same bucket, 0 if last
}

// _MAXREFCOUNT is the maximal value of the reference counter, also used to
// stick nodes (like supports) in the node table.
const _MAXREFCOUNT uint16 = 0x7FFF

// _MAXLEVEL is the maximal number of supports in a manager.
const _MAXLEVEL = 0xFFFF
