// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import "fmt"

// BDD is a reference to a Boolean function represented as a reduced ordered
// binary decision diagram with complemented edges. Values of type BDD are small
// and can be copied. Two BDD obtained from the same manager (and since the same
// call to Init) are equal, using ==, if and only if they represent the same
// function.
//
// The zero value of BDD is the null node, returned by lookups that fail. Using
// it in an operation panics.
type BDD struct {
	m   *Manager
	gen uint32
	e   Edge
}

func (m *Manager) bddnode(e Edge) BDD {
	return BDD{m: m, gen: m.gen, e: e}
}

// bedge returns the edge of n after checking that n is a live node of m.
func (m *Manager) bedge(n BDD) Edge {
	if n.m == nil {
		fail(ErrNullNode, "in BDD operation")
	}
	if n.m != m {
		fail(ErrForeignNode, "in BDD operation")
	}
	if n.gen != m.gen {
		fail(ErrStaleHandle, "BDD from generation %d, manager at %d", n.gen, m.gen)
	}
	return n.e
}

func (n BDD) edge() Edge {
	if n.m == nil {
		fail(ErrNullNode, "in BDD operation")
	}
	return n.m.bedge(n)
}

// Manager returns the manager owning n, or nil for the null node.
func (n BDD) Manager() *Manager {
	return n.m
}

// IsNull reports whether n is the null node.
func (n BDD) IsNull() bool {
	return n.m == nil
}

// Edge returns the (node, polarity) pair of n.
func (n BDD) Edge() Edge {
	return n.e
}

// Level returns the level of the top variable of n, or 0 for a constant.
func (n BDD) Level() int {
	return n.m.bdd.level(n.edge())
}

// IsOne reports whether n is the constant true.
func (n BDD) IsOne() bool {
	return n.edge() == edgeOne
}

// IsZero reports whether n is the constant false.
func (n BDD) IsZero() bool {
	return n.edge() == edgeZero
}

// IsTerminal reports whether n is a constant.
func (n BDD) IsTerminal() bool {
	return n.edge().IsTerminal()
}

// IsNegEdge reports whether n is a complemented edge.
func (n BDD) IsNegEdge() bool {
	return n.edge().Pol == Neg
}

// Left returns the positive cofactor of n with respect to its top variable. It
// returns n for a constant.
func (n BDD) Left() BDD {
	e := n.edge()
	if e.IsTerminal() {
		return n
	}
	t, _ := n.m.bdd.cofactors(e, n.m.bdd.level(e))
	return n.m.bddnode(t)
}

// Right returns the negative cofactor of n with respect to its top variable. It
// returns n for a constant.
func (n BDD) Right() BDD {
	e := n.edge()
	if e.IsTerminal() {
		return n
	}
	_, f := n.m.bdd.cofactors(e, n.m.bdd.level(e))
	return n.m.bddnode(f)
}

// Not returns the negation of n. This is a constant time operation.
func (n BDD) Not() BDD {
	return n.m.bddnode(n.edge().Not())
}

// And returns the conjunction of n and g.
func (n BDD) And(g BDD) BDD {
	return n.m.bddnode(n.m.ite(n.edge(), n.m.bedge(g), edgeZero))
}

// Or returns the disjunction of n and g.
func (n BDD) Or(g BDD) BDD {
	return n.m.bddnode(n.m.ite(n.edge(), edgeOne, n.m.bedge(g)))
}

// Xor returns the exclusive or of n and g.
func (n BDD) Xor(g BDD) BDD {
	e := n.m.bedge(g)
	return n.m.bddnode(n.m.ite(n.edge(), e.Not(), e))
}

// Xnor returns the equivalence of n and g.
func (n BDD) Xnor(g BDD) BDD {
	e := n.m.bedge(g)
	return n.m.bddnode(n.m.ite(n.edge(), e, e.Not()))
}

// Nand returns the negation of (n & g).
func (n BDD) Nand(g BDD) BDD {
	return n.And(g).Not()
}

// Nor returns the negation of (n | g).
func (n BDD) Nor(g BDD) BDD {
	return n.Or(g).Not()
}

// Imp returns the implication (n => g).
func (n BDD) Imp(g BDD) BDD {
	return n.m.bddnode(n.m.ite(n.edge(), n.m.bedge(g), edgeOne))
}

// Equal reports whether n and g represent the same function. This is a
// constant time operation.
func (n BDD) Equal(g BDD) bool {
	return n.edge() == n.m.bedge(g)
}

// EqualNot reports whether n is the negation of g.
func (n BDD) EqualNot(g BDD) bool {
	return n.edge() == n.m.bedge(g).Not()
}

// Less is the total order over nodes used to break symmetries in Ite. It
// compares the level, then the node identity, then the polarity.
func (n BDD) Less(g BDD) bool {
	return n.m.bdd.less(n.edge(), n.m.bedge(g))
}

// NodeCount returns the number of interior nodes reachable from n.
func (n BDD) NodeCount() int {
	return n.m.bdd.nodecount(n.edge())
}

func (n BDD) String() string {
	if n.m == nil {
		return "null"
	}
	if n.gen != n.m.gen {
		return "stale"
	}
	return fmt.Sprintf("bdd(%s@%d)", n.e, n.m.bdd.level(n.e))
}
