// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import "fmt"

// FDD is a reference to a Boolean function represented as a functional
// decision diagram, using the positive Davio expansion
//
//	f = f0 ^ (x & (f1 ^ f0))
//
// where f1 and f0 are the positive and negative cofactors of f with respect to
// its top variable x. The then child of a node is the difference (f1 ^ f0), and
// the else child is the negative cofactor f0. FDD use the same terminal node
// than BDD for the two constants but interior edges are never complemented.
//
// Like with BDD, two FDD from the same manager are equal if and only if they
// represent the same function.
type FDD struct {
	m   *Manager
	gen uint32
	e   Edge
}

func (m *Manager) fddnode(e Edge) FDD {
	return FDD{m: m, gen: m.gen, e: e}
}

// fedge returns the edge of n after checking that n is a live node of m.
func (m *Manager) fedge(n FDD) Edge {
	if n.m == nil {
		fail(ErrNullNode, "in FDD operation")
	}
	if n.m != m {
		fail(ErrForeignNode, "in FDD operation")
	}
	if n.gen != m.gen {
		fail(ErrStaleHandle, "FDD from generation %d, manager at %d", n.gen, m.gen)
	}
	return n.e
}

func (n FDD) edge() Edge {
	if n.m == nil {
		fail(ErrNullNode, "in FDD operation")
	}
	return n.m.fedge(n)
}

// Manager returns the manager owning n, or nil for the null node.
func (n FDD) Manager() *Manager {
	return n.m
}

// IsNull reports whether n is the null node.
func (n FDD) IsNull() bool {
	return n.m == nil
}

// Edge returns the (node, polarity) pair of n.
func (n FDD) Edge() Edge {
	return n.e
}

// Level returns the level of the top variable of n, or 0 for a constant.
func (n FDD) Level() int {
	return n.m.fdd.level(n.edge())
}

// IsOne reports whether n is the constant true.
func (n FDD) IsOne() bool {
	return n.edge() == edgeOne
}

// IsZero reports whether n is the constant false.
func (n FDD) IsZero() bool {
	return n.edge() == edgeZero
}

// IsTerminal reports whether n is a constant.
func (n FDD) IsTerminal() bool {
	return n.edge().IsTerminal()
}

// Left returns the difference part of n, that is the then child of its top
// node. It returns n for a constant.
func (n FDD) Left() FDD {
	e := n.edge()
	if e.IsTerminal() {
		return n
	}
	hi, _ := n.m.fdd.children(e)
	return n.m.fddnode(hi)
}

// Right returns the negative cofactor of n with respect to its top variable.
// It returns n for a constant.
func (n FDD) Right() FDD {
	e := n.edge()
	if e.IsTerminal() {
		return n
	}
	_, lo := n.m.fdd.children(e)
	return n.m.fddnode(lo)
}

// Not returns the negation of n.
func (n FDD) Not() FDD {
	return n.m.fddnode(n.m.fddNot(n.edge()))
}

// Xor returns the exclusive or of n and g.
func (n FDD) Xor(g FDD) FDD {
	return n.m.fddnode(n.m.fddXor(n.edge(), n.m.fedge(g)))
}

// Or returns the disjunction of n and g.
func (n FDD) Or(g FDD) FDD {
	return n.m.fddnode(n.m.fddOr(n.edge(), n.m.fedge(g)))
}

// And returns the conjunction of n and g, computed as !(!n | !g).
func (n FDD) And(g FDD) FDD {
	return n.m.fddnode(n.m.fddAnd(n.edge(), n.m.fedge(g)))
}

// Equal reports whether n and g represent the same function.
func (n FDD) Equal(g FDD) bool {
	return n.edge() == n.m.fedge(g)
}

// NodeCount returns the number of interior nodes reachable from n.
func (n FDD) NodeCount() int {
	return n.m.fdd.nodecount(n.edge())
}

func (n FDD) String() string {
	if n.m == nil {
		return "null"
	}
	if n.gen != n.m.gen {
		return "stale"
	}
	return fmt.Sprintf("fdd(%s@%d)", n.e, n.m.fdd.level(n.e))
}

// ************************************************************

// fddmk returns the FDD with difference d and negative cofactor r at level v,
// applying the reduction rule for a null difference.
func (k *kernel) fddmk(d, r Edge, v int) Edge {
	if d == edgeZero {
		return r
	}
	return k.uniquify(d, r, v)
}

// split returns the difference and negative cofactor of e with respect to the
// variable at level v. A node below v has a zero difference.
func (k *kernel) split(e Edge, v int) (Edge, Edge) {
	if k.level(e) < v {
		return edgeZero, e
	}
	return k.children(e)
}

// shannon returns the positive and negative cofactors of e with respect to the
// variable at level v, which must be the level of e or above.
func (m *Manager) fddShannon(e Edge, v int) (Edge, Edge) {
	d, r := m.fdd.split(e, v)
	if d == edgeZero {
		return r, r
	}
	return m.fddXor(d, r), r
}

// fddNot only flips the last negative cofactor in the chain of else children,
// since !f == 1 ^ f.
func (m *Manager) fddNot(f Edge) Edge {
	if f.IsTerminal() {
		return f.Not()
	}
	k := &m.fdd
	if res, ok := k.read(opFddNot, f, Edge{}, Edge{}); ok {
		return res
	}
	hi, lo := k.children(f)
	res := k.fddmk(hi, m.fddNot(lo), k.level(f))
	return k.write(opFddNot, f, Edge{}, Edge{}, res)
}

func (m *Manager) fddXor(f, g Edge) Edge {
	switch {
	case f == edgeZero:
		return g
	case g == edgeZero:
		return f
	case f == g:
		return edgeZero
	case f == edgeOne:
		return m.fddNot(g)
	case g == edgeOne:
		return m.fddNot(f)
	}
	k := &m.fdd
	if k.less(g, f) {
		f, g = g, f
	}
	if res, ok := k.read(opFddXor, f, g, Edge{}); ok {
		return res
	}
	v := max(k.level(f), k.level(g))
	fd, fn := k.split(f, v)
	gd, gn := k.split(g, v)
	d := m.fddXor(fd, gd)
	r := m.fddXor(fn, gn)
	return k.write(opFddXor, f, g, Edge{}, k.fddmk(d, r, v))
}

func (m *Manager) fddOr(f, g Edge) Edge {
	switch {
	case f == edgeOne || g == edgeOne:
		return edgeOne
	case f == edgeZero:
		return g
	case g == edgeZero:
		return f
	case f == g:
		return f
	}
	k := &m.fdd
	if k.less(g, f) {
		f, g = g, f
	}
	if res, ok := k.read(opFddOr, f, g, Edge{}); ok {
		return res
	}
	v := max(k.level(f), k.level(g))
	fd, fn := k.split(f, v)
	gd, gn := k.split(g, v)
	// positive cofactors
	fp := m.fddXor(fd, fn)
	gp := m.fddXor(gd, gn)
	r := m.fddOr(fn, gn)
	p := m.fddOr(fp, gp)
	return k.write(opFddOr, f, g, Edge{}, k.fddmk(m.fddXor(p, r), r, v))
}

func (m *Manager) fddAnd(f, g Edge) Edge {
	return m.fddNot(m.fddOr(m.fddNot(f), m.fddNot(g)))
}

// ************************************************************

// Cofactor returns the cofactor of n with respect to the variable at the given
// level, that is n[x := 1] when pos is true and n[x := 0] otherwise. It panics
// with ErrIllegalLevel if level is not in [1..NumSupports].
func (n FDD) Cofactor(level int, pos bool) FDD {
	e := n.edge()
	n.m.checklevel(level)
	return n.m.fddnode(n.m.fddcofactor(e, level, pos, make(map[Edge]Edge)))
}

// PosCofactor returns n[x := 1] where x is the variable at the given level.
func (n FDD) PosCofactor(level int) FDD {
	return n.Cofactor(level, true)
}

// NegCofactor returns n[x := 0] where x is the variable at the given level.
func (n FDD) NegCofactor(level int) FDD {
	return n.Cofactor(level, false)
}

func (m *Manager) fddcofactor(e Edge, level int, pos bool, memo map[Edge]Edge) Edge {
	k := &m.fdd
	l := k.level(e)
	if l < level {
		return e
	}
	if l == level {
		f1, f0 := m.fddShannon(e, l)
		if pos {
			return f1
		}
		return f0
	}
	if res, ok := memo[e]; ok {
		return res
	}
	// cofactoring with respect to a lower variable commutes with the
	// expansion on the top variable
	hi, lo := k.children(e)
	res := k.fddmk(m.fddcofactor(hi, level, pos, memo), m.fddcofactor(lo, level, pos, memo), l)
	memo[e] = res
	return res
}

// Exist returns the existential quantification of n with respect to the
// variable at the given level.
func (n FDD) Exist(level int) FDD {
	e := n.edge()
	n.m.checklevel(level)
	return n.m.fddnode(n.m.fddexist(e, level, make(map[Edge]Edge)))
}

func (m *Manager) fddexist(e Edge, level int, memo map[Edge]Edge) Edge {
	k := &m.fdd
	l := k.level(e)
	if l < level {
		return e
	}
	if res, ok := memo[e]; ok {
		return res
	}
	f1, f0 := m.fddShannon(e, l)
	if l == level {
		res := m.fddOr(f1, f0)
		memo[e] = res
		return res
	}
	t := m.fddexist(f1, level, memo)
	f := m.fddexist(f0, level, memo)
	var res Edge
	if t == f {
		res = t
	} else {
		res = k.fddmk(m.fddXor(t, f), f, l)
	}
	memo[e] = res
	return res
}
