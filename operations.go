// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"fmt"
	"math/big"
)

// Cofactor returns the cofactor of n with respect to the variable at the given
// level, that is n[x := 1] when pos is true and n[x := 0] otherwise. It panics
// with ErrIllegalLevel if level is not in [1..NumSupports].
func (n BDD) Cofactor(level int, pos bool) BDD {
	e := n.edge()
	n.m.checklevel(level)
	return n.m.bddnode(n.m.bddcofactor(e, level, pos, make(map[Edge]Edge)))
}

// PosCofactor returns n[x := 1] where x is the variable at the given level.
func (n BDD) PosCofactor(level int) BDD {
	return n.Cofactor(level, true)
}

// NegCofactor returns n[x := 0] where x is the variable at the given level.
func (n BDD) NegCofactor(level int) BDD {
	return n.Cofactor(level, false)
}

func (m *Manager) bddcofactor(e Edge, level int, pos bool, memo map[Edge]Edge) Edge {
	k := &m.bdd
	l := k.level(e)
	if l < level {
		return e
	}
	t, f := k.cofactors(e, l)
	if l == level {
		if pos {
			return t
		}
		return f
	}
	if res, ok := memo[e]; ok {
		return res
	}
	res := k.bddmk(m.bddcofactor(t, level, pos, memo), m.bddcofactor(f, level, pos, memo), l)
	memo[e] = res
	return res
}

// Exist returns the existential quantification of n with respect to the
// variable at the given level, that is n[x := 1] | n[x := 0].
func (n BDD) Exist(level int) BDD {
	e := n.edge()
	n.m.checklevel(level)
	return n.m.bddnode(n.m.bddexist(e, level, make(map[Edge]Edge)))
}

func (m *Manager) bddexist(e Edge, level int, memo map[Edge]Edge) Edge {
	k := &m.bdd
	l := k.level(e)
	if l < level {
		return e
	}
	t, f := k.cofactors(e, l)
	if l == level {
		return m.ite(t, edgeOne, f)
	}
	if res, ok := memo[e]; ok {
		return res
	}
	res := k.bddmk(m.bddexist(t, level, memo), m.bddexist(f, level, memo), l)
	memo[e] = res
	return res
}

// Exist returns the existential quantification of n for all the variables in
// levels.
func (m *Manager) Exist(n BDD, levels ...int) BDD {
	for _, l := range levels {
		n = n.Exist(l)
	}
	return n
}

// Restrict returns the generalized cofactor of n with respect to the care set
// c (Coudert and Madre restrict operator). The result agrees with n on every
// assignment satisfying c, and is often smaller than n. We return n and
// ErrZeroCare when c is the constant false.
func (n BDD) Restrict(c BDD) (BDD, error) {
	f := n.edge()
	ce := n.m.bedge(c)
	if ce == edgeZero {
		n.m.log.Error("restrict with an empty care set", "node", n)
		return n, ErrZeroCare
	}
	return n.m.bddnode(n.m.restrict(f, ce, make(map[[2]Edge]Edge))), nil
}

func (m *Manager) restrict(f, c Edge, memo map[[2]Edge]Edge) Edge {
	if c == edgeOne || f.IsTerminal() {
		return f
	}
	if f == c {
		return edgeOne
	}
	if f == c.Not() {
		return edgeZero
	}
	if res, ok := memo[[2]Edge{f, c}]; ok {
		return res
	}
	k := &m.bdd
	v := max(k.level(f), k.level(c))
	f1, f0 := k.cofactors(f, v)
	c1, c0 := k.cofactors(c, v)
	var res Edge
	switch {
	case c1 == edgeZero:
		res = m.restrict(f0, c0, memo)
	case c0 == edgeZero:
		res = m.restrict(f1, c1, memo)
	case k.level(f) < v:
		// f does not depend on the top variable of c
		res = m.restrict(f, m.ite(c1, edgeOne, c0), memo)
	default:
		res = k.bddmk(m.restrict(f1, c1, memo), m.restrict(f0, c0, memo), v)
	}
	memo[[2]Edge{f, c}] = res
	return res
}

// SatCount computes the number of satisfying variable assignments for the
// function denoted by n, over all the supports of the manager. We return a
// result using arbitrary-precision arithmetic to avoid possible overflows.
func (n BDD) SatCount() *big.Int {
	e := n.edge()
	k := &n.m.bdd
	res := big.NewInt(0)
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, n.m.nin-k.level(e), 1)
	satc := make(map[NodeID]*big.Int)
	return res.Mul(res, n.m.satcount(e, satc))
}

// satcount returns the number of assignments over the variables at levels 1
// to level(e) that satisfy e.
func (m *Manager) satcount(e Edge, satc map[NodeID]*big.Int) *big.Int {
	if e.IsTerminal() {
		if e == edgeOne {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	k := &m.bdd
	level := k.level(e)
	// we use satc to memoize the value of satcount for each (regular) node
	res, ok := satc[e.ID]
	if !ok {
		hi, lo := k.children(Edge{ID: e.ID})
		res = big.NewInt(0)
		two := big.NewInt(0)
		two.SetBit(two, level-1-k.level(lo), 1)
		res.Add(res, two.Mul(two, m.satcount(lo, satc)))
		two = big.NewInt(0)
		two.SetBit(two, level-1-k.level(hi), 1)
		res.Add(res, two.Mul(two, m.satcount(hi, satc)))
		satc[e.ID] = res
	}
	if e.Pol == Neg {
		all := big.NewInt(0)
		all.SetBit(all, level, 1)
		return all.Sub(all, res)
	}
	return res
}

// AllSat iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length NumSupports to f
// where the entry at index i is for the variable at level i+1, and is either 0
// if the variable is false, 1 if it is true, and -1 if it is a don't care. We
// stop and return an error if f returns an error at some point.
//
// The slice is reused between calls to f, so it should be copied if needed.
func (n BDD) AllSat(f func([]int) error) error {
	e := n.edge()
	prof := make([]int, n.m.nin)
	for k := range prof {
		prof[k] = -1
	}
	return n.m.allsat(e, prof, f)
}

func (m *Manager) allsat(e Edge, prof []int, f func([]int) error) error {
	if e == edgeOne {
		return f(prof)
	}
	if e == edgeZero {
		return nil
	}
	k := &m.bdd
	level := k.level(e)
	t, l := k.cofactors(e, level)
	for _, c := range []struct {
		child Edge
		value int
	}{{l, 0}, {t, 1}} {
		if c.child == edgeZero {
			continue
		}
		prof[level-1] = c.value
		for v := level - 1; v > k.level(c.child); v-- {
			prof[v-1] = -1
		}
		if err := m.allsat(c.child, prof, f); err != nil {
			return err
		}
	}
	prof[level-1] = -1
	return nil
}

// Cube returns a textual description of one satisfying assignment of n, with
// literals listed from the lowest level, such as "(1) !(3) ". The result is
// false if n is the constant false.
func (n BDD) Cube() (string, bool) {
	str := ""
	ok := n.m.cube(n.edge(), &str)
	return str, ok
}

func (m *Manager) cube(e Edge, str *string) bool {
	if e.IsTerminal() {
		return e == edgeOne
	}
	k := &m.bdd
	level := k.level(e)
	t, f := k.cofactors(e, level)
	if m.cube(t, str) {
		*str += fmt.Sprintf("(%d) ", level)
		return true
	}
	if m.cube(f, str) {
		*str += fmt.Sprintf("!(%d) ", level)
		return true
	}
	return false
}
