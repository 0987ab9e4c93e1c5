// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

// And returns the logical 'and' of a sequence of nodes.
func (m *Manager) And(n ...BDD) BDD {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return m.One()
	}
	return m.Apply(n[0], m.And(n[1:]...), OPand)
}

// Or returns the logical 'or' of a sequence of BDDs.
func (m *Manager) Or(n ...BDD) BDD {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return m.Zero()
	}
	return m.Apply(n[0], m.Or(n[1:]...), OPor)
}

// Not returns the negation of n.
func (m *Manager) Not(n BDD) BDD {
	return m.bddnode(m.bedge(n).Not())
}

// Imp returns the logical 'implication' between two BDDs.
func (m *Manager) Imp(n1, n2 BDD) BDD {
	return m.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two BDDs.
func (m *Manager) Equiv(n1, n2 BDD) BDD {
	return m.Apply(n1, n2, OPbiimp)
}

// Makeset returns a node corresponding to the conjunction (the cube) of all
// the supports with a level in varset, in their positive form. It is such that
// Scanset(Makeset(a)) == a, modulo ordering.
func (m *Manager) Makeset(varset []int) BDD {
	res := m.One()
	for _, level := range varset {
		res = res.And(m.Support(level))
	}
	return res
}

// Scanset returns the levels found when following the then branch of node n,
// from the top level down. This is the dual of function Makeset.
func (m *Manager) Scanset(n BDD) []int {
	e := m.bedge(n)
	res := []int{}
	for !e.IsTerminal() {
		level := m.bdd.level(e)
		res = append(res, level)
		e, _ = m.bdd.cofactors(e, level)
	}
	return res
}
