// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

// Bdd2Fdd returns the FDD representing the same function than n.
func (m *Manager) Bdd2Fdd(n BDD) FDD {
	return m.fddnode(m.bdd2fdd(m.bedge(n), make(map[Edge]Edge)))
}

func (m *Manager) bdd2fdd(e Edge, memo map[Edge]Edge) Edge {
	if e.IsTerminal() {
		return e
	}
	if res, ok := memo[e]; ok {
		return res
	}
	level := m.bdd.level(e)
	t, f := m.bdd.cofactors(e, level)
	f1 := m.bdd2fdd(t, memo)
	f0 := m.bdd2fdd(f, memo)
	res := m.fdd.fddmk(m.fddXor(f1, f0), f0, level)
	memo[e] = res
	return res
}

// Fdd2Bdd returns the BDD representing the same function than n.
func (m *Manager) Fdd2Bdd(n FDD) BDD {
	return m.bddnode(m.fdd2bdd(m.fedge(n), make(map[Edge]Edge)))
}

func (m *Manager) fdd2bdd(e Edge, memo map[Edge]Edge) Edge {
	if e.IsTerminal() {
		return e
	}
	if res, ok := memo[e]; ok {
		return res
	}
	level := m.fdd.level(e)
	f1, f0 := m.fddShannon(e, level)
	res := m.ite(m.supports[level], m.fdd2bdd(f1, memo), m.fdd2bdd(f0, memo))
	memo[e] = res
	return res
}
