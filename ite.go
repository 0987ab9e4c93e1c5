// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

// Ite (short for if-then-else operator) computes the BDD for the expression
// [(f & g) | (!f & h)] more efficiently than doing the three operations
// separately. It is the basic operation used to implement all the Boolean
// connectives on BDD.
func (m *Manager) Ite(f, g, h BDD) BDD {
	return m.bddnode(m.ite(m.bedge(f), m.bedge(g), m.bedge(h)))
}

func (m *Manager) ite(f, g, h Edge) Edge {
	neg := m.standardize(&f, &g, &h)
	if res, ok := iteTerminal(f, g, h); ok {
		return res.negIf(neg)
	}
	k := &m.bdd
	if res, ok := k.read(opIte, f, g, h); ok {
		return res.negIf(neg)
	}
	v := max(k.level(f), k.level(g), k.level(h))
	f1, f0 := k.cofactors(f, v)
	g1, g0 := k.cofactors(g, v)
	h1, h0 := k.cofactors(h, v)
	t := m.ite(f1, g1, h1)
	e := m.ite(f0, g0, h0)
	res := k.bddmk(t, e, v)
	k.write(opIte, f, g, h, res)
	return res.negIf(neg)
}

// standardize rewrites the triple (f, g, h) into an equivalent one so that
// calls that compute the same function share the same cache entry. It returns
// true if the result of ite(f, g, h) must be complemented. After the call, f
// and g are regular (positive) edges.
func (m *Manager) standardize(f, g, h *Edge) bool {
	k := &m.bdd
	// identical or complemented arguments
	if *f == *g {
		*g = edgeOne
	} else if *f == g.Not() {
		*g = edgeZero
	}
	if *f == *h {
		*h = edgeZero
	} else if *f == h.Not() {
		*h = edgeOne
	}
	// symmetric arguments, we put the node with the highest order first
	switch {
	case *g == edgeOne:
		// ite(f, 1, h) == ite(h, 1, f)
		if k.less(*f, *h) {
			*f, *h = *h, *f
		}
	case *h == edgeZero:
		// ite(f, g, 0) == ite(g, f, 0)
		if k.less(*f, *g) {
			*f, *g = *g, *f
		}
	case *h == edgeOne:
		// ite(f, g, 1) == ite(!g, !f, 1)
		if k.less(*f, *g) {
			*f, *g = g.Not(), f.Not()
		}
	case *g == edgeZero:
		// ite(f, 0, h) == ite(!h, 0, !f)
		if k.less(*f, *h) {
			*f, *h = h.Not(), f.Not()
		}
	case *g == h.Not():
		// ite(f, g, !g) == ite(g, f, !f)
		if k.less(*f, *g) {
			*f, *g, *h = *g, *f, f.Not()
		}
	}
	// complemented edges: ite(!f, g, h) == ite(f, h, g) and
	// ite(f, !g, h) == !ite(f, g, !h)
	if f.Pol == Neg {
		*f = f.Not()
		*g, *h = *h, *g
	}
	if g.Pol == Neg {
		*g = g.Not()
		*h = h.Not()
		return true
	}
	return false
}

func iteTerminal(f, g, h Edge) (Edge, bool) {
	switch {
	case g == h:
		return g, true
	case f == edgeOne:
		return g, true
	case f == edgeZero:
		return h, true
	case g == edgeOne && h == edgeZero:
		return f, true
	case g == edgeZero && h == edgeOne:
		return f.Not(), true
	}
	return Edge{}, false
}

// less is the total order (level, id, polarity) used to break symmetries.
func (k *kernel) less(a, b Edge) bool {
	la, lb := k.level(a), k.level(b)
	if la != lb {
		return la < lb
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Pol < b.Pol
}

// cofactors returns the positive and negative cofactors of the BDD e with
// respect to the variable at level v. The polarity of e is propagated to the
// children.
func (k *kernel) cofactors(e Edge, v int) (Edge, Edge) {
	if k.level(e) < v {
		return e, e
	}
	hi, lo := k.children(e)
	if e.Pol == Neg {
		return hi.Not(), lo.Not()
	}
	return hi, lo
}

// bddmk returns the BDD (v ? t : e). The then edge of a node is always regular,
// so we move the complement bubble to the result when needed.
func (k *kernel) bddmk(t, e Edge, v int) Edge {
	if t == e {
		return t
	}
	if t.Pol == Neg {
		return k.uniquify(t.Not(), e.Not(), v).Not()
	}
	return k.uniquify(t, e, v)
}
