// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteIdentities(t *testing.T) {
	m := newTestManager(4)
	r := rand.New(rand.NewSource(1))
	nodes := []BDD{m.One(), m.Zero()}
	for i := 0; i < 20; i++ {
		nodes = append(nodes, randExpr(r, 4, 4).bdd(m))
	}
	for _, f := range nodes {
		for _, g := range nodes {
			assert.Equal(t, g, m.Ite(m.One(), g, f), "ite(1, g, h) == g")
			assert.Equal(t, g, m.Ite(m.Zero(), f, g), "ite(0, g, h) == h")
			assert.Equal(t, g, m.Ite(f, g, g), "ite(f, g, g) == g")
		}
		assert.Equal(t, f, m.Ite(f, m.One(), m.Zero()), "ite(f, 1, 0) == f")
		assert.Equal(t, f.Not(), m.Ite(f, m.Zero(), m.One()), "ite(f, 0, 1) == !f")
	}
}

func TestIteTruthTable(t *testing.T) {
	const nin = 6
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		f := randExpr(r, nin, 5)
		g := randExpr(r, nin, 5)
		h := randExpr(r, nin, 5)
		actual := m.Ite(f.bdd(m), g.bdd(m), h.bdd(m))
		expected := []int{}
		assignments(nin, func(vals []bool, _ string) {
			if f.eval(vals) {
				expected = append(expected, btoi(g.eval(vals)))
			} else {
				expected = append(expected, btoi(h.eval(vals)))
			}
		})
		require.Equal(t, expected, table(actual), "round %d", i)
	}
}

func TestApply(t *testing.T) {
	const nin = 5
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(7))
	for op := OPand; op <= OPinvimp; op++ {
		t.Run(op.String(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				f := randExpr(r, nin, 4)
				g := randExpr(r, nin, 4)
				actual := m.Apply(f.bdd(m), g.bdd(m), op)
				expected := []int{}
				assignments(nin, func(vals []bool, _ string) {
					expected = append(expected, btoi(op.Eval(f.eval(vals), g.eval(vals))))
				})
				require.Equal(t, expected, table(actual))
			}
		})
	}
}

// TestCanonicity checks that two expressions with the same truth table give
// the same node, and that different truth tables give different nodes.
func TestCanonicity(t *testing.T) {
	const nin = 3
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(3))
	seen := make(map[string]BDD)
	for i := 0; i < 500; i++ {
		x := randExpr(r, nin, 4)
		n := x.bdd(m)
		key := fmt.Sprint(etable(x, nin))
		if old, ok := seen[key]; ok {
			require.Equal(t, old, n, "same function %s", key)
			continue
		}
		for k, other := range seen {
			require.NotEqual(t, other, n, "%s and %s", k, key)
		}
		seen[key] = n
	}
}

func TestDerived(t *testing.T) {
	m := newTestManager(3)
	a, b := m.Support(1), m.Support(2)
	assert.Equal(t, a.And(b).Not(), a.Nand(b))
	assert.Equal(t, a.Or(b).Not(), a.Nor(b))
	assert.Equal(t, a.Xor(b).Not(), a.Xnor(b))
	assert.Equal(t, a.Not().Or(b), a.Imp(b))
	assert.Equal(t, m.Apply(a, b, OPdiff), a.And(b.Not()))
	assert.Equal(t, m.Apply(a, b, OPless), a.Not().And(b))
	assert.Equal(t, m.Apply(a, b, OPinvimp), b.Imp(a))
	assert.True(t, a.Xor(b).EqualNot(a.Xnor(b)))
	assert.True(t, m.And(a, b, m.Support(3)).Equal(a.And(b.And(m.Support(3)))))
	assert.Equal(t, []int{3, 2, 1}, m.Scanset(m.Makeset([]int{1, 2, 3})))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestNotIsConstantTime(t *testing.T) {
	m := newTestManager(4)
	f := m.Support(1).And(m.Support(3)).Or(m.Support(4))
	before := m.Stats().BDD.Nodes
	g := f.Not().Not()
	assert.Equal(t, f, g)
	assert.Equal(t, before, m.Stats().BDD.Nodes)
	assert.Equal(t, f.Edge().ID, f.Not().Edge().ID)
}
