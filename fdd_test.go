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

func TestFddTruthTable(t *testing.T) {
	const nin = 5
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		x := randExpr(r, nin, 5)
		require.Equal(t, etable(x, nin), ftable(x.fdd(m)), "round %d", i)
	}
}

func TestFddCanonicity(t *testing.T) {
	const nin = 3
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(5))
	seen := make(map[string]FDD)
	for i := 0; i < 500; i++ {
		x := randExpr(r, nin, 4)
		n := x.fdd(m)
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

// TestFddShape checks that no interior edge is complemented and that no node
// has a null difference.
func TestFddShape(t *testing.T) {
	const nin = 6
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		randExpr(r, nin, 6).fdd(m)
	}
	for id := 2; id < len(m.fdd.nodes); id++ {
		n := m.fdd.nodes[id]
		require.NotEqual(t, edgeZero, n.hi)
		if !n.hi.IsTerminal() {
			require.Equal(t, Pos, n.hi.Pol)
		}
		if !n.lo.IsTerminal() {
			require.Equal(t, Pos, n.lo.Pol)
		}
		require.Less(t, int(m.fdd.level(n.hi)), int(n.level))
		require.Less(t, int(m.fdd.level(n.lo)), int(n.level))
	}
}

func TestFddAlgebra(t *testing.T) {
	m := newTestManager(4)
	x1, x2 := m.FddSupport(1), m.FddSupport(2)
	assert.Equal(t, m.FddZero(), x1.Xor(x1))
	assert.Equal(t, x1.Not(), x1.Xor(m.FddOne()))
	assert.Equal(t, x1, x1.Not().Not())
	assert.Equal(t, x1.Or(x2), x2.Or(x1))
	assert.Equal(t, x1.And(x2), x1.Not().Or(x2.Not()).Not())
	// x1 | x2 == x1 ^ x2 ^ (x1 & x2)
	assert.Equal(t, x1.Or(x2), x1.Xor(x2).Xor(x1.And(x2)))
	// the support is (x, 1, 0) in both families
	assert.Equal(t, 2, x2.Level())
	assert.True(t, x2.Left().IsOne())
	assert.True(t, x2.Right().IsZero())
}

func TestFddCofactorExist(t *testing.T) {
	const nin = 5
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		x := randExpr(r, nin, 5)
		b, f := x.bdd(m), x.fdd(m)
		for level := 1; level <= nin; level++ {
			require.Equal(t, m.Bdd2Fdd(b.PosCofactor(level)), f.PosCofactor(level))
			require.Equal(t, m.Bdd2Fdd(b.NegCofactor(level)), f.NegCofactor(level))
			require.Equal(t, m.Bdd2Fdd(b.Exist(level)), f.Exist(level))
			require.Equal(t, f.PosCofactor(level).Or(f.NegCofactor(level)), f.Exist(level))
		}
	}
}

// TestSmoke is a small scenario over five supports that mixes both families.
func TestSmoke(t *testing.T) {
	m, err := New(5, Buckets(127), Cachesize(61))
	require.NoError(t, err)
	b := make([]BDD, 6)
	f := make([]FDD, 6)
	for i := 1; i <= 5; i++ {
		b[i] = m.Support(i)
		f[i] = m.FddSupport(i)
	}
	nf := b[1].And(b[2]).Not()
	g := b[3].Or(b[4])
	h := b[5].Not()
	i := nf.Xor(g)
	assert.Equal(t, 2, nf.Level())
	assert.True(t, nf.IsNegEdge())
	assert.Equal(t, 4, g.Level())
	assert.True(t, h.EqualNot(b[5]))

	// i == !(b1 & b2) ^ (b3 | b4), and i[b3 := 1] is evaluated by forcing the
	// third character of the pattern
	i3 := i.PosCofactor(3)
	assert.True(t, i3.Equal(nf.Not()))
	fi := m.Bdd2Fdd(i)
	assert.Equal(t, m.Bdd2Fdd(i3), fi.PosCofactor(3))
	assignments(5, func(vals []bool, pattern string) {
		want := !(vals[0] && vals[1]) != (vals[2] || vals[3])
		v, err := i.EvalCube(pattern)
		require.NoError(t, err)
		assert.Equal(t, btoi(want), v, "i on %s", pattern)
		v, err = fi.EvalCube(pattern)
		require.NoError(t, err)
		assert.Equal(t, btoi(want), v, "fdd of i on %s", pattern)

		forced := pattern[:2] + "1" + pattern[3:]
		v, err = i3.EvalCube(pattern)
		require.NoError(t, err)
		w, err := i.EvalCube(forced)
		require.NoError(t, err)
		assert.Equal(t, w, v, "i[b3 := 1] on %s", pattern)
	})

	j := f[1].Not().Or(f[2].Not())
	assert.Equal(t, m.Bdd2Fdd(nf), j)

	bk := b[1].Or(b[2]).Xor(b[4].And(b[5]))
	fk := f[1].Or(f[2]).Xor(f[4].And(f[5]))
	assert.Equal(t, m.Bdd2Fdd(bk), fk)
	l1 := bk.Exist(2)
	l2 := fk.PosCofactor(2).Or(fk.NegCofactor(2))
	assert.Equal(t, m.Bdd2Fdd(l1), l2)
	assert.Equal(t, l1, m.Fdd2Bdd(l2))
}
