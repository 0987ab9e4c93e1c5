// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimes(t *testing.T) {
	var primeTests = []struct {
		src, gte, lte int
	}{
		{7, 7, 7},
		{8, 11, 7},
		{100, 101, 97},
		{8009, 8009, 8009},
	}
	for _, tt := range primeTests {
		assert.Equal(t, tt.gte, primeGte(tt.src), "primeGte(%d)", tt.src)
		assert.Equal(t, tt.lte, primeLte(tt.src), "primeLte(%d)", tt.src)
	}
}

// TestSmallTables uses tiny unique tables and caches so that we trigger many
// rehash and cache overwrites.
func TestSmallTables(t *testing.T) {
	const nin = 8
	small := newTestManager(nin, Buckets(7), Cachesize(7))
	large := newTestManager(nin)
	r := rand.New(rand.NewSource(41))
	for i := 0; i < 100; i++ {
		x := randExpr(r, nin, 6)
		a, b := x.bdd(small), x.bdd(large)
		require.Equal(t, table(b), table(a))
		require.Equal(t, a.NodeCount(), b.NodeCount())
		require.Equal(t, x.fdd(large).NodeCount(), x.fdd(small).NodeCount())
	}
	s := small.Stats()
	assert.Greater(t, s.BDD.Rehash, 0)
	assert.Greater(t, s.FDD.Rehash, 0)
	assert.Equal(t, 7, s.BDD.CacheSize)
	assert.LessOrEqual(t, s.BDD.Nodes, s.BDD.Buckets)
	assert.Equal(t, s.BDD.UniqueAccess, s.BDD.UniqueHit+s.BDD.UniqueMiss)
}

func TestUniquify(t *testing.T) {
	m := newTestManager(3)
	k := &m.bdd
	x1 := m.supports[1]
	a := k.uniquify(x1, edgeZero, 2)
	b := k.uniquify(x1, edgeZero, 2)
	assert.Equal(t, a, b)
	assert.Equal(t, Pos, a.Pol)
	c := k.uniquify(x1, edgeOne, 2)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, m.supports[2], a)
	// children references are counted, supports are sticky
	assert.Equal(t, int(_MAXREFCOUNT), int(k.nodes[x1.ID].ref))
	d := k.uniquify(a, edgeZero, 3)
	assert.Equal(t, 1, int(k.nodes[a.ID].ref))
	assert.Equal(t, 0, int(k.nodes[d.ID].ref))
	assert.Equal(t, 1, k.nodecount(x1))
	assert.Equal(t, 3, k.nodecount(a, c))
	assert.Equal(t, 4, k.nodecount(d, c))
}

func TestCache(t *testing.T) {
	var c cache
	c.cacheinit(10)
	assert.Len(t, c.table, 7)
	f, g := Edge{ID: 5}, Edge{ID: 8, Pol: Neg}
	_, ok := c.read(opIte, f, g, edgeOne)
	assert.False(t, ok)
	c.write(opIte, f, g, edgeOne, edgeZero)
	res, ok := c.read(opIte, f, g, edgeOne)
	assert.True(t, ok)
	assert.Equal(t, edgeZero, res)
	_, ok = c.read(opFddOr, f, g, edgeOne)
	assert.False(t, ok, "operations do not share entries")
	assert.Equal(t, 1, c.hit)
	assert.Equal(t, 2, c.miss)
	c.cachereset()
	_, ok = c.read(opIte, f, g, edgeOne)
	assert.False(t, ok)
}

// TestCacheSpread checks that binary operations, which always use the same
// third operand, can reach (almost) every slot of the cache.
func TestCacheSpread(t *testing.T) {
	var c cache
	c.cacheinit(4096)
	size := len(c.table)
	used := make(map[int]bool)
	for a := uint32(0); a < 200; a++ {
		for b := uint32(0); b < 200; b++ {
			used[c.slot(opIte, Edge{ID: NodeID(a + 2)}, Edge{ID: NodeID(b + 2)}, edgeZero)] = true
		}
	}
	assert.Greater(t, len(used), size*9/10, "slots used: %d of %d", len(used), size)
}
