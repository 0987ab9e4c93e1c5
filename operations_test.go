// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

// TestOperations implements the same tests than the bddtest program in the
// Buddy distribution. It uses function AllSat for checking that all assignments
// are detected.

func TestOperations(t *testing.T) {
	const varnum = 4
	bdd := newTestManager(varnum)

	test1_check := func(x BDD) error {
		allsatBDD := x
		allsatSumBDD := bdd.Zero()
		// Calculate whole set of asignments and remove all assignments
		// from original set
		err := x.AllSat(func(varset []int) error {
			x := bdd.One()
			for k, v := range varset {
				switch v {
				case 0:
					x = x.And(bdd.Support(k + 1).Not())
				case 1:
					x = x.And(bdd.Support(k + 1))
				}
			}
			t.Logf("Checking bdd with %-4s assignments\n", x.SatCount())
			// Sum up all assignments
			allsatSumBDD = allsatSumBDD.Or(x)
			// Remove assignment from initial set
			allsatBDD = bdd.Apply(allsatBDD, x, OPdiff)
			return nil
		})
		if err != nil {
			return err
		}

		// Now the summed set should be equal to the original set and the
		// subtracted set should be empty
		if !allsatSumBDD.Equal(x) {
			return fmt.Errorf("AllSat sum is not the initial BDD")
		}

		if !allsatBDD.Equal(bdd.Zero()) {
			return fmt.Errorf("AllSat is not False")
		}
		return nil
	}

	a := bdd.Support(1)
	b := bdd.Support(2)
	c := bdd.Support(3)
	d := bdd.Support(4)
	na := a.Not()
	nb := b.Not()
	nc := c.Not()
	nd := d.Not()

	require.NoError(t, test1_check(bdd.One()))

	require.NoError(t, test1_check(bdd.Zero()))

	// a & b | !a & !b
	require.NoError(t, test1_check(bdd.Or(a.And(b), na.And(nb))))

	// a & b | c & d
	require.NoError(t, test1_check(bdd.Or(a.And(b), c.And(d))))

	// a & !b | a & !d | a & b & !c
	require.NoError(t, test1_check(bdd.Or(a.And(nb), a.And(nd), bdd.And(a, b, nc))))

	for i := 1; i <= varnum; i++ {
		require.NoError(t, test1_check(bdd.Support(i)))
		require.NoError(t, test1_check(bdd.Support(i).Not()))
	}

	set := bdd.One()
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 50; i++ {
		v := 1 + r.Intn(varnum)
		s := r.Intn(2)
		o := r.Intn(2)

		if o == 0 {
			if s == 0 {
				set = set.And(bdd.Support(v))
			} else {
				set = set.And(bdd.Support(v).Not())
			}
		} else {
			if s == 0 {
				set = set.Or(bdd.Support(v))
			} else {
				set = set.Or(bdd.Support(v).Not())
			}
		}

		require.NoError(t, test1_check(set))
	}
}

func TestAllSatStops(t *testing.T) {
	m := newTestManager(3)
	stop := fmt.Errorf("stop")
	count := 0
	err := m.Support(1).Or(m.Support(2)).AllSat(func([]int) error {
		count++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}

func TestCofactor(t *testing.T) {
	const nin = 6
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 100; i++ {
		x := randExpr(r, nin, 5)
		f := x.bdd(m)
		for level := 1; level <= nin; level++ {
			pos, neg := f.PosCofactor(level), f.NegCofactor(level)
			// Shannon expansion
			require.Equal(t, f, m.Ite(m.Support(level), pos, neg))
			// cofactors do not depend on the variable
			require.Equal(t, pos, pos.PosCofactor(level))
			require.Equal(t, pos, pos.NegCofactor(level))
			require.Equal(t, pos.Or(neg), f.Exist(level))
		}
	}
}

func TestExist(t *testing.T) {
	m := newTestManager(4)
	a, b, c := m.Support(1), m.Support(2), m.Support(3)
	f := a.And(b).Or(c.Not())
	assert.Equal(t, b.Or(c.Not()), f.Exist(1))
	assert.Equal(t, a.Or(c.Not()), f.Exist(2))
	assert.Equal(t, m.One(), f.Exist(3))
	assert.Equal(t, f, f.Exist(4))
	assert.Equal(t, m.One(), m.Exist(f, 1, 2))
}

func TestRestrict(t *testing.T) {
	const nin = 5
	m := newTestManager(nin)
	r := rand.New(rand.NewSource(29))
	for i := 0; i < 100; i++ {
		f := randExpr(r, nin, 5).bdd(m)
		c := randExpr(r, nin, 4).bdd(m)
		if c.IsZero() {
			_, err := f.Restrict(c)
			require.ErrorIs(t, err, ErrZeroCare)
			continue
		}
		res, err := f.Restrict(c)
		require.NoError(t, err)
		// res and f agree on the care set
		require.Equal(t, f.And(c), res.And(c))
	}
	a, b := m.Support(1), m.Support(2)
	res, err := a.And(b).Restrict(a)
	require.NoError(t, err)
	assert.Equal(t, b, res)
}

func TestSatCount(t *testing.T) {
	const nin = 6
	m := newTestManager(nin)
	assert.Equal(t, "64", m.One().SatCount().String())
	assert.Equal(t, "0", m.Zero().SatCount().String())
	for i := 1; i <= nin; i++ {
		assert.Equal(t, "32", m.Support(i).SatCount().String())
		assert.Equal(t, "32", m.Support(i).Not().SatCount().String())
	}
	r := rand.New(rand.NewSource(31))
	for i := 0; i < 50; i++ {
		x := randExpr(r, nin, 5)
		count := int64(0)
		for _, v := range etable(x, nin) {
			count += int64(v)
		}
		require.Zero(t, big.NewInt(count).Cmp(x.bdd(m).SatCount()))
	}
}

func TestCube(t *testing.T) {
	m := newTestManager(3)
	f := m.Support(1).And(m.Support(3).Not())
	str, ok := f.Cube()
	assert.True(t, ok)
	assert.Equal(t, "(1) !(3) ", str)
	_, ok = m.Zero().Cube()
	assert.False(t, ok)
}
