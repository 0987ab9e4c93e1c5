// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"math/rand"
	"strings"
)

// expr is a random Boolean expression used as a reference when testing
// operations on BDD and FDD.
type expr struct {
	op    string // "var", "not", "and", "or", "xor", "one", "zero"
	level int
	a, b  *expr
}

func randExpr(r *rand.Rand, nin, depth int) *expr {
	if depth == 0 || r.Intn(4) == 0 {
		switch r.Intn(10) {
		case 0:
			return &expr{op: "one"}
		case 1:
			return &expr{op: "zero"}
		}
		return &expr{op: "var", level: 1 + r.Intn(nin)}
	}
	switch r.Intn(4) {
	case 0:
		return &expr{op: "not", a: randExpr(r, nin, depth-1)}
	case 1:
		return &expr{op: "and", a: randExpr(r, nin, depth-1), b: randExpr(r, nin, depth-1)}
	case 2:
		return &expr{op: "or", a: randExpr(r, nin, depth-1), b: randExpr(r, nin, depth-1)}
	}
	return &expr{op: "xor", a: randExpr(r, nin, depth-1), b: randExpr(r, nin, depth-1)}
}

// eval returns the value of x where vals[i] is the value of the variable at
// level i+1.
func (x *expr) eval(vals []bool) bool {
	switch x.op {
	case "one":
		return true
	case "zero":
		return false
	case "var":
		return vals[x.level-1]
	case "not":
		return !x.a.eval(vals)
	case "and":
		return x.a.eval(vals) && x.b.eval(vals)
	case "or":
		return x.a.eval(vals) || x.b.eval(vals)
	}
	return x.a.eval(vals) != x.b.eval(vals)
}

func (x *expr) bdd(m *Manager) BDD {
	switch x.op {
	case "one":
		return m.One()
	case "zero":
		return m.Zero()
	case "var":
		return m.Support(x.level)
	case "not":
		return x.a.bdd(m).Not()
	case "and":
		return x.a.bdd(m).And(x.b.bdd(m))
	case "or":
		return x.a.bdd(m).Or(x.b.bdd(m))
	}
	return x.a.bdd(m).Xor(x.b.bdd(m))
}

func (x *expr) fdd(m *Manager) FDD {
	switch x.op {
	case "one":
		return m.FddOne()
	case "zero":
		return m.FddZero()
	case "var":
		return m.FddSupport(x.level)
	case "not":
		return x.a.fdd(m).Not()
	case "and":
		return x.a.fdd(m).And(x.b.fdd(m))
	case "or":
		return x.a.fdd(m).Or(x.b.fdd(m))
	}
	return x.a.fdd(m).Xor(x.b.fdd(m))
}

// assignments calls f on every assignment of nin variables, together with the
// matching pattern for EvalCube.
func assignments(nin int, f func(vals []bool, pattern string)) {
	vals := make([]bool, nin)
	for k := 0; k < 1<<nin; k++ {
		var sb strings.Builder
		for i := range vals {
			vals[i] = k&(1<<i) != 0
			if vals[i] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		f(vals, sb.String())
	}
}

// table returns the truth table of n, computed with EvalCube.
func table(n BDD) []int {
	res := []int{}
	assignments(n.Manager().NumSupports(), func(_ []bool, pattern string) {
		v, err := n.EvalCube(pattern)
		if err != nil {
			panic(err)
		}
		res = append(res, v)
	})
	return res
}

// ftable returns the truth table of n, computed with EvalCube.
func ftable(n FDD) []int {
	res := []int{}
	assignments(n.Manager().NumSupports(), func(_ []bool, pattern string) {
		v, err := n.EvalCube(pattern)
		if err != nil {
			panic(err)
		}
		res = append(res, v)
	})
	return res
}

// etable returns the truth table of x over nin variables.
func etable(x *expr, nin int) []int {
	res := []int{}
	assignments(nin, func(vals []bool, _ string) {
		res = append(res, btoi(x.eval(vals)))
	})
	return res
}

// panicErr returns the error raised by f, or nil if f does not panic.
func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}

func newTestManager(nin int, options ...func(*configs)) *Manager {
	m, err := New(nin, options...)
	if err != nil {
		panic(err)
	}
	return m
}
