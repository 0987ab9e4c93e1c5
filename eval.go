// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import "fmt"

// EvalCube returns the value (0 or 1) of n for the assignment described by
// pattern. The character at index i of pattern is the value of the variable
// at level i+1 and must be '0' or '1'. Only the characters up to the level of
// n are read. We return -1 and an error wrapping ErrBadPattern if the pattern
// is too short or contains an illegal character.
func (n BDD) EvalCube(pattern string) (int, error) {
	e := n.edge()
	k := &n.m.bdd
	v := k.level(e)
	if err := n.m.checkpattern(pattern, v); err != nil {
		return -1, err
	}
	for !e.IsTerminal() {
		l := k.level(e)
		t, f := k.cofactors(e, l)
		if pattern[l-1] == '1' {
			e = t
		} else {
			e = f
		}
	}
	return btoi(e == edgeOne), nil
}

// EvalCube returns the value (0 or 1) of n for the assignment described by
// pattern. See BDD.EvalCube for the format of the pattern.
func (n FDD) EvalCube(pattern string) (int, error) {
	e := n.edge()
	k := &n.m.fdd
	v := k.level(e)
	if err := n.m.checkpattern(pattern, v); err != nil {
		return -1, err
	}
	// the value of f = r ^ (x & d) is the xor of the value of the negative
	// cofactor and, when x is true, of the difference
	memo := make(map[NodeID]bool)
	var walk func(e Edge) bool
	walk = func(e Edge) bool {
		if e.IsTerminal() {
			return e == edgeOne
		}
		res, ok := memo[e.ID]
		if !ok {
			d, r := k.children(e)
			res = walk(r)
			if pattern[k.level(e)-1] == '1' {
				res = res != walk(d)
			}
			memo[e.ID] = res
		}
		return res != (e.Pol == Neg)
	}
	return btoi(walk(e)), nil
}

func (m *Manager) checkpattern(pattern string, v int) error {
	if len(pattern) < v {
		err := fmt.Errorf("%w: %q too short for level %d", ErrBadPattern, pattern, v)
		m.log.Error("illegal pattern", "err", err)
		return err
	}
	for i := v - 1; i >= 0; i-- {
		if c := pattern[i]; c != '0' && c != '1' {
			err := fmt.Errorf("%w: illegal character %q at index %d", ErrBadPattern, c, i)
			m.log.Error("illegal pattern", "err", err)
			return err
		}
	}
	return nil
}
