// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import "strconv"

// registry binds nodes to integer identifiers (typically gate ids in a
// netlist) and to names. Bound nodes are retained.
type registry struct {
	bddByID   map[int]Edge
	bddByName map[string]Edge
	fddByID   map[int]Edge
	fddByName map[string]Edge
}

func (r *registry) reset() {
	r.bddByID = make(map[int]Edge)
	r.bddByName = make(map[string]Edge)
	r.fddByID = make(map[int]Edge)
	r.fddByName = make(map[string]Edge)
}

// AddBDD binds n to id. It returns false, and does nothing, if n is null or if
// id is already bound.
func (m *Manager) AddBDD(id int, n BDD) bool {
	if n.IsNull() {
		return false
	}
	e := m.bedge(n)
	if _, ok := m.bddByID[id]; ok {
		return false
	}
	m.bddByID[id] = e
	m.bdd.incref(e.ID)
	return true
}

// AddBDDName binds n to name. It returns false, and does nothing, if n is null
// or if name is already bound.
func (m *Manager) AddBDDName(name string, n BDD) bool {
	if n.IsNull() {
		return false
	}
	e := m.bedge(n)
	if _, ok := m.bddByName[name]; ok {
		return false
	}
	m.bddByName[name] = e
	m.bdd.incref(e.ID)
	return true
}

// ForceAddBDDName binds n to name, replacing any previous binding. It returns
// false if n is null.
func (m *Manager) ForceAddBDDName(name string, n BDD) bool {
	if n.IsNull() {
		return false
	}
	e := m.bedge(n)
	if old, ok := m.bddByName[name]; ok {
		m.bdd.decref(old.ID)
	}
	m.bddByName[name] = e
	m.bdd.incref(e.ID)
	return true
}

// BDDByID returns the node bound to id, or the null node.
func (m *Manager) BDDByID(id int) BDD {
	if e, ok := m.bddByID[id]; ok {
		return m.bddnode(e)
	}
	return BDD{}
}

// BDDByName returns the node bound to name, or the null node.
func (m *Manager) BDDByName(name string) BDD {
	if e, ok := m.bddByName[name]; ok {
		return m.bddnode(e)
	}
	return BDD{}
}

// LookupBDD returns the node bound to key. A key made only of decimal digits
// is an identifier, anything else is a name. We return the null node if there
// is no binding.
func (m *Manager) LookupBDD(key string) BDD {
	if id, ok := isID(key); ok {
		return m.BDDByID(id)
	}
	return m.BDDByName(key)
}

// AddFDD binds n to id. It returns false, and does nothing, if n is null or if
// id is already bound.
func (m *Manager) AddFDD(id int, n FDD) bool {
	if n.IsNull() {
		return false
	}
	e := m.fedge(n)
	if _, ok := m.fddByID[id]; ok {
		return false
	}
	m.fddByID[id] = e
	m.fdd.incref(e.ID)
	return true
}

// AddFDDName binds n to name. It returns false if n is null or if name is
// already bound.
func (m *Manager) AddFDDName(name string, n FDD) bool {
	if n.IsNull() {
		return false
	}
	e := m.fedge(n)
	if _, ok := m.fddByName[name]; ok {
		return false
	}
	m.fddByName[name] = e
	m.fdd.incref(e.ID)
	return true
}

// ForceAddFDDName binds n to name, replacing any previous binding.
func (m *Manager) ForceAddFDDName(name string, n FDD) bool {
	if n.IsNull() {
		return false
	}
	e := m.fedge(n)
	if old, ok := m.fddByName[name]; ok {
		m.fdd.decref(old.ID)
	}
	m.fddByName[name] = e
	m.fdd.incref(e.ID)
	return true
}

// FDDByID returns the node bound to id, or the null node.
func (m *Manager) FDDByID(id int) FDD {
	if e, ok := m.fddByID[id]; ok {
		return m.fddnode(e)
	}
	return FDD{}
}

// FDDByName returns the node bound to name, or the null node.
func (m *Manager) FDDByName(name string) FDD {
	if e, ok := m.fddByName[name]; ok {
		return m.fddnode(e)
	}
	return FDD{}
}

// LookupFDD returns the node bound to key, see LookupBDD.
func (m *Manager) LookupFDD(key string) FDD {
	if id, ok := isID(key); ok {
		return m.FDDByID(id)
	}
	return m.FDDByName(key)
}

func isID(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(key)
	return id, err == nil
}
