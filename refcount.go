// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

// Reference counting is only used for bookkeeping: a node with a null count is
// never reclaimed before the next call to Init or Restart.

// Retain increases the reference count on node n and returns n so that calls
// can be easily chained together. The count of supports and constants is
// sticky and never changes.
func (n BDD) Retain() BDD {
	n.m.bdd.incref(n.edge().ID)
	return n
}

// Release decreases the reference count on node n and returns n so that calls
// can be easily chained together.
func (n BDD) Release() BDD {
	n.m.bdd.decref(n.edge().ID)
	return n
}

// RefCount returns the reference count of the top node of n. This count
// includes the references from other nodes in the table.
func (n BDD) RefCount() int {
	return int(n.m.bdd.nodes[n.edge().ID].ref)
}

// Retain increases the reference count on node n and returns n.
func (n FDD) Retain() FDD {
	n.m.fdd.incref(n.edge().ID)
	return n
}

// Release decreases the reference count on node n and returns n.
func (n FDD) Release() FDD {
	n.m.fdd.decref(n.edge().ID)
	return n
}

// RefCount returns the reference count of the top node of n.
func (n FDD) RefCount() int {
	return int(n.m.fdd.nodes[n.edge().ID].ref)
}
