// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import "github.com/charmbracelet/log"

// family selects the decomposition used by a kernel.
type family uint8

const (
	shannon family = iota // BDD, with complemented edges
	davio                 // FDD, positive Davio expansion
)

// kernel stores the node table, the unique table, and the computed cache for
// one family of diagrams. A Manager owns two kernels.
type kernel struct {
	name    string
	family  family
	nodes   []node   // index 0 is unused, index 1 is the terminal
	buckets []uint32 // heads of the hash chains, 0 if empty
	cache            // computed table
	hbuff   [10]byte // buffer used to hash node keys
	log     *log.Logger
	kstats
}

// kstats stores status information about the unique table of a kernel.
type kstats struct {
	uniqueAccess int // accesses to the unique node table
	uniqueChain  int // iterations through the chains in the unique node table
	uniqueHit    int // entries actually found in the unique node table
	uniqueMiss   int // entries not found in the unique node table
	rehash       int // number of times the unique table grew
}

func (k *kernel) init(buckets, cachesize int) {
	if buckets < 7 {
		buckets = 7
	}
	if cachesize < 7 {
		cachesize = 7
	}
	k.nodes = make([]node, 2, buckets+2)
	k.nodes[terminalID].ref = _MAXREFCOUNT
	k.buckets = make([]uint32, primeGte(buckets))
	k.cacheinit(cachesize)
	k.kstats = kstats{}
}

func (k *kernel) level(e Edge) int {
	return int(k.nodes[e.ID].level)
}

// children returns the raw children of the node pointed by e, without taking
// the polarity of e into account.
func (k *kernel) children(e Edge) (hi, lo Edge) {
	n := &k.nodes[e.ID]
	return n.hi, n.lo
}

// size returns the number of interior nodes in the table.
func (k *kernel) size() int {
	return len(k.nodes) - 2
}

// uniquify returns the (positive) edge to the canonical node (level, hi, lo),
// creating it if needed. It never checks for redundant nodes; this is the job
// of the caller since the reduction rule depends on the family.
func (k *kernel) uniquify(hi, lo Edge, level int) Edge {
	if _DEBUG {
		k.checknode(hi, lo, level)
	}
	k.uniqueAccess++
	hash := nodehash(k.hbuff[:], level, hi, lo, len(k.buckets))
	for id := k.buckets[hash]; id != 0; id = k.nodes[id].next {
		n := &k.nodes[id]
		if int(n.level) == level && n.hi == hi && n.lo == lo {
			k.uniqueHit++
			return Edge{ID: NodeID(id)}
		}
		k.uniqueChain++
	}
	k.uniqueMiss++
	id := uint32(len(k.nodes))
	k.nodes = append(k.nodes, node{
		hi:    hi,
		lo:    lo,
		level: uint16(level),
		next:  k.buckets[hash],
	})
	k.buckets[hash] = id
	k.incref(hi.ID)
	k.incref(lo.ID)
	if len(k.nodes)-2 > len(k.buckets) {
		k.rehashTable()
	}
	return Edge{ID: NodeID(id)}
}

// rehashTable grows the array of buckets to the next prime larger than twice
// its size and rebuilds the hash chains. Nodes never move.
func (k *kernel) rehashTable() {
	oldsize := len(k.buckets)
	k.buckets = make([]uint32, primeGte(2*oldsize))
	for id := 2; id < len(k.nodes); id++ {
		n := &k.nodes[id]
		hash := nodehash(k.hbuff[:], int(n.level), n.hi, n.lo, len(k.buckets))
		n.next = k.buckets[hash]
		k.buckets[hash] = uint32(id)
	}
	k.rehash++
	k.log.Debug("resize unique table", "kernel", k.name, "from", oldsize, "to", len(k.buckets), "nodes", k.size())
}

func (k *kernel) incref(id NodeID) {
	if id > terminalID && k.nodes[id].ref < _MAXREFCOUNT {
		k.nodes[id].ref++
	}
}

func (k *kernel) decref(id NodeID) {
	if id > terminalID && k.nodes[id].ref > 0 && k.nodes[id].ref < _MAXREFCOUNT {
		k.nodes[id].ref--
	}
}

func (k *kernel) stick(id NodeID) {
	k.nodes[id].ref = _MAXREFCOUNT
}

// nodecount returns the number of interior nodes reachable from the edges in
// roots.
func (k *kernel) nodecount(roots ...Edge) int {
	seen := make(map[NodeID]bool)
	var visit func(id NodeID)
	visit = func(id NodeID) {
		if id <= terminalID || seen[id] {
			return
		}
		seen[id] = true
		visit(k.nodes[id].hi.ID)
		visit(k.nodes[id].lo.ID)
	}
	for _, e := range roots {
		visit(e.ID)
	}
	return len(seen)
}
