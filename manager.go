// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Manager owns all the nodes of a family of BDD and FDD over the same set of
// supports (input variables). It stores the unique tables, the computed caches,
// the support leaves, and the name registries.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	nin       int      // number of supports
	gen       uint32   // incremented on every call to Init
	bdd       kernel   // Shannon nodes
	fdd       kernel   // Davio nodes
	supports  []Edge   // supports[i] is the BDD for level i, supports[0] is One
	fsupports []Edge   // same for FDD
	cfg       *configs // sizes used in the last call to Init
	log       *log.Logger
	registry
}

// New returns a manager with nin supports, at levels 1 to nin. You can
// specify optional parameters, such as the size of the unique tables and of
// the computed caches, using configuration options (see Buckets, Cachesize and
// Logger).
func New(nin int, options ...func(*configs)) (*Manager, error) {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	m := &Manager{log: c.logger}
	if m.log == nil {
		m.log = discardLogger()
	}
	if err := m.Init(nin, c.buckets, c.cachesize); err != nil {
		return nil, err
	}
	return m, nil
}

// Init clears every table of the manager and rebuilds the terminals and the
// nin support leaves of both families. All the nodes obtained before the call
// become stale.
func (m *Manager) Init(nin, buckets, cachesize int) error {
	if nin < 0 || nin > _MAXLEVEL {
		return fmt.Errorf("%w: %d not in [0..%d]", ErrSupports, nin, _MAXLEVEL)
	}
	if m.log == nil {
		m.log = discardLogger()
	}
	m.nin = nin
	m.gen++
	m.cfg = &configs{buckets: buckets, cachesize: cachesize, logger: m.log}
	m.bdd = kernel{name: "bdd", family: shannon, log: m.log}
	m.fdd = kernel{name: "fdd", family: davio, log: m.log}
	m.bdd.init(buckets, cachesize)
	m.fdd.init(buckets, cachesize)
	m.supports = make([]Edge, nin+1)
	m.fsupports = make([]Edge, nin+1)
	m.supports[0] = edgeOne
	m.fsupports[0] = edgeOne
	for i := 1; i <= nin; i++ {
		m.supports[i] = m.bdd.uniquify(edgeOne, edgeZero, i)
		m.bdd.stick(m.supports[i].ID)
		m.fsupports[i] = m.fdd.uniquify(edgeOne, edgeZero, i)
		m.fdd.stick(m.fsupports[i].ID)
	}
	m.registry.reset()
	m.log.Debug("init", "supports", nin, "buckets", len(m.bdd.buckets), "cache", len(m.bdd.table), "generation", m.gen)
	return nil
}

// Restart resets the manager with the same parameters than in the last call
// to Init. All the nodes obtained before the call become stale.
func (m *Manager) Restart() {
	m.log.Debug("restart", "bdd", m.bdd.size(), "fdd", m.fdd.size())
	_ = m.Init(m.nin, m.cfg.buckets, m.cfg.cachesize)
}

// NumSupports returns the number of supports (levels) of m.
func (m *Manager) NumSupports() int {
	return m.nin
}

// Support returns the BDD for the variable at the given level. Support(0) is
// the constant One.
func (m *Manager) Support(level int) BDD {
	if level != 0 {
		m.checklevel(level)
	}
	return m.bddnode(m.supports[level])
}

// FddSupport returns the FDD for the variable at the given level. FddSupport(0)
// is the constant One.
func (m *Manager) FddSupport(level int) FDD {
	if level != 0 {
		m.checklevel(level)
	}
	return m.fddnode(m.fsupports[level])
}

// One returns the constant true BDD
func (m *Manager) One() BDD {
	return m.bddnode(edgeOne)
}

// Zero returns the constant false BDD
func (m *Manager) Zero() BDD {
	return m.bddnode(edgeZero)
}

// From returns a (constant) BDD from a boolean value.
func (m *Manager) From(v bool) BDD {
	if v {
		return m.One()
	}
	return m.Zero()
}

// FddOne returns the constant true FDD
func (m *Manager) FddOne() FDD {
	return m.fddnode(edgeOne)
}

// FddZero returns the constant false FDD
func (m *Manager) FddZero() FDD {
	return m.fddnode(edgeZero)
}

// Stats returns information about the tables and caches of m.
func (m *Manager) Stats() Stats {
	return Stats{
		Supports: m.nin,
		BDD:      m.bdd.tableStats(),
		FDD:      m.fdd.tableStats(),
	}
}

// Stats stores status information about a Manager.
type Stats struct {
	Supports int
	BDD      TableStats
	FDD      TableStats
}

// TableStats stores status information about the tables of one family of
// diagrams.
type TableStats struct {
	Nodes        int // interior nodes ever produced
	Buckets      int // size of the unique table
	UniqueAccess int // accesses to the unique table
	UniqueHit    int // lookups that found an existing node
	UniqueMiss   int // lookups that created a node
	Rehash       int // number of times the unique table grew
	CacheSize    int // number of slots in the computed cache
	CacheHit     int
	CacheMiss    int
}

func (k *kernel) tableStats() TableStats {
	return TableStats{
		Nodes:        k.size(),
		Buckets:      len(k.buckets),
		UniqueAccess: k.uniqueAccess,
		UniqueHit:    k.uniqueHit,
		UniqueMiss:   k.uniqueMiss,
		Rehash:       k.rehash,
		CacheSize:    len(k.table),
		CacheHit:     k.hit,
		CacheMiss:    k.miss,
	}
}

func (s Stats) String() string {
	res := fmt.Sprintf("Supports:      %d\n", s.Supports)
	res += "== BDD ==\n" + s.BDD.String() + "\n"
	res += "== FDD ==\n" + s.FDD.String()
	return res
}

func (s TableStats) String() string {
	res := fmt.Sprintf("Nodes:         %d\n", s.Nodes)
	res += fmt.Sprintf("Buckets:       %d\n", s.Buckets)
	res += fmt.Sprintf("Unique Access: %d\n", s.UniqueAccess)
	res += fmt.Sprintf("Unique Hit:    %d\n", s.UniqueHit)
	res += fmt.Sprintf("Unique Miss:   %d\n", s.UniqueMiss)
	res += fmt.Sprintf("Rehash:        %d\n", s.Rehash)
	res += fmt.Sprintf("Cache Size:    %d\n", s.CacheSize)
	res += fmt.Sprintf("Cache Hit:     %d\n", s.CacheHit)
	res += fmt.Sprintf("Cache Miss:    %d", s.CacheMiss)
	return res
}
