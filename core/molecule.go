// Package core: Molecule storage, construction, and the adjacency cache.

package core

import (
	"sort"

	"github.com/molvath/molvath/ptable"
)

// Molecule is the in-memory molecular graph.
//
// Storage is map-based with monotonic ID counters; adjacency is rebuilt
// lazily after structural mutation (memoize-until-dirty, never eager).
// A Molecule performs no internal locking: callers serialize access.
type Molecule struct {
	table *ptable.Table

	nextAtom AtomID
	nextBond BondID

	atoms map[AtomID]*Atom
	bonds map[BondID]*Bond

	// adj maps atom ID to its incidences, each list sorted by neighbor ID.
	// Valid only while adjDirty is false. Detached bonds are excluded.
	adj      map[AtomID][]Incidence
	adjDirty bool

	// detached is the stack of temporarily disconnected bonds.
	detached    []BondID
	detachedSet map[BondID]struct{}

	// version counts structural mutations; external caches key on it.
	version uint64
}

// WithValenceTable makes the Molecule resolve valences against tbl instead
// of ptable.Default().
func WithValenceTable(tbl *ptable.Table) Option {
	return func(m *Molecule) {
		if tbl != nil {
			m.table = tbl
		}
	}
}

// NewMolecule creates an empty Molecule.
// Complexity: O(1).
func NewMolecule(opts ...Option) *Molecule {
	m := &Molecule{
		table:       ptable.Default(),
		atoms:       make(map[AtomID]*Atom),
		bonds:       make(map[BondID]*Bond),
		detachedSet: make(map[BondID]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// ValenceTable returns the table the Molecule resolves valences against.
func (m *Molecule) ValenceTable() *ptable.Table { return m.table }

// Version returns the structural mutation counter. Downstream packages use
// it to memoize derived results: recompute only when the version changed.
func (m *Molecule) Version() uint64 { return m.version }

// Touch bumps the version without a structural change. Call it after editing
// fields of retrieved atoms or bonds when cached derivations must refresh.
func (m *Molecule) Touch() { m.version++ }

// bump records a structural mutation: version up, adjacency invalid.
func (m *Molecule) bump() {
	m.version++
	m.adjDirty = true
}

// adjacency returns the incidence map, rebuilding it when dirty.
// Detached bonds are excluded. Each incidence list is sorted by
// neighbor atom ID, ties (impossible in a simple graph) by bond ID.
// Complexity: O(A + B log B) on rebuild, O(1) when clean.
func (m *Molecule) adjacency() map[AtomID][]Incidence {
	if m.adj != nil && !m.adjDirty {
		return m.adj
	}

	adj := make(map[AtomID][]Incidence, len(m.atoms))
	for id := range m.atoms {
		adj[id] = nil
	}
	for _, b := range m.bonds {
		if _, det := m.detachedSet[b.ID]; det {
			continue
		}
		a1, a2 := m.atoms[b.A1], m.atoms[b.A2]
		adj[b.A1] = append(adj[b.A1], Incidence{Atom: a2, Bond: b})
		adj[b.A2] = append(adj[b.A2], Incidence{Atom: a1, Bond: b})
	}
	for id := range adj {
		list := adj[id]
		sort.Slice(list, func(i, j int) bool {
			if list[i].Atom.ID != list[j].Atom.ID {
				return list[i].Atom.ID < list[j].Atom.ID
			}
			return list[i].Bond.ID < list[j].Bond.ID
		})
	}

	m.adj = adj
	m.adjDirty = false

	return adj
}
