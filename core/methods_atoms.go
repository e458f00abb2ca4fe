// Package core: atom lifecycle and connectivity queries.

package core

import (
	"fmt"
	"sort"
)

// AddAtom inserts a new atom with the given element symbol and returns its ID.
// Returns ErrEmptySymbol if symbol is empty.
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(symbol string, opts ...AtomOption) (AtomID, error) {
	if symbol == "" {
		return 0, ErrEmptySymbol
	}

	m.nextAtom++
	a := &Atom{
		ID:           m.nextAtom,
		Symbol:       symbol,
		Multiplicity: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	m.atoms[a.ID] = a
	m.bump()

	return a.ID, nil
}

// Atom resolves id to its live *Atom.
// Returns ErrAtomNotFound when absent.
// Complexity: O(1).
func (m *Molecule) Atom(id AtomID) (*Atom, error) {
	a, ok := m.atoms[id]
	if !ok {
		return nil, fmt.Errorf("core: atom %d: %w", id, ErrAtomNotFound)
	}

	return a, nil
}

// HasAtom reports whether an atom with the given ID exists.
// Complexity: O(1).
func (m *Molecule) HasAtom(id AtomID) bool {
	_, ok := m.atoms[id]
	return ok
}

// Atoms returns all atoms sorted by ascending ID.
// The slice is a fresh snapshot; the pointed-to atoms are live.
// Complexity: O(A log A).
func (m *Molecule) Atoms() []*Atom {
	out := make([]*Atom, 0, len(m.atoms))
	for _, a := range m.atoms {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// AtomIDs returns all atom IDs in ascending order.
// Complexity: O(A log A).
func (m *Molecule) AtomIDs() []AtomID {
	out := make([]AtomID, 0, len(m.atoms))
	for id := range m.atoms {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// AtomCount returns the number of atoms.
// Complexity: O(1).
func (m *Molecule) AtomCount() int { return len(m.atoms) }

// RemoveAtom deletes the atom and cascades over its incident bonds first.
// Detached incident bonds are removed as well, including their stack entries.
// Returns ErrAtomNotFound when absent.
// Complexity: O(B) in the worst case.
func (m *Molecule) RemoveAtom(id AtomID) error {
	if _, ok := m.atoms[id]; !ok {
		return fmt.Errorf("core: atom %d: %w", id, ErrAtomNotFound)
	}

	// 1) Collect incident bonds (the bond map is authoritative here:
	//    detached bonds are incident too).
	var incident []BondID
	for bid, b := range m.bonds {
		if b.A1 == id || b.A2 == id {
			incident = append(incident, bid)
		}
	}
	// 2) Cascade. RemoveBond also clears detached-stack entries.
	for _, bid := range incident {
		_ = m.RemoveBond(bid)
	}
	// 3) Drop the atom itself.
	delete(m.atoms, id)
	m.bump()

	return nil
}

// Neighbors returns the incidences of id: one entry per live (non-detached)
// bond, sorted by neighbor atom ID. The slice is a fresh snapshot.
// Returns ErrAtomNotFound when absent.
// Complexity: O(1) amortized after adjacency rebuild; O(deg) to copy.
func (m *Molecule) Neighbors(id AtomID) ([]Incidence, error) {
	if _, ok := m.atoms[id]; !ok {
		return nil, fmt.Errorf("core: atom %d: %w", id, ErrAtomNotFound)
	}
	list := m.adjacency()[id]
	out := make([]Incidence, len(list))
	copy(out, list)

	return out, nil
}

// NeighborIDs returns the IDs of atoms adjacent to id, ascending.
// Detached bonds do not contribute.
// Returns ErrAtomNotFound when absent.
func (m *Molecule) NeighborIDs(id AtomID) ([]AtomID, error) {
	if _, ok := m.atoms[id]; !ok {
		return nil, fmt.Errorf("core: atom %d: %w", id, ErrAtomNotFound)
	}
	list := m.adjacency()[id]
	out := make([]AtomID, len(list))
	for i, inc := range list {
		out[i] = inc.Atom.ID
	}

	return out, nil
}

// Degree returns the number of live (non-detached) bonds incident to id.
// Returns ErrAtomNotFound when absent.
func (m *Molecule) Degree(id AtomID) (int, error) {
	if _, ok := m.atoms[id]; !ok {
		return 0, fmt.Errorf("core: atom %d: %w", id, ErrAtomNotFound)
	}

	return len(m.adjacency()[id]), nil
}
