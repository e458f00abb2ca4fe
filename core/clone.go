// Package core: deep copies and induced subgraph extraction.

package core

func copyAtom(a *Atom) *Atom {
	dup := *a
	if a.Props != nil {
		dup.Props = make(map[PropKey]float64, len(a.Props))
		for k, v := range a.Props {
			dup.Props[k] = v
		}
	}

	return &dup
}

func copyBond(b *Bond) *Bond {
	dup := *b
	if b.Props != nil {
		dup.Props = make(map[PropKey]float64, len(b.Props))
		for k, v := range b.Props {
			dup.Props[k] = v
		}
	}

	return &dup
}

// Clone returns a deep copy: same IDs, same counters, same detached stack,
// nothing shared with the source. The copy starts its own version sequence
// at zero, so caches keyed on the source never alias the clone.
// Complexity: O(A + B).
func (m *Molecule) Clone() *Molecule {
	dup := &Molecule{
		table:       m.table,
		nextAtom:    m.nextAtom,
		nextBond:    m.nextBond,
		atoms:       make(map[AtomID]*Atom, len(m.atoms)),
		bonds:       make(map[BondID]*Bond, len(m.bonds)),
		adjDirty:    true,
		detached:    append([]BondID(nil), m.detached...),
		detachedSet: make(map[BondID]struct{}, len(m.detachedSet)),
	}
	for id, a := range m.atoms {
		dup.atoms[id] = copyAtom(a)
	}
	for id, b := range m.bonds {
		dup.bonds[id] = copyBond(b)
	}
	for id := range m.detachedSet {
		dup.detachedSet[id] = struct{}{}
	}

	return dup
}

// InducedCopy returns a fresh Molecule containing copies of the atoms with
// keep[id] == true and of every live (non-detached) bond whose endpoints are
// both kept. IDs are preserved and the ID counters carried over, so atoms
// added to the copy later never collide with source IDs. The copy's
// detached stack is empty.
// Complexity: O(A + B).
func (m *Molecule) InducedCopy(keep map[AtomID]bool) *Molecule {
	dup := &Molecule{
		table:       m.table,
		nextAtom:    m.nextAtom,
		nextBond:    m.nextBond,
		atoms:       make(map[AtomID]*Atom, len(keep)),
		bonds:       make(map[BondID]*Bond),
		adjDirty:    true,
		detachedSet: make(map[BondID]struct{}),
	}
	for id, a := range m.atoms {
		if keep[id] {
			dup.atoms[id] = copyAtom(a)
		}
	}
	for id, b := range m.bonds {
		if _, det := m.detachedSet[id]; det {
			continue
		}
		if keep[b.A1] && keep[b.A2] {
			dup.bonds[id] = copyBond(b)
		}
	}

	return dup
}
