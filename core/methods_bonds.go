// Package core: bond lifecycle and pair queries.

package core

import (
	"fmt"
	"sort"
)

// AddBond creates a bond between a1 and a2 with the given order and returns
// its ID. The stored endpoint order (A1=a1, A2=a2) is preserved for stereo
// direction; identity and duplicate detection treat the pair as unordered.
//
// Returns ErrAtomNotFound if either endpoint is absent, ErrLoopBond if
// a1 == a2, ErrBadOrder for an unknown order, and ErrDuplicateBond if the
// pair is already bonded (recoverable: escalate the existing bond's order
// instead).
// Complexity: O(deg) for the duplicate check.
func (m *Molecule) AddBond(a1, a2 AtomID, order BondOrder, opts ...BondOption) (BondID, error) {
	// 1) Endpoint validation.
	if _, ok := m.atoms[a1]; !ok {
		return 0, fmt.Errorf("core: bond endpoint %d: %w", a1, ErrAtomNotFound)
	}
	if _, ok := m.atoms[a2]; !ok {
		return 0, fmt.Errorf("core: bond endpoint %d: %w", a2, ErrAtomNotFound)
	}
	// 2) Structural constraints.
	if a1 == a2 {
		return 0, ErrLoopBond
	}
	if !order.valid() {
		return 0, fmt.Errorf("core: order %d: %w", order, ErrBadOrder)
	}
	// 3) Duplicate check over the unordered pair. The bond map is
	//    authoritative so detached bonds still count as present.
	if b, ok := m.bondBetweenAny(a1, a2); ok {
		return 0, fmt.Errorf("core: atoms %d-%d already joined by bond %d: %w",
			a1, a2, b.ID, ErrDuplicateBond)
	}

	m.nextBond++
	b := &Bond{ID: m.nextBond, A1: a1, A2: a2, Order: order}
	for _, opt := range opts {
		opt(b)
	}
	m.bonds[b.ID] = b
	m.bump()

	return b.ID, nil
}

// Bond resolves id to its live *Bond. Detached bonds resolve normally.
// Returns ErrBondNotFound when absent.
// Complexity: O(1).
func (m *Molecule) Bond(id BondID) (*Bond, error) {
	b, ok := m.bonds[id]
	if !ok {
		return nil, fmt.Errorf("core: bond %d: %w", id, ErrBondNotFound)
	}

	return b, nil
}

// HasBond reports whether a bond with the given ID exists.
// Complexity: O(1).
func (m *Molecule) HasBond(id BondID) bool {
	_, ok := m.bonds[id]
	return ok
}

// Bonds returns all bonds sorted by ascending ID, detached ones included.
// The slice is a fresh snapshot; the pointed-to bonds are live.
// Complexity: O(B log B).
func (m *Molecule) Bonds() []*Bond {
	out := make([]*Bond, 0, len(m.bonds))
	for _, b := range m.bonds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// BondCount returns the number of bonds, detached ones included.
// Complexity: O(1).
func (m *Molecule) BondCount() int { return len(m.bonds) }

// BondBetween returns the live (non-detached) bond joining the unordered
// pair (a1, a2), or false when the pair is unbonded, detached, or either
// atom is absent.
// Complexity: O(deg).
func (m *Molecule) BondBetween(a1, a2 AtomID) (*Bond, bool) {
	for _, inc := range m.adjacency()[a1] {
		if inc.Atom.ID == a2 {
			return inc.Bond, true
		}
	}

	return nil, false
}

// bondBetweenAny scans the bond map for the unordered pair, ignoring
// detachment. Used where the bond's existence matters, not its connectivity.
func (m *Molecule) bondBetweenAny(a1, a2 AtomID) (*Bond, bool) {
	for _, b := range m.bonds {
		if (b.A1 == a1 && b.A2 == a2) || (b.A1 == a2 && b.A2 == a1) {
			return b, true
		}
	}

	return nil, false
}

// RemoveBond deletes the bond. A detached bond is removed as well and its
// entry disappears from the detached stack.
// Returns ErrBondNotFound when absent.
// Complexity: O(1) amortized, O(detached) when the bond was detached.
func (m *Molecule) RemoveBond(id BondID) error {
	if _, ok := m.bonds[id]; !ok {
		return fmt.Errorf("core: bond %d: %w", id, ErrBondNotFound)
	}

	delete(m.bonds, id)
	if _, det := m.detachedSet[id]; det {
		delete(m.detachedSet, id)
		for i, bid := range m.detached {
			if bid == id {
				m.detached = append(m.detached[:i], m.detached[i+1:]...)
				break
			}
		}
	}
	m.bump()

	return nil
}
