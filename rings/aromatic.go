// Package rings: aromaticity marking.

package rings

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

// MarkAromatic classifies each perceived ring and flags the bonds of
// aromatic rings (Bond.Aromatic = true). A ring is aromatic when every
// bond carries OrderAromatic, or when the ring has even length and its
// orders alternate single/double all the way around (either phase).
//
// The returned slice aligns with res.Rings. res must describe m's current
// state; a stale result surfaces as ErrBondNotFound.
//
// Marking edits bond fields only - the molecule version is not bumped.
func MarkAromatic(m *core.Molecule, res *Result) ([]bool, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}

	flags := make([]bool, len(res.Rings))
	for i, r := range res.Rings {
		orders := make([]core.BondOrder, len(r.Bonds))
		bonds := make([]*core.Bond, len(r.Bonds))
		for j, bid := range r.Bonds {
			b, err := m.Bond(bid)
			if err != nil {
				return nil, fmt.Errorf("rings: stale result: %w", err)
			}
			bonds[j] = b
			orders[j] = b.Order
		}

		if !allAromatic(orders) && !alternating(orders) {
			continue
		}
		flags[i] = true
		for _, b := range bonds {
			b.Aromatic = true
		}
	}

	return flags, nil
}

func allAromatic(orders []core.BondOrder) bool {
	for _, o := range orders {
		if o != core.OrderAromatic {
			return false
		}
	}

	return len(orders) > 0
}

// alternating reports a strict single/double alternation around an
// even-length cycle, accepting either starting phase.
func alternating(orders []core.BondOrder) bool {
	n := len(orders)
	if n == 0 || n%2 != 0 {
		return false
	}
	first := orders[0]
	var second core.BondOrder
	switch first {
	case core.Single:
		second = core.Double
	case core.Double:
		second = core.Single
	default:
		return false
	}
	for i, o := range orders {
		want := first
		if i%2 == 1 {
			want = second
		}
		if o != want {
			return false
		}
	}

	return true
}
