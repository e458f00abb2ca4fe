// Package builder: the ring constructors and their shared helpers.

package builder

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

const (
	methodRing            = "Ring"
	methodAlternatingRing = "AlternatingRing"
	minRingAtoms          = 3
	minAlternatingAtoms   = 4
)

// ringAtoms adds n atoms of element and returns their IDs in issue order.
func ringAtoms(m *core.Molecule, method, element string, n int) ([]core.AtomID, error) {
	ids := make([]core.AtomID, n)
	for i := range ids {
		id, err := m.AddAtom(element)
		if err != nil {
			return nil, fmt.Errorf("%s: AddAtom(%s): %w", method, element, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// closeRing joins ids into a cycle, bond i to (i+1) mod n, with the order
// of step i chosen by orderAt.
func closeRing(m *core.Molecule, method string, ids []core.AtomID, orderAt func(int) core.BondOrder) error {
	for i := range ids {
		a, b := ids[i], ids[(i+1)%len(ids)]
		if _, err := m.AddBond(a, b, orderAt(i)); err != nil {
			return fmt.Errorf("%s: AddBond(%d-%d): %w", method, a, b, err)
		}
	}

	return nil
}

// alternatingOrder is the Kekulé edge pattern: double on even steps,
// single on odd.
func alternatingOrder(i int) core.BondOrder {
	if i%2 == 0 {
		return core.Double
	}

	return core.Single
}

// Ring returns a Constructor for a simple n-cycle of the configured
// element and bond order. n must be at least 3.
// Complexity: O(n). Determinism: atoms and bonds issued in cycle order.
func Ring(n int) Constructor {
	return func(m *core.Molecule, cfg config) error {
		if n < minRingAtoms {
			return fmt.Errorf("%s: n=%d: %w", methodRing, n, ErrTooFewAtoms)
		}

		ids, err := ringAtoms(m, methodRing, cfg.element, n)
		if err != nil {
			return err
		}

		return closeRing(m, methodRing, ids, func(int) core.BondOrder { return cfg.order })
	}
}

// AlternatingRing returns a Constructor for an n-cycle of the configured
// element with strictly alternating double and single bonds, double
// first. n must be even (an odd cycle cannot alternate) and at least 4;
// AlternatingRing(6) is the Kekulé benzene skeleton.
// Complexity: O(n).
func AlternatingRing(n int) Constructor {
	return func(m *core.Molecule, cfg config) error {
		if n < minAlternatingAtoms {
			return fmt.Errorf("%s: n=%d: %w", methodAlternatingRing, n, ErrTooFewAtoms)
		}
		if n%2 != 0 {
			return fmt.Errorf("%s: odd n=%d cannot alternate: %w", methodAlternatingRing, n, ErrBadSpec)
		}

		ids, err := ringAtoms(m, methodAlternatingRing, cfg.element, n)
		if err != nil {
			return err
		}

		return closeRing(m, methodAlternatingRing, ids, alternatingOrder)
	}
}
