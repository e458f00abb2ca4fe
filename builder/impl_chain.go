// Package builder: the Chain constructor.

package builder

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

const (
	methodChain   = "Chain"
	minChainAtoms = 1
)

// Chain returns a Constructor for a linear chain of n atoms of the
// configured element joined by n-1 bonds of the configured order.
// A single-atom chain is legal and carries no bonds.
// Complexity: O(n). Determinism: atoms and bonds issued in index order.
func Chain(n int) Constructor {
	return func(m *core.Molecule, cfg config) error {
		if n < minChainAtoms {
			return fmt.Errorf("%s: n=%d: %w", methodChain, n, ErrTooFewAtoms)
		}

		var prev core.AtomID
		for i := 0; i < n; i++ {
			id, err := m.AddAtom(cfg.element)
			if err != nil {
				return fmt.Errorf("%s: AddAtom(%s): %w", methodChain, cfg.element, err)
			}
			if i > 0 {
				if _, err = m.AddBond(prev, id, cfg.order); err != nil {
					return fmt.Errorf("%s: AddBond(%d-%d): %w", methodChain, prev, id, err)
				}
			}
			prev = id
		}

		return nil
	}
}
