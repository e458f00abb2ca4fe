// Package builder: the Star constructor.

package builder

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

const (
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star returns a Constructor for a hub atom bonded to one leaf atom per
// given symbol, in argument order, using the configured bond order.
// Star("C", "H", "H", "H", "H") is methane. At least one leaf is
// required.
// Complexity: O(len(leaves)).
func Star(center string, leaves ...string) Constructor {
	return func(m *core.Molecule, cfg config) error {
		if len(leaves) < minStarLeaves {
			return fmt.Errorf("%s: no leaves: %w", methodStar, ErrTooFewAtoms)
		}

		hub, err := m.AddAtom(center)
		if err != nil {
			return fmt.Errorf("%s: AddAtom(%s): %w", methodStar, center, err)
		}

		for _, leaf := range leaves {
			id, err := m.AddAtom(leaf)
			if err != nil {
				return fmt.Errorf("%s: AddAtom(%s): %w", methodStar, leaf, err)
			}
			if _, err = m.AddBond(hub, id, cfg.order); err != nil {
				return fmt.Errorf("%s: AddBond(%d-%d): %w", methodStar, hub, id, err)
			}
		}

		return nil
	}
}
