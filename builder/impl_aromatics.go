// Package builder: aromatic fixtures in Kekulé form.

package builder

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

const (
	methodBenzene     = "Benzene"
	methodNaphthalene = "Naphthalene"
	methodBiphenyl    = "Biphenyl"

	carbonSymbol     = "C"
	hexagonAtoms     = 6
	naphthaleneAtoms = 10
)

// Benzene returns a Constructor for a Kekulé benzene ring: six carbons
// with alternating double and single bonds. The configured element and
// order are ignored; benzene is carbon by definition.
func Benzene() Constructor {
	return func(m *core.Molecule, cfg config) error {
		cfg.element = carbonSymbol
		return AlternatingRing(hexagonAtoms)(m, cfg)
	}
}

// Naphthalene returns a Constructor for the fused bicyclic: ten carbons
// and eleven bonds forming two hexagons that share one edge, with the
// Kekulé alternation placing exactly one double bond on every carbon.
func Naphthalene() Constructor {
	return func(m *core.Molecule, cfg config) error {
		ids, err := ringAtoms(m, methodNaphthalene, carbonSymbol, naphthaleneAtoms)
		if err != nil {
			return err
		}

		// First hexagon 0..5, second hexagon 4,5,6..9 fused on the 4-5
		// edge, which carries the shared double bond.
		edges := []struct {
			a, b  int
			order core.BondOrder
		}{
			{0, 1, core.Double},
			{1, 2, core.Single},
			{2, 3, core.Double},
			{3, 4, core.Single},
			{4, 5, core.Double},
			{5, 0, core.Single},
			{5, 6, core.Single},
			{6, 7, core.Double},
			{7, 8, core.Single},
			{8, 9, core.Double},
			{9, 4, core.Single},
		}
		for _, e := range edges {
			if _, err = m.AddBond(ids[e.a], ids[e.b], e.order); err != nil {
				return fmt.Errorf("%s: AddBond(%d-%d): %w", methodNaphthalene, ids[e.a], ids[e.b], err)
			}
		}

		return nil
	}
}

// Biphenyl returns a Constructor for two Kekulé benzene rings joined by
// a single bridge bond between the first carbon of each. The bridge
// carbons end up with four occupied valences, matching the ipso carbons
// of the real compound.
func Biphenyl() Constructor {
	return func(m *core.Molecule, cfg config) error {
		left, err := ringAtoms(m, methodBiphenyl, carbonSymbol, hexagonAtoms)
		if err != nil {
			return err
		}
		if err = closeRing(m, methodBiphenyl, left, alternatingOrder); err != nil {
			return err
		}

		right, err := ringAtoms(m, methodBiphenyl, carbonSymbol, hexagonAtoms)
		if err != nil {
			return err
		}
		if err = closeRing(m, methodBiphenyl, right, alternatingOrder); err != nil {
			return err
		}

		if _, err = m.AddBond(left[0], right[0], core.Single); err != nil {
			return fmt.Errorf("%s: AddBond(%d-%d): %w", methodBiphenyl, left[0], right[0], err)
		}

		return nil
	}
}
