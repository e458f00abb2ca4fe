// Package builder: the declarative table constructor.

package builder

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

const methodFromTables = "FromTables"

// AtomSpec describes one atom of a declarative table. Coordinates apply
// only when Positioned is set; a zero Multiplicity means the default
// singlet.
type AtomSpec struct {
	Symbol       string
	Charge       int
	Multiplicity int
	X, Y         float64
	Positioned   bool
}

// BondSpec describes one bond of a declarative table. A1 and A2 index
// the atom table by position.
type BondSpec struct {
	A1, A2 int
	Order  core.BondOrder
	Stereo core.Stereo
}

// FromTables returns a Constructor that appends the given tables
// verbatim: atoms in table order, then bonds in table order with
// endpoints resolved by table position. This is the bulk entry used by
// file codecs. An endpoint index outside the atom table yields
// ErrBadSpec; element, order and pair violations surface the core
// sentinel.
// Complexity: O(len(atoms)) plus O(deg) per bond for the duplicate check.
func FromTables(atoms []AtomSpec, bonds []BondSpec) Constructor {
	return func(m *core.Molecule, cfg config) error {
		if len(atoms) == 0 {
			return fmt.Errorf("%s: empty atom table: %w", methodFromTables, ErrTooFewAtoms)
		}

		// 1) Issue atoms in table order, remembering position -> ID.
		ids := make([]core.AtomID, len(atoms))
		for i, a := range atoms {
			var opts []core.AtomOption
			if a.Charge != 0 {
				opts = append(opts, core.WithCharge(a.Charge))
			}
			if a.Multiplicity > 0 {
				opts = append(opts, core.WithMultiplicity(a.Multiplicity))
			}
			if a.Positioned {
				opts = append(opts, core.WithCoords(a.X, a.Y))
			}
			id, err := m.AddAtom(a.Symbol, opts...)
			if err != nil {
				return fmt.Errorf("%s: atom %d: %w", methodFromTables, i, err)
			}
			ids[i] = id
		}

		// 2) Resolve and issue bonds in table order.
		for i, b := range bonds {
			if b.A1 < 0 || b.A1 >= len(atoms) || b.A2 < 0 || b.A2 >= len(atoms) {
				return fmt.Errorf("%s: bond %d: endpoint index %d-%d outside atom table: %w",
					methodFromTables, i, b.A1, b.A2, ErrBadSpec)
			}
			var opts []core.BondOption
			if b.Stereo != core.StereoNone {
				opts = append(opts, core.WithStereo(b.Stereo))
			}
			if _, err := m.AddBond(ids[b.A1], ids[b.A2], b.Order, opts...); err != nil {
				return fmt.Errorf("%s: bond %d: %w", methodFromTables, i, err)
			}
		}

		return nil
	}
}
