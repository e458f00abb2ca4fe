// Package core: valence bookkeeping and molecular formula.

package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// OccupiedValence sums the valence contributions of every bond incident to
// id, detached bonds included (detachment is not a chemical edit).
// Aromatic bonds contribute 1.5, coordination bonds 0.
// Returns ErrAtomNotFound when absent.
// Complexity: O(B).
func (m *Molecule) OccupiedValence(id AtomID) (float64, error) {
	if _, ok := m.atoms[id]; !ok {
		return 0, fmt.Errorf("core: atom %d: %w", id, ErrAtomNotFound)
	}

	var occ float64
	for _, b := range m.bonds {
		if b.A1 == id || b.A2 == id {
			occ += b.Order.Valence()
		}
	}

	return occ, nil
}

// FreeValency returns the remaining bonding capacity of the atom: the
// smallest standard valence (charge-corrected) that covers the occupied
// valence plus unpaired electrons, minus that occupation. When no standard
// valence covers it the largest is used and the result is negative -
// overbonding is reported, never an error. Unknown elements resolve
// against a valence of zero.
//
// The half-integer contribution of aromatic bonds is rounded half-up
// before comparison.
func (m *Molecule) FreeValency(id AtomID) (int, error) {
	a, ok := m.atoms[id]
	if !ok {
		return 0, fmt.Errorf("core: atom %d: %w", id, ErrAtomNotFound)
	}

	occF, _ := m.OccupiedValence(id)
	occ := int(math.Floor(occF + 0.5))

	// Unpaired electrons take up bonding slots: doublet one, triplet two.
	if a.Multiplicity > 1 {
		occ += a.Multiplicity - 1
	}

	valences := m.table.EffectiveValences(a.Symbol, a.Charge)
	if len(valences) == 0 {
		return -occ, nil
	}
	for _, v := range valences {
		if v >= occ {
			return v - occ, nil
		}
	}

	// Overbonded: report against the largest standard valence.
	return valences[len(valences)-1] - occ, nil
}

// ValencyIssue reports one overbonded atom found by CheckChemistry.
type ValencyIssue struct {
	// Atom is the offending atom's ID.
	Atom AtomID
	// Free is the (negative) free valency.
	Free int
}

// CheckChemistry returns one issue per atom whose free valency is negative,
// sorted by ascending atom ID. An empty result means no findings.
// Complexity: O(A·B).
func (m *Molecule) CheckChemistry() []ValencyIssue {
	var issues []ValencyIssue
	for _, id := range m.AtomIDs() {
		free, err := m.FreeValency(id)
		if err == nil && free < 0 {
			issues = append(issues, ValencyIssue{Atom: id, Free: free})
		}
	}

	return issues
}

// Formula is an element multiset: symbol → atom count.
type Formula map[string]int

// String renders the formula in Hill order: C first, H second, remaining
// symbols alphabetical. Without carbon, all symbols are alphabetical.
// Counts of one are omitted.
func (f Formula) String() string {
	if len(f) == 0 {
		return ""
	}

	symbols := make([]string, 0, len(f))
	for sym := range f {
		if sym == "C" || sym == "H" {
			continue
		}
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	if _, hasC := f["C"]; hasC {
		ordered := make([]string, 0, len(f))
		ordered = append(ordered, "C")
		if _, hasH := f["H"]; hasH {
			ordered = append(ordered, "H")
		}
		symbols = append(ordered, symbols...)
	} else if _, hasH := f["H"]; hasH {
		// No carbon: H files alphabetically with the rest.
		symbols = append(symbols, "H")
		sort.Strings(symbols)
	}

	var sb strings.Builder
	for _, sym := range symbols {
		sb.WriteString(sym)
		if n := f[sym]; n > 1 {
			fmt.Fprintf(&sb, "%d", n)
		}
	}

	return sb.String()
}

// Formula returns the element multiset of the molecule's explicit atoms.
// Implicit hydrogens are not added; callers wanting them saturate the
// molecule first.
// Complexity: O(A).
func (m *Molecule) Formula() Formula {
	f := make(Formula, 8)
	for _, a := range m.atoms {
		f[a.Symbol]++
	}

	return f
}
