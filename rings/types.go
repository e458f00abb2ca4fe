// Package rings: types, options, and sentinel errors.

package rings

import (
	"errors"

	"github.com/molvath/molvath/core"
)

// Sentinel errors for ring perception.
var (
	// ErrNilMolecule indicates Perceive was called with a nil molecule.
	ErrNilMolecule = errors.New("rings: nil molecule")
)

const (
	// DefaultMaxCombine bounds how many basis cycles one symmetric
	// difference may combine during reduction.
	DefaultMaxCombine = 3

	// DefaultMaxAttempts bounds candidate evaluations per perception.
	DefaultMaxAttempts = 4096
)

// Option configures a perception run.
type Option func(*config)

type config struct {
	maxCombine  int
	maxAttempts int
}

func defaultConfig() config {
	return config{
		maxCombine:  DefaultMaxCombine,
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithMaxCombine sets how many basis cycles one replacement candidate may
// combine (the replaced cycle included). Values below 2 disable reduction.
func WithMaxCombine(k int) Option {
	return func(c *config) { c.maxCombine = k }
}

// WithMaxAttempts caps candidate evaluations; on exhaustion the current
// basis is returned with Truncated set.
func WithMaxAttempts(n int) Option {
	return func(c *config) { c.maxAttempts = n }
}

// Ring is one perceived cycle in canonical form: Atoms starts at the ring's
// smallest atom ID and proceeds toward that atom's smaller ring neighbor;
// the closing repeat is omitted. Bonds[i] joins Atoms[i] and
// Atoms[(i+1)%len].
type Ring struct {
	Atoms []core.AtomID
	Bonds []core.BondID

	// idSum keys deterministic ordering and reduction tie-breaks.
	idSum int
	// edges is the ring's edge set over the perception's dense bond index.
	edges edgeSet
}

// Size returns the number of atoms (equals the number of bonds).
func (r Ring) Size() int { return len(r.Atoms) }

// ContainsAtom reports whether id is a member of the ring.
func (r Ring) ContainsAtom(id core.AtomID) bool {
	for _, a := range r.Atoms {
		if a == id {
			return true
		}
	}

	return false
}

// ContainsBond reports whether id is one of the ring's bonds.
func (r Ring) ContainsBond(id core.BondID) bool {
	for _, b := range r.Bonds {
		if b == id {
			return true
		}
	}

	return false
}

// compareRings orders rings by (size, atom-ID sum, lexicographic atoms).
func compareRings(a, b Ring) int {
	if d := len(a.Atoms) - len(b.Atoms); d != 0 {
		return d
	}
	if d := a.idSum - b.idSum; d != 0 {
		return d
	}
	for i := range a.Atoms {
		if a.Atoms[i] != b.Atoms[i] {
			return int(a.Atoms[i] - b.Atoms[i])
		}
	}

	return 0
}

// Result carries one perception outcome.
type Result struct {
	// Rings is the SSSR, ordered by (size, atom-ID sum, atom sequence).
	Rings []Ring

	// Basis is the fundamental cycle basis before reduction, in
	// generation order (ascending closing bond ID).
	Basis []Ring

	// Components is the number of connected components seen.
	Components int

	// Reductions counts basis replacements performed.
	Reductions int

	// Truncated is set when the attempt budget ran out; Rings is then a
	// valid cycle basis whose members may not all be minimal.
	Truncated bool
}

// RingsWithBond returns the indices into Rings of every ring containing the
// bond, ascending.
func (res *Result) RingsWithBond(id core.BondID) []int {
	var out []int
	for i, r := range res.Rings {
		if r.ContainsBond(id) {
			out = append(out, i)
		}
	}

	return out
}

// RingsWithAtom returns the indices into Rings of every ring containing the
// atom, ascending.
func (res *Result) RingsWithAtom(id core.AtomID) []int {
	var out []int
	for i, r := range res.Rings {
		if r.ContainsAtom(id) {
			out = append(out, i)
		}
	}

	return out
}
