// Package match: fragment, match, options, and sentinel errors.

package match

import (
	"context"
	"errors"

	"github.com/molvath/molvath/core"
)

// Sentinel errors for substructure search.
var (
	// ErrEmptyFragment indicates a fragment with no atoms.
	ErrEmptyFragment = errors.New("match: empty fragment")

	// ErrFragmentInvalid indicates a nil pattern or free-site marks that
	// reference atoms or bonds missing from the pattern.
	ErrFragmentInvalid = errors.New("match: invalid fragment")

	// ErrNilTarget indicates Search was called without a target.
	ErrNilTarget = errors.New("match: nil target")

	// ErrTargetMutated indicates the target changed structurally while a
	// cursor was iterating; the cursor refuses to continue.
	ErrTargetMutated = errors.New("match: target mutated during iteration")
)

// Fragment is a reusable substructure pattern: a pattern molecule plus
// free-site marks. Marks may be added in any order; they are validated by
// Search. The pattern must not be mutated while a Cursor derived from it is
// live.
type Fragment struct {
	mol       *core.Molecule
	freeAtoms map[core.AtomID]bool
	freeBonds map[core.BondID]bool
}

// NewFragment wraps pattern as a fragment. The pattern is referenced, not
// copied.
func NewFragment(pattern *core.Molecule) *Fragment {
	return &Fragment{
		mol:       pattern,
		freeAtoms: make(map[core.AtomID]bool),
		freeBonds: make(map[core.BondID]bool),
	}
}

// MarkFreeAtom makes the pattern atom match any element.
func (f *Fragment) MarkFreeAtom(id core.AtomID) *Fragment {
	f.freeAtoms[id] = true
	return f
}

// MarkFreeBond makes the pattern bond match any order.
func (f *Fragment) MarkFreeBond(id core.BondID) *Fragment {
	f.freeBonds[id] = true
	return f
}

// Pattern returns the wrapped pattern molecule.
func (f *Fragment) Pattern() *core.Molecule { return f.mol }

// Match is one embedding: injective fragment→target maps for atoms and
// bonds. It is a value snapshot, valid until the target mutates.
type Match struct {
	Atoms map[core.AtomID]core.AtomID
	Bonds map[core.BondID]core.BondID
}

// Option configures a search.
type Option func(*config)

type config struct {
	ctx          context.Context
	implicitFree bool
	limit        int
}

func defaultConfig() config {
	return config{
		ctx:          context.Background(),
		implicitFree: true,
	}
}

// WithContext makes the cursor honor ctx: cancellation stops iteration
// between candidate assignments. Abandonment is not an error.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithImplicitFreeSites toggles substructure mode (default true). Disabled,
// fragment and candidate degrees must be equal: the fragment describes a
// complete structure.
func WithImplicitFreeSites(on bool) Option {
	return func(c *config) { c.implicitFree = on }
}

// WithLimit caps the number of matches the cursor will yield. Zero or
// negative means unlimited.
func WithLimit(n int) Option {
	return func(c *config) { c.limit = n }
}
