// Package rings: version-keyed memoization of perception results.

package rings

import "github.com/molvath/molvath/core"

// Perceiver memoizes Perceive for one molecule. Rings recomputes only when
// the molecule's structural version has changed since the cached run, so
// repeated queries between mutations are free.
//
// A Perceiver is single-threaded, like the molecule it wraps.
type Perceiver struct {
	m       *core.Molecule
	opts    []Option
	version uint64
	res     *Result
}

// New returns a Perceiver for m. The options apply to every recomputation.
func New(m *core.Molecule, opts ...Option) *Perceiver {
	return &Perceiver{m: m, opts: opts}
}

// Rings returns the current SSSR, recomputing when stale.
// The returned Result is shared: callers must not modify it.
func (p *Perceiver) Rings() (*Result, error) {
	if p.m == nil {
		return nil, ErrNilMolecule
	}
	if p.res != nil && p.version == p.m.Version() {
		return p.res, nil
	}

	res, err := Perceive(p.m, p.opts...)
	if err != nil {
		return nil, err
	}
	p.res = res
	p.version = p.m.Version()

	return res, nil
}

// Invalidate drops the cached result unconditionally.
func (p *Perceiver) Invalidate() { p.res = nil }
