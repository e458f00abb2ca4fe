// Package parts: component partition, subgraph materialization, and the
// scoped-detach combinator.

package parts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/molvath/molvath/core"
)

// Sentinel errors for component operations.
var (
	// ErrNilMolecule indicates a nil molecule argument.
	ErrNilMolecule = errors.New("parts: nil molecule")

	// ErrNilFunc indicates WithDetached was called without a callback.
	ErrNilFunc = errors.New("parts: nil callback")
)

// Components partitions the molecule into connected components over live
// (non-detached) bonds. Every component is sorted ascending; components are
// ordered by their smallest member. Isolated atoms form singleton
// components.
// Complexity: O(A + B).
// Determinism: identical molecule state yields an identical partition.
func Components(m *core.Molecule) ([][]core.AtomID, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}

	visited := make(map[core.AtomID]bool, m.AtomCount())
	var comps [][]core.AtomID

	// Roots in ascending ID order: each root is the smallest member of
	// its component, so the outer order needs no extra sort.
	for _, root := range m.AtomIDs() {
		if visited[root] {
			continue
		}
		visited[root] = true
		comp := []core.AtomID{root}
		queue := []core.AtomID{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			nbrs, _ := m.NeighborIDs(cur)
			for _, next := range nbrs {
				if visited[next] {
					continue
				}
				visited[next] = true
				comp = append(comp, next)
				queue = append(queue, next)
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}

	return comps, nil
}

// Subgraphs materializes each component as an independent Molecule via
// induced copy: atom and bond IDs are preserved, nothing is shared with the
// source, and mutations on a copy never touch the original. Order matches
// Components.
// Complexity: O(C·(A + B)) for C components.
func Subgraphs(m *core.Molecule) ([]*core.Molecule, error) {
	comps, err := Components(m)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Molecule, len(comps))
	for i, comp := range comps {
		keep := make(map[core.AtomID]bool, len(comp))
		for _, id := range comp {
			keep[id] = true
		}
		out[i] = m.InducedCopy(keep)
	}

	return out, nil
}

// WithDetached detaches the given bonds, runs fn, and restores exactly
// those bonds afterwards - on success, on error, and on panic. Bonds are
// restored in reverse detach order (stack discipline), so nesting composes
// and pre-existing detachments stay untouched.
//
// A failing detach (unknown or already-detached bond) aborts before fn
// runs; bonds detached up to that point are restored.
func WithDetached(m *core.Molecule, bonds []core.BondID, fn func() error) error {
	if m == nil {
		return ErrNilMolecule
	}
	if fn == nil {
		return ErrNilFunc
	}

	detached := 0
	defer func() { m.RestoreLast(detached) }()

	for _, id := range bonds {
		if err := m.DetachBond(id); err != nil {
			return fmt.Errorf("parts: detach bond %d: %w", id, err)
		}
		detached++
	}

	return fn()
}

// Splitter memoizes Components for one molecule, recomputing only when the
// structural version changes. Single-threaded, like the molecule it wraps.
type Splitter struct {
	m       *core.Molecule
	version uint64
	comps   [][]core.AtomID
}

// NewSplitter returns a Splitter for m.
func NewSplitter(m *core.Molecule) *Splitter {
	return &Splitter{m: m}
}

// Components returns the current partition, recomputing when stale.
// The returned slices are shared: callers must not modify them.
func (s *Splitter) Components() ([][]core.AtomID, error) {
	if s.m == nil {
		return nil, ErrNilMolecule
	}
	if s.comps != nil && s.version == s.m.Version() {
		return s.comps, nil
	}

	comps, err := Components(s.m)
	if err != nil {
		return nil, err
	}
	s.comps = comps
	s.version = s.m.Version()

	return comps, nil
}

// Count returns the number of components, recomputing when stale.
func (s *Splitter) Count() (int, error) {
	comps, err := s.Components()
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
