// Package match: search validation and the static matching plan.

package match

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

// Search validates the fragment against the target and returns a Cursor
// positioned before the first match.
//
// Returns ErrFragmentInvalid for a nil fragment/pattern or marks that
// reference missing pattern members, ErrEmptyFragment for a pattern with
// no atoms, and ErrNilTarget for a nil target. A fragment larger than the
// target is valid and simply yields nothing.
//
// Complexity: worst-case exponential in fragment size, as for any subgraph
// isomorphism; the most-constrained-first order and anchored candidate
// lists keep chemical inputs fast.
// Determinism: matches are yielded in a fixed order for identical inputs.
func Search(frag *Fragment, target *core.Molecule, opts ...Option) (*Cursor, error) {
	if frag == nil || frag.mol == nil {
		return nil, ErrFragmentInvalid
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	if frag.mol.AtomCount() == 0 {
		return nil, ErrEmptyFragment
	}
	for id := range frag.freeAtoms {
		if !frag.mol.HasAtom(id) {
			return nil, fmt.Errorf("match: free-atom mark %d: %w", id, ErrFragmentInvalid)
		}
	}
	for id := range frag.freeBonds {
		if !frag.mol.HasBond(id) {
			return nil, fmt.Errorf("match: free-bond mark %d: %w", id, ErrFragmentInvalid)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	plan := buildPlan(frag)

	return &Cursor{
		frag:    frag,
		target:  target,
		cfg:     cfg,
		plan:    plan,
		version: target.Version(),
		assign:  make(map[core.AtomID]core.AtomID, len(plan.order)),
		used:    make(map[core.AtomID]bool, len(plan.order)),
	}, nil
}

// plan is the static part of a search: visiting order and per-atom
// fragment adjacency, computed once per Search.
type plan struct {
	order    []core.AtomID
	orderPos map[core.AtomID]int
	adj      map[core.AtomID][]core.Incidence
	degree   map[core.AtomID]int
}

// buildPlan orders fragment atoms most-constrained-first: start at the
// highest-degree atom (ties by ascending ID), then repeatedly take the
// highest-degree atom adjacent to the ordered prefix. Disconnected
// fragments fall back to the best unordered atom and continue.
func buildPlan(frag *Fragment) plan {
	ids := frag.mol.AtomIDs()
	p := plan{
		orderPos: make(map[core.AtomID]int, len(ids)),
		adj:      make(map[core.AtomID][]core.Incidence, len(ids)),
		degree:   make(map[core.AtomID]int, len(ids)),
	}
	for _, id := range ids {
		incs, _ := frag.mol.Neighbors(id)
		p.adj[id] = incs
		p.degree[id] = len(incs)
	}

	inOrder := make(map[core.AtomID]bool, len(ids))
	for len(p.order) < len(ids) {
		best := core.AtomID(-1)
		bestConnected := false
		for _, id := range ids {
			if inOrder[id] {
				continue
			}
			connected := false
			for _, inc := range p.adj[id] {
				if inOrder[inc.Atom.ID] {
					connected = true
					break
				}
			}
			switch {
			case best == core.AtomID(-1):
			case connected != bestConnected:
				if !connected {
					continue
				}
			case p.degree[id] <= p.degree[best]:
				continue
			}
			best, bestConnected = id, connected
		}
		p.orderPos[best] = len(p.order)
		p.order = append(p.order, best)
		inOrder[best] = true
	}

	return p
}
