// Package rings: SSSR perception.
//
// Perceive builds a BFS spanning forest, derives the fundamental cycle
// basis from the non-tree bonds, reduces the basis toward smallest rings
// under a bounded budget, and emits the result in canonical order through
// a red-black tree keyed by ring comparison.

package rings

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/molvath/molvath/core"
)

// liveBond is one non-detached bond with its endpoints, dense-indexed for
// the bitset arithmetic.
type liveBond struct {
	id     core.BondID
	a1, a2 core.AtomID
}

// Perceive computes the SSSR of m.
//
// Complexity: O(A + B) for the forest and basis; reduction is bounded by
// WithMaxAttempts candidate evaluations, each O(B/64) for the XOR plus
// O(ring) for the cycle check.
// Determinism: identical molecule state yields an identical Result.
func Perceive(m *core.Molecule, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Dense-index the live bonds, ascending bond ID.
	var bonds []liveBond
	bondIdx := make(map[core.BondID]int)
	for _, b := range m.Bonds() {
		if m.Detached(b.ID) {
			continue
		}
		bondIdx[b.ID] = len(bonds)
		bonds = append(bonds, liveBond{id: b.ID, a1: b.A1, a2: b.A2})
	}
	nbits := len(bonds)

	// 2) BFS spanning forest, roots and expansion in ascending atom ID.
	visited := make(map[core.AtomID]bool)
	parent := make(map[core.AtomID]core.AtomID)
	parentBond := make(map[core.AtomID]core.BondID)
	depth := make(map[core.AtomID]int)
	treeBond := make(map[core.BondID]bool)

	res := &Result{}
	for _, root := range m.AtomIDs() {
		if visited[root] {
			continue
		}
		res.Components++
		visited[root] = true
		queue := []core.AtomID{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			incs, _ := m.Neighbors(cur)
			for _, inc := range incs {
				next := inc.Atom.ID
				if visited[next] {
					continue
				}
				visited[next] = true
				parent[next] = cur
				parentBond[next] = inc.Bond.ID
				depth[next] = depth[cur] + 1
				treeBond[inc.Bond.ID] = true
				queue = append(queue, next)
			}
		}
	}

	// 3) One fundamental cycle per non-tree bond, ascending bond ID:
	//    the chord plus both tree paths up to the lowest common ancestor.
	var basis []Ring
	for _, lb := range bonds {
		if treeBond[lb.id] {
			continue
		}
		s := newEdgeSet(nbits)
		s.set(bondIdx[lb.id])
		x, y := lb.a1, lb.a2
		for depth[x] > depth[y] {
			s.set(bondIdx[parentBond[x]])
			x = parent[x]
		}
		for depth[y] > depth[x] {
			s.set(bondIdx[parentBond[y]])
			y = parent[y]
		}
		for x != y {
			s.set(bondIdx[parentBond[x]])
			x = parent[x]
			s.set(bondIdx[parentBond[y]])
			y = parent[y]
		}
		r, ok := ringFromEdges(s, bonds)
		if !ok {
			// Fundamental cycles are simple by construction.
			continue
		}
		basis = append(basis, r)
	}
	res.Basis = basis

	if len(basis) == 0 {
		return res, nil
	}

	// 4) Bounded reduction toward smallest rings.
	rd := &reducer{
		rings:    append([]Ring(nil), basis...),
		bonds:    bonds,
		maxOther: cfg.maxCombine - 1,
		budget:   cfg.maxAttempts,
	}
	sortRings(rd.rings)
	rd.run()
	res.Reductions = rd.reductions
	res.Truncated = rd.truncated

	// 5) Deterministic output order (and duplicate guard) via an ordered
	//    tree keyed by ring comparison.
	tree := redblacktree.Tree{
		Comparator: func(a, b interface{}) int {
			return compareRings(a.(Ring), b.(Ring))
		},
	}
	for _, r := range rd.rings {
		if _, found := tree.Get(r); !found {
			tree.Put(r, nil)
		}
	}
	itr := tree.Iterator()
	for itr.Next() {
		res.Rings = append(res.Rings, itr.Key().(Ring))
	}

	return res, nil
}

func sortRings(rs []Ring) {
	sort.Slice(rs, func(i, j int) bool { return compareRings(rs[i], rs[j]) < 0 })
}

// reducer carries the bounded basis-improvement search.
type reducer struct {
	rings      []Ring
	bonds      []liveBond
	maxOther   int // cycles combined per candidate, replaced one excluded
	budget     int
	attempts   int
	truncated  bool
	reductions int
}

// run replaces basis rings with strictly better symmetric differences until
// a fixpoint or budget exhaustion. Largest rings are attacked first; each
// improvement restarts the scan so the sort order stays current.
func (rd *reducer) run() {
	if rd.maxOther < 1 {
		return
	}
	improved := true
	for improved && !rd.truncated {
		improved = false
		for i := len(rd.rings) - 1; i >= 0 && !rd.truncated; i-- {
			rep, ok := rd.improve(i)
			if !ok {
				continue
			}
			rd.rings[i] = rep
			rd.reductions++
			sortRings(rd.rings)
			improved = true
			break
		}
	}
}

// improve searches for a strictly better replacement of rings[i].
func (rd *reducer) improve(i int) (Ring, bool) {
	return rd.search(i, 0, 0, rd.rings[i].edges)
}

// search extends the symmetric difference acc with ring indices ≥ from,
// excluding i, up to maxOther cycles deep. Replacement requires a strict
// improvement under compareRings, which makes every accepted step shrink
// the basis multiset and guarantees termination.
func (rd *reducer) search(i, from, chosen int, acc edgeSet) (Ring, bool) {
	for j := from; j < len(rd.rings); j++ {
		if j == i {
			continue
		}
		if rd.attempts >= rd.budget {
			rd.truncated = true
			return Ring{}, false
		}
		rd.attempts++

		cand := acc.xor(rd.rings[j].edges)
		if r, ok := ringFromEdges(cand, rd.bonds); ok && compareRings(r, rd.rings[i]) < 0 {
			return r, true
		}
		if chosen+1 < rd.maxOther {
			if r, ok := rd.search(i, j+1, chosen+1, cand); ok {
				return r, true
			}
			if rd.truncated {
				return Ring{}, false
			}
		}
	}

	return Ring{}, false
}

// ringFromEdges interprets the edge set as a single simple cycle and builds
// its canonical Ring. Returns false for anything else (paths, unions of
// cycles, fewer than three edges).
func ringFromEdges(s edgeSet, bonds []liveBond) (Ring, bool) {
	idx := s.indices()
	if len(idx) < 3 {
		return Ring{}, false
	}

	type arc struct {
		to   core.AtomID
		bond core.BondID
	}
	adj := make(map[core.AtomID][]arc, len(idx))
	for _, i := range idx {
		e := bonds[i]
		adj[e.a1] = append(adj[e.a1], arc{to: e.a2, bond: e.id})
		adj[e.a2] = append(adj[e.a2], arc{to: e.a1, bond: e.id})
	}

	start := core.AtomID(0)
	first := true
	for v, arcs := range adj {
		if len(arcs) != 2 {
			return Ring{}, false
		}
		if first || v < start {
			start, first = v, false
		}
	}

	// Walk from the smallest atom toward its smaller neighbor; that fixes
	// both rotation and reflection of the canonical form.
	var (
		atoms    []core.AtomID
		bondsOut []core.BondID
		idSum    int
	)
	cur := start
	incoming := core.BondID(-1)
	for {
		atoms = append(atoms, cur)
		idSum += int(cur)

		arcs := adj[cur]
		var step arc
		switch {
		case incoming == core.BondID(-1):
			step = arcs[0]
			if arcs[1].to < arcs[0].to {
				step = arcs[1]
			}
		case arcs[0].bond == incoming:
			step = arcs[1]
		default:
			step = arcs[0]
		}
		bondsOut = append(bondsOut, step.bond)
		incoming = step.bond
		cur = step.to

		if cur == start {
			break
		}
		if len(atoms) > len(idx) {
			return Ring{}, false
		}
	}
	// A disjoint union of cycles closes early: fewer atoms than edges.
	if len(atoms) != len(idx) {
		return Ring{}, false
	}

	return Ring{Atoms: atoms, Bonds: bondsOut, idSum: idSum, edges: s.clone()}, true
}
