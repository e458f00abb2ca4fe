// Package match: the backtracking cursor.

package match

import "github.com/molvath/molvath/core"

// frame is one level of the assignment stack: the candidates for one
// fragment position and the index of the next one to try.
type frame struct {
	pos        int
	candidates []core.AtomID
	idx        int
	assigned   bool
	chosen     core.AtomID
}

// Cursor enumerates matches lazily. It is an explicit state machine:
// Next resumes from the exact backtracking point of the previous yield.
// A Cursor is bound to one Search call and cannot be restarted; run a new
// Search instead. Single-threaded, like the molecule it reads.
type Cursor struct {
	frag    *Fragment
	target  *core.Molecule
	cfg     config
	plan    plan
	version uint64

	assign map[core.AtomID]core.AtomID // fragment atom → target atom
	used   map[core.AtomID]bool        // target atoms already taken
	stack  []*frame

	started bool
	closed  bool
	yielded int
	err     error
}

// Next returns the next match. ok is false when the search space is
// exhausted, the limit is reached, the cursor is closed, the context is
// cancelled, or the target mutated (only the last one is an error - see
// Err).
func (c *Cursor) Next() (Match, bool) {
	if c.closed || c.err != nil {
		return Match{}, false
	}
	if c.target.Version() != c.version {
		c.err = ErrTargetMutated
		c.closed = true
		return Match{}, false
	}
	if c.cfg.limit > 0 && c.yielded >= c.cfg.limit {
		c.closed = true
		return Match{}, false
	}

	if !c.started {
		c.started = true
		c.push(0)
	}

	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]

		// Release the frame's previous choice (resume or backtrack).
		if top.assigned {
			delete(c.assign, c.plan.order[top.pos])
			delete(c.used, top.chosen)
			top.assigned = false
		}

		// Cooperative cancellation between candidate assignments.
		if c.cfg.ctx.Err() != nil {
			c.closed = true
			return Match{}, false
		}

		advanced := false
		for top.idx < len(top.candidates) {
			cand := top.candidates[top.idx]
			top.idx++
			if !c.compatible(top.pos, cand) {
				continue
			}
			fa := c.plan.order[top.pos]
			c.assign[fa] = cand
			c.used[cand] = true
			top.assigned = true
			top.chosen = cand
			advanced = true
			break
		}
		if !advanced {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}

		if top.pos == len(c.plan.order)-1 {
			c.yielded++
			return c.buildMatch(), true
		}
		c.push(top.pos + 1)
	}

	c.closed = true

	return Match{}, false
}

// All drains the remaining matches (respecting WithLimit) and closes the
// cursor.
func (c *Cursor) All() []Match {
	var out []Match
	for {
		m, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, m)
	}

	return out
}

// Close abandons the search. Idempotent; never an error.
func (c *Cursor) Close() { c.closed = true }

// Err reports why iteration stopped early. Only a mutated target is an
// error; exhaustion, limits, Close, and context cancellation all end the
// iteration with a nil Err.
func (c *Cursor) Err() error { return c.err }

// push opens the frame for position pos. With an already-assigned fragment
// neighbor the candidates are the target neighbors of its image (anchored
// search); otherwise every target atom is a candidate, ascending.
func (c *Cursor) push(pos int) {
	fa := c.plan.order[pos]
	var cands []core.AtomID
	anchored := false
	for _, inc := range c.plan.adj[fa] {
		if ta, ok := c.assign[inc.Atom.ID]; ok {
			nbrs, _ := c.target.NeighborIDs(ta)
			cands = nbrs
			anchored = true
			break
		}
	}
	if !anchored {
		cands = c.target.AtomIDs()
	}
	c.stack = append(c.stack, &frame{pos: pos, candidates: cands})
}

// compatible checks candidate cand for fragment position pos: injectivity,
// element (unless the atom is free), the degree rule, and every pattern
// bond into the ordered prefix with order equality (unless the bond is
// free).
func (c *Cursor) compatible(pos int, cand core.AtomID) bool {
	if c.used[cand] {
		return false
	}
	fa := c.plan.order[pos]
	fAtom, _ := c.frag.mol.Atom(fa)
	tAtom, err := c.target.Atom(cand)
	if err != nil {
		return false
	}

	if !c.frag.freeAtoms[fa] && fAtom.Symbol != tAtom.Symbol {
		return false
	}

	tDeg, _ := c.target.Degree(cand)
	fDeg := c.plan.degree[fa]
	if tDeg < fDeg {
		return false
	}
	if !c.cfg.implicitFree && tDeg != fDeg {
		return false
	}

	for _, inc := range c.plan.adj[fa] {
		ta, ok := c.assign[inc.Atom.ID]
		if !ok {
			continue
		}
		tb, ok := c.target.BondBetween(cand, ta)
		if !ok {
			return false
		}
		if !c.frag.freeBonds[inc.Bond.ID] && tb.Order != inc.Bond.Order {
			return false
		}
	}

	return true
}

// buildMatch snapshots the full assignment. Every fragment bond has a
// target image by construction: both endpoints are assigned and the bond
// was checked when the later endpoint was placed.
func (c *Cursor) buildMatch() Match {
	m := Match{
		Atoms: make(map[core.AtomID]core.AtomID, len(c.assign)),
		Bonds: make(map[core.BondID]core.BondID, c.frag.mol.BondCount()),
	}
	for fa, ta := range c.assign {
		m.Atoms[fa] = ta
	}
	for _, fb := range c.frag.mol.Bonds() {
		if c.frag.mol.Detached(fb.ID) {
			continue
		}
		tb, ok := c.target.BondBetween(m.Atoms[fb.A1], m.Atoms[fb.A2])
		if ok {
			m.Bonds[fb.ID] = tb.ID
		}
	}

	return m
}
