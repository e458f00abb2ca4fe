// Package layout: the breadth-first placer.

package layout

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/geo"
	"github.com/molvath/molvath/parts"
	"github.com/molvath/molvath/rings"
)

// chainTurn is the deflection from the incoming direction used for
// acyclic chain continuation.
const chainTurn = math.Pi / 6

// Place assigns coordinates to every atom that is not already Positioned.
// Already-positioned atoms are never moved. When anything was placed the
// molecule's version is bumped via Touch.
//
// Returns ErrNilMolecule for a nil molecule; an empty or fully positioned
// molecule is a no-op.
// Complexity: ring perception plus O(A + B) placement.
// Determinism: identical molecules produce identical coordinates.
func Place(m *core.Molecule, opts ...Option) error {
	if m == nil {
		return ErrNilMolecule
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if m.AtomCount() == 0 {
		return nil
	}

	// 1) Seed fixed anchors from atoms that already carry coordinates.
	p := &placer{
		m:      m,
		cfg:    cfg,
		pos:    make(map[core.AtomID]r2.Vec, m.AtomCount()),
		placed: make(map[core.AtomID]bool, m.AtomCount()),
		phase:  make(map[core.AtomID]float64, m.AtomCount()),
	}
	for _, a := range m.Atoms() {
		if a.Positioned {
			p.pos[a.ID] = r2.Vec{X: a.X, Y: a.Y}
			p.placed[a.ID] = true
			p.phase[a.ID] = 1
		}
	}

	// 2) Perceive rings once; every closure reuses the result.
	if cfg.ringAware {
		res, err := rings.Perceive(m)
		if err != nil {
			return err
		}
		if len(res.Rings) > 0 {
			p.res = res
		}
	}

	// 3) Lay out components left to right. Components with fixed anchors
	// stay where their anchors put them.
	comps, err := parts.Components(m)
	if err != nil {
		return err
	}
	nextX := 0.0
	for _, comp := range comps {
		p.component(comp, nextX)
		for _, id := range comp {
			if right := p.pos[id].X + 2*cfg.bondLength; right > nextX {
				nextX = right
			}
		}
	}

	// 4) Write back and flag the edit for memoized derivations.
	if len(p.fresh) == 0 {
		return nil
	}
	for _, id := range p.fresh {
		a, err := m.Atom(id)
		if err != nil {
			return err
		}
		v := p.pos[id]
		a.X, a.Y = v.X, v.Y
		a.Positioned = true
	}
	m.Touch()

	return nil
}

// placer carries the mutable state of one Place run.
type placer struct {
	m   *core.Molecule
	cfg config
	res *rings.Result // nil when ring-unaware or acyclic

	pos    map[core.AtomID]r2.Vec
	placed map[core.AtomID]bool
	phase  map[core.AtomID]float64 // zig-zag deflection sign, +1 or -1
	fresh  []core.AtomID           // placed by this run, in placement order
}

// put records a freshly computed position.
func (p *placer) put(id core.AtomID, at r2.Vec, phase float64) {
	p.pos[id] = at
	p.placed[id] = true
	p.phase[id] = phase
	p.fresh = append(p.fresh, id)
}

// component places one connected component. Fixed members seed the
// frontier; without any, the root opens a fresh frontier at originX.
func (p *placer) component(comp []core.AtomID, originX float64) {
	queue := make([]core.AtomID, 0, len(comp))
	for _, id := range comp {
		if p.placed[id] {
			queue = append(queue, id)
		}
	}
	if len(queue) == 0 {
		root := pickRoot(p.m, comp)
		p.put(root, r2.Vec{X: originX}, 1)
		queue = append(queue, root)
	}

	for head := 0; head < len(queue); head++ {
		p.visit(queue[head], &queue)
	}
}

// pickRoot returns the lowest-ID terminal atom, else the lowest atom ID.
func pickRoot(m *core.Molecule, comp []core.AtomID) core.AtomID {
	for _, id := range comp {
		if deg, err := m.Degree(id); err == nil && deg == 1 {
			return id
		}
	}

	return comp[0]
}

// visit places the unplaced neighbors of anchor: ring closures first,
// then chain and branch placement.
func (p *placer) visit(anchor core.AtomID, queue *[]core.AtomID) {
	if p.res != nil {
		for _, ri := range p.res.RingsWithAtom(anchor) {
			p.closeRing(p.res.Rings[ri], anchor, queue)
		}
	}

	nbrs, err := p.m.NeighborIDs(anchor)
	if err != nil {
		return
	}
	for _, nb := range nbrs {
		if p.placed[nb] {
			continue
		}
		p.chain(anchor, nb)
		*queue = append(*queue, nb)
	}
}

// chain places nb at bond length from anchor. A single placed neighbor
// continues the chain with the alternating deflection; several placed
// neighbors branch into the widest free gap.
func (p *placer) chain(anchor, nb core.AtomID) {
	at := p.pos[anchor]
	angles := p.occupiedAngles(anchor)

	var theta float64
	switch len(angles) {
	case 0:
		theta = p.phase[anchor] * chainTurn
	case 1:
		incoming := geo.NormalizeAngle(angles[0] + math.Pi)
		theta = incoming + p.phase[anchor]*chainTurn
	default:
		start, size := largestGap(angles)
		theta = start + size/2
	}

	p.put(nb, r2.Add(at, r2.Scale(p.cfg.bondLength, geo.FromAngle(theta))), -p.phase[anchor])
}

// closeRing places the unplaced members of ring on the circumcircle
// through anchor. Placed members are never moved, so heavily bridged
// systems may distort; isolated and edge-fused rings come out regular.
func (p *placer) closeRing(ring rings.Ring, anchor core.AtomID, queue *[]core.AtomID) {
	n := len(ring.Atoms)
	k := -1
	unplaced := 0
	for i, id := range ring.Atoms {
		if id == anchor {
			k = i
		}
		if !p.placed[id] {
			unplaced++
		}
	}
	if k < 0 || unplaced == 0 {
		return
	}

	radius := p.cfg.bondLength / (2 * math.Sin(math.Pi/float64(n)))
	center := p.ringCenter(ring, k, radius)

	// Walk the ring from the anchor. Both rotation senses are scored
	// against members already placed; the closer one wins, so a fused
	// ring matches the orientation of the ring it shares an edge with.
	step := 2 * math.Pi / float64(n)
	theta0 := geo.Angle(r2.Sub(p.pos[anchor], center))
	rot, bestScore := 1.0, math.Inf(1)
	for _, cand := range []float64{1, -1} {
		score := 0.0
		for i := 1; i < n; i++ {
			id := ring.Atoms[(k+i)%n]
			if !p.placed[id] {
				continue
			}
			slot := r2.Add(center, r2.Scale(radius, geo.FromAngle(theta0+cand*float64(i)*step)))
			score += geo.Dist(slot, p.pos[id])
		}
		if score < bestScore {
			rot, bestScore = cand, score
		}
	}

	for i := 1; i < n; i++ {
		id := ring.Atoms[(k+i)%n]
		if p.placed[id] {
			continue
		}
		at := r2.Add(center, r2.Scale(radius, geo.FromAngle(theta0+rot*float64(i)*step)))
		p.put(id, at, 1)
		*queue = append(*queue, id)
	}
}

// ringCenter picks the circumcircle center for a ring closed from the
// anchor at ring index k. An already-placed ring edge dictates the center
// exactly (the new ring grows off that edge, away from placed geometry);
// otherwise the center goes into the anchor's widest free gap.
func (p *placer) ringCenter(ring rings.Ring, k int, radius float64) r2.Vec {
	n := len(ring.Atoms)
	anchor := ring.Atoms[k]
	at := p.pos[anchor]

	for _, off := range []int{1, n - 1} {
		nb := ring.Atoms[(k+off)%n]
		if !p.placed[nb] {
			continue
		}
		mid := geo.Lerp(at, p.pos[nb], 0.5)
		perp := geo.Unit(geo.Perp(r2.Sub(p.pos[nb], at)))
		apothem := radius * math.Cos(math.Pi/float64(n))
		if r2.Dot(perp, p.awayDir(anchor, nb)) < 0 {
			return r2.Sub(mid, r2.Scale(apothem, perp))
		}

		return r2.Add(mid, r2.Scale(apothem, perp))
	}

	if dir, ok := p.gapDir(anchor); ok {
		return r2.Add(at, r2.Scale(radius, dir))
	}

	return r2.Add(at, r2.Scale(radius, geo.FromAngle(math.Pi/2)))
}

// awayDir points away from the placed neighbors of id, excluding skip.
// Zero when there are none.
func (p *placer) awayDir(id, skip core.AtomID) r2.Vec {
	nbrs, err := p.m.NeighborIDs(id)
	if err != nil {
		return r2.Vec{}
	}
	var sum r2.Vec
	for _, nb := range nbrs {
		if nb == skip || !p.placed[nb] {
			continue
		}
		sum = r2.Add(sum, r2.Sub(p.pos[nb], p.pos[id]))
	}

	return r2.Scale(-1, sum)
}

// gapDir bisects the widest free angular gap around id. ok is false when
// id has no placed neighbors.
func (p *placer) gapDir(id core.AtomID) (r2.Vec, bool) {
	angles := p.occupiedAngles(id)
	if len(angles) == 0 {
		return r2.Vec{}, false
	}
	start, size := largestGap(angles)

	return geo.FromAngle(start + size/2), true
}

// occupiedAngles returns the sorted directions from id to its placed
// neighbors, normalized to [0, 2π).
func (p *placer) occupiedAngles(id core.AtomID) []float64 {
	nbrs, err := p.m.NeighborIDs(id)
	if err != nil {
		return nil
	}
	var angles []float64
	for _, nb := range nbrs {
		if !p.placed[nb] {
			continue
		}
		angles = append(angles, geo.NormalizeAngle(geo.Angle(r2.Sub(p.pos[nb], p.pos[id]))))
	}
	sort.Float64s(angles)

	return angles
}

// largestGap returns the start and width of the widest gap between
// consecutive sorted angles, including the wrap-around gap; ties keep
// the wrap-around, then the earliest pair.
func largestGap(angles []float64) (start, size float64) {
	last := angles[len(angles)-1]
	start, size = last, 2*math.Pi-(last-angles[0])
	for i := 1; i < len(angles); i++ {
		if g := angles[i] - angles[i-1]; g > size {
			start, size = angles[i-1], g
		}
	}

	return start, size
}
