// Package render: the Render entry point and bond dispatch.

package render

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/geo"
	"github.com/molvath/molvath/rings"
)

// Render emits the draw ops for m: bonds ascending by bond ID, then atom
// labels ascending by atom ID. Pure; m is never mutated.
//
// Returns ErrNilMolecule for a nil molecule and ErrUnpositioned (wrapped
// with the atom ID) when any atom lacks coordinates. Ring perception runs
// internally unless WithRings supplies a result.
// Complexity: O(A + B) past ring perception.
// Determinism: byte-identical op lists for identical molecule state.
func Render(m *core.Molecule, opts ...Option) (OpList, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate coordinates. Rendering an unplaced atom would silently
	// pile everything at the origin.
	atoms := m.Atoms()
	for _, a := range atoms {
		if !a.Positioned {
			return nil, fmt.Errorf("render: atom %d: %w", a.ID, ErrUnpositioned)
		}
	}

	// 2) Ring perception, reused for every side decision.
	res := cfg.rings
	if res == nil {
		var err error
		res, err = rings.Perceive(m)
		if err != nil {
			return nil, err
		}
	}

	// 3) Per-call lookup state: positions, incident counts (detached
	// bonds included - they exist and are drawn), label set.
	r := &renderer{
		m:   m,
		cfg: cfg,
		res: res,

		pos:      make(map[core.AtomID]r2.Vec, len(atoms)),
		incident: make(map[core.AtomID]int, len(atoms)),
		labeled:  make(map[core.AtomID]bool, len(atoms)),
	}
	for _, a := range atoms {
		r.pos[a.ID] = r2.Vec{X: a.X, Y: a.Y}
	}
	bonds := m.Bonds()
	for _, b := range bonds {
		r.incident[b.A1]++
		r.incident[b.A2]++
	}
	for _, a := range atoms {
		if needsLabel(a, r.incident[a.ID]) {
			r.labeled[a.ID] = true
		}
	}

	// 4) Emit in the fixed order.
	var ops OpList
	for _, b := range bonds {
		ops = append(ops, r.bond(b)...)
	}
	for _, a := range atoms {
		if r.labeled[a.ID] {
			ops = append(ops, r.label(a)...)
		}
	}

	return ops, nil
}

// renderer carries the lookup state of one Render call.
type renderer struct {
	m   *core.Molecule
	cfg config
	res *rings.Result

	pos      map[core.AtomID]r2.Vec
	incident map[core.AtomID]int
	labeled  map[core.AtomID]bool
}

// needsLabel reports whether the atom gets a text label. Bare bonded
// carbons stay implicit in a skeletal drawing.
func needsLabel(a *core.Atom, incident int) bool {
	return a.Symbol != "C" || a.Charge != 0 || a.Multiplicity > 1 || incident == 0
}

// labelClip is the clearance radius bond lines keep from a labeled atom.
func (r *renderer) labelClip() float64 { return r.cfg.fontSize * 0.6 }

// segment returns the bond endpoints, clipped back from labeled atoms.
func (r *renderer) segment(b *core.Bond) (r2.Vec, r2.Vec) {
	var ra, rb float64
	if r.labeled[b.A1] {
		ra = r.labelClip()
	}
	if r.labeled[b.A2] {
		rb = r.labelClip()
	}

	return geo.ClipSegment(r.pos[b.A1], r.pos[b.A2], ra, rb)
}

// width resolves the stroke width for b, honoring PropLineWidth.
func (r *renderer) width(b *core.Bond) float64 {
	w := r.cfg.lineWidth
	if f, ok := b.Props[core.PropLineWidth]; ok && f > 0 {
		w *= f
	}

	return w
}

// bond renders one bond in its order- and stereo-specific form.
func (r *renderer) bond(b *core.Bond) OpList {
	a1, a2 := r.segment(b)
	w := r.width(b)

	switch b.Order {
	case core.Double:
		return r.double(b, a1, a2, w)
	case core.Triple:
		return r.triple(a1, a2, w)
	case core.OrderAromatic:
		// In a perceived ring the delocalized bond draws as a double on
		// the ring side; a stray aromatic bond is just a line.
		if len(r.res.RingsWithBond(b.ID)) > 0 {
			return r.double(b, a1, a2, w)
		}
		return OpList{line(a1, a2, w)}
	}

	// Single and coordination orders.
	switch b.Stereo {
	case core.StereoWedge:
		return r.wedge(a1, a2)
	case core.StereoHatch:
		return r.hatch(a1, a2, w)
	case core.StereoWavy:
		return r.wavy(a1, a2, w)
	default:
		return OpList{line(a1, a2, w)}
	}
}

// side decides where the second line of a double bond goes: +1 or -1 name
// the two sides of the directed A1→A2 axis, 0 means no side wins and the
// symmetric form is used.
//
// Priority: PropOffsetSide override, ring content, then neighbor
// positions. Sums of geo.Side are exact integers, so a tie is an exact
// zero and falls through deterministically. Reversing the stored endpoint
// order flips both the axis and the sign, leaving the drawn side
// geometrically unchanged.
func (r *renderer) side(b *core.Bond) int {
	if v, ok := b.Props[core.PropOffsetSide]; ok && v != 0 {
		if v < 0 {
			return -1
		}
		return 1
	}

	p1, p2 := r.pos[b.A1], r.pos[b.A2]
	if idx := r.res.RingsWithBond(b.ID); len(idx) > 0 {
		ring := r.res.Rings[idx[0]]
		sum := 0
		for _, id := range ring.Atoms {
			if id == b.A1 || id == b.A2 {
				continue
			}
			sum += geo.Side(r.pos[id], p1, p2)
		}
		if sum != 0 {
			return sign(sum)
		}
	}

	sum := 0
	for _, end := range []core.AtomID{b.A1, b.A2} {
		nbrs, err := r.m.NeighborIDs(end)
		if err != nil {
			continue
		}
		for _, nb := range nbrs {
			if nb == b.A1 || nb == b.A2 {
				continue
			}
			sum += geo.Side(r.pos[nb], p1, p2)
		}
	}

	return sign(sum)
}

// double renders the two-line form: the centerline plus one offset line
// on the winning side, trimmed at ends shared with other bonds; with no
// winning side, two symmetric lines at half spacing and no centerline.
func (r *renderer) double(b *core.Bond, a1, a2 r2.Vec, w float64) OpList {
	s := r.side(b)
	if s == 0 {
		u1, u2 := geo.FindParallel(a1, a2, r.cfg.bondSpacing/2)
		d1, d2 := geo.FindParallel(a1, a2, -r.cfg.bondSpacing/2)
		return OpList{line(u1, u2, w), line(d1, d2, w)}
	}

	o1, o2 := geo.FindParallel(a1, a2, float64(s)*r.cfg.bondSpacing)
	t1, t2 := 0.0, 1.0
	if r.incident[b.A1] > 1 {
		t1 = r.cfg.innerTrim
	}
	if r.incident[b.A2] > 1 {
		t2 = 1 - r.cfg.innerTrim
	}

	return OpList{
		line(a1, a2, w),
		line(geo.Lerp(o1, o2, t1), geo.Lerp(o1, o2, t2), w),
	}
}

// triple renders the centerline and two symmetric parallels at full
// spacing.
func (r *renderer) triple(a1, a2 r2.Vec, w float64) OpList {
	u1, u2 := geo.FindParallel(a1, a2, r.cfg.bondSpacing)
	d1, d2 := geo.FindParallel(a1, a2, -r.cfg.bondSpacing)

	return OpList{line(a1, a2, w), line(u1, u2, w), line(d1, d2, w)}
}

// line builds a LineOp between two points.
func line(a, b r2.Vec, w float64) LineOp {
	return LineOp{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Width: w}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
