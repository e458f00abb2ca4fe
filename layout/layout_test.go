package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/layout"
)

// mustAtom adds an atom or fails the test.
func mustAtom(t *testing.T, m *core.Molecule, symbol string, opts ...core.AtomOption) core.AtomID {
	t.Helper()
	id, err := m.AddAtom(symbol, opts...)
	require.NoError(t, err)
	return id
}

// mustBond adds a bond or fails the test.
func mustBond(t *testing.T, m *core.Molecule, a1, a2 core.AtomID, order core.BondOrder) core.BondID {
	t.Helper()
	id, err := m.AddBond(a1, a2, order)
	require.NoError(t, err)
	return id
}

// benzene builds a six-ring of carbons.
func benzene(t *testing.T) *core.Molecule {
	t.Helper()
	m := core.NewMolecule()
	ids := make([]core.AtomID, 6)
	for i := range ids {
		ids[i] = mustAtom(t, m, "C")
	}
	for i := range ids {
		mustBond(t, m, ids[i], ids[(i+1)%6], core.OrderAromatic)
	}
	return m
}

// dist returns the distance between two placed atoms.
func dist(t *testing.T, m *core.Molecule, a, b core.AtomID) float64 {
	t.Helper()
	pa, err := m.Atom(a)
	require.NoError(t, err)
	pb, err := m.Atom(b)
	require.NoError(t, err)
	return math.Hypot(pb.X-pa.X, pb.Y-pa.Y)
}

func TestPlace_Validation(t *testing.T) {
	require.ErrorIs(t, layout.Place(nil), layout.ErrNilMolecule)
	require.NoError(t, layout.Place(core.NewMolecule()))
}

func TestPlace_ChainBondLengths(t *testing.T) {
	m := core.NewMolecule()
	ids := make([]core.AtomID, 4)
	for i := range ids {
		ids[i] = mustAtom(t, m, "C")
	}
	for i := 1; i < 4; i++ {
		mustBond(t, m, ids[i-1], ids[i], core.Single)
	}

	require.NoError(t, layout.Place(m))

	for _, a := range m.Atoms() {
		assert.True(t, a.Positioned)
	}
	for i := 1; i < 4; i++ {
		assert.InDelta(t, 1.0, dist(t, m, ids[i-1], ids[i]), 1e-9)
	}

	// Zig-zag, not a straight line: the four atoms are not collinear.
	a1, _ := m.Atom(ids[0])
	a2, _ := m.Atom(ids[1])
	a3, _ := m.Atom(ids[2])
	cross := (a2.X-a1.X)*(a3.Y-a1.Y) - (a2.Y-a1.Y)*(a3.X-a1.X)
	assert.NotZero(t, cross)
}

// A lone six-ring must close into a regular hexagon: every bond at bond
// length and every vertex at circumradius from the centroid.
func TestPlace_HexagonClosure(t *testing.T) {
	m := benzene(t)
	require.NoError(t, layout.Place(m))

	for _, b := range m.Bonds() {
		assert.InDelta(t, 1.0, dist(t, m, b.A1, b.A2), 1e-9)
	}

	var cx, cy float64
	for _, a := range m.Atoms() {
		cx += a.X / 6
		cy += a.Y / 6
	}
	for _, a := range m.Atoms() {
		assert.InDelta(t, 1.0, math.Hypot(a.X-cx, a.Y-cy), 1e-9)
	}
}

// Fused rings continue each other's geometry: every naphthalene bond,
// the shared edge included, comes out at bond length.
func TestPlace_FusedRings(t *testing.T) {
	m := benzene(t)
	extra := make([]core.AtomID, 4)
	for i := range extra {
		extra[i] = mustAtom(t, m, "C")
	}
	mustBond(t, m, core.AtomID(1), extra[0], core.OrderAromatic)
	mustBond(t, m, extra[0], extra[1], core.OrderAromatic)
	mustBond(t, m, extra[1], extra[2], core.OrderAromatic)
	mustBond(t, m, extra[2], extra[3], core.OrderAromatic)
	mustBond(t, m, extra[3], core.AtomID(6), core.OrderAromatic)

	require.NoError(t, layout.Place(m))

	for _, b := range m.Bonds() {
		assert.InDeltaf(t, 1.0, dist(t, m, b.A1, b.A2), 1e-9,
			"bond %d-%d stretched", b.A1, b.A2)
	}

	// No two atoms collapsed onto each other.
	atoms := m.Atoms()
	for i := range atoms {
		for j := i + 1; j < len(atoms); j++ {
			d := math.Hypot(atoms[i].X-atoms[j].X, atoms[i].Y-atoms[j].Y)
			assert.Greater(t, d, 0.5)
		}
	}
}

func TestPlace_RingUnawareLeavesOpenRing(t *testing.T) {
	m := benzene(t)
	require.NoError(t, layout.Place(m, layout.WithRingAware(false)))

	stretched := 0
	for _, b := range m.Bonds() {
		if dist(t, m, b.A1, b.A2) > 1.5 {
			stretched++
		}
	}
	assert.Equal(t, 1, stretched, "exactly the closing bond is stretched")
}

func TestPlace_FixedAtomsNeverMove(t *testing.T) {
	m := core.NewMolecule()
	fixed := mustAtom(t, m, "C", core.WithCoords(5, -3))
	free := mustAtom(t, m, "C")
	mustBond(t, m, fixed, free, core.Single)

	require.NoError(t, layout.Place(m))

	a, err := m.Atom(fixed)
	require.NoError(t, err)
	assert.Equal(t, 5.0, a.X)
	assert.Equal(t, -3.0, a.Y)

	b, err := m.Atom(free)
	require.NoError(t, err)
	assert.True(t, b.Positioned)
	assert.InDelta(t, 1.0, dist(t, m, fixed, free), 1e-9)
}

func TestPlace_ComponentsSpreadHorizontally(t *testing.T) {
	m := core.NewMolecule()
	a1 := mustAtom(t, m, "C")
	a2 := mustAtom(t, m, "C")
	mustBond(t, m, a1, a2, core.Single)
	b1 := mustAtom(t, m, "O")
	b2 := mustAtom(t, m, "O")
	mustBond(t, m, b1, b2, core.Single)

	require.NoError(t, layout.Place(m))

	pa1, _ := m.Atom(a1)
	pa2, _ := m.Atom(a2)
	pb1, _ := m.Atom(b1)
	pb2, _ := m.Atom(b2)
	maxA := math.Max(pa1.X, pa2.X)
	minB := math.Min(pb1.X, pb2.X)
	assert.Greater(t, minB, maxA, "second component starts right of the first")
}

func TestPlace_DeterministicAndIdempotent(t *testing.T) {
	build := func() *core.Molecule {
		m := benzene(t)
		c := mustAtom(t, m, "C")
		mustBond(t, m, core.AtomID(1), c, core.Single)
		return m
	}

	m1, m2 := build(), build()
	require.NoError(t, layout.Place(m1))
	require.NoError(t, layout.Place(m2))
	for _, a1 := range m1.Atoms() {
		a2, err := m2.Atom(a1.ID)
		require.NoError(t, err)
		assert.Equal(t, a1.X, a2.X)
		assert.Equal(t, a1.Y, a2.Y)
	}

	// Everything is positioned now; a second run changes nothing.
	v := m1.Version()
	require.NoError(t, layout.Place(m1))
	assert.Equal(t, v, m1.Version())
}

func TestPlace_BumpsVersionWhenPlacing(t *testing.T) {
	m := core.NewMolecule()
	mustAtom(t, m, "C")
	v := m.Version()

	require.NoError(t, layout.Place(m))
	assert.Greater(t, m.Version(), v)
}

func TestPlace_CustomBondLength(t *testing.T) {
	m := core.NewMolecule()
	a := mustAtom(t, m, "C")
	b := mustAtom(t, m, "C")
	mustBond(t, m, a, b, core.Single)

	require.NoError(t, layout.Place(m, layout.WithBondLength(2.5)))
	assert.InDelta(t, 2.5, dist(t, m, a, b), 1e-9)
}
