package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molvath/molvath/builder"
	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/parts"
)

// doubleCount returns how many non-coordination double bonds touch id.
func doubleCount(t *testing.T, m *core.Molecule, id core.AtomID) int {
	t.Helper()
	n := 0
	for _, b := range m.Bonds() {
		if (b.A1 == id || b.A2 == id) && b.Order == core.Double {
			n++
		}
	}
	return n
}

func TestBuild_Validation(t *testing.T) {
	_, err := builder.Build(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build(nil, nil, builder.Chain(0))
	require.ErrorIs(t, err, builder.ErrTooFewAtoms)

	_, err = builder.Build(nil, nil, builder.Ring(2))
	require.ErrorIs(t, err, builder.ErrTooFewAtoms)

	_, err = builder.Build(nil, nil, builder.AlternatingRing(2))
	require.ErrorIs(t, err, builder.ErrTooFewAtoms)

	_, err = builder.Build(nil, nil, builder.AlternatingRing(5))
	require.ErrorIs(t, err, builder.ErrBadSpec)

	_, err = builder.Build(nil, nil, builder.Star("C"))
	require.ErrorIs(t, err, builder.ErrTooFewAtoms)

	_, err = builder.Build(nil, nil, builder.FromTables(nil, nil))
	require.ErrorIs(t, err, builder.ErrTooFewAtoms)
}

func TestBuild_CoreErrorsSurface(t *testing.T) {
	// Empty element symbols are rejected by core, not masked.
	_, err := builder.Build(nil, nil, builder.Star("", "H"))
	require.ErrorIs(t, err, core.ErrEmptySymbol)

	// A duplicate pair in a bond table surfaces the core sentinel.
	atoms := []builder.AtomSpec{{Symbol: "C"}, {Symbol: "C"}}
	bonds := []builder.BondSpec{
		{A1: 0, A2: 1, Order: core.Single},
		{A1: 1, A2: 0, Order: core.Double},
	}
	_, err = builder.Build(nil, nil, builder.FromTables(atoms, bonds))
	require.ErrorIs(t, err, core.ErrDuplicateBond)
}

func TestChain_Defaults(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Chain(4))
	require.NoError(t, err)

	require.Equal(t, 4, m.AtomCount())
	require.Equal(t, 3, m.BondCount())
	for _, a := range m.Atoms() {
		assert.Equal(t, "C", a.Symbol)
	}
	for _, b := range m.Bonds() {
		assert.Equal(t, core.Single, b.Order)
	}
}

func TestChain_SingleAtom(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Chain(1))
	require.NoError(t, err)
	require.Equal(t, 1, m.AtomCount())
	require.Equal(t, 0, m.BondCount())
}

func TestChain_ElementAndOrder(t *testing.T) {
	bopts := []builder.Option{builder.WithElement("N"), builder.WithBondOrder(core.Double)}
	m, err := builder.Build(nil, bopts, builder.Chain(3))
	require.NoError(t, err)

	for _, a := range m.Atoms() {
		assert.Equal(t, "N", a.Symbol)
	}
	for _, b := range m.Bonds() {
		assert.Equal(t, core.Double, b.Order)
	}
}

func TestOptions_InvalidValuesKeepDefaults(t *testing.T) {
	bopts := []builder.Option{builder.WithElement(""), builder.WithBondOrder(core.BondOrder(42))}
	m, err := builder.Build(nil, bopts, builder.Chain(2))
	require.NoError(t, err)

	a := m.Atoms()[0]
	assert.Equal(t, builder.DefaultElement, a.Symbol)
	assert.Equal(t, core.Single, m.Bonds()[0].Order)
}

func TestRing_Closure(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Ring(5))
	require.NoError(t, err)

	require.Equal(t, 5, m.AtomCount())
	require.Equal(t, 5, m.BondCount())
	for _, id := range m.AtomIDs() {
		deg, err := m.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 2, deg)
	}

	// The closing bond joins the last issued atom back to the first.
	ids := m.AtomIDs()
	_, ok := m.BondBetween(ids[len(ids)-1], ids[0])
	assert.True(t, ok)
}

func TestAlternatingRing_Kekule(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.AlternatingRing(6))
	require.NoError(t, err)

	singles, doubles := 0, 0
	for _, b := range m.Bonds() {
		switch b.Order {
		case core.Single:
			singles++
		case core.Double:
			doubles++
		}
	}
	assert.Equal(t, 3, singles)
	assert.Equal(t, 3, doubles)

	// Perfect matching: every atom carries exactly one double bond.
	for _, id := range m.AtomIDs() {
		assert.Equal(t, 1, doubleCount(t, m, id))
	}
}

func TestBenzene_Fixture(t *testing.T) {
	m, err := builder.Build(nil, []builder.Option{builder.WithElement("N")}, builder.Benzene())
	require.NoError(t, err)

	// Carbon by definition, whatever the configured element says.
	require.Equal(t, "C6", m.Formula().String())
	for _, id := range m.AtomIDs() {
		free, err := m.FreeValency(id)
		require.NoError(t, err)
		assert.Equal(t, 1, free)
	}
	assert.Empty(t, m.CheckChemistry())
}

func TestNaphthalene_Fixture(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Naphthalene())
	require.NoError(t, err)

	require.Equal(t, 10, m.AtomCount())
	require.Equal(t, 11, m.BondCount())

	// Kekulé perfect matching across the fusion.
	bridgeheads := 0
	for _, id := range m.AtomIDs() {
		assert.Equal(t, 1, doubleCount(t, m, id))

		deg, err := m.Degree(id)
		require.NoError(t, err)
		free, err := m.FreeValency(id)
		require.NoError(t, err)
		if deg == 3 {
			bridgeheads++
			assert.Equal(t, 0, free)
		} else {
			assert.Equal(t, 2, deg)
			assert.Equal(t, 1, free)
		}
	}
	assert.Equal(t, 2, bridgeheads)
	assert.Empty(t, m.CheckChemistry())
}

func TestBiphenyl_Fixture(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Biphenyl())
	require.NoError(t, err)

	require.Equal(t, 12, m.AtomCount())
	require.Equal(t, 13, m.BondCount())

	ids := m.AtomIDs()
	bridge, ok := m.BondBetween(ids[0], ids[6])
	require.True(t, ok)
	assert.Equal(t, core.Single, bridge.Order)

	// The two ipso carbons are fully bonded; the rest keep one slot.
	for i, id := range ids {
		free, err := m.FreeValency(id)
		require.NoError(t, err)
		if i == 0 || i == 6 {
			assert.Equal(t, 0, free)
		} else {
			assert.Equal(t, 1, free)
		}
	}
}

func TestStar_Methane(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Star("C", "H", "H", "H", "H"))
	require.NoError(t, err)

	require.Equal(t, 5, m.AtomCount())
	require.Equal(t, 4, m.BondCount())
	require.Equal(t, "CH4", m.Formula().String())

	hub := m.AtomIDs()[0]
	deg, err := m.Degree(hub)
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
	free, err := m.FreeValency(hub)
	require.NoError(t, err)
	assert.Equal(t, 0, free)
}

func TestFromTables_FullSpecs(t *testing.T) {
	atoms := []builder.AtomSpec{
		{Symbol: "N", Charge: 1, Multiplicity: 2},
		{Symbol: "O", X: 1.5, Y: -0.5, Positioned: true},
		{Symbol: "C"},
	}
	bonds := []builder.BondSpec{
		{A1: 0, A2: 2, Order: core.Single, Stereo: core.StereoWedge},
		{A1: 2, A2: 1, Order: core.Double},
	}
	m, err := builder.Build(nil, nil, builder.FromTables(atoms, bonds))
	require.NoError(t, err)

	ids := m.AtomIDs()
	require.Len(t, ids, 3)

	n, err := m.Atom(ids[0])
	require.NoError(t, err)
	assert.Equal(t, 1, n.Charge)
	assert.Equal(t, 2, n.Multiplicity)
	assert.False(t, n.Positioned)

	o, err := m.Atom(ids[1])
	require.NoError(t, err)
	assert.True(t, o.Positioned)
	assert.Equal(t, 1.5, o.X)
	assert.Equal(t, -0.5, o.Y)

	nc, ok := m.BondBetween(ids[0], ids[2])
	require.True(t, ok)
	assert.Equal(t, core.StereoWedge, nc.Stereo)
	co, ok := m.BondBetween(ids[2], ids[1])
	require.True(t, ok)
	assert.Equal(t, core.Double, co.Order)
}

func TestFromTables_BadIndex(t *testing.T) {
	atoms := []builder.AtomSpec{{Symbol: "C"}, {Symbol: "C"}}
	for _, bad := range []builder.BondSpec{
		{A1: -1, A2: 1, Order: core.Single},
		{A1: 0, A2: 2, Order: core.Single},
	} {
		_, err := builder.Build(nil, nil, builder.FromTables(atoms, []builder.BondSpec{bad}))
		require.ErrorIs(t, err, builder.ErrBadSpec)
	}
}

func TestBuild_Composes(t *testing.T) {
	m, err := builder.Build(nil, nil, builder.Ring(6), builder.Chain(3))
	require.NoError(t, err)

	require.Equal(t, 9, m.AtomCount())
	require.Equal(t, 8, m.BondCount())

	comps, err := parts.Components(m)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 6)
	assert.Len(t, comps[1], 3)
}

func TestBuild_WithPlacement(t *testing.T) {
	m, err := builder.Build(nil, []builder.Option{builder.WithPlacement(true)}, builder.Ring(6))
	require.NoError(t, err)

	for _, a := range m.Atoms() {
		require.True(t, a.Positioned)
	}
	for _, b := range m.Bonds() {
		a1, err := m.Atom(b.A1)
		require.NoError(t, err)
		a2, err := m.Atom(b.A2)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, math.Hypot(a2.X-a1.X, a2.Y-a1.Y), 1e-9)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	build := func() *core.Molecule {
		m, err := builder.Build(nil, nil, builder.Naphthalene(), builder.Star("S", "O", "O"))
		require.NoError(t, err)
		return m
	}
	a, b := build(), build()

	require.Equal(t, a.AtomCount(), b.AtomCount())
	require.Equal(t, b.BondCount(), a.BondCount())
	for i, atom := range a.Atoms() {
		other := b.Atoms()[i]
		assert.Equal(t, atom.ID, other.ID)
		assert.Equal(t, atom.Symbol, other.Symbol)
	}
	for i, bond := range a.Bonds() {
		other := b.Bonds()[i]
		assert.Equal(t, bond.ID, other.ID)
		assert.Equal(t, bond.A1, other.A1)
		assert.Equal(t, bond.A2, other.A2)
		assert.Equal(t, bond.Order, other.Order)
	}
}
