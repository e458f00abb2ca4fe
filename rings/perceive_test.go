package rings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/rings"
)

// carbons adds n carbon atoms and returns their IDs.
func carbons(t *testing.T, m *core.Molecule, n int) []core.AtomID {
	t.Helper()
	ids := make([]core.AtomID, n)
	for i := range ids {
		id, err := m.AddAtom("C")
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

// bond adds a single bond or fails.
func bond(t *testing.T, m *core.Molecule, a, b core.AtomID, order core.BondOrder) core.BondID {
	t.Helper()
	id, err := m.AddBond(a, b, order)
	require.NoError(t, err)
	return id
}

// ringOf closes ids into a cycle of single bonds.
func ringOf(t *testing.T, m *core.Molecule, ids []core.AtomID) {
	t.Helper()
	for i := range ids {
		bond(t, m, ids[i], ids[(i+1)%len(ids)], core.Single)
	}
}

// euler asserts the SSSR cardinality invariant.
func euler(t *testing.T, m *core.Molecule, res *rings.Result) {
	t.Helper()
	assert.Equal(t, m.BondCount()-m.AtomCount()+res.Components, len(res.Rings),
		"|SSSR| must equal B - A + components")
}

func TestPerceive_NilAndEmpty(t *testing.T) {
	_, err := rings.Perceive(nil)
	assert.ErrorIs(t, err, rings.ErrNilMolecule)

	res, err := rings.Perceive(core.NewMolecule())
	require.NoError(t, err)
	assert.Empty(t, res.Rings)
	assert.Zero(t, res.Components)
}

func TestPerceive_AcyclicHasNoRings(t *testing.T) {
	m := core.NewMolecule()
	ids := carbons(t, m, 5)
	for i := 1; i < len(ids); i++ {
		bond(t, m, ids[i-1], ids[i], core.Single)
	}

	res, err := rings.Perceive(m)
	require.NoError(t, err)
	assert.Empty(t, res.Rings)
	assert.Empty(t, res.Basis)
	assert.Equal(t, 1, res.Components)
	euler(t, m, res)
}

func TestPerceive_SingleRingCanonicalForm(t *testing.T) {
	m := core.NewMolecule()
	ids := carbons(t, m, 6)
	ringOf(t, m, ids)

	res, err := rings.Perceive(m)
	require.NoError(t, err)
	require.Len(t, res.Rings, 1)
	euler(t, m, res)

	r := res.Rings[0]
	assert.Equal(t, 6, r.Size())
	assert.Equal(t, ids, r.Atoms, "canonical walk starts at the smallest atom toward its smaller neighbor")
	assert.Len(t, r.Bonds, 6)
	assert.True(t, r.ContainsAtom(ids[3]))
	assert.False(t, r.ContainsAtom(999))
}

func TestPerceive_Naphthalene(t *testing.T) {
	m := core.NewMolecule()
	ids := carbons(t, m, 10)
	// Fused pair sharing the ids[0]-ids[5] bond.
	ringOf(t, m, ids[:6])
	bond(t, m, ids[0], ids[6], core.Single)
	bond(t, m, ids[6], ids[7], core.Single)
	bond(t, m, ids[7], ids[8], core.Single)
	bond(t, m, ids[8], ids[9], core.Single)
	bond(t, m, ids[9], ids[5], core.Single)

	res, err := rings.Perceive(m)
	require.NoError(t, err)
	require.Len(t, res.Rings, 2)
	euler(t, m, res)
	assert.Equal(t, 6, res.Rings[0].Size())
	assert.Equal(t, 6, res.Rings[1].Size())
	assert.False(t, res.Truncated)

	// The shared bond belongs to both rings.
	shared, ok := m.BondBetween(ids[0], ids[5])
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, res.RingsWithBond(shared.ID))
}

func TestPerceive_BicycloOctaneTieBreak(t *testing.T) {
	m := core.NewMolecule()
	ids := carbons(t, m, 8)
	b1, b2 := ids[0], ids[1]
	// Three two-carbon bridges between the bridgeheads.
	for i := 0; i < 3; i++ {
		c1, c2 := ids[2+2*i], ids[3+2*i]
		bond(t, m, b1, c1, core.Single)
		bond(t, m, c1, c2, core.Single)
		bond(t, m, c2, b2, core.Single)
	}

	res, err := rings.Perceive(m)
	require.NoError(t, err)
	require.Len(t, res.Rings, 2)
	euler(t, m, res)

	// All candidate rings are hexagons; the two with the lowest atom-ID
	// sums win, and output order follows that sum.
	sum := func(r rings.Ring) int {
		s := 0
		for _, id := range r.Atoms {
			s += int(id)
		}
		return s
	}
	assert.Equal(t, 6, res.Rings[0].Size())
	assert.Equal(t, 6, res.Rings[1].Size())
	assert.LessOrEqual(t, sum(res.Rings[0]), sum(res.Rings[1]))
	assert.Equal(t, 21, sum(res.Rings[0]), "bridges 1+2 form the lowest-sum hexagon")
	assert.Equal(t, 25, sum(res.Rings[1]), "bridges 1+3 form the next")
}

// cube builds the vertex graph of a cube: 8 atoms, 12 bonds, cycle rank 5.
// Its BFS fundamental basis contains one 6-cycle that reduction must
// replace with the fifth square face.
func cube(t *testing.T, m *core.Molecule) []core.AtomID {
	t.Helper()
	ids := carbons(t, m, 8)
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 4},
		{1, 3}, {1, 5},
		{2, 3}, {2, 6},
		{3, 7},
		{4, 5}, {4, 6},
		{5, 7},
		{6, 7},
	}
	for _, e := range edges {
		bond(t, m, ids[e[0]], ids[e[1]], core.Single)
	}
	return ids
}

func TestPerceive_CubeReducesToFaces(t *testing.T) {
	m := core.NewMolecule()
	cube(t, m)

	res, err := rings.Perceive(m)
	require.NoError(t, err)
	require.Len(t, res.Rings, 5)
	euler(t, m, res)
	for _, r := range res.Rings {
		assert.Equal(t, 4, r.Size(), "every SSSR member is a square face")
	}
	assert.False(t, res.Truncated)
	assert.GreaterOrEqual(t, res.Reductions, 1, "the 6-cycle chord must be reduced")

	// The pre-reduction basis still shows the oversized fundamental cycle.
	largest := 0
	for _, r := range res.Basis {
		if r.Size() > largest {
			largest = r.Size()
		}
	}
	assert.Equal(t, 6, largest)
}

func TestPerceive_ZeroBudgetTruncates(t *testing.T) {
	m := core.NewMolecule()
	cube(t, m)

	res, err := rings.Perceive(m, rings.WithMaxAttempts(0))
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Zero(t, res.Reductions)
	require.Len(t, res.Rings, 5, "a truncated result is still a full basis")

	sizes := make([]int, len(res.Rings))
	for i, r := range res.Rings {
		sizes[i] = r.Size()
	}
	assert.Equal(t, []int{4, 4, 4, 4, 6}, sizes, "best-effort set keeps the unreduced 6-cycle")
}

func TestPerceive_DisconnectedComponents(t *testing.T) {
	m := core.NewMolecule()
	ringOf(t, m, carbons(t, m, 6))
	ringOf(t, m, carbons(t, m, 5))
	carbons(t, m, 1) // isolated atom

	res, err := rings.Perceive(m)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Components)
	require.Len(t, res.Rings, 2)
	euler(t, m, res)
	assert.Equal(t, 5, res.Rings[0].Size(), "smaller ring first")
	assert.Equal(t, 6, res.Rings[1].Size())
}

func TestPerceive_DetachedBondOpensRing(t *testing.T) {
	m := core.NewMolecule()
	ids := carbons(t, m, 6)
	ringOf(t, m, ids)
	b, ok := m.BondBetween(ids[0], ids[1])
	require.True(t, ok)

	require.NoError(t, m.DetachBond(b.ID))
	res, err := rings.Perceive(m)
	require.NoError(t, err)
	assert.Empty(t, res.Rings, "a detached bond closes no ring")

	m.RestoreDetached()
	res, err = rings.Perceive(m)
	require.NoError(t, err)
	assert.Len(t, res.Rings, 1)
}

func TestPerceiver_Memoizes(t *testing.T) {
	m := core.NewMolecule()
	ringOf(t, m, carbons(t, m, 6))
	p := rings.New(m)

	r1, err := p.Rings()
	require.NoError(t, err)
	r2, err := p.Rings()
	require.NoError(t, err)
	assert.Same(t, r1, r2, "unchanged version reuses the cached result")

	// A structural mutation invalidates.
	_, err = m.AddAtom("N")
	require.NoError(t, err)
	r3, err := p.Rings()
	require.NoError(t, err)
	assert.NotSame(t, r1, r3)

	// Invalidate forces recomputation even without mutation.
	p.Invalidate()
	r4, err := p.Rings()
	require.NoError(t, err)
	assert.NotSame(t, r3, r4)
}
