package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molvath/molvath/core"
)

func TestDetachBond_ConnectivityOnly(t *testing.T) {
	m := core.NewMolecule()
	ids := chain(t, m, 3) // a-b-c
	b, ok := m.BondBetween(ids[0], ids[1])
	require.True(t, ok)

	require.NoError(t, m.DetachBond(b.ID))

	// Connectivity reflects the detach.
	assert.False(t, m.IsConnected())
	deg, err := m.Degree(ids[0])
	require.NoError(t, err)
	assert.Zero(t, deg)
	_, ok = m.BondBetween(ids[0], ids[1])
	assert.False(t, ok, "live-pair lookup skips detached bonds")

	// Existence does not.
	assert.Equal(t, 2, m.BondCount())
	assert.True(t, m.HasBond(b.ID))
	got, err := m.Bond(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.True(t, m.Detached(b.ID))
}

func TestDetachBond_Errors(t *testing.T) {
	m := core.NewMolecule()
	ids := chain(t, m, 2)
	b, _ := m.BondBetween(ids[0], ids[1])

	assert.ErrorIs(t, m.DetachBond(999), core.ErrBondNotFound)

	require.NoError(t, m.DetachBond(b.ID))
	assert.ErrorIs(t, m.DetachBond(b.ID), core.ErrBondDetached)
}

func TestRestoreDetached_StackOrderAndNoOp(t *testing.T) {
	m := core.NewMolecule()
	ids := chain(t, m, 4) // a-b-c-d
	b1, _ := m.BondBetween(ids[0], ids[1])
	b2, _ := m.BondBetween(ids[2], ids[3])

	before := m.Bonds()
	wantDeg := make(map[core.AtomID]int)
	for _, id := range ids {
		wantDeg[id], _ = m.Degree(id)
	}

	require.NoError(t, m.DetachBond(b1.ID))
	require.NoError(t, m.DetachBond(b2.ID))
	assert.Equal(t, []core.BondID{b1.ID, b2.ID}, m.DetachedBonds())

	n := m.RestoreDetached()
	assert.Equal(t, 2, n)
	assert.Empty(t, m.DetachedBonds())
	assert.Zero(t, m.RestoreDetached(), "second restore finds nothing")

	// Detach-then-restore is a no-op on observable state.
	assert.True(t, m.IsConnected())
	assert.Equal(t, before, m.Bonds())
	for _, id := range ids {
		deg, err := m.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, wantDeg[id], deg)
	}
}

func TestRestoreLast_ScopedPop(t *testing.T) {
	m := core.NewMolecule()
	ids := chain(t, m, 4) // a-b-c-d
	b1, _ := m.BondBetween(ids[0], ids[1])
	b2, _ := m.BondBetween(ids[1], ids[2])
	b3, _ := m.BondBetween(ids[2], ids[3])

	require.NoError(t, m.DetachBond(b1.ID))
	require.NoError(t, m.DetachBond(b2.ID))
	require.NoError(t, m.DetachBond(b3.ID))

	// Pop only the two most recent; the oldest stays detached.
	assert.Equal(t, 2, m.RestoreLast(2))
	assert.Equal(t, []core.BondID{b1.ID}, m.DetachedBonds())
	assert.True(t, m.Detached(b1.ID))
	assert.False(t, m.Detached(b3.ID))

	// Over-asking clamps; zero and negative are no-ops.
	assert.Zero(t, m.RestoreLast(0))
	assert.Zero(t, m.RestoreLast(-1))
	assert.Equal(t, 1, m.RestoreLast(5))
	assert.Empty(t, m.DetachedBonds())
}

func TestRemoveBond_WhileDetached(t *testing.T) {
	m := core.NewMolecule()
	ids := chain(t, m, 3)
	b1, _ := m.BondBetween(ids[0], ids[1])
	b2, _ := m.BondBetween(ids[1], ids[2])

	require.NoError(t, m.DetachBond(b1.ID))
	require.NoError(t, m.DetachBond(b2.ID))
	require.NoError(t, m.RemoveBond(b1.ID))

	// The removed bond left the stack; the other stays detached.
	assert.Equal(t, []core.BondID{b2.ID}, m.DetachedBonds())
	assert.Equal(t, 1, m.RestoreDetached())
	assert.Equal(t, 1, m.BondCount())
}

func TestRemoveAtom_WithDetachedIncident(t *testing.T) {
	m := core.NewMolecule()
	ids := chain(t, m, 3)
	b1, _ := m.BondBetween(ids[0], ids[1])
	require.NoError(t, m.DetachBond(b1.ID))

	require.NoError(t, m.RemoveAtom(ids[1]))

	assert.Empty(t, m.DetachedBonds(), "cascade clears detached entries")
	assert.Equal(t, 0, m.BondCount())
}

func TestDetach_DuplicateGuardStillHolds(t *testing.T) {
	m := core.NewMolecule()
	ids := chain(t, m, 2)
	b, _ := m.BondBetween(ids[0], ids[1])
	require.NoError(t, m.DetachBond(b.ID))

	// The pair is still bonded even though the bond is detached.
	_, err := m.AddBond(ids[0], ids[1], core.Single)
	assert.ErrorIs(t, err, core.ErrDuplicateBond)
}
