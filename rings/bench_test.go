package rings_test

import (
	"testing"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/rings"
)

// polyacene builds k linearly fused hexagons (anthracene for k=3).
func polyacene(b *testing.B, k int) *core.Molecule {
	b.Helper()
	m := core.NewMolecule()
	add := func() core.AtomID {
		id, err := m.AddAtom("C")
		if err != nil {
			b.Fatal(err)
		}
		return id
	}
	join := func(a1, a2 core.AtomID) {
		if _, err := m.AddBond(a1, a2, core.Single); err != nil {
			b.Fatal(err)
		}
	}

	top := make([]core.AtomID, 2*k+1)
	bot := make([]core.AtomID, 2*k+1)
	for i := range top {
		top[i] = add()
		bot[i] = add()
	}
	for i := 1; i < len(top); i++ {
		join(top[i-1], top[i])
		join(bot[i-1], bot[i])
	}
	// Vertical shared bonds at every second position.
	for i := 0; i < len(top); i += 2 {
		join(top[i], bot[i])
	}
	return m
}

func BenchmarkPerceive_Anthracene(b *testing.B) {
	m := polyacene(b, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rings.Perceive(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPerceive_FusedStrip12(b *testing.B) {
	m := polyacene(b, 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rings.Perceive(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPerceiver_Memoized(b *testing.B) {
	p := rings.New(polyacene(b, 6))
	if _, err := p.Rings(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Rings(); err != nil {
			b.Fatal(err)
		}
	}
}
