package core_test

import (
	"fmt"

	"github.com/molvath/molvath/core"
)

// ExampleMolecule builds methanol and inspects it.
//
//	    H
//	    |
//	H - C - O - H
//	    |
//	    H
func ExampleMolecule() {
	m := core.NewMolecule()
	c, _ := m.AddAtom("C")
	o, _ := m.AddAtom("O")
	m.AddBond(c, o, core.Single)
	for i := 0; i < 3; i++ {
		h, _ := m.AddAtom("H")
		m.AddBond(c, h, core.Single)
	}
	oh, _ := m.AddAtom("H")
	m.AddBond(o, oh, core.Single)

	freeC, _ := m.FreeValency(c)
	freeO, _ := m.FreeValency(o)
	fmt.Println("formula:", m.Formula())
	fmt.Println("connected:", m.IsConnected())
	fmt.Println("free C:", freeC, "free O:", freeO)
	// Output:
	// formula: CH4O
	// connected: true
	// free C: 0 free O: 0
}

// ExampleMolecule_DetachBond cuts a bond temporarily and restores it.
func ExampleMolecule_DetachBond() {
	m := core.NewMolecule()
	a, _ := m.AddAtom("C")
	b, _ := m.AddAtom("C")
	bid, _ := m.AddBond(a, b, core.Single)

	m.DetachBond(bid)
	fmt.Println("while detached, connected:", m.IsConnected(), "bonds:", m.BondCount())

	restored := m.RestoreDetached()
	fmt.Println("restored:", restored, "connected:", m.IsConnected())
	// Output:
	// while detached, connected: false bonds: 1
	// restored: 1 connected: true
}
