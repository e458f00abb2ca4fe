package match_test

import (
	"fmt"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/match"
)

// Locate the carbonyl group in an acetic-acid skeleton. The pattern is a
// two-atom C=O fragment; implicit free sites let it embed even though the
// carboxyl carbon carries two more bonds.
func ExampleSearch() {
	acid := core.NewMolecule()
	me, _ := acid.AddAtom("C")
	cx, _ := acid.AddAtom("C")
	od, _ := acid.AddAtom("O")
	oh, _ := acid.AddAtom("O")
	acid.AddBond(me, cx, core.Single)
	acid.AddBond(cx, od, core.Double)
	acid.AddBond(cx, oh, core.Single)

	pat := core.NewMolecule()
	pc, _ := pat.AddAtom("C")
	po, _ := pat.AddAtom("O")
	pat.AddBond(pc, po, core.Double)

	cur, err := match.Search(match.NewFragment(pat), acid)
	if err != nil {
		fmt.Println("search:", err)
		return
	}
	for _, m := range cur.All() {
		fmt.Printf("carbonyl C=%d O=%d\n", m.Atoms[pc], m.Atoms[po])
	}

	// Output:
	// carbonyl C=2 O=3
}

// A free atom matches any element: one X-C pattern screens for every
// substituent on a carbon. The target holds chloromethane and
// bromomethane side by side.
func ExampleFragment_MarkFreeAtom() {
	m := core.NewMolecule()
	c1, _ := m.AddAtom("C")
	cl, _ := m.AddAtom("Cl")
	c2, _ := m.AddAtom("C")
	br, _ := m.AddAtom("Br")
	m.AddBond(c1, cl, core.Single)
	m.AddBond(c2, br, core.Single)

	pat := core.NewMolecule()
	x, _ := pat.AddAtom("C")
	pc, _ := pat.AddAtom("C")
	pat.AddBond(x, pc, core.Single)

	frag := match.NewFragment(pat).MarkFreeAtom(x)
	cur, err := match.Search(frag, m)
	if err != nil {
		fmt.Println("search:", err)
		return
	}
	for _, hit := range cur.All() {
		sub, _ := m.Atom(hit.Atoms[x])
		fmt.Printf("%s on atom %d\n", sub.Symbol, hit.Atoms[pc])
	}

	// Output:
	// Cl on atom 1
	// Br on atom 3
}
