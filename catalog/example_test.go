package catalog_test

import (
	"fmt"

	"github.com/molvath/molvath/catalog"
	"github.com/molvath/molvath/core"
)

// Deduplication is structural: the second water is built with a different
// atom order, yet the catalog recognizes it and keeps a single record.
func ExampleCatalog_TryAdd() {
	cat, err := catalog.Open(catalog.Opts{})
	if err != nil {
		fmt.Println("open:", err)
		return
	}
	defer cat.Close()

	water := core.NewMolecule()
	o, _ := water.AddAtom("O")
	h1, _ := water.AddAtom("H")
	h2, _ := water.AddAtom("H")
	water.AddBond(o, h1, core.Single)
	water.AddBond(o, h2, core.Single)

	again := core.NewMolecule()
	g1, _ := again.AddAtom("H")
	g2, _ := again.AddAtom("H")
	go2, _ := again.AddAtom("O")
	again.AddBond(go2, g2, core.Single)
	again.AddBond(go2, g1, core.Single)

	first, _ := cat.TryAdd(water)
	second, _ := cat.TryAdd(again)
	fmt.Println(first, second, cat.Len())

	// Output:
	// true false 1
}

// Records stream back grouped by formula, formulas in lexicographic order.
func ExampleCatalog_ForEach() {
	cat, err := catalog.Open(catalog.Opts{})
	if err != nil {
		fmt.Println("open:", err)
		return
	}
	defer cat.Close()

	add := func(symbols []string, bonds [][2]int) {
		m := core.NewMolecule()
		ids := make([]core.AtomID, len(symbols))
		for i, s := range symbols {
			ids[i], _ = m.AddAtom(s)
		}
		for _, b := range bonds {
			m.AddBond(ids[b[0]], ids[b[1]], core.Single)
		}
		cat.TryAdd(m)
	}
	add([]string{"O", "H", "H"}, [][2]int{{0, 1}, {0, 2}})
	add([]string{"C", "H", "H", "H", "H"}, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})

	cat.ForEach(func(m *core.Molecule) bool {
		fmt.Println(m.Formula())
		return true
	})

	// Output:
	// CH4
	// H2O
}
