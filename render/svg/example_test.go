package svg_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/molvath/molvath/builder"
	"github.com/molvath/molvath/render"
	"github.com/molvath/molvath/render/svg"
)

// Build, place, render, transcribe: the whole pipeline down to an SVG
// document. Skeletal benzene draws six bond lines (three of them doubled)
// and no atom labels.
func ExampleWrite() {
	m, err := builder.Build(nil, []builder.Option{builder.WithPlacement(true)}, builder.Benzene())
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	ops, err := render.Render(m)
	if err != nil {
		fmt.Println("render:", err)
		return
	}

	var buf bytes.Buffer
	if err := svg.Write(&buf, ops, 400, 300); err != nil {
		fmt.Println("write:", err)
		return
	}
	doc := buf.String()
	fmt.Println(strings.Count(doc, "<line"), strings.Contains(doc, "<text"))

	// Output:
	// 9 false
}
