package region_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/region"
)

// ExamplePartition prices fences for each plant region: area×perimeter and
// the bulk discount area×sides.
func ExamplePartition() {
	g, _ := grid.ParseRunes("AAAA\nBBCD\nBBCC\nEEEC")
	full, bulk := 0, 0
	for _, r := range region.Partition(g, func(a, b rune) bool { return a == b }) {
		full += r.Area() * region.Perimeter(r)
		bulk += r.Area() * region.Sides(r)
	}
	fmt.Println(full, bulk)
	// Output:
	// 140 80
}

// ExampleEnclosed counts open cells walled off from the border.
func ExampleEnclosed() {
	g, _ := grid.ParseRunes("#####\n#..##\n#.#..\n#####")
	in := region.Enclosed(g, func(r rune) bool { return r == '.' })
	fmt.Println(in.Size())
	// Output:
	// 3
}
