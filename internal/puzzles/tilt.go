package puzzles

import (
	"github.com/katalvlaran/gridkit/cycle"
	"github.com/katalvlaran/gridkit/grid"
)

// Platform cells.
const (
	RoundRock = 'O'
	CubeRock  = '#'
	Empty     = '.'
)

// TiltNorth rolls every round rock up its column until it meets the edge,
// a cube rock or another round rock.
func TiltNorth(g *grid.Grid[rune]) *grid.Grid[rune] {
	b := grid.FromGrid(g)
	for col := 0; col < g.Cols(); col++ {
		free := 0
		for row := 0; row < g.Rows(); row++ {
			switch g.At(grid.C(row, col)) {
			case CubeRock:
				free = row + 1
			case RoundRock:
				// Swap is in bounds: free ≤ row.
				_ = b.Swap(grid.C(row, col), grid.C(free, col))
				free++
			}
		}
	}
	return b.Build()
}

// SpinCycle tilts north, west, south then east. Rotating clockwise after
// each tilt brings the next edge to the top.
func SpinCycle(g *grid.Grid[rune]) *grid.Grid[rune] {
	for i := 0; i < 4; i++ {
		g = TiltNorth(g).RotateCW()
	}
	return g
}

// NorthLoad sums, over round rocks, the number of rows from the rock to the
// south edge inclusive.
func NorthLoad(g *grid.Grid[rune]) int {
	load := 0
	for _, c := range g.FindAll(func(r rune) bool { return r == RoundRock }) {
		load += g.Rows() - c.Row
	}
	return load
}

// LoadAfterSpins returns the north load after n spin cycles, fast-forwarded
// through the cycle the platform falls into.
func LoadAfterSpins(g *grid.Grid[rune], n int) (int, error) {
	final, err := cycle.StateAtBy(g, SpinCycle, platformKey, n)
	if err != nil {
		return 0, err
	}
	return NorthLoad(final), nil
}

// SpinPeriod reports the tail and period of the spin-cycle sequence.
func SpinPeriod(g *grid.Grid[rune]) cycle.Cycle {
	return cycle.DetectBy(g, SpinCycle, platformKey)
}

func platformKey(g *grid.Grid[rune]) string {
	return g.Render(func(_ grid.Coord, r rune) rune { return r })
}
