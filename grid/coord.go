package grid

import (
	"fmt"

	"github.com/katalvlaran/gridkit/seq"
)

// Coord addresses a cell by row and column. Any value is a valid Coord;
// whether it lies inside a particular grid is that grid's concern.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// Add returns the coordinate one step away in direction d.
func (c Coord) Add(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{c.Row + dr, c.Col + dc}
}

// Step returns the coordinate n steps away in direction d.
func (c Coord) Step(d Direction, n int) Coord {
	dr, dc := d.Delta()
	return Coord{c.Row + dr*n, c.Col + dc*n}
}

// Toward returns the coordinate one step away in compass direction d.
func (c Coord) Toward(d Compass) Coord {
	dr, dc := d.Delta()
	return Coord{c.Row + dr, c.Col + dc}
}

// Plus adds two coordinates component-wise.
func (c Coord) Plus(o Coord) Coord { return Coord{c.Row + o.Row, c.Col + o.Col} }

// Minus subtracts o from c component-wise.
func (c Coord) Minus(o Coord) Coord { return Coord{c.Row - o.Row, c.Col - o.Col} }

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return seq.Abs(c.Row-o.Row) + seq.Abs(c.Col-o.Col)
}

// Neighbors4 returns the four orthogonal neighbors in Directions4 order.
// Out-of-bounds results are left for Grid.Get to reject.
func (c Coord) Neighbors4() [4]Coord {
	var out [4]Coord
	for i, d := range Directions4 {
		out[i] = c.Add(d)
	}
	return out
}

// Neighbors8 returns all eight surrounding coordinates in Compass8 order.
func (c Coord) Neighbors8() [8]Coord {
	var out [8]Coord
	for i, d := range Compass8 {
		out[i] = c.Toward(d)
	}
	return out
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }
