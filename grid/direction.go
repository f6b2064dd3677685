package grid

// Direction is one of the four orthogonal moves. The constants are declared
// in clockwise order so that turning is modular arithmetic on the value.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions4 lists every Direction in clockwise order starting at Up.
var Directions4 = [4]Direction{Up, Right, Down, Left}

var directionDeltas = [4][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// Delta returns the (row, col) offset of one step in d.
func (d Direction) Delta() (dRow, dCol int) {
	v := directionDeltas[d&3]
	return v[0], v[1]
}

// TurnCW returns the direction after a quarter turn clockwise.
func (d Direction) TurnCW() Direction { return (d + 1) & 3 }

// TurnCCW returns the direction after a quarter turn counter-clockwise.
func (d Direction) TurnCCW() Direction { return (d + 3) & 3 }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Horizontal reports whether d moves along a row.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Compass returns the 8-way equivalent of d.
func (d Direction) Compass() Compass { return Compass((d & 3) * 2) }

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "?"
}

// ParseDirection maps the arrow runes ^ > v < (and U R D L) to a Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^', 'U', 'N':
		return Up, true
	case '>', 'R', 'E':
		return Right, true
	case 'v', 'D', 'S':
		return Down, true
	case '<', 'L', 'W':
		return Left, true
	}
	return 0, false
}

// Compass is one of the eight king moves, clockwise from North.
type Compass uint8

const (
	North Compass = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Compass8 lists every Compass direction clockwise from North.
var Compass8 = [8]Compass{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var compassDeltas = [8][2]int{
	North:     {-1, 0},
	NorthEast: {-1, 1},
	East:      {0, 1},
	SouthEast: {1, 1},
	South:     {1, 0},
	SouthWest: {1, -1},
	West:      {0, -1},
	NorthWest: {-1, -1},
}

// Delta returns the (row, col) offset of one step in c.
func (c Compass) Delta() (dRow, dCol int) {
	v := compassDeltas[c&7]
	return v[0], v[1]
}

// RotateCW returns the next compass point clockwise (45°).
func (c Compass) RotateCW() Compass { return (c + 1) & 7 }

// RotateCCW returns the next compass point counter-clockwise (45°).
func (c Compass) RotateCCW() Compass { return (c + 7) & 7 }

// Opposite returns the reverse compass point.
func (c Compass) Opposite() Compass { return (c + 4) & 7 }

// Diagonal reports whether c is one of the four diagonal points.
func (c Compass) Diagonal() bool { return c&1 == 1 }

func (c Compass) String() string {
	return [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[c&7]
}
