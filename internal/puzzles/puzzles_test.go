package puzzles_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/dfs"
	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/internal/puzzles"
	"github.com/katalvlaran/gridkit/region"
)

func runes(t *testing.T, lines ...string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.ParseRunes(strings.Join(lines, "\n"))
	require.NoError(t, err)
	return g
}

func TestPriceFences(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		full, bulk int
	}{
		{"small", []string{"AAAA", "BBCD", "BBCC", "EEEC"}, 140, 80},
		{"holes", []string{"OOOOO", "OXOXO", "OOOOO", "OXOXO", "OOOOO"}, 772, 436},
		{"e-shape", []string{"EEEEE", "EXXXX", "EEEEE", "EXXXX", "EEEEE"}, 692, 236},
		{"diagonal-touch", []string{"AAAAAA", "AAABBA", "AAABBA", "ABBAAA", "ABBAAA", "AAAAAA"}, 1184, 368},
		{"large", []string{
			"RRRRIICCFF",
			"RRRRIICCCF",
			"VVRRRCCFFF",
			"VVRCCCJFFF",
			"VVVVCJJCFE",
			"VVIVCCJJEE",
			"VVIIICJJEE",
			"MIIIIIJJEE",
			"MIIISIJEEE",
			"MMMISSJEEE",
		}, 1930, 1206},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := puzzles.PriceFences(runes(t, tt.lines...))
			assert.Equal(t, tt.full, p.Full)
			assert.Equal(t, tt.bulk, p.Bulk)

			dp := puzzles.PriceFences(runes(t, tt.lines...), region.WithDepthFirst())
			assert.Equal(t, p, dp)
		})
	}
}

var smallMaze = []string{
	"###############",
	"#.......#....E#",
	"#.#.###.#.###.#",
	"#.....#.#...#.#",
	"#.###.#####.#.#",
	"#.#.#.......#.#",
	"#.#.#####.###.#",
	"#...........#.#",
	"###.#.#####.#.#",
	"#...#.....#.#.#",
	"#.#.#.###.#.#.#",
	"#.....#...#.#.#",
	"#.###.#.#.#.#.#",
	"#S..#.....#...#",
	"###############",
}

func TestReindeerMaze(t *testing.T) {
	settled := 0
	res, err := puzzles.ReindeerMaze(runes(t, smallMaze...),
		dijkstra.WithOnSettle(func(puzzles.Pose, int) { settled++ }))
	require.NoError(t, err)
	assert.Equal(t, 7036, res.Score)
	assert.Equal(t, 45, res.Tiles.Size())
	assert.Positive(t, settled)
}

func TestReindeerMaze_Markers(t *testing.T) {
	_, err := puzzles.ReindeerMaze(runes(t, "#.E#"))
	assert.ErrorIs(t, err, puzzles.ErrMissingMarker)

	_, err = puzzles.ReindeerMaze(runes(t, "S#E"))
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

var heatMap = []string{
	"2413432311323",
	"3215453535623",
	"3255245654254",
	"3446585845452",
	"4546657867536",
	"1438598798454",
	"4457876987766",
	"3637877979653",
	"4654967986887",
	"4564679986453",
	"1224686865563",
	"2546548887735",
	"4322674655533",
}

func digits(t *testing.T, lines ...string) *grid.Grid[int] {
	t.Helper()
	g, err := grid.Parse(strings.Join(lines, "\n"), grid.Digits)
	require.NoError(t, err)
	return g
}

func TestMinHeatLoss(t *testing.T) {
	g := digits(t, heatMap...)

	loss, err := puzzles.MinHeatLoss(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 102, loss)

	loss, err = puzzles.MinHeatLoss(g, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 94, loss)

	loss, err = puzzles.MinHeatLoss(digits(t,
		"111111111111",
		"999999999991",
		"999999999991",
		"999999999991",
		"999999999991",
	), 4, 10)
	require.NoError(t, err)
	assert.Equal(t, 71, loss)

	_, err = puzzles.MinHeatLoss(g, 5, 2)
	assert.ErrorIs(t, err, puzzles.ErrRunLimits)
}

var gardenMap = []string{
	"...........",
	".....###.#.",
	".###.##..#.",
	"..#.#...#..",
	"....#.#....",
	".##..S####.",
	".##..#...#.",
	".......##..",
	".##.#.####.",
	".##..##.##.",
	"...........",
}

func TestReachable(t *testing.T) {
	g := runes(t, gardenMap...)

	n, err := puzzles.ReachableIn(g, 6)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	for steps := 0; steps <= 8; steps++ {
		memoised, err := puzzles.ReachableIn(g, steps)
		require.NoError(t, err)
		parity, err := puzzles.ReachableByParity(g, steps, false)
		require.NoError(t, err)
		assert.Equal(t, memoised, parity, "steps=%d", steps)
	}

	_, err = puzzles.ReachableIn(g, -1)
	assert.ErrorIs(t, err, puzzles.ErrNegativeSteps)
}

func TestReachableByParity_Infinite(t *testing.T) {
	g := runes(t, gardenMap...)
	for steps, want := range map[int]int{6: 16, 10: 50, 50: 1594, 100: 6536} {
		n, err := puzzles.ReachableByParity(g, steps, true)
		require.NoError(t, err)
		assert.Equal(t, want, n, "steps=%d", steps)
	}
}

func TestReachableOnTiles_MatchesWrappedWalk(t *testing.T) {
	g := runes(t, gardenMap...)
	for _, steps := range []int{0, 1, 6, 10, 17, 50} {
		wrapped, err := puzzles.ReachableByParity(g, steps, true)
		require.NoError(t, err)
		tiled, err := puzzles.ReachableOnTiles(g, steps)
		require.NoError(t, err)
		assert.Equal(t, wrapped, tiled, "steps=%d", steps)
	}

	_, err := puzzles.ReachableOnTiles(g, -3)
	assert.ErrorIs(t, err, puzzles.ErrNegativeSteps)
}

var platform = []string{
	"O....#....",
	"O.OO#....#",
	".....##...",
	"OO.#O....O",
	".O.....O#.",
	"O.#..O.#.#",
	"..O..#O..O",
	".......O..",
	"#....###..",
	"#OO..#....",
}

func TestTilt(t *testing.T) {
	g := runes(t, platform...)
	tilted := puzzles.TiltNorth(g)
	assert.Equal(t, 136, puzzles.NorthLoad(tilted))
	assert.Equal(t, g.Count(func(r rune) bool { return r == puzzles.RoundRock }),
		tilted.Count(func(r rune) bool { return r == puzzles.RoundRock }))

	want := runes(t,
		".....#....",
		"....#...O#",
		"...OO##...",
		".OO#......",
		".....OOO#.",
		".O#...O#.#",
		"....O#....",
		"......OOOO",
		"#...O###..",
		"#..OO#....",
	)
	assert.True(t, grid.Equal(want, puzzles.SpinCycle(g)))

	load, err := puzzles.LoadAfterSpins(g, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, 64, load)

	c := puzzles.SpinPeriod(g)
	assert.Equal(t, 7, c.Period)
}

func pipes(t *testing.T, lines ...string) *grid.Grid[puzzles.Pipe] {
	t.Helper()
	g, err := grid.Parse(strings.Join(lines, "\n"), puzzles.ParsePipe)
	require.NoError(t, err)
	return g
}

func TestPipeLoop(t *testing.T) {
	far, err := puzzles.FarthestOnLoop(pipes(t,
		"..F7.",
		".FJ|.",
		"SJ.L7",
		"|F--J",
		"LJ...",
	))
	require.NoError(t, err)
	assert.Equal(t, 8, far)

	far, err = puzzles.FarthestOnLoop(pipes(t,
		"-L|F7",
		"7S-7|",
		"L|7||",
		"-L-J|",
		"L|-JF",
	))
	require.NoError(t, err)
	assert.Equal(t, 4, far)
}

func TestEnclosedByLoop(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"open", []string{
			"...........",
			".S-------7.",
			".|F-----7|.",
			".||.....||.",
			".||.....||.",
			".|L-7.F-J|.",
			".|..|.|..|.",
			".L--J.L--J.",
			"...........",
		}, 4},
		{"squeezed", []string{
			"..........",
			".S------7.",
			".|F----7|.",
			".||....||.",
			".||....||.",
			".|L-7F-J|.",
			".|..||..|.",
			".L--JL--J.",
			"..........",
		}, 4},
		{"junk", []string{
			".F----7F7F7F7F-7....",
			".|F--7||||||||FJ....",
			".||.FJ||||||||L7....",
			"FJL7L7LJLJ||LJ.L-7..",
			"L--J.L7...LJS7F-7L7.",
			"....F-J..F7FJ|L7L7L7",
			"....L7.F7||L7|.L7L7|",
			".....|FJLJ|FJ|F7|.LJ",
			"....FJL-7.||.||||...",
			"....L---J.LJ.LJLJ...",
		}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := puzzles.EnclosedByLoop(pipes(t, tt.lines...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestPipeLoop_Errors(t *testing.T) {
	_, err := grid.Parse("S-X", puzzles.ParsePipe)
	assert.ErrorIs(t, err, grid.ErrParse)

	_, err = puzzles.FindLoop(pipes(t, "...", ".S.", "..."))
	assert.ErrorIs(t, err, puzzles.ErrStartPipe)

	_, err = puzzles.FindLoop(pipes(t, "...", "..."))
	assert.ErrorIs(t, err, puzzles.ErrMissingMarker)
}

func TestLongestHike(t *testing.T) {
	g := runes(t,
		"##.####",
		"#.....#",
		"#.###.#",
		"#..<..#",
		"#####.#",
	)
	n, err := puzzles.LongestHike(g, false)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	n, err = puzzles.LongestHike(g, true)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = puzzles.LongestHike(runes(t, "#.#", "###", "#.#"), false)
	assert.ErrorIs(t, err, dfs.ErrNoPath)

	_, err = puzzles.LongestHike(runes(t, "#.#", "#.#", "###"), false)
	assert.ErrorIs(t, err, puzzles.ErrMissingMarker)
}
