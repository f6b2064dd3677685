package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
)

type tile uint8

const (
	open tile = iota
	wall
)

var tiles = grid.RuneTable(map[rune]tile{'.': open, '#': wall})

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	_, err := grid.New(0, 3, []int{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New(2, 2, []int{1, 2, 3})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.From2D(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFrom2D_DeepCopies(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g, err := grid.From2D(in)
	require.NoError(t, err)
	in[0][0] = 99
	assert.Equal(t, 1, g.At(grid.C(0, 0)))
}

//----------------------------------------------------------------------------//
// Bounds
//----------------------------------------------------------------------------//

func TestGet_BoundsProperty(t *testing.T) {
	g, err := grid.From2D([][]int{
		{0, 1, 2},
		{3, 4, 5},
	})
	require.NoError(t, err)

	for r := -2; r < 4; r++ {
		for c := -2; c < 5; c++ {
			v, ok := g.Get(grid.C(r, c))
			inside := r >= 0 && r < 2 && c >= 0 && c < 3
			assert.Equal(t, inside, ok, "Get(%d,%d) ok", r, c)
			if inside {
				assert.Equal(t, r*3+c, v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

func TestAt_PanicsOutside(t *testing.T) {
	g, _ := grid.From2D([][]int{{1}})
	assert.Panics(t, func() { g.At(grid.C(1, 0)) })
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, _ := grid.New(3, 4, make([]int, 12))
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, grid.C(2, 1), g.Coordinate(9))
}

func TestWrapGet(t *testing.T) {
	g, _ := grid.From2D([][]int{
		{1, 2},
		{3, 4},
	})
	assert.Equal(t, 4, g.WrapGet(grid.C(-1, -1)))
	assert.Equal(t, 2, g.WrapGet(grid.C(6, 5)))
	assert.Equal(t, 3, g.WrapGet(grid.C(1, -2)))
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse_Basic(t *testing.T) {
	g, err := grid.Parse("..#\n#..\n", tiles)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	if diff := cmp.Diff([]tile{open, open, wall, wall, open, open}, g.Cells()); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		cause error
		row   int
		col   int
	}{
		{"ShortRow", "...\n..", grid.ErrNonRectangular, 1, 2},
		{"LongRow", "..\n...", grid.ErrNonRectangular, 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.text, tiles)
			assert.Nil(t, g)
			require.ErrorIs(t, err, grid.ErrParse)
			assert.ErrorIs(t, err, tc.cause)
			var pe *grid.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.row, pe.Row)
			assert.Equal(t, tc.col, pe.Col)
		})
	}
}

func TestParse_RejectedRune(t *testing.T) {
	_, err := grid.Parse("..\n.x", tiles)
	var pe *grid.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 'x', pe.Rune)
	assert.Equal(t, grid.C(1, 1), grid.C(pe.Row, pe.Col))
	assert.ErrorIs(t, err, grid.ErrParse)
}

func TestParse_Empty(t *testing.T) {
	_, err := grid.ParseRunes("")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.ParseRunes("\n\n  \n", grid.WithTrim())
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestParse_RaggedAndTrim(t *testing.T) {
	g, err := grid.ParseRunes("\n\nab\nabcd\r\nc\n\n", grid.WithTrim(), grid.WithRagged(' '))
	require.NoError(t, err)
	assert.Equal(t, "ab  \nabcd\nc   ", g.Render(func(_ grid.Coord, r rune) rune { return r }))
}

func TestParse_Idempotent(t *testing.T) {
	const text = "#.#\n...\n##."
	a, err := grid.Parse(text, tiles)
	require.NoError(t, err)
	b, err := grid.Parse(text, tiles)
	require.NoError(t, err)
	assert.True(t, grid.Equal(a, b))
	assert.NotSame(t, a, b)
}

func TestDigits(t *testing.T) {
	g, err := grid.Parse("19\n05", grid.Digits)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 9, 0, 5}, g.Cells())
	_, err = grid.Parse("1a", grid.Digits)
	assert.ErrorIs(t, err, grid.ErrParse)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestFindCountAll(t *testing.T) {
	g, _ := grid.ParseRunes("S.#\n.#E")
	s, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok)
	assert.Equal(t, grid.C(0, 0), s)
	_, ok = g.Find(func(r rune) bool { return r == 'X' })
	assert.False(t, ok)
	assert.Equal(t, []grid.Coord{{0, 2}, {1, 1}}, g.FindAll(func(r rune) bool { return r == '#' }))
	assert.Equal(t, 2, g.Count(func(r rune) bool { return r == '.' }))

	visited := 0
	g.All(func(c grid.Coord, _ rune) bool {
		visited++
		return c != grid.C(0, 2)
	})
	assert.Equal(t, 3, visited)
}

func TestRowCol(t *testing.T) {
	g, _ := grid.ParseRunes("abc\ndef")
	assert.Equal(t, []rune("def"), g.Row(1))
	assert.Equal(t, []rune("be"), g.Col(1))
	assert.Panics(t, func() { g.Col(3) })
}

func TestEqualFunc_ShapeMismatch(t *testing.T) {
	a, _ := grid.ParseRunes("ab")
	b, _ := grid.ParseRunes("a\nb")
	assert.False(t, grid.Equal(a, b))
}

//----------------------------------------------------------------------------//
// Builder
//----------------------------------------------------------------------------//

func TestBuilder(t *testing.T) {
	b, err := grid.NewBuilder(2, 3, '.')
	require.NoError(t, err)
	require.NoError(t, b.Set(grid.C(1, 2), '#'))
	err = b.Set(grid.C(2, 0), '#')
	assert.ErrorIs(t, err, grid.ErrIndex)
	require.NoError(t, b.Swap(grid.C(1, 2), grid.C(0, 0)))
	assert.ErrorIs(t, b.Swap(grid.C(0, 0), grid.C(-1, 0)), grid.ErrIndex)

	g := b.Build()
	require.NoError(t, b.Set(grid.C(0, 1), 'x'))
	assert.Equal(t, "#..\n...", g.Render(func(_ grid.Coord, r rune) rune { return r }))

	v, ok := b.Get(grid.C(0, 1))
	assert.True(t, ok)
	assert.Equal(t, 'x', v)
	_, ok = b.Get(grid.C(5, 5))
	assert.False(t, ok)

	_, err = grid.NewBuilder(0, 1, 0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestFromGrid_DoesNotAlias(t *testing.T) {
	g, _ := grid.ParseRunes("ab")
	b := grid.FromGrid(g)
	require.NoError(t, b.Set(grid.C(0, 0), 'z'))
	assert.Equal(t, 'a', g.At(grid.C(0, 0)))
	assert.Equal(t, 1, b.Rows())
	assert.Equal(t, 2, b.Cols())
}
