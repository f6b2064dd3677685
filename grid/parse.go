package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse splits text into lines and maps each rune through mapper.
// A single trailing newline is ignored; "\r\n" line endings are accepted.
// Rows must be of equal length unless WithRagged is given.
// Parse never returns a partially built grid.
func Parse[T any](text string, mapper CellMapper[T], opts ...ParseOption) (*Grid[T], error) {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lines := splitLines(text, o.Trim)
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines[1:] {
		n := utf8.RuneCountInString(l)
		if n > width {
			if !o.Ragged {
				break
			}
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([]T, 0, len(lines)*width)
	for row, line := range lines {
		col := 0
		for _, r := range line {
			if col >= width {
				return nil, &ParseError{Row: row, Col: col, Rune: r, Err: ErrNonRectangular}
			}
			v, err := mapper(r, Coord{row, col})
			if err != nil {
				return nil, &ParseError{Row: row, Col: col, Rune: r, Err: err}
			}
			cells = append(cells, v)
			col++
		}
		if col < width {
			if !o.Ragged {
				return nil, &ParseError{Row: row, Col: col, Err: ErrNonRectangular}
			}
			for ; col < width; col++ {
				v, err := mapper(o.Fill, Coord{row, col})
				if err != nil {
					return nil, &ParseError{Row: row, Col: col, Rune: o.Fill, Err: err}
				}
				cells = append(cells, v)
			}
		}
	}

	return &Grid[T]{rows: len(lines), cols: width, cells: cells}, nil
}

// ParseRunes parses text into a grid of its raw runes.
func ParseRunes(text string, opts ...ParseOption) (*Grid[rune], error) {
	return Parse(text, func(r rune, _ Coord) (rune, error) { return r, nil }, opts...)
}

// RuneTable returns a CellMapper backed by a lookup table. Runes missing
// from the table are rejected.
func RuneTable[T any](table map[rune]T) CellMapper[T] {
	return func(r rune, _ Coord) (T, error) {
		v, ok := table[r]
		if !ok {
			var zero T
			return zero, fmt.Errorf("unexpected rune %q", r)
		}
		return v, nil
	}
}

// Digits is a CellMapper for single decimal digits.
func Digits(r rune, _ Coord) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit: %q", r)
	}
	return int(r - '0'), nil
}

func splitLines(text string, trim bool) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if trim {
		text = strings.Trim(text, "\n")
		lines := strings.Split(text, "\n")
		for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}
		return lines
	}
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
