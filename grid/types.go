package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("grid: parse error")
	// ErrIndex indicates a mutation outside the grid bounds.
	ErrIndex = errors.New("grid: coordinate out of bounds")
	// ErrWidenMismatch indicates a Widen expander returned the wrong cell count.
	ErrWidenMismatch = errors.New("grid: widen expander returned wrong number of cells")
)

// ParseError reports where text failed to map onto a grid.
// errors.Is(err, ErrParse) holds for every ParseError; Unwrap exposes the cause
// (ErrNonRectangular or whatever the CellMapper returned).
type ParseError struct {
	Row, Col int
	Rune     rune
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: parse error at row %d col %d (%q): %v", e.Row, e.Col, e.Rune, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// CellMapper converts one rune at a position into a cell value.
// Returning an error aborts Parse with a *ParseError wrapping it.
type CellMapper[T any] func(r rune, at Coord) (T, error)

// ParseOption configures Parse.
type ParseOption func(*ParseOptions)

// ParseOptions holds parameters for Parse.
type ParseOptions struct {
	// Trim drops leading and trailing blank lines before parsing.
	Trim bool
	// Ragged pads short rows with Fill instead of failing.
	Ragged bool
	// Fill is the rune fed to the mapper for padded cells when Ragged is set.
	Fill rune
}

// DefaultParseOptions returns strict options: no trimming beyond a single
// trailing newline, rows must be of equal length.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

// WithTrim drops blank lines around the text.
func WithTrim() ParseOption {
	return func(o *ParseOptions) { o.Trim = true }
}

// WithRagged accepts rows of differing length, padding to the widest row
// with fill (which still goes through the CellMapper).
func WithRagged(fill rune) ParseOption {
	return func(o *ParseOptions) {
		o.Ragged = true
		o.Fill = fill
	}
}
