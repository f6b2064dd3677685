package seq

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyRing is returned by NewRing when it is given no elements.
var ErrEmptyRing = errors.New("seq: ring needs at least one element")

// SplitBy splits s into consecutive groups separated by elements for which
// isSep returns true. Separators are dropped. A trailing empty group is not
// emitted, but empty groups between adjacent separators are.
func SplitBy[T any](s []T, isSep func(T) bool) [][]T {
	var out [][]T
	buf := make([]T, 0)
	for _, v := range s {
		if isSep(v) {
			out = append(out, buf)
			buf = make([]T, 0)
			continue
		}
		buf = append(buf, v)
	}
	if len(buf) > 0 {
		out = append(out, buf)
	}

	return out
}

// ArithMod returns a mod m in the range [0, m). m must be positive.
func ArithMod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Ring cycles through a fixed list forever. It replaces "repeat forever"
// generators with an explicit index that wraps at the end of the list.
type Ring[T any] struct {
	items []T
	idx   int
}

// NewRing copies items into a new Ring positioned at the first element.
func NewRing[T any](items ...T) (*Ring[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyRing
	}
	cp := make([]T, len(items))
	copy(cp, items)

	return &Ring[T]{items: cp}, nil
}

// Next returns the current element and advances the ring.
func (r *Ring[T]) Next() T {
	v := r.items[r.idx]
	r.idx = (r.idx + 1) % len(r.items)

	return v
}

// Index reports the position of the element Next will return. Useful as part
// of a simulation state key for cycle detection.
func (r *Ring[T]) Index() int { return r.idx }

// Len is the number of distinct elements in the ring.
func (r *Ring[T]) Len() int { return len(r.items) }

// Reset moves the ring back to its first element.
func (r *Ring[T]) Reset() { r.idx = 0 }
