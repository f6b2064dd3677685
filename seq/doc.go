// Package seq collects small generic helpers for sequences and integers that
// keep turning up around grid code:
//
//   - SplitBy:  cut a slice into groups on separator elements (blank-line blocks).
//   - Ring:     repeat a fixed list forever by modular indexing, no goroutines.
//   - ArithMod: modulo whose result always lies in [0, m), for wrap-around boards.
//   - Abs:      absolute value for any signed integer type.
//
// Everything here is allocation-light and has no hidden state.
package seq
