// Package memo provides an explicit memo table keyed by a full search state
// and a helper that turns a recursive definition into a self-memoising
// function.
//
// Keys must cover every discriminator of the state (position plus any
// auxiliary context such as remaining steps); two states that share a
// position but differ in context are cached separately.
package memo

// Table caches values by key. The zero Table is not usable; call New.
type Table[K comparable, V any] struct {
	m      map[K]V
	hits   int
	misses int
}

// New returns an empty table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{m: make(map[K]V)}
}

// Get returns the cached value for k.
func (t *Table[K, V]) Get(k K) (V, bool) {
	v, ok := t.m[k]
	return v, ok
}

// Put stores v under k, replacing any previous value.
func (t *Table[K, V]) Put(k K, v V) { t.m[k] = v }

// Len is the number of cached keys.
func (t *Table[K, V]) Len() int { return len(t.m) }

// Do returns the cached value for k, computing and storing it on a miss.
func (t *Table[K, V]) Do(k K, compute func() V) V {
	if v, ok := t.m[k]; ok {
		t.hits++
		return v
	}
	t.misses++
	v := compute()
	t.m[k] = v
	return v
}

// Stats reports cache hits and misses counted by Do.
func (t *Table[K, V]) Stats() (hits, misses int) { return t.hits, t.misses }

// Recursive builds a memoised function from fn, which receives the
// memoised function itself for its recursive calls. The returned table
// exposes the cache for inspection.
func Recursive[K comparable, V any](fn func(self func(K) V, k K) V) (func(K) V, *Table[K, V]) {
	t := New[K, V]()
	var self func(K) V
	self = func(k K) V {
		return t.Do(k, func() V { return fn(self, k) })
	}
	return self, t
}
