package dispatch

import (
	"cmp"
	"fmt"
)

// Entry binds one key to its handler.
type Entry[K cmp.Ordered, H any] struct {
	Key     K
	Handler H
}

// Table is a per-verb handler table. A usable table is strictly ascending
// by key; see Validate.
type Table[K cmp.Ordered, H any] []Entry[K, H]

// OrderError reports the first position where a table stops ascending.
type OrderError[K cmp.Ordered] struct {
	Index int
	Prev  K
	Key   K
}

func (e *OrderError[K]) Error() string {
	if e.Prev == e.Key {
		return fmt.Sprintf("dispatch: duplicate key %v at index %d", e.Key, e.Index)
	}
	return fmt.Sprintf("dispatch: key %v at index %d follows %v", e.Key, e.Index, e.Prev)
}

// IsSorted reports whether keys are strictly ascending. Empty and
// single-entry tables are sorted.
func (t Table[K, H]) IsSorted() bool { return t.Validate() == nil }

// Validate returns an *OrderError naming the first out-of-order or
// duplicate entry.
func (t Table[K, H]) Validate() error {
	for i := 1; i < len(t); i++ {
		if !(t[i-1].Key < t[i].Key) {
			return &OrderError[K]{Index: i, Prev: t[i-1].Key, Key: t[i].Key}
		}
	}
	return nil
}

// Keys returns the table keys in table order.
func (t Table[K, H]) Keys() []K {
	out := make([]K, len(t))
	for i, e := range t {
		out[i] = e.Key
	}
	return out
}

// MustTable validates entries and panics when they are out of order. It is
// meant for tables written out by hand in package-level vars.
func MustTable[K cmp.Ordered, H any](entries ...Entry[K, H]) Table[K, H] {
	t := Table[K, H](entries)
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}
