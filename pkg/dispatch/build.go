package dispatch

import (
	"cmp"
	"fmt"

	"github.com/joeydtaylor/ncpbridge/pkg/feature"
)

// Decl declares which verbs a key supports and under which build
// conditions. A nil condition means the verb is never served for the key.
type Decl[K cmp.Ordered] struct {
	Key    K
	Get    feature.Cond
	Set    feature.Cond
	Insert feature.Cond
	Remove feature.Cond
}

// When returns the condition guarding verb v.
func (d Decl[K]) When(v Verb) feature.Cond {
	switch v {
	case Get:
		return d.Get
	case Set:
		return d.Set
	case Insert:
		return d.Insert
	case Remove:
		return d.Remove
	}
	return nil
}

// Binder supplies the handler for a (verb, key) pair that survived
// filtering. Returning false means no implementation exists.
type Binder[K cmp.Ordered, H any] func(v Verb, key K) (H, bool)

// ValidateCatalogue checks that declarations are strictly ascending by key.
func ValidateCatalogue[K cmp.Ordered](decls []Decl[K]) error {
	for i := 1; i < len(decls); i++ {
		if !(decls[i-1].Key < decls[i].Key) {
			return &OrderError[K]{Index: i, Prev: decls[i-1].Key, Key: decls[i].Key}
		}
	}
	return nil
}

// Build filters decls down to the entries enabled for verb v under set and
// binds a handler to each. Declaration order is kept as is, so an unsorted
// catalogue yields an *OrderError rather than a silently re-sorted table.
func Build[K cmp.Ordered, H any](v Verb, decls []Decl[K], set feature.Set, bind Binder[K, H]) (Table[K, H], error) {
	if !v.Valid() {
		return nil, fmt.Errorf("dispatch: invalid verb %d", uint8(v))
	}
	var t Table[K, H]
	for _, d := range decls {
		if !feature.Holds(d.When(v), set) {
			continue
		}
		h, ok := bind(v, d.Key)
		if !ok {
			return nil, fmt.Errorf("dispatch: %s %v enabled but has no handler", v, d.Key)
		}
		t = append(t, Entry[K, H]{Key: d.Key, Handler: h})
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("dispatch: %s table: %w", v, err)
	}
	return t, nil
}
