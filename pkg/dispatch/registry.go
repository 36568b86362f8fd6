package dispatch

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/joeydtaylor/ncpbridge/pkg/feature"
)

// Registry holds the four per-verb tables for one build configuration.
// It is immutable once constructed and safe for concurrent use.
type Registry[K cmp.Ordered, H any] struct {
	tables   [NumVerbs]Table[K, H]
	features feature.Set
}

// NewRegistry validates the catalogue and builds every verb table for set.
func NewRegistry[K cmp.Ordered, H any](decls []Decl[K], set feature.Set, bind Binder[K, H]) (*Registry[K, H], error) {
	if err := ValidateCatalogue(decls); err != nil {
		return nil, fmt.Errorf("dispatch: catalogue: %w", err)
	}
	r := &Registry[K, H]{features: set}
	for _, v := range Verbs() {
		t, err := Build(v, decls, set, bind)
		if err != nil {
			return nil, err
		}
		r.tables[v] = t
	}
	return r, nil
}

// MustRegistry is NewRegistry for process start-up: any ordering defect
// aborts before a single request is served.
func MustRegistry[K cmp.Ordered, H any](decls []Decl[K], set feature.Set, bind Binder[K, H]) *Registry[K, H] {
	r, err := NewRegistry(decls, set, bind)
	if err != nil {
		panic(err)
	}
	return r
}

// FromTables assembles a registry from prebuilt tables, indexed by verb,
// recording set as its configuration. Each table is copied before it is
// validated, so later writes to the caller's slices are not observed.
func FromTables[K cmp.Ordered, H any](tables [NumVerbs]Table[K, H], set feature.Set) (*Registry[K, H], error) {
	r := &Registry[K, H]{features: set}
	for _, v := range Verbs() {
		t := slices.Clone(tables[v])
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("dispatch: %s table: %w", v, err)
		}
		r.tables[v] = t
	}
	return r, nil
}

// Find resolves (v, key). An unknown verb or an empty table reports absent
// instead of searching.
func (r *Registry[K, H]) Find(v Verb, key K) (H, bool) {
	if !v.Valid() || len(r.tables[v]) == 0 {
		var zero H
		return zero, false
	}
	return r.tables[v].Lookup(key)
}

func (r *Registry[K, H]) FindGet(key K) (H, bool)    { return r.Find(Get, key) }
func (r *Registry[K, H]) FindSet(key K) (H, bool)    { return r.Find(Set, key) }
func (r *Registry[K, H]) FindInsert(key K) (H, bool) { return r.Find(Insert, key) }
func (r *Registry[K, H]) FindRemove(key K) (H, bool) { return r.Find(Remove, key) }

// Table returns a copy of the table for v, or nil for an unknown verb.
func (r *Registry[K, H]) Table(v Verb) Table[K, H] {
	if !v.Valid() {
		return nil
	}
	return slices.Clone(r.tables[v])
}

// Features is the configuration the registry was built for.
func (r *Registry[K, H]) Features() feature.Set { return r.features }

// Sizes reports the entry count of every table, indexed by verb.
func (r *Registry[K, H]) Sizes() [NumVerbs]int {
	var out [NumVerbs]int
	for v := range out {
		out[v] = len(r.tables[v])
	}
	return out
}

// Verbs lists the verbs under which key is served.
func (r *Registry[K, H]) Verbs(key K) []Verb {
	var out []Verb
	for _, v := range Verbs() {
		if _, ok := r.Find(v, key); ok {
			out = append(out, v)
		}
	}
	return out
}
