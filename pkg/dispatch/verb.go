// Package dispatch resolves (verb, key) pairs to handlers through
// per-verb tables kept in strictly ascending key order.
package dispatch

import (
	"fmt"
	"strings"
)

// Verb is a property access kind.
type Verb uint8

const (
	Get Verb = iota
	Set
	Insert
	Remove

	NumVerbs = 4
)

var verbNames = [NumVerbs]string{"get", "set", "insert", "remove"}

// Verbs lists every verb in table order.
func Verbs() []Verb { return []Verb{Get, Set, Insert, Remove} }

func (v Verb) String() string {
	if v < NumVerbs {
		return verbNames[v]
	}
	return fmt.Sprintf("verb(%d)", uint8(v))
}

// Valid reports whether v names one of the four tables.
func (v Verb) Valid() bool { return v < NumVerbs }

// ParseVerb resolves a verb name.
func ParseVerb(s string) (Verb, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range verbNames {
		if n == s {
			return Verb(i), nil
		}
	}
	return 0, fmt.Errorf("dispatch: unknown verb %q", s)
}
