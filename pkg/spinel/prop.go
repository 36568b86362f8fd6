package spinel

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// PropKey identifies a Spinel property. Keys are totally ordered by their
// numeric value.
type PropKey uint32

var propByName = func() map[string]PropKey {
	m := make(map[string]PropKey, len(propNames))
	for k, n := range propNames {
		m[n] = k
	}
	return m
}()

// Name returns the symbolic name of the key, or "" when the key is unknown.
func (k PropKey) Name() string { return propNames[k] }

func (k PropKey) String() string {
	if n, ok := propNames[k]; ok {
		return n
	}
	return fmt.Sprintf("PROP_0x%x", uint32(k))
}

// Known reports whether k is part of the property namespace.
func (k PropKey) Known() bool {
	_, ok := propNames[k]
	return ok
}

// ParsePropKey accepts a symbolic name (with or without the "PROP_" prefix,
// case-insensitive) or a decimal/hex number.
func ParsePropKey(s string) (PropKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("spinel: empty property key")
	}
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		if n > MaxPackedUint {
			return 0, fmt.Errorf("spinel: property key %s out of range", s)
		}
		return PropKey(n), nil
	}
	name := strings.TrimPrefix(strings.ToUpper(s), "PROP_")
	if k, ok := propByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("spinel: unknown property %q", s)
}

// PropKeys returns every known key in ascending order.
func PropKeys() []PropKey {
	out := make([]PropKey, 0, len(propNames))
	for k := range propNames {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
