package feature

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Set is the collection of switches enabled in a build.
type Set uint64

// Of returns a Set with exactly the given flags enabled.
func Of(flags ...Flag) Set {
	var s Set
	for _, f := range flags {
		s = s.With(f)
	}
	return s
}

// AllFlags has every switch on, including every platform.
func AllFlags() Set { return Set(1)<<numFlags - 1 }

func (s Set) Has(f Flag) bool    { return s&(1<<f) != 0 }
func (s Set) With(f Flag) Set    { return s | 1<<f }
func (s Set) Without(f Flag) Set { return s &^ (1 << f) }
func (s Set) Union(o Set) Set    { return s | o }
func (s Set) Len() int           { return bits.OnesCount64(uint64(s)) }

// Flags lists the enabled switches in declaration order.
func (s Set) Flags() []Flag {
	var out []Flag
	for f := Flag(0); f < numFlags; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s Set) String() string {
	names := make([]string, 0, s.Len())
	for _, f := range s.Flags() {
		names = append(names, f.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Platform returns the platform switch of s. Exactly one of FTD, MTD or
// Radio must be set.
func (s Set) Platform() (Flag, error) {
	var found []Flag
	for _, f := range []Flag{FTD, MTD, Radio} {
		if s.Has(f) {
			found = append(found, f)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return 0, errors.New("feature: no platform selected (want one of ftd, mtd, radio)")
	default:
		return 0, fmt.Errorf("feature: conflicting platforms %v", found)
	}
}

// Validate checks that s describes a buildable image.
func (s Set) Validate() error {
	if s&^AllFlags() != 0 {
		return fmt.Errorf("feature: unknown bits 0x%x", uint64(s&^AllFlags()))
	}
	_, err := s.Platform()
	return err
}

// ParseSet builds a Set from configuration names.
func ParseSet(names []string) (Set, error) {
	var s Set
	for _, n := range names {
		f, err := ParseFlag(n)
		if err != nil {
			return 0, err
		}
		s = s.With(f)
	}
	return s, nil
}
