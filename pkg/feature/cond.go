package feature

import "strings"

// Cond is a boolean expression over switches. A nil Cond never holds.
type Cond interface {
	Eval(Set) bool
	String() string
}

type always struct{}

func (always) Eval(Set) bool  { return true }
func (always) String() string { return "always" }

// Always holds for every build.
var Always Cond = always{}

type all []Cond

func (c all) Eval(s Set) bool {
	for _, x := range c {
		if !Holds(x, s) {
			return false
		}
	}
	return true
}

func (c all) String() string { return join("&&", c) }

type anyOf []Cond

func (c anyOf) Eval(s Set) bool {
	for _, x := range c {
		if Holds(x, s) {
			return true
		}
	}
	return false
}

func (c anyOf) String() string { return join("||", c) }

type not struct{ c Cond }

func (n not) Eval(s Set) bool { return !Holds(n.c, s) }
func (n not) String() string  { return "!" + n.c.String() }

// All holds when every operand holds.
func All(cs ...Cond) Cond { return all(cs) }

// Any holds when at least one operand holds.
func Any(cs ...Cond) Cond { return anyOf(cs) }

// Not negates c.
func Not(c Cond) Cond { return not{c} }

// Holds evaluates c against s, treating a nil Cond as false.
func Holds(c Cond, s Set) bool {
	if c == nil {
		return false
	}
	return c.Eval(s)
}

func join(op string, cs []Cond) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		if c == nil {
			parts[i] = "never"
			continue
		}
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}
