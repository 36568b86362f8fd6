package feature

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

//go:embed profiles.toml
var builtinProfiles []byte

// Profile is a named feature set.
type Profile struct {
	Name        string   `toml:"-"`
	Description string   `toml:"description"`
	Flags       []string `toml:"flags"`

	set Set
}

// Set returns the resolved feature set.
func (p Profile) Set() Set { return p.set }

// Profiles is a collection of named profiles.
type Profiles map[string]Profile

type profileFile struct {
	Profile map[string]Profile `toml:"profile"`
}

// ParseProfiles decodes a TOML profile document and validates every entry.
func ParseProfiles(data []byte) (Profiles, error) {
	var pf profileFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("feature: decode profiles: %w", err)
	}
	if len(pf.Profile) == 0 {
		return nil, fmt.Errorf("feature: no profiles defined")
	}
	out := make(Profiles, len(pf.Profile))
	for name, p := range pf.Profile {
		set, err := ParseSet(p.Flags)
		if err != nil {
			return nil, fmt.Errorf("feature: profile %q: %w", name, err)
		}
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("feature: profile %q: %w", name, err)
		}
		p.Name = name
		p.set = set
		out[name] = p
	}
	return out, nil
}

// LoadProfiles reads profiles from path. An empty path yields the built-in
// profiles.
func LoadProfiles(path string) (Profiles, error) {
	if path == "" {
		return Builtin()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("feature: read profiles: %w", err)
	}
	return ParseProfiles(b)
}

// Builtin returns the profiles shipped with the binary.
func Builtin() (Profiles, error) { return ParseProfiles(builtinProfiles) }

// Names lists profile names in sorted order.
func (ps Profiles) Names() []string {
	out := make([]string, 0, len(ps))
	for n := range ps {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Lookup resolves a profile by name.
func (ps Profiles) Lookup(name string) (Profile, error) {
	p, ok := ps[name]
	if !ok {
		return Profile{}, fmt.Errorf("feature: unknown profile %q (have %v)", name, ps.Names())
	}
	return p, nil
}

// Compiled returns the feature set selected by build tags.
func Compiled() Set {
	ps, err := Builtin()
	if err != nil {
		panic(err)
	}
	p, err := ps.Lookup(CompiledProfile)
	if err != nil {
		panic(err)
	}
	return p.Set()
}
