package feature

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOps(t *testing.T) {
	s := Of(FTD, MACFilter)
	assert.True(t, s.Has(FTD))
	assert.True(t, s.Has(MACFilter))
	assert.False(t, s.Has(MTD))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Flag{FTD, MACFilter}, s.Flags())
	assert.Equal(t, "{ftd,mac_filter}", s.String())

	s = s.Without(MACFilter).With(Joiner)
	assert.Equal(t, Of(FTD, Joiner), s)
	assert.Equal(t, Of(FTD, Joiner, MTD), s.Union(Of(MTD)))
}

func TestFlagNamesRoundTrip(t *testing.T) {
	for _, f := range Flags() {
		got, err := ParseFlag(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFlag("warp_drive")
	assert.Error(t, err)
}

func TestPlatformValidation(t *testing.T) {
	assert.NoError(t, Of(FTD).Validate())
	assert.NoError(t, Of(Radio, LinkRaw).Validate())
	assert.Error(t, Of(MACFilter).Validate())
	assert.Error(t, Of(FTD, MTD).Validate())
	assert.Error(t, Set(1<<63).With(FTD).Validate())

	p, err := Of(MTD, Joiner).Platform()
	require.NoError(t, err)
	assert.Equal(t, MTD, p)
}

func TestConditions(t *testing.T) {
	thread := Any(FTD, MTD)
	commissioner := All(FTD, Commissioner)

	cases := []struct {
		name string
		cond Cond
		set  Set
		want bool
	}{
		{"always on empty", Always, 0, true},
		{"nil never holds", nil, AllFlags(), false},
		{"single flag on", FTD, Of(FTD), true},
		{"single flag off", FTD, Of(MTD), false},
		{"any mtd", thread, Of(MTD), true},
		{"any radio", thread, Of(Radio), false},
		{"all both", commissioner, Of(FTD, Commissioner), true},
		{"all partial", commissioner, Of(FTD), false},
		{"not", Not(Radio), Of(FTD), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Holds(tc.cond, tc.set))
		})
	}

	assert.Equal(t, "(ftd && commissioner)", commissioner.String())
	assert.Equal(t, "(ftd || mtd)", thread.String())
	assert.Equal(t, "!radio", Not(Radio).String())
}

func TestBuiltinProfiles(t *testing.T) {
	ps, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, []string{"ftd", "ftd-full", "ftd-minimal", "mtd", "radio"}, ps.Names())

	ftd, err := ps.Lookup("ftd")
	require.NoError(t, err)
	assert.True(t, ftd.Set().Has(FTD))
	assert.True(t, ftd.Set().Has(Commissioner))

	radio, err := ps.Lookup("radio")
	require.NoError(t, err)
	plat, err := radio.Set().Platform()
	require.NoError(t, err)
	assert.Equal(t, Radio, plat)

	_, err = ps.Lookup("nope")
	assert.Error(t, err)
}

func TestCompiledMatchesProfile(t *testing.T) {
	ps, err := Builtin()
	require.NoError(t, err)
	p, err := ps.Lookup(CompiledProfile)
	require.NoError(t, err)
	assert.Equal(t, p.Set(), Compiled())
}

func TestParseProfilesErrors(t *testing.T) {
	_, err := ParseProfiles([]byte(`[profile.x]
flags = ["mac_filter"]`))
	assert.ErrorContains(t, err, "no platform")

	_, err = ParseProfiles([]byte(`[profile.x]
flags = ["ftd", "bogus"]`))
	assert.ErrorContains(t, err, "bogus")

	_, err = ParseProfiles([]byte(``))
	assert.Error(t, err)

	_, err = ParseProfiles([]byte(`not toml = = =`))
	assert.Error(t, err)
}

func TestLoadProfilesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[profile.lab]
description = "lab bench"
flags = ["ftd", "jam_detection"]
`), 0o600))

	ps, err := LoadProfiles(path)
	require.NoError(t, err)
	lab, err := ps.Lookup("lab")
	require.NoError(t, err)
	assert.Equal(t, "lab", lab.Name)
	assert.Equal(t, "lab bench", lab.Description)
	assert.Equal(t, Of(FTD, JamDetection), lab.Set())

	_, err = LoadProfiles(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
