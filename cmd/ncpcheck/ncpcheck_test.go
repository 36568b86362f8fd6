package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateBuiltinProfiles(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err, out)
	for _, p := range []string{"ftd", "ftd-full", "ftd-minimal", "mtd", "radio"} {
		assert.Contains(t, out, "ok\tprofile/"+p+"\t")
	}
	assert.Contains(t, out, "ok\tprofile/ftd\tget=193 set=101 insert=13 remove=13")
}

func TestValidateAll(t *testing.T) {
	out, err := run(t, "validate", "--all", "--profile", "radio")
	require.NoError(t, err, out)
	assert.Contains(t, out, "ok\tftd/alone\t")
	assert.Contains(t, out, "ok\tmtd/commissioner\t")
	assert.Contains(t, out, "ok\tradio/everything\t")
	assert.NotContains(t, out, "profile/mtd")
}

func TestValidateRejectsBadProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[profile.broken]
flags = ["ftd", "mtd"]
`), 0o600))

	_, err := run(t, "validate", "--profiles", path)
	assert.Error(t, err)

	_, err = run(t, "validate", "--profile", "nope")
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	out, err := run(t, "tables", "--profile", "radio", "--verb", "remove")
	require.NoError(t, err, out)
	assert.Contains(t, out, "remove (3)")
	assert.Contains(t, out, "UNSOL_UPDATE_FILTER")
	assert.NotContains(t, out, "get (")

	_, err = run(t, "tables")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	out, err := run(t, "lookup", "--profile", "ftd", "remove", "THREAD_ACTIVE_ROUTER_IDS")
	require.NoError(t, err, out)
	assert.True(t, strings.HasPrefix(out, "hit\t"), out)

	out, err = run(t, "lookup", "--profile", "ftd", "insert", "THREAD_ACTIVE_ROUTER_IDS")
	require.ErrorIs(t, err, errMiss)
	assert.True(t, strings.HasPrefix(out, "miss\t"), out)

	_, err = run(t, "lookup", "--profile", "ftd", "poke", "PHY_CHAN")
	assert.Error(t, err)
}
