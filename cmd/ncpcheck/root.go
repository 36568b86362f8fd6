package main

import (
	"fmt"

	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/ncp"
	"github.com/joeydtaylor/ncpbridge/pkg/node/memnode"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var profilesFile string
	root := &cobra.Command{
		Use:          "ncpcheck",
		Short:        "Check the property dispatch catalogue",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&profilesFile, "profiles", "", "profile TOML file (default: built-in profiles)")
	root.AddCommand(
		newValidateCmd(&profilesFile),
		newTablesCmd(&profilesFile),
		newLookupCmd(&profilesFile),
	)
	return root
}

func loadProfile(path, name string) (feature.Profile, error) {
	ps, err := feature.LoadProfiles(path)
	if err != nil {
		return feature.Profile{}, err
	}
	return ps.Lookup(name)
}

// buildRegistry binds the catalogue against an empty in-memory node, which
// is enough to prove every enabled entry has a handler.
func buildRegistry(set feature.Set) (*ncp.Registry, error) {
	store := memnode.New(memnode.WithLists(ncp.ListKeys()...))
	h := ncp.NewHandlers(store, set, &ncp.Stats{}, zap.NewAtomicLevel(), "ncpcheck", 0)
	return ncp.NewRegistry(set, h)
}

func formatSizes(s [dispatch.NumVerbs]int) string {
	return fmt.Sprintf("get=%d set=%d insert=%d remove=%d",
		s[dispatch.Get], s[dispatch.Set], s[dispatch.Insert], s[dispatch.Remove])
}
