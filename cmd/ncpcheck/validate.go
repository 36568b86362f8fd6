package main

import (
	"fmt"
	"slices"

	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/ncp"
	"github.com/spf13/cobra"
)

var platforms = []feature.Flag{feature.FTD, feature.MTD, feature.Radio}

func newValidateCmd(profilesFile *string) *cobra.Command {
	var (
		profiles []string
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check catalogue order and build the tables for each configuration",
		Long: `Checks that the catalogue is strictly ascending and that every selected
configuration yields four sorted tables with a handler for each entry.
Without --profile every profile in the profile file is checked. --all adds
each platform alone, each platform with every option, and each platform
with every single option.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := configurations(*profilesFile, profiles, all)
			if err != nil {
				return err
			}
			return runValidate(cmd, sets)
		},
	}
	cmd.Flags().StringSliceVar(&profiles, "profile", nil, "profile to check (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "also check every platform x option combination")
	return cmd
}

func configurations(path string, names []string, all bool) (map[string]feature.Set, error) {
	ps, err := feature.LoadProfiles(path)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = ps.Names()
	}

	out := make(map[string]feature.Set)
	for _, n := range names {
		p, err := ps.Lookup(n)
		if err != nil {
			return nil, err
		}
		out["profile/"+p.Name] = p.Set()
	}
	if !all {
		return out, nil
	}

	options := feature.AllFlags()
	for _, p := range platforms {
		options = options.Without(p)
	}
	for _, p := range platforms {
		out[p.String()+"/alone"] = feature.Of(p)
		out[p.String()+"/everything"] = options.With(p)
		for _, f := range options.Flags() {
			out[p.String()+"/"+f.String()] = feature.Of(p, f)
		}
	}
	return out, nil
}

func runValidate(cmd *cobra.Command, sets map[string]feature.Set) error {
	if err := dispatch.ValidateCatalogue(ncp.Catalogue); err != nil {
		return fmt.Errorf("catalogue: %w", err)
	}

	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	slices.Sort(names)

	w := cmd.OutOrStdout()
	for _, n := range names {
		reg, err := buildRegistry(sets[n])
		if err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
		fmt.Fprintf(w, "ok\t%s\t%s\n", n, formatSizes(reg.Sizes()))
	}
	fmt.Fprintf(w, "%d configurations, %d catalogue entries\n", len(names), len(ncp.Catalogue))
	return nil
}
