package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"github.com/spf13/cobra"
)

var errMiss = errors.New("not dispatched")

func newTablesCmd(profilesFile *string) *cobra.Command {
	var profile, verb string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the dispatch tables built for a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd, *profilesFile, profile, verb)
		},
	}
	cmd.Flags().StringVar(&profile, "profile", "", "profile name")
	cmd.Flags().StringVar(&verb, "verb", "", "only print this verb (get, set, insert, remove)")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func runTables(cmd *cobra.Command, path, profile, verb string) error {
	p, err := loadProfile(path, profile)
	if err != nil {
		return err
	}
	reg, err := buildRegistry(p.Set())
	if err != nil {
		return err
	}

	verbs := dispatch.Verbs()
	if verb != "" {
		v, err := dispatch.ParseVerb(verb)
		if err != nil {
			return err
		}
		verbs = []dispatch.Verb{v}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "profile %s %s\n", p.Name, reg.Features())
	for _, v := range verbs {
		t := reg.Table(v)
		fmt.Fprintf(tw, "\n%s (%d)\n", v, len(t))
		for _, e := range t {
			fmt.Fprintf(tw, "  0x%04x\t%s\n", uint32(e.Key), e.Key)
		}
	}
	return tw.Flush()
}

func newLookupCmd(profilesFile *string) *cobra.Command {
	var profile string
	cmd := &cobra.Command{
		Use:   "lookup <verb> <key>",
		Short: "Report whether a property is dispatched for a verb",
		Long:  "Exits non-zero when the key is not in the verb's table. The key is a property name or number.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, *profilesFile, profile, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&profile, "profile", "", "profile name")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func runLookup(cmd *cobra.Command, path, profile, verb, key string) error {
	v, err := dispatch.ParseVerb(verb)
	if err != nil {
		return err
	}
	k, err := spinel.ParsePropKey(key)
	if err != nil {
		return err
	}
	p, err := loadProfile(path, profile)
	if err != nil {
		return err
	}
	reg, err := buildRegistry(p.Set())
	if err != nil {
		return err
	}

	if _, ok := reg.Find(v, k); !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "miss\t%s %s (0x%x)\n", v, k, uint32(k))
		return fmt.Errorf("%s %s: %w", v, k, errMiss)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "hit\t%s %s (0x%x)\n", v, k, uint32(k))
	return nil
}
