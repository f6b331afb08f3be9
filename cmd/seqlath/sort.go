// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/edit"
	"github.com/katalvlaran/seqlath/partition"
	"github.com/katalvlaran/seqlath/seq"
	"github.com/katalvlaran/seqlath/sorting"
)

func init() {
	subcommands = append(subcommands, newSortCommand, newSelectCommand)
}

// source picks the pivot source for --seed; 0 means the default LFSR.
func source(seed int64) partition.Source {
	if seed == 0 {
		return partition.DefaultLFSR()
	}
	return partition.NewSource(seed)
}

func newSortCommand(flags *globalFlags) *cobra.Command {
	var (
		algoFlag    string
		seedFlag    int64
		reverseFlag bool
		uniqueFlag  bool
		listFlag    bool
		indexFlag   bool
	)
	cmd := &cobra.Command{
		Use:   "sort [flags] [--] INTEGER...",
		Short: "Sort integers with any of the sorting algorithms",
		Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if listFlag {
				names := make([]string, 0, len(sorting.Algorithms()))
				for _, a := range sorting.Algorithms() {
					names = append(names, a.String())
				}
				return writeJSON(cmd.OutOrStdout(), names)
			}

			algo, err := sorting.ParseAlgorithm(algoFlag)
			if err != nil {
				return err
			}
			in, err := operands(ctx, flags, args)
			if err != nil {
				return err
			}
			if indexFlag {
				idx, err := sorting.SortIndex[int](in, nil)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), idx.Elements())
			}
			var out seq.Sequence[int]
			out, err = sorting.Sort[int](in, nil,
				sorting.WithAlgorithm(algo),
				sorting.WithSource(source(seedFlag)))
			if err != nil {
				return err
			}
			if uniqueFlag {
				if out, err = edit.Unique(out); err != nil {
					return err
				}
			}
			if reverseFlag {
				if out, err = edit.Reverse(out); err != nil {
					return err
				}
			}
			dlog.Infof(ctx, "%s", printer.Sprintf("sorted %d integers with %s", in.Len(), algo))

			return writeJSON(cmd.OutOrStdout(), out.Elements())
		},
	}
	cmd.Flags().StringVar(&algoFlag, "algorithm", sorting.AlgoMerge.String(), "sorting `algorithm` (see --list)")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed for the randomized algorithms (0 selects the built-in LFSR)")
	cmd.Flags().BoolVar(&reverseFlag, "reverse", false, "print in descending order")
	cmd.Flags().BoolVar(&uniqueFlag, "unique", false, "drop repeated values")
	cmd.Flags().BoolVar(&listFlag, "list", false, "list the algorithm names and exit")
	cmd.Flags().BoolVar(&indexFlag, "index", false, "print the positions of the input in stably sorted order instead")

	return cmd
}

type selectResult struct {
	N     int `json:"n"`
	Value int `json:"value"`
}

func newSelectCommand(flags *globalFlags) *cobra.Command {
	var (
		nthFlag  int
		seedFlag int64
	)
	cmd := &cobra.Command{
		Use:   "select --nth N [flags] [--] INTEGER...",
		Short: "Find the n-th smallest integer by quickselect",
		Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := operands(ctx, flags, args)
			if err != nil {
				return err
			}
			v, err := partition.Select[int](in, nthFlag, nil, source(seedFlag))
			if err != nil {
				return fmt.Errorf("select %d of %d: %w", nthFlag, in.Len(), err)
			}
			return writeJSON(cmd.OutOrStdout(), selectResult{N: nthFlag, Value: v})
		},
	}
	cmd.Flags().IntVar(&nthFlag, "nth", 0, "0-based rank to select")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "pivot seed (0 selects the built-in LFSR)")

	return cmd
}
