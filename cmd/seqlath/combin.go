// SPDX-License-Identifier: MIT

package main

import (
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/combin"
	"github.com/katalvlaran/seqlath/edit"
	"github.com/katalvlaran/seqlath/seq"
	"github.com/katalvlaran/seqlath/sorting"
)

func init() {
	subcommands = append(subcommands, newPermutationsCommand, newCombinationsCommand)
}

// ascending sorts the operands so the generators start from the first
// arrangement.
func ascending(s seq.Values[int]) (seq.Sequence[int], error) {
	return sorting.Sort[int](s, nil)
}

func lists(ss []seq.Sequence[int], limit int) [][]int {
	if limit > 0 && len(ss) > limit {
		ss = ss[:limit]
	}
	out := make([][]int, len(ss))
	for i, s := range ss {
		out[i] = s.Elements()
	}
	return out
}

// partialPermutations walks NextPartialPermutation from the ascending
// start and keeps the k-prefix of every step.
func partialPermutations(start seq.Sequence[int], k int) ([]seq.Sequence[int], error) {
	var out []seq.Sequence[int]
	for cur := start; ; {
		head, err := edit.TakeFront(cur, k)
		if err != nil {
			return nil, err
		}
		out = append(out, head)
		next, ok, err := combin.NextPartialPermutation(cur, k, nil)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		cur = next
	}
}

func newPermutationsCommand(flags *globalFlags) *cobra.Command {
	var (
		kFlag     int
		limitFlag int
	)
	cmd := &cobra.Command{
		Use:   "permutations [flags] [--] INTEGER...",
		Short: "List the distinct permutations of the integers in lexicographic order",
		Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := operands(ctx, flags, args)
			if err != nil {
				return err
			}
			start, err := ascending(in)
			if err != nil {
				return err
			}

			var perms []seq.Sequence[int]
			if cmd.Flags().Changed("k") {
				perms, err = partialPermutations(start, kFlag)
			} else {
				perms, err = combin.Permutations(start, nil)
			}
			if err != nil {
				return err
			}
			dlog.Infof(ctx, "%s", printer.Sprintf("%d permutations", len(perms)))

			return writeJSON(cmd.OutOrStdout(), lists(perms, limitFlag))
		},
	}
	cmd.Flags().IntVar(&kFlag, "k", 0, "only arrange the first k positions (partial permutations)")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "print at most this many (0 for all)")

	return cmd
}

func newCombinationsCommand(flags *globalFlags) *cobra.Command {
	var (
		kFlag     int
		limitFlag int
	)
	cmd := &cobra.Command{
		Use:   "combinations --k K [flags] [--] INTEGER...",
		Short: "List the k-element combinations of the integers in lexicographic order",
		Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := operands(ctx, flags, args)
			if err != nil {
				return err
			}
			start, err := ascending(in)
			if err != nil {
				return err
			}
			combs, err := combin.Combinations(start, kFlag, nil)
			if err != nil {
				return err
			}
			dlog.Infof(ctx, "%s", printer.Sprintf("%d combinations", len(combs)))

			return writeJSON(cmd.OutOrStdout(), lists(combs, limitFlag))
		},
	}
	cmd.Flags().IntVar(&kFlag, "k", 0, "subset size")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "print at most this many (0 for all)")

	return cmd
}
