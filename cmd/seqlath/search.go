// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/search"
	"github.com/katalvlaran/seqlath/seq"
	"github.com/katalvlaran/seqlath/sorting"
)

func init() {
	subcommands = append(subcommands, newSearchCommand)
}

var errNotAscending = errors.New("input must be in ascending order")

var probes = map[string]func(seq.Sequence[int], int) bool{
	"binary":        search.BinarySearch[int],
	"exponential":   search.ExponentialSearch[int],
	"interpolation": search.InterpolationSearch[int],
	"fibonacci":     search.FibonacciSearch[int],
}

type searchResult struct {
	Key        int    `json:"key"`
	Method     string `json:"method"`
	Found      bool   `json:"found"`
	LowerBound int    `json:"lower_bound"`
	UpperBound int    `json:"upper_bound"`
}

type matchResult struct {
	Pattern []int `json:"pattern"`
	Matches []int `json:"matches"`
}

func newSearchCommand(flags *globalFlags) *cobra.Command {
	var (
		keyFlag     int
		methodFlag  string
		patternFlag []int
	)
	cmd := &cobra.Command{
		Use:   "search {--key K|--pattern P,...} [flags] [--] INTEGER...",
		Short: "Probe ascending integers for a key, or find every occurrence of a pattern",
		Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := operands(cmd.Context(), flags, args)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("pattern") {
				matches, err := search.KMP[int](in, seq.ValuesOf(patternFlag...), nil)
				if err != nil {
					return err
				}
				if matches == nil {
					matches = []int{}
				}
				return writeJSON(cmd.OutOrStdout(), matchResult{Pattern: patternFlag, Matches: matches})
			}

			probe, ok := probes[methodFlag]
			if !ok {
				return fmt.Errorf("unknown search method %q", methodFlag)
			}
			if !sorting.IsSorted[int](in, nil) {
				return errNotAscending
			}
			lo, hi, err := search.EqualRange[int](in, keyFlag, nil)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), searchResult{
				Key:        keyFlag,
				Method:     methodFlag,
				Found:      probe(in, keyFlag),
				LowerBound: lo,
				UpperBound: hi,
			})
		},
	}
	cmd.Flags().IntVar(&keyFlag, "key", 0, "value to look for")
	cmd.Flags().StringVar(&methodFlag, "method", "binary", "probe: binary, exponential, interpolation or fibonacci")
	cmd.Flags().IntSliceVar(&patternFlag, "pattern", nil, "find every occurrence of this run of integers (KMP)")

	return cmd
}
