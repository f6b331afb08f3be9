// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/dynprog"
	"github.com/katalvlaran/seqlath/seq"
)

func init() {
	subcommands = append(subcommands,
		newEditDistanceCommand,
		newSubarrayCommand,
		newBinomialCommand,
		newDTWCommand)
}

func memoryMode(rolling bool) dynprog.MemoryMode {
	if rolling {
		return dynprog.RollingArray
	}
	return dynprog.FullMatrix
}

type distanceResult struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

func newEditDistanceCommand(*globalFlags) *cobra.Command {
	var rollingFlag bool
	cmd := &cobra.Command{
		Use:   "edit-distance [flags] FROM TO",
		Short: "Levenshtein distance between two strings",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := []rune(args[0]), []rune(args[1])
			d, err := dynprog.EditDistance[rune](seq.ValuesOf(from...), seq.ValuesOf(to...), nil,
				&dynprog.Options{MemoryMode: memoryMode(rollingFlag)})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), distanceResult{From: args[0], To: args[1], Distance: d})
		},
	}
	cmd.Flags().BoolVar(&rollingFlag, "rolling", false, "keep two table rows instead of the full table")

	return cmd
}

type subarrayResult struct {
	Low       int   `json:"low"`
	High      int   `json:"high"`
	Sum       int64 `json:"sum"`
	KadaneSum int64 `json:"kadane_sum"`
}

func newSubarrayCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "subarray [--] INTEGER...",
		Short: "Maximum-sum contiguous run, by divide and conquer and by Kadane's scan",
		Args:  cliutil.WrapPositionalArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, err := operands(ctx, flags, args)
			if err != nil {
				return err
			}
			best, err := dynprog.FindMaximumSubarray[int](in)
			if err != nil {
				return err
			}
			fast, err := dynprog.Kadane[int](in)
			if err != nil {
				return err
			}
			if best.Sum != fast.Sum {
				dlog.Errorf(ctx, "maximum subarray disagreement: %+v vs %+v", best, fast)
			}
			return writeJSON(cmd.OutOrStdout(), subarrayResult{
				Low:       best.Low,
				High:      best.High,
				Sum:       best.Sum,
				KadaneSum: fast.Sum,
			})
		},
	}
}

type binomialResult struct {
	N           int    `json:"n"`
	K           int    `json:"k"`
	Coefficient uint64 `json:"coefficient"`
}

func newBinomialCommand(*globalFlags) *cobra.Command {
	var cacheFlag int
	cmd := &cobra.Command{
		Use:   "binomial N [K...]",
		Short: "Binomial coefficients C(N, K), or row N of Pascal's triangle",
		Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N: %w", err)
			}
			ks, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			cache, err := dynprog.NewBinomialCache(cacheFlag)
			if err != nil {
				return err
			}

			if len(ks) == 0 {
				row, err := cache.Row(n)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), row)
			}
			out := make([]binomialResult, 0, len(ks))
			for _, k := range ks {
				c, err := cache.Coeff(n, k)
				if err != nil {
					return err
				}
				out = append(out, binomialResult{N: n, K: k, Coefficient: c})
			}
			dlog.Debugf(ctx, "%s", printer.Sprintf("%d rows cached", cache.Len()))
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&cacheFlag, "cache-size", dynprog.MaxBinomialN+1, "number of Pascal rows to memoize")

	return cmd
}

type dtwResult struct {
	Distance float64  `json:"distance"`
	Path     [][2]int `json:"path,omitempty"`
}

func newDTWCommand(*globalFlags) *cobra.Command {
	var (
		aFlag, bFlag []int
		windowFlag   int
		penaltyFlag  float64
		pathFlag     bool
		rollingFlag  bool
	)
	cmd := &cobra.Command{
		Use:   "dtw --a X,... --b Y,... [flags]",
		Short: "Dynamic time warping distance between two integer series",
		Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			dist, path, err := dynprog.DTW[int](seq.ValuesOf(aFlag...), seq.ValuesOf(bFlag...), &dynprog.Options{
				Window:       windowFlag,
				SlopePenalty: penaltyFlag,
				ReturnPath:   pathFlag,
				MemoryMode:   memoryMode(rollingFlag),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dtwResult{Distance: dist, Path: path})
		},
	}
	cmd.Flags().IntSliceVar(&aFlag, "a", nil, "first series")
	cmd.Flags().IntSliceVar(&bFlag, "b", nil, "second series")
	cmd.Flags().IntVar(&windowFlag, "window", 0, "Sakoe-Chiba band width (0 for none)")
	cmd.Flags().Float64Var(&penaltyFlag, "penalty", 0, "cost of an insertion or deletion step")
	cmd.Flags().BoolVar(&pathFlag, "path", false, "also print the warping path")
	cmd.Flags().BoolVar(&rollingFlag, "rolling", false, "keep two table rows instead of the full table")

	return cmd
}
