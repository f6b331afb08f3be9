// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/seq"
	"github.com/katalvlaran/seqlath/setops"
	"github.com/katalvlaran/seqlath/sorting"
)

func init() {
	subcommands = append(subcommands, newSetopCommand)
}

var setOperations = map[string]func(a, b seq.Sequence[int], less seq.Less[int]) (seq.Sequence[int], error){
	"union":                setops.Union[int],
	"intersection":         setops.Intersection[int],
	"difference":           setops.Difference[int],
	"symmetric-difference": setops.SymmetricDifference[int],
	"merge":                setops.Merge[int],
}

type includesResult struct {
	Includes bool `json:"includes"`
}

func newSetopCommand(*globalFlags) *cobra.Command {
	var (
		opFlag string
		aFlag  []int
		bFlag  []int
	)
	cmd := &cobra.Command{
		Use:   "setop --op OP --a X,... --b Y,...",
		Short: "Combine two ascending integer lists",
		Long: "OP is one of union, intersection, difference, symmetric-difference, " +
			"merge or includes. Both lists must be in ascending order.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, b := seq.ValuesOf(aFlag...), seq.ValuesOf(bFlag...)
			for name, s := range map[string]seq.Values[int]{"--a": a, "--b": b} {
				if !sorting.IsSorted[int](s, nil) {
					return fmt.Errorf("%s: %w", name, errNotAscending)
				}
			}

			if opFlag == "includes" {
				ok, err := setops.Includes[int](a, b, nil)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), includesResult{Includes: ok})
			}
			op, ok := setOperations[opFlag]
			if !ok {
				return fmt.Errorf("unknown set operation %q", opFlag)
			}
			out, err := op(a, b, nil)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out.Elements())
		},
	}
	cmd.Flags().StringVar(&opFlag, "op", "union", "set operation")
	cmd.Flags().IntSliceVar(&aFlag, "a", nil, "left operand")
	cmd.Flags().IntSliceVar(&bFlag, "b", nil, "right operand")

	return cmd
}
