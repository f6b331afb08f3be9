// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"reflect"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqlath/seq"
	"github.com/katalvlaran/seqlath/sorting"
)

func init() {
	subcommands = append(subcommands, newTypesCommand)
}

var builtinTypes = map[string]reflect.Type{
	"bool":       reflect.TypeOf(false),
	"int8":       reflect.TypeOf(int8(0)),
	"uint8":      reflect.TypeOf(uint8(0)),
	"byte":       reflect.TypeOf(byte(0)),
	"int16":      reflect.TypeOf(int16(0)),
	"uint16":     reflect.TypeOf(uint16(0)),
	"int32":      reflect.TypeOf(int32(0)),
	"rune":       reflect.TypeOf(rune(0)),
	"uint32":     reflect.TypeOf(uint32(0)),
	"float32":    reflect.TypeOf(float32(0)),
	"int64":      reflect.TypeOf(int64(0)),
	"uint64":     reflect.TypeOf(uint64(0)),
	"float64":    reflect.TypeOf(float64(0)),
	"complex64":  reflect.TypeOf(complex64(0)),
	"complex128": reflect.TypeOf(complex128(0)),
	"int":        reflect.TypeOf(0),
	"uint":       reflect.TypeOf(uint(0)),
	"uintptr":    reflect.TypeOf(uintptr(0)),
	"string":     reflect.TypeOf(""),
}

type typeSize struct {
	Type string `json:"type"`
	Size int64  `json:"size"`
}

func newTypesCommand(*globalFlags) *cobra.Command {
	var algoFlag string
	cmd := &cobra.Command{
		Use:   "types [flags] TYPE...",
		Short: "Order built-in Go types by size",
		Long:  "Sorts a type list by byte size. Types of equal size keep their order under a stable algorithm.",
		Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := sorting.ParseAlgorithm(algoFlag)
			if err != nil {
				return err
			}
			ts := make([]reflect.Type, len(args))
			for i, name := range args {
				t, ok := builtinTypes[name]
				if !ok {
					return fmt.Errorf("unknown type %q", name)
				}
				ts[i] = t
			}

			in := seq.TypeList(ts...)
			out, err := sorting.Sort[reflect.Type](in, nil, sorting.WithAlgorithm(algo))
			if err != nil {
				return err
			}
			res := make([]typeSize, out.Len())
			for i := range res {
				t := out.At(i)
				res[i] = typeSize{Type: t.String(), Size: out.Key(t)}
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&algoFlag, "algorithm", sorting.AlgoMerge.String(), "sorting `algorithm`")

	return cmd
}
