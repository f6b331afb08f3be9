// SPDX-License-Identifier: MIT

// Command seqlath runs the seqlath algorithms on integers given on the
// command line and prints the results as JSON.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// subcommands holds one constructor per subcommand; every root gets fresh
// flag sets.
var subcommands []func(*globalFlags) *cobra.Command

type globalFlags struct {
	logLevel verbosity
	input    string
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	ctx := dlog.WithLogger(context.Background(), dlog.WrapLogrus(logger))
	dlog.SetFallbackLogger(dlog.WrapLogrus(logger).WithField("seqlath.THIS_IS_A_BUG", true))

	argparser := newRootCommand(logger)
	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}

// newRootCommand assembles the command tree. A nil logger leaves the
// logger already carried by the context in place.
func newRootCommand(logger *logrus.Logger) *cobra.Command {
	flags := &globalFlags{
		logLevel: verbosity(logrus.InfoLevel),
	}

	argparser := &cobra.Command{
		Use:   "seqlath {[flags]|SUBCOMMAND}",
		Short: "Run sequence algorithms on integer lists",

		Args: cliutil.WrapPositionalArgs(cliutil.OnlySubcommands),
		RunE: cliutil.RunSubcommands,

		SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
		SilenceUsage:  true, // our FlagErrorFunc will handle it

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},

		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logger != nil {
				logger.SetLevel(logrus.Level(flags.logLevel))
			}
			return nil
		},
	}
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
	argparser.PersistentFlags().Var(&flags.logLevel, "verbosity", "log `level`: error, warning, info, debug or trace")
	argparser.PersistentFlags().StringVar(&flags.input, "input", "", "also read integers from the JSON array in `file.json`")
	if err := argparser.MarkPersistentFlagFilename("input"); err != nil {
		panic(err)
	}

	for _, mk := range subcommands {
		cmd := mk(flags)
		runE := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			grp := dgroup.NewGroup(cmd.Context(), dgroup.GroupConfig{
				EnableSignalHandling: true,
			})
			grp.Go("main", func(ctx context.Context) error {
				cmd.SetContext(ctx)
				return runE(cmd, args)
			})
			return grp.Wait()
		}
		argparser.AddCommand(cmd)
	}

	return argparser
}
