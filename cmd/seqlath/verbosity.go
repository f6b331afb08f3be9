// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// verbosity is the --verbosity value. It takes logrus level names but stops
// at "error": a command must always be able to report its failure.
type verbosity logrus.Level

var _ pflag.Value = (*verbosity)(nil)

func (v *verbosity) Type() string { return "level" }

func (v *verbosity) Set(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	if lvl < logrus.ErrorLevel {
		return fmt.Errorf("verbosity %q would hide errors", name)
	}
	*v = verbosity(lvl)
	return nil
}

func (v *verbosity) String() string { return logrus.Level(*v).String() }
