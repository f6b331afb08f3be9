// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/seqlath/seq"
)

var printer = message.NewPrinter(language.English)

// parseInts parses decimal integers. Negative numbers must follow "--" on
// the command line.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// operands joins the --input file (if any) and the positional integers.
func operands(ctx context.Context, flags *globalFlags, args []string) (seq.Values[int], error) {
	var vs []int
	if flags.input != "" {
		fromFile, err := loadInts(ctx, flags.input)
		if err != nil {
			return seq.Values[int]{}, err
		}
		vs = fromFile
	}
	more, err := parseInts(args)
	if err != nil {
		return seq.Values[int]{}, err
	}
	vs = append(vs, more...)
	dlog.Debugf(ctx, "%s", printer.Sprintf("read %d integers", len(vs)))

	return seq.ValuesOf(vs...), nil
}

// loadInts decodes the --input file, which must hold exactly one JSON
// array of integers.
func loadInts(ctx context.Context, name string) ([]int, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	dlog.Debugf(ctx, "%s", printer.Sprintf("loaded %d bytes from %q", len(data), name))

	var vs []int
	if err := lowmemjson.NewDecoder(bytes.NewReader(data)).DecodeThenEOF(&vs); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return vs, nil
}

// writeJSON renders v as one compact line and hands it to w in one write.
func writeJSON(w io.Writer, v any) error {
	var line bytes.Buffer
	enc := lowmemjson.NewEncoder(lowmemjson.NewReEncoder(&line, lowmemjson.ReEncoderConfig{
		Compact:               true,
		ForceTrailingNewlines: true,
	}))
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := line.WriteTo(w)
	return err
}
